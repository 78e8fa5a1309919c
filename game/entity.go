package game

// Rect is an axis-aligned box in screen coordinates (y grows downwards)
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports whether two boxes share interior area. Boxes that only touch
// along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Center returns the centre point of the box
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Collidable is anything a weapon or the collision manager can test against
type Collidable interface {
	Body() *Entity
	Faction() Faction
}

// Entity is the positioned, sized, optionally drawn base of every game object
type Entity struct {
	// Position of the top-left corner in pixels
	X, Y float64

	// Velocity in pixels per second
	VX, VY float64

	// Rotation in degrees, about the centre
	Rotation float64

	// Whether this entity takes part in update, render and collision
	Active bool

	// Sprite drawn for this entity (nil draws nothing)
	Sprite Sprite

	width, height float64
}

// NewEntity creates an active entity. Size is fixed for the entity's lifetime.
func NewEntity(x, y, width, height float64, sprite Sprite) Entity {
	return Entity{
		X:      x,
		Y:      y,
		Active: true,
		Sprite: sprite,
		width:  width,
		height: height,
	}
}

// Update integrates velocity over deltaTime
func (e *Entity) Update(deltaTime float64) {
	e.X += e.VX * deltaTime
	e.Y += e.VY * deltaTime
}

// Width returns the entity's width in pixels
func (e *Entity) Width() float64 { return e.width }

// Height returns the entity's height in pixels
func (e *Entity) Height() float64 { return e.height }

// Bounds returns the collision box at the current position
func (e *Entity) Bounds() Rect {
	return Rect{X: e.X, Y: e.Y, W: e.width, H: e.height}
}

// Body returns the entity itself
func (e *Entity) Body() *Entity { return e }

// CollidesWith reports whether the two collision boxes overlap
func (e *Entity) CollidesWith(other *Entity) bool {
	return e.Bounds().Overlaps(other.Bounds())
}

// Render draws the sprite at the entity's position, size and rotation
func (e *Entity) Render(r Renderer) {
	if !e.Active || e.Sprite == nil {
		return
	}
	r.DrawSprite(e.Sprite, e.drawOptions(White))
}

func (e *Entity) drawOptions(tint Tint) DrawOptions {
	return DrawOptions{
		X:        e.X,
		Y:        e.Y,
		Width:    e.width,
		Height:   e.height,
		Rotation: e.Rotation,
		Tint:     tint,
	}
}
