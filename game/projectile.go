package game

const (
	trailLength = 4    // positions remembered for the trail
	glowScale   = 1.8  // glow size relative to the projectile
	glowAlpha   = 0.35 // glow opacity
)

type point struct{ x, y float64 }

// Projectile is a shot travelling horizontally across the field
type Projectile struct {
	Entity

	// Damage dealt on hit
	Damage int

	owner Faction
	field Rect

	trail  [trailLength]point
	trails int
}

// NewProjectile creates an active projectile owned by owner. Its velocity points
// right for the player and left for enemies.
func NewProjectile(cfg WeaponConfig, owner Faction, x, y float64, sprite Sprite, field Rect) *Projectile {
	p := &Projectile{
		Entity: NewEntity(x, y, cfg.ProjectileWidth, cfg.ProjectileHeight, sprite),
		Damage: cfg.Damage,
		owner:  owner,
		field:  field,
	}
	p.VX = cfg.ProjectileSpeed * owner.direction()
	return p
}

// Owner returns the faction that fired the projectile
func (p *Projectile) Owner() Faction { return p.owner }

// CanHit reports whether the projectile damages members of faction f
func (p *Projectile) CanHit(f Faction) bool {
	return f != p.owner
}

// OutOfField reports whether the projectile has fully left the play field. The
// right and bottom edges compare the projectile's own left and top sides.
func (p *Projectile) OutOfField() bool {
	f := p.field
	return p.X < f.X-p.Width() || p.X > f.X+f.W ||
		p.Y < f.Y-p.Height() || p.Y > f.Y+f.H
}

// Update moves the projectile and deactivates it once it leaves the field
func (p *Projectile) Update(deltaTime float64) {
	if !p.Active {
		return
	}

	copy(p.trail[1:], p.trail[:trailLength-1])
	p.trail[0] = point{p.X, p.Y}
	if p.trails < trailLength {
		p.trails++
	}

	p.Entity.Update(deltaTime)
	if p.OutOfField() {
		p.Active = false
	}
}

// Render draws the trail, a soft glow and then the projectile itself
func (p *Projectile) Render(r Renderer) {
	if !p.Active || p.Sprite == nil {
		return
	}

	for i := p.trails - 1; i >= 0; i-- {
		fade := 0.5 * float64(trailLength-i) / float64(trailLength+1)
		shrink := 1 - 0.15*float64(i+1)
		op := p.drawOptions(Alpha(fade))
		op.Width *= shrink
		op.Height *= shrink
		op.X = p.trail[i].x + (p.Width()-op.Width)/2
		op.Y = p.trail[i].y + (p.Height()-op.Height)/2
		r.DrawSprite(p.Sprite, op)
	}

	cx, cy := p.Bounds().Center()
	r.DrawSprite(p.Sprite, centered(cx, cy, p.Width()*glowScale, 0, Alpha(glowAlpha)))

	r.DrawSprite(p.Sprite, p.drawOptions(White))
}
