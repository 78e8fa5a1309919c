package game

// Sprite is an opaque drawable handle owned by an AssetProvider
type Sprite interface {
	Size() (width, height int)
}

// Tint multiplies sprite colors; components are in [0, 1]
type Tint struct {
	R, G, B, A float32
}

// White draws a sprite unchanged
var White = Tint{R: 1, G: 1, B: 1, A: 1}

// Alpha returns a white tint with the given opacity
func Alpha(a float64) Tint {
	return Tint{R: 1, G: 1, B: 1, A: float32(clamp(a, 0, 1))}
}

// DrawOptions places a sprite: the sprite is stretched to Width x Height with its
// top-left corner at X, Y and rotated by Rotation degrees about its centre.
type DrawOptions struct {
	X, Y          float64
	Width, Height float64
	Rotation      float64
	Tint          Tint
}

// Renderer draws sprites for one frame
type Renderer interface {
	DrawSprite(s Sprite, op DrawOptions)
}

// centered builds options for a square of the given size centred on cx, cy
func centered(cx, cy, size, rotation float64, tint Tint) DrawOptions {
	return DrawOptions{
		X:        cx - size/2,
		Y:        cy - size/2,
		Width:    size,
		Height:   size,
		Rotation: rotation,
		Tint:     tint,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
