package screen

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"sidescroller/game"
)

// Sprite is an ebiten image handed to the game as a game.Sprite
type Sprite struct {
	img *ebiten.Image
}

// Size implements game.Sprite
func (s *Sprite) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Renderer draws game sprites onto an ebiten image, scaling field coordinates to
// screen pixels
type Renderer struct {
	target         *ebiten.Image
	scaleX, scaleY float64
}

var _ game.Renderer = (*Renderer)(nil)

// NewRenderer creates a renderer for a field of fieldW x fieldH shown on target
func NewRenderer(target *ebiten.Image, fieldW, fieldH float64) *Renderer {
	b := target.Bounds()
	return &Renderer{
		target: target,
		scaleX: float64(b.Dx()) / fieldW,
		scaleY: float64(b.Dy()) / fieldH,
	}
}

// DrawSprite implements game.Renderer
func (r *Renderer) DrawSprite(s game.Sprite, op game.DrawOptions) {
	sp, ok := s.(*Sprite)
	if !ok || sp == nil {
		return
	}
	w, h := sp.Size()
	if w == 0 || h == 0 || op.Width <= 0 || op.Height <= 0 {
		return
	}

	opts := &ebiten.DrawImageOptions{}
	// Rotate about the sprite centre, then place it
	opts.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	opts.GeoM.Scale(op.Width/float64(w), op.Height/float64(h))
	opts.GeoM.Rotate(op.Rotation * math.Pi / 180)
	opts.GeoM.Translate(op.X+op.Width/2, op.Y+op.Height/2)
	opts.GeoM.Scale(r.scaleX, r.scaleY)

	opts.ColorScale.Scale(op.Tint.R, op.Tint.G, op.Tint.B, op.Tint.A)
	opts.Filter = ebiten.FilterLinear

	r.target.DrawImage(sp.img, opts)
}
