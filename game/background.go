package game

import (
	"errors"
	"fmt"
)

// ErrLayerMismatch is returned when the number of layer sprites and parallax
// factors differ
var ErrLayerMismatch = errors.New("background layer count mismatch")

type layer struct {
	sprite Sprite
	factor float64
	x1, x2 float64 // left edges of the two tiles
}

// Background scrolls tiled layers leftwards at different speeds
type Background struct {
	layers []layer
	scroll float64
	width  float64
	height float64
}

// NewBackground creates a background with one layer per sprite, the first being
// the farthest. Each layer is two field-sized tiles side by side.
func NewBackground(sprites []Sprite, factors []float64, scrollSpeed, width, height float64) (*Background, error) {
	if len(sprites) != len(factors) {
		return nil, fmt.Errorf("%w: %d sprites, %d parallax factors", ErrLayerMismatch, len(sprites), len(factors))
	}

	b := &Background{
		layers: make([]layer, len(sprites)),
		scroll: scrollSpeed,
		width:  width,
		height: height,
	}
	for i, s := range sprites {
		b.layers[i] = layer{sprite: s, factor: factors[i], x1: 0, x2: width}
	}
	return b, nil
}

// Layers returns the number of layers
func (b *Background) Layers() int { return len(b.layers) }

// Offsets returns the left edges of both tiles of layer i
func (b *Background) Offsets(i int) (float64, float64) {
	return b.layers[i].x1, b.layers[i].x2
}

// Update scrolls every layer and wraps tiles that left the screen
func (b *Background) Update(deltaTime float64) {
	for i := range b.layers {
		l := &b.layers[i]
		dx := b.scroll * deltaTime * l.factor
		l.x1 -= dx
		l.x2 -= dx

		if l.x1+b.width < 0 {
			l.x1 = l.x2 + b.width
		}
		if l.x2+b.width < 0 {
			l.x2 = l.x1 + b.width
		}
	}
}

// Render draws the layers back to front
func (b *Background) Render(r Renderer) {
	for _, l := range b.layers {
		if l.sprite == nil {
			continue
		}
		for _, x := range [2]float64{l.x1, l.x2} {
			r.DrawSprite(l.sprite, DrawOptions{X: x, Width: b.width, Height: b.height, Tint: White})
		}
	}
}
