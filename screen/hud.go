package screen

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"sidescroller/game"
)

const hudMargin = 8

// HUD draws text overlays: the in-game status line and the menu captions
type HUD struct {
	face *text.GoXFace
}

// NewHUD creates a HUD using the built-in bitmap font
func NewHUD() *HUD {
	return &HUD{face: text.NewGoXFace(basicfont.Face7x13)}
}

// Status draws score, lives and level in the top-left corner, and a banner
// while paused
func (h *HUD) Status(screen *ebiten.Image, s *game.Session) {
	line := fmt.Sprintf("SCORE %06d   LIVES %d   LEVEL %d", s.Score(), s.Lives(), s.Level())
	h.draw(screen, line, hudMargin, hudMargin, 1, text.AlignStart, colornames.White)

	if s.Paused() {
		w, ht := screenSize(screen)
		h.draw(screen, "PAUSED", w/2, ht/2-20, 3, text.AlignCenter, colornames.Yellow)
		h.draw(screen, "P to resume   ESC for menu", w/2, ht/2+30, 1, text.AlignCenter, colornames.Lightgray)
	}
}

// FPS draws the frame rate in the top-right corner
func (h *HUD) FPS(screen *ebiten.Image, fps float64) {
	w, _ := screenSize(screen)
	h.draw(screen, fmt.Sprintf("FPS %.0f", fps), w-hudMargin, hudMargin, 1, text.AlignEnd, colornames.Lime)
}

// Title draws a large centred caption
func (h *HUD) Title(screen *ebiten.Image, msg string, y float64, clr color.Color) {
	w, _ := screenSize(screen)
	h.draw(screen, msg, w/2, y, 4, text.AlignCenter, clr)
}

// Caption draws a normal-sized centred line
func (h *HUD) Caption(screen *ebiten.Image, msg string, y float64) {
	w, _ := screenSize(screen)
	h.draw(screen, msg, w/2, y, 1.5, text.AlignCenter, colornames.Lightgray)
}

func (h *HUD) draw(screen *ebiten.Image, msg string, x, y, scale float64, align text.Align, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	text.Draw(screen, msg, h.face, op)
}

func screenSize(screen *ebiten.Image) (float64, float64) {
	b := screen.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}
