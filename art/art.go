// Package art draws the placeholder sprites the game runs with when no artwork
// is shipped.
package art

import (
	"image"
	"image/color"
	"math"
	"math/rand"

	"golang.org/x/image/colornames"

	"sidescroller/game"
)

// enemyColors gives every enemy type its own hull color
var enemyColors = map[game.EnemyType]color.RGBA{
	game.EnemyBasic:    colornames.Indianred,
	game.EnemySineWave: colornames.Mediumpurple,
	game.EnemyShooter:  colornames.Orange,
	game.EnemyFast:     colornames.Gold,
	game.EnemyTank:     colornames.Olivedrab,
}

// layerStars is how many stars each background layer gets, farthest first
var layerStars = []int{220, 90, 35}

// Player returns the player's ship facing right
func Player(width, height int) *image.RGBA {
	return ship(width, height, colornames.Cornflowerblue, false)
}

// Enemy returns the ship for an enemy type, facing left
func Enemy(t game.EnemyType, width, height int) *image.RGBA {
	clr, ok := enemyColors[t]
	if !ok {
		clr = colornames.Red
	}
	return ship(width, height, clr, true)
}

// Projectile returns a round glowing shot
func Projectile(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	cx, cy := float64(width)/2, float64(height)/2
	r := math.Min(cx, cy)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			d := math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy) / r
			if d >= 1 {
				continue
			}
			core := colornames.Lightyellow
			a := uint8(255 * (1 - d*d))
			img.SetRGBA(x, y, color.RGBA{
				R: premul(core.R, a),
				G: premul(core.G, a),
				B: premul(core.B, a),
				A: a,
			})
		}
	}
	return img
}

// Background returns n star-field layers, farthest first. The farthest layer is
// opaque; the others are transparent apart from their stars.
func Background(n, width, height int, seed int64) []*image.RGBA {
	rng := rand.New(rand.NewSource(seed))
	layers := make([]*image.RGBA, n)

	for i := range layers {
		img := image.NewRGBA(image.Rect(0, 0, width, height))
		if i == 0 {
			fill(img, colornames.Midnightblue)
		}

		stars := layerStars[min(i, len(layerStars)-1)]
		size := 1 + i
		for range stars {
			x, y := rng.Intn(width), rng.Intn(height)
			shade := uint8(140 + 115*(i+1)/n)
			star := color.RGBA{shade, shade, shade, 255}
			for dy := range size {
				for dx := range size {
					if image.Pt(x+dx, y+dy).In(img.Rect) {
						img.SetRGBA(x+dx, y+dy, star)
					}
				}
			}
		}
		layers[i] = img
	}
	return layers
}

// ship draws an arrowhead hull with a dark outline and a cockpit
func ship(width, height int, hull color.RGBA, facingLeft bool) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	outline := colornames.Black
	cockpit := colornames.Lightcyan

	half := float64(height) / 2
	for y := 0; y < height; y++ {
		// distance from the centre line, 0 at the middle and 1 at the edges
		rel := math.Abs(float64(y)+0.5-half) / half
		tip := float64(width) * (1 - rel)
		for x := 0; x < width; x++ {
			fx := float64(x) + 0.5
			if facingLeft {
				fx = float64(width) - fx
			}
			switch {
			case fx < tip-1:
				img.SetRGBA(x, y, hull)
			case fx < tip:
				img.SetRGBA(x, y, outline)
			}
		}
	}

	// cockpit sits two thirds of the way to the nose
	cx := int(float64(width) * 2 / 3)
	if facingLeft {
		cx = width - cx - 1
	}
	cy := height / 2
	r := max(height/8, 1)
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			if image.Pt(x, y).In(img.Rect) && img.RGBAAt(x, y).A != 0 {
				img.SetRGBA(x, y, cockpit)
			}
		}
	}
	return img
}

func fill(img *image.RGBA, clr color.RGBA) {
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = clr.R
		img.Pix[i+1] = clr.G
		img.Pix[i+2] = clr.B
		img.Pix[i+3] = clr.A
	}
}

func premul(c, a uint8) uint8 {
	return uint8(uint16(c) * uint16(a) / 255)
}
