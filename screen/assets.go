package screen

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"sidescroller/art"
	"sidescroller/game"
)

// Assets holds the GPU images for one run of the app
type Assets struct {
	player     *Sprite
	projectile *Sprite
	enemies    map[game.EnemyType]*Sprite
	background []*Sprite
}

var _ game.AssetProvider = (*Assets)(nil)

// NewAssets uploads the placeholder art sized for cfg
func NewAssets(cfg game.Config, seed int64) *Assets {
	a := &Assets{
		player: newSprite(art.Player(int(cfg.Player.Width), int(cfg.Player.Height))),
		projectile: newSprite(art.Projectile(
			int(cfg.Weapon.ProjectileWidth), int(cfg.Weapon.ProjectileHeight))),
		enemies: make(map[game.EnemyType]*Sprite, len(game.EnemyTypes)),
	}
	for _, t := range game.EnemyTypes {
		a.enemies[t] = newSprite(art.Enemy(t, int(cfg.Enemy.Width), int(cfg.Enemy.Height)))
	}
	for _, img := range art.Background(len(cfg.Background.Parallax), int(cfg.FieldWidth), int(cfg.FieldHeight), seed) {
		a.background = append(a.background, newSprite(img))
	}
	return a
}

func newSprite(img image.Image) *Sprite {
	return &Sprite{img: ebiten.NewImageFromImage(img)}
}

func (a *Assets) PlayerSprite() game.Sprite     { return a.player }
func (a *Assets) ProjectileSprite() game.Sprite { return a.projectile }

func (a *Assets) EnemySprite(t game.EnemyType) game.Sprite {
	if s, ok := a.enemies[t]; ok {
		return s
	}
	return nil
}

func (a *Assets) BackgroundSprites() []game.Sprite {
	sprites := make([]game.Sprite, len(a.background))
	for i, s := range a.background {
		sprites[i] = s
	}
	return sprites
}

// Dispose releases every image
func (a *Assets) Dispose() {
	a.player.img.Deallocate()
	a.projectile.img.Deallocate()
	for _, s := range a.enemies {
		s.img.Deallocate()
	}
	for _, s := range a.background {
		s.img.Deallocate()
	}
}
