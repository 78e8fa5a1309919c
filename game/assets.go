package game

// AssetProvider hands out the sprites a session draws with. It is created by the
// frontend and passed to NewSession; Dispose releases everything it created.
type AssetProvider interface {
	PlayerSprite() Sprite
	EnemySprite(t EnemyType) Sprite
	ProjectileSprite() Sprite
	BackgroundSprites() []Sprite
	Dispose()
}

// NopAssets provides nil sprites for headless runs and tests. Layers is the
// number of background layers to report.
type NopAssets struct {
	Layers int
}

func (NopAssets) PlayerSprite() Sprite         { return nil }
func (NopAssets) EnemySprite(EnemyType) Sprite { return nil }
func (NopAssets) ProjectileSprite() Sprite     { return nil }
func (NopAssets) Dispose()                     {}

func (a NopAssets) BackgroundSprites() []Sprite {
	return make([]Sprite, a.Layers)
}
