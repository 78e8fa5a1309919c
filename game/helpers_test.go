package game

import "math/rand"

// testRNG returns a seeded RNG for deterministic tests
func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

type fakeSprite struct{ w, h int }

func (s fakeSprite) Size() (int, int) { return s.w, s.h }

var testSprite Sprite = fakeSprite{w: 16, h: 16}

type fakeInput struct {
	pressed map[Key]bool
	just    map[Key]bool
}

func newFakeInput() *fakeInput {
	return &fakeInput{pressed: map[Key]bool{}, just: map[Key]bool{}}
}

func (in *fakeInput) IsPressed(k Key) bool     { return in.pressed[k] }
func (in *fakeInput) IsJustPressed(k Key) bool { return in.just[k] }

func (in *fakeInput) hold(keys ...Key) {
	for _, k := range keys {
		in.pressed[k] = true
	}
}

func (in *fakeInput) release(keys ...Key) {
	for _, k := range keys {
		delete(in.pressed, k)
	}
}

type drawCall struct {
	sprite Sprite
	op     DrawOptions
}

type fakeRenderer struct {
	calls []drawCall
}

func (r *fakeRenderer) DrawSprite(s Sprite, op DrawOptions) {
	r.calls = append(r.calls, drawCall{sprite: s, op: op})
}

type fakeAssets struct{ layers int }

func (a fakeAssets) PlayerSprite() Sprite         { return testSprite }
func (a fakeAssets) EnemySprite(EnemyType) Sprite { return testSprite }
func (a fakeAssets) ProjectileSprite() Sprite     { return testSprite }
func (a fakeAssets) Dispose()                     {}

func (a fakeAssets) BackgroundSprites() []Sprite {
	sprites := make([]Sprite, a.layers)
	for i := range sprites {
		sprites[i] = fakeSprite{w: 800, h: 480}
	}
	return sprites
}

// staticEnemies is an EnemySource over a fixed slice
type staticEnemies []*Enemy

func (s staticEnemies) Enemies() []*Enemy { return s }

// step calls update n times with a fixed frame time
func step(n int, dt float64, update func(float64)) {
	for range n {
		update(dt)
	}
}
