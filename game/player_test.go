package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPlayer(t *testing.T) (*Player, *fakeInput) {
	t.Helper()
	in := newFakeInput()
	return NewPlayer(DefaultConfig(), in, testSprite), in
}

func TestNewPlayer(t *testing.T) {
	p, _ := newTestPlayer(t)

	assert.Equal(t, PlayerAlive, p.State())
	assert.Equal(t, 3, p.Lives())
	assert.Equal(t, 0, p.Score())
	assert.True(t, p.Active)
	assert.False(t, p.Invulnerable())
	assert.Equal(t, 50.0, p.X)
	assert.Equal(t, 224.0, p.Y)
}

func TestPlayer_Damage(t *testing.T) {
	t.Run("costs a life and grants invulnerability", func(t *testing.T) {
		p, _ := newTestPlayer(t)

		died := p.Damage()

		assert.False(t, died)
		assert.Equal(t, 2, p.Lives())
		assert.True(t, p.Invulnerable())
	})

	t.Run("ignored while invulnerable", func(t *testing.T) {
		p, _ := newTestPlayer(t)
		p.Damage()

		assert.False(t, p.Damage())
		assert.Equal(t, 2, p.Lives())
	})

	t.Run("invulnerability wears off", func(t *testing.T) {
		p, _ := newTestPlayer(t)
		p.Damage()

		step(31, 0.1, p.Update)

		assert.False(t, p.Invulnerable())
		p.Damage()
		assert.Equal(t, 1, p.Lives())
	})

	t.Run("last life starts dying", func(t *testing.T) {
		p, _ := newTestPlayer(t)
		for range 2 {
			p.Damage()
			step(31, 0.1, p.Update)
		}

		died := p.Damage()

		assert.True(t, died)
		assert.Equal(t, 0, p.Lives())
		assert.Equal(t, PlayerDying, p.State())
		assert.False(t, p.Damage(), "no damage while dying")
		assert.Equal(t, 0, p.Lives(), "lives never go negative")
	})
}

func killPlayer(p *Player) {
	for !p.Damage() {
		step(31, 0.1, p.Update)
	}
}

func TestPlayer_DyingToGameOver(t *testing.T) {
	p, _ := newTestPlayer(t)
	killPlayer(p)
	require.Equal(t, PlayerDying, p.State())

	step(10, 0.1, p.Update)
	assert.Equal(t, PlayerDying, p.State(), "death animation still playing")
	assert.True(t, p.Active)

	step(11, 0.1, p.Update)
	assert.Equal(t, PlayerGameOver, p.State())
	assert.False(t, p.Active)

	p.Update(10)
	assert.Equal(t, PlayerGameOver, p.State(), "game over is terminal")
	p.AddLives(1)
	assert.Equal(t, 0, p.Lives())
}

func TestPlayer_DyingToRespawn(t *testing.T) {
	p, in := newTestPlayer(t)
	killPlayer(p)
	require.Equal(t, PlayerDying, p.State())

	p.AddLives(1)
	step(21, 0.1, p.Update)

	require.Equal(t, PlayerRespawning, p.State())
	assert.False(t, p.Active)
	assert.False(t, p.ReadyToFire())

	in.hold(KeyRight)
	step(21, 0.1, p.Update)

	assert.Equal(t, PlayerAlive, p.State())
	assert.True(t, p.Active)
	assert.True(t, p.Invulnerable())
	assert.Equal(t, 1, p.Lives())
}

func TestPlayer_Respawn(t *testing.T) {
	p, _ := newTestPlayer(t)

	p.Respawn(100, 200)
	require.Equal(t, PlayerRespawning, p.State())
	assert.False(t, p.Active)

	step(21, 0.1, p.Update)

	assert.Equal(t, PlayerAlive, p.State())
	assert.Equal(t, 100.0, p.X)
	assert.Equal(t, 200.0, p.Y)
	assert.True(t, p.Invulnerable())
}

func TestPlayer_Movement(t *testing.T) {
	t.Run("up is towards smaller y", func(t *testing.T) {
		p, in := newTestPlayer(t)
		in.hold(KeyUp, KeyRight)

		p.Update(0.1)

		assert.InDelta(t, 70.0, p.X, 1e-9)
		assert.InDelta(t, 204.0, p.Y, 1e-9)
	})

	t.Run("opposite keys cancel", func(t *testing.T) {
		p, in := newTestPlayer(t)
		in.hold(KeyLeft, KeyRight)

		p.Update(0.1)

		assert.Equal(t, 50.0, p.X)
	})

	t.Run("clamped to the field", func(t *testing.T) {
		p, in := newTestPlayer(t)
		in.hold(KeyLeft, KeyUp)
		step(100, 0.1, p.Update)

		assert.Equal(t, 0.0, p.X)
		assert.Equal(t, 0.0, p.Y)

		in.release(KeyLeft, KeyUp)
		in.hold(KeyRight, KeyDown)
		step(100, 0.1, p.Update)

		assert.Equal(t, 800.0-32, p.X)
		assert.Equal(t, 480.0-32, p.Y)
	})
}

func TestPlayer_AddScore(t *testing.T) {
	p, _ := newTestPlayer(t)

	p.AddScore(100)
	p.AddScore(-50)
	p.AddScore(0)
	p.AddScore(200)

	assert.Equal(t, 300, p.Score())
}

func TestPlayer_ReadyToFire(t *testing.T) {
	p, in := newTestPlayer(t)
	assert.False(t, p.ReadyToFire(), "fire not held")

	in.hold(KeyFire)
	require.True(t, p.ReadyToFire())

	p.ResetShootTimer()
	assert.False(t, p.ReadyToFire())

	step(3, 0.1, p.Update)
	assert.True(t, p.ReadyToFire())
}

func TestPlayer_RenderFlashesWhileInvulnerable(t *testing.T) {
	p, _ := newTestPlayer(t)
	p.Damage()

	drawn := 0
	for range 30 {
		r := &fakeRenderer{}
		p.Render(r)
		drawn += len(r.calls)
		p.Update(0.1)
	}

	assert.Greater(t, drawn, 0)
	assert.Less(t, drawn, 30)
}
