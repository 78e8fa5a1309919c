package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, cfg Config) (*Session, *fakeInput) {
	t.Helper()
	in := newFakeInput()
	s, err := NewSession(cfg, in, fakeAssets{layers: len(cfg.Background.Parallax)}, testRNG())
	require.NoError(t, err)
	return s, in
}

func TestNewSession_Errors(t *testing.T) {
	t.Run("invalid config", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Player.Lives = 0

		_, err := NewSession(cfg, newFakeInput(), NopAssets{Layers: 3}, testRNG())

		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("layer mismatch", func(t *testing.T) {
		_, err := NewSession(DefaultConfig(), newFakeInput(), NopAssets{Layers: 1}, testRNG())

		assert.ErrorIs(t, err, ErrLayerMismatch)
	})
}

func TestSession_FirstFrame(t *testing.T) {
	s, _ := newTestSession(t, DefaultConfig())

	s.Update(1.0 / 60)

	assert.Len(t, s.Spawner().Enemies(), 1)
	assert.Equal(t, 3, s.Lives())
	assert.Equal(t, 1, s.Level())
	assert.Zero(t, s.Score())
	assert.False(t, s.GameOver())
	assert.Nil(t, s.EnemyWeapon())
}

func TestSession_Firing(t *testing.T) {
	s, in := newTestSession(t, DefaultConfig())
	in.hold(KeyFire)

	s.Update(0.01)
	require.Len(t, s.Weapon().Projectiles(), 1)

	px, py := s.Player().Muzzle()
	p := s.Weapon().Projectiles()[0]
	assert.Equal(t, px, p.X)
	assert.Equal(t, py-8, p.Y)

	// both the ship's and the weapon's cooldowns gate the next shot
	step(10, 0.01, s.Update)
	assert.Len(t, s.Weapon().Projectiles(), 1)

	step(20, 0.01, s.Update)
	assert.Len(t, s.Weapon().Projectiles(), 2)
}

func TestSession_ShootsDownEnemies(t *testing.T) {
	s, in := newTestSession(t, DefaultConfig())

	// park the first enemy in the player's line of fire
	s.Update(0.01)
	enemy := s.Spawner().Enemies()[0]
	enemy.Y = s.Player().Y
	enemy.X = 400

	in.hold(KeyFire)
	step(100, 0.01, s.Update)

	assert.False(t, enemy.Active)
	assert.GreaterOrEqual(t, s.Score(), 100)
	assert.GreaterOrEqual(t, s.Kills(), 1)
}

func TestSession_GameOver(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Player.Lives = 1
	s, _ := newTestSession(t, cfg)

	s.Update(0.01)
	enemy := s.Spawner().Enemies()[0]
	enemy.X, enemy.Y = s.Player().X, s.Player().Y

	s.Update(0.01)
	require.Equal(t, PlayerDying, s.Player().State())
	assert.False(t, s.GameOver(), "death animation plays first")

	step(300, 0.01, s.Update)

	assert.True(t, s.GameOver())
	assert.Equal(t, 0, s.Lives())

	elapsed := s.Elapsed()
	s.Update(1)
	assert.Equal(t, elapsed, s.Elapsed(), "a finished session no longer advances")
}

func TestSession_Pause(t *testing.T) {
	s, in := newTestSession(t, DefaultConfig())
	in.hold(KeyRight)

	s.TogglePause()
	require.True(t, s.Paused())
	s.Update(1)

	assert.Equal(t, 50.0, s.Player().X)
	assert.Empty(t, s.Spawner().Enemies())

	s.TogglePause()
	s.Update(0.1)
	assert.InDelta(t, 70.0, s.Player().X, 1e-9)
}

func TestSession_EnemyFire(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EnemyFire = true
	s, _ := newTestSession(t, cfg)
	require.NotNil(t, s.EnemyWeapon())

	s.Spawner().SetLevel(4)
	shooter := NewEnemy(DefaultEnemyDefinitions(cfg, fakeAssets{})[EnemyShooter], 700, 50)
	s.Spawner().enemies = append(s.Spawner().enemies, shooter)
	s.Spawner().spawnTimer = 100

	step(16, 0.1, s.Update)

	assert.NotEmpty(t, s.EnemyWeapon().Projectiles())
	assert.Equal(t, -400.0, s.EnemyWeapon().Projectiles()[0].VX)
}

func TestSession_Render(t *testing.T) {
	s, in := newTestSession(t, DefaultConfig())
	in.hold(KeyFire)
	s.Update(0.01)

	r := &fakeRenderer{}
	s.Render(r)

	// 3 layers x 2 tiles, 1 enemy, the player, a projectile with glow, flash
	assert.Len(t, r.calls, 6+1+1+2+1+flashParticles)
}
