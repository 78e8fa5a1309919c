package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type collisionFixture struct {
	player  *Player
	weapon  *BasicWeapon
	enemies staticEnemies
	manager *CollisionManager
}

func newCollisionFixture(enemies ...*Enemy) *collisionFixture {
	player := NewPlayer(DefaultConfig(), newFakeInput(), nil)
	weapon := newTestWeapon(FactionPlayer)
	weapon.SetCooldown(0)
	f := &collisionFixture{
		player:  player,
		weapon:  weapon,
		enemies: staticEnemies(enemies),
	}
	f.manager = NewCollisionManager(player, weapon, f.enemies)
	return f
}

func TestCollisionManager_ProjectileKillAwardsScoreOnce(t *testing.T) {
	enemy := NewEnemy(testDefinitions()[EnemySineWave], 400, 100)
	f := newCollisionFixture(enemy)
	f.weapon.Fire(400, 116)
	f.weapon.Fire(400, 116)

	report := f.manager.CheckCollisions()

	assert.False(t, enemy.Active)
	assert.Equal(t, 1, report.EnemiesDestroyed)
	assert.Equal(t, 200, report.ScoreAwarded)
	assert.Equal(t, 200, f.player.Score())
	assert.Len(t, f.weapon.Projectiles(), 1, "second projectile is not spent on a dead enemy")

	report = f.manager.CheckCollisions()

	assert.Equal(t, CollisionReport{}, report)
	assert.Equal(t, 200, f.player.Score())
	assert.Len(t, f.weapon.Projectiles(), 1)
}

func TestCollisionManager_TankNeedsThreeHits(t *testing.T) {
	tank := NewEnemy(testDefinitions()[EnemyTank], 400, 100)
	f := newCollisionFixture(tank)

	for i := range 3 {
		f.weapon.Fire(400, 116)
		report := f.manager.CheckCollisions()
		if i < 2 {
			assert.Zero(t, report.ScoreAwarded)
			assert.True(t, tank.Active)
		} else {
			assert.Equal(t, 400, report.ScoreAwarded)
			assert.False(t, tank.Active)
		}
	}
	assert.Equal(t, 400, f.player.Score())
}

func TestCollisionManager_ShotsDealProjectileDamage(t *testing.T) {
	tank := NewEnemy(testDefinitions()[EnemyTank], 400, 100)
	f := newCollisionFixture(tank)
	cfg := DefaultConfig().Weapon
	cfg.Damage = 3
	heavy := NewBasicWeapon(cfg, FactionPlayer, testField, testSprite, testRNG())
	f.manager = NewCollisionManager(f.player, heavy, f.enemies)
	heavy.Fire(400, 116)

	report := f.manager.CheckCollisions()

	assert.False(t, tank.Active, "one heavy shot destroys a tank")
	assert.Equal(t, 1, report.EnemiesDestroyed)
	assert.Equal(t, 400, report.ScoreAwarded)
}

func TestCollisionManager_PlayerContact(t *testing.T) {
	defs := testDefinitions()

	t.Run("damages every touched enemy but costs one life", func(t *testing.T) {
		a := NewEnemy(defs[EnemyBasic], 60, 230)
		b := NewEnemy(defs[EnemyTank], 40, 220)
		far := NewEnemy(defs[EnemyBasic], 600, 100)
		f := newCollisionFixture(a, b, far)

		report := f.manager.CheckCollisions()

		assert.Equal(t, 2, f.player.Lives())
		assert.True(t, f.player.Invulnerable())
		assert.False(t, a.Active)
		assert.Equal(t, 2, b.Health())
		assert.True(t, far.Active)
		assert.False(t, report.PlayerDied)
		assert.Equal(t, 1, report.EnemiesDestroyed)
		assert.Zero(t, report.ScoreAwarded, "ramming does not score")
	})

	t.Run("invulnerable player is skipped", func(t *testing.T) {
		e := NewEnemy(defs[EnemyBasic], 60, 230)
		f := newCollisionFixture(e)
		f.player.Damage()

		f.manager.CheckCollisions()

		assert.True(t, e.Active)
		assert.Equal(t, 2, f.player.Lives())
	})

	t.Run("last life reports death", func(t *testing.T) {
		e := NewEnemy(defs[EnemyTank], 60, 230)
		f := newCollisionFixture(e)
		killPlayer(f.player)
		f.player.AddLives(1)
		step(50, 0.1, f.player.Update)
		step(31, 0.1, f.player.Update)
		require.Equal(t, PlayerAlive, f.player.State())
		require.False(t, f.player.Invulnerable())
		e.X, e.Y = f.player.X, f.player.Y

		report := f.manager.CheckCollisions()

		assert.True(t, report.PlayerDied)
		assert.Equal(t, PlayerDying, f.player.State())
	})
}

func TestCollisionManager_EnemyFire(t *testing.T) {
	f := newCollisionFixture()
	enemyWeapon := newTestWeapon(FactionEnemy)
	f.manager.SetEnemyWeapon(enemyWeapon)

	enemyWeapon.Fire(f.player.X+10, f.player.Y+16)
	report := f.manager.CheckCollisions()

	assert.False(t, report.PlayerDied)
	assert.Equal(t, 2, f.player.Lives())
	assert.Empty(t, enemyWeapon.Projectiles())

	f.manager.SetEnemyWeapon(nil)
	assert.NotPanics(t, func() { f.manager.CheckCollisions() })
}

func TestCollisionManager_InactivePlayerTakesNoContact(t *testing.T) {
	e := NewEnemy(testDefinitions()[EnemyBasic], 60, 230)
	f := newCollisionFixture(e)
	f.player.Respawn(50, 224)

	f.manager.CheckCollisions()

	assert.True(t, e.Active)
	assert.Equal(t, 3, f.player.Lives())
}
