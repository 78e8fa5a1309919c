package game

// EnemySource provides the enemies collisions are checked against
type EnemySource interface {
	Enemies() []*Enemy
}

// CollisionReport summarises one CheckCollisions pass
type CollisionReport struct {
	PlayerDied       bool
	EnemiesDestroyed int
	ScoreAwarded     int
}

// CollisionManager resolves player, enemy and projectile contacts. It does not
// own anything it checks.
type CollisionManager struct {
	player       *Player
	playerWeapon Weapon
	enemyWeapon  Weapon
	enemies      EnemySource
}

// NewCollisionManager creates a collision manager
func NewCollisionManager(player *Player, playerWeapon Weapon, enemies EnemySource) *CollisionManager {
	return &CollisionManager{
		player:       player,
		playerWeapon: playerWeapon,
		enemies:      enemies,
	}
}

// SetEnemyWeapon attaches the weapon enemies fire with; nil detaches it
func (c *CollisionManager) SetEnemyWeapon(w Weapon) {
	c.enemyWeapon = w
}

// CheckCollisions resolves ship contacts first, then player shots against
// enemies, then enemy shots against the player. Contacts deal 1 damage, shots
// deal their projectile's damage.
func (c *CollisionManager) CheckCollisions() CollisionReport {
	var report CollisionReport
	enemies := c.enemies.Enemies()

	if c.player.Active && !c.player.Invulnerable() {
		for _, e := range enemies {
			if !e.Active || !c.player.CollidesWith(&e.Entity) {
				continue
			}
			if c.player.Damage() {
				report.PlayerDied = true
			}
			if e.Damage(1) {
				report.EnemiesDestroyed++
			}
		}
	}

	for _, e := range enemies {
		if !e.Active {
			continue
		}
		damage, ok := c.playerWeapon.Hit(e)
		if !ok {
			continue
		}
		if e.Damage(damage) {
			report.EnemiesDestroyed++
			report.ScoreAwarded += e.ScoreValue()
			c.player.AddScore(e.ScoreValue())
		}
	}

	if c.enemyWeapon != nil && c.player.Active && !c.player.Invulnerable() {
		if c.enemyWeapon.CheckCollision(c.player) && c.player.Damage() {
			report.PlayerDied = true
		}
	}

	return report
}
