package game

// Enemy is a hostile ship flying in from the right edge
type Enemy struct {
	Entity

	Type EnemyType

	health     int
	scoreValue int

	shootTimer    float64
	shootInterval float64

	initialY  float64
	elapsed   float64
	amplitude float64
	frequency float64
}

// NewEnemy creates an active enemy from its definition at x, y
func NewEnemy(def EnemyDefinition, x, y float64) *Enemy {
	e := &Enemy{
		Entity:        NewEntity(x, y, def.Width, def.Height, def.Sprite),
		Type:          def.Type,
		health:        def.Health,
		scoreValue:    def.Score,
		shootTimer:    def.ShootInterval,
		shootInterval: def.ShootInterval,
		initialY:      y,
		amplitude:     def.Amplitude,
		frequency:     def.Frequency,
	}
	e.VX = -def.Speed
	return e
}

// Faction implements Collidable
func (e *Enemy) Faction() Faction { return FactionEnemy }

// Health returns the remaining hit points, never below zero
func (e *Enemy) Health() int { return e.health }

// ScoreValue returns the points awarded for destroying this enemy
func (e *Enemy) ScoreValue() int { return e.scoreValue }

// Update moves the enemy and retires it once it leaves the left edge or dies
func (e *Enemy) Update(deltaTime float64) {
	if !e.Active {
		return
	}

	e.elapsed += deltaTime
	if e.shootTimer > 0 {
		e.shootTimer -= deltaTime
	}
	enemyProfiles[e.Type].move(e, deltaTime)

	if e.X < -e.Width() || e.health <= 0 {
		e.Active = false
	}
}

// Damage removes hit points and returns true when this call destroyed the enemy
func (e *Enemy) Damage(amount int) bool {
	if !e.Active {
		return false
	}
	e.health -= amount
	if e.health <= 0 {
		e.health = 0
		e.Active = false
		return true
	}
	return false
}

// CanShoot reports whether this type of enemy returns fire
func (e *Enemy) CanShoot() bool {
	return enemyProfiles[e.Type].canShoot
}

// ReadyToFire reports whether a shooting enemy's timer has run out
func (e *Enemy) ReadyToFire() bool {
	return e.Active && e.CanShoot() && e.shootTimer <= 0
}

// ResetShootTimer restarts the enemy's shot interval
func (e *Enemy) ResetShootTimer() {
	e.shootTimer = e.shootInterval
}

// Muzzle returns the point projectiles leave the ship from
func (e *Enemy) Muzzle() (float64, float64) {
	return e.X, e.Y + e.Height()/2
}
