package game

import "math"

// EnemyType defines different types of enemies
type EnemyType int

const (
	EnemyBasic    EnemyType = iota // Flies straight left
	EnemySineWave                  // Weaves up and down along a sine curve
	EnemyShooter                   // Slow, can return fire
	EnemyFast                      // Quick straight flyer
	EnemyTank                      // Slow and takes several hits
	enemyTypeCount
)

// EnemyTypes lists every enemy type in declaration order
var EnemyTypes = [...]EnemyType{EnemyBasic, EnemySineWave, EnemyShooter, EnemyFast, EnemyTank}

func (t EnemyType) String() string {
	if t >= 0 && t < enemyTypeCount {
		return enemyProfiles[t].name
	}
	return "unknown"
}

// moveFunc advances an enemy by one step
type moveFunc func(e *Enemy, deltaTime float64)

// enemyProfile scales the base EnemyConfig numbers for one type
type enemyProfile struct {
	name          string
	speed         float64 // multiplier on BaseSpeed
	health        int     // multiplier on BaseHealth
	score         int     // multiplier on BaseScore
	shootInterval float64 // multiplier on ShootInterval
	minLevel      int     // first spawner level the type can appear at
	canShoot      bool
	move          moveFunc
}

var enemyProfiles = [enemyTypeCount]enemyProfile{
	EnemyBasic: {
		name: "basic", speed: 1, health: 1, score: 1, shootInterval: 1,
		minLevel: 1, move: moveStraight,
	},
	EnemySineWave: {
		name: "sine", speed: 1, health: 1, score: 2, shootInterval: 1,
		minLevel: 2, move: moveSine,
	},
	EnemyShooter: {
		name: "shooter", speed: 0.7, health: 1, score: 3, shootInterval: 0.75, // 1.5s at the default interval
		minLevel: 4, canShoot: true, move: moveStraight,
	},
	EnemyFast: {
		name: "fast", speed: 1.5, health: 1, score: 2, shootInterval: 1,
		minLevel: 3, move: moveStraight,
	},
	EnemyTank: {
		name: "tank", speed: 0.5, health: 3, score: 4, shootInterval: 1,
		minLevel: 5, move: moveStraight,
	},
}

// EnemyDefinition is the immutable template enemies of one type are built from
type EnemyDefinition struct {
	Type          EnemyType
	Health        int
	Score         int
	Speed         float64 // pixels per second, leftwards
	ShootInterval float64 // seconds
	Sprite        Sprite
	Width, Height float64

	// Sine movement; zero for straight flyers
	Amplitude float64
	Frequency float64
}

// NewEnemyDefinition builds the template for one type from the base numbers
func NewEnemyDefinition(t EnemyType, cfg EnemyConfig, sprite Sprite) EnemyDefinition {
	p := enemyProfiles[t]
	def := EnemyDefinition{
		Type:          t,
		Health:        cfg.BaseHealth * p.health,
		Score:         cfg.BaseScore * p.score,
		Speed:         cfg.BaseSpeed * p.speed,
		ShootInterval: cfg.ShootInterval * p.shootInterval,
		Sprite:        sprite,
		Width:         cfg.Width,
		Height:        cfg.Height,
	}
	if t == EnemySineWave {
		def.Amplitude = cfg.SineAmplitude
		def.Frequency = cfg.SineFrequency
	}
	return def
}

// DefaultEnemyDefinitions returns one definition per type, indexed by EnemyType
func DefaultEnemyDefinitions(cfg Config, assets AssetProvider) []EnemyDefinition {
	defs := make([]EnemyDefinition, enemyTypeCount)
	for _, t := range EnemyTypes {
		var sprite Sprite
		if assets != nil {
			sprite = assets.EnemySprite(t)
		}
		defs[t] = NewEnemyDefinition(t, cfg.Enemy, sprite)
	}
	return defs
}

// MinLevel returns the first spawner level the type can appear at
func (t EnemyType) MinLevel() int {
	return enemyProfiles[t].minLevel
}

func moveStraight(e *Enemy, deltaTime float64) {
	e.Entity.Update(deltaTime)
}

func moveSine(e *Enemy, deltaTime float64) {
	e.Entity.Update(deltaTime)
	e.Y = e.initialY + e.amplitude*math.Sin(e.frequency*e.elapsed)
}
