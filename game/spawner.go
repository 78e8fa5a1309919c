package game

import (
	"log"
	"math/rand"
	"slices"
	"time"
)

// MaxLevel is the highest difficulty level the spawner reaches
const MaxLevel = 5

// SpawnPattern decides which eligible enemy type spawns next
type SpawnPattern int

const (
	PatternRandom      SpawnPattern = iota // uniform over eligible types
	PatternAlternating                     // cycles with the number of live enemies
	PatternWave                            // changes type every WavePeriod of wall-clock time
	patternCount
)

func (p SpawnPattern) String() string {
	switch p {
	case PatternRandom:
		return "random"
	case PatternAlternating:
		return "alternating"
	case PatternWave:
		return "wave"
	default:
		return "unknown"
	}
}

// levelPatterns is the pattern switched to when a level is reached
var levelPatterns = map[int]SpawnPattern{
	2: PatternAlternating,
	3: PatternWave,
	4: PatternRandom,
}

// EnemySpawner owns the live enemies and paces their arrival
type EnemySpawner struct {
	cfg    SpawnerConfig
	fieldW float64
	fieldH float64
	defs   []EnemyDefinition
	debug  bool

	enemies []*Enemy

	spawnTimer      float64
	spawnInterval   float64
	difficultyTimer float64
	escalations     int

	level   int
	pattern SpawnPattern

	rng *rand.Rand
	now func() time.Time
}

// NewEnemySpawner creates a spawner at level 1. defs must hold one definition per
// EnemyType, indexed by type.
func NewEnemySpawner(cfg Config, defs []EnemyDefinition, rng *rand.Rand) *EnemySpawner {
	return &EnemySpawner{
		cfg:           cfg.Spawner,
		fieldW:        cfg.FieldWidth,
		fieldH:        cfg.FieldHeight,
		defs:          defs,
		debug:         cfg.Debug,
		spawnInterval: cfg.Spawner.SpawnInterval,
		level:         1,
		pattern:       PatternRandom,
		rng:           rng,
		now:           time.Now,
	}
}

// SetClock replaces the wall clock used by the wave pattern
func (s *EnemySpawner) SetClock(now func() time.Time) { s.now = now }

// Enemies returns the enemies currently owned by the spawner
func (s *EnemySpawner) Enemies() []*Enemy { return s.enemies }

// ActiveEnemyCount returns how many owned enemies are active
func (s *EnemySpawner) ActiveEnemyCount() int {
	n := 0
	for _, e := range s.enemies {
		if e.Active {
			n++
		}
	}
	return n
}

// Level returns the difficulty level, 1 to MaxLevel
func (s *EnemySpawner) Level() int { return s.level }

// SetLevel sets the difficulty level, clamped to 1..MaxLevel
func (s *EnemySpawner) SetLevel(level int) {
	s.level = min(max(level, 1), MaxLevel)
}

// Pattern returns the current spawn pattern
func (s *EnemySpawner) Pattern() SpawnPattern { return s.pattern }

// SetPattern changes the spawn pattern
func (s *EnemySpawner) SetPattern(p SpawnPattern) { s.pattern = p }

// SpawnInterval returns the current time between spawns in seconds
func (s *EnemySpawner) SpawnInterval() float64 { return s.spawnInterval }

// Update runs the spawn and difficulty timers, then moves and prunes enemies
func (s *EnemySpawner) Update(deltaTime float64) {
	s.spawnTimer -= deltaTime
	if s.spawnTimer <= 0 {
		s.Spawn()
		s.spawnTimer = s.spawnInterval
	}

	s.difficultyTimer += deltaTime
	if s.difficultyTimer >= s.cfg.DifficultyInterval {
		s.escalate()
		s.difficultyTimer = 0
	}

	for _, e := range s.enemies {
		e.Update(deltaTime)
	}
	s.enemies = slices.DeleteFunc(s.enemies, func(e *Enemy) bool {
		return !e.Active
	})
}

// Spawn adds one enemy at the right edge at a random height
func (s *EnemySpawner) Spawn() *Enemy {
	def := s.defs[s.SelectEnemyType()]
	y := s.rng.Float64() * max(s.fieldH-def.Height, 0)
	e := NewEnemy(def, s.fieldW, y)
	s.enemies = append(s.enemies, e)
	return e
}

// EligibleTypes returns the enemy types allowed at the current level
func (s *EnemySpawner) EligibleTypes() []EnemyType {
	types := make([]EnemyType, 0, enemyTypeCount)
	for _, t := range EnemyTypes {
		if t.MinLevel() <= s.level {
			types = append(types, t)
		}
	}
	return types
}

// SelectEnemyType picks the type of the next spawn using the current pattern
func (s *EnemySpawner) SelectEnemyType() EnemyType {
	types := s.EligibleTypes()
	n := len(types)

	var i int
	switch s.pattern {
	case PatternAlternating:
		i = len(s.enemies) % n
	case PatternWave:
		period := max(int64(s.cfg.WavePeriod*1000), 1)
		i = int((s.now().UnixMilli() / period) % int64(n))
	default:
		i = s.rng.Intn(n)
	}
	return types[i]
}

func (s *EnemySpawner) escalate() {
	s.spawnInterval = max(s.spawnInterval*s.cfg.Decay, s.cfg.MinSpawnInterval)
	s.escalations++

	if s.level == MaxLevel {
		s.rotatePattern()
		return
	}
	if s.escalations%s.cfg.EscalationsPerLevel != 0 {
		return
	}

	s.level++
	if p, ok := levelPatterns[s.level]; ok {
		s.pattern = p
	} else {
		s.rotatePattern()
	}
	if s.debug {
		log.Printf("Level up: level %d, pattern %s, spawn interval %.2fs", s.level, s.pattern, s.spawnInterval)
	}
}

func (s *EnemySpawner) rotatePattern() {
	s.pattern = (s.pattern + 1) % patternCount
	if s.debug {
		log.Printf("Spawn pattern changed to %s", s.pattern)
	}
}

// Render draws every active enemy
func (s *EnemySpawner) Render(r Renderer) {
	for _, e := range s.enemies {
		e.Render(r)
	}
}
