package game

import (
	"fmt"
	"log"
	"math/rand"
)

// Session is one play-through: it owns the world and advances it frame by frame
type Session struct {
	cfg Config

	background  *Background
	player      *Player
	weapon      *BasicWeapon
	enemyWeapon *BasicWeapon
	spawner     *EnemySpawner
	collisions  *CollisionManager

	paused   bool
	gameOver bool

	elapsed float64
	kills   int
}

// NewSession validates cfg and builds a fresh world drawing with assets
func NewSession(cfg Config, input Input, assets AssetProvider, rng *rand.Rand) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	background, err := NewBackground(
		assets.BackgroundSprites(),
		cfg.Background.Parallax,
		cfg.Background.ScrollSpeed,
		cfg.FieldWidth,
		cfg.FieldHeight,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create background: %w", err)
	}

	field := Rect{W: cfg.FieldWidth, H: cfg.FieldHeight}
	player := NewPlayer(cfg, input, assets.PlayerSprite())
	weapon := NewBasicWeapon(cfg.Weapon, FactionPlayer, field, assets.ProjectileSprite(), rng)
	spawner := NewEnemySpawner(cfg, DefaultEnemyDefinitions(cfg, assets), rng)

	s := &Session{
		cfg:        cfg,
		background: background,
		player:     player,
		weapon:     weapon,
		spawner:    spawner,
		collisions: NewCollisionManager(player, weapon, spawner),
	}

	if cfg.EnemyFire {
		// Each shooter paces itself with its own shoot timer, so the shared
		// weapon has no cooldown of its own.
		s.enemyWeapon = NewBasicWeapon(cfg.Weapon, FactionEnemy, field, assets.ProjectileSprite(), rng)
		s.enemyWeapon.SetCooldown(0)
		s.collisions.SetEnemyWeapon(s.enemyWeapon)
	}

	return s, nil
}

// Config returns the configuration the session was built with
func (s *Session) Config() Config { return s.cfg }

// Player returns the player ship
func (s *Session) Player() *Player { return s.player }

// Spawner returns the enemy spawner
func (s *Session) Spawner() *EnemySpawner { return s.spawner }

// Weapon returns the player's weapon
func (s *Session) Weapon() *BasicWeapon { return s.weapon }

// EnemyWeapon returns the shared enemy weapon, nil when enemy fire is off
func (s *Session) EnemyWeapon() *BasicWeapon { return s.enemyWeapon }

// Score returns the player's score
func (s *Session) Score() int { return s.player.Score() }

// Lives returns the player's remaining lives
func (s *Session) Lives() int { return s.player.Lives() }

// Level returns the spawner's difficulty level
func (s *Session) Level() int { return s.spawner.Level() }

// Kills returns the number of enemies destroyed so far
func (s *Session) Kills() int { return s.kills }

// Elapsed returns simulated seconds played, excluding pauses
func (s *Session) Elapsed() float64 { return s.elapsed }

// GameOver reports whether the player has run out of lives and the death
// animation has finished
func (s *Session) GameOver() bool { return s.gameOver }

// Paused reports whether updates are suspended
func (s *Session) Paused() bool { return s.paused }

// TogglePause suspends or resumes the session
func (s *Session) TogglePause() {
	if !s.gameOver {
		s.paused = !s.paused
	}
}

// Update advances the world by deltaTime seconds
func (s *Session) Update(deltaTime float64) {
	if s.paused || s.gameOver {
		return
	}
	s.elapsed += deltaTime

	s.background.Update(deltaTime)
	s.player.Update(deltaTime)
	s.weapon.Update(deltaTime)
	if s.enemyWeapon != nil {
		s.enemyWeapon.Update(deltaTime)
	}
	s.spawner.Update(deltaTime)

	if s.player.ReadyToFire() && s.weapon.Fire(s.player.Muzzle()) {
		s.player.ResetShootTimer()
	}
	if s.enemyWeapon != nil {
		for _, e := range s.spawner.Enemies() {
			if e.ReadyToFire() && s.enemyWeapon.Fire(e.Muzzle()) {
				e.ResetShootTimer()
			}
		}
	}

	report := s.collisions.CheckCollisions()
	s.kills += report.EnemiesDestroyed
	if report.PlayerDied && s.cfg.Debug {
		log.Printf("Player destroyed at %.1fs with score %d", s.elapsed, s.player.Score())
	}

	if s.player.State() == PlayerGameOver {
		s.gameOver = true
		if s.cfg.Debug {
			log.Printf("Game over: score %d, level %d, kills %d", s.player.Score(), s.spawner.Level(), s.kills)
		}
	}
}

// Render draws the world back to front
func (s *Session) Render(r Renderer) {
	s.background.Render(r)
	s.spawner.Render(r)
	if s.enemyWeapon != nil {
		s.enemyWeapon.Render(r)
	}
	s.player.Render(r)
	s.weapon.Render(r)
}
