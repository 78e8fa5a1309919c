package game

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned (wrapped) by Config.Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds game configuration constants
type Config struct {
	// Title is the window title
	Title string `yaml:"title"`

	// FieldWidth is the logical play-field width in pixels
	FieldWidth float64 `yaml:"field_width"`

	// FieldHeight is the logical play-field height in pixels
	FieldHeight float64 `yaml:"field_height"`

	// ScreenWidth is the window width in pixels
	ScreenWidth int `yaml:"screen_width"`

	// ScreenHeight is the window height in pixels
	ScreenHeight int `yaml:"screen_height"`

	// MaxDeltaTime caps a single frame step in seconds
	MaxDeltaTime float64 `yaml:"max_delta_time"`

	// EnemyFire lets SHOOTER enemies fire back at the player
	EnemyFire bool `yaml:"enemy_fire"`

	// Debug enables diagnostic logging and the FPS readout
	Debug bool `yaml:"debug"`

	Player     PlayerConfig     `yaml:"player"`
	Weapon     WeaponConfig     `yaml:"weapon"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Spawner    SpawnerConfig    `yaml:"spawner"`
	Background BackgroundConfig `yaml:"background"`
}

// PlayerConfig tunes the player ship.
type PlayerConfig struct {
	Speed               float64 `yaml:"speed"` // pixels per second
	Lives               int     `yaml:"lives"`
	DeathTime           float64 `yaml:"death_time"`   // seconds
	RespawnTime         float64 `yaml:"respawn_time"` // seconds
	InvulnerabilityTime float64 `yaml:"invulnerability_time"`
	ShootCooldown       float64 `yaml:"shoot_cooldown"`
	Width               float64 `yaml:"width"`
	Height              float64 `yaml:"height"`
	StartX              float64 `yaml:"start_x"`
	StartY              float64 `yaml:"start_y"`
}

// WeaponConfig tunes the basic weapon and its projectiles.
type WeaponConfig struct {
	Cooldown         float64 `yaml:"cooldown"`
	Damage           int     `yaml:"damage"`
	ProjectileSpeed  float64 `yaml:"projectile_speed"`
	ProjectileWidth  float64 `yaml:"projectile_width"`
	ProjectileHeight float64 `yaml:"projectile_height"`
}

// EnemyConfig holds the base numbers every enemy profile is scaled from.
type EnemyConfig struct {
	BaseSpeed     float64 `yaml:"base_speed"`
	BaseHealth    int     `yaml:"base_health"`
	BaseScore     int     `yaml:"base_score"`
	ShootInterval float64 `yaml:"shoot_interval"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	SineAmplitude float64 `yaml:"sine_amplitude"`
	SineFrequency float64 `yaml:"sine_frequency"`
}

// SpawnerConfig tunes spawn pacing and difficulty escalation.
type SpawnerConfig struct {
	SpawnInterval       float64 `yaml:"spawn_interval"`
	DifficultyInterval  float64 `yaml:"difficulty_interval"`
	MinSpawnInterval    float64 `yaml:"min_spawn_interval"`
	Decay               float64 `yaml:"decay"`
	EscalationsPerLevel int     `yaml:"escalations_per_level"`
	WavePeriod          float64 `yaml:"wave_period"` // seconds per WAVE bucket
}

// BackgroundConfig tunes parallax scrolling.
type BackgroundConfig struct {
	ScrollSpeed float64   `yaml:"scroll_speed"`
	Parallax    []float64 `yaml:"parallax"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		Title:        "2D Sidescrolling Shooter",
		FieldWidth:   800,
		FieldHeight:  480,
		ScreenWidth:  800,
		ScreenHeight: 480,
		MaxDeltaTime: 0.1,
		Player: PlayerConfig{
			Speed:               200,
			Lives:               3,
			DeathTime:           2,
			RespawnTime:         2,
			InvulnerabilityTime: 3,
			ShootCooldown:       0.25,
			Width:               32,
			Height:              32,
			StartX:              50,
			StartY:              480/2 - 16,
		},
		Weapon: WeaponConfig{
			Cooldown:         0.25,
			Damage:           1,
			ProjectileSpeed:  400,
			ProjectileWidth:  16,
			ProjectileHeight: 16,
		},
		Enemy: EnemyConfig{
			BaseSpeed:     100,
			BaseHealth:    1,
			BaseScore:     100,
			ShootInterval: 2,
			Width:         32,
			Height:        32,
			SineAmplitude: 50,
			SineFrequency: 2,
		},
		Spawner: SpawnerConfig{
			SpawnInterval:       2,
			DifficultyInterval:  10,
			MinSpawnInterval:    0.5,
			Decay:               0.9,
			EscalationsPerLevel: 3,
			WavePeriod:          5,
		},
		Background: BackgroundConfig{
			ScrollSpeed: 60,
			Parallax:    []float64{0.2, 0.5, 0.8},
		},
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig. Keys that are absent keep
// their default value; unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	if err := cfg.decode(f); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) decode(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to decode config: %w", err)
	}
	return c.Validate()
}

// Validate reports the first setting that would break the simulation.
func (c Config) Validate() error {
	switch {
	case c.FieldWidth <= 0 || c.FieldHeight <= 0:
		return fmt.Errorf("%w: field size %.0fx%.0f", ErrInvalidConfig, c.FieldWidth, c.FieldHeight)
	case c.ScreenWidth <= 0 || c.ScreenHeight <= 0:
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalidConfig, c.ScreenWidth, c.ScreenHeight)
	case c.MaxDeltaTime <= 0:
		return fmt.Errorf("%w: max_delta_time must be positive", ErrInvalidConfig)
	case c.Player.Lives <= 0:
		return fmt.Errorf("%w: player lives must be positive", ErrInvalidConfig)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player size", ErrInvalidConfig)
	case c.Player.Width > c.FieldWidth || c.Player.Height > c.FieldHeight:
		return fmt.Errorf("%w: player does not fit in the field", ErrInvalidConfig)
	case c.Weapon.Cooldown < 0:
		return fmt.Errorf("%w: weapon cooldown is negative", ErrInvalidConfig)
	case c.Weapon.Damage <= 0:
		return fmt.Errorf("%w: weapon damage must be positive", ErrInvalidConfig)
	case c.Weapon.ProjectileWidth <= 0 || c.Weapon.ProjectileHeight <= 0:
		return fmt.Errorf("%w: projectile size", ErrInvalidConfig)
	case c.Enemy.BaseHealth <= 0:
		return fmt.Errorf("%w: enemy base_health must be positive", ErrInvalidConfig)
	case c.Enemy.Width <= 0 || c.Enemy.Height <= 0 || c.Enemy.Height > c.FieldHeight:
		return fmt.Errorf("%w: enemy size", ErrInvalidConfig)
	case c.Spawner.SpawnInterval <= 0 || c.Spawner.MinSpawnInterval <= 0:
		return fmt.Errorf("%w: spawn intervals must be positive", ErrInvalidConfig)
	case c.Spawner.DifficultyInterval <= 0:
		return fmt.Errorf("%w: difficulty_interval must be positive", ErrInvalidConfig)
	case c.Spawner.Decay <= 0 || c.Spawner.Decay > 1:
		return fmt.Errorf("%w: decay must be in (0, 1]", ErrInvalidConfig)
	case c.Spawner.EscalationsPerLevel <= 0:
		return fmt.Errorf("%w: escalations_per_level must be positive", ErrInvalidConfig)
	case c.Spawner.WavePeriod < 0.001:
		return fmt.Errorf("%w: wave_period must be at least 1ms", ErrInvalidConfig)
	}
	return nil
}
