package game

import "math"

// PlayerState is the player's life-cycle state
type PlayerState int

const (
	PlayerAlive PlayerState = iota
	PlayerDying
	PlayerRespawning
	PlayerGameOver
)

func (s PlayerState) String() string {
	switch s {
	case PlayerAlive:
		return "alive"
	case PlayerDying:
		return "dying"
	case PlayerRespawning:
		return "respawning"
	case PlayerGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// deathSpin is how fast the ship turns while the death animation plays, in degrees per second
const deathSpin = 360.0

// Player is the ship steered by Input
type Player struct {
	Entity

	cfg    PlayerConfig
	fieldW float64
	fieldH float64
	input  Input

	state      PlayerState
	stateTimer float64 // time left in Dying or Respawning

	lives int
	score int

	invulnerable      bool
	invulnerableTimer float64

	shootTimer float64

	respawnX, respawnY float64
}

// NewPlayer creates a player at the configured start position
func NewPlayer(cfg Config, input Input, sprite Sprite) *Player {
	pc := cfg.Player
	return &Player{
		Entity:   NewEntity(pc.StartX, pc.StartY, pc.Width, pc.Height, sprite),
		cfg:      pc,
		fieldW:   cfg.FieldWidth,
		fieldH:   cfg.FieldHeight,
		input:    input,
		state:    PlayerAlive,
		lives:    pc.Lives,
		respawnX: pc.StartX,
		respawnY: pc.StartY,
	}
}

// Faction implements Collidable
func (p *Player) Faction() Faction { return FactionPlayer }

// State returns the current life-cycle state
func (p *Player) State() PlayerState { return p.state }

// Lives returns the remaining lives
func (p *Player) Lives() int { return p.lives }

// Score returns the accumulated score
func (p *Player) Score() int { return p.score }

// Invulnerable reports whether Damage is currently ignored
func (p *Player) Invulnerable() bool {
	return p.invulnerable || p.state != PlayerAlive
}

// AddScore adds points; non-positive amounts are ignored
func (p *Player) AddScore(points int) {
	if points > 0 {
		p.score += points
	}
}

// AddLives grants extra lives unless the game is already over
func (p *Player) AddLives(n int) {
	if n > 0 && p.state != PlayerGameOver {
		p.lives += n
	}
}

// Damage costs one life. It returns true when that was the last life.
func (p *Player) Damage() bool {
	if p.Invulnerable() {
		return false
	}

	p.lives--
	if p.lives <= 0 {
		p.lives = 0
		p.state = PlayerDying
		p.stateTimer = p.cfg.DeathTime
		p.VX, p.VY = 0, 0
		return true
	}

	p.startInvulnerability()
	return false
}

// Respawn sets where the ship reappears and starts the respawn countdown
func (p *Player) Respawn(x, y float64) {
	p.respawnX, p.respawnY = x, y
	if p.lives <= 0 || p.state == PlayerGameOver {
		return
	}
	p.state = PlayerRespawning
	p.stateTimer = p.cfg.RespawnTime
	p.Active = false
	p.VX, p.VY = 0, 0
}

// ReadyToFire reports whether the fire key is held and the shot timer allows a shot
func (p *Player) ReadyToFire() bool {
	return p.state == PlayerAlive && p.Active && p.shootTimer <= 0 &&
		p.input != nil && p.input.IsPressed(KeyFire)
}

// ResetShootTimer starts the player's own cooldown after a shot was fired
func (p *Player) ResetShootTimer() {
	p.shootTimer = p.cfg.ShootCooldown
}

// Muzzle returns the point projectiles leave the ship from
func (p *Player) Muzzle() (float64, float64) {
	return p.X + p.Width(), p.Y + p.Height()/2
}

// Update advances the state machine and, while alive, applies input
func (p *Player) Update(deltaTime float64) {
	switch p.state {
	case PlayerGameOver:
		return

	case PlayerDying:
		p.stateTimer -= deltaTime
		p.Rotation = math.Mod(p.Rotation+deathSpin*deltaTime, 360)
		if p.stateTimer > 0 {
			return
		}
		p.Rotation = 0
		if p.lives > 0 {
			p.Respawn(p.respawnX, p.respawnY)
			return
		}
		p.state = PlayerGameOver
		p.stateTimer = 0
		p.Active = false
		return

	case PlayerRespawning:
		p.stateTimer -= deltaTime
		if p.stateTimer > 0 {
			return
		}
		p.X, p.Y = p.respawnX, p.respawnY
		p.Active = true
		p.state = PlayerAlive
		p.stateTimer = 0
		p.startInvulnerability()
		return
	}

	if p.invulnerable {
		p.invulnerableTimer -= deltaTime
		if p.invulnerableTimer <= 0 {
			p.invulnerable = false
			p.invulnerableTimer = 0
		}
	}
	if p.shootTimer > 0 {
		p.shootTimer -= deltaTime
	}

	p.VX, p.VY = 0, 0
	if p.input != nil {
		p.VX = axis(p.input, KeyLeft, KeyRight) * p.cfg.Speed
		p.VY = axis(p.input, KeyUp, KeyDown) * p.cfg.Speed
	}
	p.Entity.Update(deltaTime)

	p.X = clamp(p.X, 0, p.fieldW-p.Width())
	p.Y = clamp(p.Y, 0, p.fieldH-p.Height())
}

// Render draws the ship, blinking while invulnerable and spinning out while dying
func (p *Player) Render(r Renderer) {
	if !p.Active || p.Sprite == nil {
		return
	}
	switch {
	case p.state == PlayerDying:
		fade := 1.0
		if p.cfg.DeathTime > 0 {
			fade = p.stateTimer / p.cfg.DeathTime
		}
		r.DrawSprite(p.Sprite, p.drawOptions(Alpha(fade)))
	case p.invulnerable:
		if int(p.invulnerableTimer*10)%2 == 0 {
			r.DrawSprite(p.Sprite, p.drawOptions(White))
		}
	default:
		r.DrawSprite(p.Sprite, p.drawOptions(White))
	}
}

func (p *Player) startInvulnerability() {
	p.invulnerable = true
	p.invulnerableTimer = p.cfg.InvulnerabilityTime
}
