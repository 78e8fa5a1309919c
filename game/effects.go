package game

import (
	"math"
	"math/rand"
	"slices"
)

const (
	flashDuration     = 0.25
	flashParticles    = 8
	flashPeakAt       = 0.3 // fraction of the flash spent growing
	flashUnit         = 2.0 // pixels per unit of flash/particle scale
	particleSpeedUnit = 10.0
	particleShrink    = 2.0 // scale lost per second
	particleMinScale  = 0.1
	particleFade      = 5.0 // alpha lost per second

	explosionDuration = 0.3
	explosionGrowth   = 3.0 // scale gained per second
)

type particle struct {
	x, y   float64 // offset from the flash origin
	vx, vy float64
	scale  float64
	alpha  float64
}

// MuzzleFlash is the short burst drawn where a shot leaves the ship
type MuzzleFlash struct {
	X, Y      float64
	timer     float64
	particles [flashParticles]particle
}

func newMuzzleFlash(x, y float64, rng *rand.Rand) *MuzzleFlash {
	f := &MuzzleFlash{X: x, Y: y, timer: flashDuration}
	for i := range f.particles {
		angle := float64(i) * 2 * math.Pi / flashParticles
		speed := (6 + rng.Float64()*10) * particleSpeedUnit
		f.particles[i] = particle{
			vx:    math.Cos(angle) * speed,
			vy:    math.Sin(angle) * speed,
			scale: 2.5 + rng.Float64()*5,
			alpha: 1,
		}
	}
	return f
}

// progress runs from 0 at ignition to 1 when the flash is spent
func (f *MuzzleFlash) progress() float64 {
	return 1 - f.timer/flashDuration
}

// Scale pulses from 10 up to 12 and then down to 5
func (f *MuzzleFlash) Scale() float64 {
	p := clamp(f.progress(), 0, 1)
	if p < flashPeakAt {
		return 10 + 2*(p/flashPeakAt)
	}
	return 12 - 7*((p-flashPeakAt)/(1-flashPeakAt))
}

// Alpha fades from 1 to 0.4
func (f *MuzzleFlash) Alpha() float64 {
	return 1 - 0.6*clamp(f.progress(), 0, 1)
}

// Done reports whether the flash has burnt out
func (f *MuzzleFlash) Done() bool { return f.timer <= 0 }

func (f *MuzzleFlash) update(deltaTime float64) {
	f.timer -= deltaTime
	for i := range f.particles {
		pt := &f.particles[i]
		pt.x += pt.vx * deltaTime
		pt.y += pt.vy * deltaTime
		pt.scale = math.Max(pt.scale-particleShrink*deltaTime, particleMinScale)
		pt.alpha = math.Max(pt.alpha-particleFade*deltaTime, 0)
	}
}

func (f *MuzzleFlash) render(r Renderer, sprite Sprite) {
	r.DrawSprite(sprite, centered(f.X, f.Y, f.Scale()*flashUnit, 0, Alpha(f.Alpha())))
	for _, pt := range f.particles {
		if pt.alpha <= 0 {
			continue
		}
		r.DrawSprite(sprite, centered(f.X+pt.x, f.Y+pt.y, pt.scale*flashUnit, 0, Alpha(pt.alpha)))
	}
}

// Explosion is the puff left where a projectile hit or expired
type Explosion struct {
	X, Y     float64
	Rotation float64
	size     float64
	timer    float64
	scale    float64
}

func newExplosion(x, y, size float64, rng *rand.Rand) *Explosion {
	return &Explosion{
		X:        x,
		Y:        y,
		Rotation: rng.Float64() * 360,
		size:     size,
		timer:    explosionDuration,
		scale:    1,
	}
}

// Alpha fades linearly to zero over the explosion's life
func (e *Explosion) Alpha() float64 {
	return clamp(e.timer/explosionDuration, 0, 1)
}

// Scale grows while the explosion lives
func (e *Explosion) Scale() float64 { return e.scale }

// Done reports whether the explosion has faded out
func (e *Explosion) Done() bool { return e.timer <= 0 }

func (e *Explosion) update(deltaTime float64) {
	e.timer -= deltaTime
	e.scale += explosionGrowth * deltaTime
}

func (e *Explosion) render(r Renderer, sprite Sprite) {
	r.DrawSprite(sprite, centered(e.X, e.Y, e.size*e.scale, e.Rotation, Alpha(e.Alpha())))
}

// Effects owns the cosmetic flashes and explosions of one weapon
type Effects struct {
	sprite     Sprite
	rng        *rand.Rand
	flashes    []*MuzzleFlash
	explosions []*Explosion
}

// NewEffects creates an empty effect list drawing with sprite
func NewEffects(sprite Sprite, rng *rand.Rand) *Effects {
	return &Effects{sprite: sprite, rng: rng}
}

// AddMuzzleFlash starts a flash centred on x, y
func (fx *Effects) AddMuzzleFlash(x, y float64) {
	fx.flashes = append(fx.flashes, newMuzzleFlash(x, y, fx.rng))
}

// AddExplosion starts an explosion of the given base size centred on x, y
func (fx *Effects) AddExplosion(x, y, size float64) {
	fx.explosions = append(fx.explosions, newExplosion(x, y, size, fx.rng))
}

// Flashes returns the live muzzle flashes
func (fx *Effects) Flashes() []*MuzzleFlash { return fx.flashes }

// Explosions returns the live explosions
func (fx *Effects) Explosions() []*Explosion { return fx.explosions }

// Len returns the number of live effects
func (fx *Effects) Len() int { return len(fx.flashes) + len(fx.explosions) }

// Update advances every effect and drops the finished ones
func (fx *Effects) Update(deltaTime float64) {
	for _, f := range fx.flashes {
		f.update(deltaTime)
	}
	for _, e := range fx.explosions {
		e.update(deltaTime)
	}
	fx.flashes = slices.DeleteFunc(fx.flashes, (*MuzzleFlash).Done)
	fx.explosions = slices.DeleteFunc(fx.explosions, (*Explosion).Done)
}

// Render draws every live effect
func (fx *Effects) Render(r Renderer) {
	if fx.sprite == nil {
		return
	}
	for _, e := range fx.explosions {
		e.render(r, fx.sprite)
	}
	for _, f := range fx.flashes {
		f.render(r, fx.sprite)
	}
}
