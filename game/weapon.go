package game

import (
	"math/rand"
	"slices"
)

// Weapon fires and owns projectiles
type Weapon interface {
	// Fire spawns a projectile with its vertical centre on y. It returns false
	// while the weapon is cooling down.
	Fire(x, y float64) bool

	// Update advances the cooldown, the projectiles and their effects
	Update(deltaTime float64)

	// Render draws projectiles and effects
	Render(r Renderer)

	// CheckCollision consumes at most one projectile that hits target
	CheckCollision(target Collidable) bool

	// Hit is CheckCollision that also returns the consumed projectile's damage
	Hit(target Collidable) (damage int, ok bool)

	Cooldown() float64
	SetCooldown(seconds float64)
}

// BasicWeapon shoots single straight projectiles
type BasicWeapon struct {
	cfg    WeaponConfig
	owner  Faction
	field  Rect
	sprite Sprite

	cooldown      float64
	cooldownTimer float64

	projectiles []*Projectile
	effects     *Effects
}

var _ Weapon = (*BasicWeapon)(nil)

// NewBasicWeapon creates a weapon for owner whose projectiles are culled at the
// edges of field
func NewBasicWeapon(cfg WeaponConfig, owner Faction, field Rect, sprite Sprite, rng *rand.Rand) *BasicWeapon {
	return &BasicWeapon{
		cfg:      cfg,
		owner:    owner,
		field:    field,
		sprite:   sprite,
		cooldown: cfg.Cooldown,
		effects:  NewEffects(sprite, rng),
	}
}

// Owner returns the faction the weapon's projectiles belong to
func (w *BasicWeapon) Owner() Faction { return w.owner }

// Cooldown returns the minimum time between shots in seconds
func (w *BasicWeapon) Cooldown() float64 { return w.cooldown }

// SetCooldown changes the minimum time between shots
func (w *BasicWeapon) SetCooldown(seconds float64) {
	w.cooldown = max(seconds, 0)
}

// Projectiles returns the projectiles currently in flight
func (w *BasicWeapon) Projectiles() []*Projectile { return w.projectiles }

// Effects returns the weapon's cosmetic effects
func (w *BasicWeapon) Effects() *Effects { return w.effects }

// Fire implements Weapon
func (w *BasicWeapon) Fire(x, y float64) bool {
	if w.cooldownTimer > 0 {
		return false
	}

	p := NewProjectile(w.cfg, w.owner, x, y-w.cfg.ProjectileHeight/2, w.sprite, w.field)
	w.projectiles = append(w.projectiles, p)

	w.cooldownTimer = w.cooldown
	w.effects.AddMuzzleFlash(x, y)
	return true
}

// Update implements Weapon
func (w *BasicWeapon) Update(deltaTime float64) {
	if w.cooldownTimer > 0 {
		w.cooldownTimer -= deltaTime
	}

	for _, p := range w.projectiles {
		p.Update(deltaTime)
		if !p.Active {
			w.explode(p)
		}
	}
	w.projectiles = slices.DeleteFunc(w.projectiles, func(p *Projectile) bool {
		return !p.Active
	})

	w.effects.Update(deltaTime)
}

// CheckCollision implements Weapon
func (w *BasicWeapon) CheckCollision(target Collidable) bool {
	_, ok := w.Hit(target)
	return ok
}

// Hit implements Weapon
func (w *BasicWeapon) Hit(target Collidable) (int, bool) {
	body := target.Body()
	if !body.Active {
		return 0, false
	}

	for i, p := range w.projectiles {
		if !p.Active || !p.CanHit(target.Faction()) || !p.CollidesWith(body) {
			continue
		}
		p.Active = false
		w.explode(p)
		w.projectiles = slices.Delete(w.projectiles, i, i+1)
		return p.Damage, true
	}
	return 0, false
}

// Render implements Weapon
func (w *BasicWeapon) Render(r Renderer) {
	for _, p := range w.projectiles {
		p.Render(r)
	}
	w.effects.Render(r)
}

func (w *BasicWeapon) explode(p *Projectile) {
	cx, cy := p.Bounds().Center()
	w.effects.AddExplosion(cx, cy, p.Width())
}
