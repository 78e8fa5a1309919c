package main

import (
	"math"

	"sidescroller/game"
)

// dodgeRange is how close an enemy may get horizontally before the autopilot
// stops lining up with it and moves out of its way
const dodgeRange = 90.0

// Autopilot flies the player ship: it lines up with the nearest enemy, fires
// continuously and sidesteps enemies about to ram it
type Autopilot struct {
	session *game.Session
	keys    map[game.Key]bool
}

var _ game.Input = (*Autopilot)(nil)

// NewAutopilot creates an autopilot with no session attached
func NewAutopilot() *Autopilot {
	return &Autopilot{keys: make(map[game.Key]bool)}
}

// Attach sets the session the autopilot reads the world from
func (a *Autopilot) Attach(s *game.Session) { a.session = s }

func (a *Autopilot) IsPressed(k game.Key) bool { return a.keys[k] }

func (a *Autopilot) IsJustPressed(game.Key) bool { return false }

// Think decides which keys are held for the next frame
func (a *Autopilot) Think() {
	clear(a.keys)
	if a.session == nil {
		return
	}
	a.keys[game.KeyFire] = true

	p := a.session.Player()
	_, py := p.Bounds().Center()

	target := a.nearest(p)
	if target == nil {
		return
	}
	_, ty := target.Bounds().Center()

	if target.X-(p.X+p.Width()) < dodgeRange && math.Abs(ty-py) < p.Height() {
		// about to collide: move away, towards the roomier side
		if ty > py && p.Y > 0 || p.Y+p.Height() >= a.fieldHeight() {
			a.keys[game.KeyUp] = true
		} else {
			a.keys[game.KeyDown] = true
		}
		return
	}

	switch {
	case ty < py-2:
		a.keys[game.KeyUp] = true
	case ty > py+2:
		a.keys[game.KeyDown] = true
	}
}

// nearest returns the closest active enemy still in front of the player
func (a *Autopilot) nearest(p *game.Player) *game.Enemy {
	var best *game.Enemy
	for _, e := range a.session.Spawner().Enemies() {
		if !e.Active || e.X+e.Width() < p.X {
			continue
		}
		if best == nil || e.X < best.X {
			best = e
		}
	}
	return best
}

func (a *Autopilot) fieldHeight() float64 {
	return a.session.Config().FieldHeight
}
