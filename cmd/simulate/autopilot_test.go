package main

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sidescroller/game"
)

func newPilotSession(t *testing.T) (*Autopilot, *game.Session) {
	t.Helper()
	cfg := game.DefaultConfig()
	pilot := NewAutopilot()
	s, err := game.NewSession(cfg, pilot, game.NopAssets{Layers: len(cfg.Background.Parallax)}, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	pilot.Attach(s)
	return pilot, s
}

func TestAutopilot_Detached(t *testing.T) {
	pilot := NewAutopilot()

	pilot.Think()

	assert.False(t, pilot.IsPressed(game.KeyFire))
}

func TestAutopilot_LinesUpWithNearestEnemy(t *testing.T) {
	pilot, s := newPilotSession(t)
	s.Update(0.01)
	enemy := s.Spawner().Enemies()[0]
	enemy.X, enemy.Y = 600, 20

	pilot.Think()

	assert.True(t, pilot.IsPressed(game.KeyFire))
	assert.True(t, pilot.IsPressed(game.KeyUp))
	assert.False(t, pilot.IsPressed(game.KeyDown))
	assert.False(t, pilot.IsJustPressed(game.KeyFire))
}

func TestAutopilot_DodgesRammingEnemy(t *testing.T) {
	pilot, s := newPilotSession(t)
	s.Update(0.01)
	p := s.Player()
	enemy := s.Spawner().Enemies()[0]
	enemy.X, enemy.Y = p.X+p.Width()+20, p.Y+4

	pilot.Think()

	assert.True(t, pilot.IsPressed(game.KeyUp), "enemy slightly below, so climb")
}

func TestAutopilot_PlaysASession(t *testing.T) {
	pilot, s := newPilotSession(t)

	for range 60 * 60 {
		pilot.Think()
		s.Update(1.0 / 60)
		if s.GameOver() {
			break
		}
	}

	assert.Positive(t, s.Kills())
	assert.Positive(t, s.Score())
}
