// Package screen is the ebiten frontend: window loop, screens, keyboard input
// and sprite drawing for a game.Session.
package screen

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"sidescroller/game"
)

// App implements ebiten.Game and switches between the menu, play and game over
// screens
type App struct {
	cfg    game.Config
	rng    *rand.Rand
	assets *Assets
	input  Keyboard
	hud    *HUD
	states *StateMachine

	// Last update time for delta time calculation
	lastUpdate time.Time

	// FPS tracking
	fps       float64
	fpsFrames int
	fpsTimer  float64

	highScore   int
	sessionsRun int
}

// NewApp creates the app and shows the main menu
func NewApp(cfg game.Config, seed int64) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a := &App{
		cfg:        cfg,
		rng:        rand.New(rand.NewSource(seed)),
		assets:     NewAssets(cfg, seed),
		hud:        NewHUD(),
		states:     NewStateMachine(),
		lastUpdate: time.Now(),
		fps:        60,
	}
	a.states.SetState(NewMenuState(a))
	return a, nil
}

// NewSession starts a fresh play-through with the app's assets and keyboard
func (a *App) NewSession() (*game.Session, error) {
	s, err := game.NewSession(a.cfg, a.input, a.assets, a.rng)
	if err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}
	a.sessionsRun++
	if a.cfg.Debug {
		log.Printf("Session %d started", a.sessionsRun)
	}
	return s, nil
}

// recordScore keeps the best score of this run
func (a *App) recordScore(score int) bool {
	if score > a.highScore {
		a.highScore = score
		return true
	}
	return false
}

// Update advances the current screen by the wall-clock time since the last frame
func (a *App) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdate).Seconds()
	a.lastUpdate = now

	// Clamp delta time to prevent large jumps after stalls
	if deltaTime > a.cfg.MaxDeltaTime {
		deltaTime = a.cfg.MaxDeltaTime
	}

	a.fpsTimer += deltaTime
	a.fpsFrames++
	if a.fpsTimer >= 0.5 {
		a.fps = float64(a.fpsFrames) / a.fpsTimer
		a.fpsFrames = 0
		a.fpsTimer = 0
	}

	return a.states.Update(deltaTime)
}

// Draw renders the current screen
func (a *App) Draw(screen *ebiten.Image) {
	a.states.Draw(screen)
	if a.cfg.Debug {
		a.hud.FPS(screen, a.fps)
	}
}

// Layout returns the game's screen size
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.ScreenWidth, a.cfg.ScreenHeight
}

// Close releases the app's images
func (a *App) Close() {
	a.states.SetState(nil)
	a.assets.Dispose()
}
