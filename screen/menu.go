package screen

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"

	"sidescroller/game"
)

var backdrop = color.RGBA{10, 10, 30, 255}

// MenuState is the title screen
type MenuState struct {
	app   *App
	blink float64
}

// NewMenuState creates the title screen
func NewMenuState(app *App) *MenuState {
	return &MenuState{app: app}
}

func (s *MenuState) Enter() { s.blink = 0 }
func (s *MenuState) Exit()  {}

func (s *MenuState) Update(deltaTime float64) error {
	s.blink += deltaTime
	in := s.app.input

	if in.IsJustPressed(game.KeyBack) {
		return ebiten.Termination
	}
	if in.IsJustPressed(game.KeyConfirm) {
		play, err := NewPlayState(s.app)
		if err != nil {
			return err
		}
		s.app.states.SetState(play)
	}
	return nil
}

func (s *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(backdrop)
	_, h := screenSize(screen)

	hud := s.app.hud
	hud.Title(screen, s.app.cfg.Title, h/3, colornames.Cornflowerblue)
	if int(s.blink*2)%2 == 0 {
		hud.Caption(screen, "Press ENTER to start", h/2+20)
	}
	hud.Caption(screen, "Arrows/WASD move   SPACE fire   P pause   ESC quit", h/2+60)
	if s.app.highScore > 0 {
		hud.Caption(screen, fmt.Sprintf("High score %d", s.app.highScore), h-40)
	}
}

// GameOverState shows the final result of a session
type GameOverState struct {
	app     *App
	score   int
	level   int
	kills   int
	newBest bool
}

// NewGameOverState creates the game over screen for a finished session
func NewGameOverState(app *App, session *game.Session) *GameOverState {
	return &GameOverState{
		app:   app,
		score: session.Score(),
		level: session.Level(),
		kills: session.Kills(),
	}
}

func (s *GameOverState) Enter() {
	s.newBest = s.app.recordScore(s.score)
	log.Printf("Game over: score %d, level %d, %d enemies destroyed", s.score, s.level, s.kills)
}

func (s *GameOverState) Exit() {}

func (s *GameOverState) Update(deltaTime float64) error {
	in := s.app.input
	switch {
	case in.IsJustPressed(game.KeyConfirm):
		play, err := NewPlayState(s.app)
		if err != nil {
			return err
		}
		s.app.states.SetState(play)
	case in.IsJustPressed(game.KeyBack):
		s.app.states.SetState(NewMenuState(s.app))
	}
	return nil
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	screen.Fill(backdrop)
	_, h := screenSize(screen)

	hud := s.app.hud
	hud.Title(screen, "GAME OVER", h/3, colornames.Crimson)
	hud.Caption(screen, fmt.Sprintf("Score %d   Level %d   Destroyed %d", s.score, s.level, s.kills), h/2+10)
	if s.newBest {
		hud.Caption(screen, "New high score!", h/2+40)
	}
	hud.Caption(screen, "ENTER to play again   ESC for menu", h/2+80)
}
