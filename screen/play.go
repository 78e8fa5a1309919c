package screen

import (
	"github.com/hajimehoshi/ebiten/v2"

	"sidescroller/game"
)

// PlayState runs one game.Session
type PlayState struct {
	app     *App
	session *game.Session
}

// NewPlayState starts a new session
func NewPlayState(app *App) (*PlayState, error) {
	session, err := app.NewSession()
	if err != nil {
		return nil, err
	}
	return &PlayState{app: app, session: session}, nil
}

func (s *PlayState) Enter() {}
func (s *PlayState) Exit()  {}

func (s *PlayState) Update(deltaTime float64) error {
	in := s.app.input

	if in.IsJustPressed(game.KeyBack) {
		s.app.states.SetState(NewMenuState(s.app))
		return nil
	}
	if in.IsJustPressed(game.KeyPause) {
		s.session.TogglePause()
	}

	s.session.Update(deltaTime)

	if s.session.GameOver() {
		s.app.states.SetState(NewGameOverState(s.app, s.session))
	}
	return nil
}

func (s *PlayState) Draw(screen *ebiten.Image) {
	screen.Fill(backdrop)
	s.session.Render(NewRenderer(screen, s.app.cfg.FieldWidth, s.app.cfg.FieldHeight))
	s.app.hud.Status(screen, s.session)
}
