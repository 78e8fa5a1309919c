package screen

import "github.com/hajimehoshi/ebiten/v2"

// State is one screen of the app: menu, play or game over
type State interface {
	Enter()
	Update(deltaTime float64) error
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine holds the current screen and runs its enter/exit hooks
type StateMachine struct {
	current State
}

// NewStateMachine creates a state machine with no current state
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// Current returns the current state
func (sm *StateMachine) Current() State {
	return sm.current
}

// SetState leaves the current state and enters newState
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Update updates the current state
func (sm *StateMachine) Update(deltaTime float64) error {
	if sm.current == nil {
		return nil
	}
	return sm.current.Update(deltaTime)
}

// Draw draws the current state
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
