package screen

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"sidescroller/game"
)

// keyBindings maps each game key to the physical keys that trigger it
var keyBindings = map[game.Key][]ebiten.Key{
	game.KeyUp:      {ebiten.KeyArrowUp, ebiten.KeyW},
	game.KeyDown:    {ebiten.KeyArrowDown, ebiten.KeyS},
	game.KeyLeft:    {ebiten.KeyArrowLeft, ebiten.KeyA},
	game.KeyRight:   {ebiten.KeyArrowRight, ebiten.KeyD},
	game.KeyFire:    {ebiten.KeySpace},
	game.KeyPause:   {ebiten.KeyP},
	game.KeyBack:    {ebiten.KeyEscape},
	game.KeyConfirm: {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
}

// Keyboard provides game input from the keyboard
type Keyboard struct{}

var _ game.Input = Keyboard{}

// IsPressed returns true while any key bound to k is held
func (Keyboard) IsPressed(k game.Key) bool {
	for _, key := range keyBindings[k] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

// IsJustPressed returns true on the frame any key bound to k went down
func (Keyboard) IsJustPressed(k game.Key) bool {
	for _, key := range keyBindings[k] {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}
