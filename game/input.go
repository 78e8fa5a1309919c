package game

// Key is a logical game key. Frontends map physical keys onto these.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyFire
	KeyPause
	KeyBack
	KeyConfirm
)

// Input defines the interface the game reads controls through
type Input interface {
	// IsPressed returns true while the key is held
	IsPressed(key Key) bool

	// IsJustPressed returns true only on the frame the key went down
	IsJustPressed(key Key) bool
}

// axis turns a pair of opposing keys into -1, 0 or 1
func axis(in Input, negative, positive Key) float64 {
	var v float64
	if in.IsPressed(negative) {
		v--
	}
	if in.IsPressed(positive) {
		v++
	}
	return v
}
