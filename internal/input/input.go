// Package input defines the logical input events consumed by the render
// context and camera controller, decoupled from the windowing library so
// the consumers stay testable without a window.
package input

import "github.com/go-gl/glfw/v3.3/glfw"

// Key is a logical key, not a physical keycode.
type Key int

const (
	KeyUnknown Key = iota
	KeyForward
	KeyBackward
	KeyLeft
	KeyRight
	KeyToggleFrameRate
	KeyUpAxisX
	KeyUpAxisY
	KeyUpAxisZ
	KeyQuit
)

// Event is a window input event: either a KeyEvent or a PointerEvent.
type Event interface {
	isEvent()
}

// KeyEvent is a key transition. Pressed is true on key-down, false on
// key-up. Repeats are not delivered.
type KeyEvent struct {
	Key     Key
	Pressed bool
}

// PointerEvent is a pointer move in window-local coordinates.
type PointerEvent struct {
	X, Y float64
}

func (KeyEvent) isEvent()     {}
func (PointerEvent) isEvent() {}

// Keymap translates physical keys to logical ones. The zero map is
// unusable; construct with NewKeymap for the default bindings.
type Keymap struct {
	keys map[glfw.Key]Key
}

// NewKeymap returns the default bindings: WASD movement, F frame rate
// toggle, arrow keys for up-axis selection, Escape to quit.
func NewKeymap() *Keymap {
	km := &Keymap{keys: make(map[glfw.Key]Key)}
	km.Bind(glfw.KeyW, KeyForward)
	km.Bind(glfw.KeyS, KeyBackward)
	km.Bind(glfw.KeyA, KeyLeft)
	km.Bind(glfw.KeyD, KeyRight)
	km.Bind(glfw.KeyF, KeyToggleFrameRate)
	km.Bind(glfw.KeyLeft, KeyUpAxisX)
	km.Bind(glfw.KeyUp, KeyUpAxisY)
	km.Bind(glfw.KeyRight, KeyUpAxisZ)
	km.Bind(glfw.KeyEscape, KeyQuit)
	return km
}

// Bind maps a physical key to a logical one, replacing any previous
// binding for that physical key.
func (km *Keymap) Bind(physical glfw.Key, logical Key) {
	km.keys[physical] = logical
}

// Translate converts a glfw key action into a KeyEvent. Returns false
// for unbound keys and for repeat actions.
func (km *Keymap) Translate(physical glfw.Key, action glfw.Action) (KeyEvent, bool) {
	logical, ok := km.keys[physical]
	if !ok || action == glfw.Repeat {
		return KeyEvent{}, false
	}
	return KeyEvent{Key: logical, Pressed: action == glfw.Press}, true
}
