package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Event is a discrete input event consumed once per frame
type Event int

const (
	EventFire Event = iota + 1
	EventBigFire
	EventQuit
)

// Held is the directional key state for one frame
type Held struct {
	Up, Down, Left, Right bool
}

// InputProvider defines where the game gets its input from
type InputProvider interface {
	// Poll returns the events that happened since the previous frame, in order
	Poll() []Event

	// Held returns the directional keys currently pressed
	Held() Held
}

// KeyboardInput provides input from the keyboard and the window
type KeyboardInput struct {
	keys    KeyConfig
	pressed []ebiten.Key
	events  []Event
}

// NewKeyboardInput creates a keyboard input provider for the given bindings
func NewKeyboardInput(keys KeyConfig) *KeyboardInput {
	return &KeyboardInput{
		keys:    keys,
		pressed: make([]ebiten.Key, 0, 8),
		events:  make([]Event, 0, 4),
	}
}

// Poll reports a window close request, then the bound keys pressed this tick.
// The returned slice is reused by the next call.
func (k *KeyboardInput) Poll() []Event {
	k.events = k.events[:0]
	if ebiten.IsWindowBeingClosed() {
		k.events = append(k.events, EventQuit)
	}
	k.pressed = inpututil.AppendJustPressedKeys(k.pressed[:0])
	for _, key := range k.pressed {
		switch key {
		case k.keys.Quit:
			k.events = append(k.events, EventQuit)
		case k.keys.Fire:
			k.events = append(k.events, EventFire)
		case k.keys.BigFire:
			k.events = append(k.events, EventBigFire)
		}
	}
	return k.events
}

// Held returns the arrow key state
func (k *KeyboardInput) Held() Held {
	return Held{
		Up:    ebiten.IsKeyPressed(k.keys.Up),
		Down:  ebiten.IsKeyPressed(k.keys.Down),
		Left:  ebiten.IsKeyPressed(k.keys.Left),
		Right: ebiten.IsKeyPressed(k.keys.Right),
	}
}
