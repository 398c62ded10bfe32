package game

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Frame is the per-frame context handed to every Updatable
type Frame struct {
	// Canvas receives this frame's drawing; nil means headless
	Canvas *ebiten.Image

	// Held is the directional key state sampled for this frame
	Held Held

	// Field is the play-field size
	Field image.Point
}

// Updatable is advanced once per frame and draws itself while doing so.
// Player, Bomb, Beam, Explosion and Score implement it.
type Updatable interface {
	Update(f *Frame)
}
