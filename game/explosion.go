package game

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Explosion is the flickering effect left where a bomb was destroyed
type Explosion struct {
	Rect image.Rectangle

	// Life counts down one per frame; the explosion is gone at zero
	Life int

	flipEvery int
	imgs      [2]*ebiten.Image
}

// NewExplosion anchors an explosion on the bomb's center. imgs alternate
// every flipEvery frames.
func NewExplosion(b *Bomb, imgs [2]*ebiten.Image, cfg ExplosionConfig) *Explosion {
	return &Explosion{
		Rect:      centeredAt(sizeOf(imgs[0]), center(b.Rect)),
		Life:      cfg.Life,
		flipEvery: cfg.FlipEvery,
		imgs:      imgs,
	}
}

// Expired reports whether the explosion should be dropped
func (e *Explosion) Expired() bool {
	return e.Life <= 0
}

// ImageIndex returns which of the two images shows at the current life
func (e *Explosion) ImageIndex() int {
	return e.Life / e.flipEvery % 2
}

// Update burns one frame of life and draws while any life remains
func (e *Explosion) Update(f *Frame) {
	e.Life--
	if e.Expired() {
		return
	}
	blit(f.Canvas, e.imgs[e.ImageIndex()], e.Rect)
}
