package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Bomb is a bouncing circular obstacle
type Bomb struct {
	Rect   image.Rectangle
	Radius int
	Color  color.Color
	Vel    image.Point

	// Active is cleared when a beam destroys the bomb
	Active bool

	img *ebiten.Image
}

// SpawnBomb creates a bomb with random color, radius, center and velocity.
// Values are drawn from rng in that order.
func SpawnBomb(rng Rand, cfg BombConfig, field image.Point) *Bomb {
	clr := cfg.Palette[rng.Intn(len(cfg.Palette))].Color()
	rad := randint(rng, cfg.MinRadius, cfg.MaxRadius)
	c := image.Pt(randint(rng, 0, field.X), randint(rng, 0, field.Y))
	vel := image.Pt(
		randint(rng, -cfg.MaxSpeed, cfg.MaxSpeed),
		randint(rng, -cfg.MaxSpeed, cfg.MaxSpeed),
	)
	return &Bomb{
		Rect:   centeredAt(image.Pt(2*rad, 2*rad), c),
		Radius: rad,
		Color:  clr,
		Vel:    vel,
		Active: true,
		img:    Circle(rad, clr),
	}
}

// Update reflects the velocity on each axis that is out of bounds, then moves.
// Reflecting before moving means a bomb may sit outside for one more frame.
func (b *Bomb) Update(f *Frame) {
	inX, inY := CheckBounds(b.Rect, f.Field.X, f.Field.Y)
	if !inX {
		b.Vel.X = -b.Vel.X
	}
	if !inY {
		b.Vel.Y = -b.Vel.Y
	}
	b.Rect = b.Rect.Add(b.Vel)
	blit(f.Canvas, b.img, b.Rect)
}
