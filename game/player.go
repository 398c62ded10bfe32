package game

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Player is the kokaton
type Player struct {
	Rect   image.Rectangle
	Facing image.Point

	img   *ebiten.Image
	speed int

	// turns maps a sign vector such as (1,-1) to the matching orientation image
	turns map[image.Point]*ebiten.Image
}

// NewPlayer creates the player centered at the configured start, facing right
func NewPlayer(cfg PlayerConfig, sprites *Sprites) *Player {
	turns := orientations(sprites.Kokaton[cfg.Sprite])
	p := &Player{
		Facing: image.Pt(cfg.Speed, 0),
		speed:  cfg.Speed,
		turns:  turns,
	}
	p.img = turns[image.Pt(1, 0)]
	p.Rect = centeredAt(sizeOf(p.img), image.Pt(cfg.StartX, cfg.StartY))
	return p
}

// orientations precomputes the 8 headings from a left-facing base image
func orientations(left *ebiten.Image) map[image.Point]*ebiten.Image {
	right := Flip(left, true, false)
	return map[image.Point]*ebiten.Image{
		{1, 0}:   right,
		{1, -1}:  Rotozoom(right, 45, 1),
		{0, -1}:  Rotozoom(right, 90, 1),
		{-1, -1}: Rotozoom(left, -45, 1),
		{-1, 0}:  left,
		{-1, 1}:  Rotozoom(left, 45, 1),
		{0, 1}:   Rotozoom(right, -90, 1),
		{1, 1}:   Rotozoom(right, -45, 1),
	}
}

// Image returns the sprite currently shown
func (p *Player) Image() *ebiten.Image {
	return p.img
}

// Update moves by the sum of held keys. A move that leaves the field on
// either axis is undone on both axes.
func (p *Player) Update(f *Frame) {
	var mv image.Point
	if f.Held.Up {
		mv.Y -= p.speed
	}
	if f.Held.Down {
		mv.Y += p.speed
	}
	if f.Held.Left {
		mv.X -= p.speed
	}
	if f.Held.Right {
		mv.X += p.speed
	}

	p.Rect = p.Rect.Add(mv)
	if !inField(p.Rect, f.Field) {
		p.Rect = p.Rect.Sub(mv)
	}
	if mv != (image.Point{}) {
		p.img = p.turns[sign(mv)]
		p.Facing = mv
	}
	blit(f.Canvas, p.img, p.Rect)
}

// SetSprite shows img in place of the current sprite and draws it at once.
// Position and facing are kept.
func (p *Player) SetSprite(img *ebiten.Image, canvas *ebiten.Image) {
	p.img = img
	blit(canvas, p.img, p.Rect)
}

func sign(v image.Point) image.Point {
	return image.Pt(sign1(v.X), sign1(v.Y))
}

func sign1(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
