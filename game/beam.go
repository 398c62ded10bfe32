package game

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// BeamKind selects a beam variant
type BeamKind int

const (
	BeamNormal BeamKind = iota
	BeamBig
)

// BeamConfig describes a beam variant
type BeamConfig struct {
	Kind BeamKind

	// Scale multiplies the image size
	Scale float64

	// Speed multiplies the player's facing vector
	Speed int
}

// GetBeamConfig returns configuration for a beam kind
func GetBeamConfig(kind BeamKind, settings BeamSettings) BeamConfig {
	switch kind {
	case BeamBig:
		return BeamConfig{Kind: BeamBig, Scale: float64(settings.BigScale), Speed: settings.BigScale}
	default:
		return BeamConfig{Kind: BeamNormal, Scale: 1, Speed: 1}
	}
}

// Beam is a straight-flying projectile fired by the player
type Beam struct {
	Rect image.Rectangle
	Vel  image.Point
	Kind BeamKind

	// Active is cleared when the beam hits a bomb or leaves the field
	Active bool

	img *ebiten.Image
}

// NewBeam fires a beam along the player's facing direction, spawned ahead of
// the player by one sprite extent per unit of speed.
func NewBeam(p *Player, bc BeamConfig, base *ebiten.Image) *Beam {
	vel := p.Facing.Mul(bc.Speed)
	// Screen Y points down; negate it for a math-style angle
	angle := math.Atan2(float64(-vel.Y), float64(vel.X)) * 180 / math.Pi
	img := Rotozoom(base, angle, 1)
	if bc.Scale != 1 {
		img = Rotozoom(img, 0, bc.Scale)
	}

	pc, ps := center(p.Rect), p.Rect.Size()
	c := image.Pt(
		pc.X+ps.X*vel.X/p.speed,
		pc.Y+ps.Y*vel.Y/p.speed,
	)
	return &Beam{
		Rect:   centeredAt(sizeOf(img), c),
		Vel:    vel,
		Kind:   bc.Kind,
		Active: true,
		img:    img,
	}
}

// InBounds reports whether the beam is still in the field on both axes
func (b *Beam) InBounds(field image.Point) bool {
	return inField(b.Rect, field)
}

// Update moves and draws the beam only while it is in bounds. Retiring an
// out-of-bounds beam is up to the owner.
func (b *Beam) Update(f *Frame) {
	if !b.InBounds(f.Field) {
		return
	}
	b.Rect = b.Rect.Add(b.Vel)
	blit(f.Canvas, b.img, b.Rect)
}
