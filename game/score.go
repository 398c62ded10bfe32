package game

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Score counts destroyed bombs and draws itself as "Score:<n>"
type Score struct {
	Value int

	face  text.Face
	color color.Color
	pos   image.Point
}

// NewScore places the label so that "Score:0" is centered at the configured
// point. Later values grow to the right from the same corner.
func NewScore(cfg ScoreConfig, field image.Point, face text.Face) *Score {
	s := &Score{face: face, color: cfg.Color.Color()}
	c := image.Pt(cfg.CenterX, field.Y-cfg.OffsetY)
	s.pos = c
	if face != nil {
		w, h := text.Measure(s.String(), face, 0)
		s.pos = centeredAt(image.Pt(int(w), int(h)), c).Min
	}
	return s
}

// Increment adds one destroyed bomb
func (s *Score) Increment() {
	s.Value++
}

func (s *Score) String() string {
	return fmt.Sprintf("Score:%d", s.Value)
}

// Position returns the top-left corner of the label
func (s *Score) Position() image.Point {
	return s.pos
}

// Update draws the current value
func (s *Score) Update(f *Frame) {
	drawText(f.Canvas, s.String(), s.face, s.pos, s.color)
}
