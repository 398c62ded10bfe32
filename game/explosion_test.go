package game

import (
	"image"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func newTestExplosion(t *testing.T) *Explosion {
	t.Helper()
	imgs := [2]*ebiten.Image{ebiten.NewImage(60, 60), ebiten.NewImage(60, 60)}
	bomb := testBomb(image.Rect(90, 190, 110, 210))
	return NewExplosion(bomb, imgs, DefaultConfig().Explosion)
}

func TestNewExplosion(t *testing.T) {
	e := newTestExplosion(t)
	if e.Life != 150 {
		t.Errorf("Life: got %d, want 150", e.Life)
	}
	if center(e.Rect) != image.Pt(100, 200) {
		t.Errorf("center: got %v, want (100,200)", center(e.Rect))
	}
	if e.Expired() {
		t.Error("new explosion should not be expired")
	}
}

func TestExplosionLifetime(t *testing.T) {
	e := newTestExplosion(t)
	f := &Frame{Field: image.Pt(1024, 576)}

	for i := 0; i < 149; i++ {
		e.Update(f)
	}
	if e.Life != 1 || e.Expired() {
		t.Fatalf("after 149 frames: got life %d expired %v, want 1 and false", e.Life, e.Expired())
	}

	e.Update(f)
	if e.Life != 0 || !e.Expired() {
		t.Errorf("after 150 frames: got life %d expired %v, want 0 and true", e.Life, e.Expired())
	}
}

func TestExplosionImageAlternates(t *testing.T) {
	e := newTestExplosion(t)
	tests := []struct {
		life int
		want int
	}{
		{150, 1},
		{149, 0},
		{140, 0},
		{139, 1},
		{130, 1},
		{129, 0},
		{9, 0},
		{1, 0},
	}
	for _, tt := range tests {
		e.Life = tt.life
		if got := e.ImageIndex(); got != tt.want {
			t.Errorf("life %d: got image %d, want %d", tt.life, got, tt.want)
		}
	}
}
