package game

import (
	"bytes"
	"image"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// testSprites builds plain images with fixed sizes: kokaton 100x100,
// beam 40x10, explosion 60x60
func testSprites(t *testing.T) *Sprites {
	t.Helper()
	src, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.MPlus1pRegular_ttf))
	if err != nil {
		t.Fatalf("Failed to load font: %v", err)
	}
	return &Sprites{
		Kokaton: map[int]*ebiten.Image{
			3: ebiten.NewImage(100, 100),
			6: ebiten.NewImage(100, 100),
			8: ebiten.NewImage(100, 100),
		},
		Background: ebiten.NewImage(1024, 576),
		Beam:       ebiten.NewImage(40, 10),
		Explosion:  ebiten.NewImage(60, 60),
		ScoreFace:  &text.GoTextFace{Source: src, Size: 30},
		BannerFace: &text.GoTextFace{Source: src, Size: 80},
	}
}

// scriptedInput replays one slice of events per Poll and a fixed held state
type scriptedInput struct {
	frames [][]Event
	held   Held
	polls  int
}

func (s *scriptedInput) Poll() []Event {
	s.polls++
	if len(s.frames) == 0 {
		return nil
	}
	ev := s.frames[0]
	s.frames = s.frames[1:]
	return ev
}

func (s *scriptedInput) Held() Held {
	return s.held
}

// seqRand returns its values in order; each must be below the requested n
type seqRand struct {
	t    *testing.T
	vals []int
}

func (r *seqRand) Intn(n int) int {
	r.t.Helper()
	if len(r.vals) == 0 {
		r.t.Fatal("seqRand exhausted")
	}
	v := r.vals[0]
	r.vals = r.vals[1:]
	if v < 0 || v >= n {
		r.t.Fatalf("seqRand value %d out of [0,%d)", v, n)
	}
	return v
}

// quietBombs returns rand values spawning n stationary radius-10 bombs in a
// row along y=100, far from the player start
func quietBombs(n int) []int {
	var vals []int
	for i := 0; i < n; i++ {
		// color, radius-10, cx, cy, vx+3, vy+3
		vals = append(vals, 0, 0, 100+i*50, 100, 3, 3)
	}
	return vals
}

// newTestGame creates a game with no bombs and the given input
func newTestGame(t *testing.T, in InputProvider) *Game {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Bomb.Count = 0
	return NewGame(cfg, testSprites(t), in, &seqRand{t: t})
}

// testBomb places a stationary bomb covering r
func testBomb(r image.Rectangle) *Bomb {
	return &Bomb{
		Rect:   r,
		Radius: r.Dx() / 2,
		Color:  RGB{255, 255, 0}.Color(),
		Active: true,
		img:    ebiten.NewImage(r.Dx(), r.Dy()),
	}
}

// testBeam places a stationary beam covering r
func testBeam(r image.Rectangle) *Beam {
	return &Beam{
		Rect:   r,
		Active: true,
		img:    ebiten.NewImage(r.Dx(), r.Dy()),
	}
}
