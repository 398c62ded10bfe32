package game

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Sprites bundles every surface and font face the game draws with.
// Images are expected at their on-screen scale.
type Sprites struct {
	// Kokaton holds player images by sprite number
	Kokaton map[int]*ebiten.Image

	Background *ebiten.Image
	Beam       *ebiten.Image
	Explosion  *ebiten.Image

	ScoreFace  text.Face
	BannerFace text.Face
}

// Check verifies that everything cfg refers to is present
func (s *Sprites) Check(cfg Config) error {
	for _, n := range []int{cfg.Player.Sprite, cfg.Player.KillSprite, cfg.Player.HitSprite} {
		if s.Kokaton[n] == nil {
			return fmt.Errorf("missing kokaton sprite %d", n)
		}
	}
	switch {
	case s.Background == nil:
		return fmt.Errorf("missing background image")
	case s.Beam == nil:
		return fmt.Errorf("missing beam image")
	case s.Explosion == nil:
		return fmt.Errorf("missing explosion image")
	case s.ScoreFace == nil || s.BannerFace == nil:
		return fmt.Errorf("missing font face")
	}
	return nil
}

// Rotozoom returns src rotated counterclockwise by deg degrees and scaled by
// scale. The result is sized to the rotated bounding box so nothing is cut.
func Rotozoom(src *ebiten.Image, deg, scale float64) *ebiten.Image {
	w, h := float64(src.Bounds().Dx()), float64(src.Bounds().Dy())
	rad := deg * math.Pi / 180
	sin, cos := math.Abs(math.Sin(rad)), math.Abs(math.Cos(rad))
	sw, sh := w*scale, h*scale
	// 1e-9 absorbs float noise such as cos(90°) != 0
	nw := max(int(math.Ceil(sw*cos+sh*sin-1e-9)), 1)
	nh := max(int(math.Ceil(sw*sin+sh*cos-1e-9)), 1)

	dst := ebiten.NewImage(nw, nh)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(scale, scale)
	// Screen Y grows downward, so a counterclockwise turn is a negative angle
	op.GeoM.Rotate(-rad)
	op.GeoM.Translate(float64(nw)/2, float64(nh)/2)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(src, op)
	return dst
}

// Flip mirrors src horizontally and/or vertically
func Flip(src *ebiten.Image, horizontal, vertical bool) *ebiten.Image {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	dst := ebiten.NewImage(w, h)
	op := &ebiten.DrawImageOptions{}
	sx, sy := 1.0, 1.0
	var tx, ty float64
	if horizontal {
		sx, tx = -1, float64(w)
	}
	if vertical {
		sy, ty = -1, float64(h)
	}
	op.GeoM.Scale(sx, sy)
	op.GeoM.Translate(tx, ty)
	dst.DrawImage(src, op)
	return dst
}

// Circle returns a transparent 2r x 2r image with a filled circle
func Circle(radius int, clr color.Color) *ebiten.Image {
	img := ebiten.NewImage(2*radius, 2*radius)
	vector.DrawFilledCircle(img, float32(radius), float32(radius), float32(radius), clr, true)
	return img
}

// blit draws img with its top-left corner at the top-left of at. A nil
// canvas is a headless frame and draws nothing.
func blit(canvas, img *ebiten.Image, at image.Rectangle) {
	if canvas == nil || img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(at.Min.X), float64(at.Min.Y))
	canvas.DrawImage(img, op)
}

// drawText draws s with its top-left corner at pos
func drawText(canvas *ebiten.Image, s string, face text.Face, pos image.Point, clr color.Color) {
	if canvas == nil || face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(pos.X), float64(pos.Y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(canvas, s, face, op)
}

// sizeOf returns the pixel dimensions of img as a point
func sizeOf(img *ebiten.Image) image.Point {
	return img.Bounds().Size()
}
