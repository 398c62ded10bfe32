package assets

import (
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"fightkokaton/game"
)

// createTestImage writes a 10x10 blue image to path, encoded by extension
func createTestImage(path string) error {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	blue := color.RGBA{R: 0, G: 0, B: 255, A: 255}
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			img.Set(x, y, blue)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	switch filepath.Ext(path) {
	case ".gif":
		return gif.Encode(file, img, nil)
	case ".jpg":
		return jpeg.Encode(file, img, nil)
	default:
		return png.Encode(file, img)
	}
}

func createFigDir(t *testing.T, skip string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range []string{"3.png", "6.png", "8.png", "beam.png", "explosion.gif", "pg_bg.jpg"} {
		if name == skip {
			continue
		}
		if err := createTestImage(filepath.Join(dir, name)); err != nil {
			t.Fatalf("Failed to create test image: %v", err)
		}
	}
	return dir
}

func imageSize(img *ebiten.Image) image.Point {
	return img.Bounds().Size()
}

func TestLoadEmbedded(t *testing.T) {
	cfg := game.DefaultConfig()
	sprites, err := Load(cfg)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	for _, n := range []int{3, 6, 8} {
		if got := imageSize(sprites.Kokaton[n]); got != image.Pt(96, 96) {
			t.Errorf("kokaton %d: got %v, want 96x96", n, got)
		}
	}
	tests := []struct {
		name string
		img  *ebiten.Image
		want image.Point
	}{
		{"beam", sprites.Beam, image.Pt(64, 16)},
		{"explosion", sprites.Explosion, image.Pt(64, 64)},
		{"background", sprites.Background, image.Pt(1024, 576)},
	}
	for _, tt := range tests {
		if got := imageSize(tt.img); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
	if sprites.ScoreFace == nil || sprites.BannerFace == nil {
		t.Error("font faces should be loaded")
	}
}

func TestLoadDir(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.Assets.Dir = createFigDir(t, "")

	sprites, err := Load(cfg)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	// Kokaton and beam are doubled, the rest keep their size
	if got := imageSize(sprites.Kokaton[3]); got != image.Pt(20, 20) {
		t.Errorf("kokaton: got %v, want 20x20", got)
	}
	if got := imageSize(sprites.Beam); got != image.Pt(20, 20) {
		t.Errorf("beam: got %v, want 20x20", got)
	}
	if got := imageSize(sprites.Explosion); got != image.Pt(10, 10) {
		t.Errorf("explosion: got %v, want 10x10", got)
	}
	if got := imageSize(sprites.Background); got != image.Pt(10, 10) {
		t.Errorf("background: got %v, want 10x10", got)
	}
}

func TestLoadDirMissingFile(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.Assets.Dir = createFigDir(t, "explosion.gif")

	_, err := Load(cfg)
	if err == nil {
		t.Fatal("expected an error for a missing sprite")
	}
	if !strings.Contains(err.Error(), NameExplosion) {
		t.Errorf("error %q should name the missing sprite", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error %q should wrap the not-exist error", err)
	}
}

func TestScale(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 48, 48))
	if got := scale(src, 2).Bounds().Size(); got != image.Pt(96, 96) {
		t.Errorf("scale x2: got %v, want 96x96", got)
	}
	if got := scale(src, 0.01).Bounds().Size(); got != image.Pt(1, 1) {
		t.Errorf("scale x0.01: got %v, want 1x1", got)
	}
}

func TestSVGToImageRejectsEmptyViewBox(t *testing.T) {
	_, err := svgToImage([]byte(`<svg xmlns="http://www.w3.org/2000/svg"></svg>`))
	if err == nil {
		t.Error("expected an error for an SVG without a viewBox")
	}
}
