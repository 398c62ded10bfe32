// Package assets loads the sprites and fonts the game draws with.
//
// Sprites come either from the SVG files embedded in the binary or from a
// directory laid out like the original fig/ folder (3.png, 6.png, 8.png,
// beam.png, explosion.gif, pg_bg.jpg).
package assets

import (
	"bytes"
	"fmt"
	"image"
	"log"
	"os"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/draw"

	"fightkokaton/game"
)

// Logical asset names
const (
	NameBackground = "background"
	NameBeam       = "beam"
	NameExplosion  = "explosion"
)

// KokatonName returns the logical name of kokaton sprite n
func KokatonName(n int) string {
	return strconv.Itoa(n)
}

// Source opens an image by logical name
type Source interface {
	Open(name string) (image.Image, error)
}

// Load builds the sprite set described by cfg. An empty cfg.Assets.Dir
// selects the embedded sprites.
func Load(cfg game.Config) (*game.Sprites, error) {
	var src Source = Embedded()
	if cfg.Assets.Dir != "" {
		src = Dir(cfg.Assets.Dir)
		log.Printf("Loading sprites from %s", cfg.Assets.Dir)
	}
	return LoadFrom(src, cfg)
}

// LoadFrom builds the sprite set from src
func LoadFrom(src Source, cfg game.Config) (*game.Sprites, error) {
	sprites := &game.Sprites{Kokaton: make(map[int]*ebiten.Image)}

	for _, n := range []int{cfg.Player.Sprite, cfg.Player.KillSprite, cfg.Player.HitSprite} {
		if sprites.Kokaton[n] != nil {
			continue
		}
		img, err := load(src, KokatonName(n), cfg.Player.SpriteScale)
		if err != nil {
			return nil, err
		}
		sprites.Kokaton[n] = img
	}

	var err error
	if sprites.Beam, err = load(src, NameBeam, cfg.Beam.SpriteScale); err != nil {
		return nil, err
	}
	if sprites.Explosion, err = load(src, NameExplosion, 1); err != nil {
		return nil, err
	}
	if sprites.Background, err = load(src, NameBackground, 1); err != nil {
		return nil, err
	}
	if sprites.ScoreFace, sprites.BannerFace, err = loadFaces(cfg); err != nil {
		return nil, err
	}
	if err = sprites.Check(cfg); err != nil {
		return nil, err
	}
	return sprites, nil
}

// load opens name from src, scales it and uploads it
func load(src Source, name string, factor float64) (*ebiten.Image, error) {
	img, err := src.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load sprite %q: %w", name, err)
	}
	if factor != 1 && factor > 0 {
		img = scale(img, factor)
	}
	if os.Getenv("DEBUG_SPRITES") == "1" {
		saveDebugPNG(img, "debug_"+name+".png")
	}
	return ebiten.NewImageFromImage(img), nil
}

// scale resizes img by factor with bilinear filtering
func scale(img image.Image, factor float64) image.Image {
	b := img.Bounds()
	w := max(int(float64(b.Dx())*factor), 1)
	h := max(int(float64(b.Dy())*factor), 1)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.BiLinear.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}

// loadFaces creates the score and banner faces from the bundled M+ font
func loadFaces(cfg game.Config) (text.Face, text.Face, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.MPlus1pRegular_ttf))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load font: %w", err)
	}
	score := &text.GoTextFace{Source: src, Size: cfg.Score.FontSize}
	banner := &text.GoTextFace{Source: src, Size: cfg.GameOver.FontSize}
	return score, banner, nil
}

// saveDebugPNG writes a decoded sprite to the working directory for inspection
func saveDebugPNG(img image.Image, filename string) {
	if err := writePNG(img, filename); err != nil {
		log.Printf("Failed to write debug PNG: %v", err)
	}
}
