package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed sprites/*.svg
var spriteFS embed.FS

// svgSource rasterizes SVG files from an embedded filesystem
type svgSource struct {
	fs embed.FS
}

// Embedded returns the sprites bundled with the binary
func Embedded() Source {
	return svgSource{fs: spriteFS}
}

// Open rasterizes sprites/<name>.svg at its natural size
func (s svgSource) Open(name string) (image.Image, error) {
	data, err := s.fs.ReadFile("sprites/" + name + ".svg")
	if err != nil {
		return nil, err
	}
	return svgToImage(data)
}

// svgToImage converts SVG data to an RGBA image sized by its viewBox
func svgToImage(svgData []byte) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData))
	if err != nil {
		return nil, err
	}
	w, h := int(icon.ViewBox.W), int(icon.ViewBox.H)
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("svg has empty viewBox %vx%v", icon.ViewBox.W, icon.ViewBox.H)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	icon.Draw(raster, 1.0)
	return img, nil
}

// fileNames maps logical names to the files of the original fig/ folder.
// Kokaton sprites are <n>.png.
var fileNames = map[string]string{
	NameBackground: "pg_bg.jpg",
	NameBeam:       "beam.png",
	NameExplosion:  "explosion.gif",
}

// dirSource decodes PNG, JPEG or GIF files from a directory
type dirSource string

// Dir returns a source reading image files from dir
func Dir(dir string) Source {
	return dirSource(dir)
}

// Open decodes the file for name
func (d dirSource) Open(name string) (image.Image, error) {
	file, ok := fileNames[name]
	if !ok {
		file = name + ".png"
	}
	f, err := os.Open(filepath.Join(string(d), file))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", file, err)
	}
	return img, nil
}

// writePNG encodes img to path
func writePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
