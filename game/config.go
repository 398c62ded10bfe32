package game

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// Config holds game configuration
type Config struct {
	// Field is the play-field size in logical pixels
	Field FieldConfig `yaml:"field"`

	// TPS is the fixed simulation rate (ticks per second)
	TPS int `yaml:"tps"`

	// Title is the window caption
	Title string `yaml:"title"`

	Player    PlayerConfig    `yaml:"player"`
	Bomb      BombConfig      `yaml:"bomb"`
	Beam      BeamSettings    `yaml:"beam"`
	Explosion ExplosionConfig `yaml:"explosion"`
	Score     ScoreConfig     `yaml:"score"`
	GameOver  GameOverConfig  `yaml:"game_over"`
	Keys      KeyConfig       `yaml:"keys"`
	Assets    AssetConfig     `yaml:"assets"`
}

// FieldConfig is the size of the visible play-field
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig configures the kokaton
type PlayerConfig struct {
	// StartX, StartY is the initial center of the player
	StartX int `yaml:"start_x"`
	StartY int `yaml:"start_y"`

	// Speed is the per-axis displacement of one held key per frame
	Speed int `yaml:"speed"`

	// Sprite numbers: normal, after a kill, and when hit
	Sprite     int `yaml:"sprite"`
	KillSprite int `yaml:"kill_sprite"`
	HitSprite  int `yaml:"hit_sprite"`

	// SpriteScale is applied to every kokaton image at load time
	SpriteScale float64 `yaml:"sprite_scale"`
}

// BombConfig configures bomb spawning
type BombConfig struct {
	Count     int   `yaml:"count"`
	MinRadius int   `yaml:"min_radius"`
	MaxRadius int   `yaml:"max_radius"`
	MaxSpeed  int   `yaml:"max_speed"`
	Palette   []RGB `yaml:"palette"`
}

// BeamSettings configures beams
type BeamSettings struct {
	// SpriteScale is applied to the beam image at load time
	SpriteScale float64 `yaml:"sprite_scale"`

	// BigScale multiplies both image size and speed of a big beam
	BigScale int `yaml:"big_scale"`
}

// ExplosionConfig configures explosion effects
type ExplosionConfig struct {
	Life      int `yaml:"life"`
	FlipEvery int `yaml:"flip_every"`
}

// ScoreConfig configures the score label
type ScoreConfig struct {
	CenterX  int     `yaml:"center_x"`
	OffsetY  int     `yaml:"offset_y"` // distance of the label center from the bottom edge
	FontSize float64 `yaml:"font_size"`
	Color    RGB     `yaml:"color"`
}

// GameOverConfig configures the end-of-game sequence
type GameOverConfig struct {
	HitPause    time.Duration `yaml:"hit_pause"`
	BannerPause time.Duration `yaml:"banner_pause"`
	Text        string        `yaml:"text"`
	FontSize    float64       `yaml:"font_size"`
	Color       RGB           `yaml:"color"`
}

// KeyConfig maps actions to keys by ebiten key name
type KeyConfig struct {
	Up      ebiten.Key `yaml:"up"`
	Down    ebiten.Key `yaml:"down"`
	Left    ebiten.Key `yaml:"left"`
	Right   ebiten.Key `yaml:"right"`
	Fire    ebiten.Key `yaml:"fire"`
	BigFire ebiten.Key `yaml:"big_fire"`
	Quit    ebiten.Key `yaml:"quit"`
}

// AssetConfig selects where sprites come from. An empty Dir uses the
// embedded SVG sprites.
type AssetConfig struct {
	Dir string `yaml:"dir"`
}

// RGB is an opaque color written as [r, g, b] in YAML
type RGB [3]uint8

// Color converts to a color.Color
func (c RGB) Color() color.Color {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 0xff}
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		Field: FieldConfig{Width: 1024, Height: 576},
		TPS:   60,
		Title: "たたかえ！こうかとん",
		Player: PlayerConfig{
			StartX:      900,
			StartY:      400,
			Speed:       5,
			Sprite:      3,
			KillSprite:  6,
			HitSprite:   8,
			SpriteScale: 2.0,
		},
		Bomb: BombConfig{
			Count:     5,
			MinRadius: 10,
			MaxRadius: 20,
			MaxSpeed:  3,
			Palette:   []RGB{{255, 255, 0}, {0, 0, 255}, {0, 255, 255}},
		},
		Beam: BeamSettings{
			SpriteScale: 2.0,
			BigScale:    3,
		},
		Explosion: ExplosionConfig{
			Life:      150,
			FlipEvery: 10,
		},
		Score: ScoreConfig{
			CenterX:  100,
			OffsetY:  50,
			FontSize: 30,
			Color:    RGB{0, 0, 255},
		},
		GameOver: GameOverConfig{
			HitPause:    time.Second,
			BannerPause: 5 * time.Second,
			Text:        "Game Over",
			FontSize:    80,
			Color:       RGB{255, 0, 0},
		},
		Keys: KeyConfig{
			Up:      ebiten.KeyArrowUp,
			Down:    ebiten.KeyArrowDown,
			Left:    ebiten.KeyArrowLeft,
			Right:   ebiten.KeyArrowRight,
			Fire:    ebiten.KeySpace,
			BigFire: ebiten.KeyV,
			Quit:    ebiten.KeyEscape,
		},
	}
}

// ParseConfig overlays YAML data on DefaultConfig and validates the result
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML config file
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first setting the game cannot run with
func (c Config) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return fmt.Errorf("invalid field size %dx%d", c.Field.Width, c.Field.Height)
	case c.TPS <= 0:
		return fmt.Errorf("invalid tps %d", c.TPS)
	case c.Player.Speed <= 0:
		return fmt.Errorf("invalid player speed %d", c.Player.Speed)
	case c.Bomb.Count < 0:
		return fmt.Errorf("invalid bomb count %d", c.Bomb.Count)
	case c.Bomb.MinRadius <= 0 || c.Bomb.MinRadius > c.Bomb.MaxRadius:
		return fmt.Errorf("invalid bomb radius range [%d,%d]", c.Bomb.MinRadius, c.Bomb.MaxRadius)
	case c.Bomb.MaxSpeed < 0:
		return fmt.Errorf("invalid bomb max speed %d", c.Bomb.MaxSpeed)
	case len(c.Bomb.Palette) == 0:
		return errors.New("bomb palette is empty")
	case c.Beam.BigScale <= 0:
		return fmt.Errorf("invalid big beam scale %d", c.Beam.BigScale)
	case c.Explosion.Life <= 0 || c.Explosion.FlipEvery <= 0:
		return fmt.Errorf("invalid explosion life %d / flip %d", c.Explosion.Life, c.Explosion.FlipEvery)
	case c.GameOver.HitPause < 0 || c.GameOver.BannerPause < 0:
		return errors.New("game over pauses must not be negative")
	}
	return nil
}

// FieldSize returns the play-field as a point
func (c Config) FieldSize() image.Point {
	return image.Pt(c.Field.Width, c.Field.Height)
}

// Ticks converts a duration to a number of frames at the configured TPS
func (c Config) Ticks(d time.Duration) int {
	return int(d * time.Duration(c.TPS) / time.Second)
}
