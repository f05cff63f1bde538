package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	WindowWidth  = 1280
	WindowHeight = 800
	WindowTitle  = "radialfield - W/S: select ring, A/D: rotate, M: mute, Esc/Q: quit"
	TPS          = 60

	// Field geometry, in layout units
	Depth       = 5
	Width       = 2.0
	CircleWidth = 0.25
	UnitPx      = 16.0

	// Animation lengths, in frames
	SelectionFrames = 20
	RotationFrames  = 20

	CenterColor     = "#ffffff"
	BackgroundColor = "#101014"

	// Audio cues
	SampleRate = 44100
	Volume     = 0.25
)

// Palette is the set of colours ring spheres are sampled from.
var Palette = []string{"#32a89b", "#a83287", "#3275a8", "#5c0000", "#3b8255"}

var (
	ErrInvalidDepth   = errors.New("config: depth must be at least 1")
	ErrInvalidWidth   = errors.New("config: width, circle_width and unit_px must be positive")
	ErrInvalidFrames  = errors.New("config: frame counts must be at least 1")
	ErrInvalidPalette = errors.New("config: palette must not be empty")
	ErrInvalidWindow  = errors.New("config: window size and tps must be positive")
	ErrInvalidSound   = errors.New("config: sample_rate must be positive and volume in [0, 1]")
)

type Config struct {
	Depth           int          `yaml:"depth"`
	Width           float64      `yaml:"width"`
	CircleWidth     float64      `yaml:"circle_width"`
	UnitPx          float64      `yaml:"unit_px"`
	SelectionFrames int          `yaml:"selection_frames"`
	RotationFrames  int          `yaml:"rotation_frames"`
	Palette         []string     `yaml:"palette"`
	CenterColor     string       `yaml:"center_color"`
	Background      string       `yaml:"background"`
	Labels          bool         `yaml:"labels"`
	Seed            int64        `yaml:"seed"`
	Window          WindowConfig `yaml:"window"`
	Sound           SoundConfig  `yaml:"sound"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"`
}

type SoundConfig struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sample_rate"`
	Volume     float64 `yaml:"volume"`
}

func DefaultConfig() *Config {
	return &Config{
		Depth:           Depth,
		Width:           Width,
		CircleWidth:     CircleWidth,
		UnitPx:          UnitPx,
		SelectionFrames: SelectionFrames,
		RotationFrames:  RotationFrames,
		Palette:         append([]string(nil), Palette...),
		CenterColor:     CenterColor,
		Background:      BackgroundColor,
		Labels:          true,
		Window: WindowConfig{
			Width:  WindowWidth,
			Height: WindowHeight,
			Title:  WindowTitle,
			TPS:    TPS,
		},
		Sound: SoundConfig{
			Enabled:    true,
			SampleRate: SampleRate,
			Volume:     Volume,
		},
	}
}

// Load reads a YAML config on top of the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Validate reports every problem found, joined.
func (c *Config) Validate() error {
	var errs []error
	if c.Depth < 1 {
		errs = append(errs, fmt.Errorf("%w (got %d)", ErrInvalidDepth, c.Depth))
	}
	if c.Width <= 0 || c.CircleWidth < 0 || c.UnitPx <= 0 {
		errs = append(errs, ErrInvalidWidth)
	}
	if c.SelectionFrames < 1 || c.RotationFrames < 1 {
		errs = append(errs, ErrInvalidFrames)
	}
	if len(c.Palette) == 0 {
		errs = append(errs, ErrInvalidPalette)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 || c.Window.TPS <= 0 {
		errs = append(errs, ErrInvalidWindow)
	}
	if c.Sound.Enabled && (c.Sound.SampleRate <= 0 || c.Sound.Volume < 0 || c.Sound.Volume > 1) {
		errs = append(errs, fmt.Errorf("%w (got %d Hz, volume %v)", ErrInvalidSound, c.Sound.SampleRate, c.Sound.Volume))
	}
	return errors.Join(errs...)
}
