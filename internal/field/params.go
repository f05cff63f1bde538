package field

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/radialfield/internal/config"
)

// Params is the immutable geometry and timing of a field.
type Params struct {
	Depth       int
	Width       float64 // sphere radius, in units
	CircleWidth float64 // guide stroke, in units
	Unit        float64 // pixels per unit

	CenterX, CenterY float64

	SelectionFrames int
	RotationFrames  int

	Palette     []color.Color
	CenterColor color.Color
}

// NewParams builds field parameters from cfg for a viewport centred on (cx, cy).
func NewParams(cfg *config.Config, cx, cy float64) (Params, error) {
	if err := cfg.Validate(); err != nil {
		return Params{}, err
	}
	palette := make([]color.Color, 0, len(cfg.Palette))
	for _, hex := range cfg.Palette {
		c, err := ParseColor(hex)
		if err != nil {
			return Params{}, err
		}
		palette = append(palette, c)
	}
	center, err := ParseColor(cfg.CenterColor)
	if err != nil {
		return Params{}, err
	}
	return Params{
		Depth:           cfg.Depth,
		Width:           cfg.Width,
		CircleWidth:     cfg.CircleWidth,
		Unit:            cfg.UnitPx,
		CenterX:         cx,
		CenterY:         cy,
		SelectionFrames: cfg.SelectionFrames,
		RotationFrames:  cfg.RotationFrames,
		Palette:         palette,
		CenterColor:     center,
	}, nil
}

// ParseColor parses a "#rrggbb" colour.
func ParseColor(hex string) (color.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, fmt.Errorf("parse colour %q: %w", hex, err)
	}
	return c, nil
}

// Hex formats any colour as "#rrggbb".
func Hex(c color.Color) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}
