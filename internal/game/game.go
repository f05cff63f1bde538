package game

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/radialfield/internal/config"
	"github.com/iburimskiy/radialfield/internal/field"
	"github.com/iburimskiy/radialfield/internal/frame"
	"github.com/iburimskiy/radialfield/internal/surface"
)

type Game struct {
	cfg    *config.Config
	field  *field.Field
	canvas *surface.Canvas
	loop   *frame.Loop
	cues   *cuePlayer

	background color.Color
	stroke     float64

	pressed []ebiten.Key

	started time.Time
	lastErr error
}

// New builds the field for a window of the configured size. Sound is
// optional: when the speaker cannot start the game runs silently.
func New(cfg *config.Config, mute bool) (*Game, error) {
	cx := float64(cfg.Window.Width) / 2
	cy := float64(cfg.Window.Height) / 2
	params, err := field.NewParams(cfg, cx, cy)
	if err != nil {
		return nil, err
	}
	bg, err := field.ParseColor(cfg.Background)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:        cfg,
		canvas:     surface.NewCanvas(),
		loop:       frame.NewLoop(),
		background: bg,
		stroke:     cfg.CircleWidth * cfg.UnitPx,
		started:    time.Now(),
	}

	if cfg.Sound.Enabled && !mute {
		cues, err := newCuePlayer(cfg.Sound)
		if err != nil {
			log.Printf("sound disabled: %v", err)
			g.lastErr = err
		} else {
			g.cues = cues
		}
	}

	g.field = field.New(params, g.canvas, g.loop,
		field.WithRand(field.NewRand(cfg.Seed)),
		field.WithListener(g),
	)
	log.Printf("field ready: %d rings around (%.0f, %.0f)", g.field.Depth(), cx, cy)
	return g, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.pressed = inpututil.AppendJustPressedKeys(g.pressed[:0])
	for _, k := range g.pressed {
		if hostKey(k) {
			if k == ebiten.KeyM {
				g.cues.toggleMute()
			}
			continue
		}
		g.field.HandleKey(keyName(k))
	}

	g.loop.Tick()
	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

// Close stops any cue still playing.
func (g *Game) Close() {
	g.cues.close()
}

func (g *Game) RingSelected(prev, next int) {
	log.Printf("ring %d -> %d", prev, next)
	g.cues.play(next)
}

func (g *Game) RotationCommitted(ring, direction int) {
	log.Printf("ring %d rotated %+d: %s", ring, direction, ringOrder(g.field.Ring(ring)))
	g.cues.play(ring + 7)
}

// hostKey reports whether k is handled by the window rather than the field.
func hostKey(k ebiten.Key) bool {
	switch k {
	case ebiten.KeyEscape, ebiten.KeyQ, ebiten.KeyM:
		return true
	}
	return false
}

// keyName converts an ebiten key into the name the field dispatches on.
func keyName(k ebiten.Key) string {
	if k == ebiten.KeySpace {
		return field.KeyReserved
	}
	return strings.ToLower(k.String())
}

func ringOrder(spheres []*field.Sphere) string {
	parts := make([]string, len(spheres))
	for i, s := range spheres {
		parts[i] = fmt.Sprintf("%d", s.Index)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config, mute bool) error {
	g, err := New(cfg, mute)
	if err != nil {
		return err
	}
	defer g.Close()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
