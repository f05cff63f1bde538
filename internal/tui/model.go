// Package tui renders the field in a terminal. Each cell stands for a block
// of cellWidth x cellHeight pixels, so the field's pixel geometry is reused
// unchanged.
package tui

import (
	"fmt"
	"io"
	"log"
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iburimskiy/radialfield/internal/config"
	"github.com/iburimskiy/radialfield/internal/field"
	"github.com/iburimskiy/radialfield/internal/frame"
	"github.com/iburimskiy/radialfield/internal/surface"
)

const (
	cellWidth  = 8
	cellHeight = 16
	fps        = 60
)

type frameMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second/fps, func(t time.Time) tea.Msg { return frameMsg(t) })
}

type Model struct {
	cfg    *config.Config
	field  *field.Field
	canvas *surface.Canvas
	loop   *frame.Loop
	stroke float64

	width, height int
	err           error
}

func New(cfg *config.Config) *Model {
	return &Model{cfg: cfg, loop: frame.NewLoop()}
}

func (m *Model) Init() tea.Cmd {
	return tick()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if m.field == nil && m.err == nil {
			m.err = m.build()
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
		if m.field != nil {
			m.field.HandleKey(msg.String())
		}
		return m, nil
	case frameMsg:
		m.loop.Tick()
		return m, tick()
	}
	return m, nil
}

// build lays the field out once, scaled so the outermost guide fits the
// terminal. Later resizes keep the original geometry.
func (m *Model) build() error {
	rows := m.height - 1 // status line
	if m.width < 1 || rows < 1 {
		return fmt.Errorf("terminal too small: %dx%d", m.width, m.height)
	}
	widthPx := float64(m.width * cellWidth)
	heightPx := float64(rows * cellHeight)

	_, outer := field.Boundaries(m.cfg.Depth, m.cfg.Width)
	cfg := *m.cfg
	cfg.UnitPx = math.Min(widthPx, heightPx) / (outer + 2*m.cfg.CircleWidth)

	params, err := field.NewParams(&cfg, widthPx/2, heightPx/2)
	if err != nil {
		return err
	}
	m.canvas = surface.NewCanvas()
	m.stroke = cfg.CircleWidth * cfg.UnitPx
	m.field = field.New(params, m.canvas, m.loop,
		field.WithRand(field.NewRand(cfg.Seed)),
		field.WithListener(m),
	)
	log.Printf("field ready: %d rings, %.2f px per unit", m.field.Depth(), cfg.UnitPx)
	return nil
}

func (m *Model) RingSelected(prev, next int) {
	log.Printf("ring %d -> %d", prev, next)
}

func (m *Model) RotationCommitted(ring, direction int) {
	log.Printf("ring %d rotated %+d", ring, direction)
}

// Field returns the field once the first window size has arrived.
func (m *Model) Field() *field.Field {
	return m.field
}

// Run starts the terminal UI and blocks until the user quits. Log output goes
// to logPath, or nowhere when it is empty.
func Run(cfg *config.Config, logPath string) error {
	if logPath != "" {
		f, err := tea.LogToFile(logPath, "radialfield")
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	m := New(cfg)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return m.err
}
