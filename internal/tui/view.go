package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iburimskiy/radialfield/internal/field"
	"github.com/iburimskiy/radialfield/internal/surface"
)

const (
	glyphSphere = '●'
	glyphGuide  = '·'
	glyphMarker = '◆'
)

var (
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	accent = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	errSt  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

type cell struct {
	glyph rune
	color string
}

type grid struct {
	cols, rows int
	cells      []cell
}

func newGrid(cols, rows int) *grid {
	return &grid{cols: cols, rows: rows, cells: make([]cell, cols*rows)}
}

// plot marks the cell under pixel (x, y). Points off the grid are dropped.
func (g *grid) plot(x, y float64, glyph rune, color string) {
	col := int(math.Floor(x / cellWidth))
	row := int(math.Floor(y / cellHeight))
	if col < 0 || row < 0 || col >= g.cols || row >= g.rows {
		return
	}
	g.cells[row*g.cols+col] = cell{glyph: glyph, color: color}
}

func (g *grid) render() string {
	styles := map[string]lipgloss.Style{}
	var b strings.Builder
	for row := 0; row < g.rows; row++ {
		var run strings.Builder
		runColor := ""
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runColor == "" {
				b.WriteString(run.String())
			} else {
				st, ok := styles[runColor]
				if !ok {
					st = lipgloss.NewStyle().Foreground(lipgloss.Color(runColor))
					styles[runColor] = st
				}
				b.WriteString(st.Render(run.String()))
			}
			run.Reset()
		}
		for col := 0; col < g.cols; col++ {
			c := g.cells[row*g.cols+col]
			if c.glyph == 0 {
				c.glyph = ' '
				c.color = ""
			}
			if c.color != runColor {
				flush()
				runColor = c.color
			}
			run.WriteRune(c.glyph)
		}
		flush()
		if row < g.rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (m *Model) View() string {
	if m.err != nil {
		return errSt.Render("radialfield: "+m.err.Error()) + "\n"
	}
	if m.field == nil {
		return dim.Render("waiting for terminal size...")
	}

	g := newGrid(m.width, m.height-1)
	// Guides go underneath so their dots never hide a sphere.
	for _, n := range m.canvas.Nodes() {
		if n.Kind == field.KindGuide {
			m.plotGuide(g, n)
		}
	}
	for _, n := range m.canvas.Nodes() {
		switch n.Kind {
		case field.KindSphere:
			x, y := n.Center()
			g.plot(x, y, glyphSphere, field.Hex(n.Color))
		case field.KindMarker:
			x, y := n.Center()
			g.plot(x, y, glyphMarker, field.Hex(n.Color))
		}
	}

	return g.render() + "\n" + m.status()
}

// plotGuide samples the guide circle densely enough to leave no gaps
// between neighbouring cells.
func (m *Model) plotGuide(g *grid, n *surface.Node) {
	cx := n.X + n.W/2 + m.stroke
	cy := n.Y + n.H/2 + m.stroke
	r := n.W/2 + m.stroke/2
	if r <= 0 {
		return
	}
	steps := max(32, int(2*math.Pi*r/(cellWidth/2)))
	color := field.Hex(n.Color)
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		g.plot(cx+r*math.Cos(a), cy+r*math.Sin(a), glyphGuide, color)
	}
}

func (m *Model) status() string {
	state := "idle"
	switch {
	case m.field.Rotating():
		state = "rotating"
	case m.field.Selecting():
		state = "selecting"
	}
	ring := accent.Render(fmt.Sprintf("ring %d/%d", m.field.ActiveRing(), m.field.Depth()))
	return ring + dim.Render(fmt.Sprintf("  %s  w/s select  a/d rotate  q quit", state))
}
