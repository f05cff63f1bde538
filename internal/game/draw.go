package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/radialfield/internal/field"
	"github.com/iburimskiy/radialfield/internal/surface"
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)

	for _, n := range g.canvas.Nodes() {
		switch n.Kind {
		case field.KindGuide:
			g.drawGuide(screen, n)
		case field.KindMarker:
			g.drawMarker(screen, n)
		case field.KindSphere:
			g.drawSphere(screen, n)
		}
	}

	g.drawStatus(screen)
}

// Guides are positioned like a bordered box: the stroke sits outside the
// box, so the circle's centre is one stroke further in.
func (g *Game) drawGuide(screen *ebiten.Image, n *surface.Node) {
	cx := n.X + n.W/2 + g.stroke
	cy := n.Y + n.H/2 + g.stroke
	r := n.W/2 + g.stroke/2
	vector.StrokeCircle(screen, float32(cx), float32(cy), float32(r), float32(g.stroke), withAlpha(n.Color, 140), true)
}

func (g *Game) drawMarker(screen *ebiten.Image, n *surface.Node) {
	cx, cy := n.Center()
	alpha := uint8(160 + 95*g.cues.level())
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(n.W/2), withAlpha(n.Color, alpha), true)
}

func (g *Game) drawSphere(screen *ebiten.Image, n *surface.Node) {
	cx, cy := n.Center()
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(n.W/2), n.Color, true)

	if g.cfg.Labels && n.Content != "" {
		// Debug glyphs are 6x16
		x := int(cx) - len(n.Content)*3
		y := int(cy) - 8
		ebitenutil.DebugPrintAt(screen, n.Content, x, y)
	}
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	state := "idle"
	switch {
	case g.field.Rotating():
		state = "rotating"
	case g.field.Selecting():
		state = "selecting"
	}
	sound := "sound on"
	switch {
	case g.cues == nil:
		sound = "no sound"
	case g.cues.muted():
		sound = "muted"
	}

	status := fmt.Sprintf("ring %d/%d  %s  %s  %s",
		g.field.ActiveRing(), g.field.Depth(), state, sound, formatDuration(time.Since(g.started)))
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

func withAlpha(c color.Color, a uint8) color.Color {
	r, gr, b, _ := c.RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(gr >> 8), B: uint8(b >> 8), A: a}
}
