// Package surface keeps the elements a field creates in memory so a host
// renderer can draw them every frame.
package surface

import (
	"image/color"

	"github.com/iburimskiy/radialfield/internal/field"
)

// Node is one retained element. Renderers read it; only the field writes it.
type Node struct {
	Kind    field.Kind
	X, Y    float64
	W, H    float64
	Color   color.Color
	ID      string
	Content string
}

func (n *Node) SetPosition(x, y float64) { n.X, n.Y = x, y }
func (n *Node) SetSize(w, h float64) { n.W, n.H = w, h }
func (n *Node) SetColor(c color.Color) { n.Color = c }
func (n *Node) SetID(id string) { n.ID = id }
func (n *Node) SetContent(s string) { n.Content = s }

// Center returns the middle of the node's box.
func (n *Node) Center() (x, y float64) {
	return n.X + n.W/2, n.Y + n.H/2
}

// Canvas is an in-memory field.Surface. Nodes are drawn in attach order.
type Canvas struct {
	nodes []*Node
	byID  map[string]*Node
}

func NewCanvas() *Canvas {
	return &Canvas{byID: map[string]*Node{}}
}

func (c *Canvas) Create(kind field.Kind) field.Element {
	return &Node{Kind: kind, Color: color.White}
}

func (c *Canvas) Attach(e field.Element) {
	n, ok := e.(*Node)
	if !ok {
		return
	}
	c.nodes = append(c.nodes, n)
}

// Nodes returns the attached nodes in draw order. The slice must not be modified.
func (c *Canvas) Nodes() []*Node {
	return c.nodes
}

// Lookup finds an attached node by identifier.
func (c *Canvas) Lookup(id string) (*Node, bool) {
	if n, ok := c.byID[id]; ok && n.ID == id {
		return n, true
	}
	for _, n := range c.nodes {
		if n.ID == id {
			c.byID[id] = n
			return n, true
		}
	}
	return nil, false
}

// Count returns how many attached nodes are of kind k.
func (c *Canvas) Count(k field.Kind) int {
	total := 0
	for _, n := range c.nodes {
		if n.Kind == k {
			total++
		}
	}
	return total
}
