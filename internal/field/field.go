// Package field lays out concentric rings of spheres around a centre point
// and animates ring selection and ring rotation on a frame scheduler.
//
// A Field is created once per session and never torn down. All of its
// methods must be called from the host's update goroutine.
package field

import (
	"fmt"
	"image/color"
	"math/rand"
	"time"

	"github.com/iburimskiy/radialfield/internal/frame"
)

type Kind int

const (
	KindSphere Kind = iota
	KindGuide
	KindMarker
)

func (k Kind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindGuide:
		return "guide"
	case KindMarker:
		return "marker"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Element is a renderable unit owned by a Surface. Positions and sizes are in
// pixels; the position is the top-left corner of the element's box.
type Element interface {
	SetPosition(x, y float64)
	SetSize(w, h float64)
	SetColor(c color.Color)
	SetID(id string)
	SetContent(s string)
}

// Surface creates elements and makes them visible.
type Surface interface {
	Create(kind Kind) Element
	Attach(e Element)
}

// Listener is told about state changes the host may want to react to.
type Listener interface {
	RingSelected(prev, next int)
	RotationCommitted(ring, direction int)
}

// Sphere is one element of a ring. Ring and Index are the identifier assigned
// at creation; they do not follow the sphere when its ring rotates.
type Sphere struct {
	Ring  int
	Index int
	Color color.Color
	X, Y  float64

	el Element
}

func (s *Sphere) ID() string {
	return fmt.Sprintf("sphere_%d_%d", s.Ring, s.Index)
}

func (s *Sphere) moveTo(x, y float64) {
	s.X, s.Y = x, y
	s.el.SetPosition(x, y)
}

type Field struct {
	p        Params
	surface  Surface
	rng      *rand.Rand
	listener Listener

	rings  [][]*Sphere
	active int

	// inner, outer, marker; created on first placement
	guides         []Element
	innerD, outerD float64
	markerX        float64
	markerY        float64
	selection      *frame.Tween

	rotation     *frame.Tween
	rotationRing int
	rotationDir  int
}

type Option func(*Field)

func WithRand(r *rand.Rand) Option {
	return func(f *Field) { f.rng = r }
}

func WithListener(l Listener) Option {
	return func(f *Field) { f.listener = l }
}

// NewRand returns a generator seeded with seed, or with the clock when seed is 0.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// New lays out every ring on s and highlights ring 1.
func New(p Params, s Surface, sched frame.Scheduler, opts ...Option) *Field {
	if p.Depth < 1 {
		p.Depth = 1
	}
	if p.CenterColor == nil {
		p.CenterColor = color.White
	}
	f := &Field{
		p:         p,
		surface:   s,
		active:    1,
		selection: frame.NewTween(sched),
		rotation:  frame.NewTween(sched),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.rng == nil {
		f.rng = NewRand(0)
	}

	f.layout()
	f.placeGuides(boundaryPx(f.p, f.active))
	return f
}

func (f *Field) Params() Params {
	return f.p
}

func (f *Field) Depth() int {
	return f.p.Depth
}

func (f *Field) ActiveRing() int {
	return f.active
}

// Ring returns a copy of ring i in its current order, or nil when i is out of range.
func (f *Field) Ring(i int) []*Sphere {
	if i < 0 || i >= len(f.rings) {
		return nil
	}
	return append([]*Sphere(nil), f.rings[i]...)
}

// RingCount returns the number of rings including the centre.
func (f *Field) RingCount() int {
	return len(f.rings)
}

// Selecting reports whether a selection animation is in flight.
func (f *Field) Selecting() bool {
	return f.selection.Active()
}

// Rotating reports whether a rotation animation is in flight.
func (f *Field) Rotating() bool {
	return f.rotation.Active()
}

// Guides returns the current inner and outer boundary diameters in pixels.
func (f *Field) Guides() (inner, outer float64) {
	return f.innerD, f.outerD
}

// Marker returns the current top-left corner of the marker.
func (f *Field) Marker() (x, y float64) {
	return f.markerX, f.markerY
}
