package field

import (
	"fmt"
	"image/color"
	"math"
)

// RingPlan describes one ring of a layout.
type RingPlan struct {
	Index  int
	Radius float64 // units
	Count  int
	Step   float64 // radians between neighbours, 0 for the centre
}

// RingRadius is the distance of ring i from the centre, in units.
func RingRadius(i int, width float64) float64 {
	return (2*width + 1) * float64(i)
}

// RingCount is how many spheres fit on ring i: half the ring's circumference
// divided by a sphere's footprint, floored. Ring 0 always holds one.
func RingCount(i int, width, circleWidth float64) int {
	if i == 0 {
		return 1
	}
	circumference := math.Pi * RingRadius(i, width)
	return int(math.Floor(circumference / (width + 2*circleWidth)))
}

// Boundaries returns the inner and outer guide diameters around ring i, in units.
func Boundaries(i int, width float64) (inner, outer float64) {
	unit := 2*width + 1
	return unit * float64(2*i-1), unit * float64(2*i+1)
}

// Plan computes the layout of depth rings plus the centre without creating
// any elements.
func Plan(depth int, width, circleWidth float64) []RingPlan {
	plans := make([]RingPlan, 0, depth+1)
	for i := 0; i <= depth; i++ {
		p := RingPlan{
			Index:  i,
			Radius: RingRadius(i, width),
			Count:  RingCount(i, width, circleWidth),
		}
		if i > 0 && p.Count > 0 {
			p.Step = 2 * math.Pi / float64(p.Count)
		}
		plans = append(plans, p)
	}
	return plans
}

// point converts a polar position in units to the top-left pixel corner of a
// sphere centred there.
func (f *Field) point(radius, angle float64) (x, y float64) {
	u := f.p.Unit
	offset := f.p.Width * u
	x = f.p.CenterX + radius*u*math.Cos(angle) - offset
	y = f.p.CenterY + radius*u*math.Sin(angle) - offset
	return x, y
}

func (f *Field) layout() {
	size := 2 * f.p.Width * f.p.Unit

	for _, plan := range Plan(f.p.Depth, f.p.Width, f.p.CircleWidth) {
		ring := make([]*Sphere, 0, plan.Count)
		for j := 0; j < plan.Count; j++ {
			s := &Sphere{
				Ring:  plan.Index,
				Index: j,
				Color: f.pickColor(plan.Index),
				el:    f.surface.Create(KindSphere),
			}
			s.el.SetID(s.ID())
			s.el.SetContent(fmt.Sprintf("(%d,%d)", s.Ring, s.Index))
			s.el.SetColor(s.Color)
			s.el.SetSize(size, size)
			s.moveTo(f.point(plan.Radius, float64(j)*plan.Step))

			f.surface.Attach(s.el)
			ring = append(ring, s)
		}
		f.rings = append(f.rings, ring)
	}
}

func (f *Field) pickColor(ring int) color.Color {
	if ring == 0 || len(f.p.Palette) == 0 {
		return f.p.CenterColor
	}
	return f.p.Palette[f.rng.Intn(len(f.p.Palette))]
}
