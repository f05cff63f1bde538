package field

func boundaryPx(p Params, ring int) (inner, outer float64) {
	inner, outer = Boundaries(ring, p.Width)
	return inner * p.Unit, outer * p.Unit
}

func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// SetActiveRing moves the highlight to ring n, clamped to [1, depth].
// Selecting the ring that is already active does nothing.
func (f *Field) SetActiveRing(n int) {
	n = min(max(n, 1), f.p.Depth)
	if n == f.active {
		return
	}

	f.selection.Finish()
	prev := f.active
	f.active = n

	fromInner, fromOuter := boundaryPx(f.p, prev)
	toInner, toOuter := boundaryPx(f.p, n)
	f.selection.Start(f.p.SelectionFrames,
		func(frame, total int) {
			t := float64(frame) / float64(total)
			f.placeGuides(lerp(fromInner, toInner, t), lerp(fromOuter, toOuter, t))
		},
		func() {
			f.placeGuides(boundaryPx(f.p, n))
		},
	)

	if f.listener != nil {
		f.listener.RingSelected(prev, n)
	}
}

// FinishSelection jumps an in-flight selection animation to its end.
func (f *Field) FinishSelection() {
	f.selection.Finish()
}

func (f *Field) ensureGuides() {
	if len(f.guides) > 0 {
		return
	}
	for _, kind := range []Kind{KindGuide, KindGuide, KindMarker} {
		el := f.surface.Create(kind)
		el.SetColor(f.p.CenterColor)
		f.surface.Attach(el)
		f.guides = append(f.guides, el)
	}
	f.guides[0].SetID("guide_inner")
	f.guides[1].SetID("guide_outer")
	f.guides[2].SetID("marker")

	side := f.markerSide()
	f.guides[2].SetSize(side, side)
}

func (f *Field) markerSide() float64 {
	return f.p.Unit * (f.p.Width + 2*f.p.CircleWidth)
}

// placeGuides sizes the boundary circles to the given pixel diameters and
// parks the marker just outside the outer one.
func (f *Field) placeGuides(inner, outer float64) {
	f.ensureGuides()
	stroke := f.p.CircleWidth * f.p.Unit
	cx, cy := f.p.CenterX, f.p.CenterY

	for i, d := range []float64{inner, outer} {
		f.guides[i].SetSize(d, d)
		f.guides[i].SetPosition(cx-d/2-stroke, cy-d/2-stroke)
	}

	f.markerX = cx + outer/2 + stroke
	f.markerY = cy - f.markerSide()/2
	f.guides[2].SetPosition(f.markerX, f.markerY)

	f.innerD, f.outerD = inner, outer
}
