package field

import "math"

// Rotate turns the active ring one step. Positive directions shift the ring
// left (each sphere takes its predecessor's slot), negative ones shift it
// right. A rotation still in flight is committed first. Rings with fewer
// than two spheres are left alone.
func (f *Field) Rotate(direction int) {
	switch {
	case direction > 0:
		direction = 1
	case direction < 0:
		direction = -1
	default:
		return
	}

	f.rotation.Finish()
	if len(f.rings[f.active]) < 2 {
		return
	}

	f.beginRotation(f.active, direction)
	f.rotation.Start(f.p.RotationFrames, f.placeRotation, f.commitRotation)
}

// CommitRotation completes an in-flight rotation immediately.
func (f *Field) CommitRotation() {
	f.rotation.Finish()
}

func (f *Field) beginRotation(ring, direction int) {
	f.rotationRing = ring
	f.rotationDir = direction
}

// placeRotation places the rotating ring frame/total of the way through its step.
func (f *Field) placeRotation(frame, total int) {
	spheres := f.rings[f.rotationRing]
	radius := RingRadius(f.rotationRing, f.p.Width)
	step := 2 * math.Pi / float64(len(spheres))
	progress := float64(frame) / float64(total)

	for i, s := range spheres {
		angle := float64(i)*step - float64(f.rotationDir)*progress*step
		s.moveTo(f.point(radius, angle))
	}
}

// commitRotation lands the ring on its final positions and shifts its order
// so every sphere's index matches the slot it now occupies.
func (f *Field) commitRotation() {
	if f.rotationRing == 0 {
		return
	}
	ring, direction := f.rotationRing, f.rotationDir
	f.placeRotation(f.p.RotationFrames, f.p.RotationFrames)

	spheres := f.rings[ring]
	n := len(spheres)
	if direction == 1 {
		first := spheres[0]
		copy(spheres, spheres[1:])
		spheres[n-1] = first
	} else {
		last := spheres[n-1]
		copy(spheres[1:], spheres[:n-1])
		spheres[0] = last
	}
	f.rotationRing = 0

	if f.listener != nil {
		f.listener.RotationCommitted(ring, direction)
	}
}
