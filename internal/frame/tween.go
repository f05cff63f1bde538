package frame

// Tween is a fixed-length interpolation task. Frame 1 runs when the tween
// starts, every following tick advances one frame, and the first tick past
// the last frame finishes it. A tween of n frames therefore finishes on the
// n-th tick after Start.
type Tween struct {
	sched  Scheduler
	handle Handle
	active bool

	frame int
	total int

	onFrame func(frame, total int)
	onDone  func()
}

func NewTween(sched Scheduler) *Tween {
	return &Tween{sched: sched}
}

// Start finishes any run still in flight, then begins a new one.
func (t *Tween) Start(total int, onFrame func(frame, total int), onDone func()) {
	t.Finish()
	if total < 1 {
		total = 1
	}
	t.total = total
	t.onFrame = onFrame
	t.onDone = onDone
	t.active = true
	t.step(1)
}

func (t *Tween) step(frame int) {
	if frame > t.total {
		t.Finish()
		return
	}
	t.frame = frame
	if t.onFrame != nil {
		t.onFrame(frame, t.total)
	}
	// onFrame may have finished the tween itself.
	if !t.active {
		return
	}
	t.handle = t.sched.Request(func() { t.step(frame + 1) })
}

// Finish cancels the pending frame and runs the completion callback once.
// Finishing an idle tween does nothing.
func (t *Tween) Finish() {
	if !t.active {
		return
	}
	t.sched.Cancel(t.handle)
	t.handle = 0
	t.active = false
	done := t.onDone
	t.onFrame, t.onDone = nil, nil
	if done != nil {
		done()
	}
}

func (t *Tween) Active() bool {
	return t.active
}

// Frame returns the last frame rendered by the current or most recent run.
func (t *Tween) Frame() int {
	return t.frame
}
