// Package frame provides the per-frame callback scheduler the field animates
// with, and the interpolation task driven by it.
package frame

// Handle identifies a requested callback. The zero Handle is never issued.
type Handle uint64

// Scheduler runs callbacks on the next frame.
type Scheduler interface {
	Request(fn func()) Handle
	Cancel(h Handle)
}

type request struct {
	handle Handle
	fn     func()
}

// Loop is a Scheduler driven by the host calling Tick once per frame.
// It is not safe for concurrent use; hosts tick it from their update loop.
type Loop struct {
	next    Handle
	pending []request
	running []request
	frames  uint64
}

func NewLoop() *Loop {
	return &Loop{}
}

func (l *Loop) Request(fn func()) Handle {
	l.next++
	l.pending = append(l.pending, request{handle: l.next, fn: fn})
	return l.next
}

// Cancel drops a pending callback. Unknown or already fired handles are ignored.
func (l *Loop) Cancel(h Handle) {
	if h == 0 {
		return
	}
	for i, r := range l.pending {
		if r.handle == h {
			l.pending = append(l.pending[:i], l.pending[i+1:]...)
			return
		}
	}
	// A callback may cancel a sibling still waiting in the current batch.
	for i, r := range l.running {
		if r.handle == h {
			l.running[i].fn = nil
			return
		}
	}
}

// Tick runs every callback requested before this call, in request order.
// Callbacks requested while ticking run on the next Tick.
func (l *Loop) Tick() {
	l.frames++
	l.running, l.pending = l.pending, nil
	for i := range l.running {
		fn := l.running[i].fn
		if fn == nil {
			continue
		}
		l.running[i].fn = nil
		fn()
	}
	l.running = nil
}

// Pending returns the number of callbacks waiting for the next Tick.
func (l *Loop) Pending() int {
	return len(l.pending)
}

// Frames returns how many times Tick has run.
func (l *Loop) Frames() uint64 {
	return l.frames
}
