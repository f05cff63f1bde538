package frame

import (
	"reflect"
	"testing"
)

func TestLoop_TickRunsInRequestOrder(t *testing.T) {
	l := NewLoop()
	var got []int
	l.Request(func() { got = append(got, 1) })
	l.Request(func() { got = append(got, 2) })

	l.Tick()

	if !reflect.DeepEqual(got, []int{1, 2}) {
		t.Errorf("got %v, want [1 2]", got)
	}
	if l.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", l.Pending())
	}
	if l.Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", l.Frames())
	}
}

func TestLoop_RequestDuringTickDefers(t *testing.T) {
	l := NewLoop()
	calls := 0
	var again func()
	again = func() {
		calls++
		l.Request(again)
	}
	l.Request(again)

	l.Tick()
	if calls != 1 {
		t.Fatalf("calls = %d after one tick, want 1", calls)
	}
	l.Tick()
	if calls != 2 {
		t.Fatalf("calls = %d after two ticks, want 2", calls)
	}
}

func TestLoop_Cancel(t *testing.T) {
	l := NewLoop()
	ran := false
	h := l.Request(func() { ran = true })
	l.Cancel(h)
	l.Cancel(h)
	l.Cancel(0)
	l.Tick()
	if ran {
		t.Error("cancelled callback ran")
	}
}

func TestLoop_CancelSiblingInSameTick(t *testing.T) {
	l := NewLoop()
	ran := false
	var second Handle
	l.Request(func() { l.Cancel(second) })
	second = l.Request(func() { ran = true })

	l.Tick()
	if ran {
		t.Error("sibling cancelled during tick still ran")
	}
}

func TestTween_FinishesOnNthTick(t *testing.T) {
	l := NewLoop()
	tw := NewTween(l)
	var frames []int
	done := 0

	tw.Start(3, func(f, total int) { frames = append(frames, f) }, func() { done++ })

	if !reflect.DeepEqual(frames, []int{1}) {
		t.Fatalf("frame 1 should run synchronously, got %v", frames)
	}
	for i := 0; i < 2; i++ {
		l.Tick()
		if done != 0 {
			t.Fatalf("finished early at tick %d", i+1)
		}
	}
	l.Tick()

	if done != 1 {
		t.Errorf("done = %d, want 1", done)
	}
	if !reflect.DeepEqual(frames, []int{1, 2, 3}) {
		t.Errorf("frames = %v, want [1 2 3]", frames)
	}
	if tw.Active() {
		t.Error("tween still active")
	}
	if l.Pending() != 0 {
		t.Errorf("Pending() = %d after finish", l.Pending())
	}
}

func TestTween_RestartFinishesPrevious(t *testing.T) {
	l := NewLoop()
	tw := NewTween(l)
	var log []string

	tw.Start(20, nil, func() { log = append(log, "first") })
	l.Tick()
	tw.Start(20, nil, func() { log = append(log, "second") })

	if !reflect.DeepEqual(log, []string{"first"}) {
		t.Fatalf("log = %v, want [first]", log)
	}
	if l.Pending() != 1 {
		t.Errorf("Pending() = %d, want exactly one request in flight", l.Pending())
	}
}

func TestTween_FinishIdle(t *testing.T) {
	tw := NewTween(NewLoop())
	tw.Finish()
	if tw.Active() {
		t.Error("idle tween became active")
	}
}

func TestTween_FinishFromFrame(t *testing.T) {
	l := NewLoop()
	tw := NewTween(l)
	done := 0
	tw.Start(10, func(f, total int) {
		if f == 2 {
			tw.Finish()
		}
	}, func() { done++ })

	l.Tick()
	l.Tick()
	if done != 1 {
		t.Errorf("done = %d, want 1", done)
	}
	if l.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", l.Pending())
	}
}
