// Package audio builds the short cue tones the field plays and measures what
// the speaker most recently played.
package audio

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// Tap wraps a beep.Streamer and records the last N samples into a ring buffer
// so the renderer can react to recently played audio.
type Tap struct {
	Source    beep.Streamer
	buffer    [][2]float64
	nextIndex int
	filled    int
	mu        sync.RWMutex
}

func NewTap(src beep.Streamer, ringSize int) *Tap {
	if ringSize < 1 {
		ringSize = 1
	}
	return &Tap{
		Source: src,
		buffer: make([][2]float64, ringSize),
	}
}

func (t *Tap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	if n > 0 {
		t.mu.Lock()
		for i := 0; i < n; i++ {
			t.buffer[t.nextIndex] = samples[i]
			t.nextIndex++
			if t.nextIndex >= len(t.buffer) {
				t.nextIndex = 0
			}
		}
		t.filled = min(t.filled+n, len(t.buffer))
		t.mu.Unlock()
	}
	return n, ok
}

func (t *Tap) Err() error { return t.Source.Err() }

// Snapshot returns up to the last n samples, most recent last.
func (t *Tap) Snapshot(n int) [][2]float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n = min(n, t.filled)
	out := make([][2]float64, n)
	idx := t.nextIndex
	for i := n - 1; i >= 0; i-- {
		idx--
		if idx < 0 {
			idx = len(t.buffer) - 1
		}
		out[i] = t.buffer[idx]
	}
	return out
}

// Level returns the RMS of the last n samples, compressed into [0, 1].
func (t *Tap) Level(n int) float64 {
	samples := t.Snapshot(n)
	if len(samples) == 0 {
		return 0
	}
	var sumSquares float64
	for _, s := range samples {
		mono := (s[0] + s[1]) * 0.5
		sumSquares += mono * mono
	}
	rms := math.Sqrt(sumSquares / float64(len(samples)))
	return clamp01(math.Pow(rms, 0.3))
}

// Clear forgets everything recorded so far.
func (t *Tap) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.filled = 0
	t.nextIndex = 0
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
