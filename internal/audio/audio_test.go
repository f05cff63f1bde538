package audio

import (
	"math"
	"testing"
	"time"

	"github.com/faiface/beep"
)

func drain(s beep.Streamer) int {
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

func TestTone_Length(t *testing.T) {
	sr := beep.SampleRate(44100)
	got := drain(Tone(sr, 440, 100*time.Millisecond, 0.5))
	if want := sr.N(100 * time.Millisecond); got != want {
		t.Errorf("tone produced %d samples, want %d", got, want)
	}
}

func TestTone_FadesAndStaysInRange(t *testing.T) {
	s := Tone(beep.SampleRate(8000), 440, 50*time.Millisecond, 2)
	buf := make([][2]float64, 400)
	n, _ := s.Stream(buf)

	for i := 0; i < n; i++ {
		if math.Abs(buf[i][0]) > 1 || buf[i][0] != buf[i][1] {
			t.Fatalf("sample %d = %v", i, buf[i])
		}
	}
	if math.Abs(buf[n-1][0]) > 0.01 {
		t.Errorf("last sample %v should have faded out", buf[n-1][0])
	}
}

func TestCueFrequency(t *testing.T) {
	if CueFrequency(0) != baseFrequency {
		t.Errorf("CueFrequency(0) = %v", CueFrequency(0))
	}
	if got := CueFrequency(12); math.Abs(got-2*baseFrequency) > 1e-9 {
		t.Errorf("CueFrequency(12) = %v, want one octave up", got)
	}
	if CueFrequency(3) <= CueFrequency(2) {
		t.Error("outer rings should sound higher")
	}
}

func TestTap_RecordsRecentSamples(t *testing.T) {
	i := 0
	src := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for j := range samples {
			samples[j] = [2]float64{float64(i), float64(i)}
			i++
		}
		return len(samples), true
	})
	tap := NewTap(src, 4)

	buf := make([][2]float64, 6)
	tap.Stream(buf)

	got := tap.Snapshot(10)
	if len(got) != 4 {
		t.Fatalf("len(Snapshot) = %d, want 4", len(got))
	}
	for j, want := range []float64{2, 3, 4, 5} {
		if got[j][0] != want {
			t.Errorf("Snapshot[%d] = %v, want %v", j, got[j][0], want)
		}
	}
}

func TestTap_Level(t *testing.T) {
	silent := NewTap(beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for j := range samples {
			samples[j] = [2]float64{}
		}
		return len(samples), true
	}), 64)
	if silent.Level(64) != 0 {
		t.Error("level of an empty tap should be 0")
	}
	silent.Stream(make([][2]float64, 64))
	if silent.Level(64) != 0 {
		t.Errorf("silence level = %v", silent.Level(64))
	}

	loud := NewTap(Tone(beep.SampleRate(8000), 440, time.Second, 1), 256)
	loud.Stream(make([][2]float64, 256))
	if lvl := loud.Level(256); lvl <= 0.5 || lvl > 1 {
		t.Errorf("tone level = %v, want in (0.5, 1]", lvl)
	}

	loud.Clear()
	if loud.Level(256) != 0 {
		t.Error("Clear did not reset the level")
	}
}
