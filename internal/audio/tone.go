package audio

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

const (
	baseFrequency = 330.0
	CueLength     = 90 * time.Millisecond
)

// CueFrequency is the pitch announcing ring i: one semitone per ring above
// the base.
func CueFrequency(ring int) float64 {
	return baseFrequency * math.Pow(2, float64(ring)/12)
}

type tone struct {
	sr     beep.SampleRate
	freq   float64
	volume float64
	pos    int
	length int
}

// Tone returns a finite sine burst that fades out linearly over its length.
func Tone(sr beep.SampleRate, freq float64, d time.Duration, volume float64) beep.Streamer {
	return &tone{
		sr:     sr,
		freq:   freq,
		volume: clamp01(volume),
		length: sr.N(d),
	}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.length {
		return 0, false
	}
	n := 0
	for i := range samples {
		if t.pos >= t.length {
			break
		}
		envelope := 1 - float64(t.pos)/float64(t.length)
		phase := 2 * math.Pi * t.freq * float64(t.pos) / float64(t.sr)
		v := math.Sin(phase) * envelope * t.volume
		samples[i] = [2]float64{v, v}
		t.pos++
		n++
	}
	return n, true
}

func (t *tone) Err() error { return nil }
