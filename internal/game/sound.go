package game

import (
	"fmt"
	"log"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/radialfield/internal/audio"
	"github.com/iburimskiy/radialfield/internal/config"
)

// cuePlayer mixes cue tones into a single speaker stream:
// tones -> mixer -> ctrl -> tap -> speaker. A nil *cuePlayer is silent.
type cuePlayer struct {
	sr     beep.SampleRate
	volume float64
	mixer  *beep.Mixer
	ctrl   *beep.Ctrl
	tap    *audio.Tap
}

func newCuePlayer(cfg config.SoundConfig) (*cuePlayer, error) {
	sr := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}

	mixer := &beep.Mixer{}
	ctrl := &beep.Ctrl{Streamer: mixer}
	tap := audio.NewTap(ctrl, sr.N(time.Second/10))
	speaker.Play(tap)
	log.Printf("speaker ready at %d Hz", cfg.SampleRate)

	return &cuePlayer{
		sr:     sr,
		volume: cfg.Volume,
		mixer:  mixer,
		ctrl:   ctrl,
		tap:    tap,
	}, nil
}

func (p *cuePlayer) play(ring int) {
	if p == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(audio.Tone(p.sr, audio.CueFrequency(ring), audio.CueLength, p.volume))
	speaker.Unlock()
}

func (p *cuePlayer) toggleMute() {
	if p == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = !p.ctrl.Paused
	speaker.Unlock()
}

func (p *cuePlayer) muted() bool {
	if p == nil {
		return true
	}
	speaker.Lock()
	defer speaker.Unlock()
	return p.ctrl.Paused
}

// level is the loudness of roughly the last frame of output.
func (p *cuePlayer) level() float64 {
	if p == nil {
		return 0
	}
	return p.tap.Level(p.sr.N(time.Second / 30))
}

func (p *cuePlayer) close() {
	if p == nil {
		return
	}
	// Clear takes the speaker lock itself.
	speaker.Clear()
	p.tap.Clear()
}
