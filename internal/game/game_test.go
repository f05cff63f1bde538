package game

import (
	"testing"
	"time"

	"github.com/faiface/beep"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/radialfield/internal/audio"
	"github.com/iburimskiy/radialfield/internal/field"
)

func TestKeyName(t *testing.T) {
	tests := []struct {
		key  ebiten.Key
		want string
	}{
		{ebiten.KeyW, field.KeyOuter},
		{ebiten.KeyS, field.KeyInner},
		{ebiten.KeyA, field.KeyLeft},
		{ebiten.KeyD, field.KeyRight},
		{ebiten.KeySpace, field.KeyReserved},
		{ebiten.KeyEnter, "enter"},
	}

	for _, tt := range tests {
		if got := keyName(tt.key); got != tt.want {
			t.Errorf("keyName(%v) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestHostKey(t *testing.T) {
	for _, k := range []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ, ebiten.KeyM} {
		if !hostKey(k) {
			t.Errorf("hostKey(%v) = false", k)
		}
	}
	for _, k := range []ebiten.Key{ebiten.KeyW, ebiten.KeyS, ebiten.KeyA, ebiten.KeyD, ebiten.KeySpace} {
		if hostKey(k) {
			t.Errorf("hostKey(%v) = true, field would never see it", k)
		}
	}
}

func TestRingOrder(t *testing.T) {
	spheres := []*field.Sphere{{Index: 2}, {Index: 0}, {Index: 1}}
	if got := ringOrder(spheres); got != "[2 0 1]" {
		t.Errorf("ringOrder() = %q", got)
	}
	if got := ringOrder(nil); got != "[]" {
		t.Errorf("ringOrder(nil) = %q", got)
	}
}

func TestCuePlayer_Nil(t *testing.T) {
	var p *cuePlayer
	p.play(1)
	p.toggleMute()
	p.close()
	if !p.muted() {
		t.Error("nil player reports sound on")
	}
	if p.level() != 0 {
		t.Errorf("nil player level = %v", p.level())
	}
}

func newTestPlayer() *cuePlayer {
	sr := beep.SampleRate(44100)
	mixer := &beep.Mixer{}
	ctrl := &beep.Ctrl{Streamer: mixer}
	return &cuePlayer{
		sr:     sr,
		volume: 0.25,
		mixer:  mixer,
		ctrl:   ctrl,
		tap:    audio.NewTap(ctrl, sr.N(time.Second/10)),
	}
}

func closeWithin(t *testing.T, p *cuePlayer) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		p.close()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("close did not return")
	}
}

func TestCuePlayer_CloseReturns(t *testing.T) {
	p := newTestPlayer()
	p.play(3)
	closeWithin(t, p)

	// the speaker lock must be free again afterwards
	p.toggleMute()
	if !p.muted() {
		t.Error("toggleMute after close did not pause")
	}
}

func TestCuePlayer_CloseWhileMuted(t *testing.T) {
	p := newTestPlayer()
	p.toggleMute()
	if !p.muted() {
		t.Fatal("toggleMute did not pause")
	}
	closeWithin(t, p)
}
