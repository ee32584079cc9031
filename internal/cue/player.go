// Package cue plays a short click on the speaker for every completed
// revolution.
package cue

import (
	"fmt"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/ucm-visualizer/internal/config"
)

// Player owns the speaker. A nil *Player is valid and silent.
type Player struct {
	click *clicker
	ctrl  *beep.Ctrl
	muted bool
}

func New(muted bool) (*Player, error) {
	sr := beep.SampleRate(config.ClickSampleRate)
	length := sr.N(config.ClickDurationMs * time.Millisecond)
	click := newClicker(sr, config.ClickFrequency, config.ClickVolume, length)
	ctrl := &beep.Ctrl{Streamer: click, Paused: muted}

	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(ctrl)

	return &Player{click: click, ctrl: ctrl, muted: muted}, nil
}

func (p *Player) Click() {
	if p == nil || p.muted {
		return
	}
	p.click.Trigger()
}

func (p *Player) ToggleMute() {
	if p == nil {
		return
	}
	speaker.Lock()
	p.muted = !p.muted
	p.ctrl.Paused = p.muted
	speaker.Unlock()
}

func (p *Player) Muted() bool {
	return p == nil || p.muted
}
