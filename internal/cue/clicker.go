package cue

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// clicker is an endless beep.Streamer that emits silence until triggered,
// then a short decaying sine burst. Trigger is called from the game loop
// while Stream runs on the speaker goroutine.
type clicker struct {
	sampleRate beep.SampleRate
	freq       float64
	volume     float64
	length     int

	mu  sync.Mutex
	pos int
	on  bool
}

func newClicker(sr beep.SampleRate, freq, volume float64, length int) *clicker {
	return &clicker{
		sampleRate: sr,
		freq:       freq,
		volume:     volume,
		length:     max(length, 1),
	}
}

// Trigger restarts the burst from its first sample.
func (c *clicker) Trigger() {
	c.mu.Lock()
	c.pos = 0
	c.on = true
	c.mu.Unlock()
}

func (c *clicker) Stream(samples [][2]float64) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range samples {
		if !c.on {
			samples[i] = [2]float64{}
			continue
		}
		t := float64(c.pos) / float64(c.sampleRate)
		env := 1 - float64(c.pos)/float64(c.length)
		v := c.volume * env * math.Sin(2*math.Pi*c.freq*t)
		samples[i] = [2]float64{v, v}

		c.pos++
		if c.pos >= c.length {
			c.on = false
		}
	}
	return len(samples), true
}

func (c *clicker) Err() error { return nil }
