package cue

import (
	"testing"

	"github.com/faiface/beep"
	"github.com/stretchr/testify/assert"
)

func TestClickerSilentUntilTriggered(t *testing.T) {
	c := newClicker(beep.SampleRate(8000), 440, 0.5, 16)
	buf := make([][2]float64, 32)

	n, ok := c.Stream(buf)
	assert.Equal(t, 32, n)
	assert.True(t, ok)
	for _, s := range buf {
		assert.Zero(t, s[0])
	}
	assert.NoError(t, c.Err())
}

func TestClickerBurst(t *testing.T) {
	c := newClicker(beep.SampleRate(8000), 440, 0.5, 16)
	c.Trigger()

	buf := make([][2]float64, 32)
	c.Stream(buf)

	var energy float64
	for i, s := range buf {
		assert.Equal(t, s[0], s[1], "mono click on both channels")
		assert.LessOrEqual(t, s[0], 0.5)
		if i >= 16 {
			assert.Zero(t, s[0], "burst ends after its length")
		}
		energy += s[0] * s[0]
	}
	assert.Greater(t, energy, 0.0)

	// retrigger restarts the burst
	c.Trigger()
	c.Stream(buf)
	assert.NotZero(t, buf[1][0])
}

func TestNilPlayerIsSilent(t *testing.T) {
	var p *Player
	assert.NotPanics(t, func() {
		p.Click()
		p.ToggleMute()
	})
	assert.True(t, p.Muted())
}
