package hud

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/iburimskiy/ucm-visualizer/internal/config"
	"github.com/iburimskiy/ucm-visualizer/internal/kinematics"
	"github.com/iburimskiy/ucm-visualizer/internal/sim"
)

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "00:00", FormatDuration(0))
	assert.Equal(t, "01:05", FormatDuration(65*time.Second))
	assert.Equal(t, "12:00", FormatDuration(12*time.Minute))
}

func TestStatusLine(t *testing.T) {
	s := sim.New(config.Default())
	s.SetField(kinematics.FocusF, "2")
	s.TogglePlay()
	f := s.Tick(90 * time.Second)

	line := Status(f, s.Inputs.Focus, true)
	assert.Equal(t, "Playing x1.00 | 01:30 | focus f | ac | muted", line)

	assert.Contains(t, Readout(f), "f = 2.000 Hz")
	assert.Contains(t, Readout(f), "r = 1.000 m")
}

func TestFieldLabel(t *testing.T) {
	name, unit := FieldLabel(kinematics.FocusNone)
	assert.Equal(t, "Radius", name)
	assert.Equal(t, "m", unit)

	name, unit = FieldLabel(kinematics.FocusW)
	assert.Equal(t, "Angular velocity", name)
	assert.Equal(t, "rad/s", unit)
}
