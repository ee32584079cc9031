package sim

import (
	"math"
	"testing"
	"time"

	"github.com/iburimskiy/ucm-visualizer/internal/config"
	"github.com/iburimskiy/ucm-visualizer/internal/kinematics"
	"github.com/stretchr/testify/assert"
)

func newSession() *Session {
	return New(config.Default())
}

func TestTickAdvancesPhaseWhilePlaying(t *testing.T) {
	s := newSession()
	s.Playing = true

	f := s.Tick(time.Second)
	assert.InDelta(t, math.Pi, f.State.W, 1e-12)
	assert.InDelta(t, math.Pi, f.Phase, 1e-12)
	assert.InDelta(t, math.Pi, s.Phase, 1e-12)
	assert.Equal(t, time.Second, f.Elapsed)
}

func TestTickStoppedKeepsPhase(t *testing.T) {
	s := newSession()
	s.Phase = 1.25

	for _, dt := range []time.Duration{0, time.Millisecond, time.Second, time.Hour} {
		f := s.Tick(dt)
		assert.Equal(t, 1.25, f.Phase)
		assert.Zero(t, f.Turns)
	}
}

func TestTickIgnoresNegativeStep(t *testing.T) {
	s := newSession()
	s.Playing = true
	s.Tick(-time.Second)
	assert.Zero(t, s.Phase)
}

func TestTickSpeedMultiplier(t *testing.T) {
	tests := []struct {
		speed float64
		want  float64
	}{
		{2, 2 * math.Pi},
		{0.5, 0.5 * math.Pi},
		{0, math.Pi},
		{-3, math.Pi},
		{math.NaN(), math.Pi},
	}
	for _, tt := range tests {
		s := newSession()
		s.Playing = true
		s.Speed = tt.speed
		f := s.Tick(time.Second)
		assert.InDelta(t, tt.want, f.Phase, 1e-12, "speed %v", tt.speed)
	}
}

func TestTickCountsTurns(t *testing.T) {
	s := newSession()
	s.Playing = true

	// w = π, so one revolution takes two seconds
	assert.Zero(t, s.Tick(1500*time.Millisecond).Turns)
	assert.Equal(t, 1, s.Tick(time.Second).Turns)
	assert.Equal(t, 2, s.Tick(4*time.Second).Turns)
}

func TestTickPicksUpEditedInputs(t *testing.T) {
	s := newSession()
	s.Playing = true
	s.SetField(kinematics.FocusW, "2")

	f := s.Tick(time.Second)
	assert.Equal(t, 2.0, f.State.W)
	assert.InDelta(t, 2, f.Phase, 1e-12)
	assert.Equal(t, "2.000 rad/s", f.Readout.AngularVelocity)
}

func TestPlayStateMachine(t *testing.T) {
	s := newSession()
	assert.False(t, s.Playing)
	s.TogglePlay()
	assert.True(t, s.Playing)

	s.Tick(time.Second)
	s.ResetPhase()
	assert.Zero(t, s.Phase)
	assert.Zero(t, s.Elapsed)
	assert.True(t, s.Playing, "reset keeps play state")

	s.TogglePlay()
	assert.False(t, s.Playing)
}

func TestSetField(t *testing.T) {
	s := newSession()

	s.SetField(kinematics.FocusNone, "3")
	assert.Equal(t, "3", s.Inputs.Radius)
	assert.Equal(t, kinematics.FocusNone, s.Inputs.Focus)

	s.SetField(kinematics.FocusT, "4")
	assert.Equal(t, "4", s.Inputs.Period)
	assert.Equal(t, kinematics.FocusT, s.Inputs.Focus)

	s.SetField(kinematics.FocusF, "0.1")
	assert.Equal(t, kinematics.FocusF, s.Inputs.Focus)
	assert.InDelta(t, 10, s.State().T, 1e-12)
}

func TestRecomputeAndClear(t *testing.T) {
	s := newSession()
	s.SetField(kinematics.FocusT, "4")
	s.Recompute()
	assert.Equal(t, "4", s.Inputs.Period)
	assert.Equal(t, "0.2500", s.Inputs.Frequency)
	assert.Equal(t, "1.5708", s.Inputs.AngularVelocity)

	s.Clear()
	assert.Equal(t, kinematics.Inputs{Radius: "1"}, s.Inputs)
	assert.InDelta(t, 2, s.State().T, 1e-12)
}

func TestSpeedControls(t *testing.T) {
	s := newSession()
	s.StepSpeed(2)
	assert.Equal(t, 1.5, s.Speed)

	s.SetSpeed(100)
	assert.Equal(t, config.SpeedMax, s.Speed)
	s.StepSpeed(-100)
	assert.Equal(t, config.SpeedMin, s.Speed)
}

func TestToggles(t *testing.T) {
	s := newSession()
	assert.True(t, s.Options.ShowAccel)
	s.ToggleAccel()
	s.ToggleTrail()
	f := s.Tick(0)
	assert.False(t, f.Options.ShowAccel)
	assert.True(t, f.Options.ShowTrail)
}
