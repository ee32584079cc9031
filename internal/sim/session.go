// Package sim holds the animation session: inputs, phase and play state, and
// the per-frame Tick that advances them.
package sim

import (
	"math"
	"time"

	"github.com/iburimskiy/ucm-visualizer/internal/config"
	"github.com/iburimskiy/ucm-visualizer/internal/kinematics"
	"github.com/iburimskiy/ucm-visualizer/internal/scene"
)

// Session is owned by a single driver loop and is not safe for concurrent use.
type Session struct {
	Inputs  kinematics.Inputs
	Options scene.Options

	// Phase is the accumulated rotation in radians; it is never wrapped.
	Phase   float64
	Playing bool
	Speed   float64

	// Elapsed is simulated time spent playing, already scaled by Speed.
	Elapsed time.Duration
}

// Frame is everything a binding needs to draw one frame.
type Frame struct {
	State   kinematics.State
	Readout kinematics.Readout
	Phase   float64
	Options scene.Options
	Playing bool
	Speed   float64
	Elapsed time.Duration
	// Turns is the number of full revolutions completed during this tick.
	Turns int
}

func New(cfg config.Config) *Session {
	return &Session{
		Inputs: kinematics.Inputs{
			Radius:          cfg.Radius,
			Period:          cfg.Period,
			Frequency:       cfg.Frequency,
			AngularVelocity: cfg.AngularVelocity,
			Focus:           kinematics.ParseFocus(cfg.Focus),
		},
		Options: scene.Options{
			ShowTrail: cfg.ShowTrail,
			ShowAccel: cfg.ShowAccel,
		},
		Playing: cfg.Playing,
		Speed:   cfg.Speed,
	}
}

// State resolves the current inputs.
func (s *Session) State() kinematics.State {
	return kinematics.Resolve(s.Inputs)
}

// Tick resolves the inputs and, when playing, advances the phase by
// w·dt·speed. Negative or non-finite steps count as zero.
func (s *Session) Tick(dt time.Duration) Frame {
	st := s.State()

	turns := 0
	if s.Playing && dt > 0 {
		speed := s.speed()
		before := s.Phase
		s.Phase += st.W * dt.Seconds() * speed
		s.Elapsed += time.Duration(float64(dt) * speed)
		turns = int(math.Floor(s.Phase/kinematics.Tau) - math.Floor(before/kinematics.Tau))
	}

	return Frame{
		State:   st,
		Readout: st.Readout(),
		Phase:   s.Phase,
		Options: s.Options,
		Playing: s.Playing,
		Speed:   s.speed(),
		Elapsed: s.Elapsed,
		Turns:   turns,
	}
}

// speed falls back to 1 for a non-positive or non-finite multiplier.
func (s *Session) speed() float64 {
	if math.IsNaN(s.Speed) || math.IsInf(s.Speed, 0) || s.Speed <= 0 {
		return 1
	}
	return s.Speed
}

func (s *Session) TogglePlay() { s.Playing = !s.Playing }

// ResetPhase rewinds the particle without touching the play state.
func (s *Session) ResetPhase() {
	s.Phase = 0
	s.Elapsed = 0
}

// Recompute writes the derived values back into the non-focused fields.
func (s *Session) Recompute() {
	s.Inputs = kinematics.Backfill(s.Inputs, s.State())
}

func (s *Session) Clear() {
	s.Inputs = kinematics.Clear(s.Inputs)
}

// SetField stores raw text for a field. Editing T, f or w makes it the
// focus; FocusNone addresses the radius, which never takes focus.
func (s *Session) SetField(f kinematics.Focus, raw string) {
	switch f {
	case kinematics.FocusT:
		s.Inputs.Period = raw
	case kinematics.FocusF:
		s.Inputs.Frequency = raw
	case kinematics.FocusW:
		s.Inputs.AngularVelocity = raw
	default:
		s.Inputs.Radius = raw
		return
	}
	s.Inputs.Focus = f
}

// SetSpeed clamps the multiplier to [config.SpeedMin, config.SpeedMax].
func (s *Session) SetSpeed(v float64) {
	s.Speed = math.Max(config.SpeedMin, math.Min(config.SpeedMax, v))
}

// StepSpeed nudges the multiplier by n steps of config.SpeedStep.
func (s *Session) StepSpeed(n int) {
	s.SetSpeed(s.speed() + float64(n)*config.SpeedStep)
}

func (s *Session) ToggleTrail() { s.Options.ShowTrail = !s.Options.ShowTrail }
func (s *Session) ToggleAccel() { s.Options.ShowAccel = !s.Options.ShowAccel }
