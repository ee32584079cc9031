// Package hud formats the text overlays shared by the desktop and terminal
// bindings.
package hud

import (
	"fmt"
	"strings"
	"time"

	"github.com/iburimskiy/ucm-visualizer/internal/kinematics"
	"github.com/iburimskiy/ucm-visualizer/internal/sim"
)

// FieldLabel returns the display name and unit of an input field.
// FocusNone names the radius.
func FieldLabel(f kinematics.Focus) (string, string) {
	switch f {
	case kinematics.FocusT:
		return "Period", kinematics.UnitPeriod
	case kinematics.FocusF:
		return "Frequency", kinematics.UnitFrequency
	case kinematics.FocusW:
		return "Angular velocity", kinematics.UnitAngularVelocity
	default:
		return "Radius", "m"
	}
}

// FormatDuration formats a duration as MM:SS
func FormatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// Readout is the one-line quantity summary shown in the HUD.
func Readout(f sim.Frame) string {
	r := f.Readout
	return fmt.Sprintf("r = %s   T = %s   f = %s   w = %s   ac = %s   v = %s",
		kinematics.Format(f.State.R, "m"), r.Period, r.Frequency, r.AngularVelocity, r.Acceleration, r.Speed)
}

// Status reports play state, speed, simulated time and the focused field.
func Status(f sim.Frame, focus kinematics.Focus, muted bool) string {
	var b strings.Builder
	if f.Playing {
		b.WriteString("Playing")
	} else {
		b.WriteString("Paused")
	}
	fmt.Fprintf(&b, " x%.2f | %s", f.Speed, FormatDuration(f.Elapsed))
	if focus != kinematics.FocusNone {
		fmt.Fprintf(&b, " | focus %s", focus)
	}
	if f.Options.ShowTrail {
		b.WriteString(" | trail")
	}
	if f.Options.ShowAccel {
		b.WriteString(" | ac")
	}
	if muted {
		b.WriteString(" | muted")
	}
	return b.String()
}

// KeyHelp lists the desktop key bindings.
const KeyHelp = "Space play/pause  R reset  Enter calc  C clear  1-4 edit r/T/f/w  T trail  A arrow  +/- speed  M mute  P snapshot  Q quit"
