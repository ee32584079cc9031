// Package kinematics resolves the uniform circular motion quantity set from a
// radius and one of period, frequency or angular velocity.
package kinematics

import (
	"math"
	"strconv"
	"strings"
)

const (
	Tau = 2 * math.Pi

	// DefaultRadius is used when the radius field is absent.
	DefaultRadius = 1.0
	// DefaultFrequency is used when none of T, f, w is present.
	DefaultFrequency = 0.5
)

// Focus records which of T, f, w the user edited last.
type Focus int

const (
	FocusNone Focus = iota
	FocusT
	FocusF
	FocusW
)

func (f Focus) String() string {
	switch f {
	case FocusT:
		return "T"
	case FocusF:
		return "f"
	case FocusW:
		return "w"
	default:
		return ""
	}
}

// ParseFocus maps "T", "f", "w" to a Focus; anything else is FocusNone.
func ParseFocus(s string) Focus {
	switch strings.TrimSpace(s) {
	case "T":
		return FocusT
	case "f":
		return FocusF
	case "w":
		return FocusW
	default:
		return FocusNone
	}
}

// Inputs is a snapshot of the raw field contents.
type Inputs struct {
	Radius          string
	Period          string
	Frequency       string
	AngularVelocity string
	Focus           Focus
}

// Field returns the raw text of the field named by f. FocusNone names the radius.
func (in Inputs) Field(f Focus) string {
	switch f {
	case FocusT:
		return in.Period
	case FocusF:
		return in.Frequency
	case FocusW:
		return in.AngularVelocity
	default:
		return in.Radius
	}
}

// State is the resolved motion. F = 1/T, W = 2π/T and Ac = W²R always hold.
type State struct {
	R  float64
	T  float64
	F  float64
	W  float64
	Ac float64
}

// Speed is the tangential speed W·R.
func (s State) Speed() float64 { return s.W * s.R }

// ParseValue reads the longest decimal prefix of raw after leading blanks,
// so "3 m" is 3, and reports v and true only for finite, strictly positive
// numbers.
func ParseValue(raw string) (float64, bool) {
	num := numericPrefix(strings.TrimLeft(raw, " \t\n\r\f\v"))
	if num == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	return v, true
}

// numericPrefix returns the longest prefix of s of the form
// [+-] digits [. digits] [(e|E) [+-] digits], or "" when s starts with no
// mantissa digit.
func numericPrefix(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	start := i
	i = skipDigits(s, i)
	if i < len(s) && s[i] == '.' {
		i = skipDigits(s, i+1)
	}
	if i-start == 0 || s[start:i] == "." {
		return ""
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if k := skipDigits(s, j); k > j {
			i = k
		}
	}
	return s[:i]
}

func skipDigits(s string, i int) int {
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i
}

// Derive builds the full State from the radius and one authoritative quantity.
// FocusNone selects the default frequency and ignores v.
func Derive(r float64, q Focus, v float64) State {
	var s State
	s.R = r
	switch q {
	case FocusT:
		s.T = v
		s.F = 1 / v
		s.W = Tau / v
	case FocusF:
		s.F = v
		s.T = 1 / v
		s.W = Tau * v
	case FocusW:
		s.W = v
		s.F = v / Tau
		s.T = 1 / s.F
	default:
		s.F = DefaultFrequency
		s.T = 1 / s.F
		s.W = Tau * s.F
	}
	s.Ac = s.W * s.W * s.R
	return s
}

// Resolve never fails: malformed fields count as absent. A present focused
// field wins, then the first present of T, f, w, then the default frequency.
func Resolve(in Inputs) State {
	r, ok := ParseValue(in.Radius)
	if !ok {
		r = DefaultRadius
	}

	if in.Focus != FocusNone {
		if v, ok := ParseValue(in.Field(in.Focus)); ok {
			return Derive(r, in.Focus, v)
		}
	}

	// T over f over w.
	for _, q := range []Focus{FocusT, FocusF, FocusW} {
		if v, ok := ParseValue(in.Field(q)); ok {
			return Derive(r, q, v)
		}
	}
	return Derive(r, FocusNone, 0)
}

// Backfill writes the derived T, f, w into every field except the focused one,
// at four decimals.
func Backfill(in Inputs, s State) Inputs {
	fixed := func(v float64) string { return strconv.FormatFloat(v, 'f', 4, 64) }
	if in.Focus != FocusT {
		in.Period = fixed(s.T)
	}
	if in.Focus != FocusF {
		in.Frequency = fixed(s.F)
	}
	if in.Focus != FocusW {
		in.AngularVelocity = fixed(s.W)
	}
	return in
}

// Clear empties T, f, w and drops the focus. The radius is kept.
func Clear(in Inputs) Inputs {
	return Inputs{Radius: in.Radius}
}
