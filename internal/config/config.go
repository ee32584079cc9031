package config

import (
	"flag"
	"fmt"
	"strings"
)

const (
	WindowWidth  = 960
	WindowHeight = 640

	// Terminal redraw interval (~60 FPS)
	FrameIntervalMs = 16

	// Speed multiplier bounds and key step
	SpeedMin  = 0.25
	SpeedMax  = 5.0
	SpeedStep = 0.25

	// Revolution click
	ClickSampleRate = 44100
	ClickFrequency  = 880
	ClickDurationMs = 40
	ClickVolume     = 0.3
)

// Config holds the starting values of a session. Numeric fields are kept as
// text so they flow through the same parsing path as interactive edits.
type Config struct {
	Radius          string
	Period          string
	Frequency       string
	AngularVelocity string
	// Focus is one of "", "T", "f", "w".
	Focus string

	Speed     float64
	Playing   bool
	ShowTrail bool
	ShowAccel bool
	Mute      bool
}

// Default mirrors the initial page state: r = 1 m, nothing else entered.
func Default() Config {
	return Config{
		Radius:    "1",
		Speed:     1,
		ShowAccel: true,
	}
}

// FromFlags parses args into a Config starting from Default.
func FromFlags(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Default()

	fs.StringVar(&cfg.Radius, "r", cfg.Radius, "radius (m)")
	fs.StringVar(&cfg.Period, "T", "", "period (s)")
	fs.StringVar(&cfg.Frequency, "f", "", "frequency (Hz)")
	fs.StringVar(&cfg.AngularVelocity, "w", "", "angular velocity (rad/s)")
	fs.StringVar(&cfg.Focus, "focus", "", "authoritative field: T, f or w")
	fs.Float64Var(&cfg.Speed, "speed", cfg.Speed, "animation speed multiplier")
	fs.BoolVar(&cfg.Playing, "play", false, "start playing")
	fs.BoolVar(&cfg.ShowTrail, "trail", false, "fade trail instead of clearing each frame")
	fs.BoolVar(&cfg.ShowAccel, "accel", cfg.ShowAccel, "draw centripetal acceleration arrow")
	fs.BoolVar(&cfg.Mute, "mute", false, "disable the per-revolution click")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	switch strings.TrimSpace(cfg.Focus) {
	case "", "T", "f", "w":
	default:
		return Config{}, fmt.Errorf("invalid -focus %q: want T, f or w", cfg.Focus)
	}
	return cfg, nil
}
