package config

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("ucm", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestFromFlagsDefaults(t *testing.T) {
	cfg, err := FromFlags(newFlagSet(), nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "1", cfg.Radius)
	assert.Equal(t, 1.0, cfg.Speed)
	assert.True(t, cfg.ShowAccel)
}

func TestFromFlags(t *testing.T) {
	cfg, err := FromFlags(newFlagSet(), []string{
		"-r", "2.5", "-w", "6", "-focus", "w", "-speed", "2", "-play", "-trail", "-accel=false", "-mute",
	})
	require.NoError(t, err)
	assert.Equal(t, "2.5", cfg.Radius)
	assert.Equal(t, "6", cfg.AngularVelocity)
	assert.Equal(t, "w", cfg.Focus)
	assert.Equal(t, 2.0, cfg.Speed)
	assert.True(t, cfg.Playing)
	assert.True(t, cfg.ShowTrail)
	assert.False(t, cfg.ShowAccel)
	assert.True(t, cfg.Mute)
}

func TestFromFlagsErrors(t *testing.T) {
	_, err := FromFlags(newFlagSet(), []string{"-focus", "x"})
	assert.ErrorContains(t, err, "invalid -focus")

	_, err = FromFlags(newFlagSet(), []string{"-speed", "fast"})
	assert.Error(t, err)
}
