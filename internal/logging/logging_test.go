package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "debug", Format: "json", Output: &buf}).With(String("binding", "term"))

	log.Debug("tick", Int("turns", 2), Float("w", 3.5))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "tick", rec["msg"])
	assert.Equal(t, "DEBUG", rec["level"])
	assert.Equal(t, "term", rec["binding"])
	assert.EqualValues(t, 2, rec["turns"])
	assert.EqualValues(t, 3.5, rec["w"])
}

func TestLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "warn", Output: &buf})

	log.Info("dropped")
	assert.Zero(t, buf.Len())

	log.Error("kept", Err(errors.New("boom")))
	assert.Contains(t, buf.String(), "kept")
	assert.Contains(t, buf.String(), "error=boom")
}

func TestNoop(t *testing.T) {
	log := Noop().With(String("k", "v"))
	assert.NotPanics(t, func() {
		log.Debug("a")
		log.Info("b")
		log.Warn("c")
		log.Error("d")
	})
}
