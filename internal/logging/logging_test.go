package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"", LevelInfo},
		{"warning", LevelWarn},
		{" error ", LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		require.NoError(t, err, "input: %q", tt.input)
		assert.Equal(t, tt.want, got, "input: %q", tt.input)
	}

	_, err := ParseLevel("loud")
	assert.EqualError(t, err, `unknown log level "loud"`)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatText, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestNewJSONUsesRFC3339Time(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelInfo, FormatJSON)
	logger.Info("rendered", "file", "a.md")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "rendered", record["msg"])
	assert.Equal(t, "a.md", record["file"])

	ts, ok := record["time"].(string)
	require.True(t, ok)
	_, err := time.Parse(time.RFC3339, ts)
	assert.NoError(t, err)
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelWarn, FormatText)
	logger.Info("hidden")
	logger.Debug("hidden")
	logger.Warn("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Equal(t, 1, strings.Count(out, "shown"))
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() { Discard().Error("nothing") })
}
