package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogLogger_Errorf(t *testing.T) {
	var buf bytes.Buffer
	log := NewSlogLoggerWithHandler(slog.NewJSONHandler(&buf, nil))

	log.Errorf(errors.New("boom"), "failed to %s", "connect")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "failed to connect", entry["msg"])
	assert.Equal(t, "boom", entry["error"])
}

func TestSlogLogger_With(t *testing.T) {
	var buf bytes.Buffer
	log := NewSlogLoggerWithHandler(slog.NewJSONHandler(&buf, nil)).With("request_id", "abc")

	log.Infof("hello %d", 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello 1", entry["msg"])
	assert.Equal(t, "abc", entry["request_id"])
}

func TestSlogLogger_DebugFilteredByDefault(t *testing.T) {
	var buf bytes.Buffer
	log := NewSlogLoggerWithHandler(slog.NewJSONHandler(&buf, nil))

	log.Debugf("hidden")

	assert.Empty(t, buf.String())
}
