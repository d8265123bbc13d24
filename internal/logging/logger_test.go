package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonLogger(level LogLevel) (*ScribeLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{
		Level:  level,
		Format: "json",
		Output: &buf,
	})
	return logger, &buf
}

func decode(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestLogger_InfoWithFields(t *testing.T) {
	logger, buf := jsonLogger(LevelInfo)

	logger.Info(context.Background(), "page built", "page", "index.md", "bytes", 1024)

	entry := decode(t, buf)
	assert.Equal(t, "page built", entry["msg"])
	assert.Equal(t, "index.md", entry["page"])
	assert.Equal(t, float64(1024), entry["bytes"])
}

func TestLogger_LevelFiltering(t *testing.T) {
	logger, buf := jsonLogger(LevelWarn)

	logger.Debug(context.Background(), "hidden")
	logger.Info(context.Background(), "hidden")
	assert.Zero(t, buf.Len())

	logger.Warn(context.Background(), nil, "visible")
	assert.NotZero(t, buf.Len())
}

func TestLogger_ErrorField(t *testing.T) {
	logger, buf := jsonLogger(LevelInfo)

	logger.Error(context.Background(), errors.New("boom"), "build failed")

	entry := decode(t, buf)
	assert.Equal(t, "boom", entry["error"])
}

func TestLogger_WithComponent(t *testing.T) {
	logger, buf := jsonLogger(LevelInfo)

	logger.WithComponent("build").Info(context.Background(), "hello")

	entry := decode(t, buf)
	assert.Equal(t, "build", entry["component"])
}

func TestLogger_WithFieldsPersist(t *testing.T) {
	logger, buf := jsonLogger(LevelInfo)

	scoped := logger.With("site", "notes")
	scoped.Info(context.Background(), "hello")

	entry := decode(t, buf)
	assert.Equal(t, "notes", entry["site"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("debug"))
	assert.Equal(t, LevelInfo, ParseLevel("info"))
	assert.Equal(t, LevelWarn, ParseLevel("warn"))
	assert.Equal(t, LevelError, ParseLevel("error"))
	assert.Equal(t, LevelInfo, ParseLevel("bogus"))
}
