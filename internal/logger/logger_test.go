package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bignyap/media-service/internal/logger"
)

func TestInfoWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(logger.Config{Level: "debug", Format: "json"}, &buf)

	log.Info(context.Background(), "media uploaded", logger.String("key", "u1/abc/a.txt"))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "media uploaded", entry["message"])
	assert.Equal(t, "u1/abc/a.txt", entry["key"])
	assert.Equal(t, "info", entry["level"])
}

func TestErrorIncludesCause(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(logger.Config{Level: "debug", Format: "json"}, &buf)

	log.Error(context.Background(), "upload failed", errors.New("connection refused"))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "connection refused", entry["error"])
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(logger.Config{Level: "debug", Format: "json"}, &buf)

	log.WithComponent("media").Info(context.Background(), "hello")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "media", entry["component"])
}

func TestTraceIDFlowsFromContext(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(logger.Config{Level: "debug", Format: "json"}, &buf)

	ctx := logger.WithTraceID(context.Background(), "trace-123")
	log.Info(ctx, "media uploaded")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "trace-123", entry["trace_id"])
}

func TestFromContextRoundTrip(t *testing.T) {
	assert.Nil(t, logger.FromContext(context.Background()))

	ctx := logger.ToContext(context.Background(), logger.Nop{})
	assert.Equal(t, logger.Nop{}, logger.FromContext(ctx))
}

func TestNopLoggerDoesNothing(t *testing.T) {
	log := logger.Nop{}
	log.Info(context.Background(), "ignored")
	log.Error(context.Background(), "ignored", errors.New("ignored"))
	assert.Equal(t, logger.Nop{}, log.WithComponent("x"))
}
