package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	logger := newLogger()

	formatter, ok := logger.Formatter.(*logrus.TextFormatter)
	require.True(t, ok)
	assert.Equal(t, time.RFC3339Nano, formatter.TimestampFormat)
	assert.True(t, formatter.FullTimestamp)
}

func TestGetLoggerFallback(t *testing.T) {
	entry := G(context.Background())

	assert.NotNil(t, entry)
	assert.Equal(t, L.Logger, entry.Logger)
}

func TestWithLogger(t *testing.T) {
	custom := logrus.NewEntry(logrus.New()).WithField("component", "loader")
	ctx := WithLogger(context.Background(), custom)

	entry := G(ctx)
	require.NotNil(t, entry)
	assert.Equal(t, "loader", entry.Data["component"])
}

func TestSetLogLevel(t *testing.T) {
	t.Cleanup(func() { require.NoError(t, SetLogLevel("info")) })

	require.NoError(t, SetLogLevel("debug"))
	assert.Equal(t, logrus.DebugLevel, L.Logger.GetLevel())

	assert.Error(t, SetLogLevel("not-a-level"))
}

func TestSetLogFormatJSON(t *testing.T) {
	t.Cleanup(func() { SetLogFormat("fmt") })

	var buf bytes.Buffer
	SetLogOutput(&buf)
	t.Cleanup(func() { SetLogOutput(logrus.New().Out) })

	SetLogFormat("json")
	L.Info("structured message")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "structured message", record["message"])
	assert.Equal(t, "info", record["logLevel"])
	assert.Contains(t, record, "timestamp")
}
