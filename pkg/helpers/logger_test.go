package helpers

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerLevels(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, NewLogger("app", "development", "").GetLevel())
	assert.Equal(t, logrus.InfoLevel, NewLogger("app", "production", "").GetLevel())
	assert.Equal(t, logrus.WarnLevel, NewLogger("app", "production", "warn").GetLevel())
	assert.Equal(t, logrus.InfoLevel, NewLogger("app", "production", "loud").GetLevel())

	_, isJSON := NewLogger("app", "production", "").Formatter.(*logrus.JSONFormatter)
	assert.True(t, isJSON)
}

func TestLogError(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.JSONFormatter{})

	LogError(logger, "request failed", errors.New("boom"), logrus.Fields{"op": "user.list"})

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "request failed", line["msg"])
	assert.Equal(t, "boom", line["error"])
	assert.Equal(t, "user.list", line["op"])
	assert.Equal(t, "error", line["level"])
}
