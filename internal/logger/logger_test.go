package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	original := logrus.StandardLogger().Out
	logrus.SetOutput(buf)
	Setup("debug")
	t.Cleanup(func() {
		logrus.SetOutput(original)
		logrus.SetLevel(logrus.InfoLevel)
	})
	return buf
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestWithContext(t *testing.T) {
	t.Run("Uses user handle from context", func(t *testing.T) {
		buf := captureOutput(t)
		WithContext(WithUser(context.Background(), "jdoe")).Infof("hello %s", "world")

		entry := decodeLine(t, buf)
		assert.Equal(t, "jdoe", entry["user"])
		assert.Equal(t, "hello world", entry["msg"])
	})

	t.Run("Falls back to system", func(t *testing.T) {
		buf := captureOutput(t)
		WithContext(context.Background()).Warnf("no user")

		entry := decodeLine(t, buf)
		assert.Equal(t, "system", entry["user"])
		assert.Equal(t, "warning", entry["level"])
	})
}

func TestWithJob(t *testing.T) {
	buf := captureOutput(t)
	WithJob("daily-leave-summary").WithField("attempt", 1).Debugf("tick")

	entry := decodeLine(t, buf)
	assert.Equal(t, "daily-leave-summary", entry["job"])
	assert.EqualValues(t, 1, entry["attempt"])
}

func TestSetupFallsBackToInfo(t *testing.T) {
	Setup("verbose")
	defer logrus.SetLevel(logrus.InfoLevel)
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
