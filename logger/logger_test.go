package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSanitizeKVs(t *testing.T) {
	got := sanitizeKVs([]interface{}{"tg_token", "123:abc", "records", 84, "dangling"})
	assert.Equal(t, []interface{}{"tg_token", "[REDACTED]", "records", 84, "dangling"}, got)
}

func TestLoggerRedactsSecrets(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := &Logger{SugaredLogger: zap.New(core).Sugar()}

	l.Info("bot ready", "token", "123:abc", "chat_id", int64(42))

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		ctx := entries[0].ContextMap()
		assert.Equal(t, "[REDACTED]", ctx["token"])
		assert.Equal(t, int64(42), ctx["chat_id"])
	}
}

func TestNew(t *testing.T) {
	for _, mode := range []string{"dev", "prod"} {
		l, err := New(mode)
		assert.NoError(t, err, mode)
		assert.NotNil(t, l)
	}
}
