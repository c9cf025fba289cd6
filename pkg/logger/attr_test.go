package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/mongosession/pkg/logger"
)

func TestError(t *testing.T) {
	t.Parallel()

	err := errors.New("connection refused")
	attr := logger.Error(err)
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestSessionID(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.String("session_id", "abc"), logger.SessionID("abc"))
	assert.True(t, logger.SessionID("").Equal(slog.Attr{}))
}

func TestKeys(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.String("keys", "a,b"), logger.Keys([]string{"a", "b"}))
	assert.Equal(t, slog.String("keys", ""), logger.Keys(nil))
}

func TestScalarAttrs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.Int64("count", 3), logger.Count(3))
	assert.Equal(t, slog.String("backend", "redis"), logger.Backend("redis"))
	assert.Equal(t, slog.String("component", "session.store"), logger.Component("session.store"))
}
