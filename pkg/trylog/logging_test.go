package trylog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ib-77/tryx/pkg/try"
)

func newObserved() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

func TestLogSuccess_OnlyOnSuccess(t *testing.T) {
	t.Parallel()
	logger, logs := newObserved()

	try.Success(100).
		OnSuccess(LogSuccess[int](logger, "parsed", zap.String("input", "100"))).
		OnFailure(LogFailure(logger, "cannot parse"))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.InfoLevel, entry.Level)
	assert.Equal(t, "parsed", entry.Message)
	assert.Equal(t, int64(100), entry.ContextMap()["value"])
	assert.Equal(t, "100", entry.ContextMap()["input"])
}

func TestLogFailure_OnlyOnFailure(t *testing.T) {
	t.Parallel()
	logger, logs := newObserved()
	cause := errors.New("bad input")

	try.Failure[int](cause).
		OnSuccess(LogSuccess[int](logger, "parsed")).
		OnFailure(LogFailure(logger, "cannot parse"))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.ErrorLevel, entry.Level)
	assert.Equal(t, "cannot parse", entry.Message)
	assert.Equal(t, "bad input", entry.ContextMap()["error"])
}

func TestLogFailure_FieldsNotShared(t *testing.T) {
	t.Parallel()
	logger, logs := newObserved()

	fields := make([]Field, 1, 4)
	fields[0] = zap.String("stage", "parse")
	action := LogFailure(logger, "failed", fields...)
	action(errors.New("first"))
	action(errors.New("second"))

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "first", logs.All()[0].ContextMap()["error"])
	assert.Equal(t, "second", logs.All()[1].ContextMap()["error"])
	assert.Len(t, fields, 1)
}

func TestReport(t *testing.T) {
	t.Parallel()
	logger, logs := newObserved()

	ok := try.Success("v")
	assert.Equal(t, ok, Report(logger, "step", ok))

	failed := try.Failure[string](errors.New("boom"))
	assert.Equal(t, failed, Report(logger, "step", failed))

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, zapcore.DebugLevel, logs.All()[0].Level)
	assert.Equal(t, true, logs.All()[0].ContextMap()["success"])
	assert.Equal(t, ok.ID().String(), logs.All()[0].ContextMap()["try_id"])

	assert.Equal(t, zapcore.WarnLevel, logs.All()[1].Level)
	assert.Equal(t, false, logs.All()[1].ContextMap()["success"])
	assert.Equal(t, "boom", logs.All()[1].ContextMap()["error"])
}

func TestNumericFields(t *testing.T) {
	t.Parallel()
	logger, logs := newObserved()

	type key string
	logger.Info("n", Int(key("i"), int8(-3)), Uint("u", uint16(7)), Float("f", float32(1.5)))

	m := logs.All()[0].ContextMap()
	assert.Equal(t, int64(-3), m["i"])
	assert.Equal(t, uint64(7), m["u"])
	assert.Equal(t, 1.5, m["f"])
}

func TestFromContext(t *testing.T) {
	t.Parallel()
	logger, logs := newObserved()

	ctx := WithLogger(context.Background(), logger)
	FromContext(ctx).Info("hello")
	assert.Equal(t, 1, logs.Len())

	assert.NotNil(t, FromContext(context.Background()))
	FromContext(context.Background()).Info("dropped")
	assert.Equal(t, 1, logs.Len())
}

func TestNew(t *testing.T) {
	t.Parallel()
	assert.NotNil(t, New(true))
	assert.NotNil(t, New(false))
}
