package trylog

import (
	"go.uber.org/zap"

	"github.com/ib-77/tryx/pkg/try"
)

// LogSuccess returns an OnSuccess action that logs the value at info level.
func LogSuccess[T any](logger *zap.Logger, msg string, fields ...Field) func(T) {
	return func(v T) {
		logger.Info(msg, withField(fields, zap.Any("value", v))...)
	}
}

// LogFailure returns an OnFailure action that logs the cause at error level.
func LogFailure(logger *zap.Logger, msg string, fields ...Field) func(error) {
	return func(err error) {
		logger.Error(msg, withField(fields, zap.Error(err))...)
	}
}

// Report logs the outcome of t and returns t unchanged.
func Report[T any](logger *zap.Logger, msg string, t try.Try[T]) try.Try[T] {
	fields := Fields(t)
	if t.IsFailure() {
		logger.Warn(msg, fields...)
		return t
	}
	logger.Debug(msg, fields...)
	return t
}

func withField(fields []Field, f Field) []Field {
	out := make([]Field, 0, len(fields)+1)
	out = append(out, fields...)
	return append(out, f)
}
