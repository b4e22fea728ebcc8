// Package trylog adapts zap logging to try.Try hooks. The try package never
// logs on its own; callers attach these actions where they want a record.
package trylog
