package trylog

import (
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"

	"github.com/ib-77/tryx/pkg/try"
)

func Int[S ~string, T constraints.Signed](s S, v T) Field {
	return zap.Int64(string(s), int64(v))
}

func Uint[S ~string, T constraints.Unsigned](s S, v T) Field {
	return zap.Uint64(string(s), uint64(v))
}

func Float[S ~string, T constraints.Float](s S, v T) Field {
	return zap.Float64(string(s), float64(v))
}

// Fields describes t: its chain id, creation time, variant and cause.
func Fields(t try.Lineage) []Field {
	fields := []Field{
		zap.Stringer("try_id", t.ID()),
		zap.Time("created_at", t.CreatedAt()),
		zap.Bool("success", t.IsSuccess()),
	}
	if !t.IsSuccess() {
		fields = append(fields, zap.Error(t.Err()))
	}
	return fields
}
