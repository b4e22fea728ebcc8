package try

import (
	"time"

	"github.com/google/uuid"
)

// Getter is implemented by types that yield a value or an error.
type Getter[T any] interface {
	// Get returns the value, or the failure cause
	Get() (T, error)
}

// Lineage describes where an outcome came from and how it ended, without
// reference to its value type.
type Lineage interface {
	// ID identifies the chain the outcome belongs to
	ID() uuid.UUID
	// CreatedAt time the chain started (UTC)
	CreatedAt() time.Time
	// IsSuccess returns true if the operation produced a value
	IsSuccess() bool
	// Err returns the failure cause, nil on success
	Err() error
}

// Outcome combines Getter and Lineage.
type Outcome[T any] interface {
	Getter[T]
	Lineage
}

var _ Outcome[int] = Try[int]{}

// unwrap reads the outcome of an inner step for FlatMap and RecoverWith.
func unwrap[T any](g Getter[T]) (T, error) {
	return g.Get()
}
