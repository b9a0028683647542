package reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-LaundryService/internal/domain"
)

// Store durable, consistent custody of the reservation collection.
//
// Snapshot returns the committed state; reads may run concurrently with each
// other. Commit serializes with other commits, re-runs the mutation's
// predicate against the latest committed snapshot and applies the change
// atomically, or reports ErrConflict when a concurrent commit invalidated
// the decision.
type Store interface {
	Snapshot(ctx context.Context) (domain.Snapshot, error)
	Commit(ctx context.Context, mut domain.Mutation) error
	Close() error
}

// Observer получает измерения коммитов (реализуется pkg/metrics)
type Observer interface {
	CommitObserved(op, outcome string, duration time.Duration)
}

type noopObserver struct{}

func (noopObserver) CommitObserved(string, string, time.Duration) {}

func observerOrNoop(obs Observer) Observer {
	if obs == nil {
		return noopObserver{}
	}
	return obs
}
