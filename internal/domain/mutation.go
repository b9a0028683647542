package domain

// MutationOp distinguishes the two ways a snapshot can change.
type MutationOp string

const (
	OpInsert MutationOp = "insert"
	OpDelete MutationOp = "delete"
)

// Mutation is the unit of change handed to Store.Commit: one inserted or
// removed reservation plus the legality predicate that produced it. The store
// re-runs Predicate against its latest committed snapshot under the commit
// lock, so a decision made on a stale snapshot can never be applied.
type Mutation struct {
	Op          MutationOp
	Reservation Reservation
	Predicate   func(Snapshot) error
}
