package domain

import "context"

// RegistrationRepository defines the persistence interface for Registration
// entities. Implementations may use SQLite, in-memory storage, or other
// backends; inserts must be all-or-nothing so partial records are never
// visible to readers.
type RegistrationRepository interface {
	// Insert persists a new registration. Fails if the ID is already present.
	Insert(ctx context.Context, registration *Registration) error

	// Get retrieves a registration by ID, including soft-deleted ones.
	// Returns NotFoundError if no matching registration exists.
	Get(ctx context.Context, id string) (*Registration, error)

	// GetAll retrieves every registration regardless of deletion status,
	// in insertion order. Filtering is the caller's job.
	GetAll(ctx context.Context) ([]*Registration, error)

	// Update overwrites an existing registration by ID. Used only for the
	// soft-delete transition. Returns NotFoundError if the ID is absent.
	Update(ctx context.Context, registration *Registration) error
}

// CounterStore provides atomic sequential number allocation per scope key.
//
// The read of the current value, the computation of the next value and the
// write back must be indivisible with respect to concurrent callers on the
// same key: two allocations must never observe the same current value.
type CounterStore interface {
	// AllocateNext returns the next value for the given scope key. The
	// first allocation in a scope returns start; each subsequent one
	// returns exactly one more than the previous. Failures surface as
	// AllocationError with no counter state change observed by any caller.
	AllocateNext(ctx context.Context, key string, start int64) (int64, error)
}

// Clock supplies the current time as a sortable RFC 3339 string. Listing
// filters by month through string-prefix matching on this value, so the
// format must be lexically comparable.
type Clock interface {
	Now() string
}

// IdentityProvider resolves the acting user for audit stamping.
type IdentityProvider interface {
	CurrentUser() string
}

// IDGenerator produces a statistically unique identifier per call.
type IDGenerator interface {
	NewID() string
}
