package registry

import "github.com/google/uuid"

// UUIDGenerator issues random UUIDv4 identifiers for new registrations.
type UUIDGenerator struct{}

// NewID returns a fresh statistically unique identifier.
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}
