package domain

// Registration represents one submitted registry entry. All fields are
// unexported to enforce encapsulation; a registration is immutable after
// creation except for the single soft-delete transition.
//
// Timestamps are RFC 3339 strings. They sort lexically, which the listing
// layer relies on for month-prefix filtering.
type Registration struct {
	id             string
	category       Category
	protocolNumber string
	draftNumber    string
	form           FormData
	offices        []Office
	createdAt      string
	createdBy      string
	deletedAt      string
}

// NewRegistration creates a registration with the given identity, assigned
// numbers and audit fields. Callers are expected to have validated the form
// and offices and allocated the numbers beforehand.
func NewRegistration(id string, category Category, protocolNumber, draftNumber string, form FormData, offices []Office, createdAt, createdBy string) *Registration {
	return &Registration{
		id:             id,
		category:       category,
		protocolNumber: protocolNumber,
		draftNumber:    draftNumber,
		form:           form,
		offices:        offices,
		createdAt:      createdAt,
		createdBy:      createdBy,
		deletedAt:      "",
	}
}

// ReconstituteRegistration creates a Registration from existing data,
// typically when hydrating from the database. All fields are provided
// explicitly; deletedAt is empty for active registrations.
func ReconstituteRegistration(id string, category Category, protocolNumber, draftNumber string, form FormData, offices []Office, createdAt, createdBy, deletedAt string) *Registration {
	return &Registration{
		id:             id,
		category:       category,
		protocolNumber: protocolNumber,
		draftNumber:    draftNumber,
		form:           form,
		offices:        offices,
		createdAt:      createdAt,
		createdBy:      createdBy,
		deletedAt:      deletedAt,
	}
}

// ID returns the unique identifier of this registration.
func (r *Registration) ID() string {
	return r.id
}

// Category returns the registration category.
func (r *Registration) Category() Category {
	return r.category
}

// ProtocolNumber returns the sequential protocol number assigned at creation.
func (r *Registration) ProtocolNumber() string {
	return r.protocolNumber
}

// DraftNumber returns the draft number for outgoing registrations, or the
// empty string for incoming ones.
func (r *Registration) DraftNumber() string {
	return r.draftNumber
}

// Form returns the user-entered form fields.
func (r *Registration) Form() FormData {
	return r.form
}

// Offices returns the distributing offices in selection order.
func (r *Registration) Offices() []Office {
	return r.offices
}

// CreatedAt returns the creation timestamp as an RFC 3339 string.
func (r *Registration) CreatedAt() string {
	return r.createdAt
}

// CreatedBy returns the identity of the actor that created this registration.
func (r *Registration) CreatedBy() string {
	return r.createdBy
}

// DeletedAt returns the soft-delete timestamp, or the empty string if this
// registration is active.
func (r *Registration) DeletedAt() string {
	return r.deletedAt
}

// IsDeleted returns true if this registration has been soft-deleted.
func (r *Registration) IsDeleted() bool {
	return r.deletedAt != ""
}

// SoftDelete marks the registration as deleted at the given timestamp.
// The transition happens at most once; a second call is a no-op so the
// original deletion timestamp is never rewritten.
func (r *Registration) SoftDelete(deletedAt string) {
	if r.deletedAt != "" {
		return
	}
	r.deletedAt = deletedAt
}
