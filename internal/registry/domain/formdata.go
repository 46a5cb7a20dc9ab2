package domain

// FormData holds the user-entered fields of a registration form.
//
// Issuer, RefNumber, DocDate, Subject and EntryDate are required for every
// category. Recipient is required only for outgoing categories, SIC only for
// the signals class.
type FormData struct {
	Issuer    string
	RefNumber string
	DocDate   string
	Subject   string
	EntryDate string
	Recipient string
	SIC       string
}

// Validate checks that all fields required by the given category are present.
// Returns a ValidationError naming the first missing field, or nil.
func (f FormData) Validate(category Category) error {
	required := []struct {
		field string
		value string
	}{
		{"issuer", f.Issuer},
		{"refNumber", f.RefNumber},
		{"docDate", f.DocDate},
		{"subject", f.Subject},
		{"entryDate", f.EntryDate},
	}
	for _, r := range required {
		if r.value == "" {
			return &ValidationError{Field: r.field, Reason: "required"}
		}
	}

	if category.Direction == DirectionOutgoing && f.Recipient == "" {
		return &ValidationError{Field: "recipient", Reason: "required for outgoing categories"}
	}
	if category.Class == ClassSignals && f.SIC == "" {
		return &ValidationError{Field: "sic", Reason: "required for signals categories"}
	}
	return nil
}
