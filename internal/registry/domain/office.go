package domain

import "fmt"

// Office identifies a distributing office by its stable key. Display names
// are resolved through the label catalog, keyed by "office." + key.
type Office string

// The fixed set of distributing offices.
const (
	OfficeFirst             Office = "office-1"
	OfficeSecond            Office = "office-2"
	OfficeThird             Office = "office-3"
	OfficeFourth            Office = "office-4"
	OfficeGDY               Office = "gdy"
	OfficeTransactions      Office = "transactions"
	OfficeArmorLiaison      Office = "armor-liaison"
	OfficeCivilianPersonnel Office = "civilian-personnel"
)

// Offices returns all distributing offices in display order.
func Offices() []Office {
	return []Office{
		OfficeFirst,
		OfficeSecond,
		OfficeThird,
		OfficeFourth,
		OfficeGDY,
		OfficeTransactions,
		OfficeArmorLiaison,
		OfficeCivilianPersonnel,
	}
}

// IsValid returns true if the office is one of the fixed distributing offices.
func (o Office) IsValid() bool {
	for _, known := range Offices() {
		if o == known {
			return true
		}
	}
	return false
}

// ParseOffice resolves a stable office key into an Office.
// Returns an error for unknown keys.
func ParseOffice(key string) (Office, error) {
	o := Office(key)
	if !o.IsValid() {
		return "", fmt.Errorf("unknown distributing office %q", key)
	}
	return o, nil
}

// NormalizeOffices validates a selection of offices and removes duplicates
// while preserving selection order. An empty selection or an unknown office
// yields a ValidationError.
func NormalizeOffices(offices []Office) ([]Office, error) {
	if len(offices) == 0 {
		return nil, &ValidationError{Field: "offices", Reason: "at least one distributing office is required"}
	}

	seen := make(map[Office]struct{}, len(offices))
	normalized := make([]Office, 0, len(offices))
	for _, o := range offices {
		if !o.IsValid() {
			return nil, &ValidationError{Field: "offices", Reason: fmt.Sprintf("unknown distributing office %q", o)}
		}
		if _, dup := seen[o]; dup {
			continue
		}
		seen[o] = struct{}{}
		normalized = append(normalized, o)
	}
	return normalized, nil
}
