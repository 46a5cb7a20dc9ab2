package domain

import "fmt"

// draftKey is the single system-wide draft number scope shared by all
// outgoing categories regardless of class.
const draftKey = "draft-number"

// Numbering start values. The common/confidential book starts at 40001 so
// its numbers never look like signals numbers at a glance. The two pools
// are independent and may repeat each other's values.
const (
	signalsStart            int64 = 1
	commonConfidentialStart int64 = 40001
	draftStart              int64 = 1
)

// CounterKeyFor derives the protocol counter scope key and its start value
// for a category in a given year. Signals traffic is numbered independently;
// common and confidential share one sequence. The year is part of the key,
// so numbering resets implicitly each calendar year.
func CounterKeyFor(category Category, year int) (key string, start int64) {
	switch category.Class {
	case ClassSignals:
		return fmt.Sprintf("signals-protocol-%d", year), signalsStart
	default:
		return fmt.Sprintf("common-confidential-protocol-%d", year), commonConfidentialStart
	}
}

// NeedsDraftNumber reports whether a category receives a draft number in
// addition to its protocol number. Only outgoing categories do.
func NeedsDraftNumber(category Category) bool {
	return category.Direction == DirectionOutgoing
}

// DraftCounterKey returns the shared draft scope key and its start value.
func DraftCounterKey() (key string, start int64) {
	return draftKey, draftStart
}
