// Package domain provides the pure domain layer for document registrations
// with no infrastructure dependencies.
//
// This package follows Domain-Driven Design (DDD) principles:
//   - Contains only pure Go code with standard library imports
//   - Defines the Registration entity with encapsulated state and behavior
//   - Defines the repository interfaces for persistence abstraction
//   - Provides domain-specific error types
//
// The domain layer has no knowledge of infrastructure concerns (databases,
// file I/O, etc.).
package domain

import "fmt"

// Class is the security/traffic class of a registration category.
type Class string

const (
	// ClassCommon is ordinary document traffic.
	ClassCommon Class = "common"

	// ClassSignals is signals traffic, numbered independently from the
	// common/confidential pool.
	ClassSignals Class = "signals"

	// ClassConfidential is confidential document traffic. It shares the
	// common class numbering sequence.
	ClassConfidential Class = "confidential"
)

// Direction indicates whether a document enters or leaves the unit.
type Direction string

const (
	// DirectionIncoming marks documents received by the unit.
	DirectionIncoming Direction = "incoming"

	// DirectionOutgoing marks documents sent by the unit. Outgoing
	// registrations additionally receive a draft number.
	DirectionOutgoing Direction = "outgoing"
)

// Category identifies one of the six registration books as the combination
// of a class and a direction. The two fields are orthogonal: every policy
// decision matches on exactly one of them.
type Category struct {
	Class     Class
	Direction Direction
}

// The six registration categories.
var (
	CommonIncoming       = Category{Class: ClassCommon, Direction: DirectionIncoming}
	CommonOutgoing       = Category{Class: ClassCommon, Direction: DirectionOutgoing}
	SignalsIncoming      = Category{Class: ClassSignals, Direction: DirectionIncoming}
	SignalsOutgoing      = Category{Class: ClassSignals, Direction: DirectionOutgoing}
	ConfidentialIncoming = Category{Class: ClassConfidential, Direction: DirectionIncoming}
	ConfidentialOutgoing = Category{Class: ClassConfidential, Direction: DirectionOutgoing}
)

// Categories returns all registration categories in display order.
func Categories() []Category {
	return []Category{
		CommonIncoming,
		CommonOutgoing,
		SignalsIncoming,
		SignalsOutgoing,
		ConfidentialIncoming,
		ConfidentialOutgoing,
	}
}

// Key returns the stable identifier for this category, e.g. "signals-outgoing".
// Keys are used for persistence and as translation lookup keys.
func (c Category) Key() string {
	return string(c.Class) + "-" + string(c.Direction)
}

// String returns the category key.
func (c Category) String() string {
	return c.Key()
}

// IsValid returns true if both class and direction are recognized values.
func (c Category) IsValid() bool {
	switch c.Class {
	case ClassCommon, ClassSignals, ClassConfidential:
	default:
		return false
	}
	switch c.Direction {
	case DirectionIncoming, DirectionOutgoing:
		return true
	default:
		return false
	}
}

// ParseCategory resolves a stable category key back into a Category.
// Returns an error for unknown keys.
func ParseCategory(key string) (Category, error) {
	for _, c := range Categories() {
		if c.Key() == key {
			return c, nil
		}
	}
	return Category{}, fmt.Errorf("unknown registration category %q", key)
}
