// Package clock supplies timestamps in the sortable RFC 3339 form the
// registry stores and filters on.
package clock

import "time"

// System is the wall clock. It renders UTC timestamps so lexical comparison
// matches chronological order across the whole register.
type System struct{}

// Now returns the current time as an RFC 3339 UTC string.
func (System) Now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
