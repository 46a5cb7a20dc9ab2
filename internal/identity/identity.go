// Package identity resolves the acting user for audit stamping.
package identity

import (
	"os"
	"os/user"
)

// OSProvider resolves the current user from the operating system, falling
// back to the USER environment variable.
type OSProvider struct{}

// CurrentUser returns the username of the process owner, or "unknown" when
// it cannot be resolved.
func (OSProvider) CurrentUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "unknown"
}
