package auth

import (
	"fmt"
	"strings"
)

// Scope is the authorization domain a client is initialized for. It gates
// which identity may authenticate and which operations the platform permits.
type Scope int

const (
	// Delegated acts on behalf of an end user.
	Delegated Scope = iota
	// Autonomous acts for the application itself.
	Autonomous
)

func (s Scope) String() string {
	switch s {
	case Delegated:
		return "Delegated"
	case Autonomous:
		return "Autonomous"
	}
	panic("invalid scope")
}

func (s *Scope) UnmarshalText(text []byte) error {
	val := strings.ToLower(strings.TrimSpace(string(text)))

	switch val {
	case "delegated":
		*s = Delegated
	case "autonomous":
		*s = Autonomous
	default:
		return fmt.Errorf("invalid ASPEN_SCOPE: %q (allowed: delegated, autonomous)", val)
	}
	return nil
}
