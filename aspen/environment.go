package aspen

import (
	"fmt"
	"strings"

	"github.com/atorresprocessa/go-aspen-client/aspen/auth"
)

// EndpointProvider resolves the service base route for a scope.
type EndpointProvider interface {
	URL(scope auth.Scope) string
}

type Environment int

const (
	Local Environment = iota
	Staging
	Prod
)

func (e Environment) BaseURL() string {
	switch e {
	case Prod:
		return "https://aspen.processa.com/api"
	case Staging:
		return "https://aspen-staging.processa.com/api"
	case Local:
		return "http://localhost:5000/api"
	}
	panic("invalid environment")
}

// URL satisfies EndpointProvider. The platform serves both scopes from the
// same base route; the signin endpoints differ per scope.
func (e Environment) URL(_ auth.Scope) string {
	return e.BaseURL()
}

func (e Environment) Name() string {
	switch e {
	case Prod:
		return "prod"
	case Staging:
		return "staging"
	case Local:
		return "local"
	}
	panic("invalid environment")
}

func (e *Environment) UnmarshalText(text []byte) error {
	val := strings.ToLower(strings.TrimSpace(string(text)))

	switch val {
	case "prod":
		*e = Prod
	case "staging":
		*e = Staging
	case "local":
		*e = Local
	default:
		return fmt.Errorf("invalid ASPEN_ENV: %q (allowed: prod, staging, local)", val)
	}
	return nil
}

// StaticEndpoint routes every scope to one literal base URL. Tests point it
// at a local double of the service.
type StaticEndpoint string

func (s StaticEndpoint) URL(_ auth.Scope) string {
	return string(s)
}
