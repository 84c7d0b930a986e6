package aspen

import (
	"github.com/atorresprocessa/go-aspen-client/aspen/util"
)

// AppIdentity supplies the application's own key and secret. The secret
// signs every payload; the key travels in the auth header. The scope the
// application was granted lives server side and drives the 403 check.
type AppIdentity interface {
	ApiKey() string
	ApiSecret() string
}

// StaticAppIdentity holds literal credential material.
type StaticAppIdentity struct {
	Key    string
	Secret string
}

func (s StaticAppIdentity) ApiKey() string    { return s.Key }
func (s StaticAppIdentity) ApiSecret() string { return s.Secret }

// EnvAppIdentity reads the credentials from ASPEN_API_KEY and
// ASPEN_API_SECRET, failing hard when either is missing.
func EnvAppIdentity() AppIdentity {
	return StaticAppIdentity{
		Key:    util.GetEnvOrFailed("ASPEN_API_KEY"),
		Secret: util.GetEnvOrFailed("ASPEN_API_SECRET"),
	}
}
