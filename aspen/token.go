package aspen

import (
	"github.com/atorresprocessa/go-aspen-client/aspen/auth"
)

// AuthToken is the bearer credential a successful authentication issued,
// together with the scope it was granted for. It lives until the client is
// re-authenticated or the process ends; nothing here persists or refreshes
// it.
type AuthToken interface {
	Bearer() string
	Scope() auth.Scope
}

// UserAuthToken is issued for a delegated end-user session.
type UserAuthToken struct {
	token    string
	deviceID string
	username string
}

func (t *UserAuthToken) Bearer() string    { return t.token }
func (t *UserAuthToken) Scope() auth.Scope { return auth.Delegated }

// DeviceID identifies the install the session was opened from.
func (t *UserAuthToken) DeviceID() string { return t.deviceID }

// Username is the document identification the platform echoes back.
func (t *UserAuthToken) Username() string { return t.username }

// AppAuthToken is issued for an autonomous application session.
type AppAuthToken struct {
	token string
}

func (t *AppAuthToken) Bearer() string    { return t.token }
func (t *AppAuthToken) Scope() auth.Scope { return auth.Autonomous }
