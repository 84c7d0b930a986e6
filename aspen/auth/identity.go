package auth

import (
	"strings"

	"github.com/google/uuid"
)

// UserIdentity is the credential material of a delegated end user. Fields
// are validated before any network call.
type UserIdentity struct {
	DeviceID  string
	DocType   string
	DocNumber string
	Password  string
}

// NewUserIdentity builds an identity with a random device id, the way a
// mobile install would present itself.
func NewUserIdentity(docType, docNumber, password string) *UserIdentity {
	return &UserIdentity{
		DeviceID:  uuid.NewString(),
		DocType:   docType,
		DocNumber: docNumber,
		Password:  password,
	}
}

// Set overrides a field by name, case-insensitive. This is the narrow escape
// hatch for building intentionally broken payloads; regular callers assign
// the struct fields directly. Unknown names are ignored.
func (u *UserIdentity) Set(field, value string) {
	switch strings.ToLower(field) {
	case "deviceid":
		u.DeviceID = value
	case "doctype":
		u.DocType = value
	case "docnumber":
		u.DocNumber = value
	case "password":
		u.Password = value
	}
}
