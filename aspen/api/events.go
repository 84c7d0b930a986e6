package api

// Event ids emitted by the Aspen platform. The client never keeps its own
// attempt counters; it recognizes the server outcome through these ids.
const (
	// Validation y políticas
	EvtValidationFailed      = "15852"
	EvtPinPolicyViolation    = "15860"
	EvtInvalidPin            = "15862"
	EvtInvalidActivationCode = "15868"

	// Autenticación
	EvtUnrecognizedIdentity   = "97412"
	EvtIdentityLockedOut      = "97413"
	EvtInvalidCredential      = "97414"
	EvtLockoutTransition      = "97415"
	EvtMissingCredential      = "97416"
	EvtCredentialUnverifiable = "97417"

	// Autorización y dependencias
	EvtInsufficientScope  = "1000478"
	EvtServiceUnavailable = "20100"
)

// FailureKind groups event ids into the coarse taxonomy callers branch on.
type FailureKind int

const (
	KindUnknown FailureKind = iota
	KindValidation
	KindAuthentication
	KindAuthorization
	KindPolicy
	KindPrecondition
	KindServiceUnavailable
	KindInternal
)

func (k FailureKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuthentication:
		return "authentication"
	case KindAuthorization:
		return "authorization"
	case KindPolicy:
		return "policy"
	case KindPrecondition:
		return "precondition"
	case KindServiceUnavailable:
		return "service-unavailable"
	case KindInternal:
		return "internal"
	}
	return "unknown"
}

// Kind classifies the error, event id first, HTTP status as fallback for
// envelopes without a recognized id.
func (r *ResponseError) Kind() FailureKind {
	switch r.EventID {
	case EvtValidationFailed:
		return KindValidation
	case EvtUnrecognizedIdentity, EvtIdentityLockedOut, EvtInvalidCredential,
		EvtLockoutTransition, EvtMissingCredential:
		return KindAuthentication
	case EvtInsufficientScope:
		return KindAuthorization
	case EvtPinPolicyViolation, EvtInvalidPin:
		return KindPolicy
	case EvtInvalidActivationCode:
		return KindPrecondition
	case EvtServiceUnavailable:
		return KindServiceUnavailable
	case EvtCredentialUnverifiable:
		return KindInternal
	}

	switch {
	case r.StatusCode == 400:
		return KindValidation
	case r.StatusCode == 401:
		return KindAuthentication
	case r.StatusCode == 403:
		return KindAuthorization
	case r.StatusCode == 406:
		return KindPolicy
	case r.StatusCode == 417:
		return KindPrecondition
	case r.StatusCode == 503:
		return KindServiceUnavailable
	case r.StatusCode >= 500:
		return KindInternal
	}
	return KindUnknown
}

// IsLockout reports whether the identity is locked, either because this very
// attempt exhausted the allowed failures or because it already was.
func (r *ResponseError) IsLockout() bool {
	return r.EventID == EvtIdentityLockedOut || r.EventID == EvtLockoutTransition
}
