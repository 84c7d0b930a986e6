package auth

import (
	"regexp"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	log "github.com/sirupsen/logrus"

	"github.com/atorresprocessa/go-aspen-client/aspen/api"
)

// NoncePattern bounds the nonce to uuid-like material. A value outside the
// pattern never leaves the client.
var NoncePattern = regexp.MustCompile(`^[0-9a-fA-F-]{16,36}$`)

const (
	msgNonceRequired = "'Nonce' no puede ser nulo ni vacío"
	msgNoncePattern  = "'Nonce' debe coincidir con el patrón ^[0-9a-fA-F-]{16,36}$"
)

// SignedEnvelope is the signed authentication material of one attempt. It is
// created fresh per attempt and never reused; the nonce inside it is
// single-use on the server side.
type SignedEnvelope struct {
	ApiKey  string
	Payload string
	Nonce   string
	Epoch   int64
}

// Headers returns the header map the transport attaches to the request.
func (e *SignedEnvelope) Headers() map[string]string {
	return map[string]string{
		api.HeaderAuthApp:     e.ApiKey,
		api.HeaderAuthPayload: e.Payload,
	}
}

// Sign draws one nonce and one epoch from the settings, validates the nonce
// locally and emits the HS256 payload for a signin attempt. A nil identity
// produces the autonomous payload; otherwise the delegated one. Future
// epochs are accepted here; skew rejection is the server's business.
func Sign(settings Settings, identity *UserIdentity, apiKey, apiSecret string) (*SignedEnvelope, error) {

	nonce := settings.NonceGenerator().Next()
	if strings.TrimSpace(nonce) == "" {
		return nil, api.NewValidationError(msgNonceRequired)
	}
	if !NoncePattern.MatchString(nonce) {
		return nil, api.NewValidationError(msgNoncePattern)
	}

	epoch := settings.EpochGenerator().Next()

	claims := jwt.MapClaims{
		"Nonce": nonce,
		"Epoch": epoch,
	}
	if identity != nil {
		claims["DeviceId"] = identity.DeviceID
		claims["DocType"] = identity.DocType
		claims["DocNumber"] = identity.DocNumber
		claims["Password"] = identity.Password
	}

	payload, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(apiSecret))
	if err != nil {
		return nil, &api.ResponseError{Message: "no fue posible firmar la carga de trabajo", Err: err}
	}

	log.Debugf("signed payload for scope %s, epoch %d", settings.Scope(), epoch)

	return &SignedEnvelope{
		ApiKey:  apiKey,
		Payload: payload,
		Nonce:   nonce,
		Epoch:   epoch,
	}, nil
}

// SignAuthorized emits the per-call payload carrying the session token. Each
// call draws a fresh nonce from the settings.
func SignAuthorized(settings Settings, token, apiKey, apiSecret string) (*SignedEnvelope, error) {

	nonce := settings.NonceGenerator().Next()
	if strings.TrimSpace(nonce) == "" {
		return nil, api.NewValidationError(msgNonceRequired)
	}
	if !NoncePattern.MatchString(nonce) {
		return nil, api.NewValidationError(msgNoncePattern)
	}

	epoch := settings.EpochGenerator().Next()

	claims := jwt.MapClaims{
		"Nonce": nonce,
		"Epoch": epoch,
		"Token": token,
	}

	payload, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(apiSecret))
	if err != nil {
		return nil, &api.ResponseError{Message: "no fue posible firmar la carga de trabajo", Err: err}
	}

	return &SignedEnvelope{
		ApiKey:  apiKey,
		Payload: payload,
		Nonce:   nonce,
		Epoch:   epoch,
	}, nil
}
