package model

// SigninResponse is the body returned by the signin endpoints when the
// credential is accepted. The token is the bearer for every authorized call.
type SigninResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
	DeviceID  string `json:"deviceId,omitempty"`
	Username  string `json:"username,omitempty"`
}

// ErrorResponse is the uniform error envelope every Aspen endpoint shares.
// Extra keys outside these two are domain specific and are surfaced through
// the Content of the translated error.
type ErrorResponse struct {
	EventID string `json:"eventId"`
	Message string `json:"message"`
}
