package aspen

import (
	"context"
	"fmt"
	"strings"

	"github.com/atorresprocessa/go-aspen-client/aspen/api"
	"github.com/atorresprocessa/go-aspen-client/aspen/model"
	"github.com/atorresprocessa/go-aspen-client/aspen/pin"
)

// CurrentUserClient groups the operations acting on the authenticated user
// itself: activation codes and the transactional pin lifecycle.
type CurrentUserClient struct {
	c *Client
}

// RequestActivationCode asks the platform to send a one-time activation
// code through the SMS channel.
func (u *CurrentUserClient) RequestActivationCode(ctx context.Context) error {
	headers, err := u.c.headers()
	if err != nil {
		return err
	}

	return u.c.invoker.Post(ctx, "/me/activationcode", headers, nil, nil)
}

// SetPin establishes the transactional pin, gated by a valid activation
// code. The pin policies run locally first; a defect never reaches the
// network. The server re-validates everything.
func (u *CurrentUserClient) SetPin(ctx context.Context, pinNumber, activationCode string) error {

	var messages []string
	if strings.TrimSpace(pinNumber) == "" {
		messages = append(messages, fmt.Sprintf("'%s' no puede ser nulo ni vacío", "PinNumber"))
	}
	if strings.TrimSpace(activationCode) == "" {
		messages = append(messages, fmt.Sprintf("'%s' no puede ser nulo ni vacío", "ActivationCode"))
	}
	if len(messages) > 0 {
		return api.NewValidationError(messages...)
	}

	if err := pin.Evaluate(pinNumber); err != nil {
		return err
	}

	return u.postPin(ctx, pinNumber, activationCode)
}

// SetPinAvoidingValidation submits the pin without the local pre-flight,
// letting the platform produce the rejection. Kept for probing the
// server-side policy enforcement.
func (u *CurrentUserClient) SetPinAvoidingValidation(ctx context.Context, pinNumber, activationCode string) error {
	return u.postPin(ctx, pinNumber, activationCode)
}

// UpdatePin replaces an already set pin. The platform checks the current
// value; once replaced, the old value is invalidated immediately.
func (u *CurrentUserClient) UpdatePin(ctx context.Context, currentPin, newPin string) error {

	if err := pin.Evaluate(newPin); err != nil {
		return err
	}

	headers, err := u.c.headers()
	if err != nil {
		return err
	}

	body := model.PinUpdateRequest{CurrentPin: currentPin, NewPin: newPin}
	return u.c.invoker.Post(ctx, "/me/pin/update", headers, body, nil)
}

// RequestSingleUseToken asks the platform to deliver a one-time
// transactional token to the user through the push/SMS channel.
func (u *CurrentUserClient) RequestSingleUseToken(ctx context.Context) error {
	headers, err := u.c.headers()
	if err != nil {
		return err
	}

	return u.c.invoker.Post(ctx, "/me/tokens", headers, nil, nil)
}

func (u *CurrentUserClient) postPin(ctx context.Context, pinNumber, activationCode string) error {
	headers, err := u.c.headers()
	if err != nil {
		return err
	}

	body := model.PinRequest{PinNumber: pinNumber, ActivationCode: activationCode}
	return u.c.invoker.Post(ctx, "/me/pin", headers, body, nil)
}
