package aspen

import (
	"github.com/atorresprocessa/go-aspen-client/aspen/api"
	"github.com/atorresprocessa/go-aspen-client/aspen/auth"
)

// Client is the authorized facade a successful authentication materializes.
// The token is written once here and only read afterwards; a Client is safe
// to use from one goroutine at a time.
type Client struct {
	settings auth.Settings
	invoker  api.Client
	app      AppIdentity
	token    AuthToken

	Financial   *FinancialClient
	Management  *ManagementClient
	Settings    *SettingsClient
	CurrentUser *CurrentUserClient
	Push        *PushClient
}

func newClient(settings auth.Settings, invoker api.Client, app AppIdentity, token AuthToken) *Client {
	c := &Client{settings: settings, invoker: invoker, app: app, token: token}
	c.Financial = &FinancialClient{c: c}
	c.Management = &ManagementClient{c: c}
	c.Settings = &SettingsClient{c: c}
	c.CurrentUser = &CurrentUserClient{c: c}
	c.Push = &PushClient{c: c}
	return c
}

// AuthToken exposes the issued credential, mostly so callers can branch on
// its concrete type or scope.
func (c *Client) AuthToken() AuthToken {
	return c.token
}

// headers signs the per-call payload and attaches the bearer. Every
// authorized call goes through here.
func (c *Client) headers() (map[string]string, error) {
	envelope, err := auth.SignAuthorized(c.settings, c.token.Bearer(), c.app.ApiKey(), c.app.ApiSecret())
	if err != nil {
		return nil, err
	}

	h := envelope.Headers()
	h["Authorization"] = "Bearer " + c.token.Bearer()
	return h, nil
}
