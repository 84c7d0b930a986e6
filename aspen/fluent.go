package aspen

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/atorresprocessa/go-aspen-client/aspen/api"
	"github.com/atorresprocessa/go-aspen-client/aspen/auth"
	"github.com/atorresprocessa/go-aspen-client/aspen/model"
)

// Scope re-exports so callers configure the builder without importing the
// auth package.
type Scope = auth.Scope

const (
	Delegated  = auth.Delegated
	Autonomous = auth.Autonomous
)

// Signin endpoints per scope.
const (
	userSigninPath = "/auth/signin/user"
	appSigninPath  = "/auth/signin/app"
)

var logger = log.WithField("component", "aspen")

// Initialize starts the configuration chain with production settings for
// the given scope. Each stage returns the type exposing only the next legal
// call, so an out-of-order sequence does not compile.
func Initialize(scope Scope) *Router {
	return InitializeWith(auth.DefaultSettings(scope))
}

// InitializeWith starts the chain with explicit settings, usually to pin
// nonce and epoch generators.
func InitializeWith(settings auth.Settings) *Router {
	return &Router{settings: settings}
}

// Router is the stage that still needs a routing target.
type Router struct {
	settings auth.Settings
}

// RoutingTo binds the endpoint the client talks to.
func (r *Router) RoutingTo(endpoint EndpointProvider) *IdentityBinder {
	return &IdentityBinder{settings: r.settings, endpoint: endpoint}
}

// IdentityBinder is the stage that still needs application credentials.
type IdentityBinder struct {
	settings auth.Settings
	endpoint EndpointProvider
}

// WithIdentity binds the application credential material used for signing.
func (b *IdentityBinder) WithIdentity(app AppIdentity) *Authenticator {
	return &Authenticator{settings: b.settings, endpoint: b.endpoint, app: app}
}

// Authenticator is the fully configured stage. One Authenticate call at a
// time per instance; callers needing parallel sessions build independent
// chains.
type Authenticator struct {
	settings auth.Settings
	endpoint EndpointProvider
	app      AppIdentity
}

// Authenticate validates the delegated user identity, signs the attempt and
// exchanges it for a user token. On success it materializes the authorized
// client facade.
func (a *Authenticator) Authenticate(ctx context.Context, user *auth.UserIdentity) (*Client, error) {

	if err := auth.ValidateUser(user); err != nil {
		return nil, err
	}

	envelope, err := auth.Sign(a.settings, user, a.app.ApiKey(), a.app.ApiSecret())
	if err != nil {
		return nil, err
	}

	invoker := api.New(a.endpoint.URL(a.settings.Scope()))

	logger.Debugf("authenticating %s/%s against %s", user.DocType, user.DocNumber, a.endpoint.URL(a.settings.Scope()))

	var res model.SigninResponse
	if err := invoker.Post(ctx, userSigninPath, envelope.Headers(), nil, &res); err != nil {
		return nil, err
	}

	token := &UserAuthToken{token: res.Token, deviceID: res.DeviceID, username: res.Username}
	return newClient(a.settings, invoker, a.app, token), nil
}

// AuthenticateApp signs an autonomous attempt with the application
// credentials alone and exchanges it for an app token.
func (a *Authenticator) AuthenticateApp(ctx context.Context) (*Client, error) {

	envelope, err := auth.Sign(a.settings, nil, a.app.ApiKey(), a.app.ApiSecret())
	if err != nil {
		return nil, err
	}

	invoker := api.New(a.endpoint.URL(a.settings.Scope()))

	var res model.SigninResponse
	if err := invoker.Post(ctx, appSigninPath, envelope.Headers(), nil, &res); err != nil {
		return nil, err
	}

	return newClient(a.settings, invoker, a.app, &AppAuthToken{token: res.Token}), nil
}
