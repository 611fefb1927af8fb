// Package core holds the pieces shared by every Watson service client that
// are not tied to one API: authenticators and the discovery of service
// credentials from the environment.
package core

import (
	"errors"
	"net/http"
)

// Authentication types, as they appear in AUTH_TYPE properties.
const (
	AuthTypeIAM         = "iam"
	AuthTypeBearerToken = "bearerToken"
	AuthTypeBasic       = "basic"
	AuthTypeNoAuth      = "noAuth"
)

// Authenticator adds credentials to outgoing requests.
type Authenticator interface {
	AuthenticationType() string
	Authenticate(req *http.Request) error
	Validate() error
}

// ErrMissingCredentials is wrapped by Validate errors when a required
// credential is empty.
var ErrMissingCredentials = errors.New("missing credentials")

// NoAuthAuthenticator leaves requests untouched. It is useful against
// local mock servers.
type NoAuthAuthenticator struct{}

func NewNoAuthAuthenticator() *NoAuthAuthenticator { return &NoAuthAuthenticator{} }

func (*NoAuthAuthenticator) AuthenticationType() string { return AuthTypeNoAuth }

func (*NoAuthAuthenticator) Authenticate(*http.Request) error { return nil }

func (*NoAuthAuthenticator) Validate() error { return nil }
