package core

import (
	"fmt"
	"net/http"
	"strings"
)

// BasicAuthenticator sends HTTP basic credentials, as used by Cloud Pak for
// Data and older Watson instances.
type BasicAuthenticator struct {
	Username string
	Password string
}

func NewBasicAuthenticator(username, password string) (*BasicAuthenticator, error) {
	a := &BasicAuthenticator{Username: username, Password: password}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *BasicAuthenticator) AuthenticationType() string { return AuthTypeBasic }

func (a *BasicAuthenticator) Authenticate(req *http.Request) error {
	req.SetBasicAuth(a.Username, a.Password)
	return nil
}

func (a *BasicAuthenticator) Validate() error {
	if a.Username == "" || a.Password == "" {
		return fmt.Errorf("basic auth: username and password: %w", ErrMissingCredentials)
	}
	if hasBraces(a.Username) || hasBraces(a.Password) {
		return fmt.Errorf("basic auth: credentials must not be wrapped in {} or quotes, remove them")
	}
	return nil
}

func hasBraces(s string) bool {
	return strings.HasPrefix(s, "{") || strings.HasSuffix(s, "}") ||
		strings.HasPrefix(s, `"`) || strings.HasSuffix(s, `"`)
}
