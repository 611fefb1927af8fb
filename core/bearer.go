package core

import (
	"fmt"
	"net/http"
)

// BearerTokenAuthenticator sends a caller managed bearer token. Refreshing
// the token is the caller's job; see [IamAuthenticator] for a managed one.
type BearerTokenAuthenticator struct {
	BearerToken string
}

func NewBearerTokenAuthenticator(token string) (*BearerTokenAuthenticator, error) {
	a := &BearerTokenAuthenticator{BearerToken: token}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *BearerTokenAuthenticator) AuthenticationType() string { return AuthTypeBearerToken }

func (a *BearerTokenAuthenticator) Authenticate(req *http.Request) error {
	req.Header.Set("Authorization", "Bearer "+a.BearerToken)
	return nil
}

func (a *BearerTokenAuthenticator) Validate() error {
	if a.BearerToken == "" {
		return fmt.Errorf("bearer token: %w", ErrMissingCredentials)
	}
	return nil
}
