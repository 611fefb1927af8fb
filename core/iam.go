package core

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/oauth2"
)

const (
	DefaultIAMURL      = "https://iam.cloud.ibm.com"
	iamTokenPath       = "/identity/token"
	iamAPIKeyGrantType = "urn:ibm:params:oauth:grant-type:apikey"
)

// IamAuthenticator exchanges an IBM Cloud API key for an IAM access token
// and sends it as a bearer token. Tokens are cached and refreshed shortly
// before they expire; it is safe for concurrent use.
type IamAuthenticator struct {
	APIKey string
	// URL is the IAM endpoint; the token path is appended. Defaults to
	// [DefaultIAMURL].
	URL string
	// ClientID and ClientSecret are sent as basic credentials on the token
	// request when both are set.
	ClientID     string
	ClientSecret string
	Scope        string
	// Client performs token requests. Defaults to http.DefaultClient.
	Client *http.Client

	once   sync.Once
	source oauth2.TokenSource
}

func NewIamAuthenticator(apiKey string) (*IamAuthenticator, error) {
	a := &IamAuthenticator{APIKey: apiKey}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *IamAuthenticator) AuthenticationType() string { return AuthTypeIAM }

func (a *IamAuthenticator) Validate() error {
	if a.APIKey == "" {
		return fmt.Errorf("iam: apikey: %w", ErrMissingCredentials)
	}
	if hasBraces(a.APIKey) {
		return fmt.Errorf("iam: apikey must not be wrapped in {} or quotes, remove them")
	}
	if (a.ClientID == "") != (a.ClientSecret == "") {
		return fmt.Errorf("iam: client id and client secret must be set together")
	}
	return nil
}

func (a *IamAuthenticator) Authenticate(req *http.Request) error {
	tok, err := a.Token()
	if err != nil {
		return err
	}
	tok.SetAuthHeader(req)
	return nil
}

// Token returns a valid access token, fetching a new one if needed.
func (a *IamAuthenticator) Token() (*oauth2.Token, error) {
	a.once.Do(func() {
		a.source = oauth2.ReuseTokenSource(nil, &iamTokenSource{auth: a})
	})
	return a.source.Token()
}

type iamTokenSource struct {
	auth *IamAuthenticator
}

type iamTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	Expiration   int64  `json:"expiration"`
}

// IamTokenError is returned when the IAM endpoint rejects a token request.
type IamTokenError struct {
	StatusCode int
	Body       string
}

func (e *IamTokenError) Error() string {
	return fmt.Sprintf("iam: token request failed with status %d: %s", e.StatusCode, e.Body)
}

func (s *iamTokenSource) Token() (*oauth2.Token, error) {
	a := s.auth
	base := a.URL
	if base == "" {
		base = DefaultIAMURL
	}
	endpoint := strings.TrimSuffix(base, "/")
	if !strings.HasSuffix(endpoint, iamTokenPath) {
		endpoint += iamTokenPath
	}

	form := url.Values{}
	form.Set("grant_type", iamAPIKeyGrantType)
	form.Set("apikey", a.APIKey)
	form.Set("response_type", "cloud_iam")
	if a.Scope != "" {
		form.Set("scope", a.Scope)
	}

	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("iam: building token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	if a.ClientID != "" {
		req.SetBasicAuth(a.ClientID, a.ClientSecret)
	}

	client := a.Client
	if client == nil {
		client = http.DefaultClient
	}
	res, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("iam: token request: %w", err)
	}
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("iam: reading token response: %w", err)
	}
	if res.StatusCode >= 300 {
		return nil, &IamTokenError{StatusCode: res.StatusCode, Body: string(body)}
	}

	var tr iamTokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return nil, fmt.Errorf("iam: decoding token response: %w", err)
	}
	if tr.AccessToken == "" {
		return nil, fmt.Errorf("iam: token response has no access_token")
	}

	tok := &oauth2.Token{
		AccessToken:  tr.AccessToken,
		RefreshToken: tr.RefreshToken,
		TokenType:    "Bearer",
	}
	switch {
	case tr.Expiration > 0:
		tok.Expiry = time.Unix(tr.Expiration, 0)
	case tr.ExpiresIn > 0:
		tok.Expiry = time.Now().Add(time.Duration(tr.ExpiresIn) * time.Second)
	}
	return tok, nil
}
