package core

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// CredentialsFileName is looked up in the working directory and then in the
// home directory when IBM_CREDENTIALS_FILE is not set.
const CredentialsFileName = "ibm-credentials.env"

// ServiceProperties are the external settings of one service instance,
// named <SERVICE>_<PROPERTY> in the environment and credentials file, e.g.
// ASSISTANT_APIKEY or DISCOVERY_URL.
type ServiceProperties struct {
	URL          string
	AuthType     string `split_words:"true"`
	APIKey       string
	BearerToken  string `split_words:"true"`
	Username     string
	Password     string
	AuthURL      string `split_words:"true"`
	ClientID     string `split_words:"true"`
	ClientSecret string `split_words:"true"`
	DisableSSL   bool   `split_words:"true"`
}

// IsZero reports whether no property was found.
func (p ServiceProperties) IsZero() bool { return p == ServiceProperties{} }

// GetServiceProperties looks up the properties of serviceName. The
// credentials file is consulted first; environment variables are used only
// when the file has nothing for the service. A zero value with a nil error
// means nothing was configured.
func GetServiceProperties(serviceName string) (ServiceProperties, error) {
	prefix := envPrefix(serviceName)

	props, err := propertiesFromCredentialsFile(prefix)
	if err != nil || !props.IsZero() {
		return props, err
	}

	if err := envconfig.Process(prefix, &props); err != nil {
		return ServiceProperties{}, fmt.Errorf("reading %s_* environment: %w", prefix, err)
	}
	return props, nil
}

func envPrefix(serviceName string) string {
	return strings.ToUpper(strings.ReplaceAll(serviceName, "-", "_"))
}

func credentialsFilePaths() []string {
	if p := os.Getenv("IBM_CREDENTIALS_FILE"); p != "" {
		return []string{p}
	}
	var paths []string
	if wd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(wd, CredentialsFileName))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, CredentialsFileName))
	}
	return paths
}

func propertiesFromCredentialsFile(prefix string) (ServiceProperties, error) {
	for _, path := range credentialsFilePaths() {
		values, err := godotenv.Read(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return ServiceProperties{}, fmt.Errorf("reading credentials file %s: %w", path, err)
		}
		return propertiesFromMap(prefix, values)
	}
	return ServiceProperties{}, nil
}

func propertiesFromMap(prefix string, values map[string]string) (ServiceProperties, error) {
	get := func(name string) string { return values[prefix+"_"+name] }
	props := ServiceProperties{
		URL:          get("URL"),
		AuthType:     get("AUTH_TYPE"),
		APIKey:       get("APIKEY"),
		BearerToken:  get("BEARER_TOKEN"),
		Username:     get("USERNAME"),
		Password:     get("PASSWORD"),
		AuthURL:      get("AUTH_URL"),
		ClientID:     get("CLIENT_ID"),
		ClientSecret: get("CLIENT_SECRET"),
	}
	if raw := get("DISABLE_SSL"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return ServiceProperties{}, fmt.Errorf("%s_DISABLE_SSL: %w", prefix, err)
		}
		props.DisableSSL = v
	}
	return props, nil
}

// NewAuthenticatorFromProperties builds the authenticator described by
// props. Without an explicit AUTH_TYPE, an API key selects IAM, a bearer
// token selects bearer auth and a username selects basic auth.
func NewAuthenticatorFromProperties(props ServiceProperties) (Authenticator, error) {
	authType := props.AuthType
	if authType == "" {
		switch {
		case props.APIKey != "":
			authType = AuthTypeIAM
		case props.BearerToken != "":
			authType = AuthTypeBearerToken
		case props.Username != "":
			authType = AuthTypeBasic
		default:
			return nil, fmt.Errorf("no authentication properties: %w", ErrMissingCredentials)
		}
	}

	var auth Authenticator
	switch strings.ToLower(authType) {
	case strings.ToLower(AuthTypeIAM):
		auth = &IamAuthenticator{
			APIKey:       props.APIKey,
			URL:          props.AuthURL,
			ClientID:     props.ClientID,
			ClientSecret: props.ClientSecret,
		}
	case strings.ToLower(AuthTypeBearerToken):
		auth = &BearerTokenAuthenticator{BearerToken: props.BearerToken}
	case strings.ToLower(AuthTypeBasic):
		auth = &BasicAuthenticator{Username: props.Username, Password: props.Password}
	case strings.ToLower(AuthTypeNoAuth):
		auth = &NoAuthAuthenticator{}
	default:
		return nil, fmt.Errorf("unrecognized AUTH_TYPE %q", props.AuthType)
	}
	if err := auth.Validate(); err != nil {
		return nil, err
	}
	return auth, nil
}

// GetAuthenticatorFromEnvironment combines [GetServiceProperties] and
// [NewAuthenticatorFromProperties].
func GetAuthenticatorFromEnvironment(serviceName string) (Authenticator, error) {
	props, err := GetServiceProperties(serviceName)
	if err != nil {
		return nil, err
	}
	return NewAuthenticatorFromProperties(props)
}
