package option

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/sjson"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/watson-developer-cloud/watson-go/core"
	"github.com/watson-developer-cloud/watson-go/internal/requestconfig"
)

// RequestOption is an option for the requests made by the Watson API
// clients. It can be passed to a service constructor, where it applies to
// every request, or to a single method call.
//
// Options are applied in order; later options override earlier ones.
type RequestOption = requestconfig.RequestOption

// WithBaseURL returns a RequestOption that sets the service URL, e.g. the
// instance URL shown in the IBM Cloud console.
func WithBaseURL(base string) RequestOption {
	u, err := url.Parse(base)
	if err == nil && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return func(r *requestconfig.RequestConfig) error {
		if err != nil {
			return fmt.Errorf("requestoption: WithBaseURL failed to parse url %s: %w", base, err)
		}
		r.BaseURL = u
		return nil
	}
}

// WithHTTPClient returns a RequestOption that changes the underlying
// [http.Client] used to make this request, which by default is
// [http.DefaultClient].
func WithHTTPClient(client *http.Client) RequestOption {
	return func(r *requestconfig.RequestConfig) error {
		r.HTTPClient = client
		return nil
	}
}

// MiddlewareNext is a function which is called by a middleware to pass an
// HTTP request to the next stage in the middleware chain.
type MiddlewareNext = func(*http.Request) (*http.Response, error)

// Middleware is a function which intercepts HTTP requests, processing or
// modifying them, and then passing the request to the next middleware or
// handler in the chain by calling the provided MiddlewareNext function.
type Middleware = func(*http.Request, MiddlewareNext) (*http.Response, error)

// WithMiddleware returns a RequestOption that applies the given middleware
// to the requests made. Each middleware will execute in the order they
// were given.
func WithMiddleware(middlewares ...Middleware) RequestOption {
	return func(r *requestconfig.RequestConfig) error {
		r.Middlewares = append(r.Middlewares, middlewares...)
		return nil
	}
}

// WithMaxRetries returns a RequestOption that enables retries of transport
// failures, 429 and 5xx responses, up to retries times after the first
// attempt. Retries are disabled by default.
func WithMaxRetries(retries int) RequestOption {
	if retries < 0 {
		panic("option: cannot have fewer than 0 retries")
	}
	return func(r *requestconfig.RequestConfig) error {
		r.MaxRetries = retries
		return nil
	}
}

// WithMaxRetryInterval caps the delay between two attempts, including
// delays requested by Retry-After headers.
func WithMaxRetryInterval(d time.Duration) RequestOption {
	return func(r *requestconfig.RequestConfig) error {
		r.MaxRetryInterval = d
		return nil
	}
}

// WithHeader returns a RequestOption that sets the header value to the
// associated key. It overwrites any value if there was one already present.
func WithHeader(key, value string) RequestOption {
	return func(r *requestconfig.RequestConfig) error {
		r.Request.Header.Set(key, value)
		return nil
	}
}

// WithHeaderAdd returns a RequestOption that adds the header value to the
// associated key. It appends onto any existing values.
func WithHeaderAdd(key, value string) RequestOption {
	return func(r *requestconfig.RequestConfig) error {
		r.Request.Header.Add(key, value)
		return nil
	}
}

// WithHeaderDel returns a RequestOption that deletes the header value(s)
// associated with the given key.
func WithHeaderDel(key string) RequestOption {
	return func(r *requestconfig.RequestConfig) error {
		r.Request.Header.Del(key)
		return nil
	}
}

// WithQuery returns a RequestOption that sets the query value to the
// associated key. It overwrites any value if there was one already present.
func WithQuery(key, value string) RequestOption {
	return func(r *requestconfig.RequestConfig) error {
		query := r.Request.URL.Query()
		query.Set(key, value)
		r.Request.URL.RawQuery = query.Encode()
		return nil
	}
}

// WithQueryAdd returns a RequestOption that adds the query value to the
// associated key. It appends onto any existing values.
func WithQueryAdd(key, value string) RequestOption {
	return func(r *requestconfig.RequestConfig) error {
		query := r.Request.URL.Query()
		query.Add(key, value)
		r.Request.URL.RawQuery = query.Encode()
		return nil
	}
}

// WithQueryDel returns a RequestOption that deletes the query value(s)
// associated with key.
func WithQueryDel(key string) RequestOption {
	return func(r *requestconfig.RequestConfig) error {
		query := r.Request.URL.Query()
		query.Del(key)
		r.Request.URL.RawQuery = query.Encode()
		return nil
	}
}

// WithVersion returns a RequestOption that sets the `version` date query
// parameter every Watson API requires, e.g. "2021-06-14".
func WithVersion(version string) RequestOption {
	return WithQuery("version", version)
}

// WithJSONSet returns a RequestOption that sets the body's JSON value
// associated with the key. The key accepts a string as defined by the
// [sjson format].
//
// [sjson format]: https://github.com/tidwall/sjson
func WithJSONSet(key string, value any) RequestOption {
	return func(r *requestconfig.RequestConfig) (err error) {
		var b []byte
		if r.Body == nil {
			b = []byte("{}")
		} else if buffer, ok := r.Body.(*bytes.Buffer); ok {
			b = buffer.Bytes()
		} else {
			return fmt.Errorf("cannot use WithJSONSet on a body that is not serialized as *bytes.Buffer")
		}

		b, err = sjson.SetBytes(b, key, value)
		if err != nil {
			return err
		}
		r.Body = bytes.NewBuffer(b)
		if r.Request.Header.Get("Content-Type") == "" {
			r.Request.Header.Set("Content-Type", "application/json")
		}
		return nil
	}
}

// WithJSONDel returns a RequestOption that deletes the body's JSON value
// associated with the key. The key accepts a string as defined by the
// [sjson format].
//
// [sjson format]: https://github.com/tidwall/sjson
func WithJSONDel(key string) RequestOption {
	return func(r *requestconfig.RequestConfig) (err error) {
		buffer, ok := r.Body.(*bytes.Buffer)
		if !ok {
			return fmt.Errorf("cannot use WithJSONDel on a body that is not serialized as *bytes.Buffer")
		}
		b, err := sjson.DeleteBytes(buffer.Bytes(), key)
		if err != nil {
			return err
		}
		r.Body = bytes.NewBuffer(b)
		return nil
	}
}

// WithResponseBodyInto returns a RequestOption that overwrites the
// deserialization target with the given destination. If provided, we don't
// deserialize into the default struct.
func WithResponseBodyInto(dst any) RequestOption {
	return func(r *requestconfig.RequestConfig) error {
		r.ResponseBodyInto = dst
		return nil
	}
}

// WithResponseInto returns a RequestOption that copies the [*http.Response]
// into the given address.
func WithResponseInto(dst **http.Response) RequestOption {
	return func(r *requestconfig.RequestConfig) error {
		r.ResponseInto = dst
		return nil
	}
}

// WithRequestBody returns a RequestOption that provides a custom
// serialized body with the given content type.
//
// body accepts an io.Reader or raw []bytes.
func WithRequestBody(contentType string, body any) RequestOption {
	return func(r *requestconfig.RequestConfig) error {
		if reader, ok := body.(io.Reader); ok {
			r.Body = reader
			return r.Apply(WithHeader("Content-Type", contentType))
		}

		if b, ok := body.([]byte); ok {
			r.Body = bytes.NewBuffer(b)
			return r.Apply(WithHeader("Content-Type", contentType))
		}

		return fmt.Errorf("body must be a byte slice or implement io.Reader")
	}
}

// WithRequestTimeout returns a RequestOption that sets the timeout for each
// request attempt. This should be smaller than the timeout defined in the
// context, which spans all retries.
func WithRequestTimeout(dur time.Duration) RequestOption {
	return func(r *requestconfig.RequestConfig) error {
		r.RequestTimeout = dur
		return nil
	}
}

// WithAuthenticator returns a RequestOption that authenticates requests
// with auth.
func WithAuthenticator(auth core.Authenticator) RequestOption {
	return func(r *requestconfig.RequestConfig) error {
		if err := auth.Validate(); err != nil {
			return err
		}
		r.Authenticator = auth
		return nil
	}
}

// WithAPIKey returns a RequestOption that authenticates requests with an
// IAM access token obtained for apiKey. The token is shared by every
// request made with the returned option.
func WithAPIKey(apiKey string) RequestOption {
	return WithAuthenticator(&core.IamAuthenticator{APIKey: apiKey})
}

// WithBearerToken returns a RequestOption that sends token as is.
func WithBearerToken(token string) RequestOption {
	return WithAuthenticator(&core.BearerTokenAuthenticator{BearerToken: token})
}

// WithBasicAuth returns a RequestOption that authenticates requests with a
// username and password.
func WithBasicAuth(username, password string) RequestOption {
	return WithAuthenticator(&core.BasicAuthenticator{Username: username, Password: password})
}

// WithServiceCredentials returns a RequestOption that configures the
// service URL and authenticator from the properties discovered for
// serviceName (see [core.GetServiceProperties]). Discovery happens once,
// when the option is created. Finding no properties at all is not an
// error; the option then does nothing.
func WithServiceCredentials(serviceName string) RequestOption {
	props, err := core.GetServiceProperties(serviceName)
	var auth core.Authenticator
	if err == nil && !props.IsZero() && (props.AuthType != "" || props.APIKey != "" || props.BearerToken != "" || props.Username != "") {
		auth, err = core.NewAuthenticatorFromProperties(props)
	}
	var base RequestOption
	if props.URL != "" {
		base = WithBaseURL(props.URL)
	}
	var client *http.Client
	if props.DisableSSL {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
		client = &http.Client{Transport: transport}
	}
	return func(r *requestconfig.RequestConfig) error {
		if err != nil {
			return fmt.Errorf("credentials for %s: %w", serviceName, err)
		}
		if base != nil {
			if err := base(r); err != nil {
				return err
			}
		}
		if auth != nil {
			r.Authenticator = auth
		}
		if client != nil {
			r.HTTPClient = client
		}
		return nil
	}
}

// WithLearningOptOut returns a RequestOption that asks Watson not to use
// the request data to improve its services.
func WithLearningOptOut() RequestOption {
	return WithHeader("X-Watson-Learning-Opt-Out", "true")
}

// WithLogger returns a RequestOption that logs every request attempt at
// debug level.
func WithLogger(logger *slog.Logger) RequestOption {
	return func(r *requestconfig.RequestConfig) error {
		r.Logger = logger
		return nil
	}
}

// WithTracing returns a RequestOption that records OpenTelemetry spans for
// requests, using the global tracer provider. It wraps the transport of the
// HTTP client configured so far, so it should come after WithHTTPClient.
func WithTracing(opts ...otelhttp.Option) RequestOption {
	return func(r *requestconfig.RequestConfig) error {
		base := r.HTTPClient
		if base == nil {
			base = http.DefaultClient
		}
		transport := base.Transport
		if transport == nil {
			transport = http.DefaultTransport
		}
		client := *base
		client.Transport = otelhttp.NewTransport(transport, opts...)
		r.HTTPClient = &client
		return nil
	}
}
