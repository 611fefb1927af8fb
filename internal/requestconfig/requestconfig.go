package requestconfig

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"

	"github.com/watson-developer-cloud/watson-go/core"
	"github.com/watson-developer-cloud/watson-go/internal/apierror"
	"github.com/watson-developer-cloud/watson-go/internal/apiquery"
	"github.com/watson-developer-cloud/watson-go/internal/param"
)

// Version is sent in the User-Agent header.
const Version = "1.4.0"

const (
	defaultRetryInterval    = 500 * time.Millisecond
	defaultMaxRetryInterval = 30 * time.Second
)

type middleware = func(*http.Request, MiddlewareNext) (*http.Response, error)

type MiddlewareNext = func(*http.Request) (*http.Response, error)

// RequestConfig represents all the state related to one request.
//
// Editing the variables inside RequestConfig directly is unstable API. Prefer
// composing the RequestOption instead if possible.
type RequestConfig struct {
	// MaxRetries is the number of retries after the first attempt. Zero
	// disables retries.
	MaxRetries       int
	MaxRetryInterval time.Duration
	RequestTimeout   time.Duration
	Context          context.Context
	Request          *http.Request
	BaseURL          *url.URL
	HTTPClient       *http.Client
	Middlewares      []middleware
	Authenticator    core.Authenticator
	Logger           *slog.Logger
	// If ResponseBodyInto not nil, then we will attempt to deserialize into
	// ResponseBodyInto. If Destination is a []byte, then it will return the body as
	// is.
	ResponseBodyInto any
	// ResponseInto copies the \*http.Response of the corresponding request into the
	// given address
	ResponseInto **http.Response
	Body         io.Reader

	buffer []byte
}

// RequestOption is an option for the requests made by the Watson API
// clients.
type RequestOption = func(*RequestConfig) error

func (cfg *RequestConfig) Apply(opts ...RequestOption) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return err
		}
	}
	return nil
}

// NewRequestConfig validates body, then builds the request for method and
// the path u (relative to the base URL) and applies opts. Validation
// failures are returned before anything else happens.
func NewRequestConfig(ctx context.Context, method string, u string, body any, dst any, opts ...RequestOption) (*RequestConfig, error) {
	if err := param.ValidateStruct(body); err != nil {
		return nil, err
	}

	var reader io.Reader
	contentType := ""
	if marshaler, ok := body.(json.Marshaler); ok {
		content, err := marshaler.MarshalJSON()
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewBuffer(content)
		contentType = "application/json"
	} else if r, ok := body.(io.Reader); ok {
		reader = r
	}

	if queryer, ok := body.(apiquery.Queryer); ok {
		if encoded := queryer.URLQuery().Encode(); encoded != "" {
			if strings.Contains(u, "?") {
				u += "&" + encoded
			} else {
				u += "?" + encoded
			}
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", fmt.Sprintf("watson-apis-go-sdk/%s", Version))

	cfg := RequestConfig{
		MaxRetryInterval: defaultMaxRetryInterval,
		HTTPClient:       http.DefaultClient,
		Context:          ctx,
		Request:          req,
		Body:             reader,
		ResponseBodyInto: dst,
	}
	if err := cfg.Apply(opts...); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func shouldRetry(res *http.Response, err error) bool {
	if err != nil {
		return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
	}
	switch {
	case res.StatusCode == http.StatusTooManyRequests:
		return true
	case res.StatusCode >= 500 && res.StatusCode != http.StatusNotImplemented:
		return true
	}
	return false
}

// retryAfter returns the delay requested by a Retry-After header, if any.
func retryAfter(res *http.Response) (time.Duration, bool) {
	if res == nil {
		return 0, false
	}
	header := res.Header.Get("Retry-After")
	if header == "" {
		return 0, false
	}
	if secs, err := strconv.ParseFloat(header, 64); err == nil && secs >= 0 {
		return time.Duration(secs * float64(time.Second)), true
	}
	if at, err := http.ParseTime(header); err == nil {
		return time.Until(at), true
	}
	return 0, false
}

func (cfg *RequestConfig) newBackoff() retry.Backoff {
	b := retry.NewExponential(defaultRetryInterval)
	return retry.WithCappedDuration(cfg.MaxRetryInterval, b)
}

func (cfg *RequestConfig) logger() *slog.Logger {
	if cfg.Logger != nil {
		return cfg.Logger
	}
	return slog.New(discardHandler{})
}

func (cfg *RequestConfig) Execute() (err error) {
	if cfg.BaseURL == nil {
		return fmt.Errorf("requestconfig: base URL is not set")
	}
	cfg.Request.URL = cfg.BaseURL.ResolveReference(cfg.Request.URL)

	if cfg.Body != nil && cfg.buffer == nil {
		if buf, ok := cfg.Body.(*bytes.Buffer); ok {
			cfg.buffer = buf.Bytes()
		} else {
			cfg.buffer, err = io.ReadAll(cfg.Body)
			if err != nil {
				return fmt.Errorf("reading request body: %w", err)
			}
		}
	}
	if cfg.buffer != nil {
		buffer := cfg.buffer
		cfg.Request.ContentLength = int64(len(buffer))
		cfg.Request.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(buffer)), nil
		}
	}

	if cfg.Request.Header.Get("X-Request-Id") == "" {
		cfg.Request.Header.Set("X-Request-Id", uuid.NewString())
	}

	if cfg.Authenticator != nil {
		if err := cfg.Authenticator.Authenticate(cfg.Request); err != nil {
			return fmt.Errorf("authenticating request: %w", err)
		}
	}

	handler := cfg.HTTPClient.Do
	for i := len(cfg.Middlewares) - 1; i >= 0; i-- {
		handler = func(current MiddlewareNext, mw middleware) MiddlewareNext {
			return func(req *http.Request) (*http.Response, error) {
				return mw(req, current)
			}
		}(handler, cfg.Middlewares[i])
	}

	log := cfg.logger().With(
		"method", cfg.Request.Method,
		"url", cfg.Request.URL.Redacted(),
		"request_id", cfg.Request.Header.Get("X-Request-Id"),
	)

	backoff := cfg.newBackoff()
	var res *http.Response
	var cancel context.CancelFunc
	for attempt := 0; ; attempt++ {
		ctx := cfg.Request.Context()
		if cfg.RequestTimeout != 0 {
			ctx, cancel = context.WithTimeout(ctx, cfg.RequestTimeout)
		}
		req := cfg.Request.Clone(ctx)
		if cfg.Request.GetBody != nil {
			req.Body, err = cfg.Request.GetBody()
			if err != nil {
				if cancel != nil {
					cancel()
				}
				return err
			}
		}

		start := time.Now()
		res, err = handler(req)
		if err != nil {
			log.Debug("watson request failed", "attempt", attempt, "duration", time.Since(start), "error", err)
		} else {
			log.Debug("watson request", "attempt", attempt, "status", res.StatusCode, "duration", time.Since(start))
		}

		if ctx.Err() != nil && err != nil {
			break
		}
		if attempt >= cfg.MaxRetries || !shouldRetry(res, err) {
			break
		}

		delay, _ := backoff.Next()
		if d, ok := retryAfter(res); ok {
			delay = min(d, cfg.MaxRetryInterval)
		}
		if res != nil {
			// Close the response body before retrying to prevent connection leaks
			io.Copy(io.Discard, res.Body)
			res.Body.Close()
		}
		if cancel != nil {
			cancel()
			cancel = nil
		}
		log.Debug("retrying watson request", "attempt", attempt+1, "delay", delay)

		select {
		case <-cfg.Request.Context().Done():
			return cfg.Request.Context().Err()
		case <-time.After(delay):
		}
	}
	if cancel != nil {
		defer cancel()
	}

	// Save *http.Response if it is requested to, even if there was an error making the request. This is
	// useful in cases where you might want to debug by inspecting the response. Note that if err != nil,
	// the response should be generally be empty, but there are edge cases.
	if cfg.ResponseInto != nil {
		*cfg.ResponseInto = res
	}
	if responseBodyInto, ok := cfg.ResponseBodyInto.(**http.Response); ok {
		*responseBodyInto = res
	}

	// If there was a connection error in the final request or any other transport error,
	// return that early without trying to coerce into an APIError.
	if err != nil {
		return err
	}

	if res.StatusCode >= 400 {
		contents, err := io.ReadAll(res.Body)
		res.Body.Close()
		if err != nil {
			return err
		}
		// Restore the body so the response can be dumped by the caller.
		res.Body = io.NopCloser(bytes.NewReader(contents))
		aerr := apierror.New(cfg.Request, res, contents)
		log.Debug("watson request returned an error", "status", res.StatusCode, "message", aerr.Message)
		return aerr
	}

	// If the response happens to be a byte array, deserialize it into ResponseBodyInto.
	// Also, if ResponseBodyInto is nil, exit early since nothing needs to be deserialized.
	if cfg.ResponseBodyInto == nil {
		res.Body.Close()
		return nil
	}
	if _, ok := cfg.ResponseBodyInto.(**http.Response); ok {
		return nil
	}

	contents, err := io.ReadAll(res.Body)
	res.Body.Close()
	if err != nil {
		return fmt.Errorf("error reading response body: %w", err)
	}

	if buf, ok := cfg.ResponseBodyInto.(*[]byte); ok {
		*buf = contents
		return nil
	}

	if len(bytes.TrimSpace(contents)) == 0 {
		return nil
	}

	if err := json.Unmarshal(contents, cfg.ResponseBodyInto); err != nil {
		return &apierror.DecodeError{
			StatusCode: res.StatusCode,
			Body:       contents,
			Request:    cfg.Request,
			Err:        err,
		}
	}
	return nil
}

// ExecuteNewRequest builds and executes a request in one step.
func ExecuteNewRequest(ctx context.Context, method string, u string, body any, dst any, opts ...RequestOption) error {
	cfg, err := NewRequestConfig(ctx, method, u, body, dst, opts...)
	if err != nil {
		return err
	}
	return cfg.Execute()
}

func (cfg *RequestConfig) Clone(ctx context.Context) *RequestConfig {
	if cfg == nil {
		return nil
	}
	req := cfg.Request.Clone(ctx)
	var err error
	if req.Body != nil && req.GetBody != nil {
		req.Body, err = req.GetBody()
		if err != nil {
			return nil
		}
	}
	clone := *cfg
	clone.Context = ctx
	clone.Request = req
	return &clone
}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }

// WithAnalytics returns a RequestOption that sets the
// X-IBMCloud-SDK-Analytics header describing the operation being called.
func WithAnalytics(serviceName, serviceVersion, operationID string) RequestOption {
	value := fmt.Sprintf("service_name=%s;service_version=%s;operation_id=%s", serviceName, serviceVersion, operationID)
	return func(r *RequestConfig) error {
		r.Request.Header.Set("X-IBMCloud-SDK-Analytics", value)
		return nil
	}
}
