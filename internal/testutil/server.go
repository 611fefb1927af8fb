package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"regexp"
	"sync"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/gorilla/schema"
	"github.com/labstack/echo/v4"
)

var lookupEnv = os.LookupEnv

// Request is a request received by a [MockServer].
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
	// Invalid holds the reason the request did not match the OpenAPI
	// document attached to the server, if any.
	Invalid string
}

// JSON decodes the request body into v.
func (r Request) JSON(t testing.TB, v any) {
	t.Helper()
	if err := json.Unmarshal(r.Body, v); err != nil {
		t.Fatalf("request body is not valid JSON: %v\n%s", err, r.Body)
	}
}

var queryDecoder = func() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}()

// DecodeQuery decodes the query string into a struct with `schema` tags.
func (r Request) DecodeQuery(t testing.TB, v any) {
	t.Helper()
	if err := queryDecoder.Decode(v, r.Query); err != nil {
		t.Fatalf("decoding query %q: %v", r.Query.Encode(), err)
	}
}

// MockServer is a Watson API double. Routes are registered with OpenAPI
// style paths, e.g. "/v1/workspaces/{workspace_id}". Every request is
// recorded; when a document is attached with WithOpenAPI, requests that do
// not satisfy it are answered with 400 and recorded as invalid.
type MockServer struct {
	URL string

	t      testing.TB
	echo   *echo.Echo
	server *httptest.Server
	router routers.Router

	mu       sync.Mutex
	requests []Request
}

// NewMockServer starts a server that is closed when the test ends.
func NewMockServer(t testing.TB) *MockServer {
	t.Helper()
	m := &MockServer{t: t, echo: echo.New()}
	m.echo.HideBanner = true
	m.echo.HidePort = true
	m.echo.Use(m.record)
	m.server = httptest.NewServer(m.echo)
	m.URL = m.server.URL
	t.Cleanup(m.server.Close)
	return m
}

// WithOpenAPI validates every following request against doc.
func (m *MockServer) WithOpenAPI(doc *openapi3.T) *MockServer {
	m.t.Helper()
	doc.Servers = openapi3.Servers{{URL: m.URL}}
	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		m.t.Fatalf("building OpenAPI router: %v", err)
	}
	m.router = router
	return m
}

var pathParam = regexp.MustCompile(`\{([^}]+)\}`)

func echoPath(path string) string {
	return pathParam.ReplaceAllString(path, ":$1")
}

// Handle answers method and path with status and a JSON body.
func (m *MockServer) Handle(method, path string, status int, body string) {
	m.HandleFunc(method, path, func(c echo.Context) error {
		if body == "" {
			return c.NoContent(status)
		}
		return c.Blob(status, echo.MIMEApplicationJSON, []byte(body))
	})
}

// HandleFunc answers method and path with h.
func (m *MockServer) HandleFunc(method, path string, h echo.HandlerFunc) {
	m.echo.Add(method, echoPath(path), h)
}

// Requests returns the requests received so far.
func (m *MockServer) Requests() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Request(nil), m.requests...)
}

// LastRequest returns the most recent request, failing the test if there
// was none.
func (m *MockServer) LastRequest() Request {
	m.t.Helper()
	reqs := m.Requests()
	if len(reqs) == 0 {
		m.t.Fatalf("no request reached the mock server")
	}
	return reqs[len(reqs)-1]
}

func (m *MockServer) record(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		body, err := io.ReadAll(req.Body)
		if err != nil {
			return err
		}
		req.Body = io.NopCloser(bytes.NewReader(body))

		rec := Request{
			Method: req.Method,
			Path:   req.URL.Path,
			Query:  req.URL.Query(),
			Header: req.Header.Clone(),
			Body:   body,
		}
		if m.router != nil {
			if err := m.validate(req, body); err != nil {
				rec.Invalid = err.Error()
			}
		}

		m.mu.Lock()
		m.requests = append(m.requests, rec)
		m.mu.Unlock()

		if rec.Invalid != "" {
			return c.JSON(http.StatusBadRequest, map[string]any{
				"error": rec.Invalid,
				"code":  http.StatusBadRequest,
			})
		}
		return next(c)
	}
}

func (m *MockServer) validate(req *http.Request, body []byte) error {
	r := req.Clone(req.Context())
	r.URL.Scheme = "http"
	r.URL.Host = req.Host
	r.Body = io.NopCloser(bytes.NewReader(body))

	route, pathParams, err := m.router.FindRoute(r)
	if err != nil {
		return err
	}
	return openapi3filter.ValidateRequest(r.Context(), &openapi3filter.RequestValidationInput{
		Request:    r,
		PathParams: pathParams,
		Route:      route,
		Options: &openapi3filter.Options{
			AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
		},
	})
}
