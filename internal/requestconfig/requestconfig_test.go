package requestconfig

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/watson-developer-cloud/watson-go/core"
	"github.com/watson-developer-cloud/watson-go/internal/apierror"
	"github.com/watson-developer-cloud/watson-go/internal/param"
)

type recorder struct {
	mu       sync.Mutex
	requests []*http.Request
	bodies   []string
}

func (r *recorder) add(req *http.Request) {
	body, _ := io.ReadAll(req.Body)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, req)
	r.bodies = append(r.bodies, string(body))
}

func (r *recorder) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.requests)
}

// newServer answers with the given statuses in turn, repeating the last.
func newServer(t *testing.T, rec *recorder, statuses ...int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		rec.add(req)
		status := statuses[min(rec.len(), len(statuses))-1]
		w.Header().Set("Content-Type", "application/json")
		if status == http.StatusTooManyRequests {
			w.Header().Set("Retry-After", "0")
		}
		w.WriteHeader(status)
		if status >= 400 {
			io.WriteString(w, `{"error": "try again", "code": 1}`)
			return
		}
		io.WriteString(w, `{"name": "ok"}`)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func withBase(raw string) RequestOption {
	return func(r *RequestConfig) error {
		u, err := url.Parse(raw + "/")
		r.BaseURL = u
		return err
	}
}

func fastRetries(n int) RequestOption {
	return func(r *RequestConfig) error {
		r.MaxRetries = n
		r.MaxRetryInterval = time.Millisecond
		return nil
	}
}

type bodyParams struct {
	Name  param.Field[string] `json:"name,required"`
	Limit param.Field[int64]  `query:"page_limit"`
}

func (r bodyParams) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"name": r.Name.Value})
}

func (r bodyParams) URLQuery() url.Values {
	v := url.Values{}
	if r.Limit.Present {
		v.Set("page_limit", "5")
	}
	return v
}

func TestExecuteNewRequest(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	srv := newServer(t, rec, http.StatusOK)

	var res struct {
		Name string `json:"name"`
	}
	err := ExecuteNewRequest(context.Background(), http.MethodPost, "v1/workspaces?version=2021-06-14", bodyParams{Name: param.F("pizza"), Limit: param.F[int64](5)}, &res,
		withBase(srv.URL),
		WithAnalytics("conversation", "V1", "createWorkspace"),
		func(r *RequestConfig) error {
			r.Authenticator = &core.BearerTokenAuthenticator{BearerToken: "abc"}
			return nil
		},
	)
	require.NoError(t, err)
	assert.Equal(t, "ok", res.Name)

	require.Equal(t, 1, rec.len())
	req := rec.requests[0]
	assert.Equal(t, "/v1/workspaces", req.URL.Path)
	assert.Equal(t, "2021-06-14", req.URL.Query().Get("version"))
	assert.Equal(t, "5", req.URL.Query().Get("page_limit"))
	assert.Equal(t, `{"name":"pizza"}`, rec.bodies[0])
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
	assert.Equal(t, "application/json", req.Header.Get("Accept"))
	assert.Equal(t, "Bearer abc", req.Header.Get("Authorization"))
	assert.Equal(t, "watson-apis-go-sdk/"+Version, req.Header.Get("User-Agent"))
	assert.Equal(t, "service_name=conversation;service_version=V1;operation_id=createWorkspace", req.Header.Get("X-IBMCloud-SDK-Analytics"))
	assert.NotEmpty(t, req.Header.Get("X-Request-Id"))
}

func TestValidationBeforeNetwork(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	srv := newServer(t, rec, http.StatusOK)

	err := ExecuteNewRequest(context.Background(), http.MethodPost, "v1/workspaces", bodyParams{}, nil, withBase(srv.URL))
	var verr *param.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("name", "required"))
	assert.Zero(t, rec.len())
}

func TestRetries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		statuses  []int
		retries   int
		wantCalls int
		wantErr   int
	}{
		{name: "disabled by default", statuses: []int{503, 200}, retries: 0, wantCalls: 1, wantErr: 503},
		{name: "recovers after 5xx", statuses: []int{503, 502, 200}, retries: 2, wantCalls: 3},
		{name: "honors retry after", statuses: []int{429, 200}, retries: 1, wantCalls: 2},
		{name: "gives up", statuses: []int{500}, retries: 2, wantCalls: 3, wantErr: 500},
		{name: "client errors are final", statuses: []int{400, 200}, retries: 3, wantCalls: 1, wantErr: 400},
		{name: "not implemented is final", statuses: []int{501, 200}, retries: 3, wantCalls: 1, wantErr: 501},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := &recorder{}
			srv := newServer(t, rec, tt.statuses...)

			err := ExecuteNewRequest(context.Background(), http.MethodPost, "v1/workspaces", bodyParams{Name: param.F("x")}, nil,
				withBase(srv.URL), fastRetries(tt.retries))

			assert.Equal(t, tt.wantCalls, rec.len())
			if tt.wantErr == 0 {
				require.NoError(t, err)
			} else {
				var apiErr *apierror.Error
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, tt.wantErr, apiErr.StatusCode)
			}

			ids := map[string]bool{}
			for i, req := range rec.requests {
				ids[req.Header.Get("X-Request-Id")] = true
				assert.Equal(t, `{"name":"x"}`, rec.bodies[i], "attempt %d", i)
			}
			assert.Len(t, ids, 1)
		})
	}
}

func TestRetryAfter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		header string
		want   time.Duration
		ok     bool
	}{
		{header: "", ok: false},
		{header: "2", want: 2 * time.Second, ok: true},
		{header: "0.5", want: 500 * time.Millisecond, ok: true},
		{header: "soon", ok: false},
	}
	for _, tt := range tests {
		res := &http.Response{Header: http.Header{}}
		if tt.header != "" {
			res.Header.Set("Retry-After", tt.header)
		}
		got, ok := retryAfter(res)
		assert.Equal(t, tt.ok, ok, tt.header)
		assert.Equal(t, tt.want, got, tt.header)
	}

	res := &http.Response{Header: http.Header{"Retry-After": {time.Now().Add(time.Hour).UTC().Format(http.TimeFormat)}}}
	d, ok := retryAfter(res)
	assert.True(t, ok)
	assert.Greater(t, d, 58*time.Minute)
}

func TestMiddlewareOrder(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	srv := newServer(t, rec, http.StatusOK)

	var order []string
	mw := func(name string) middleware {
		return func(req *http.Request, next MiddlewareNext) (*http.Response, error) {
			order = append(order, name+">")
			req.Header.Add("X-Trail", name)
			res, err := next(req)
			order = append(order, "<"+name)
			return res, err
		}
	}
	err := ExecuteNewRequest(context.Background(), http.MethodGet, "v1/workspaces", nil, nil,
		withBase(srv.URL),
		func(r *RequestConfig) error {
			r.Middlewares = append(r.Middlewares, mw("a"), mw("b"))
			return nil
		},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"a>", "b>", "<b", "<a"}, order)
	assert.Equal(t, []string{"a", "b"}, rec.requests[0].Header.Values("X-Trail"))
}

func TestResponseTargets(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	srv := newServer(t, rec, http.StatusOK)

	var raw []byte
	var res *http.Response
	err := ExecuteNewRequest(context.Background(), http.MethodGet, "v1/workspaces", nil, &raw,
		withBase(srv.URL),
		func(r *RequestConfig) error {
			r.ResponseInto = &res
			return nil
		},
	)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "ok"}`, string(raw))
	require.NotNil(t, res)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var wrong struct {
		Name int `json:"name"`
	}
	err = ExecuteNewRequest(context.Background(), http.MethodGet, "v1/workspaces", nil, &wrong, withBase(srv.URL))
	var decodeErr *apierror.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, http.StatusOK, decodeErr.StatusCode)
}

func TestTransportErrors(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	base := srv.URL
	srv.Close()

	err := ExecuteNewRequest(context.Background(), http.MethodGet, "v1/workspaces", nil, nil, withBase(base))
	require.Error(t, err)
	var apiErr *apierror.Error
	assert.False(t, errors.As(err, &apiErr))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = ExecuteNewRequest(ctx, http.MethodGet, "v1/workspaces", nil, nil, withBase(base), fastRetries(3))
	assert.ErrorIs(t, err, context.Canceled)

	err = ExecuteNewRequest(context.Background(), http.MethodGet, "v1/workspaces", nil, nil)
	assert.EqualError(t, err, "requestconfig: base URL is not set")
}

func TestGetBodyFailure(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	srv := newServer(t, rec, http.StatusOK)

	cfg, err := NewRequestConfig(context.Background(), http.MethodGet, "v1/workspaces", nil, nil, withBase(srv.URL))
	require.NoError(t, err)
	cfg.RequestTimeout = time.Second
	cfg.Request.GetBody = func() (io.ReadCloser, error) {
		return nil, errors.New("body gone")
	}

	assert.EqualError(t, cfg.Execute(), "body gone")
	assert.Zero(t, rec.len())
}

func TestLogger(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	srv := newServer(t, rec, http.StatusOK)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	err := ExecuteNewRequest(context.Background(), http.MethodGet, "v1/workspaces", nil, nil,
		withBase(srv.URL),
		func(r *RequestConfig) error {
			r.Logger = logger
			return nil
		},
	)
	require.NoError(t, err)
	out := buf.String()
	assert.True(t, strings.Contains(out, `msg="watson request"`), out)
	assert.True(t, strings.Contains(out, "status=200"), out)
	assert.True(t, strings.Contains(out, "request_id="), out)
}
