package option_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/watson-developer-cloud/watson-go/core"
	"github.com/watson-developer-cloud/watson-go/internal/requestconfig"
	"github.com/watson-developer-cloud/watson-go/option"
)

func newConfig(t *testing.T, body any, opts ...option.RequestOption) *requestconfig.RequestConfig {
	t.Helper()
	cfg, err := requestconfig.NewRequestConfig(context.Background(), http.MethodPost, "v1/workspaces", body, nil, opts...)
	require.NoError(t, err)
	return cfg
}

func TestWithBaseURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		base string
		want string
	}{
		{base: "https://api.us-south.assistant.watson.cloud.ibm.com", want: "https://api.us-south.assistant.watson.cloud.ibm.com/"},
		{base: "https://example.test/instances/abc", want: "https://example.test/instances/abc/"},
		{base: "https://example.test/instances/abc/", want: "https://example.test/instances/abc/"},
	}
	for _, tt := range tests {
		cfg := newConfig(t, nil, option.WithBaseURL(tt.base))
		assert.Equal(t, tt.want, cfg.BaseURL.String())
		assert.Equal(t, tt.want+"v1/workspaces", cfg.BaseURL.ResolveReference(cfg.Request.URL).String())
	}

	_, err := requestconfig.NewRequestConfig(context.Background(), http.MethodGet, "v1/workspaces", nil, nil, option.WithBaseURL("://bad"))
	assert.ErrorContains(t, err, "WithBaseURL failed to parse url")
}

func TestHeaderAndQueryOptions(t *testing.T) {
	t.Parallel()

	cfg := newConfig(t, nil,
		option.WithHeader("X-Global-Transaction-Id", "a"),
		option.WithHeaderAdd("X-Trail", "1"),
		option.WithHeaderAdd("X-Trail", "2"),
		option.WithHeader("X-Drop", "x"),
		option.WithHeaderDel("X-Drop"),
		option.WithLearningOptOut(),
		option.WithVersion("2021-06-14"),
		option.WithVersion("2023-04-15"),
		option.WithQueryAdd("sort", "a"),
		option.WithQueryAdd("sort", "b"),
		option.WithQuery("cursor", "c"),
		option.WithQueryDel("cursor"),
	)

	assert.Equal(t, "a", cfg.Request.Header.Get("X-Global-Transaction-Id"))
	assert.Equal(t, []string{"1", "2"}, cfg.Request.Header.Values("X-Trail"))
	assert.Empty(t, cfg.Request.Header.Get("X-Drop"))
	assert.Equal(t, "true", cfg.Request.Header.Get("X-Watson-Learning-Opt-Out"))
	assert.Equal(t, "sort=a&sort=b&version=2023-04-15", cfg.Request.URL.RawQuery)
}

type nameBody struct {
	Name string `json:"name"`
}

func (n nameBody) MarshalJSON() ([]byte, error) {
	return []byte(`{"name":"` + n.Name + `"}`), nil
}

func TestJSONOptions(t *testing.T) {
	t.Parallel()

	cfg := newConfig(t, nameBody{Name: "pizza"},
		option.WithJSONSet("metadata.owner", "ops"),
		option.WithJSONSet("learning_opt_out", false),
		option.WithJSONDel("name"),
	)
	body, err := io.ReadAll(cfg.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"metadata":{"owner":"ops"},"learning_opt_out":false}`, string(body))

	cfg = newConfig(t, nil, option.WithJSONSet("text", "hi"))
	body, err = io.ReadAll(cfg.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"text":"hi"}`, string(body))
	assert.Equal(t, "application/json", cfg.Request.Header.Get("Content-Type"))

	_, err = requestconfig.NewRequestConfig(context.Background(), http.MethodPost, "v1/workspaces", nil, nil, option.WithJSONDel("name"))
	assert.Error(t, err)
}

func TestWithRequestBody(t *testing.T) {
	t.Parallel()

	cfg := newConfig(t, nil, option.WithRequestBody("text/plain", []byte("hello")))
	assert.Equal(t, "text/plain", cfg.Request.Header.Get("Content-Type"))
	body, _ := io.ReadAll(cfg.Body)
	assert.Equal(t, "hello", string(body))

	cfg = newConfig(t, nil, option.WithRequestBody("application/octet-stream", bytes.NewReader([]byte{1, 2})))
	body, _ = io.ReadAll(cfg.Body)
	assert.Equal(t, []byte{1, 2}, body)

	_, err := requestconfig.NewRequestConfig(context.Background(), http.MethodPost, "v1/workspaces", nil, nil, option.WithRequestBody("text/plain", 42))
	assert.EqualError(t, err, "body must be a byte slice or implement io.Reader")
}

func TestAuthOptions(t *testing.T) {
	t.Parallel()

	cfg := newConfig(t, nil, option.WithBearerToken("abc"))
	assert.Equal(t, core.AuthTypeBearerToken, cfg.Authenticator.AuthenticationType())

	cfg = newConfig(t, nil, option.WithBasicAuth("u", "p"))
	assert.Equal(t, core.AuthTypeBasic, cfg.Authenticator.AuthenticationType())

	cfg = newConfig(t, nil, option.WithAPIKey("key"))
	assert.Equal(t, core.AuthTypeIAM, cfg.Authenticator.AuthenticationType())

	_, err := requestconfig.NewRequestConfig(context.Background(), http.MethodGet, "v1/workspaces", nil, nil, option.WithBearerToken(""))
	assert.ErrorIs(t, err, core.ErrMissingCredentials)
}

func TestWithServiceCredentials(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ibm-credentials.env")
	require.NoError(t, os.WriteFile(path, []byte("ASSISTANT_URL=https://assistant.test/instances/1\nASSISTANT_BEARER_TOKEN=file-token\nASSISTANT_DISABLE_SSL=true\n"), 0o600))
	t.Setenv("IBM_CREDENTIALS_FILE", path)

	cfg := newConfig(t, nil, option.WithServiceCredentials("assistant"))
	assert.Equal(t, "https://assistant.test/instances/1/", cfg.BaseURL.String())
	assert.Equal(t, core.AuthTypeBearerToken, cfg.Authenticator.AuthenticationType())
	require.NotNil(t, cfg.HTTPClient.Transport)
	assert.True(t, cfg.HTTPClient.Transport.(*http.Transport).TLSClientConfig.InsecureSkipVerify)

	cfg = newConfig(t, nil, option.WithBaseURL("https://default.test"), option.WithServiceCredentials("discovery"))
	assert.Equal(t, "https://default.test/", cfg.BaseURL.String())
	assert.Nil(t, cfg.Authenticator)
}

func TestWithTracing(t *testing.T) {
	t.Parallel()

	client := &http.Client{}
	cfg := newConfig(t, nil, option.WithHTTPClient(client), option.WithTracing())
	assert.NotSame(t, client, cfg.HTTPClient)
	assert.NotNil(t, cfg.HTTPClient.Transport)
	assert.Nil(t, client.Transport)
}

func TestWithMaxRetries(t *testing.T) {
	t.Parallel()

	cfg := newConfig(t, nil, option.WithMaxRetries(4), option.WithMaxRetryInterval(0))
	assert.Equal(t, 4, cfg.MaxRetries)
	assert.Zero(t, cfg.MaxRetryInterval)
	assert.Panics(t, func() { option.WithMaxRetries(-1) })
}
