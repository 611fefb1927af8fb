package config

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/watson-developer-cloud/watson-go/core"
	"github.com/watson-developer-cloud/watson-go/internal/format"
	"github.com/watson-developer-cloud/watson-go/internal/requestconfig"
)

func isolate(t *testing.T) (home, wd string) {
	t.Helper()
	home, wd = t.TempDir(), t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	return home, wd
}

func writeJSON(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoadDefaults(t *testing.T) {
	_, wd := isolate(t)

	c, err := Load(wd, false)
	require.NoError(t, err)
	assert.Equal(t, wd, c.WorkingDir)
	assert.False(t, c.Debug)
	assert.Equal(t, format.TextFormat, c.OutputFormat)
	assert.Empty(t, c.Services)
	assert.Same(t, c, Get())
	assert.Nil(t, c.ServiceOptions("conversation"))
}

func TestLoadMergesLocalConfig(t *testing.T) {
	home, wd := isolate(t)
	writeJSON(t, filepath.Join(home, ".watson.json"), `{
		"outputFormat": "json",
		"services": {
			"conversation": {"url": "https://global.test", "apikey": "global-key"},
			"discovery": {"url": "https://discovery.test", "version": "2023-03-31"}
		}
	}`)
	writeJSON(t, filepath.Join(wd, ".watson.json"), `{
		"services": {"conversation": {"url": "https://local.test"}}
	}`)

	c, err := Load(wd, true)
	require.NoError(t, err)
	assert.True(t, c.Debug)
	assert.Equal(t, format.JSONFormat, c.OutputFormat)
	assert.Equal(t, ServiceConfig{URL: "https://local.test", APIKey: "global-key"}, c.Services["conversation"])
	assert.Equal(t, ServiceConfig{URL: "https://discovery.test", Version: "2023-03-31"}, c.Services["discovery"])

	rc, err := requestconfig.NewRequestConfig(context.Background(), http.MethodGet, "v2/projects", nil, nil, c.ServiceOptions("Discovery")...)
	require.NoError(t, err)
	assert.Equal(t, "https://discovery.test/", rc.BaseURL.String())
	assert.Equal(t, "2023-03-31", rc.Request.URL.Query().Get("version"))
	assert.Nil(t, rc.Authenticator)

	rc, err = requestconfig.NewRequestConfig(context.Background(), http.MethodGet, "v1/workspaces", nil, nil, c.ServiceOptions("conversation")...)
	require.NoError(t, err)
	assert.Equal(t, core.AuthTypeIAM, rc.Authenticator.AuthenticationType())
}

func TestLoadFromEnvironment(t *testing.T) {
	_, wd := isolate(t)
	t.Setenv("WATSON_OUTPUTFORMAT", "logfmt")
	t.Setenv("WATSON_DEBUG", "true")

	c, err := Load(wd, false)
	require.NoError(t, err)
	assert.Equal(t, format.LogfmtFormat, c.OutputFormat)
	assert.True(t, c.Debug)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "output format",
			content: `{"outputFormat": "yaml"}`,
			wantErr: "config validation failed: invalid output format: yaml",
		},
		{
			name:    "two credentials",
			content: `{"services": {"discovery": {"apikey": "k", "bearerToken": "t"}}}`,
			wantErr: "config validation failed: services.discovery: apikey and bearerToken are mutually exclusive",
		},
		{
			name:    "malformed",
			content: `{"debug": `,
			wantErr: "failed to read config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home, wd := isolate(t)
			writeJSON(t, filepath.Join(home, ".watson.json"), tt.content)

			_, err := Load(wd, false)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestSetService(t *testing.T) {
	home, wd := isolate(t)

	_, err := Load(wd, false)
	require.NoError(t, err)
	require.NoError(t, SetService("Conversation", ServiceConfig{URL: "https://assistant.test", BearerToken: "t"}))

	path := filepath.Join(home, ".watson.json")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var onDisk map[string]any
	require.NoError(t, json.Unmarshal(data, &onDisk))
	assert.Equal(t, map[string]any{
		"url":         "https://assistant.test",
		"bearerToken": "t",
	}, onDisk["services"].(map[string]any)["conversation"])

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	c, err := Load(wd, false)
	require.NoError(t, err)
	assert.Equal(t, ServiceConfig{URL: "https://assistant.test", BearerToken: "t"}, c.Services["conversation"])

	require.NoError(t, SetService("discovery", ServiceConfig{URL: "https://discovery.test"}))
	c, err = Load(wd, false)
	require.NoError(t, err)
	assert.Len(t, c.Services, 2)
}
