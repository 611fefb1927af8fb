package cmd

import (
	"bytes"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/watson-developer-cloud/watson-go/internal/testutil"
)

func TestCheckStdinPipe(t *testing.T) {
	origStdin := os.Stdin
	defer func() {
		os.Stdin = origStdin
	}()

	t.Run("WithPipedData", func(t *testing.T) {
		r, w, err := os.Pipe()
		require.NoError(t, err)
		os.Stdin = r

		testData := "test piped input"
		go func() {
			defer w.Close()
			w.Write([]byte(testData))
		}()

		data, hasPiped := checkStdinPipe()
		assert.True(t, hasPiped)
		assert.Equal(t, testData, data)
	})

	t.Run("WithEmptyPipe", func(t *testing.T) {
		r, w, err := os.Pipe()
		require.NoError(t, err)
		os.Stdin = r
		w.Close()

		data, hasPiped := checkStdinPipe()
		assert.False(t, hasPiped)
		assert.Empty(t, data)
	})

	t.Run("WithoutPipedData", func(t *testing.T) {
		tmpFile, err := os.CreateTemp(t.TempDir(), "terminal-sim")
		require.NoError(t, err)
		tmpFile.WriteString("not a pipe")
		tmpFile.Close()

		f, err := os.Open(tmpFile.Name())
		require.NoError(t, err)
		defer f.Close()
		os.Stdin = f

		data, hasPiped := checkStdinPipe()
		assert.False(t, hasPiped)
		assert.Empty(t, data)
	})
}

// setup isolates the CLI from the user's configuration and points every
// service at srv.
func setup(t *testing.T, srv *testutil.MockServer) string {
	t.Helper()
	home, wd := t.TempDir(), t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("IBM_CREDENTIALS_FILE", filepath.Join(home, "missing.env"))

	local := fmt.Sprintf(`{"services": {
		"conversation": {"url": %[1]q, "bearerToken": "cli-token"},
		"discovery": {"url": %[1]q, "bearerToken": "cli-token"},
		"tradeoff_analytics": {"url": %[1]q, "bearerToken": "cli-token"}
	}}`, srv.URL)
	require.NoError(t, os.WriteFile(filepath.Join(wd, ".watson.json"), []byte(local), 0o600))
	return wd
}

func run(t *testing.T, wd string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append(args, "--cwd", wd))
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

const workspaceList = `{
	"workspaces": [
		{"workspace_id": "ws-1", "name": "Pizza bot", "language": "en", "learning_opt_out": false, "status": "Available"},
		{"workspace_id": "ws-2", "name": "Banking", "language": "fr", "learning_opt_out": true, "status": "Training"}
	],
	"pagination": {"refresh_url": "/v1/workspaces?version=2021-06-14"}
}`

func TestWorkspacesList(t *testing.T) {
	srv := testutil.NewMockServer(t)
	srv.Handle(http.MethodGet, "/v1/workspaces", http.StatusOK, workspaceList)
	wd := setup(t, srv)

	out, _, err := run(t, wd, "assistant", "workspaces", "list", "-f", "logfmt", "--page-limit", "2")
	require.NoError(t, err)
	assert.Equal(t, "workspace_id=ws-1 name=\"Pizza bot\" language=en status=Available\n"+
		"workspace_id=ws-2 name=Banking language=fr status=Training\n", out)

	req := srv.LastRequest()
	assert.Equal(t, "2021-06-14", req.Query.Get("version"))
	assert.Equal(t, "2", req.Query.Get("page_limit"))
	assert.Equal(t, "Bearer cli-token", req.Header.Get("Authorization"))
	assert.Equal(t, "service_name=conversation;service_version=V1;operation_id=listWorkspaces", req.Header.Get("X-IBMCloud-SDK-Analytics"))

	out, _, err = run(t, wd, "assistant", "ws", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Pizza bot")
	assert.False(t, srv.LastRequest().Query.Has("page_limit"))
}

func TestWorkspacesUpdate(t *testing.T) {
	srv := testutil.NewMockServer(t)
	srv.Handle(http.MethodPost, "/v1/workspaces/{workspace_id}", http.StatusOK,
		`{"workspace_id": "ws-1", "name": "Pizza", "language": "en", "learning_opt_out": false}`)
	wd := setup(t, srv)

	out, _, err := run(t, wd, "assistant", "workspaces", "update", "ws-1", "--name", "Pizza", "--clear-description", "--learning-opt-out=false", "-f", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"workspace_id": "ws-1", "name": "Pizza", "language": "en", "learning_opt_out": false}`, out)

	req := srv.LastRequest()
	assert.Equal(t, "/v1/workspaces/ws-1", req.Path)
	assert.Equal(t, `{"name":"Pizza","description":null,"learning_opt_out":false}`, string(req.Body))
	assert.False(t, req.Query.Has("append"))

	_, _, err = run(t, wd, "assistant", "workspaces", "update", "ws-1", "--append")
	assert.ErrorContains(t, err, "nothing to update")
	assert.Len(t, srv.Requests(), 1)
}

func TestWorkspacesGetNotFound(t *testing.T) {
	srv := testutil.NewMockServer(t)
	srv.Handle(http.MethodGet, "/v1/workspaces/{workspace_id}", http.StatusNotFound, `{"error": "Resource not found", "code": 404}`)
	wd := setup(t, srv)

	_, _, err := run(t, wd, "assistant", "workspaces", "get", "missing", "--export")
	assert.ErrorContains(t, err, "404 Not Found: Resource not found")
	assert.Equal(t, "true", srv.LastRequest().Query.Get("export"))
}

func TestMessage(t *testing.T) {
	srv := testutil.NewMockServer(t)
	srv.Handle(http.MethodPost, "/v1/workspaces/{workspace_id}/message", http.StatusOK, `{
		"input": {"text": "I want a pizza"},
		"intents": [{"intent": "order", "confidence": 0.97}],
		"entities": [],
		"context": {"conversation_id": "c-1"},
		"output": {"text": ["Which size?", "We have small and large."], "log_messages": []}
	}`)
	wd := setup(t, srv)

	out, _, err := run(t, wd, "assistant", "message", "ws-1", "I", "want", "a", "pizza", "--learning-opt-out", "-f", "logfmt")
	require.NoError(t, err)
	assert.Equal(t, "response=\"Which size?\"\nresponse=\"We have small and large.\"\n", out)

	req := srv.LastRequest()
	assert.Equal(t, `{"input":{"text":"I want a pizza"}}`, string(req.Body))
	assert.Equal(t, "true", req.Header.Get("X-Watson-Learning-Opt-Out"))
}

func TestMessageFromStdin(t *testing.T) {
	srv := testutil.NewMockServer(t)
	srv.Handle(http.MethodPost, "/v1/workspaces/{workspace_id}/message", http.StatusOK, `{
		"output": {"generic": [{"response_type": "text", "text": "Hello!"}], "log_messages": []}
	}`)
	wd := setup(t, srv)

	origStdin := os.Stdin
	defer func() { os.Stdin = origStdin }()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdin = r
	go func() {
		defer w.Close()
		w.Write([]byte("hi there\n"))
	}()

	out, _, err := run(t, wd, "assistant", "message", "ws-1", "-f", "logfmt")
	require.NoError(t, err)
	assert.Equal(t, "response=Hello!\n", out)
	assert.Equal(t, `{"input":{"text":"hi there"}}`, string(srv.LastRequest().Body))
}

func TestMessageWithoutText(t *testing.T) {
	srv := testutil.NewMockServer(t)
	wd := setup(t, srv)

	_, _, err := run(t, wd, "assistant", "message", "ws-1")
	assert.ErrorContains(t, err, "no message text")
	assert.Empty(t, srv.Requests())
}

func TestAsk(t *testing.T) {
	srv := testutil.NewMockServer(t)
	srv.Handle(http.MethodPost, "/v2/assistants/{assistant_id}/message", http.StatusOK, `{
		"output": {"generic": [
			{"response_type": "text", "text": "Pick a size"},
			{"response_type": "option", "title": "Sizes", "options": [
				{"label": "Small", "value": {"input": {"text": "small"}}},
				{"label": "Large", "value": {"input": {"text": "large"}}}
			]}
		]},
		"context": {"global": {"system": {"turn_count": 1}}}
	}`)
	wd := setup(t, srv)

	out, _, err := run(t, wd, "assistant", "ask", "asst-1", "pizza", "--debug-output", "-f", "logfmt")
	require.NoError(t, err)
	assert.Equal(t, "response_type=text response=\"Pick a size\"\n"+
		"response_type=option response=Small\n"+
		"response_type=option response=Large\n", out)

	req := srv.LastRequest()
	assert.Equal(t, "/v2/assistants/asst-1/message", req.Path)
	assert.JSONEq(t, `{"input":{"message_type":"text","text":"pizza","options":{"debug":true}}}`, string(req.Body))
}

func TestDiscoveryCommands(t *testing.T) {
	srv := testutil.NewMockServer(t)
	srv.Handle(http.MethodGet, "/v2/projects", http.StatusOK, `{"projects": [
		{"project_id": "p-1", "name": "Manuals", "type": "document_retrieval", "collection_count": 2}
	]}`)
	srv.Handle(http.MethodPost, "/v2/projects/{project_id}/query", http.StatusOK, `{
		"matching_results": 1,
		"results": [{
			"document_id": "doc-1",
			"result_metadata": {"collection_id": "col-1", "confidence": 0.8125, "document_retrieval_source": "search"},
			"document_passages": [{"passage_text": "Reset the router"}]
		}]
	}`)
	wd := setup(t, srv)

	out, _, err := run(t, wd, "discovery", "projects", "list", "-f", "logfmt")
	require.NoError(t, err)
	assert.Equal(t, "project_id=p-1 name=Manuals type=document_retrieval collection_count=2\n", out)
	assert.Equal(t, "2019-11-22", srv.LastRequest().Query.Get("version"))

	out, _, err = run(t, wd, "discovery", "query", "p-1", "-n", "how do I reset", "--count", "3", "--collection-ids", "col-1,col-2", "-f", "logfmt")
	require.NoError(t, err)
	assert.Equal(t, "document_id=doc-1 collection_id=col-1 confidence=0.8125 passage=\"Reset the router\"\n", out)
	assert.Equal(t, `{"collection_ids":["col-1","col-2"],"natural_language_query":"how do I reset","count":3}`, string(srv.LastRequest().Body))

	_, _, err = run(t, wd, "discovery", "query", "p-1")
	assert.ErrorContains(t, err, "pass one of")
}

const problem = `{
	// Which phone to buy
	"subject": "phones",
	"columns": [
		{"key": "price", "type": "numeric", "goal": "min", "is_objective": true, "range": {"low": 0, "high": 400}},
		{"key": "weight", "type": "numeric", "goal": "min", "is_objective": true}
	],
	"options": [
		{"key": "1", "name": "Samsung", "values": {"price": 249, "weight": 130}},
		{"key": "2", "name": "Apple", "values": {"price": 449, "weight": 112}},
		{"key": "3", "name": "HTC", "values": {"price": 299, "weight": 135}}
	]
}`

func TestTradeoffDilemma(t *testing.T) {
	srv := testutil.NewMockServer(t)
	srv.Handle(http.MethodPost, "/v1/dilemmas", http.StatusOK, `{
		"problem": {"subject": "phones", "columns": [], "options": [
			{"key": "1", "name": "Samsung", "values": {}},
			{"key": "2", "name": "Apple", "values": {}},
			{"key": "3", "name": "HTC", "values": {}}
		]},
		"resolution": {"solutions": [
			{"solution_ref": "1", "status": "FRONT"},
			{"solution_ref": "2", "status": "EXCLUDED", "status_cause": {"error_code": "RANGE_MISMATCH", "tokens": ["price", "449"]}},
			{"solution_ref": "3", "status": "FRONT"}
		]}
	}`)
	wd := setup(t, srv)
	path := filepath.Join(wd, "problem.jsonc")
	require.NoError(t, os.WriteFile(path, []byte(problem), 0o600))

	out, _, err := run(t, wd, "tradeoff", "dilemma", "--file", path, "--preferable", "-f", "logfmt")
	require.NoError(t, err)
	assert.Equal(t, "option=1 name=Samsung status=FRONT cause=\n"+
		"option=2 name=Apple status=EXCLUDED cause=price,449\n"+
		"option=3 name=HTC status=FRONT cause=\n", out)

	req := srv.LastRequest()
	assert.Equal(t, "true", req.Query.Get("find_preferable_options"))
	assert.False(t, req.Query.Has("generate_visualization"))
	assert.False(t, req.Query.Has("version"))
	var body map[string]any
	req.JSON(t, &body)
	assert.Equal(t, "phones", body["subject"])
	assert.Len(t, body["options"], 3)

	_, _, err = run(t, wd, "tradeoff", "dilemma", "--file", filepath.Join(wd, "missing.jsonc"))
	assert.ErrorContains(t, err, "reading problem")
}

func TestConfigure(t *testing.T) {
	srv := testutil.NewMockServer(t)
	srv.Handle(http.MethodGet, "/v2/projects", http.StatusOK, `{"projects": []}`)
	wd := setup(t, srv)
	require.NoError(t, os.Remove(filepath.Join(wd, ".watson.json")))

	out, _, err := run(t, wd, "configure", "Discovery", "--url", srv.URL, "--bearer-token", "stored", "--api-version", "2023-03-31", "-f", "logfmt")
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("service=discovery url=%s auth=bearerToken version=2023-03-31\n", srv.URL), out)

	_, _, err = run(t, wd, "discovery", "projects", "list")
	require.NoError(t, err)
	req := srv.LastRequest()
	assert.Equal(t, "Bearer stored", req.Header.Get("Authorization"))
	assert.Equal(t, "2023-03-31", req.Query.Get("version"))

	stored, err := os.ReadFile(filepath.Join(os.Getenv("HOME"), ".watson.json"))
	require.NoError(t, err)

	_, _, err = run(t, wd, "configure", "discovery")
	assert.ErrorContains(t, err, "nothing to store")
	after, err := os.ReadFile(filepath.Join(os.Getenv("HOME"), ".watson.json"))
	require.NoError(t, err)
	assert.Equal(t, string(stored), string(after))
}

func TestInvalidOutputFormat(t *testing.T) {
	srv := testutil.NewMockServer(t)
	wd := setup(t, srv)

	_, _, err := run(t, wd, "discovery", "projects", "list", "-f", "yaml")
	assert.EqualError(t, err, "invalid output format: yaml")
	assert.Empty(t, srv.Requests())
}

func TestDebugLogsRequests(t *testing.T) {
	srv := testutil.NewMockServer(t)
	srv.Handle(http.MethodGet, "/v2/projects", http.StatusOK, `{"projects": []}`)
	wd := setup(t, srv)

	_, stderr, err := run(t, wd, "discovery", "projects", "list", "--debug")
	require.NoError(t, err)
	assert.Contains(t, stderr, `msg="watson request"`)
	assert.Contains(t, stderr, "status=200")
	assert.NotContains(t, stderr, "cli-token")
}
