package assistantv1_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/watson-developer-cloud/watson-go"
	"github.com/watson-developer-cloud/watson-go/assistantv1"
	"github.com/watson-developer-cloud/watson-go/internal/testutil"
	"github.com/watson-developer-cloud/watson-go/option"
)

const workspaceBody = `{
	"name": "Pizza bot",
	"description": "Takes pizza orders",
	"language": "en",
	"workspace_id": "ws-1",
	"learning_opt_out": false,
	"created": "2021-06-14T10:00:00Z",
	"updated": "2021-06-15T10:00:00Z",
	"status": "Available",
	"counterexamples": [{"text": "what is the weather"}, {"text": "tell me a joke"}],
	"system_settings": {
		"disambiguation": {"enabled": true, "sensitivity": "high", "max_suggestions": 3},
		"off_topic": {"enabled": true}
	},
	"webhooks": [{"url": "https://example.com/hook", "name": "main", "headers": [{"name": "X-Token", "value": "abc"}]}],
	"dialog_nodes": [{
		"dialog_node": "welcome",
		"conditions": "welcome",
		"output": {"generic": [{"response_type": "text", "values": [{"text": "Hello"}]}], "custom": 1},
		"next_step": {"behavior": "jump_to", "dialog_node": "order", "selector": "body"}
	}],
	"intents": [{"intent": "order", "examples": [{"text": "I want a pizza"}]}]
}`

func TestWorkspaceUpdatePatch(t *testing.T) {
	t.Run("only set fields", func(t *testing.T) {
		params := assistantv1.WorkspaceUpdateParams{
			Name: watson.F("testString"),
		}
		patch := params.AsPatch()
		assert.Equal(t, []string{"name"}, patch.Keys())

		b, err := json.Marshal(patch)
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"testString"}`, string(b))
	})

	t.Run("null and false are kept", func(t *testing.T) {
		params := assistantv1.WorkspaceUpdateParams{
			Description:    watson.Null[string](),
			LearningOptOut: watson.F(false),
		}
		patch := params.AsPatch()
		assert.Equal(t, 2, patch.Len())

		v, ok := patch.Get("description")
		assert.True(t, ok)
		assert.Nil(t, v)
		v, ok = patch.Get("learning_opt_out")
		assert.True(t, ok)
		assert.Equal(t, false, v)
		assert.False(t, patch.Has("name"))

		b, err := json.Marshal(patch)
		require.NoError(t, err)
		assert.Equal(t, `{"description":null,"learning_opt_out":false}`, string(b))
	})

	t.Run("query params are not part of the patch", func(t *testing.T) {
		params := assistantv1.WorkspaceUpdateParams{
			Append:       watson.F(true),
			IncludeAudit: watson.F(true),
		}
		assert.Equal(t, 0, params.AsPatch().Len())
	})

	t.Run("lists keep their order", func(t *testing.T) {
		params := assistantv1.WorkspaceUpdateParams{
			Counterexamples: watson.F([]assistantv1.CounterexampleParam{
				{Text: watson.F("c")},
				{Text: watson.F("a")},
				{Text: watson.F("b")},
			}),
		}
		b, err := json.Marshal(params.AsPatch())
		require.NoError(t, err)
		assert.Equal(t, `{"counterexamples":[{"text":"c"},{"text":"a"},{"text":"b"}]}`, string(b))
	})
}

func TestWorkspaceUpdate(t *testing.T) {
	srv := testutil.NewMockServer(t).WithOpenAPI(assistantDocument())
	srv.Handle(http.MethodPost, "/v1/workspaces/{workspace_id}", http.StatusOK, workspaceBody)
	svc := newService(t, srv)

	params := assistantv1.WorkspaceUpdateParams{
		Name:           watson.F("Pizza bot"),
		Description:    watson.Null[string](),
		LearningOptOut: watson.F(false),
		Append:         watson.F(true),
	}
	res, err := svc.Workspaces.Update(context.Background(), "ws-1", params)
	require.NoError(t, err)

	req := srv.LastRequest()
	require.Empty(t, req.Invalid)
	assert.Equal(t, "/v1/workspaces/ws-1", req.Path)
	assert.Equal(t, assistantv1.DefaultVersion, req.Query.Get("version"))
	assert.Equal(t, "true", req.Query.Get("append"))
	assert.Equal(t, "Bearer token", req.Header.Get("Authorization"))
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
	assert.Equal(t, "service_name=conversation;service_version=V1;operation_id=updateWorkspace",
		req.Header.Get("X-IBMCloud-SDK-Analytics"))
	assert.NotEmpty(t, req.Header.Get("X-Request-Id"))

	want, err := json.Marshal(params.AsPatch())
	require.NoError(t, err)
	assert.Equal(t, string(want), string(req.Body))

	assert.Equal(t, "Pizza bot", res.Name)
	assert.Equal(t, assistantv1.WorkspaceStatusAvailable, res.Status)
	assert.True(t, res.Status.IsKnown())
	assert.Equal(t, time.Date(2021, 6, 14, 10, 0, 0, 0, time.UTC), res.Created)
	assert.Equal(t, []string{"what is the weather", "tell me a joke"},
		[]string{res.Counterexamples[0].Text, res.Counterexamples[1].Text})
	assert.Equal(t, assistantv1.WorkspaceSystemSettingsDisambiguationSensitivityHigh, res.SystemSettings.Disambiguation.Sensitivity)
	assert.Equal(t, int64(3), res.SystemSettings.Disambiguation.MaxSuggestions)
	assert.Equal(t, "abc", res.Webhooks[0].Headers[0].Value)
	assert.Equal(t, assistantv1.DialogNodeNextStepBehaviorJumpTo, res.DialogNodes[0].NextStep.Behavior)
	assert.Equal(t, float64(1), res.DialogNodes[0].Output.ExtraFields["custom"])
	assert.True(t, res.JSON.Metadata.IsMissing())
	assert.False(t, res.JSON.Description.IsMissing())
}

func TestWorkspaceUpdateValidatesBeforeSending(t *testing.T) {
	srv := testutil.NewMockServer(t)
	svc := newService(t, srv)

	_, err := svc.Workspaces.Update(context.Background(), "ws-1", assistantv1.WorkspaceUpdateParams{
		Name: watson.F("this workspace name is far longer than the sixty four characters allowed"),
		Webhooks: watson.F([]assistantv1.WebhookParam{
			{Name: watson.F("missing url")},
		}),
	})
	var verr *watson.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "WorkspaceUpdateParams", verr.Params)
	assert.True(t, verr.Has("name", "max"))
	assert.True(t, verr.Has("webhooks[0].url", "required"))
	assert.Empty(t, srv.Requests())

	_, err = svc.Workspaces.Update(context.Background(), "", assistantv1.WorkspaceUpdateParams{})
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("workspace_id", "required"))
	assert.Empty(t, srv.Requests())
}

func TestWorkspaceList(t *testing.T) {
	srv := testutil.NewMockServer(t).WithOpenAPI(assistantDocument())
	srv.Handle(http.MethodGet, "/v1/workspaces", http.StatusOK, `{
		"workspaces": [{"name": "a", "language": "en", "learning_opt_out": false}, {"name": "b", "language": "fr", "learning_opt_out": true}],
		"pagination": {"refresh_url": "/v1/workspaces?page_limit=2", "next_cursor": "c2", "total": 2, "matched": 2}
	}`)
	svc := newService(t, srv)

	res, err := svc.Workspaces.List(context.Background(), assistantv1.WorkspaceListParams{
		PageLimit:    watson.Int(2),
		IncludeCount: watson.Bool(true),
		Sort:         watson.F(assistantv1.ListSortUpdatedDesc),
	})
	require.NoError(t, err)
	require.Len(t, res.Workspaces, 2)
	assert.Equal(t, "b", res.Workspaces[1].Name)
	assert.True(t, res.Workspaces[1].LearningOptOut)
	assert.Equal(t, "c2", res.Pagination.NextCursor)

	req := srv.LastRequest()
	require.Empty(t, req.Invalid)
	assert.Empty(t, req.Body)

	var query struct {
		Version      string `schema:"version"`
		PageLimit    int64  `schema:"page_limit"`
		IncludeCount bool   `schema:"include_count"`
		Sort         string `schema:"sort"`
	}
	req.DecodeQuery(t, &query)
	assert.Equal(t, assistantv1.DefaultVersion, query.Version)
	assert.Equal(t, int64(2), query.PageLimit)
	assert.True(t, query.IncludeCount)
	assert.Equal(t, "-updated", query.Sort)
	assert.False(t, req.Query.Has("cursor"))
}

func TestWorkspaceNewGetDelete(t *testing.T) {
	srv := testutil.NewMockServer(t).WithOpenAPI(assistantDocument())
	srv.Handle(http.MethodPost, "/v1/workspaces", http.StatusCreated, workspaceBody)
	srv.Handle(http.MethodGet, "/v1/workspaces/{workspace_id}", http.StatusOK, workspaceBody)
	srv.Handle(http.MethodDelete, "/v1/workspaces/{workspace_id}", http.StatusOK, `{}`)
	svc := newService(t, srv)
	ctx := context.Background()

	created, err := svc.Workspaces.New(ctx, assistantv1.WorkspaceNewParams{
		Name:     watson.F("Pizza bot"),
		Language: watson.F("en"),
		Intents: watson.F([]assistantv1.IntentParam{{
			Intent:   watson.F("order"),
			Examples: watson.F([]assistantv1.ExampleParam{{Text: watson.F("I want a pizza")}}),
		}}),
	})
	require.NoError(t, err)
	assert.Equal(t, "ws-1", created.WorkspaceID)
	var body map[string]any
	srv.LastRequest().JSON(t, &body)
	assert.Equal(t, map[string]any{
		"name":     "Pizza bot",
		"language": "en",
		"intents": []any{map[string]any{
			"intent":   "order",
			"examples": []any{map[string]any{"text": "I want a pizza"}},
		}},
	}, body)

	got, err := svc.Workspaces.Get(ctx, "ws-1", assistantv1.WorkspaceGetParams{Export: watson.Bool(true)})
	require.NoError(t, err)
	assert.Equal(t, "order", got.Intents[0].Intent)
	assert.Equal(t, "true", srv.LastRequest().Query.Get("export"))

	require.NoError(t, svc.Workspaces.Delete(ctx, "ws-1"))
	assert.Equal(t, http.MethodDelete, srv.LastRequest().Method)

	for _, req := range srv.Requests() {
		assert.Empty(t, req.Invalid, "%s %s", req.Method, req.Path)
	}
}

func TestWorkspaceErrors(t *testing.T) {
	srv := testutil.NewMockServer(t)
	srv.Handle(http.MethodGet, "/v1/workspaces/missing", http.StatusNotFound, `{"error": "Resource not found", "code": 404}`)
	srv.Handle(http.MethodGet, "/v1/workspaces/broken", http.StatusOK, `{"name": 42, "language": "en"}`)
	svc := newService(t, srv)

	_, err := svc.Workspaces.Get(context.Background(), "missing", assistantv1.WorkspaceGetParams{})
	var apierr *watson.Error
	require.ErrorAs(t, err, &apierr)
	assert.Equal(t, http.StatusNotFound, apierr.StatusCode)
	assert.Equal(t, "Resource not found", apierr.Message)

	_, err = svc.Workspaces.Get(context.Background(), "broken", assistantv1.WorkspaceGetParams{})
	var decodeErr *watson.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, http.StatusOK, decodeErr.StatusCode)
	assert.False(t, errors.As(err, &apierr))
}

func TestWorkspaceRoundTrip(t *testing.T) {
	var original assistantv1.Workspace
	require.NoError(t, json.Unmarshal([]byte(workspaceBody), &original))

	b, err := json.Marshal(original)
	require.NoError(t, err)
	var decoded assistantv1.Workspace
	require.NoError(t, json.Unmarshal(b, &decoded))

	if diff := cmp.Diff(original, decoded, ignoreMeta); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestWorkspaceUpdateParamsRoundTrip(t *testing.T) {
	params := assistantv1.WorkspaceUpdateParams{
		Name:           watson.F("testString"),
		Description:    watson.Null[string](),
		LearningOptOut: watson.F(false),
		Metadata:       watson.F(map[string]any{"owner": "ops"}),
		Counterexamples: watson.F([]assistantv1.CounterexampleParam{
			{Text: watson.F("first")},
			{Text: watson.F("second")},
		}),
	}
	b, err := json.Marshal(params)
	require.NoError(t, err)

	var decoded assistantv1.WorkspaceUpdateParams
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, params, decoded)
	assert.Equal(t, params.AsPatch().Keys(), decoded.AsPatch().Keys())
}

func TestWorkspaceLive(t *testing.T) {
	baseURL := "http://localhost:4010"
	if envURL, ok := os.LookupEnv("TEST_API_BASE_URL"); ok {
		baseURL = envURL
	}
	if !testutil.CheckTestServer(t, baseURL) {
		return
	}
	svc := assistantv1.NewService(
		option.WithBaseURL(baseURL),
		option.WithBearerToken("My Bearer Token"),
	)
	_, err := svc.Workspaces.List(context.TODO(), assistantv1.WorkspaceListParams{})
	if err != nil {
		var apierr *watson.Error
		if errors.As(err, &apierr) {
			t.Log(string(apierr.DumpRequest(true)))
		}
		t.Fatalf("err should be nil: %s", err.Error())
	}
}
