package assistantv1_test

import (
	"net/http"
	"path/filepath"
	"slices"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/go-cmp/cmp"

	"github.com/watson-developer-cloud/watson-go/assistantv1"
	"github.com/watson-developer-cloud/watson-go/internal/testutil"
	"github.com/watson-developer-cloud/watson-go/option"
)

// ignoreMeta skips the JSON metadata of response models when comparing.
var ignoreMeta = cmp.FilterPath(func(p cmp.Path) bool {
	return p.Last().String() == ".JSON"
}, cmp.Ignore())

func newService(t *testing.T, srv *testutil.MockServer, opts ...option.RequestOption) *assistantv1.Service {
	t.Helper()
	t.Setenv("IBM_CREDENTIALS_FILE", filepath.Join(t.TempDir(), "ibm-credentials.env"))
	return assistantv1.NewService(slices.Concat([]option.RequestOption{
		option.WithBaseURL(srv.URL),
		option.WithBearerToken("token"),
	}, opts)...)
}

func assistantDocument() *openapi3.T {
	str := openapi3.NewStringSchema
	listQuery := []*openapi3.Parameter{
		testutil.Version(),
		testutil.QueryParam("page_limit", openapi3.NewIntegerSchema().WithMin(1)),
		testutil.QueryParam("include_count", openapi3.NewBoolSchema()),
		testutil.QueryParam("sort", str()),
		testutil.QueryParam("cursor", str()),
		testutil.QueryParam("include_audit", openapi3.NewBoolSchema()),
		testutil.QueryParam("export", openapi3.NewBoolSchema()),
	}
	writeQuery := []*openapi3.Parameter{
		testutil.Version(),
		testutil.QueryParam("append", openapi3.NewBoolSchema()),
		testutil.QueryParam("include_audit", openapi3.NewBoolSchema()),
	}
	examples := openapi3.NewArraySchema().WithItems(
		openapi3.NewObjectSchema().WithProperty("text", str().WithMaxLength(1024)).WithRequired([]string{"text"}),
	)
	workspace := testutil.Object(map[string]*openapi3.Schema{
		"name":             str().WithMaxLength(64),
		"description":      str().WithMaxLength(128),
		"language":         str(),
		"learning_opt_out": openapi3.NewBoolSchema(),
		"metadata":         openapi3.NewObjectSchema(),
		"counterexamples":  examples,
		"intents":          openapi3.NewArraySchema().WithItems(openapi3.NewObjectSchema()),
		"dialog_nodes":     openapi3.NewArraySchema().WithItems(openapi3.NewObjectSchema()),
		"system_settings":  openapi3.NewObjectSchema(),
		"webhooks":         openapi3.NewArraySchema().WithItems(openapi3.NewObjectSchema()),
	})
	intent := testutil.Object(map[string]*openapi3.Schema{
		"intent":      str().WithMaxLength(128),
		"description": str().WithMaxLength(128),
		"examples":    examples,
	})
	dialogNode := testutil.Object(map[string]*openapi3.Schema{
		"dialog_node": str().WithMaxLength(1024),
		"title":       str().WithMaxLength(64),
		"conditions":  str().WithMaxLength(2048),
		"output":      openapi3.NewObjectSchema(),
		"next_step":   openapi3.NewObjectSchema(),
	})
	message := testutil.Object(map[string]*openapi3.Schema{
		"input":             openapi3.NewObjectSchema().WithProperty("text", str().WithMaxLength(2048)),
		"context":           openapi3.NewObjectSchema(),
		"alternate_intents": openapi3.NewBoolSchema(),
		"user_id":           str(),
		"intents":           openapi3.NewArraySchema().WithItems(openapi3.NewObjectSchema()),
		"entities":          openapi3.NewArraySchema().WithItems(openapi3.NewObjectSchema()),
	})
	deleteQuery := []*openapi3.Parameter{testutil.Version()}

	return testutil.NewDocument("Watson Assistant v1",
		testutil.Operation{Method: http.MethodPost, Path: "/v1/workspaces/{workspace_id}/message", Body: message, Query: []*openapi3.Parameter{
			testutil.Version(),
			testutil.QueryParam("nodes_visited_details", openapi3.NewBoolSchema()),
		}},
		testutil.Operation{Method: http.MethodGet, Path: "/v1/workspaces", Query: listQuery},
		testutil.Operation{Method: http.MethodPost, Path: "/v1/workspaces", Query: writeQuery, Body: workspace},
		testutil.Operation{Method: http.MethodGet, Path: "/v1/workspaces/{workspace_id}", Query: listQuery},
		testutil.Operation{Method: http.MethodPost, Path: "/v1/workspaces/{workspace_id}", Query: writeQuery, Body: workspace},
		testutil.Operation{Method: http.MethodDelete, Path: "/v1/workspaces/{workspace_id}", Query: deleteQuery},
		testutil.Operation{Method: http.MethodGet, Path: "/v1/workspaces/{workspace_id}/intents", Query: listQuery},
		testutil.Operation{Method: http.MethodPost, Path: "/v1/workspaces/{workspace_id}/intents", Query: writeQuery, Body: intent},
		testutil.Operation{Method: http.MethodGet, Path: "/v1/workspaces/{workspace_id}/intents/{intent}", Query: listQuery},
		testutil.Operation{Method: http.MethodPost, Path: "/v1/workspaces/{workspace_id}/intents/{intent}", Query: writeQuery, Body: intent},
		testutil.Operation{Method: http.MethodDelete, Path: "/v1/workspaces/{workspace_id}/intents/{intent}", Query: deleteQuery},
		testutil.Operation{Method: http.MethodGet, Path: "/v1/workspaces/{workspace_id}/dialog_nodes", Query: listQuery},
		testutil.Operation{Method: http.MethodPost, Path: "/v1/workspaces/{workspace_id}/dialog_nodes", Query: writeQuery, Body: dialogNode},
		testutil.Operation{Method: http.MethodGet, Path: "/v1/workspaces/{workspace_id}/dialog_nodes/{dialog_node}", Query: listQuery},
		testutil.Operation{Method: http.MethodPost, Path: "/v1/workspaces/{workspace_id}/dialog_nodes/{dialog_node}", Query: writeQuery, Body: dialogNode},
		testutil.Operation{Method: http.MethodDelete, Path: "/v1/workspaces/{workspace_id}/dialog_nodes/{dialog_node}", Query: deleteQuery},
	)
}
