package discoveryv2_test

import (
	"net/http"
	"path/filepath"
	"slices"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/go-cmp/cmp"

	"github.com/watson-developer-cloud/watson-go/discoveryv2"
	"github.com/watson-developer-cloud/watson-go/internal/testutil"
	"github.com/watson-developer-cloud/watson-go/option"
)

var ignoreMeta = cmp.FilterPath(func(p cmp.Path) bool {
	return p.Last().String() == ".JSON"
}, cmp.Ignore())

func newService(t *testing.T, srv *testutil.MockServer, opts ...option.RequestOption) *discoveryv2.Service {
	t.Helper()
	t.Setenv("IBM_CREDENTIALS_FILE", filepath.Join(t.TempDir(), "ibm-credentials.env"))
	return discoveryv2.NewService(slices.Concat([]option.RequestOption{
		option.WithBaseURL(srv.URL),
		option.WithBearerToken("token"),
	}, opts)...)
}

func discoveryDocument() *openapi3.T {
	str := openapi3.NewStringSchema
	query := []*openapi3.Parameter{testutil.Version()}
	enrichments := openapi3.NewArraySchema().WithItems(
		openapi3.NewObjectSchema().
			WithProperty("enrichment_id", str()).
			WithProperty("fields", openapi3.NewArraySchema().WithItems(str()).WithMinItems(1)).
			WithRequired([]string{"enrichment_id", "fields"}),
	)
	project := testutil.Object(map[string]*openapi3.Schema{
		"name":                     str(),
		"type":                     str().WithEnum("intelligent_document_processing", "document_retrieval", "conversational_search", "content_mining", "content_intelligence", "other"),
		"default_query_parameters": openapi3.NewObjectSchema(),
	})
	collection := testutil.Object(map[string]*openapi3.Schema{
		"name":        str(),
		"description": str(),
		"language":    str(),
		"enrichments": enrichments,
	})
	search := testutil.Object(map[string]*openapi3.Schema{
		"collection_ids":         openapi3.NewArraySchema().WithItems(str()),
		"filter":                 str(),
		"query":                  str(),
		"natural_language_query": str().WithMaxLength(2048),
		"aggregation":            str(),
		"count":                  openapi3.NewIntegerSchema().WithMin(0),
		"return":                 openapi3.NewArraySchema().WithItems(str()),
		"offset":                 openapi3.NewIntegerSchema().WithMin(0),
		"sort":                   str(),
		"highlight":              openapi3.NewBoolSchema(),
		"spelling_suggestions":   openapi3.NewBoolSchema(),
		"table_results":          openapi3.NewObjectSchema(),
		"suggested_refinements":  openapi3.NewObjectSchema(),
		"passages":               openapi3.NewObjectSchema(),
	})
	return testutil.NewDocument("Watson Discovery v2",
		testutil.Operation{Method: http.MethodGet, Path: "/v2/projects", Query: query},
		testutil.Operation{Method: http.MethodPost, Path: "/v2/projects", Query: query, Body: project},
		testutil.Operation{Method: http.MethodGet, Path: "/v2/projects/{project_id}", Query: query},
		testutil.Operation{Method: http.MethodPost, Path: "/v2/projects/{project_id}", Query: query, Body: project},
		testutil.Operation{Method: http.MethodDelete, Path: "/v2/projects/{project_id}", Query: query},
		testutil.Operation{Method: http.MethodGet, Path: "/v2/projects/{project_id}/collections", Query: query},
		testutil.Operation{Method: http.MethodPost, Path: "/v2/projects/{project_id}/collections", Query: query, Body: collection},
		testutil.Operation{Method: http.MethodGet, Path: "/v2/projects/{project_id}/collections/{collection_id}", Query: query},
		testutil.Operation{Method: http.MethodPost, Path: "/v2/projects/{project_id}/collections/{collection_id}", Query: query, Body: collection},
		testutil.Operation{Method: http.MethodDelete, Path: "/v2/projects/{project_id}/collections/{collection_id}", Query: query},
		testutil.Operation{Method: http.MethodPost, Path: "/v2/projects/{project_id}/query", Query: query, Body: search},
	)
}
