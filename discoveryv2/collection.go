package discoveryv2

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"time"

	"github.com/watson-developer-cloud/watson-go/internal/apijson"
	"github.com/watson-developer-cloud/watson-go/internal/param"
	"github.com/watson-developer-cloud/watson-go/internal/requestconfig"
	"github.com/watson-developer-cloud/watson-go/option"
)

// CollectionService contains methods for managing the collections of a
// project.
//
// You should not instantiate this service directly, and instead use the
// [NewCollectionService] method instead.
type CollectionService struct {
	Options []option.RequestOption
}

// NewCollectionService generates a new service that applies the given
// options to each request. These options are applied after the parent
// client's options (if there is one), and before any request-specific
// options.
func NewCollectionService(opts ...option.RequestOption) (r *CollectionService) {
	r = &CollectionService{}
	r.Options = opts
	return
}

// List the collections of a project.
func (r *CollectionService) List(ctx context.Context, projectID string, opts ...option.RequestOption) (res *CollectionList, err error) {
	opts = slices.Concat(r.Options, []option.RequestOption{analytics("listCollections")}, opts)
	if err = param.RequirePath("project_id", projectID); err != nil {
		return
	}
	path := fmt.Sprintf("v2/projects/%s/collections", url.PathEscape(projectID))
	err = requestconfig.ExecuteNewRequest(ctx, http.MethodGet, path, nil, &res, opts...)
	return
}

// Create a collection in a project.
func (r *CollectionService) New(ctx context.Context, projectID string, body CollectionNewParams, opts ...option.RequestOption) (res *Collection, err error) {
	opts = slices.Concat(r.Options, []option.RequestOption{analytics("createCollection")}, opts)
	if err = param.RequirePath("project_id", projectID); err != nil {
		return
	}
	path := fmt.Sprintf("v2/projects/%s/collections", url.PathEscape(projectID))
	err = requestconfig.ExecuteNewRequest(ctx, http.MethodPost, path, body, &res, opts...)
	return
}

// Get details about a collection.
func (r *CollectionService) Get(ctx context.Context, projectID string, collectionID string, opts ...option.RequestOption) (res *Collection, err error) {
	opts = slices.Concat(r.Options, []option.RequestOption{analytics("getCollection")}, opts)
	if err = param.RequirePath("project_id", projectID); err != nil {
		return
	}
	if err = param.RequirePath("collection_id", collectionID); err != nil {
		return
	}
	path := fmt.Sprintf("v2/projects/%s/collections/%s", url.PathEscape(projectID), url.PathEscape(collectionID))
	err = requestconfig.ExecuteNewRequest(ctx, http.MethodGet, path, nil, &res, opts...)
	return
}

// Update a collection. Only the fields set in body are changed.
func (r *CollectionService) Update(ctx context.Context, projectID string, collectionID string, body CollectionUpdateParams, opts ...option.RequestOption) (res *Collection, err error) {
	opts = slices.Concat(r.Options, []option.RequestOption{analytics("updateCollection")}, opts)
	if err = param.RequirePath("project_id", projectID); err != nil {
		return
	}
	if err = param.RequirePath("collection_id", collectionID); err != nil {
		return
	}
	path := fmt.Sprintf("v2/projects/%s/collections/%s", url.PathEscape(projectID), url.PathEscape(collectionID))
	err = requestconfig.ExecuteNewRequest(ctx, http.MethodPost, path, body, &res, opts...)
	return
}

// Delete a collection and the documents it holds.
func (r *CollectionService) Delete(ctx context.Context, projectID string, collectionID string, opts ...option.RequestOption) (err error) {
	opts = slices.Concat(r.Options, []option.RequestOption{analytics("deleteCollection")}, opts)
	if err = param.RequirePath("project_id", projectID); err != nil {
		return
	}
	if err = param.RequirePath("collection_id", collectionID); err != nil {
		return
	}
	path := fmt.Sprintf("v2/projects/%s/collections/%s", url.PathEscape(projectID), url.PathEscape(collectionID))
	err = requestconfig.ExecuteNewRequest(ctx, http.MethodDelete, path, nil, nil, opts...)
	return
}

type Collection struct {
	CollectionID string    `json:"collection_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Created      time.Time `json:"created" format:"date-time"`
	// The language of the collection, e.g. "en".
	Language    string                 `json:"language"`
	Enrichments []CollectionEnrichment `json:"enrichments"`
	JSON        collectionJSON         `json:"-"`
}

// collectionJSON contains the JSON metadata for the struct [Collection]
type collectionJSON struct {
	CollectionID apijson.Field
	Name         apijson.Field
	Description  apijson.Field
	Created      apijson.Field
	Language     apijson.Field
	Enrichments  apijson.Field
	raw          string
	ExtraFields  map[string]apijson.Field
}

func (r *Collection) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r collectionJSON) RawJSON() string {
	return r.raw
}

// CollectionEnrichment applies an enrichment to fields of the documents of
// a collection.
type CollectionEnrichment struct {
	EnrichmentID string                   `json:"enrichment_id"`
	Fields       []string                 `json:"fields"`
	JSON         collectionEnrichmentJSON `json:"-"`
}

// collectionEnrichmentJSON contains the JSON metadata for the struct
// [CollectionEnrichment]
type collectionEnrichmentJSON struct {
	EnrichmentID apijson.Field
	Fields       apijson.Field
	raw          string
	ExtraFields  map[string]apijson.Field
}

func (r *CollectionEnrichment) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r collectionEnrichmentJSON) RawJSON() string {
	return r.raw
}

type CollectionList struct {
	Collections []Collection       `json:"collections"`
	JSON        collectionListJSON `json:"-"`
}

// collectionListJSON contains the JSON metadata for the struct
// [CollectionList]
type collectionListJSON struct {
	Collections apijson.Field
	raw         string
	ExtraFields map[string]apijson.Field
}

func (r *CollectionList) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r collectionListJSON) RawJSON() string {
	return r.raw
}

type CollectionNewParams struct {
	Name        param.Field[string]                      `json:"name,required"`
	Description param.Field[string]                      `json:"description"`
	Language    param.Field[string]                      `json:"language"`
	Enrichments param.Field[[]CollectionEnrichmentParam] `json:"enrichments"`
}

func (r CollectionNewParams) MarshalJSON() (data []byte, err error) {
	return apijson.MarshalRoot(r)
}

// CollectionUpdateParams changes a collection. Every field is optional.
type CollectionUpdateParams struct {
	Name        param.Field[string]                      `json:"name"`
	Description param.Field[string]                      `json:"description"`
	Enrichments param.Field[[]CollectionEnrichmentParam] `json:"enrichments"`
}

// AsPatch returns the merge patch sent by [CollectionService.Update].
func (r CollectionUpdateParams) AsPatch() apijson.Patch {
	return apijson.ToPatch(r)
}

func (r CollectionUpdateParams) MarshalJSON() (data []byte, err error) {
	return r.AsPatch().MarshalJSON()
}

type CollectionEnrichmentParam struct {
	EnrichmentID param.Field[string]   `json:"enrichment_id,required"`
	Fields       param.Field[[]string] `json:"fields,required" validate:"min=1"`
}

func (r CollectionEnrichmentParam) MarshalJSON() (data []byte, err error) {
	return apijson.MarshalRoot(r)
}
