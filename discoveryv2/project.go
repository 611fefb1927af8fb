package discoveryv2

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"slices"

	"github.com/watson-developer-cloud/watson-go/internal/apijson"
	"github.com/watson-developer-cloud/watson-go/internal/param"
	"github.com/watson-developer-cloud/watson-go/internal/requestconfig"
	"github.com/watson-developer-cloud/watson-go/option"
)

// ProjectService contains methods for managing Discovery projects.
//
// You should not instantiate this service directly, and instead use the
// [NewProjectService] method instead.
type ProjectService struct {
	Options []option.RequestOption
}

// NewProjectService generates a new service that applies the given options
// to each request. These options are applied after the parent client's
// options (if there is one), and before any request-specific options.
func NewProjectService(opts ...option.RequestOption) (r *ProjectService) {
	r = &ProjectService{}
	r.Options = opts
	return
}

// List the projects of the instance.
func (r *ProjectService) List(ctx context.Context, opts ...option.RequestOption) (res *ProjectList, err error) {
	opts = slices.Concat(r.Options, []option.RequestOption{analytics("listProjects")}, opts)
	path := "v2/projects"
	err = requestconfig.ExecuteNewRequest(ctx, http.MethodGet, path, nil, &res, opts...)
	return
}

// Create a project.
func (r *ProjectService) New(ctx context.Context, body ProjectNewParams, opts ...option.RequestOption) (res *Project, err error) {
	opts = slices.Concat(r.Options, []option.RequestOption{analytics("createProject")}, opts)
	path := "v2/projects"
	err = requestconfig.ExecuteNewRequest(ctx, http.MethodPost, path, body, &res, opts...)
	return
}

// Get details on the specified project.
func (r *ProjectService) Get(ctx context.Context, projectID string, opts ...option.RequestOption) (res *Project, err error) {
	opts = slices.Concat(r.Options, []option.RequestOption{analytics("getProject")}, opts)
	if err = param.RequirePath("project_id", projectID); err != nil {
		return
	}
	path := fmt.Sprintf("v2/projects/%s", url.PathEscape(projectID))
	err = requestconfig.ExecuteNewRequest(ctx, http.MethodGet, path, nil, &res, opts...)
	return
}

// Update the specified project. Only the fields set in body are changed.
func (r *ProjectService) Update(ctx context.Context, projectID string, body ProjectUpdateParams, opts ...option.RequestOption) (res *Project, err error) {
	opts = slices.Concat(r.Options, []option.RequestOption{analytics("updateProject")}, opts)
	if err = param.RequirePath("project_id", projectID); err != nil {
		return
	}
	path := fmt.Sprintf("v2/projects/%s", url.PathEscape(projectID))
	err = requestconfig.ExecuteNewRequest(ctx, http.MethodPost, path, body, &res, opts...)
	return
}

// Delete the specified project and everything it contains.
func (r *ProjectService) Delete(ctx context.Context, projectID string, opts ...option.RequestOption) (err error) {
	opts = slices.Concat(r.Options, []option.RequestOption{analytics("deleteProject")}, opts)
	if err = param.RequirePath("project_id", projectID); err != nil {
		return
	}
	path := fmt.Sprintf("v2/projects/%s", url.PathEscape(projectID))
	err = requestconfig.ExecuteNewRequest(ctx, http.MethodDelete, path, nil, nil, opts...)
	return
}

type Project struct {
	ProjectID string      `json:"project_id"`
	Name      string      `json:"name"`
	Type      ProjectType `json:"type"`
	// Relevancy training status information for the project.
	RelevancyTrainingStatus ProjectRelevancyTrainingStatus `json:"relevancy_training_status"`
	CollectionCount         int64                          `json:"collection_count"`
	DefaultQueryParameters  DefaultQueryParams             `json:"default_query_parameters"`
	JSON                    projectJSON                    `json:"-"`
}

// projectJSON contains the JSON metadata for the struct [Project]
type projectJSON struct {
	ProjectID               apijson.Field
	Name                    apijson.Field
	Type                    apijson.Field
	RelevancyTrainingStatus apijson.Field
	CollectionCount         apijson.Field
	DefaultQueryParameters  apijson.Field
	raw                     string
	ExtraFields             map[string]apijson.Field
}

func (r *Project) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r projectJSON) RawJSON() string {
	return r.raw
}

type ProjectType string

const (
	ProjectTypeIntelligentDocumentProcessing ProjectType = "intelligent_document_processing"
	ProjectTypeDocumentRetrieval             ProjectType = "document_retrieval"
	ProjectTypeConversationalSearch          ProjectType = "conversational_search"
	ProjectTypeContentMining                 ProjectType = "content_mining"
	ProjectTypeContentIntelligence           ProjectType = "content_intelligence"
	ProjectTypeOther                         ProjectType = "other"
)

func (r ProjectType) IsKnown() bool {
	switch r {
	case ProjectTypeIntelligentDocumentProcessing, ProjectTypeDocumentRetrieval,
		ProjectTypeConversationalSearch, ProjectTypeContentMining,
		ProjectTypeContentIntelligence, ProjectTypeOther:
		return true
	}
	return false
}

type ProjectRelevancyTrainingStatus struct {
	DataUpdated              string                             `json:"data_updated"`
	TotalExamples            int64                              `json:"total_examples"`
	SufficientLabelDiversity bool                               `json:"sufficient_label_diversity"`
	Processing               bool                               `json:"processing"`
	MinimumExamplesAdded     bool                               `json:"minimum_examples_added"`
	SuccessfullyTrained      string                             `json:"successfully_trained"`
	Available                bool                               `json:"available"`
	Notices                  int64                              `json:"notices"`
	MinimumQueriesAdded      bool                               `json:"minimum_queries_added"`
	JSON                     projectRelevancyTrainingStatusJSON `json:"-"`
}

// projectRelevancyTrainingStatusJSON contains the JSON metadata for the
// struct [ProjectRelevancyTrainingStatus]
type projectRelevancyTrainingStatusJSON struct {
	DataUpdated              apijson.Field
	TotalExamples            apijson.Field
	SufficientLabelDiversity apijson.Field
	Processing               apijson.Field
	MinimumExamplesAdded     apijson.Field
	SuccessfullyTrained      apijson.Field
	Available                apijson.Field
	Notices                  apijson.Field
	MinimumQueriesAdded      apijson.Field
	raw                      string
	ExtraFields              map[string]apijson.Field
}

func (r *ProjectRelevancyTrainingStatus) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r projectRelevancyTrainingStatusJSON) RawJSON() string {
	return r.raw
}

// DefaultQueryParams are applied to every query of a project unless the
// query overrides them.
type DefaultQueryParams struct {
	CollectionIDs []string                   `json:"collection_ids"`
	Passages      DefaultQueryParamsPassages `json:"passages"`
	Aggregation   string                     `json:"aggregation"`
	Count         int64                      `json:"count"`
	Sort          string                     `json:"sort"`
	Return        []string                   `json:"return"`
	JSON          defaultQueryParamsJSON     `json:"-"`
}

// defaultQueryParamsJSON contains the JSON metadata for the struct
// [DefaultQueryParams]
type defaultQueryParamsJSON struct {
	CollectionIDs apijson.Field
	Passages      apijson.Field
	Aggregation   apijson.Field
	Count         apijson.Field
	Sort          apijson.Field
	Return        apijson.Field
	raw           string
	ExtraFields   map[string]apijson.Field
}

func (r *DefaultQueryParams) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r defaultQueryParamsJSON) RawJSON() string {
	return r.raw
}

type DefaultQueryParamsPassages struct {
	Enabled        bool                           `json:"enabled"`
	Count          int64                          `json:"count"`
	Fields         []string                       `json:"fields"`
	Characters     int64                          `json:"characters"`
	PerDocument    bool                           `json:"per_document"`
	MaxPerDocument int64                          `json:"max_per_document"`
	JSON           defaultQueryParamsPassagesJSON `json:"-"`
}

// defaultQueryParamsPassagesJSON contains the JSON metadata for the struct
// [DefaultQueryParamsPassages]
type defaultQueryParamsPassagesJSON struct {
	Enabled        apijson.Field
	Count          apijson.Field
	Fields         apijson.Field
	Characters     apijson.Field
	PerDocument    apijson.Field
	MaxPerDocument apijson.Field
	raw            string
	ExtraFields    map[string]apijson.Field
}

func (r *DefaultQueryParamsPassages) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r defaultQueryParamsPassagesJSON) RawJSON() string {
	return r.raw
}

type ProjectList struct {
	Projects []Project       `json:"projects"`
	JSON     projectListJSON `json:"-"`
}

// projectListJSON contains the JSON metadata for the struct [ProjectList]
type projectListJSON struct {
	Projects    apijson.Field
	raw         string
	ExtraFields map[string]apijson.Field
}

func (r *ProjectList) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r projectListJSON) RawJSON() string {
	return r.raw
}

type ProjectNewParams struct {
	// The human readable name of this project.
	Name                   param.Field[string]                  `json:"name,required"`
	Type                   param.Field[ProjectType]             `json:"type,required"`
	DefaultQueryParameters param.Field[DefaultQueryParamsParam] `json:"default_query_parameters"`
}

func (r ProjectNewParams) MarshalJSON() (data []byte, err error) {
	return apijson.MarshalRoot(r)
}

// ProjectUpdateParams renames a project.
type ProjectUpdateParams struct {
	Name param.Field[string] `json:"name"`
}

// AsPatch returns the merge patch sent by [ProjectService.Update].
func (r ProjectUpdateParams) AsPatch() apijson.Patch {
	return apijson.ToPatch(r)
}

func (r ProjectUpdateParams) MarshalJSON() (data []byte, err error) {
	return r.AsPatch().MarshalJSON()
}

type DefaultQueryParamsParam struct {
	CollectionIDs param.Field[[]string]                        `json:"collection_ids"`
	Passages      param.Field[DefaultQueryParamsPassagesParam] `json:"passages"`
	Aggregation   param.Field[string]                          `json:"aggregation"`
	Count         param.Field[int64]                           `json:"count" validate:"gte=0"`
	Sort          param.Field[string]                          `json:"sort"`
	Return        param.Field[[]string]                        `json:"return"`
}

func (r DefaultQueryParamsParam) MarshalJSON() (data []byte, err error) {
	return apijson.MarshalRoot(r)
}

type DefaultQueryParamsPassagesParam struct {
	Enabled        param.Field[bool]     `json:"enabled"`
	Count          param.Field[int64]    `json:"count" validate:"gte=0"`
	Fields         param.Field[[]string] `json:"fields"`
	Characters     param.Field[int64]    `json:"characters" validate:"gte=0"`
	PerDocument    param.Field[bool]     `json:"per_document"`
	MaxPerDocument param.Field[int64]    `json:"max_per_document" validate:"gte=0"`
}

func (r DefaultQueryParamsPassagesParam) MarshalJSON() (data []byte, err error) {
	return apijson.MarshalRoot(r)
}
