package assistantv1

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

// WorkspaceService contains methods and other services that help with
// interacting with Watson Assistant workspaces.
//
// You should not instantiate this service directly, and instead use the
// [NewWorkspaceService] method instead.
type WorkspaceService struct {
	Options []option.RequestOption
}

// NewWorkspaceService generates a new service that applies the given options
// to each request. These options are applied after the parent client's
// options (if there is one), and before any request-specific options.
func NewWorkspaceService(opts ...option.RequestOption) (r *WorkspaceService) {
	r = &WorkspaceService{}
	r.Options = opts
	return
}

// List the workspaces associated with the service instance.
func (r *WorkspaceService) List(ctx context.Context, query WorkspaceListParams, opts ...option.RequestOption) (res *WorkspaceCollection, err error) {
	opts = slices.Concat(r.Options, []option.RequestOption{analytics("listWorkspaces")}, opts)
	path := "v1/workspaces"
	err = requestconfig.ExecuteNewRequest(ctx, http.MethodGet, path, query, &res, opts...)
	return
}

// Create a workspace based on component objects. You must provide workspace
// components defining the content of the new workspace.
func (r *WorkspaceService) New(ctx context.Context, body WorkspaceNewParams, opts ...option.RequestOption) (res *Workspace, err error) {
	opts = slices.Concat(r.Options, []option.RequestOption{analytics("createWorkspace")}, opts)
	path := "v1/workspaces"
	err = requestconfig.ExecuteNewRequest(ctx, http.MethodPost, path, body, &res, opts...)
	return
}

// Get information about a workspace, optionally including all workspace
// content.
func (r *WorkspaceService) Get(ctx context.Context, workspaceID string, query WorkspaceGetParams, opts ...option.RequestOption) (res *Workspace, err error) {
	opts = slices.Concat(r.Options, []option.RequestOption{analytics("getWorkspace")}, opts)
	if err = param.RequirePath("workspace_id", workspaceID); err != nil {
		return
	}
	path := fmt.Sprintf("v1/workspaces/%s", url.PathEscape(workspaceID))
	err = requestconfig.ExecuteNewRequest(ctx, http.MethodGet, path, query, &res, opts...)
	return
}

// Update an existing workspace. The body is the merge patch of body: fields
// never set are left untouched and fields set to null are cleared.
func (r *WorkspaceService) Update(ctx context.Context, workspaceID string, body WorkspaceUpdateParams, opts ...option.RequestOption) (res *Workspace, err error) {
	opts = slices.Concat(r.Options, []option.RequestOption{analytics("updateWorkspace")}, opts)
	if err = param.RequirePath("workspace_id", workspaceID); err != nil {
		return
	}
	path := fmt.Sprintf("v1/workspaces/%s", url.PathEscape(workspaceID))
	err = requestconfig.ExecuteNewRequest(ctx, http.MethodPost, path, body, &res, opts...)
	return
}

// Delete a workspace from the service instance.
func (r *WorkspaceService) Delete(ctx context.Context, workspaceID string, opts ...option.RequestOption) (err error) {
	opts = slices.Concat(r.Options, []option.RequestOption{analytics("deleteWorkspace")}, opts)
	if err = param.RequirePath("workspace_id", workspaceID); err != nil {
		return
	}
	path := fmt.Sprintf("v1/workspaces/%s", url.PathEscape(workspaceID))
	err = requestconfig.ExecuteNewRequest(ctx, http.MethodDelete, path, nil, nil, opts...)
	return
}

type Workspace struct {
	// The name of the workspace.
	Name string `json:"name,required"`
	// The description of the workspace.
	Description string `json:"description"`
	// The language of the workspace.
	Language string `json:"language,required"`
	// The workspace ID of the workspace.
	WorkspaceID     string           `json:"workspace_id"`
	DialogNodes     []DialogNode     `json:"dialog_nodes"`
	Counterexamples []Counterexample `json:"counterexamples"`
	Created         time.Time        `json:"created" format:"date-time"`
	Updated         time.Time        `json:"updated" format:"date-time"`
	Metadata        map[string]any   `json:"metadata"`
	// Whether training data from the workspace (including artifacts such as
	// intents and entities) can be used by IBM for general service
	// improvements.
	LearningOptOut bool                    `json:"learning_opt_out,required"`
	SystemSettings WorkspaceSystemSettings `json:"system_settings"`
	Status         WorkspaceStatus         `json:"status"`
	Webhooks       []Webhook               `json:"webhooks"`
	Intents        []Intent                `json:"intents"`
	JSON           workspaceJSON           `json:"-"`
}

// workspaceJSON contains the JSON metadata for the struct [Workspace]
type workspaceJSON struct {
	Name            apijson.Field
	Description     apijson.Field
	Language        apijson.Field
	WorkspaceID     apijson.Field
	DialogNodes     apijson.Field
	Counterexamples apijson.Field
	Created         apijson.Field
	Updated         apijson.Field
	Metadata        apijson.Field
	LearningOptOut  apijson.Field
	SystemSettings  apijson.Field
	Status          apijson.Field
	Webhooks        apijson.Field
	Intents         apijson.Field
	raw             string
	ExtraFields     map[string]apijson.Field
}

func (r *Workspace) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r workspaceJSON) RawJSON() string {
	return r.raw
}

type WorkspaceStatus string

const (
	WorkspaceStatusAvailable   WorkspaceStatus = "Available"
	WorkspaceStatusFailed      WorkspaceStatus = "Failed"
	WorkspaceStatusNonExistent WorkspaceStatus = "Non Existent"
	WorkspaceStatusProcessing  WorkspaceStatus = "Processing"
	WorkspaceStatusTraining    WorkspaceStatus = "Training"
	WorkspaceStatusUnavailable WorkspaceStatus = "Unavailable"
)

func (r WorkspaceStatus) IsKnown() bool {
	switch r {
	case WorkspaceStatusAvailable, WorkspaceStatusFailed, WorkspaceStatusNonExistent,
		WorkspaceStatusProcessing, WorkspaceStatusTraining, WorkspaceStatusUnavailable:
		return true
	}
	return false
}

// Counterexample is an input that should not match any intent.
type Counterexample struct {
	Text    string             `json:"text,required"`
	Created time.Time          `json:"created" format:"date-time"`
	Updated time.Time          `json:"updated" format:"date-time"`
	JSON    counterexampleJSON `json:"-"`
}

// counterexampleJSON contains the JSON metadata for the struct
// [Counterexample]
type counterexampleJSON struct {
	Text        apijson.Field
	Created     apijson.Field
	Updated     apijson.Field
	raw         string
	ExtraFields map[string]apijson.Field
}

func (r *Counterexample) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r counterexampleJSON) RawJSON() string {
	return r.raw
}

// WorkspaceSystemSettings holds global settings for the workspace.
type WorkspaceSystemSettings struct {
	Tooling             WorkspaceSystemSettingsTooling        `json:"tooling"`
	Disambiguation      WorkspaceSystemSettingsDisambiguation `json:"disambiguation"`
	HumanAgentAssist    map[string]any                        `json:"human_agent_assist"`
	SpellingSuggestions bool                                  `json:"spelling_suggestions"`
	SpellingAutoCorrect bool                                  `json:"spelling_auto_correct"`
	SystemEntities      WorkspaceSystemSettingsToggle         `json:"system_entities"`
	OffTopic            WorkspaceSystemSettingsToggle         `json:"off_topic"`
	JSON                workspaceSystemSettingsJSON           `json:"-"`
}

// workspaceSystemSettingsJSON contains the JSON metadata for the struct
// [WorkspaceSystemSettings]
type workspaceSystemSettingsJSON struct {
	Tooling             apijson.Field
	Disambiguation      apijson.Field
	HumanAgentAssist    apijson.Field
	SpellingSuggestions apijson.Field
	SpellingAutoCorrect apijson.Field
	SystemEntities      apijson.Field
	OffTopic            apijson.Field
	raw                 string
	ExtraFields         map[string]apijson.Field
}

func (r *WorkspaceSystemSettings) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r workspaceSystemSettingsJSON) RawJSON() string {
	return r.raw
}

type WorkspaceSystemSettingsTooling struct {
	// Whether the dialog JSON editor displays text responses within the
	// output.generic object.
	StoreGenericResponses bool                               `json:"store_generic_responses"`
	JSON                  workspaceSystemSettingsToolingJSON `json:"-"`
}

// workspaceSystemSettingsToolingJSON contains the JSON metadata for the
// struct [WorkspaceSystemSettingsTooling]
type workspaceSystemSettingsToolingJSON struct {
	StoreGenericResponses apijson.Field
	raw                   string
	ExtraFields           map[string]apijson.Field
}

func (r *WorkspaceSystemSettingsTooling) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r workspaceSystemSettingsToolingJSON) RawJSON() string {
	return r.raw
}

type WorkspaceSystemSettingsDisambiguation struct {
	Prompt               string                                           `json:"prompt"`
	NoneOfTheAbovePrompt string                                           `json:"none_of_the_above_prompt"`
	Enabled              bool                                             `json:"enabled"`
	Sensitivity          WorkspaceSystemSettingsDisambiguationSensitivity `json:"sensitivity"`
	Randomize            bool                                             `json:"randomize"`
	MaxSuggestions       int64                                            `json:"max_suggestions"`
	SuggestionTextPolicy string                                           `json:"suggestion_text_policy"`
	JSON                 workspaceSystemSettingsDisambiguationJSON        `json:"-"`
}

// workspaceSystemSettingsDisambiguationJSON contains the JSON metadata for
// the struct [WorkspaceSystemSettingsDisambiguation]
type workspaceSystemSettingsDisambiguationJSON struct {
	Prompt               apijson.Field
	NoneOfTheAbovePrompt apijson.Field
	Enabled              apijson.Field
	Sensitivity          apijson.Field
	Randomize            apijson.Field
	MaxSuggestions       apijson.Field
	SuggestionTextPolicy apijson.Field
	raw                  string
	ExtraFields          map[string]apijson.Field
}

func (r *WorkspaceSystemSettingsDisambiguation) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r workspaceSystemSettingsDisambiguationJSON) RawJSON() string {
	return r.raw
}

type WorkspaceSystemSettingsDisambiguationSensitivity string

const (
	WorkspaceSystemSettingsDisambiguationSensitivityAuto       WorkspaceSystemSettingsDisambiguationSensitivity = "auto"
	WorkspaceSystemSettingsDisambiguationSensitivityHigh       WorkspaceSystemSettingsDisambiguationSensitivity = "high"
	WorkspaceSystemSettingsDisambiguationSensitivityMediumHigh WorkspaceSystemSettingsDisambiguationSensitivity = "medium_high"
	WorkspaceSystemSettingsDisambiguationSensitivityMedium     WorkspaceSystemSettingsDisambiguationSensitivity = "medium"
	WorkspaceSystemSettingsDisambiguationSensitivityMediumLow  WorkspaceSystemSettingsDisambiguationSensitivity = "medium_low"
	WorkspaceSystemSettingsDisambiguationSensitivityLow        WorkspaceSystemSettingsDisambiguationSensitivity = "low"
)

func (r WorkspaceSystemSettingsDisambiguationSensitivity) IsKnown() bool {
	switch r {
	case WorkspaceSystemSettingsDisambiguationSensitivityAuto, WorkspaceSystemSettingsDisambiguationSensitivityHigh,
		WorkspaceSystemSettingsDisambiguationSensitivityMediumHigh, WorkspaceSystemSettingsDisambiguationSensitivityMedium,
		WorkspaceSystemSettingsDisambiguationSensitivityMediumLow, WorkspaceSystemSettingsDisambiguationSensitivityLow:
		return true
	}
	return false
}

// WorkspaceSystemSettingsToggle is a setting that is either on or off.
type WorkspaceSystemSettingsToggle struct {
	Enabled bool                              `json:"enabled"`
	JSON    workspaceSystemSettingsToggleJSON `json:"-"`
}

// workspaceSystemSettingsToggleJSON contains the JSON metadata for the
// struct [WorkspaceSystemSettingsToggle]
type workspaceSystemSettingsToggleJSON struct {
	Enabled     apijson.Field
	raw         string
	ExtraFields map[string]apijson.Field
}

func (r *WorkspaceSystemSettingsToggle) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r workspaceSystemSettingsToggleJSON) RawJSON() string {
	return r.raw
}

// Webhook is called by dialog nodes with a webhook action.
type Webhook struct {
	URL     string          `json:"url,required"`
	Name    string          `json:"name,required"`
	Headers []WebhookHeader `json:"headers"`
	JSON    webhookJSON     `json:"-"`
}

// webhookJSON contains the JSON metadata for the struct [Webhook]
type webhookJSON struct {
	URL         apijson.Field
	Name        apijson.Field
	Headers     apijson.Field
	raw         string
	ExtraFields map[string]apijson.Field
}

func (r *Webhook) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r webhookJSON) RawJSON() string {
	return r.raw
}

type WebhookHeader struct {
	Name  string            `json:"name,required"`
	Value string            `json:"value,required"`
	JSON  webhookHeaderJSON `json:"-"`
}

// webhookHeaderJSON contains the JSON metadata for the struct [WebhookHeader]
type webhookHeaderJSON struct {
	Name        apijson.Field
	Value       apijson.Field
	raw         string
	ExtraFields map[string]apijson.Field
}

func (r *WebhookHeader) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r webhookHeaderJSON) RawJSON() string {
	return r.raw
}

type WorkspaceCollection struct {
	Workspaces []Workspace             `json:"workspaces,required"`
	Pagination Pagination              `json:"pagination,required"`
	JSON       workspaceCollectionJSON `json:"-"`
}

// workspaceCollectionJSON contains the JSON metadata for the struct
// [WorkspaceCollection]
type workspaceCollectionJSON struct {
	Workspaces  apijson.Field
	Pagination  apijson.Field
	raw         string
	ExtraFields map[string]apijson.Field
}

func (r *WorkspaceCollection) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r workspaceCollectionJSON) RawJSON() string {
	return r.raw
}

type CounterexampleParam struct {
	Text param.Field[string] `json:"text,required" validate:"max=1024"`
}

func (r CounterexampleParam) MarshalJSON() (data []byte, err error) {
	return apijson.MarshalRoot(r)
}

type WorkspaceSystemSettingsParam struct {
	Tooling             param.Field[WorkspaceSystemSettingsToolingParam]        `json:"tooling"`
	Disambiguation      param.Field[WorkspaceSystemSettingsDisambiguationParam] `json:"disambiguation"`
	HumanAgentAssist    param.Field[map[string]any]                             `json:"human_agent_assist"`
	SpellingSuggestions param.Field[bool]                                       `json:"spelling_suggestions"`
	SpellingAutoCorrect param.Field[bool]                                       `json:"spelling_auto_correct"`
	SystemEntities      param.Field[WorkspaceSystemSettingsToggleParam]         `json:"system_entities"`
	OffTopic            param.Field[WorkspaceSystemSettingsToggleParam]         `json:"off_topic"`
}

func (r WorkspaceSystemSettingsParam) MarshalJSON() (data []byte, err error) {
	return apijson.MarshalRoot(r)
}

type WorkspaceSystemSettingsToolingParam struct {
	StoreGenericResponses param.Field[bool] `json:"store_generic_responses"`
}

func (r WorkspaceSystemSettingsToolingParam) MarshalJSON() (data []byte, err error) {
	return apijson.MarshalRoot(r)
}

type WorkspaceSystemSettingsDisambiguationParam struct {
	Prompt               param.Field[string]                                           `json:"prompt"`
	NoneOfTheAbovePrompt param.Field[string]                                           `json:"none_of_the_above_prompt"`
	Enabled              param.Field[bool]                                             `json:"enabled"`
	Sensitivity          param.Field[WorkspaceSystemSettingsDisambiguationSensitivity] `json:"sensitivity"`
	Randomize            param.Field[bool]                                             `json:"randomize"`
	MaxSuggestions       param.Field[int64]                                            `json:"max_suggestions" validate:"gte=1,lte=5"`
	SuggestionTextPolicy param.Field[string]                                           `json:"suggestion_text_policy"`
}

func (r WorkspaceSystemSettingsDisambiguationParam) MarshalJSON() (data []byte, err error) {
	return apijson.MarshalRoot(r)
}

type WorkspaceSystemSettingsToggleParam struct {
	Enabled param.Field[bool] `json:"enabled"`
}

func (r WorkspaceSystemSettingsToggleParam) MarshalJSON() (data []byte, err error) {
	return apijson.MarshalRoot(r)
}

type WebhookParam struct {
	URL     param.Field[string]               `json:"url,required" validate:"url"`
	Name    param.Field[string]               `json:"name,required" validate:"max=64"`
	Headers param.Field[[]WebhookHeaderParam] `json:"headers"`
}

func (r WebhookParam) MarshalJSON() (data []byte, err error) {
	return apijson.MarshalRoot(r)
}

type WebhookHeaderParam struct {
	Name  param.Field[string] `json:"name,required"`
	Value param.Field[string] `json:"value,required"`
}

func (r WebhookHeaderParam) MarshalJSON() (data []byte, err error) {
	return apijson.MarshalRoot(r)
}

type WorkspaceListParams struct {
	// The number of records to return in each page of results.
	PageLimit    param.Field[int64]    `query:"page_limit" validate:"gte=1"`
	IncludeCount param.Field[bool]     `query:"include_count"`
	Sort         param.Field[ListSort] `query:"sort"`
	Cursor       param.Field[string]   `query:"cursor"`
	IncludeAudit param.Field[bool]     `query:"include_audit"`
}

// URLQuery serializes [WorkspaceListParams]'s query parameters as
// `url.Values`.
func (r WorkspaceListParams) URLQuery() (v url.Values) {
	return urlQuery(r)
}

type WorkspaceGetParams struct {
	// Whether to include all element content in the returned data.
	Export       param.Field[bool]   `query:"export"`
	IncludeAudit param.Field[bool]   `query:"include_audit"`
	Sort         param.Field[string] `query:"sort" validate:"oneof=stable"`
}

// URLQuery serializes [WorkspaceGetParams]'s query parameters as
// `url.Values`.
func (r WorkspaceGetParams) URLQuery() (v url.Values) {
	return urlQuery(r)
}

type WorkspaceNewParams struct {
	Name            param.Field[string]                       `json:"name" validate:"max=64"`
	Description     param.Field[string]                       `json:"description" validate:"max=128"`
	Language        param.Field[string]                       `json:"language"`
	DialogNodes     param.Field[[]DialogNodeParam]            `json:"dialog_nodes"`
	Counterexamples param.Field[[]CounterexampleParam]        `json:"counterexamples"`
	Metadata        param.Field[map[string]any]               `json:"metadata"`
	LearningOptOut  param.Field[bool]                         `json:"learning_opt_out"`
	SystemSettings  param.Field[WorkspaceSystemSettingsParam] `json:"system_settings"`
	Webhooks        param.Field[[]WebhookParam]               `json:"webhooks"`
	Intents         param.Field[[]IntentParam]                `json:"intents"`
	IncludeAudit    param.Field[bool]                         `query:"include_audit"`
}

func (r WorkspaceNewParams) MarshalJSON() (data []byte, err error) {
	return apijson.MarshalRoot(r)
}

// URLQuery serializes [WorkspaceNewParams]'s query parameters as
// `url.Values`.
func (r WorkspaceNewParams) URLQuery() (v url.Values) {
	return urlQuery(r)
}

// WorkspaceUpdateParams changes a workspace. Every field is optional; see
// [WorkspaceService.Update].
type WorkspaceUpdateParams struct {
	Name            param.Field[string]                       `json:"name" validate:"max=64"`
	Description     param.Field[string]                       `json:"description" validate:"max=128"`
	Language        param.Field[string]                       `json:"language"`
	DialogNodes     param.Field[[]DialogNodeParam]            `json:"dialog_nodes"`
	Counterexamples param.Field[[]CounterexampleParam]        `json:"counterexamples"`
	Metadata        param.Field[map[string]any]               `json:"metadata"`
	LearningOptOut  param.Field[bool]                         `json:"learning_opt_out"`
	SystemSettings  param.Field[WorkspaceSystemSettingsParam] `json:"system_settings"`
	Webhooks        param.Field[[]WebhookParam]               `json:"webhooks"`
	Intents         param.Field[[]IntentParam]                `json:"intents"`
	// Whether the new data is to be appended to the existing data in the
	// object. If false, elements sent replace the existing ones of the same
	// type.
	Append       param.Field[bool] `query:"append"`
	IncludeAudit param.Field[bool] `query:"include_audit"`
}

// AsPatch returns the merge patch sent by [WorkspaceService.Update].
func (r WorkspaceUpdateParams) AsPatch() apijson.Patch {
	return apijson.ToPatch(r)
}

func (r WorkspaceUpdateParams) MarshalJSON() (data []byte, err error) {
	return r.AsPatch().MarshalJSON()
}

// URLQuery serializes [WorkspaceUpdateParams]'s query parameters as
// `url.Values`.
func (r WorkspaceUpdateParams) URLQuery() (v url.Values) {
	return urlQuery(r)
}
