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

// IntentService contains methods and other services that help with
// interacting with the intents of a workspace.
//
// You should not instantiate this service directly, and instead use the
// [NewIntentService] method instead.
type IntentService struct {
	Options []option.RequestOption
}

// NewIntentService generates a new service that applies the given options to
// each request. These options are applied after the parent client's options
// (if there is one), and before any request-specific options.
func NewIntentService(opts ...option.RequestOption) (r *IntentService) {
	r = &IntentService{}
	r.Options = opts
	return
}

// List the intents of a workspace.
func (r *IntentService) List(ctx context.Context, workspaceID string, query IntentListParams, opts ...option.RequestOption) (res *IntentCollection, err error) {
	opts = slices.Concat(r.Options, []option.RequestOption{analytics("listIntents")}, opts)
	if err = param.RequirePath("workspace_id", workspaceID); err != nil {
		return
	}
	path := fmt.Sprintf("v1/workspaces/%s/intents", url.PathEscape(workspaceID))
	err = requestconfig.ExecuteNewRequest(ctx, http.MethodGet, path, query, &res, opts...)
	return
}

// Create an intent.
func (r *IntentService) New(ctx context.Context, workspaceID string, body IntentNewParams, opts ...option.RequestOption) (res *Intent, err error) {
	opts = slices.Concat(r.Options, []option.RequestOption{analytics("createIntent")}, opts)
	if err = param.RequirePath("workspace_id", workspaceID); err != nil {
		return
	}
	path := fmt.Sprintf("v1/workspaces/%s/intents", url.PathEscape(workspaceID))
	err = requestconfig.ExecuteNewRequest(ctx, http.MethodPost, path, body, &res, opts...)
	return
}

// Get information about an intent, optionally including all intent
// content.
func (r *IntentService) Get(ctx context.Context, workspaceID string, intent string, query IntentGetParams, opts ...option.RequestOption) (res *Intent, err error) {
	opts = slices.Concat(r.Options, []option.RequestOption{analytics("getIntent")}, opts)
	if err = param.RequirePath("workspace_id", workspaceID); err != nil {
		return
	}
	if err = param.RequirePath("intent", intent); err != nil {
		return
	}
	path := fmt.Sprintf("v1/workspaces/%s/intents/%s", url.PathEscape(workspaceID), url.PathEscape(intent))
	err = requestconfig.ExecuteNewRequest(ctx, http.MethodGet, path, query, &res, opts...)
	return
}

// Update an existing intent with new or modified data. Only the fields set
// in body are changed.
//
// If Append is not set to true, the examples sent replace the existing
// ones.
func (r *IntentService) Update(ctx context.Context, workspaceID string, intent string, body IntentUpdateParams, opts ...option.RequestOption) (res *Intent, err error) {
	opts = slices.Concat(r.Options, []option.RequestOption{analytics("updateIntent")}, opts)
	if err = param.RequirePath("workspace_id", workspaceID); err != nil {
		return
	}
	if err = param.RequirePath("intent", intent); err != nil {
		return
	}
	path := fmt.Sprintf("v1/workspaces/%s/intents/%s", url.PathEscape(workspaceID), url.PathEscape(intent))
	err = requestconfig.ExecuteNewRequest(ctx, http.MethodPost, path, body, &res, opts...)
	return
}

// Delete an intent from a workspace.
func (r *IntentService) Delete(ctx context.Context, workspaceID string, intent string, opts ...option.RequestOption) (err error) {
	opts = slices.Concat(r.Options, []option.RequestOption{analytics("deleteIntent")}, opts)
	if err = param.RequirePath("workspace_id", workspaceID); err != nil {
		return
	}
	if err = param.RequirePath("intent", intent); err != nil {
		return
	}
	path := fmt.Sprintf("v1/workspaces/%s/intents/%s", url.PathEscape(workspaceID), url.PathEscape(intent))
	err = requestconfig.ExecuteNewRequest(ctx, http.MethodDelete, path, nil, nil, opts...)
	return
}

type Intent struct {
	// The name of the intent.
	Intent      string     `json:"intent,required"`
	Description string     `json:"description"`
	Created     time.Time  `json:"created" format:"date-time"`
	Updated     time.Time  `json:"updated" format:"date-time"`
	Examples    []Example  `json:"examples"`
	JSON        intentJSON `json:"-"`
}

// intentJSON contains the JSON metadata for the struct [Intent]
type intentJSON struct {
	Intent      apijson.Field
	Description apijson.Field
	Created     apijson.Field
	Updated     apijson.Field
	Examples    apijson.Field
	raw         string
	ExtraFields map[string]apijson.Field
}

func (r *Intent) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r intentJSON) RawJSON() string {
	return r.raw
}

// Example is a user input example of an intent.
type Example struct {
	Text     string      `json:"text,required"`
	Mentions []Mention   `json:"mentions"`
	Created  time.Time   `json:"created" format:"date-time"`
	Updated  time.Time   `json:"updated" format:"date-time"`
	JSON     exampleJSON `json:"-"`
}

// exampleJSON contains the JSON metadata for the struct [Example]
type exampleJSON struct {
	Text        apijson.Field
	Mentions    apijson.Field
	Created     apijson.Field
	Updated     apijson.Field
	raw         string
	ExtraFields map[string]apijson.Field
}

func (r *Example) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r exampleJSON) RawJSON() string {
	return r.raw
}

// Mention is an annotated entity mention in an example.
type Mention struct {
	Entity   string      `json:"entity,required"`
	Location []int64     `json:"location,required"`
	JSON     mentionJSON `json:"-"`
}

// mentionJSON contains the JSON metadata for the struct [Mention]
type mentionJSON struct {
	Entity      apijson.Field
	Location    apijson.Field
	raw         string
	ExtraFields map[string]apijson.Field
}

func (r *Mention) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r mentionJSON) RawJSON() string {
	return r.raw
}

type IntentCollection struct {
	Intents    []Intent             `json:"intents,required"`
	Pagination Pagination           `json:"pagination,required"`
	JSON       intentCollectionJSON `json:"-"`
}

// intentCollectionJSON contains the JSON metadata for the struct
// [IntentCollection]
type intentCollectionJSON struct {
	Intents     apijson.Field
	Pagination  apijson.Field
	raw         string
	ExtraFields map[string]apijson.Field
}

func (r *IntentCollection) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r intentCollectionJSON) RawJSON() string {
	return r.raw
}

// IntentParam describes an intent to create, on its own or as part of a
// workspace.
type IntentParam struct {
	// The name of the intent. It can contain only Unicode alphanumeric,
	// underscore, hyphen, and dot characters, and cannot begin with the
	// string "sys-".
	Intent      param.Field[string]         `json:"intent,required" validate:"max=128"`
	Description param.Field[string]         `json:"description" validate:"max=128"`
	Examples    param.Field[[]ExampleParam] `json:"examples"`
}

func (r IntentParam) MarshalJSON() (data []byte, err error) {
	return apijson.MarshalRoot(r)
}

type ExampleParam struct {
	Text     param.Field[string]         `json:"text,required" validate:"max=1024"`
	Mentions param.Field[[]MentionParam] `json:"mentions"`
}

func (r ExampleParam) MarshalJSON() (data []byte, err error) {
	return apijson.MarshalRoot(r)
}

type MentionParam struct {
	Entity   param.Field[string]  `json:"entity,required"`
	Location param.Field[[]int64] `json:"location,required" validate:"len=2"`
}

func (r MentionParam) MarshalJSON() (data []byte, err error) {
	return apijson.MarshalRoot(r)
}

type IntentListParams struct {
	// Whether to include all element content in the returned data.
	Export       param.Field[bool]     `query:"export"`
	PageLimit    param.Field[int64]    `query:"page_limit" validate:"gte=1"`
	IncludeCount param.Field[bool]     `query:"include_count"`
	Sort         param.Field[ListSort] `query:"sort"`
	Cursor       param.Field[string]   `query:"cursor"`
	IncludeAudit param.Field[bool]     `query:"include_audit"`
}

// URLQuery serializes [IntentListParams]'s query parameters as `url.Values`.
func (r IntentListParams) URLQuery() (v url.Values) {
	return urlQuery(r)
}

type IntentGetParams struct {
	Export       param.Field[bool] `query:"export"`
	IncludeAudit param.Field[bool] `query:"include_audit"`
}

// URLQuery serializes [IntentGetParams]'s query parameters as `url.Values`.
func (r IntentGetParams) URLQuery() (v url.Values) {
	return urlQuery(r)
}

type IntentNewParams struct {
	IntentParam
	IncludeAudit param.Field[bool] `query:"include_audit"`
}

func (r IntentNewParams) MarshalJSON() (data []byte, err error) {
	return apijson.MarshalRoot(r)
}

// URLQuery serializes [IntentNewParams]'s query parameters as `url.Values`.
func (r IntentNewParams) URLQuery() (v url.Values) {
	return urlQuery(r)
}

// IntentUpdateParams changes an intent. Every field is optional.
type IntentUpdateParams struct {
	Intent      param.Field[string]         `json:"intent" validate:"max=128"`
	Description param.Field[string]         `json:"description" validate:"max=128"`
	Examples    param.Field[[]ExampleParam] `json:"examples"`
	// Whether the new data is to be appended to the existing data in the
	// object.
	Append       param.Field[bool] `query:"append"`
	IncludeAudit param.Field[bool] `query:"include_audit"`
}

// AsPatch returns the merge patch sent by [IntentService.Update].
func (r IntentUpdateParams) AsPatch() apijson.Patch {
	return apijson.ToPatch(r)
}

func (r IntentUpdateParams) MarshalJSON() (data []byte, err error) {
	return r.AsPatch().MarshalJSON()
}

// URLQuery serializes [IntentUpdateParams]'s query parameters as
// `url.Values`.
func (r IntentUpdateParams) URLQuery() (v url.Values) {
	return urlQuery(r)
}
