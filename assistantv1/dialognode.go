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

// DialogNodeService contains methods and other services that help with
// interacting with the dialog nodes of a workspace.
//
// You should not instantiate this service directly, and instead use the
// [NewDialogNodeService] method instead.
type DialogNodeService struct {
	Options []option.RequestOption
}

// NewDialogNodeService generates a new service that applies the given
// options to each request. These options are applied after the parent
// client's options (if there is one), and before any request-specific
// options.
func NewDialogNodeService(opts ...option.RequestOption) (r *DialogNodeService) {
	r = &DialogNodeService{}
	r.Options = opts
	return
}

// List the dialog nodes of a workspace.
func (r *DialogNodeService) List(ctx context.Context, workspaceID string, query DialogNodeListParams, opts ...option.RequestOption) (res *DialogNodeCollection, err error) {
	opts = slices.Concat(r.Options, []option.RequestOption{analytics("listDialogNodes")}, opts)
	if err = param.RequirePath("workspace_id", workspaceID); err != nil {
		return
	}
	path := fmt.Sprintf("v1/workspaces/%s/dialog_nodes", url.PathEscape(workspaceID))
	err = requestconfig.ExecuteNewRequest(ctx, http.MethodGet, path, query, &res, opts...)
	return
}

// Create a dialog node.
func (r *DialogNodeService) New(ctx context.Context, workspaceID string, body DialogNodeNewParams, opts ...option.RequestOption) (res *DialogNode, err error) {
	opts = slices.Concat(r.Options, []option.RequestOption{analytics("createDialogNode")}, opts)
	if err = param.RequirePath("workspace_id", workspaceID); err != nil {
		return
	}
	path := fmt.Sprintf("v1/workspaces/%s/dialog_nodes", url.PathEscape(workspaceID))
	err = requestconfig.ExecuteNewRequest(ctx, http.MethodPost, path, body, &res, opts...)
	return
}

// Get a dialog node.
func (r *DialogNodeService) Get(ctx context.Context, workspaceID string, dialogNode string, query DialogNodeGetParams, opts ...option.RequestOption) (res *DialogNode, err error) {
	opts = slices.Concat(r.Options, []option.RequestOption{analytics("getDialogNode")}, opts)
	if err = param.RequirePath("workspace_id", workspaceID); err != nil {
		return
	}
	if err = param.RequirePath("dialog_node", dialogNode); err != nil {
		return
	}
	path := fmt.Sprintf("v1/workspaces/%s/dialog_nodes/%s", url.PathEscape(workspaceID), url.PathEscape(dialogNode))
	err = requestconfig.ExecuteNewRequest(ctx, http.MethodGet, path, query, &res, opts...)
	return
}

// Update an existing dialog node. Only the fields set in body are changed;
// fields set to null are cleared.
func (r *DialogNodeService) Update(ctx context.Context, workspaceID string, dialogNode string, body DialogNodeUpdateParams, opts ...option.RequestOption) (res *DialogNode, err error) {
	opts = slices.Concat(r.Options, []option.RequestOption{analytics("updateDialogNode")}, opts)
	if err = param.RequirePath("workspace_id", workspaceID); err != nil {
		return
	}
	if err = param.RequirePath("dialog_node", dialogNode); err != nil {
		return
	}
	path := fmt.Sprintf("v1/workspaces/%s/dialog_nodes/%s", url.PathEscape(workspaceID), url.PathEscape(dialogNode))
	err = requestconfig.ExecuteNewRequest(ctx, http.MethodPost, path, body, &res, opts...)
	return
}

// Delete a dialog node.
func (r *DialogNodeService) Delete(ctx context.Context, workspaceID string, dialogNode string, opts ...option.RequestOption) (err error) {
	opts = slices.Concat(r.Options, []option.RequestOption{analytics("deleteDialogNode")}, opts)
	if err = param.RequirePath("workspace_id", workspaceID); err != nil {
		return
	}
	if err = param.RequirePath("dialog_node", dialogNode); err != nil {
		return
	}
	path := fmt.Sprintf("v1/workspaces/%s/dialog_nodes/%s", url.PathEscape(workspaceID), url.PathEscape(dialogNode))
	err = requestconfig.ExecuteNewRequest(ctx, http.MethodDelete, path, nil, nil, opts...)
	return
}

type DialogNode struct {
	// The unique ID of the dialog node.
	DialogNode      string                    `json:"dialog_node,required"`
	Description     string                    `json:"description"`
	Conditions      string                    `json:"conditions"`
	Parent          string                    `json:"parent"`
	PreviousSibling string                    `json:"previous_sibling"`
	Output          DialogNodeOutput          `json:"output"`
	Context         map[string]any            `json:"context"`
	Metadata        map[string]any            `json:"metadata"`
	NextStep        DialogNodeNextStep        `json:"next_step"`
	Title           string                    `json:"title"`
	Type            DialogNodeType            `json:"type"`
	EventName       DialogNodeEventName       `json:"event_name"`
	Variable        string                    `json:"variable"`
	Actions         []DialogNodeAction        `json:"actions"`
	DigressIn       DialogNodeDigressIn       `json:"digress_in"`
	DigressOut      DialogNodeDigressOut      `json:"digress_out"`
	DigressOutSlots DialogNodeDigressOutSlots `json:"digress_out_slots"`
	UserLabel       string                    `json:"user_label"`
	// Whether the dialog node should be excluded from disambiguation
	// suggestions.
	DisambiguationOptOut bool           `json:"disambiguation_opt_out"`
	Disabled             bool           `json:"disabled"`
	Created              time.Time      `json:"created" format:"date-time"`
	Updated              time.Time      `json:"updated" format:"date-time"`
	JSON                 dialogNodeJSON `json:"-"`
}

// dialogNodeJSON contains the JSON metadata for the struct [DialogNode]
type dialogNodeJSON struct {
	DialogNode           apijson.Field
	Description          apijson.Field
	Conditions           apijson.Field
	Parent               apijson.Field
	PreviousSibling      apijson.Field
	Output               apijson.Field
	Context              apijson.Field
	Metadata             apijson.Field
	NextStep             apijson.Field
	Title                apijson.Field
	Type                 apijson.Field
	EventName            apijson.Field
	Variable             apijson.Field
	Actions              apijson.Field
	DigressIn            apijson.Field
	DigressOut           apijson.Field
	DigressOutSlots      apijson.Field
	UserLabel            apijson.Field
	DisambiguationOptOut apijson.Field
	Disabled             apijson.Field
	Created              apijson.Field
	Updated              apijson.Field
	raw                  string
	ExtraFields          map[string]apijson.Field
}

func (r *DialogNode) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r dialogNodeJSON) RawJSON() string {
	return r.raw
}

// DialogNodeOutput is the output of a dialog node. Any additional
// properties are kept in ExtraFields.
type DialogNodeOutput struct {
	Generic      []DialogNodeOutputGeneric `json:"generic"`
	Integrations map[string]map[string]any `json:"integrations"`
	Modifiers    DialogNodeOutputModifiers `json:"modifiers"`
	ExtraFields  map[string]any            `json:"-,extras"`
	JSON         dialogNodeOutputJSON      `json:"-"`
}

// dialogNodeOutputJSON contains the JSON metadata for the struct
// [DialogNodeOutput]
type dialogNodeOutputJSON struct {
	Generic      apijson.Field
	Integrations apijson.Field
	Modifiers    apijson.Field
	raw          string
	ExtraFields  map[string]apijson.Field
}

func (r *DialogNodeOutput) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r dialogNodeOutputJSON) RawJSON() string {
	return r.raw
}

// MarshalJSON writes ExtraFields back as properties of the output.
func (r DialogNodeOutput) MarshalJSON() (data []byte, err error) {
	return apijson.MarshalRoot(r)
}

type DialogNodeOutputModifiers struct {
	// Whether values in the output will overwrite output values in an array
	// specified by previously executed dialog nodes.
	Overwrite bool                          `json:"overwrite"`
	JSON      dialogNodeOutputModifiersJSON `json:"-"`
}

// dialogNodeOutputModifiersJSON contains the JSON metadata for the struct
// [DialogNodeOutputModifiers]
type dialogNodeOutputModifiersJSON struct {
	Overwrite   apijson.Field
	raw         string
	ExtraFields map[string]apijson.Field
}

func (r *DialogNodeOutputModifiers) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r dialogNodeOutputModifiersJSON) RawJSON() string {
	return r.raw
}

// DialogNodeOutputGeneric is one response defined by a dialog node. The
// fields that are set depend on ResponseType.
type DialogNodeOutputGeneric struct {
	ResponseType        DialogNodeOutputGenericResponseType    `json:"response_type,required"`
	Values              []DialogNodeOutputTextValuesElement    `json:"values"`
	SelectionPolicy     DialogNodeOutputGenericSelectionPolicy `json:"selection_policy"`
	Delimiter           string                                 `json:"delimiter"`
	Time                int64                                  `json:"time"`
	Typing              bool                                   `json:"typing"`
	Source              string                                 `json:"source"`
	Title               string                                 `json:"title"`
	Description         string                                 `json:"description"`
	Preference          string                                 `json:"preference"`
	Options             []DialogNodeOutputOptionsElement       `json:"options"`
	MessageToHumanAgent string                                 `json:"message_to_human_agent"`
	JSON                dialogNodeOutputGenericJSON            `json:"-"`
}

// dialogNodeOutputGenericJSON contains the JSON metadata for the struct
// [DialogNodeOutputGeneric]
type dialogNodeOutputGenericJSON struct {
	ResponseType        apijson.Field
	Values              apijson.Field
	SelectionPolicy     apijson.Field
	Delimiter           apijson.Field
	Time                apijson.Field
	Typing              apijson.Field
	Source              apijson.Field
	Title               apijson.Field
	Description         apijson.Field
	Preference          apijson.Field
	Options             apijson.Field
	MessageToHumanAgent apijson.Field
	raw                 string
	ExtraFields         map[string]apijson.Field
}

func (r *DialogNodeOutputGeneric) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r dialogNodeOutputGenericJSON) RawJSON() string {
	return r.raw
}

type DialogNodeOutputGenericResponseType string

const (
	DialogNodeOutputGenericResponseTypeText            DialogNodeOutputGenericResponseType = "text"
	DialogNodeOutputGenericResponseTypePause           DialogNodeOutputGenericResponseType = "pause"
	DialogNodeOutputGenericResponseTypeImage           DialogNodeOutputGenericResponseType = "image"
	DialogNodeOutputGenericResponseTypeOption          DialogNodeOutputGenericResponseType = "option"
	DialogNodeOutputGenericResponseTypeConnectToAgent  DialogNodeOutputGenericResponseType = "connect_to_agent"
	DialogNodeOutputGenericResponseTypeSearchSkill     DialogNodeOutputGenericResponseType = "search_skill"
	DialogNodeOutputGenericResponseTypeChannelTransfer DialogNodeOutputGenericResponseType = "channel_transfer"
	DialogNodeOutputGenericResponseTypeUserDefined     DialogNodeOutputGenericResponseType = "user_defined"
)

func (r DialogNodeOutputGenericResponseType) IsKnown() bool {
	switch r {
	case DialogNodeOutputGenericResponseTypeText, DialogNodeOutputGenericResponseTypePause,
		DialogNodeOutputGenericResponseTypeImage, DialogNodeOutputGenericResponseTypeOption,
		DialogNodeOutputGenericResponseTypeConnectToAgent, DialogNodeOutputGenericResponseTypeSearchSkill,
		DialogNodeOutputGenericResponseTypeChannelTransfer, DialogNodeOutputGenericResponseTypeUserDefined:
		return true
	}
	return false
}

type DialogNodeOutputGenericSelectionPolicy string

const (
	DialogNodeOutputGenericSelectionPolicySequential DialogNodeOutputGenericSelectionPolicy = "sequential"
	DialogNodeOutputGenericSelectionPolicyRandom     DialogNodeOutputGenericSelectionPolicy = "random"
	DialogNodeOutputGenericSelectionPolicyMultiline  DialogNodeOutputGenericSelectionPolicy = "multiline"
)

func (r DialogNodeOutputGenericSelectionPolicy) IsKnown() bool {
	switch r {
	case DialogNodeOutputGenericSelectionPolicySequential, DialogNodeOutputGenericSelectionPolicyRandom,
		DialogNodeOutputGenericSelectionPolicyMultiline:
		return true
	}
	return false
}

type DialogNodeOutputTextValuesElement struct {
	Text string                                `json:"text"`
	JSON dialogNodeOutputTextValuesElementJSON `json:"-"`
}

// dialogNodeOutputTextValuesElementJSON contains the JSON metadata for the
// struct [DialogNodeOutputTextValuesElement]
type dialogNodeOutputTextValuesElementJSON struct {
	Text        apijson.Field
	raw         string
	ExtraFields map[string]apijson.Field
}

func (r *DialogNodeOutputTextValuesElement) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r dialogNodeOutputTextValuesElementJSON) RawJSON() string {
	return r.raw
}

type DialogNodeOutputOptionsElement struct {
	Label string                              `json:"label,required"`
	Value DialogNodeOutputOptionsElementValue `json:"value,required"`
	JSON  dialogNodeOutputOptionsElementJSON  `json:"-"`
}

// dialogNodeOutputOptionsElementJSON contains the JSON metadata for the
// struct [DialogNodeOutputOptionsElement]
type dialogNodeOutputOptionsElementJSON struct {
	Label       apijson.Field
	Value       apijson.Field
	raw         string
	ExtraFields map[string]apijson.Field
}

func (r *DialogNodeOutputOptionsElement) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r dialogNodeOutputOptionsElementJSON) RawJSON() string {
	return r.raw
}

// DialogNodeOutputOptionsElementValue is the user input sent when the
// option is selected.
type DialogNodeOutputOptionsElementValue struct {
	Input    MessageInput                            `json:"input"`
	Intents  []RuntimeIntent                         `json:"intents"`
	Entities []RuntimeEntity                         `json:"entities"`
	JSON     dialogNodeOutputOptionsElementValueJSON `json:"-"`
}

// dialogNodeOutputOptionsElementValueJSON contains the JSON metadata for the
// struct [DialogNodeOutputOptionsElementValue]
type dialogNodeOutputOptionsElementValueJSON struct {
	Input       apijson.Field
	Intents     apijson.Field
	Entities    apijson.Field
	raw         string
	ExtraFields map[string]apijson.Field
}

func (r *DialogNodeOutputOptionsElementValue) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r dialogNodeOutputOptionsElementValueJSON) RawJSON() string {
	return r.raw
}

type DialogNodeNextStep struct {
	// What happens after the dialog node completes.
	Behavior   DialogNodeNextStepBehavior `json:"behavior,required"`
	DialogNode string                     `json:"dialog_node"`
	Selector   DialogNodeNextStepSelector `json:"selector"`
	JSON       dialogNodeNextStepJSON     `json:"-"`
}

// dialogNodeNextStepJSON contains the JSON metadata for the struct
// [DialogNodeNextStep]
type dialogNodeNextStepJSON struct {
	Behavior    apijson.Field
	DialogNode  apijson.Field
	Selector    apijson.Field
	raw         string
	ExtraFields map[string]apijson.Field
}

func (r *DialogNodeNextStep) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r dialogNodeNextStepJSON) RawJSON() string {
	return r.raw
}

type DialogNodeNextStepBehavior string

const (
	DialogNodeNextStepBehaviorGetUserInput  DialogNodeNextStepBehavior = "get_user_input"
	DialogNodeNextStepBehaviorSkipUserInput DialogNodeNextStepBehavior = "skip_user_input"
	DialogNodeNextStepBehaviorJumpTo        DialogNodeNextStepBehavior = "jump_to"
)

func (r DialogNodeNextStepBehavior) IsKnown() bool {
	switch r {
	case DialogNodeNextStepBehaviorGetUserInput, DialogNodeNextStepBehaviorSkipUserInput, DialogNodeNextStepBehaviorJumpTo:
		return true
	}
	return false
}

type DialogNodeNextStepSelector string

const (
	DialogNodeNextStepSelectorCondition DialogNodeNextStepSelector = "condition"
	DialogNodeNextStepSelectorClient    DialogNodeNextStepSelector = "client"
	DialogNodeNextStepSelectorUserInput DialogNodeNextStepSelector = "user_input"
	DialogNodeNextStepSelectorBody      DialogNodeNextStepSelector = "body"
)

func (r DialogNodeNextStepSelector) IsKnown() bool {
	switch r {
	case DialogNodeNextStepSelectorCondition, DialogNodeNextStepSelectorClient,
		DialogNodeNextStepSelectorUserInput, DialogNodeNextStepSelectorBody:
		return true
	}
	return false
}

type DialogNodeAction struct {
	Name           string               `json:"name,required"`
	Type           DialogNodeActionType `json:"type"`
	Parameters     map[string]any       `json:"parameters"`
	ResultVariable string               `json:"result_variable,required"`
	Credentials    string               `json:"credentials"`
	JSON           dialogNodeActionJSON `json:"-"`
}

// dialogNodeActionJSON contains the JSON metadata for the struct
// [DialogNodeAction]
type dialogNodeActionJSON struct {
	Name           apijson.Field
	Type           apijson.Field
	Parameters     apijson.Field
	ResultVariable apijson.Field
	Credentials    apijson.Field
	raw            string
	ExtraFields    map[string]apijson.Field
}

func (r *DialogNodeAction) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r dialogNodeActionJSON) RawJSON() string {
	return r.raw
}

type DialogNodeActionType string

const (
	DialogNodeActionTypeClient        DialogNodeActionType = "client"
	DialogNodeActionTypeServer        DialogNodeActionType = "server"
	DialogNodeActionTypeCloudFunction DialogNodeActionType = "cloud_function"
	DialogNodeActionTypeWebAction     DialogNodeActionType = "web_action"
	DialogNodeActionTypeWebhook       DialogNodeActionType = "webhook"
)

func (r DialogNodeActionType) IsKnown() bool {
	switch r {
	case DialogNodeActionTypeClient, DialogNodeActionTypeServer, DialogNodeActionTypeCloudFunction,
		DialogNodeActionTypeWebAction, DialogNodeActionTypeWebhook:
		return true
	}
	return false
}

type DialogNodeType string

const (
	DialogNodeTypeStandard          DialogNodeType = "standard"
	DialogNodeTypeEventHandler      DialogNodeType = "event_handler"
	DialogNodeTypeFrame             DialogNodeType = "frame"
	DialogNodeTypeSlot              DialogNodeType = "slot"
	DialogNodeTypeResponseCondition DialogNodeType = "response_condition"
	DialogNodeTypeFolder            DialogNodeType = "folder"
)

func (r DialogNodeType) IsKnown() bool {
	switch r {
	case DialogNodeTypeStandard, DialogNodeTypeEventHandler, DialogNodeTypeFrame,
		DialogNodeTypeSlot, DialogNodeTypeResponseCondition, DialogNodeTypeFolder:
		return true
	}
	return false
}

type DialogNodeEventName string

const (
	DialogNodeEventNameFocus                    DialogNodeEventName = "focus"
	DialogNodeEventNameInput                    DialogNodeEventName = "input"
	DialogNodeEventNameFilled                   DialogNodeEventName = "filled"
	DialogNodeEventNameValidate                 DialogNodeEventName = "validate"
	DialogNodeEventNameFilledMultiple           DialogNodeEventName = "filled_multiple"
	DialogNodeEventNameGeneric                  DialogNodeEventName = "generic"
	DialogNodeEventNameNomatch                  DialogNodeEventName = "nomatch"
	DialogNodeEventNameNomatchResponsesDepleted DialogNodeEventName = "nomatch_responses_depleted"
	DialogNodeEventNameDigressionReturnPrompt   DialogNodeEventName = "digression_return_prompt"
)

func (r DialogNodeEventName) IsKnown() bool {
	switch r {
	case DialogNodeEventNameFocus, DialogNodeEventNameInput, DialogNodeEventNameFilled,
		DialogNodeEventNameValidate, DialogNodeEventNameFilledMultiple, DialogNodeEventNameGeneric,
		DialogNodeEventNameNomatch, DialogNodeEventNameNomatchResponsesDepleted,
		DialogNodeEventNameDigressionReturnPrompt:
		return true
	}
	return false
}

type DialogNodeDigressIn string

const (
	DialogNodeDigressInNotAvailable  DialogNodeDigressIn = "not_available"
	DialogNodeDigressInReturns       DialogNodeDigressIn = "returns"
	DialogNodeDigressInDoesNotReturn DialogNodeDigressIn = "does_not_return"
)

func (r DialogNodeDigressIn) IsKnown() bool {
	switch r {
	case DialogNodeDigressInNotAvailable, DialogNodeDigressInReturns, DialogNodeDigressInDoesNotReturn:
		return true
	}
	return false
}

type DialogNodeDigressOut string

const (
	DialogNodeDigressOutAllowReturning      DialogNodeDigressOut = "allow_returning"
	DialogNodeDigressOutAllowAll            DialogNodeDigressOut = "allow_all"
	DialogNodeDigressOutAllowAllNeverReturn DialogNodeDigressOut = "allow_all_never_return"
)

func (r DialogNodeDigressOut) IsKnown() bool {
	switch r {
	case DialogNodeDigressOutAllowReturning, DialogNodeDigressOutAllowAll, DialogNodeDigressOutAllowAllNeverReturn:
		return true
	}
	return false
}

type DialogNodeDigressOutSlots string

const (
	DialogNodeDigressOutSlotsNotAllowed     DialogNodeDigressOutSlots = "not_allowed"
	DialogNodeDigressOutSlotsAllowReturning DialogNodeDigressOutSlots = "allow_returning"
	DialogNodeDigressOutSlotsAllowAll       DialogNodeDigressOutSlots = "allow_all"
)

func (r DialogNodeDigressOutSlots) IsKnown() bool {
	switch r {
	case DialogNodeDigressOutSlotsNotAllowed, DialogNodeDigressOutSlotsAllowReturning, DialogNodeDigressOutSlotsAllowAll:
		return true
	}
	return false
}

type DialogNodeCollection struct {
	DialogNodes []DialogNode             `json:"dialog_nodes,required"`
	Pagination  Pagination               `json:"pagination,required"`
	JSON        dialogNodeCollectionJSON `json:"-"`
}

// dialogNodeCollectionJSON contains the JSON metadata for the struct
// [DialogNodeCollection]
type dialogNodeCollectionJSON struct {
	DialogNodes apijson.Field
	Pagination  apijson.Field
	raw         string
	ExtraFields map[string]apijson.Field
}

func (r *DialogNodeCollection) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r dialogNodeCollectionJSON) RawJSON() string {
	return r.raw
}

// DialogNodeParam describes a dialog node to create, on its own or as part
// of a workspace.
type DialogNodeParam struct {
	DialogNode           param.Field[string]                    `json:"dialog_node,required" validate:"max=1024"`
	Description          param.Field[string]                    `json:"description" validate:"max=128"`
	Conditions           param.Field[string]                    `json:"conditions" validate:"max=2048"`
	Parent               param.Field[string]                    `json:"parent"`
	PreviousSibling      param.Field[string]                    `json:"previous_sibling"`
	Output               param.Field[DialogNodeOutputParam]     `json:"output"`
	Context              param.Field[map[string]any]            `json:"context"`
	Metadata             param.Field[map[string]any]            `json:"metadata"`
	NextStep             param.Field[DialogNodeNextStepParam]   `json:"next_step"`
	Title                param.Field[string]                    `json:"title" validate:"max=64"`
	Type                 param.Field[DialogNodeType]            `json:"type"`
	EventName            param.Field[DialogNodeEventName]       `json:"event_name"`
	Variable             param.Field[string]                    `json:"variable" validate:"max=64"`
	Actions              param.Field[[]DialogNodeActionParam]   `json:"actions"`
	DigressIn            param.Field[DialogNodeDigressIn]       `json:"digress_in"`
	DigressOut           param.Field[DialogNodeDigressOut]      `json:"digress_out"`
	DigressOutSlots      param.Field[DialogNodeDigressOutSlots] `json:"digress_out_slots"`
	UserLabel            param.Field[string]                    `json:"user_label" validate:"max=512"`
	DisambiguationOptOut param.Field[bool]                      `json:"disambiguation_opt_out"`
}

func (r DialogNodeParam) MarshalJSON() (data []byte, err error) {
	return apijson.MarshalRoot(r)
}

type DialogNodeOutputParam struct {
	Generic      param.Field[[]DialogNodeOutputGenericParam] `json:"generic"`
	Integrations param.Field[map[string]map[string]any]      `json:"integrations"`
	Modifiers    param.Field[DialogNodeOutputModifiersParam] `json:"modifiers"`
	ExtraFields  map[string]any                              `json:"-,extras"`
}

func (r DialogNodeOutputParam) MarshalJSON() (data []byte, err error) {
	return apijson.MarshalRoot(r)
}

type DialogNodeOutputModifiersParam struct {
	Overwrite param.Field[bool] `json:"overwrite"`
}

func (r DialogNodeOutputModifiersParam) MarshalJSON() (data []byte, err error) {
	return apijson.MarshalRoot(r)
}

type DialogNodeOutputGenericParam struct {
	ResponseType        param.Field[DialogNodeOutputGenericResponseType]      `json:"response_type,required"`
	Values              param.Field[[]DialogNodeOutputTextValuesElementParam] `json:"values"`
	SelectionPolicy     param.Field[DialogNodeOutputGenericSelectionPolicy]   `json:"selection_policy"`
	Delimiter           param.Field[string]                                   `json:"delimiter"`
	Time                param.Field[int64]                                    `json:"time"`
	Typing              param.Field[bool]                                     `json:"typing"`
	Source              param.Field[string]                                   `json:"source"`
	Title               param.Field[string]                                   `json:"title"`
	Description         param.Field[string]                                   `json:"description"`
	Preference          param.Field[string]                                   `json:"preference"`
	Options             param.Field[[]DialogNodeOutputOptionsElementParam]    `json:"options"`
	MessageToHumanAgent param.Field[string]                                   `json:"message_to_human_agent"`
}

func (r DialogNodeOutputGenericParam) MarshalJSON() (data []byte, err error) {
	return apijson.MarshalRoot(r)
}

type DialogNodeOutputTextValuesElementParam struct {
	Text param.Field[string] `json:"text"`
}

func (r DialogNodeOutputTextValuesElementParam) MarshalJSON() (data []byte, err error) {
	return apijson.MarshalRoot(r)
}

type DialogNodeOutputOptionsElementParam struct {
	Label param.Field[string]            `json:"label,required"`
	Value param.Field[MessageInputParam] `json:"value,required"`
}

func (r DialogNodeOutputOptionsElementParam) MarshalJSON() (data []byte, err error) {
	return apijson.MarshalRoot(r)
}

type DialogNodeNextStepParam struct {
	Behavior   param.Field[DialogNodeNextStepBehavior] `json:"behavior,required"`
	DialogNode param.Field[string]                     `json:"dialog_node"`
	Selector   param.Field[DialogNodeNextStepSelector] `json:"selector"`
}

func (r DialogNodeNextStepParam) MarshalJSON() (data []byte, err error) {
	return apijson.MarshalRoot(r)
}

type DialogNodeActionParam struct {
	Name           param.Field[string]               `json:"name,required"`
	Type           param.Field[DialogNodeActionType] `json:"type"`
	Parameters     param.Field[map[string]any]       `json:"parameters"`
	ResultVariable param.Field[string]               `json:"result_variable,required"`
	Credentials    param.Field[string]               `json:"credentials"`
}

func (r DialogNodeActionParam) MarshalJSON() (data []byte, err error) {
	return apijson.MarshalRoot(r)
}

type DialogNodeListParams struct {
	PageLimit    param.Field[int64]    `query:"page_limit" validate:"gte=1"`
	IncludeCount param.Field[bool]     `query:"include_count"`
	Sort         param.Field[ListSort] `query:"sort"`
	Cursor       param.Field[string]   `query:"cursor"`
	IncludeAudit param.Field[bool]     `query:"include_audit"`
}

// URLQuery serializes [DialogNodeListParams]'s query parameters as
// `url.Values`.
func (r DialogNodeListParams) URLQuery() (v url.Values) {
	return urlQuery(r)
}

type DialogNodeGetParams struct {
	IncludeAudit param.Field[bool] `query:"include_audit"`
}

// URLQuery serializes [DialogNodeGetParams]'s query parameters as
// `url.Values`.
func (r DialogNodeGetParams) URLQuery() (v url.Values) {
	return urlQuery(r)
}

type DialogNodeNewParams struct {
	DialogNodeParam
	IncludeAudit param.Field[bool] `query:"include_audit"`
}

func (r DialogNodeNewParams) MarshalJSON() (data []byte, err error) {
	return apijson.MarshalRoot(r)
}

// URLQuery serializes [DialogNodeNewParams]'s query parameters as
// `url.Values`.
func (r DialogNodeNewParams) URLQuery() (v url.Values) {
	return urlQuery(r)
}

// DialogNodeUpdateParams changes a dialog node. Every field is optional.
type DialogNodeUpdateParams struct {
	DialogNode           param.Field[string]                    `json:"dialog_node" validate:"max=1024"`
	Description          param.Field[string]                    `json:"description" validate:"max=128"`
	Conditions           param.Field[string]                    `json:"conditions" validate:"max=2048"`
	Parent               param.Field[string]                    `json:"parent"`
	PreviousSibling      param.Field[string]                    `json:"previous_sibling"`
	Output               param.Field[DialogNodeOutputParam]     `json:"output"`
	Context              param.Field[map[string]any]            `json:"context"`
	Metadata             param.Field[map[string]any]            `json:"metadata"`
	NextStep             param.Field[DialogNodeNextStepParam]   `json:"next_step"`
	Title                param.Field[string]                    `json:"title" validate:"max=64"`
	Type                 param.Field[DialogNodeType]            `json:"type"`
	EventName            param.Field[DialogNodeEventName]       `json:"event_name"`
	Variable             param.Field[string]                    `json:"variable" validate:"max=64"`
	Actions              param.Field[[]DialogNodeActionParam]   `json:"actions"`
	DigressIn            param.Field[DialogNodeDigressIn]       `json:"digress_in"`
	DigressOut           param.Field[DialogNodeDigressOut]      `json:"digress_out"`
	DigressOutSlots      param.Field[DialogNodeDigressOutSlots] `json:"digress_out_slots"`
	UserLabel            param.Field[string]                    `json:"user_label" validate:"max=512"`
	DisambiguationOptOut param.Field[bool]                      `json:"disambiguation_opt_out"`
	IncludeAudit         param.Field[bool]                      `query:"include_audit"`
}

// AsPatch returns the merge patch sent by [DialogNodeService.Update].
func (r DialogNodeUpdateParams) AsPatch() apijson.Patch {
	return apijson.ToPatch(r)
}

func (r DialogNodeUpdateParams) MarshalJSON() (data []byte, err error) {
	return r.AsPatch().MarshalJSON()
}

// URLQuery serializes [DialogNodeUpdateParams]'s query parameters as
// `url.Values`.
func (r DialogNodeUpdateParams) URLQuery() (v url.Values) {
	return urlQuery(r)
}
