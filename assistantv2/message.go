package assistantv2

import (
	"maps"

	"github.com/watson-developer-cloud/watson-go/internal/apijson"
	"github.com/watson-developer-cloud/watson-go/internal/param"
)

// MessageResponse is the assistant's reply to a message sent within a
// session.
type MessageResponse struct {
	// Assistant output to be rendered or processed by the client.
	Output MessageOutput `json:"output,required"`
	// Context data for the conversation. Only returned when
	// input.options.return_context was set.
	Context MessageContext      `json:"context"`
	UserID  string              `json:"user_id,required"`
	JSON    messageResponseJSON `json:"-"`
}

// messageResponseJSON contains the JSON metadata for the struct
// [MessageResponse]
type messageResponseJSON struct {
	Output      apijson.Field
	Context     apijson.Field
	UserID      apijson.Field
	raw         string
	ExtraFields map[string]apijson.Field
}

func (r *MessageResponse) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r messageResponseJSON) RawJSON() string {
	return r.raw
}

// MessageStatelessResponse is the assistant's reply to a stateless
// message. Its Context must be sent back with the next message.
type MessageStatelessResponse struct {
	Output  MessageOutput                `json:"output,required"`
	Context MessageContext               `json:"context,required"`
	UserID  string                       `json:"user_id"`
	JSON    messageStatelessResponseJSON `json:"-"`
}

// messageStatelessResponseJSON contains the JSON metadata for the struct
// [MessageStatelessResponse]
type messageStatelessResponseJSON struct {
	Output      apijson.Field
	Context     apijson.Field
	UserID      apijson.Field
	raw         string
	ExtraFields map[string]apijson.Field
}

func (r *MessageStatelessResponse) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r messageStatelessResponseJSON) RawJSON() string {
	return r.raw
}

type MessageOutput struct {
	Generic  []RuntimeResponseGeneric `json:"generic"`
	Intents  []RuntimeIntent          `json:"intents"`
	Entities []RuntimeEntity          `json:"entities"`
	// Actions the client application is expected to run.
	Actions []DialogNodeAction `json:"actions"`
	// Additional detail about the message, returned when
	// input.options.debug was set.
	Debug       MessageOutputDebug    `json:"debug"`
	UserDefined map[string]any        `json:"user_defined"`
	Spelling    MessageOutputSpelling `json:"spelling"`
	JSON        messageOutputJSON     `json:"-"`
}

// messageOutputJSON contains the JSON metadata for the struct
// [MessageOutput]
type messageOutputJSON struct {
	Generic     apijson.Field
	Intents     apijson.Field
	Entities    apijson.Field
	Actions     apijson.Field
	Debug       apijson.Field
	UserDefined apijson.Field
	Spelling    apijson.Field
	raw         string
	ExtraFields map[string]apijson.Field
}

func (r *MessageOutput) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r messageOutputJSON) RawJSON() string {
	return r.raw
}

type RuntimeResponseGeneric struct {
	ResponseType RuntimeResponseGenericResponseType `json:"response_type,required"`
	Text         string                             `json:"text"`
	Time         int64                              `json:"time"`
	Typing       bool                               `json:"typing"`
	Source       string                             `json:"source"`
	Title        string                             `json:"title"`
	Description  string                             `json:"description"`
	Preference   string                             `json:"preference"`
	Options      []DialogNodeOutputOptionsElement   `json:"options"`
	// Set for "suggestion" responses.
	Suggestions         []DialogSuggestion         `json:"suggestions"`
	MessageToHumanAgent string                     `json:"message_to_human_agent"`
	Header              string                     `json:"header"`
	JSON                runtimeResponseGenericJSON `json:"-"`
}

// runtimeResponseGenericJSON contains the JSON metadata for the struct
// [RuntimeResponseGeneric]
type runtimeResponseGenericJSON struct {
	ResponseType        apijson.Field
	Text                apijson.Field
	Time                apijson.Field
	Typing              apijson.Field
	Source              apijson.Field
	Title               apijson.Field
	Description         apijson.Field
	Preference          apijson.Field
	Options             apijson.Field
	Suggestions         apijson.Field
	MessageToHumanAgent apijson.Field
	Header              apijson.Field
	raw                 string
	ExtraFields         map[string]apijson.Field
}

func (r *RuntimeResponseGeneric) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r runtimeResponseGenericJSON) RawJSON() string {
	return r.raw
}

type RuntimeResponseGenericResponseType string

const (
	RuntimeResponseGenericResponseTypeText           RuntimeResponseGenericResponseType = "text"
	RuntimeResponseGenericResponseTypePause          RuntimeResponseGenericResponseType = "pause"
	RuntimeResponseGenericResponseTypeImage          RuntimeResponseGenericResponseType = "image"
	RuntimeResponseGenericResponseTypeOption         RuntimeResponseGenericResponseType = "option"
	RuntimeResponseGenericResponseTypeConnectToAgent RuntimeResponseGenericResponseType = "connect_to_agent"
	RuntimeResponseGenericResponseTypeSuggestion     RuntimeResponseGenericResponseType = "suggestion"
	RuntimeResponseGenericResponseTypeSearch         RuntimeResponseGenericResponseType = "search"
	RuntimeResponseGenericResponseTypeUserDefined    RuntimeResponseGenericResponseType = "user_defined"
)

func (r RuntimeResponseGenericResponseType) IsKnown() bool {
	switch r {
	case RuntimeResponseGenericResponseTypeText, RuntimeResponseGenericResponseTypePause,
		RuntimeResponseGenericResponseTypeImage, RuntimeResponseGenericResponseTypeOption,
		RuntimeResponseGenericResponseTypeConnectToAgent, RuntimeResponseGenericResponseTypeSuggestion,
		RuntimeResponseGenericResponseTypeSearch, RuntimeResponseGenericResponseTypeUserDefined:
		return true
	}
	return false
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

// DialogNodeOutputOptionsElementValue is the message input sent when the
// user picks an option.
type DialogNodeOutputOptionsElementValue struct {
	Input MessageInput                            `json:"input"`
	JSON  dialogNodeOutputOptionsElementValueJSON `json:"-"`
}

// dialogNodeOutputOptionsElementValueJSON contains the JSON metadata for
// the struct [DialogNodeOutputOptionsElementValue]
type dialogNodeOutputOptionsElementValueJSON struct {
	Input       apijson.Field
	raw         string
	ExtraFields map[string]apijson.Field
}

func (r *DialogNodeOutputOptionsElementValue) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r dialogNodeOutputOptionsElementValueJSON) RawJSON() string {
	return r.raw
}

type DialogSuggestion struct {
	Label string                `json:"label,required"`
	Value DialogSuggestionValue `json:"value,required"`
	// The dialog output that will be returned if the suggestion is picked.
	Output map[string]any       `json:"output"`
	JSON   dialogSuggestionJSON `json:"-"`
}

// dialogSuggestionJSON contains the JSON metadata for the struct
// [DialogSuggestion]
type dialogSuggestionJSON struct {
	Label       apijson.Field
	Value       apijson.Field
	Output      apijson.Field
	raw         string
	ExtraFields map[string]apijson.Field
}

func (r *DialogSuggestion) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r dialogSuggestionJSON) RawJSON() string {
	return r.raw
}

type DialogSuggestionValue struct {
	Input MessageInput              `json:"input"`
	JSON  dialogSuggestionValueJSON `json:"-"`
}

// dialogSuggestionValueJSON contains the JSON metadata for the struct
// [DialogSuggestionValue]
type dialogSuggestionValueJSON struct {
	Input       apijson.Field
	raw         string
	ExtraFields map[string]apijson.Field
}

func (r *DialogSuggestionValue) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r dialogSuggestionValueJSON) RawJSON() string {
	return r.raw
}

type RuntimeIntent struct {
	Intent     string            `json:"intent,required"`
	Confidence float64           `json:"confidence"`
	JSON       runtimeIntentJSON `json:"-"`
}

// runtimeIntentJSON contains the JSON metadata for the struct
// [RuntimeIntent]
type runtimeIntentJSON struct {
	Intent      apijson.Field
	Confidence  apijson.Field
	raw         string
	ExtraFields map[string]apijson.Field
}

func (r *RuntimeIntent) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r runtimeIntentJSON) RawJSON() string {
	return r.raw
}

type RuntimeEntity struct {
	Entity string `json:"entity,required"`
	// Zero-based character offsets of the start and end of the mention.
	Location   []int64           `json:"location"`
	Value      string            `json:"value,required"`
	Confidence float64           `json:"confidence"`
	JSON       runtimeEntityJSON `json:"-"`
}

// runtimeEntityJSON contains the JSON metadata for the struct
// [RuntimeEntity]
type runtimeEntityJSON struct {
	Entity      apijson.Field
	Location    apijson.Field
	Value       apijson.Field
	Confidence  apijson.Field
	raw         string
	ExtraFields map[string]apijson.Field
}

func (r *RuntimeEntity) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r runtimeEntityJSON) RawJSON() string {
	return r.raw
}

type DialogNodeAction struct {
	Name           string               `json:"name,required"`
	Type           string               `json:"type"`
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

type MessageOutputDebug struct {
	NodesVisited []DialogNodeVisited `json:"nodes_visited"`
	LogMessages  []DialogLogMessage  `json:"log_messages"`
	// Whether the dialog branch was exited, and why.
	BranchExited       bool                                 `json:"branch_exited"`
	BranchExitedReason MessageOutputDebugBranchExitedReason `json:"branch_exited_reason"`
	JSON               messageOutputDebugJSON               `json:"-"`
}

// messageOutputDebugJSON contains the JSON metadata for the struct
// [MessageOutputDebug]
type messageOutputDebugJSON struct {
	NodesVisited       apijson.Field
	LogMessages        apijson.Field
	BranchExited       apijson.Field
	BranchExitedReason apijson.Field
	raw                string
	ExtraFields        map[string]apijson.Field
}

func (r *MessageOutputDebug) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r messageOutputDebugJSON) RawJSON() string {
	return r.raw
}

type MessageOutputDebugBranchExitedReason string

const (
	MessageOutputDebugBranchExitedReasonCompleted MessageOutputDebugBranchExitedReason = "completed"
	MessageOutputDebugBranchExitedReasonFallback  MessageOutputDebugBranchExitedReason = "fallback"
)

func (r MessageOutputDebugBranchExitedReason) IsKnown() bool {
	switch r {
	case MessageOutputDebugBranchExitedReasonCompleted, MessageOutputDebugBranchExitedReasonFallback:
		return true
	}
	return false
}

type DialogNodeVisited struct {
	DialogNode string                `json:"dialog_node"`
	Title      string                `json:"title"`
	Conditions string                `json:"conditions"`
	JSON       dialogNodeVisitedJSON `json:"-"`
}

// dialogNodeVisitedJSON contains the JSON metadata for the struct
// [DialogNodeVisited]
type dialogNodeVisitedJSON struct {
	DialogNode  apijson.Field
	Title       apijson.Field
	Conditions  apijson.Field
	raw         string
	ExtraFields map[string]apijson.Field
}

func (r *DialogNodeVisited) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r dialogNodeVisitedJSON) RawJSON() string {
	return r.raw
}

type DialogLogMessage struct {
	Level   string               `json:"level,required"`
	Message string               `json:"message,required"`
	Code    string               `json:"code,required"`
	JSON    dialogLogMessageJSON `json:"-"`
}

// dialogLogMessageJSON contains the JSON metadata for the struct
// [DialogLogMessage]
type dialogLogMessageJSON struct {
	Level       apijson.Field
	Message     apijson.Field
	Code        apijson.Field
	raw         string
	ExtraFields map[string]apijson.Field
}

func (r *DialogLogMessage) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r dialogLogMessageJSON) RawJSON() string {
	return r.raw
}

// MessageOutputSpelling is returned when spelling correction was
// requested.
type MessageOutputSpelling struct {
	Text          string                    `json:"text"`
	OriginalText  string                    `json:"original_text"`
	SuggestedText string                    `json:"suggested_text"`
	JSON          messageOutputSpellingJSON `json:"-"`
}

// messageOutputSpellingJSON contains the JSON metadata for the struct
// [MessageOutputSpelling]
type messageOutputSpellingJSON struct {
	Text          apijson.Field
	OriginalText  apijson.Field
	SuggestedText apijson.Field
	raw           string
	ExtraFields   map[string]apijson.Field
}

func (r *MessageOutputSpelling) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r messageOutputSpellingJSON) RawJSON() string {
	return r.raw
}

type MessageInput struct {
	MessageType  MessageInputMessageType `json:"message_type"`
	Text         string                  `json:"text"`
	Intents      []RuntimeIntent         `json:"intents"`
	Entities     []RuntimeEntity         `json:"entities"`
	SuggestionID string                  `json:"suggestion_id"`
	JSON         messageInputJSON        `json:"-"`
}

// messageInputJSON contains the JSON metadata for the struct
// [MessageInput]
type messageInputJSON struct {
	MessageType  apijson.Field
	Text         apijson.Field
	Intents      apijson.Field
	Entities     apijson.Field
	SuggestionID apijson.Field
	raw          string
	ExtraFields  map[string]apijson.Field
}

func (r *MessageInput) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r messageInputJSON) RawJSON() string {
	return r.raw
}

type MessageInputMessageType string

const (
	MessageInputMessageTypeText   MessageInputMessageType = "text"
	MessageInputMessageTypeSearch MessageInputMessageType = "search"
)

func (r MessageInputMessageType) IsKnown() bool {
	switch r {
	case MessageInputMessageTypeText, MessageInputMessageTypeSearch:
		return true
	}
	return false
}

// MessageContext is the state of a conversation: global values shared by
// every skill plus the state of each skill, keyed by skill name (e.g.
// "main skill", "actions skill").
type MessageContext struct {
	Global       MessageContextGlobal           `json:"global"`
	Skills       map[string]MessageContextSkill `json:"skills"`
	Integrations map[string]any                 `json:"integrations"`
	JSON         messageContextJSON             `json:"-"`
}

// messageContextJSON contains the JSON metadata for the struct
// [MessageContext]
type messageContextJSON struct {
	Global       apijson.Field
	Skills       apijson.Field
	Integrations apijson.Field
	raw          string
	ExtraFields  map[string]apijson.Field
}

func (r *MessageContext) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r messageContextJSON) RawJSON() string {
	return r.raw
}

// Param returns the context as params for the next stateless message.
func (r MessageContext) Param() MessageContextParam {
	var p MessageContextParam
	global := MessageContextGlobalParam{System: param.F(r.Global.System.Param())}
	if r.Global.SessionID != "" {
		global.SessionID = param.F(r.Global.SessionID)
	}
	p.Global = param.F(global)
	if len(r.Skills) > 0 {
		skills := make(map[string]MessageContextSkillParam, len(r.Skills))
		for name, skill := range r.Skills {
			var sp MessageContextSkillParam
			if skill.UserDefined != nil {
				sp.UserDefined = param.F(skill.UserDefined)
			}
			if !skill.JSON.System.IsMissing() {
				sp.System = param.F(skill.System.Param())
			}
			skills[name] = sp
		}
		p.Skills = param.F(skills)
	}
	if r.Integrations != nil {
		p.Integrations = param.F(r.Integrations)
	}
	return p
}

type MessageContextGlobal struct {
	System MessageContextGlobalSystem `json:"system"`
	// The session ID. Only set in stateless responses.
	SessionID string                   `json:"session_id"`
	JSON      messageContextGlobalJSON `json:"-"`
}

// messageContextGlobalJSON contains the JSON metadata for the struct
// [MessageContextGlobal]
type messageContextGlobalJSON struct {
	System      apijson.Field
	SessionID   apijson.Field
	raw         string
	ExtraFields map[string]apijson.Field
}

func (r *MessageContextGlobal) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r messageContextGlobalJSON) RawJSON() string {
	return r.raw
}

// MessageContextGlobalSystem holds the built-in global context variables.
type MessageContextGlobalSystem struct {
	Timezone string `json:"timezone"`
	UserID   string `json:"user_id"`
	// The number of turns in the conversation so far.
	TurnCount        int64                          `json:"turn_count"`
	Locale           string                         `json:"locale"`
	ReferenceTime    string                         `json:"reference_time"`
	SessionStartTime string                         `json:"session_start_time"`
	State            string                         `json:"state"`
	SkipUserInput    bool                           `json:"skip_user_input"`
	JSON             messageContextGlobalSystemJSON `json:"-"`
}

// messageContextGlobalSystemJSON contains the JSON metadata for the struct
// [MessageContextGlobalSystem]
type messageContextGlobalSystemJSON struct {
	Timezone         apijson.Field
	UserID           apijson.Field
	TurnCount        apijson.Field
	Locale           apijson.Field
	ReferenceTime    apijson.Field
	SessionStartTime apijson.Field
	State            apijson.Field
	SkipUserInput    apijson.Field
	raw              string
	ExtraFields      map[string]apijson.Field
}

func (r *MessageContextGlobalSystem) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r messageContextGlobalSystemJSON) RawJSON() string {
	return r.raw
}

// Param returns the values that were present in the response.
func (r MessageContextGlobalSystem) Param() MessageContextGlobalSystemParam {
	var p MessageContextGlobalSystemParam
	if !r.JSON.Timezone.IsMissing() {
		p.Timezone = param.F(r.Timezone)
	}
	if !r.JSON.UserID.IsMissing() {
		p.UserID = param.F(r.UserID)
	}
	if !r.JSON.TurnCount.IsMissing() {
		p.TurnCount = param.F(r.TurnCount)
	}
	if !r.JSON.Locale.IsMissing() {
		p.Locale = param.F(r.Locale)
	}
	if !r.JSON.ReferenceTime.IsMissing() {
		p.ReferenceTime = param.F(r.ReferenceTime)
	}
	if !r.JSON.SessionStartTime.IsMissing() {
		p.SessionStartTime = param.F(r.SessionStartTime)
	}
	if !r.JSON.State.IsMissing() {
		p.State = param.F(r.State)
	}
	if !r.JSON.SkipUserInput.IsMissing() {
		p.SkipUserInput = param.F(r.SkipUserInput)
	}
	return p
}

type MessageContextSkill struct {
	// Arbitrary variables that can be read and written by a particular
	// skill.
	UserDefined map[string]any            `json:"user_defined"`
	System      MessageContextSkillSystem `json:"system"`
	JSON        messageContextSkillJSON   `json:"-"`
}

// messageContextSkillJSON contains the JSON metadata for the struct
// [MessageContextSkill]
type messageContextSkillJSON struct {
	UserDefined apijson.Field
	System      apijson.Field
	raw         string
	ExtraFields map[string]apijson.Field
}

func (r *MessageContextSkill) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r messageContextSkillJSON) RawJSON() string {
	return r.raw
}

// MessageContextSkillSystem holds the skill's built-in variables. Its
// contents are opaque and must be sent back unchanged.
type MessageContextSkillSystem struct {
	State     string                        `json:"state"`
	Variables map[string]any                `json:"-,extras"`
	JSON      messageContextSkillSystemJSON `json:"-"`
}

// messageContextSkillSystemJSON contains the JSON metadata for the struct
// [MessageContextSkillSystem]
type messageContextSkillSystemJSON struct {
	State       apijson.Field
	raw         string
	ExtraFields map[string]apijson.Field
}

func (r *MessageContextSkillSystem) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r messageContextSkillSystemJSON) RawJSON() string {
	return r.raw
}

func (r MessageContextSkillSystem) MarshalJSON() (data []byte, err error) {
	return apijson.MarshalRoot(r)
}

// Param returns the system variables, state included, unchanged.
func (r MessageContextSkillSystem) Param() MessageContextSkillSystemParam {
	vars := maps.Clone(r.Variables)
	if !r.JSON.State.IsMissing() {
		if vars == nil {
			vars = map[string]any{}
		}
		vars["state"] = r.State
	}
	return MessageContextSkillSystemParam{Variables: vars}
}

type MessageParams struct {
	Input   param.Field[MessageInputParam]   `json:"input"`
	Context param.Field[MessageContextParam] `json:"context"`
	// A string value that identifies the user who is interacting with the
	// assistant. It is used for billing.
	UserID param.Field[string] `json:"user_id"`
}

func (r MessageParams) MarshalJSON() (data []byte, err error) {
	return apijson.MarshalRoot(r)
}

type MessageStatelessParams struct {
	Input   param.Field[MessageInputParam]   `json:"input"`
	Context param.Field[MessageContextParam] `json:"context"`
	UserID  param.Field[string]              `json:"user_id"`
}

func (r MessageStatelessParams) MarshalJSON() (data []byte, err error) {
	return apijson.MarshalRoot(r)
}

type MessageInputParam struct {
	MessageType  param.Field[MessageInputMessageType]  `json:"message_type"`
	Text         param.Field[string]                   `json:"text" validate:"max=2048"`
	Intents      param.Field[[]RuntimeIntentParam]     `json:"intents"`
	Entities     param.Field[[]RuntimeEntityParam]     `json:"entities"`
	SuggestionID param.Field[string]                   `json:"suggestion_id"`
	Options      param.Field[MessageInputOptionsParam] `json:"options"`
}

func (r MessageInputParam) MarshalJSON() (data []byte, err error) {
	return apijson.MarshalRoot(r)
}

// MessageInputOptionsParam tunes how a message is processed.
type MessageInputOptionsParam struct {
	// Whether to restart dialog processing at the root of the dialog,
	// regardless of any previously visited nodes.
	Restart          param.Field[bool]                             `json:"restart"`
	AlternateIntents param.Field[bool]                             `json:"alternate_intents"`
	Spelling         param.Field[MessageInputOptionsSpellingParam] `json:"spelling"`
	// Whether to return additional diagnostic information.
	Debug param.Field[bool] `json:"debug"`
	// Whether to return session context with the response.
	ReturnContext param.Field[bool] `json:"return_context"`
	Export        param.Field[bool] `json:"export"`
}

func (r MessageInputOptionsParam) MarshalJSON() (data []byte, err error) {
	return apijson.MarshalRoot(r)
}

type MessageInputOptionsSpellingParam struct {
	Suggestions param.Field[bool] `json:"suggestions"`
	AutoCorrect param.Field[bool] `json:"auto_correct"`
}

func (r MessageInputOptionsSpellingParam) MarshalJSON() (data []byte, err error) {
	return apijson.MarshalRoot(r)
}

type RuntimeIntentParam struct {
	Intent     param.Field[string]  `json:"intent,required"`
	Confidence param.Field[float64] `json:"confidence" validate:"gte=0,lte=1"`
}

func (r RuntimeIntentParam) MarshalJSON() (data []byte, err error) {
	return apijson.MarshalRoot(r)
}

type RuntimeEntityParam struct {
	Entity     param.Field[string]  `json:"entity,required"`
	Location   param.Field[[]int64] `json:"location" validate:"len=2"`
	Value      param.Field[string]  `json:"value,required"`
	Confidence param.Field[float64] `json:"confidence" validate:"gte=0,lte=1"`
}

func (r RuntimeEntityParam) MarshalJSON() (data []byte, err error) {
	return apijson.MarshalRoot(r)
}

type MessageContextParam struct {
	Global       param.Field[MessageContextGlobalParam]           `json:"global"`
	Skills       param.Field[map[string]MessageContextSkillParam] `json:"skills"`
	Integrations param.Field[map[string]any]                      `json:"integrations"`
}

func (r MessageContextParam) MarshalJSON() (data []byte, err error) {
	return apijson.MarshalRoot(r)
}

type MessageContextGlobalParam struct {
	System    param.Field[MessageContextGlobalSystemParam] `json:"system"`
	SessionID param.Field[string]                          `json:"session_id"`
}

func (r MessageContextGlobalParam) MarshalJSON() (data []byte, err error) {
	return apijson.MarshalRoot(r)
}

type MessageContextGlobalSystemParam struct {
	Timezone         param.Field[string] `json:"timezone"`
	UserID           param.Field[string] `json:"user_id"`
	TurnCount        param.Field[int64]  `json:"turn_count" validate:"gte=0"`
	Locale           param.Field[string] `json:"locale"`
	ReferenceTime    param.Field[string] `json:"reference_time"`
	SessionStartTime param.Field[string] `json:"session_start_time"`
	State            param.Field[string] `json:"state"`
	SkipUserInput    param.Field[bool]   `json:"skip_user_input"`
}

func (r MessageContextGlobalSystemParam) MarshalJSON() (data []byte, err error) {
	return apijson.MarshalRoot(r)
}

type MessageContextSkillParam struct {
	UserDefined param.Field[map[string]any]                 `json:"user_defined"`
	System      param.Field[MessageContextSkillSystemParam] `json:"system"`
}

func (r MessageContextSkillParam) MarshalJSON() (data []byte, err error) {
	return apijson.MarshalRoot(r)
}

// MessageContextSkillSystemParam carries a skill's system variables back
// to the service.
type MessageContextSkillSystemParam struct {
	Variables map[string]any `json:"-,extras"`
}

func (r MessageContextSkillSystemParam) MarshalJSON() (data []byte, err error) {
	return apijson.MarshalRoot(r)
}
