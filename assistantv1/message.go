package assistantv1

import (
	"net/url"

	"github.com/watson-developer-cloud/watson-go/internal/apijson"
	"github.com/watson-developer-cloud/watson-go/internal/param"
)

// MessageResponse is the dialog's answer to one message.
type MessageResponse struct {
	Input            MessageInput        `json:"input,required"`
	Intents          []RuntimeIntent     `json:"intents,required"`
	Entities         []RuntimeEntity     `json:"entities,required"`
	AlternateIntents bool                `json:"alternate_intents"`
	Context          Context             `json:"context,required"`
	Output           OutputData          `json:"output,required"`
	Actions          []DialogNodeAction  `json:"actions"`
	UserID           string              `json:"user_id"`
	JSON             messageResponseJSON `json:"-"`
}

// messageResponseJSON contains the JSON metadata for the struct
// [MessageResponse]
type messageResponseJSON struct {
	Input            apijson.Field
	Intents          apijson.Field
	Entities         apijson.Field
	AlternateIntents apijson.Field
	Context          apijson.Field
	Output           apijson.Field
	Actions          apijson.Field
	UserID           apijson.Field
	raw              string
	ExtraFields      map[string]apijson.Field
}

func (r *MessageResponse) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r messageResponseJSON) RawJSON() string {
	return r.raw
}

type MessageInput struct {
	Text                string           `json:"text"`
	SpellingSuggestions bool             `json:"spelling_suggestions"`
	SpellingAutoCorrect bool             `json:"spelling_auto_correct"`
	OriginalText        string           `json:"original_text"`
	SuggestedText       string           `json:"suggested_text"`
	JSON                messageInputJSON `json:"-"`
}

// messageInputJSON contains the JSON metadata for the struct [MessageInput]
type messageInputJSON struct {
	Text                apijson.Field
	SpellingSuggestions apijson.Field
	SpellingAutoCorrect apijson.Field
	OriginalText        apijson.Field
	SuggestedText       apijson.Field
	raw                 string
	ExtraFields         map[string]apijson.Field
}

func (r *MessageInput) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r messageInputJSON) RawJSON() string {
	return r.raw
}

// RuntimeIntent is an intent recognized in the user input.
type RuntimeIntent struct {
	Intent     string            `json:"intent,required"`
	Confidence float64           `json:"confidence"`
	JSON       runtimeIntentJSON `json:"-"`
}

// runtimeIntentJSON contains the JSON metadata for the struct [RuntimeIntent]
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

// RuntimeEntity is an entity value recognized in the user input. Location
// holds the zero-based start and end character offsets.
type RuntimeEntity struct {
	Entity     string            `json:"entity,required"`
	Location   []int64           `json:"location"`
	Value      string            `json:"value,required"`
	Confidence float64           `json:"confidence"`
	Groups     []CaptureGroup    `json:"groups"`
	JSON       runtimeEntityJSON `json:"-"`
}

// runtimeEntityJSON contains the JSON metadata for the struct [RuntimeEntity]
type runtimeEntityJSON struct {
	Entity      apijson.Field
	Location    apijson.Field
	Value       apijson.Field
	Confidence  apijson.Field
	Groups      apijson.Field
	raw         string
	ExtraFields map[string]apijson.Field
}

func (r *RuntimeEntity) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r runtimeEntityJSON) RawJSON() string {
	return r.raw
}

type CaptureGroup struct {
	Group    string           `json:"group,required"`
	Location []int64          `json:"location"`
	JSON     captureGroupJSON `json:"-"`
}

// captureGroupJSON contains the JSON metadata for the struct [CaptureGroup]
type captureGroupJSON struct {
	Group       apijson.Field
	Location    apijson.Field
	raw         string
	ExtraFields map[string]apijson.Field
}

func (r *CaptureGroup) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r captureGroupJSON) RawJSON() string {
	return r.raw
}

// Context is the conversation state. Besides the fields below it carries
// the dialog's context variables, which end up in Variables.
type Context struct {
	ConversationID string                 `json:"conversation_id"`
	System         map[string]any         `json:"system"`
	Metadata       MessageContextMetadata `json:"metadata"`
	Variables      map[string]any         `json:"-,extras"`
	JSON           contextJSON            `json:"-"`
}

// contextJSON contains the JSON metadata for the struct [Context]
type contextJSON struct {
	ConversationID apijson.Field
	System         apijson.Field
	Metadata       apijson.Field
	raw            string
	ExtraFields    map[string]apijson.Field
}

func (r *Context) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r contextJSON) RawJSON() string {
	return r.raw
}

// MarshalJSON writes Variables back as top level context variables.
func (r Context) MarshalJSON() (data []byte, err error) {
	return apijson.MarshalRoot(r)
}

// Param returns the context as params for the next message, keeping every
// variable.
func (r Context) Param() ContextParam {
	p := ContextParam{Variables: r.Variables}
	if r.ConversationID != "" {
		p.ConversationID = param.F(r.ConversationID)
	}
	if r.System != nil {
		p.System = param.F(r.System)
	}
	if r.Metadata.Deployment != "" || r.Metadata.UserID != "" {
		p.Metadata = param.F(MessageContextMetadataParam{
			Deployment: param.F(r.Metadata.Deployment),
			UserID:     param.F(r.Metadata.UserID),
		})
	}
	return p
}

type MessageContextMetadata struct {
	Deployment string                     `json:"deployment"`
	UserID     string                     `json:"user_id"`
	JSON       messageContextMetadataJSON `json:"-"`
}

// messageContextMetadataJSON contains the JSON metadata for the struct
// [MessageContextMetadata]
type messageContextMetadataJSON struct {
	Deployment  apijson.Field
	UserID      apijson.Field
	raw         string
	ExtraFields map[string]apijson.Field
}

func (r *MessageContextMetadata) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r messageContextMetadataJSON) RawJSON() string {
	return r.raw
}

// OutputData is what the dialog produced for the message.
type OutputData struct {
	NodesVisited        []string                   `json:"nodes_visited"`
	NodesVisitedDetails []DialogNodeVisitedDetails `json:"nodes_visited_details"`
	LogMessages         []LogMessage               `json:"log_messages,required"`
	Text                []string                   `json:"text"`
	Generic             []RuntimeResponseGeneric   `json:"generic"`
	JSON                outputDataJSON             `json:"-"`
}

// outputDataJSON contains the JSON metadata for the struct [OutputData]
type outputDataJSON struct {
	NodesVisited        apijson.Field
	NodesVisitedDetails apijson.Field
	LogMessages         apijson.Field
	Text                apijson.Field
	Generic             apijson.Field
	raw                 string
	ExtraFields         map[string]apijson.Field
}

func (r *OutputData) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r outputDataJSON) RawJSON() string {
	return r.raw
}

type DialogNodeVisitedDetails struct {
	DialogNode string                       `json:"dialog_node"`
	Title      string                       `json:"title"`
	Conditions string                       `json:"conditions"`
	JSON       dialogNodeVisitedDetailsJSON `json:"-"`
}

// dialogNodeVisitedDetailsJSON contains the JSON metadata for the struct
// [DialogNodeVisitedDetails]
type dialogNodeVisitedDetailsJSON struct {
	DialogNode  apijson.Field
	Title       apijson.Field
	Conditions  apijson.Field
	raw         string
	ExtraFields map[string]apijson.Field
}

func (r *DialogNodeVisitedDetails) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r dialogNodeVisitedDetailsJSON) RawJSON() string {
	return r.raw
}

type LogMessage struct {
	Level  LogMessageLevel  `json:"level,required"`
	Msg    string           `json:"msg,required"`
	Code   string           `json:"code,required"`
	Source LogMessageSource `json:"source"`
	JSON   logMessageJSON   `json:"-"`
}

// logMessageJSON contains the JSON metadata for the struct [LogMessage]
type logMessageJSON struct {
	Level       apijson.Field
	Msg         apijson.Field
	Code        apijson.Field
	Source      apijson.Field
	raw         string
	ExtraFields map[string]apijson.Field
}

func (r *LogMessage) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r logMessageJSON) RawJSON() string {
	return r.raw
}

type LogMessageLevel string

const (
	LogMessageLevelInfo  LogMessageLevel = "info"
	LogMessageLevelError LogMessageLevel = "error"
	LogMessageLevelWarn  LogMessageLevel = "warn"
)

func (r LogMessageLevel) IsKnown() bool {
	switch r {
	case LogMessageLevelInfo, LogMessageLevelError, LogMessageLevelWarn:
		return true
	}
	return false
}

// LogMessageSource points at the dialog node that logged the message.
type LogMessageSource struct {
	Type       string               `json:"type,required"`
	DialogNode string               `json:"dialog_node,required"`
	JSON       logMessageSourceJSON `json:"-"`
}

// logMessageSourceJSON contains the JSON metadata for the struct
// [LogMessageSource]
type logMessageSourceJSON struct {
	Type        apijson.Field
	DialogNode  apijson.Field
	raw         string
	ExtraFields map[string]apijson.Field
}

func (r *LogMessageSource) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r logMessageSourceJSON) RawJSON() string {
	return r.raw
}

// RuntimeResponseGeneric is one response of the dialog output. The fields
// that are set depend on ResponseType.
type RuntimeResponseGeneric struct {
	ResponseType        RuntimeResponseGenericResponseType `json:"response_type,required"`
	Text                string                             `json:"text"`
	Time                int64                              `json:"time"`
	Typing              bool                               `json:"typing"`
	Source              string                             `json:"source"`
	Title               string                             `json:"title"`
	Description         string                             `json:"description"`
	Preference          string                             `json:"preference"`
	Options             []DialogNodeOutputOptionsElement   `json:"options"`
	MessageToHumanAgent string                             `json:"message_to_human_agent"`
	Topic               string                             `json:"topic"`
	DialogNode          string                             `json:"dialog_node"`
	JSON                runtimeResponseGenericJSON         `json:"-"`
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
	MessageToHumanAgent apijson.Field
	Topic               apijson.Field
	DialogNode          apijson.Field
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
	RuntimeResponseGenericResponseTypeUserDefined    RuntimeResponseGenericResponseType = "user_defined"
	RuntimeResponseGenericResponseTypeVideo          RuntimeResponseGenericResponseType = "video"
	RuntimeResponseGenericResponseTypeAudio          RuntimeResponseGenericResponseType = "audio"
	RuntimeResponseGenericResponseTypeIframe         RuntimeResponseGenericResponseType = "iframe"
)

func (r RuntimeResponseGenericResponseType) IsKnown() bool {
	switch r {
	case RuntimeResponseGenericResponseTypeText, RuntimeResponseGenericResponseTypePause,
		RuntimeResponseGenericResponseTypeImage, RuntimeResponseGenericResponseTypeOption,
		RuntimeResponseGenericResponseTypeConnectToAgent, RuntimeResponseGenericResponseTypeSuggestion,
		RuntimeResponseGenericResponseTypeUserDefined, RuntimeResponseGenericResponseTypeVideo,
		RuntimeResponseGenericResponseTypeAudio, RuntimeResponseGenericResponseTypeIframe:
		return true
	}
	return false
}

type MessageParams struct {
	// An input object that includes the input text.
	Input param.Field[MessageInputParam] `json:"input"`
	// Intents to use when evaluating the user input. Include intents from
	// the previous response to continue using those intents rather than
	// trying to recognize intents in the new input.
	Intents  param.Field[[]RuntimeIntentParam] `json:"intents"`
	Entities param.Field[[]RuntimeEntityParam] `json:"entities"`
	// Whether to return more than one intent.
	AlternateIntents param.Field[bool]         `json:"alternate_intents"`
	Context          param.Field[ContextParam] `json:"context"`
	// A string value that identifies the user who is interacting with the
	// workspace. It is used for billing.
	UserID param.Field[string] `json:"user_id"`
	// Whether to include additional diagnostic information about the dialog
	// nodes that were visited during processing of the message.
	NodesVisitedDetails param.Field[bool] `query:"nodes_visited_details"`
}

func (r MessageParams) MarshalJSON() (data []byte, err error) {
	return apijson.MarshalRoot(r)
}

// URLQuery serializes [MessageParams]'s query parameters as `url.Values`.
func (r MessageParams) URLQuery() (v url.Values) {
	return urlQuery(r)
}

type MessageInputParam struct {
	Text                param.Field[string] `json:"text" validate:"max=2048"`
	SpellingSuggestions param.Field[bool]   `json:"spelling_suggestions"`
	SpellingAutoCorrect param.Field[bool]   `json:"spelling_auto_correct"`
}

func (r MessageInputParam) MarshalJSON() (data []byte, err error) {
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

// ContextParam is the conversation state sent with a message. Variables
// are sent as top level context variables.
type ContextParam struct {
	ConversationID param.Field[string]                      `json:"conversation_id"`
	System         param.Field[map[string]any]              `json:"system"`
	Metadata       param.Field[MessageContextMetadataParam] `json:"metadata"`
	Variables      map[string]any                           `json:"-,extras"`
}

func (r ContextParam) MarshalJSON() (data []byte, err error) {
	return apijson.MarshalRoot(r)
}

type MessageContextMetadataParam struct {
	Deployment param.Field[string] `json:"deployment"`
	UserID     param.Field[string] `json:"user_id"`
}

func (r MessageContextMetadataParam) MarshalJSON() (data []byte, err error) {
	return apijson.MarshalRoot(r)
}
