// Package assistantv1 is a client for version 1 of the Watson Assistant
// API: workspaces, their intents and dialog nodes, and the message
// endpoint that runs a workspace's dialog.
package assistantv1

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"slices"

	"github.com/watson-developer-cloud/watson-go/internal/apijson"
	"github.com/watson-developer-cloud/watson-go/internal/apiquery"
	"github.com/watson-developer-cloud/watson-go/internal/param"
	"github.com/watson-developer-cloud/watson-go/internal/requestconfig"
	"github.com/watson-developer-cloud/watson-go/option"
)

const (
	// DefaultServiceName is the name credentials are looked up under, e.g.
	// CONVERSATION_APIKEY.
	DefaultServiceName = "conversation"
	DefaultServiceURL  = "https://api.us-south.assistant.watson.cloud.ibm.com"
	// DefaultVersion is the API version date sent with every request.
	DefaultVersion = "2021-06-14"
)

// Service is the Watson Assistant v1 client. Create it with [NewService].
type Service struct {
	Options     []option.RequestOption
	Workspaces  *WorkspaceService
	Intents     *IntentService
	DialogNodes *DialogNodeService
}

// NewService generates a new client with the default option read from the
// environment (CONVERSATION_URL, CONVERSATION_APIKEY, ...). The option
// passed in as arguments are applied after these default arguments, and all
// option will be passed down to the services and requests that this client
// makes.
func NewService(opts ...option.RequestOption) (r *Service) {
	defaults := []option.RequestOption{
		option.WithBaseURL(DefaultServiceURL),
		option.WithVersion(DefaultVersion),
		option.WithServiceCredentials(DefaultServiceName),
	}
	opts = append(defaults, opts...)

	r = &Service{Options: opts}
	r.Workspaces = NewWorkspaceService(opts...)
	r.Intents = NewIntentService(opts...)
	r.DialogNodes = NewDialogNodeService(opts...)
	return
}

func analytics(operationID string) option.RequestOption {
	return requestconfig.WithAnalytics(DefaultServiceName, "V1", operationID)
}

// Message sends user input to a workspace and returns the dialog's
// response. State is kept by the caller: pass back the Context of the
// previous response to continue a conversation.
func (r *Service) Message(ctx context.Context, workspaceID string, body MessageParams, opts ...option.RequestOption) (res *MessageResponse, err error) {
	opts = slices.Concat(r.Options, []option.RequestOption{analytics("message")}, opts)
	if err = param.RequirePath("workspace_id", workspaceID); err != nil {
		return
	}
	path := fmt.Sprintf("v1/workspaces/%s/message", url.PathEscape(workspaceID))
	err = requestconfig.ExecuteNewRequest(ctx, http.MethodPost, path, body, &res, opts...)
	return
}

// Pagination is the paging information returned by list operations.
type Pagination struct {
	RefreshURL    string         `json:"refresh_url,required"`
	NextURL       string         `json:"next_url"`
	Total         int64          `json:"total"`
	Matched       int64          `json:"matched"`
	RefreshCursor string         `json:"refresh_cursor"`
	NextCursor    string         `json:"next_cursor"`
	JSON          paginationJSON `json:"-"`
}

// paginationJSON contains the JSON metadata for the struct [Pagination]
type paginationJSON struct {
	RefreshURL    apijson.Field
	NextURL       apijson.Field
	Total         apijson.Field
	Matched       apijson.Field
	RefreshCursor apijson.Field
	NextCursor    apijson.Field
	raw           string
	ExtraFields   map[string]apijson.Field
}

func (r *Pagination) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r paginationJSON) RawJSON() string {
	return r.raw
}

// ListSort orders list results. Prefix a field with "-" for descending
// order.
type ListSort string

const (
	ListSortName           ListSort = "name"
	ListSortNameDesc       ListSort = "-name"
	ListSortUpdated        ListSort = "updated"
	ListSortUpdatedDesc    ListSort = "-updated"
	ListSortDialogNode     ListSort = "dialog_node"
	ListSortDialogNodeDesc ListSort = "-dialog_node"
	ListSortIntent         ListSort = "intent"
	ListSortIntentDesc     ListSort = "-intent"
)

func (r ListSort) IsKnown() bool {
	switch r {
	case ListSortName, ListSortNameDesc, ListSortUpdated, ListSortUpdatedDesc,
		ListSortDialogNode, ListSortDialogNodeDesc, ListSortIntent, ListSortIntentDesc:
		return true
	}
	return false
}

func urlQuery(params any) url.Values {
	return apiquery.MarshalWithSettings(params, apiquery.QuerySettings{
		ArrayFormat: apiquery.ArrayQueryFormatComma,
	})
}
