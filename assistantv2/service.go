// Package assistantv2 is a client for version 2 of the Watson Assistant
// API. Conversations run against an assistant, either inside a session
// that keeps their state on the service or statelessly, with the caller
// sending the full context back on every turn.
package assistantv2

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"slices"

	"github.com/watson-developer-cloud/watson-go/internal/param"
	"github.com/watson-developer-cloud/watson-go/internal/requestconfig"
	"github.com/watson-developer-cloud/watson-go/option"
)

const (
	// DefaultServiceName is the name credentials are looked up under, e.g.
	// CONVERSATION_APIKEY.
	DefaultServiceName = "conversation"
	DefaultServiceURL  = "https://api.us-south.assistant.watson.cloud.ibm.com"
	DefaultVersion     = "2021-06-14"
)

// Service is the Watson Assistant v2 client. Create it with [NewService].
type Service struct {
	Options  []option.RequestOption
	Sessions *SessionService
}

// NewService generates a new client with the default option read from the
// environment (CONVERSATION_URL, CONVERSATION_APIKEY, ...). The option
// passed in as arguments are applied after these default arguments.
func NewService(opts ...option.RequestOption) (r *Service) {
	defaults := []option.RequestOption{
		option.WithBaseURL(DefaultServiceURL),
		option.WithVersion(DefaultVersion),
		option.WithServiceCredentials(DefaultServiceName),
	}
	opts = append(defaults, opts...)

	r = &Service{Options: opts}
	r.Sessions = NewSessionService(opts...)
	return
}

func analytics(operationID string) option.RequestOption {
	return requestconfig.WithAnalytics(DefaultServiceName, "V2", operationID)
}

// Message sends user input to an assistant within a session and returns
// its response.
func (r *Service) Message(ctx context.Context, assistantID string, sessionID string, body MessageParams, opts ...option.RequestOption) (res *MessageResponse, err error) {
	opts = slices.Concat(r.Options, []option.RequestOption{analytics("message")}, opts)
	if err = param.RequirePath("assistant_id", assistantID); err != nil {
		return
	}
	if err = param.RequirePath("session_id", sessionID); err != nil {
		return
	}
	path := fmt.Sprintf("v2/assistants/%s/sessions/%s/message", url.PathEscape(assistantID), url.PathEscape(sessionID))
	err = requestconfig.ExecuteNewRequest(ctx, http.MethodPost, path, body, &res, opts...)
	return
}

// MessageStateless sends user input to an assistant without a session.
// The service keeps no state: pass back the Context of the previous
// response to continue a conversation.
func (r *Service) MessageStateless(ctx context.Context, assistantID string, body MessageStatelessParams, opts ...option.RequestOption) (res *MessageStatelessResponse, err error) {
	opts = slices.Concat(r.Options, []option.RequestOption{analytics("messageStateless")}, opts)
	if err = param.RequirePath("assistant_id", assistantID); err != nil {
		return
	}
	path := fmt.Sprintf("v2/assistants/%s/message", url.PathEscape(assistantID))
	err = requestconfig.ExecuteNewRequest(ctx, http.MethodPost, path, body, &res, opts...)
	return
}
