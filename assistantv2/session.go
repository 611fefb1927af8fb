package assistantv2

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

// SessionService manages the sessions of an assistant.
//
// You should not instantiate this service directly, and instead use the
// [NewSessionService] method instead.
type SessionService struct {
	Options []option.RequestOption
}

// NewSessionService generates a new service that applies the given options
// to each request. These options are applied after the parent client's
// options (if there is one), and before any request-specific options.
func NewSessionService(opts ...option.RequestOption) (r *SessionService) {
	r = &SessionService{}
	r.Options = opts
	return
}

// New creates a session. A session is used to send user input to a skill
// and receive responses. It also maintains the state of the conversation.
// Sessions expire after a period of inactivity set on the assistant.
func (r *SessionService) New(ctx context.Context, assistantID string, opts ...option.RequestOption) (res *Session, err error) {
	opts = slices.Concat(r.Options, []option.RequestOption{analytics("createSession")}, opts)
	if err = param.RequirePath("assistant_id", assistantID); err != nil {
		return
	}
	path := fmt.Sprintf("v2/assistants/%s/sessions", url.PathEscape(assistantID))
	err = requestconfig.ExecuteNewRequest(ctx, http.MethodPost, path, nil, &res, opts...)
	return
}

// Delete ends a session before it times out.
func (r *SessionService) Delete(ctx context.Context, assistantID string, sessionID string, opts ...option.RequestOption) (err error) {
	opts = slices.Concat(r.Options, []option.RequestOption{analytics("deleteSession")}, opts)
	if err = param.RequirePath("assistant_id", assistantID); err != nil {
		return
	}
	if err = param.RequirePath("session_id", sessionID); err != nil {
		return
	}
	path := fmt.Sprintf("v2/assistants/%s/sessions/%s", url.PathEscape(assistantID), url.PathEscape(sessionID))
	err = requestconfig.ExecuteNewRequest(ctx, http.MethodDelete, path, nil, nil, opts...)
	return
}

type Session struct {
	// The session ID.
	SessionID string      `json:"session_id,required"`
	JSON      sessionJSON `json:"-"`
}

// sessionJSON contains the JSON metadata for the struct [Session]
type sessionJSON struct {
	SessionID   apijson.Field
	raw         string
	ExtraFields map[string]apijson.Field
}

func (r *Session) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r sessionJSON) RawJSON() string {
	return r.raw
}
