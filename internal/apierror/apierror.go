package apierror

import (
	"fmt"
	"net/http"
	"net/http/httputil"

	"github.com/tidwall/gjson"
)

// ErrorDetail is one entry of the `errors` array returned by the newer
// Watson APIs.
type ErrorDetail struct {
	Code     string
	Message  string
	MoreInfo string
}

// Error represents an error that originates from the API, i.e. when a
// request is made and the API responds with a status code of 400 or more.
//
// Both Watson error shapes are understood:
//
//	{"error": "Resource not found", "code": 404}
//	{"errors": [{"code": "not_found", "message": "..."}], "trace": "..."}
type Error struct {
	StatusCode int
	// Message is the first human readable message found in the body, or
	// the HTTP status text when the body has none.
	Message string
	// Code is the error code reported in the body, if any.
	Code     string
	Errors   []ErrorDetail
	Trace    string
	Request  *http.Request
	Response *http.Response
	raw      string
}

// New builds an *Error from a response and its already read body.
func New(req *http.Request, res *http.Response, body []byte) *Error {
	e := &Error{
		StatusCode: res.StatusCode,
		Request:    req,
		Response:   res,
		raw:        string(body),
	}
	if !gjson.ValidBytes(body) {
		e.Message = http.StatusText(res.StatusCode)
		return e
	}
	root := gjson.ParseBytes(body)
	root.Get("errors").ForEach(func(_, item gjson.Result) bool {
		e.Errors = append(e.Errors, ErrorDetail{
			Code:     item.Get("code").String(),
			Message:  item.Get("message").String(),
			MoreInfo: item.Get("more_info").String(),
		})
		return true
	})
	e.Trace = root.Get("trace").String()

	switch {
	case root.Get("error").Type == gjson.String:
		e.Message = root.Get("error").String()
	case len(e.Errors) > 0:
		e.Message = e.Errors[0].Message
	case root.Get("message").Exists():
		e.Message = root.Get("message").String()
	case root.Get("errorMessage").Exists():
		e.Message = root.Get("errorMessage").String()
	default:
		e.Message = http.StatusText(res.StatusCode)
	}

	if code := root.Get("code"); code.Exists() {
		e.Code = code.String()
	} else if len(e.Errors) > 0 {
		e.Code = e.Errors[0].Code
	}
	return e
}

// RawJSON returns the unmodified JSON received from the API.
func (r *Error) RawJSON() string { return r.raw }

func (r *Error) Error() string {
	method, target := "", ""
	if r.Request != nil {
		method = r.Request.Method
		target = r.Request.URL.String()
	}
	return fmt.Sprintf("%s %q: %d %s: %s", method, target, r.StatusCode, http.StatusText(r.StatusCode), r.Message)
}

func (r *Error) DumpRequest(body bool) []byte {
	if r.Request == nil {
		return nil
	}
	if r.Request.GetBody != nil {
		r.Request.Body, _ = r.Request.GetBody()
	}
	out, _ := httputil.DumpRequestOut(r.Request, body)
	return out
}

func (r *Error) DumpResponse(body bool) []byte {
	if r.Response == nil {
		return nil
	}
	out, _ := httputil.DumpResponse(r.Response, body)
	return out
}

// DecodeError is returned when the API answered successfully but the body
// could not be decoded into the declared response model. It is distinct
// from transport failures and from [Error].
type DecodeError struct {
	StatusCode int
	Body       []byte
	Request    *http.Request
	Err        error
}

func (e *DecodeError) Error() string {
	target := ""
	if e.Request != nil {
		target = e.Request.Method + " " + e.Request.URL.Path + ": "
	}
	return fmt.Sprintf("%sdecoding %d response: %v", target, e.StatusCode, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
