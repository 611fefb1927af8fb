package watson

import (
	"github.com/watson-developer-cloud/watson-go/internal/apierror"
	"github.com/watson-developer-cloud/watson-go/internal/apijson"
	"github.com/watson-developer-cloud/watson-go/internal/param"
)

// Error is returned for every response with a status code of 400 or more.
type Error = apierror.Error

// This is an alias to an internal type.
type ErrorDetail = apierror.ErrorDetail

// DecodeError is returned when a successful response does not match the
// model it is decoded into.
type DecodeError = apierror.DecodeError

// ValidationError is returned, before any request is made, when params are
// missing required fields or hold values outside their constraints.
type ValidationError = param.ValidationError

// This is an alias to an internal type.
type Violation = param.Violation

// Patch is the JSON Merge Patch body built by the AsPatch method of update
// params.
type Patch = apijson.Patch
