package watson

import (
	"github.com/watson-developer-cloud/watson-go/internal/param"
)

// F is a param field helper used to initialize a [param.Field] generic struct.
// This helps specify null, zero values, and overrides, as well as normal values.
func F[T any](value T) param.Field[T] { return param.F(value) }

// Null is a param field helper which explicitly sends null to the API. In an
// update, this clears the remote value.
func Null[T any]() param.Field[T] { return param.Null[T]() }

// Raw is a param field helper for specifying values for fields when the
// type you are looking to send is different from the type that is specified in
// the SDK. For example, if the type of the field is an integer, but you want
// to send a float, you could do that by setting the corresponding field with
// Raw[int](0.5).
func Raw[T any](value any) param.Field[T] { return param.Raw[T](value) }

// Int is a param field helper which helps specify integers. This is
// particularly helpful when specifying integer constants for fields.
func Int(value int64) param.Field[int64] { return param.F(value) }

// String is a param field helper which helps specify strings.
func String(value string) param.Field[string] { return param.F(value) }

// Float is a param field helper which helps specify floats.
func Float(value float64) param.Field[float64] { return param.F(value) }

// Bool is a param field helper which helps specify bools.
func Bool(value bool) param.Field[bool] { return param.F(value) }

// Validate checks a params struct the way every service method does before
// sending it: fields tagged required must be set to something other than
// null, and set values must satisfy their constraints. It returns a
// [*ValidationError] listing every violation.
func Validate(params any) error {
	return param.ValidateStruct(params)
}
