package param

import (
	"encoding/json"
	"fmt"
)

// FieldLike is implemented by every [Field], whatever its type parameter.
// Encoders, validators and the merge-patch projection use it to inspect a
// field without knowing T.
type FieldLike interface {
	IsPresent() bool
	IsNull() bool
	IsRaw() bool
	Interface() any
}

// Field is a wrapper used for all values sent to the API, to distinguish
// zero values from null or omitted fields.
//
// A Field is in exactly one of three states:
//
//   - unset: Present is false. The field is left out of request bodies,
//     query strings and patches.
//   - null: Present and Null are true. The field is sent as JSON null.
//   - set: Present is true and Value (or Raw, if non-nil) is sent.
//
// It should be created with the helpers in the root package, such as
// watson.F, watson.Null or watson.Raw.
type Field[T any] struct {
	Value   T
	Null    bool
	Present bool
	Raw     any
}

// F returns a field set to value.
func F[T any](value T) Field[T] { return Field[T]{Value: value, Present: true} }

// Null returns a field explicitly set to null.
func Null[T any]() Field[T] { return Field[T]{Null: true, Present: true} }

// Raw returns a field whose wire value is raw instead of a T. It is an
// escape hatch for values the model does not describe.
func Raw[T any](raw any) Field[T] { return Field[T]{Raw: raw, Present: true} }

func (f Field[T]) IsPresent() bool { return f.Present }

func (f Field[T]) IsNull() bool { return f.Present && f.Null }

func (f Field[T]) IsRaw() bool { return f.Present && !f.Null && f.Raw != nil }

// Get returns the value and whether it was set to something other than null.
func (f Field[T]) Get() (T, bool) {
	if !f.Present || f.Null || f.Raw != nil {
		var zero T
		return zero, false
	}
	return f.Value, true
}

// Interface returns the value that goes on the wire: nil for unset or null
// fields, Raw when provided, and Value otherwise.
func (f Field[T]) Interface() any {
	if !f.Present || f.Null {
		return nil
	}
	if f.Raw != nil {
		return f.Raw
	}
	return f.Value
}

func (f Field[T]) String() string {
	switch {
	case !f.Present:
		return "<unset>"
	case f.Null:
		return "null"
	case f.Raw != nil:
		return fmt.Sprintf("%v", f.Raw)
	}
	return fmt.Sprintf("%v", f.Value)
}

// MarshalJSON makes a Field usable with encoding/json on its own. Unset
// fields marshal as null; the apijson encoder omits them before reaching
// this point.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Interface())
}

// UnmarshalJSON marks the field present. A JSON null marks it null. Keys
// missing from the document never reach this method, so they stay unset.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	*f = Field[T]{Present: true}
	if string(data) == "null" {
		f.Null = true
		return nil
	}
	return json.Unmarshal(data, &f.Value)
}
