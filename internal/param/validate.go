package param

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Violation describes one failed rule on one field.
type Violation struct {
	// Field is the wire name of the offending field, dotted for nested
	// params and indexed for list elements, e.g. "output.generic[0].values".
	Field string
	// Rule is the failed rule: "required" or a validator tag such as "max".
	Rule  string
	Param string
}

func (v Violation) String() string {
	return v.Field + ": " + describe(v.Rule, v.Param)
}

// ValidationError is returned when a params struct is not fit to be sent.
// No request is made when it is returned.
type ValidationError struct {
	// Params is the Go type name of the params struct, or "path" for a
	// missing path argument.
	Params     string
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	return fmt.Sprintf("invalid %s: %s", e.Params, strings.Join(parts, "; "))
}

// Has reports whether field failed rule.
func (e *ValidationError) Has(field, rule string) bool {
	for _, v := range e.Violations {
		if v.Field == field && v.Rule == rule {
			return true
		}
	}
	return false
}

// RequirePath returns a *ValidationError when a path argument is empty.
func RequirePath(name, value string) error {
	if value != "" {
		return nil
	}
	return &ValidationError{
		Params:     "path",
		Violations: []Violation{{Field: name, Rule: "required"}},
	}
}

// ValidateStruct checks every [Field] of a params struct, recursing into
// nested params and lists of params:
//
//   - a field whose json or query tag carries the "required" option must be
//     present and not null;
//   - a present, non-null field with a `validate:"..."` tag must satisfy it.
//
// Values that are not structs are accepted as is.
func ValidateStruct(v any) error {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}
	var violations []Violation
	walk(rv, "", &violations)
	if len(violations) == 0 {
		return nil
	}
	return &ValidationError{Params: rv.Type().Name(), Violations: violations}
}

var fieldLikeType = reflect.TypeOf((*FieldLike)(nil)).Elem()

func walk(rv reflect.Value, prefix string, out *[]Violation) {
	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		if sf.Anonymous && sf.Type.Kind() == reflect.Struct {
			walk(rv.Field(i), prefix, out)
			continue
		}
		if !sf.Type.Implements(fieldLikeType) {
			continue
		}
		name, required := wireName(sf)
		if name == "" {
			continue
		}
		path := prefix + name
		f := rv.Field(i).Interface().(FieldLike)

		if !f.IsPresent() || f.IsNull() {
			if required {
				*out = append(*out, Violation{Field: path, Rule: "required"})
			}
			continue
		}

		// Constraints and nested fields describe T, not the raw override.
		if f.IsRaw() {
			continue
		}
		value := f.Interface()
		if tag := sf.Tag.Get("validate"); tag != "" {
			checkTag(value, tag, path, out)
		}
		descend(reflect.ValueOf(value), path, out)
	}
}

func descend(rv reflect.Value, path string, out *[]Violation) {
	switch rv.Kind() {
	case reflect.Struct:
		walk(rv, path+".", out)
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() != reflect.Struct {
			return
		}
		for i := 0; i < rv.Len(); i++ {
			walk(rv.Index(i), fmt.Sprintf("%s[%d].", path, i), out)
		}
	}
}

func checkTag(value any, tag, path string, out *[]Violation) {
	err := validate.Var(value, tag)
	if err == nil {
		return
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		*out = append(*out, Violation{Field: path, Rule: tag})
		return
	}
	for _, fe := range fieldErrs {
		*out = append(*out, Violation{Field: path, Rule: fe.Tag(), Param: fe.Param()})
	}
}

// wireName returns the name a field has on the wire and whether it is
// required. Body fields use the json tag, query fields the query tag.
func wireName(sf reflect.StructField) (string, bool) {
	for _, key := range []string{"json", "query"} {
		tag, ok := sf.Tag.Lookup(key)
		if !ok {
			continue
		}
		parts := strings.Split(tag, ",")
		if parts[0] == "-" {
			return "", false
		}
		name := parts[0]
		if name == "" {
			name = sf.Name
		}
		for _, opt := range parts[1:] {
			if opt == "required" {
				return name, true
			}
		}
		return name, false
	}
	return "", false
}

func describe(rule, param string) string {
	switch rule {
	case "required":
		return "required"
	case "min":
		return fmt.Sprintf("must be at least %s", param)
	case "max":
		return fmt.Sprintf("must be at most %s", param)
	case "gte":
		return fmt.Sprintf("must be at least %s", param)
	case "lte":
		return fmt.Sprintf("must be at most %s", param)
	case "oneof":
		return fmt.Sprintf("must be one of: %s", param)
	case "url":
		return "must be a valid URL"
	default:
		if param != "" {
			return fmt.Sprintf("failed %s=%s validation", rule, param)
		}
		return fmt.Sprintf("failed %s validation", rule)
	}
}
