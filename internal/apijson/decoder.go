package apijson

import (
	"encoding/json"
	"fmt"
	"reflect"
	"unsafe"

	"github.com/tidwall/gjson"
)

// Error reports a payload that does not fit the model it is decoded into.
// It is never swallowed: a field of the wrong JSON type fails the whole
// decode instead of being coerced.
type Error struct {
	Type  reflect.Type
	Field string
	Err   error
}

func (e *Error) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("apijson: cannot decode %s: %v", e.Type, e.Err)
	}
	return fmt.Sprintf("apijson: cannot decode field %q of %s: %v", e.Field, e.Type, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// UnmarshalRoot decodes raw into the struct pointed to by to. Besides the
// data fields it fills the struct's `JSON` metadata field, if any: the
// status and raw text of every field, unknown keys under ExtraFields, and
// the whole payload for RawJSON. Unknown keys are also decoded into the
// `json:"-,extras"` map when the struct declares one.
func UnmarshalRoot(raw []byte, to any) error {
	v := reflect.ValueOf(to)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("apijson: UnmarshalRoot needs a non-nil struct pointer, got %T", to)
	}
	if !gjson.ValidBytes(raw) {
		return &Error{Type: v.Elem().Type(), Err: fmt.Errorf("invalid JSON")}
	}
	return decodeStruct(gjson.ParseBytes(raw), v.Elem())
}

func decodeStruct(root gjson.Result, v reflect.Value) error {
	t := v.Type()
	v.Set(reflect.Zero(t))
	if root.Type == gjson.Null {
		return nil
	}
	if !root.IsObject() {
		return &Error{Type: t, Err: fmt.Errorf("expected a JSON object, got %s", root.Type)}
	}

	info := typeInfo(t)
	values := map[string]gjson.Result{}
	var order []string
	root.ForEach(func(key, value gjson.Result) bool {
		if _, seen := values[key.Str]; !seen {
			order = append(order, key.Str)
		}
		values[key.Str] = value
		return true
	})

	var meta reflect.Value
	if info.meta != nil {
		meta = v.FieldByIndex(info.meta)
	}

	known := make(map[string]bool, len(info.fields))
	for _, fi := range info.fields {
		known[fi.tag.name] = true
		fv := v.FieldByIndex(fi.index)
		res, ok := values[fi.tag.name]

		st := valid
		switch {
		case !ok:
			st = missing
		case res.Type == gjson.Null:
			st = null
		default:
			if err := json.Unmarshal([]byte(res.Raw), fv.Addr().Interface()); err != nil {
				return &Error{Type: t, Field: fi.tag.name, Err: err}
			}
		}
		setMeta(meta, t.FieldByIndex(fi.index).Name, Field{raw: res.Raw, status: st})
	}

	var extras reflect.Value
	if info.extras != nil {
		extras = v.FieldByIndex(info.extras)
	}
	for _, key := range order {
		if known[key] {
			continue
		}
		res := values[key]
		if extras.IsValid() && extras.Kind() == reflect.Map {
			if extras.IsNil() {
				extras.Set(reflect.MakeMap(extras.Type()))
			}
			elem := reflect.New(extras.Type().Elem())
			if err := json.Unmarshal([]byte(res.Raw), elem.Interface()); err != nil {
				return &Error{Type: t, Field: key, Err: err}
			}
			extras.SetMapIndex(reflect.ValueOf(key), elem.Elem())
		}
		addExtraMeta(meta, key, Field{raw: res.Raw, status: valid})
	}

	setRaw(meta, root.Raw)
	return nil
}

func setMeta(meta reflect.Value, name string, f Field) {
	if !meta.IsValid() {
		return
	}
	mf := meta.FieldByName(name)
	if mf.IsValid() && mf.CanSet() && mf.Type() == reflect.TypeOf(Field{}) {
		mf.Set(reflect.ValueOf(f))
	}
}

func addExtraMeta(meta reflect.Value, key string, f Field) {
	if !meta.IsValid() {
		return
	}
	ef := meta.FieldByName("ExtraFields")
	if !ef.IsValid() || ef.Kind() != reflect.Map || !ef.CanSet() {
		return
	}
	if ef.IsNil() {
		ef.Set(reflect.MakeMap(ef.Type()))
	}
	ef.SetMapIndex(reflect.ValueOf(key), reflect.ValueOf(f))
}

// setRaw writes the unexported raw field of a metadata struct.
func setRaw(meta reflect.Value, raw string) {
	if !meta.IsValid() || !meta.CanAddr() {
		return
	}
	rf := meta.FieldByName("raw")
	if !rf.IsValid() || rf.Kind() != reflect.String {
		return
	}
	reflect.NewAt(rf.Type(), unsafe.Pointer(rf.UnsafeAddr())).Elem().SetString(raw)
}
