package apijson

import (
	"encoding/json"
	"reflect"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/watson-developer-cloud/watson-go/internal/param"
)

// MarshalRoot encodes a params struct as a JSON object. Keys keep the
// declaration order of the struct. A [param.Field] that was never set is
// omitted; one set to null is written as null. Fields without a json tag,
// such as query parameters, are not part of the body.
func MarshalRoot(value any) ([]byte, error) {
	v := reflect.ValueOf(value)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return []byte("null"), nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return json.Marshal(value)
	}

	info := typeInfo(v.Type())
	out := []byte("{}")
	for _, fi := range info.fields {
		raw, ok, err := encodeField(v.FieldByIndex(fi.index))
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		out, err = sjson.SetRawBytes(out, EscapeKey(fi.tag.name), raw)
		if err != nil {
			return nil, err
		}
	}
	if info.extras != nil {
		return encodeExtras(out, v.FieldByIndex(info.extras))
	}
	return out, nil
}

// encodeExtras appends the entries of an extras map after the declared
// fields, in key order. Declared fields win over extras of the same name.
func encodeExtras(out []byte, extras reflect.Value) ([]byte, error) {
	if extras.Kind() != reflect.Map || extras.Len() == 0 {
		return out, nil
	}
	keys := make([]string, 0, extras.Len())
	for _, k := range extras.MapKeys() {
		keys = append(keys, k.String())
	}
	sort.Strings(keys)
	for _, k := range keys {
		key := EscapeKey(k)
		if gjson.GetBytes(out, key).Exists() {
			continue
		}
		raw, err := json.Marshal(extras.MapIndex(reflect.ValueOf(k).Convert(extras.Type().Key())).Interface())
		if err != nil {
			return nil, err
		}
		if out, err = sjson.SetRawBytes(out, key, raw); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func encodeField(fv reflect.Value) ([]byte, bool, error) {
	if f, ok := fv.Interface().(param.FieldLike); ok {
		if !f.IsPresent() {
			return nil, false, nil
		}
		if f.IsNull() {
			return []byte("null"), true, nil
		}
		raw, err := json.Marshal(f.Interface())
		return raw, true, err
	}
	if fv.IsZero() {
		return nil, false, nil
	}
	raw, err := json.Marshal(fv.Interface())
	return raw, true, err
}

// EscapeKey escapes the characters that sjson and gjson treat as path
// syntax so that key is addressed literally.
func EscapeKey(key string) string {
	if !strings.ContainsAny(key, `.*?|#@\:!`) {
		return key
	}
	var b strings.Builder
	for _, r := range key {
		switch r {
		case '.', '*', '?', '|', '#', '@', '\\', ':', '!':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
