package apijson

import (
	"encoding/json"
	"reflect"

	"github.com/tidwall/sjson"

	"github.com/watson-developer-cloud/watson-go/internal/param"
)

// Patch is the JSON Merge Patch (RFC 7396) projection of an update params
// struct: an ordered mapping from wire name to value holding only the
// fields the caller set. A field set to null maps to a nil value so the
// server clears it; a field never set is absent so the server leaves it
// untouched.
type Patch struct {
	keys   []string
	values map[string]any
}

// ToPatch projects the [param.Field]s of a params struct, in declaration
// order, onto a Patch. Query parameters and other fields without a json tag
// are skipped. Anything that is not a struct yields an empty Patch.
func ToPatch(value any) Patch {
	p := Patch{values: map[string]any{}}
	v := reflect.ValueOf(value)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return p
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return p
	}
	for _, fi := range typeInfo(v.Type()).fields {
		f, ok := v.FieldByIndex(fi.index).Interface().(param.FieldLike)
		if !ok || !f.IsPresent() {
			continue
		}
		p.keys = append(p.keys, fi.tag.name)
		p.values[fi.tag.name] = f.Interface()
	}
	return p
}

// Keys returns the patched wire names in declaration order.
func (p Patch) Keys() []string {
	return append([]string(nil), p.keys...)
}

// Get returns the value for key. A nil value with ok set means the field
// is patched to null.
func (p Patch) Get(key string) (value any, ok bool) {
	value, ok = p.values[key]
	return
}

func (p Patch) Has(key string) bool {
	_, ok := p.values[key]
	return ok
}

func (p Patch) Len() int { return len(p.keys) }

// Map returns a copy of the patch as a plain map.
func (p Patch) Map() map[string]any {
	m := make(map[string]any, len(p.keys))
	for _, k := range p.keys {
		m[k] = p.values[k]
	}
	return m
}

func (p Patch) MarshalJSON() ([]byte, error) {
	out := []byte("{}")
	for _, k := range p.keys {
		raw, err := json.Marshal(p.values[k])
		if err != nil {
			return nil, err
		}
		out, err = sjson.SetRawBytes(out, EscapeKey(k), raw)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
