package apiquery

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/watson-developer-cloud/watson-go/internal/param"
)

// Queryer is implemented by params that carry query parameters.
type Queryer interface {
	URLQuery() url.Values
}

type ArrayQueryFormat int

const (
	// ArrayQueryFormatComma joins list values with commas: ids=a,b.
	ArrayQueryFormatComma ArrayQueryFormat = iota
	// ArrayQueryFormatRepeat repeats the key: ids=a&ids=b.
	ArrayQueryFormatRepeat
)

type QuerySettings struct {
	ArrayFormat ArrayQueryFormat
}

// MarshalWithSettings encodes the `query:"..."` tagged [param.Field]s of a
// params struct. Unset and null fields are left out.
func MarshalWithSettings(value any, settings QuerySettings) url.Values {
	q := url.Values{}
	v := reflect.ValueOf(value)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return q
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return q
	}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		tag, ok := sf.Tag.Lookup("query")
		if !ok || !sf.IsExported() {
			continue
		}
		name := strings.Split(tag, ",")[0]
		if name == "" || name == "-" {
			continue
		}
		f, ok := v.Field(i).Interface().(param.FieldLike)
		if !ok || !f.IsPresent() || f.IsNull() {
			continue
		}
		encode(q, name, reflect.ValueOf(f.Interface()), settings)
	}
	return q
}

func encode(q url.Values, key string, v reflect.Value, settings QuerySettings) {
	if v.Kind() == reflect.Slice || v.Kind() == reflect.Array {
		items := make([]string, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			items = append(items, scalar(v.Index(i)))
		}
		if settings.ArrayFormat == ArrayQueryFormatRepeat {
			for _, item := range items {
				q.Add(key, item)
			}
			return
		}
		q.Set(key, strings.Join(items, ","))
		return
	}
	q.Set(key, scalar(v))
}

func scalar(v reflect.Value) string {
	if t, ok := v.Interface().(time.Time); ok {
		return t.Format(time.RFC3339)
	}
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	}
	return fmt.Sprintf("%v", v.Interface())
}
