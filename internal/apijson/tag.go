package apijson

import (
	"reflect"
	"strings"
	"sync"
)

const jsonStructTag = "json"

type parsedStructTag struct {
	name     string
	required bool
	extras   bool
}

func parseJSONStructTag(field reflect.StructField) (tag parsedStructTag, ok bool) {
	raw, ok := field.Tag.Lookup(jsonStructTag)
	if !ok {
		return
	}
	parts := strings.Split(raw, ",")
	if len(parts) == 0 {
		return tag, false
	}
	tag.name = parts[0]
	for _, part := range parts[1:] {
		switch part {
		case "required":
			tag.required = true
		case "extras":
			tag.extras = true
		}
	}
	return
}

type fieldInfo struct {
	index []int
	tag   parsedStructTag
}

type structInfo struct {
	fields []fieldInfo
	// extras is the index of the `json:"-,extras"` field, or nil.
	extras []int
	// meta is the index of the `JSON` metadata field, or nil.
	meta []int
}

var structInfoCache sync.Map

func typeInfo(t reflect.Type) *structInfo {
	if cached, ok := structInfoCache.Load(t); ok {
		return cached.(*structInfo)
	}
	info := &structInfo{}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		tag, ok := parseJSONStructTag(sf)
		if !ok {
			// Embedded params are flattened like encoding/json does.
			if sf.Anonymous && sf.Type.Kind() == reflect.Struct {
				for _, fi := range typeInfo(sf.Type).fields {
					index := append(append([]int(nil), sf.Index...), fi.index...)
					info.fields = append(info.fields, fieldInfo{index: index, tag: fi.tag})
				}
			}
			continue
		}
		switch {
		case tag.name == "-" && tag.extras:
			info.extras = sf.Index
		case tag.name == "-":
			if sf.Name == "JSON" && sf.Type.Kind() == reflect.Struct {
				info.meta = sf.Index
			}
		default:
			if tag.name == "" {
				tag.name = sf.Name
			}
			info.fields = append(info.fields, fieldInfo{index: sf.Index, tag: tag})
		}
	}
	actual, _ := structInfoCache.LoadOrStore(t, info)
	return actual.(*structInfo)
}
