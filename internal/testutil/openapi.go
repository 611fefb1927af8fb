package testutil

import (
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// Operation describes one route of a test OpenAPI document.
type Operation struct {
	Method string
	// Path uses OpenAPI templates; every {name} becomes a required string
	// path parameter.
	Path  string
	Query []*openapi3.Parameter
	// Body, when set, is the schema of a required JSON request body.
	Body *openapi3.Schema
}

// NewDocument builds a minimal OpenAPI 3 document holding ops.
func NewDocument(title string, ops ...Operation) *openapi3.T {
	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:   title,
			Version: "1.0.0",
		},
		Paths: openapi3.NewPaths(),
	}
	for _, op := range ops {
		item := doc.Paths.Value(op.Path)
		if item == nil {
			item = &openapi3.PathItem{}
			doc.Paths.Set(op.Path, item)
		}
		operation := openapi3.NewOperation()
		operation.Responses = openapi3.NewResponses()
		for _, m := range pathParam.FindAllStringSubmatch(op.Path, -1) {
			operation.AddParameter(openapi3.NewPathParameter(m[1]).WithSchema(openapi3.NewStringSchema()))
		}
		for _, p := range op.Query {
			operation.AddParameter(p)
		}
		if op.Body != nil {
			operation.RequestBody = &openapi3.RequestBodyRef{
				Value: openapi3.NewRequestBody().WithJSONSchema(op.Body).WithRequired(true),
			}
		}
		item.SetOperation(strings.ToUpper(op.Method), operation)
	}
	return doc
}

// Version is the required `version` date parameter of the Watson APIs.
func Version() *openapi3.Parameter {
	return openapi3.NewQueryParameter("version").
		WithSchema(openapi3.NewStringSchema().WithPattern(`^\d{4}-\d{2}-\d{2}$`)).
		WithRequired(true)
}

// QueryParam is an optional query parameter.
func QueryParam(name string, s *openapi3.Schema) *openapi3.Parameter {
	return openapi3.NewQueryParameter(name).WithSchema(s)
}

// Object is an object schema whose properties are all nullable, matching
// merge-patch bodies. required lists the properties that must be present.
func Object(props map[string]*openapi3.Schema, required ...string) *openapi3.Schema {
	s := openapi3.NewObjectSchema()
	for name, prop := range props {
		s.WithProperty(name, prop.WithNullable())
	}
	if len(required) > 0 {
		s.WithRequired(required)
	}
	return s
}
