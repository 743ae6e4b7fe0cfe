package http

import (
	"net/http"

	"github.com/aretw0/toolbelt/pkg/registry"
	"github.com/getkin/kin-openapi/openapi3"
)

// Document describes the API of a registry as OpenAPI 3, one POST operation per tool.
func Document(reg *registry.Registry, version string) *openapi3.T {
	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       "toolbelt",
			Description: "Stateless helpers exposed as named tools.",
			Version:     version,
		},
		Paths: openapi3.NewPaths(),
	}

	errorResponse := func(description string) *openapi3.ResponseRef {
		return &openapi3.ResponseRef{Value: openapi3.NewResponse().
			WithDescription(description).
			WithJSONSchema(openapi3.NewObjectSchema().WithProperty("error", openapi3.NewStringSchema()))}
	}

	health := openapi3.NewOperation()
	health.OperationID = "health"
	health.Summary = "Liveness probe"
	health.Responses = openapi3.NewResponses(openapi3.WithStatus(http.StatusOK, &openapi3.ResponseRef{
		Value: openapi3.NewResponse().
			WithDescription("Service is up").
			WithJSONSchema(openapi3.NewObjectSchema().WithProperty("status", openapi3.NewStringSchema())),
	}))
	doc.AddOperation("/health", http.MethodGet, health)

	for _, tool := range reg.List() {
		op := openapi3.NewOperation()
		op.OperationID = tool.Name
		op.Summary = tool.Description
		op.Tags = []string{"tools"}
		op.RequestBody = &openapi3.RequestBodyRef{Value: openapi3.NewRequestBody().
			WithDescription("Tool arguments").
			WithJSONSchema(ArgumentSchema(tool))}
		op.Responses = openapi3.NewResponses(
			openapi3.WithStatus(http.StatusOK, &openapi3.ResponseRef{Value: openapi3.NewResponse().
				WithDescription("Tool result").
				WithJSONSchema(openapi3.NewObjectSchema().WithProperty("result", openapi3.NewSchema()))}),
			openapi3.WithStatus(http.StatusBadRequest, errorResponse("Invalid arguments")),
			openapi3.WithStatus(http.StatusNotFound, errorResponse("Unknown tool or palette")),
			openapi3.WithStatus(http.StatusUnprocessableEntity, errorResponse("Tool failed")),
		)
		doc.AddOperation("/tools/"+tool.Name, http.MethodPost, op)
	}
	return doc
}

// ArgumentSchema builds the JSON Schema of a tool's argument object.
func ArgumentSchema(tool registry.Tool) *openapi3.Schema {
	schema := openapi3.NewObjectSchema()
	schema.AdditionalProperties = openapi3.AdditionalProperties{Has: new(bool)}
	for _, p := range tool.Params {
		prop := schemaFor(p.Type)
		prop.Description = p.Description
		schema.WithProperty(p.Name, prop)
		if p.Required {
			schema.Required = append(schema.Required, p.Name)
		}
	}
	return schema
}

func schemaFor(typ string) *openapi3.Schema {
	switch typ {
	case registry.TypeString:
		return openapi3.NewStringSchema()
	case registry.TypeNumber:
		return openapi3.NewFloat64Schema()
	case registry.TypeInteger:
		return openapi3.NewIntegerSchema()
	case registry.TypeBoolean:
		return openapi3.NewBoolSchema()
	case registry.TypeArray:
		return openapi3.NewArraySchema().WithItems(openapi3.NewSchema())
	case registry.TypeObject:
		return openapi3.NewObjectSchema()
	default:
		return openapi3.NewSchema()
	}
}
