package generator

import (
	"github.com/empathyfirstmedia/model2openapi/internal/model"
	"github.com/empathyfirstmedia/model2openapi/internal/openapi"
)

// typeFormat is one row of the attribute type table.
type typeFormat struct {
	Type   string
	Format string
}

// typeMapping translates declared attribute types into OpenAPI type/format
// pairs. Unlisted types fall back to a plain string.
var typeMapping = map[string]typeFormat{
	"uuid":     {Type: "string", Format: "uuid"},
	"email":    {Type: "string", Format: "email"},
	"phone":    {Type: "string", Format: "phone"},
	"currency": {Type: "number", Format: "decimal"},
	"datetime": {Type: "string", Format: "date-time"},
	"date":     {Type: "string", Format: "date"},
	"enum":     {Type: "string"},
	"boolean":  {Type: "boolean"},
	"integer":  {Type: "integer"},
	"float":    {Type: "number", Format: "float"},
	"string":   {Type: "string"},
}

// exampleValues supplies the fixed example for each declared attribute type.
// Unlisted types fall back to "example".
var exampleValues = map[string]any{
	"uuid":     "123e4567-e89b-12d3-a456-426614174000",
	"email":    "user@example.com",
	"phone":    "+1-555-123-4567",
	"currency": 99.99,
	"datetime": "2023-11-23T10:30:00Z",
	"date":     "2023-11-23",
	"boolean":  true,
	"integer":  42,
	"float":    3.14,
	"string":   "example value",
}

func mapType(declared string) typeFormat {
	if tf, ok := typeMapping[declared]; ok {
		return tf
	}
	return typeFormat{Type: "string"}
}

func exampleValue(declared string) any {
	if v, ok := exampleValues[declared]; ok {
		return v
	}
	return "example"
}

// entitySchema builds the object schema for one entity: properties in
// attribute order and required listing the attributes marked required, in
// that same order. Both keys are always present, empty or not. A declared
// taxonomy classification is attached verbatim as x-taxonomy.
func entitySchema(entity *model.Entity) *openapi.Schema {
	properties := openapi.NewMap[*openapi.Schema]()
	required := make([]string, 0)

	for _, attr := range entity.Attributes {
		tf := mapType(attr.Type)
		description := attr.Description
		properties.Set(attr.Name, &openapi.Schema{
			Type:        tf.Type,
			Description: &description,
			Example:     exampleValue(attr.Type),
			Format:      tf.Format,
			MaxLength:   attr.MaxLength,
		})
		if attr.Required {
			required = append(required, attr.Name)
		}
	}

	schema := &openapi.Schema{
		Type:       "object",
		Properties: properties,
		Required:   &required,
	}
	if entity.HasTaxonomy() {
		node := entity.TaxonomyClassification
		schema.XTaxonomy = &node
	}
	return schema
}
