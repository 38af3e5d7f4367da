package generator

import (
	"fmt"
	"strings"

	"github.com/empathyfirstmedia/model2openapi/internal/model"
	"github.com/empathyfirstmedia/model2openapi/internal/openapi"
)

const mediaJSON = "application/json"

// addEntityPaths adds the collection and item paths for one entity, in that
// order. Pluralization is a bare "s" suffix on the lowercased entity name,
// and the item parameter is that lowercased name plus "Id". Entities whose
// names collide after lowercasing overwrite the earlier paths in place.
func addEntityPaths(paths *openapi.Map[*openapi.PathItem], entity *model.Entity) {
	name := entity.Name
	lower := strings.ToLower(name)
	collectionPath := "/" + lower + "s"
	itemPath := fmt.Sprintf("%s/{%sId}", collectionPath, lower)

	paths.Set(collectionPath, &openapi.PathItem{
		Get:  listOperation(name),
		Post: createOperation(name),
	})
	paths.Set(itemPath, &openapi.PathItem{
		Get: getOperation(name, lower),
	})
}

func listOperation(name string) *openapi.Operation {
	return &openapi.Operation{
		Summary:     fmt.Sprintf("List %ss", name),
		OperationID: fmt.Sprintf("list%ss", name),
		Responses: map[string]*openapi.Response{
			"200": {
				Description: "Successful response",
				Content:     jsonContent(listEnvelope(name)),
			},
		},
	}
}

func createOperation(name string) *openapi.Operation {
	return &openapi.Operation{
		Summary:     fmt.Sprintf("Create %s", name),
		OperationID: fmt.Sprintf("create%s", name),
		RequestBody: &openapi.RequestBody{
			Required: true,
			Content:  jsonContent(schemaRef("Create" + name + "Request")),
		},
		Responses: map[string]*openapi.Response{
			"201": {
				Description: fmt.Sprintf("%s created successfully", name),
				Content:     jsonContent(schemaRef(name + "Response")),
			},
		},
	}
}

func getOperation(name, lower string) *openapi.Operation {
	return &openapi.Operation{
		Summary:     fmt.Sprintf("Get %s", name),
		OperationID: fmt.Sprintf("get%s", name),
		Parameters: []*openapi.Parameter{{
			Name:     lower + "Id",
			In:       "path",
			Required: true,
			Schema:   &openapi.Schema{Type: "string", Format: "uuid"},
		}},
		Responses: map[string]*openapi.Response{
			"200": {
				Description: "Successful response",
				Content:     jsonContent(schemaRef(name + "Response")),
			},
		},
	}
}

// listEnvelope wraps the entity reference in the data-array envelope list
// responses use.
func listEnvelope(name string) *openapi.Schema {
	properties := openapi.NewMap[*openapi.Schema]()
	properties.Set("data", &openapi.Schema{
		Type:  "array",
		Items: schemaRef(name),
	})
	return &openapi.Schema{Type: "object", Properties: properties}
}

// schemaRef builds a reference into components.schemas. Create{Entity}Request,
// {Entity}Response, and Error are referenced without being emitted; the
// document's consumer supplies those schemas.
func schemaRef(name string) *openapi.Schema {
	return &openapi.Schema{Ref: "#/components/schemas/" + name}
}

func jsonContent(schema *openapi.Schema) map[string]*openapi.MediaType {
	return map[string]*openapi.MediaType{
		mediaJSON: {Schema: schema},
	}
}
