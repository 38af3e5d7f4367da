package generator

import "github.com/empathyfirstmedia/model2openapi/internal/openapi"

// standardResponseTable lists the reusable error responses every document
// carries, in emission order. Each references the externally supplied Error
// schema.
var standardResponseTable = []struct {
	Key         string
	Description string
}{
	{"BadRequest", "Bad request"},
	{"Unauthorized", "Authentication required"},
	{"Forbidden", "Access denied"},
	{"NotFound", "Resource not found"},
}

// standardResponses assembles the fixed components.responses block.
func standardResponses() *openapi.Map[*openapi.Response] {
	responses := openapi.NewMap[*openapi.Response]()
	for _, entry := range standardResponseTable {
		responses.Set(entry.Key, &openapi.Response{
			Description: entry.Description,
			Content:     jsonContent(schemaRef("Error")),
		})
	}
	return responses
}
