package generator

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/empathyfirstmedia/model2openapi/internal/model"
	"github.com/empathyfirstmedia/model2openapi/internal/openapi"
)

func entityPaths(t *testing.T, name string) *openapi.Map[*openapi.PathItem] {
	t.Helper()
	paths := openapi.NewMap[*openapi.PathItem]()
	addEntityPaths(paths, &model.Entity{Name: name})
	return paths
}

func TestAddEntityPathsNaming(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		entity     string
		collection string
		item       string
	}{
		{name: "simple", entity: "User", collection: "/users", item: "/users/{userId}"},
		{name: "camel case", entity: "DataSet", collection: "/datasets", item: "/datasets/{datasetId}"},
		{name: "trailing s", entity: "Address", collection: "/addresss", item: "/addresss/{addressId}"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			paths := entityPaths(t, tt.entity)
			if diff := cmp.Diff([]string{tt.collection, tt.item}, paths.Keys()); diff != "" {
				t.Fatalf("paths mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCollectionPathOperations(t *testing.T) {
	t.Parallel()

	paths := entityPaths(t, "User")
	item, ok := paths.Get("/users")
	if !ok {
		t.Fatal("collection path missing")
	}
	if item.Get == nil || item.Post == nil {
		t.Fatal("collection path should carry both get and post")
	}

	list := item.Get
	if list.Summary != "List Users" || list.OperationID != "listUsers" {
		t.Fatalf("unexpected list operation: %+v", list)
	}
	listResp, ok := list.Responses["200"]
	if !ok {
		t.Fatal("list operation should respond with 200")
	}
	if listResp.Description != "Successful response" {
		t.Fatalf("list 200 description = %q", listResp.Description)
	}
	envelope := listResp.Content["application/json"].Schema
	if envelope.Type != "object" {
		t.Fatalf("list envelope type = %q, want object", envelope.Type)
	}
	data, ok := envelope.Properties.Get("data")
	if !ok {
		t.Fatal("list envelope should wrap a data property")
	}
	if data.Type != "array" || data.Items == nil || data.Items.Ref != "#/components/schemas/User" {
		t.Fatalf("unexpected data schema: %+v", data)
	}

	create := item.Post
	if create.Summary != "Create User" || create.OperationID != "createUser" {
		t.Fatalf("unexpected create operation: %+v", create)
	}
	if create.RequestBody == nil || !create.RequestBody.Required {
		t.Fatal("create operation should require a request body")
	}
	if ref := create.RequestBody.Content["application/json"].Schema.Ref; ref != "#/components/schemas/CreateUserRequest" {
		t.Fatalf("request body ref = %q", ref)
	}
	created, ok := create.Responses["201"]
	if !ok {
		t.Fatal("create operation should respond with 201")
	}
	if created.Description != "User created successfully" {
		t.Fatalf("create 201 description = %q", created.Description)
	}
	if ref := created.Content["application/json"].Schema.Ref; ref != "#/components/schemas/UserResponse" {
		t.Fatalf("create 201 ref = %q", ref)
	}
}

func TestItemPathOperation(t *testing.T) {
	t.Parallel()

	paths := entityPaths(t, "User")
	item, ok := paths.Get("/users/{userId}")
	if !ok {
		t.Fatal("item path missing")
	}
	if item.Post != nil {
		t.Fatal("item path should only carry get")
	}

	get := item.Get
	if get.Summary != "Get User" || get.OperationID != "getUser" {
		t.Fatalf("unexpected get operation: %+v", get)
	}
	if len(get.Parameters) != 1 {
		t.Fatalf("parameters = %d, want 1", len(get.Parameters))
	}
	param := get.Parameters[0]
	if param.Name != "userId" || param.In != "path" || !param.Required {
		t.Fatalf("unexpected parameter: %+v", param)
	}
	if param.Schema.Type != "string" || param.Schema.Format != "uuid" {
		t.Fatalf("unexpected parameter schema: %+v", param.Schema)
	}
	resp, ok := get.Responses["200"]
	if !ok {
		t.Fatal("get operation should respond with 200")
	}
	if ref := resp.Content["application/json"].Schema.Ref; ref != "#/components/schemas/UserResponse" {
		t.Fatalf("get 200 ref = %q", ref)
	}
}
