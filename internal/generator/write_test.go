package generator

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/empathyfirstmedia/model2openapi/internal/model"
	"github.com/empathyfirstmedia/model2openapi/internal/openapi"
)

func minimalDocument(title string) *openapi.Document {
	return &openapi.Document{
		OpenAPI: openapi.Version,
		Info: openapi.Info{
			Title:   title,
			Version: "1.0.0",
			Contact: openapi.Contact{Name: contactName, Email: contactEmail},
		},
		Servers: []openapi.Server{{URL: serverURL, Description: serverDescription}},
		Paths:   openapi.NewMap[*openapi.PathItem](),
		Components: openapi.Components{
			Schemas:   openapi.NewMap[*openapi.Schema](),
			Responses: standardResponses(),
		},
	}
}

func TestWriteDocumentCreatesDirectories(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "schemas", "nested", "api.yaml")
	if err := WriteDocument(minimalDocument("Api API"), path); err != nil {
		t.Fatalf("WriteDocument: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.HasPrefix(string(data), "openapi: 3.0.3\n") {
		t.Fatalf("output does not start with the openapi version:\n%s", data)
	}
}

func TestWriteDocumentOverwrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "api.yaml")
	if err := WriteDocument(minimalDocument("First API"), path); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := WriteDocument(minimalDocument("Second API"), path); err != nil {
		t.Fatalf("second write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), "title: Second API") {
		t.Fatalf("output kept the first document:\n%s", data)
	}
}

func TestWriteDocumentLeavesNoTempFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := WriteDocument(minimalDocument("Api API"), filepath.Join(dir, "api.yaml")); err != nil {
		t.Fatalf("WriteDocument: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".tmp") {
			t.Fatalf("temp file %s left behind", entry.Name())
		}
	}
}

func TestWriteDocumentDirectoryFault(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("write blocker: %v", err)
	}

	err := WriteDocument(minimalDocument("Api API"), filepath.Join(blocker, "api.yaml"))
	if err == nil {
		t.Fatal("expected an error when the parent is a regular file")
	}
	var modelErr *model.Error
	if !errors.As(err, &modelErr) {
		t.Fatalf("error %v (%T) is not a *model.Error", err, err)
	}
	if modelErr.Code != model.IOError {
		t.Fatalf("code = %s, want %s", modelErr.Code, model.IOError)
	}
}
