package openapi

// OpenAPI 3.0 document model, restricted to the surface this generator
// emits. Struct field order is emission order, so the types double as the
// layout contract for generated files.

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

// Version is the OpenAPI release every generated document declares.
const Version = "3.0.3"

// Document is a complete OpenAPI specification ready for serialization.
type Document struct {
	OpenAPI    string          `yaml:"openapi"`
	Info       Info            `yaml:"info"`
	Servers    []Server        `yaml:"servers"`
	Paths      *Map[*PathItem] `yaml:"paths"`
	Components Components      `yaml:"components"`
	XTaxonomy  *Taxonomy       `yaml:"x-taxonomy,omitempty"`
}

// Info carries the document metadata block.
type Info struct {
	Title       string  `yaml:"title"`
	Version     string  `yaml:"version"`
	Description string  `yaml:"description"`
	Contact     Contact `yaml:"contact"`
}

// Contact identifies the API owner.
type Contact struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}

// Server is one entry of the servers list.
type Server struct {
	URL         string `yaml:"url"`
	Description string `yaml:"description"`
}

// Components holds the reusable schemas and responses.
type Components struct {
	Schemas   *Map[*Schema]   `yaml:"schemas"`
	Responses *Map[*Response] `yaml:"responses"`
}

// PathItem groups the operations available on one path. Only GET and POST are
// ever generated.
type PathItem struct {
	Get  *Operation `yaml:"get,omitempty"`
	Post *Operation `yaml:"post,omitempty"`
}

// Operation describes a single HTTP operation. Each generated operation has
// exactly one response status, so Responses stays a plain map.
type Operation struct {
	Summary     string               `yaml:"summary"`
	OperationID string               `yaml:"operationId"`
	Parameters  []*Parameter         `yaml:"parameters,omitempty"`
	RequestBody *RequestBody         `yaml:"requestBody,omitempty"`
	Responses   map[string]*Response `yaml:"responses"`
}

// Parameter describes a path parameter.
type Parameter struct {
	Name     string  `yaml:"name"`
	In       string  `yaml:"in"`
	Required bool    `yaml:"required"`
	Schema   *Schema `yaml:"schema"`
}

// RequestBody describes an operation request payload.
type RequestBody struct {
	Required bool                  `yaml:"required"`
	Content  map[string]*MediaType `yaml:"content"`
}

// Response describes a response payload. Reusable error responses carry
// content; Content is keyed by media type and only application/json occurs.
type Response struct {
	Description string                `yaml:"description"`
	Content     map[string]*MediaType `yaml:"content,omitempty"`
}

// MediaType wraps the schema of one media type.
type MediaType struct {
	Schema *Schema `yaml:"schema"`
}

// Schema is a JSON schema fragment. Pointer fields distinguish "emit empty"
// from "omit": an entity schema always lists required (possibly []) while a
// wrapper schema never does, and property descriptions emit even when blank.
// XTaxonomy carries the classification subtree of the source model verbatim.
type Schema struct {
	Ref         string        `yaml:"$ref,omitempty"`
	Type        string        `yaml:"type,omitempty"`
	Description *string       `yaml:"description,omitempty"`
	Example     any           `yaml:"example,omitempty"`
	Format      string        `yaml:"format,omitempty"`
	MaxLength   int           `yaml:"maxLength,omitempty"`
	Properties  *Map[*Schema] `yaml:"properties,omitempty"`
	Required    *[]string     `yaml:"required,omitempty"`
	Items       *Schema       `yaml:"items,omitempty"`
	XTaxonomy   *yaml.Node    `yaml:"x-taxonomy,omitempty"`
}

// Taxonomy is the document-level x-taxonomy extension block.
type Taxonomy struct {
	Domain     string   `yaml:"domain"`
	Version    string   `yaml:"version"`
	Compliance []string `yaml:"compliance"`
}

// Encode serializes the document as YAML with two-space indentation, keeping
// every mapping in construction order.
func (d *Document) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		_ = enc.Close()
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
