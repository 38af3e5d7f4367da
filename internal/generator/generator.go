package generator

// Document assembly from parsed data models. A single pass over the model
// produces the whole document; nothing is patched in afterwards, so
// regenerating from the same inputs is byte-identical.

import (
	"context"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/empathyfirstmedia/model2openapi/internal/model"
	"github.com/empathyfirstmedia/model2openapi/internal/openapi"
)

const (
	defaultVersion = "1.0.0"
	defaultDomain  = "API"

	contactName  = "API Development Team"
	contactEmail = "api@empathyfirstmedia.com"

	serverURL         = "https://api.empathyfirstmedia.com/v1"
	serverDescription = "Production server"
)

// Options configures a Generator.
type Options struct {
	// Taxonomy is the classification mapping injected at construction. The
	// generator never mutates it; a non-empty mapping turns on the
	// document-level x-taxonomy extension.
	Taxonomy model.Taxonomy
}

// Generator turns data-model files into OpenAPI documents.
type Generator struct {
	taxonomy model.Taxonomy
}

// New constructs a Generator with the given options.
func New(opts Options) *Generator {
	return &Generator{taxonomy: opts.Taxonomy}
}

// GenerateFromModel loads the model file at modelPath and builds the complete
// OpenAPI document for it. Generation is all-or-nothing: any load or parse
// fault aborts before a document exists. Entity order in the model dictates
// schema and path order in the document.
func (g *Generator) GenerateFromModel(ctx context.Context, modelPath string) (*openapi.Document, error) {
	_ = ctx

	m, err := model.LoadModel(modelPath)
	if err != nil {
		return nil, err
	}

	doc := &openapi.Document{
		OpenAPI: openapi.Version,
		Info: openapi.Info{
			Title:       apiTitle(m.Info.Domain),
			Version:     orDefault(m.Info.Version, defaultVersion),
			Description: m.Info.Description,
			Contact:     openapi.Contact{Name: contactName, Email: contactEmail},
		},
		Servers: []openapi.Server{{URL: serverURL, Description: serverDescription}},
		Paths:   openapi.NewMap[*openapi.PathItem](),
		Components: openapi.Components{
			Schemas:   openapi.NewMap[*openapi.Schema](),
			Responses: standardResponses(),
		},
	}

	for i := range m.Entities {
		entity := &m.Entities[i]
		doc.Components.Schemas.Set(entity.Name, entitySchema(entity))
		addEntityPaths(doc.Paths, entity)
	}

	if len(g.taxonomy) > 0 {
		doc.XTaxonomy = &openapi.Taxonomy{
			Domain:     m.Info.Domain,
			Version:    m.Info.Version,
			Compliance: complianceUnion(m.Entities),
		}
	}

	return doc, nil
}

// apiTitle derives the document title from the model domain: underscores
// become spaces, each word is titlecased, and " API" is appended. An absent
// domain falls back to "API", which yields the title "Api API".
func apiTitle(domain string) string {
	if domain == "" {
		domain = defaultDomain
	}
	words := strings.ReplaceAll(domain, "_", " ")
	return cases.Title(language.English).String(words) + " API"
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// complianceUnion collects the distinct compliance tags declared across all
// entity classifications. The union is sorted; a set has no inherent order
// and a fixed one keeps regeneration stable.
func complianceUnion(entities []model.Entity) []string {
	seen := make(map[string]struct{})
	union := make([]string, 0)
	for i := range entities {
		for _, tag := range entities[i].Compliance() {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			union = append(union, tag)
		}
	}
	sort.Strings(union)
	return union
}
