package model

// Parsed input definitions: the model file the generator consumes and the
// optional taxonomy mapping.

import "gopkg.in/yaml.v3"

// Model is a parsed data-model file: top-level metadata plus the ordered list
// of entities to expose.
type Model struct {
	Info     ModelInfo `yaml:"model"`
	Entities []Entity  `yaml:"entities"`
}

// ModelInfo carries the model-level metadata as written. Defaults (version
// 1.0.0, blank description) are applied during generation, not on load.
type ModelInfo struct {
	Domain      string `yaml:"domain"`
	Version     string `yaml:"version"`
	Description string `yaml:"description"`
}

// Entity is one named resource with an ordered list of attributes.
type Entity struct {
	Name       string      `yaml:"name"`
	Attributes []Attribute `yaml:"attributes"`
	// TaxonomyClassification is carried into the generated schema verbatim,
	// so it stays a raw node rather than a Go map (maps lose key order on
	// re-emission). A zero node means the field was absent.
	TaxonomyClassification yaml.Node `yaml:"taxonomy_classification"`
}

// HasTaxonomy reports whether the entity declared a taxonomy_classification,
// including an explicit null one.
func (e *Entity) HasTaxonomy() bool {
	return e.TaxonomyClassification.Kind != 0
}

// Compliance returns the entity's taxonomy_classification.compliance entries
// in declaration order, or nil when there are none.
func (e *Entity) Compliance() []string {
	if e.TaxonomyClassification.Kind != yaml.MappingNode {
		return nil
	}
	content := e.TaxonomyClassification.Content
	var seq *yaml.Node
	for i := 0; i+1 < len(content); i += 2 {
		if content[i].Value == "compliance" {
			seq = content[i+1]
		}
	}
	if seq == nil || seq.Kind != yaml.SequenceNode {
		return nil
	}
	entries := make([]string, 0, len(seq.Content))
	for _, item := range seq.Content {
		if item.Kind == yaml.ScalarNode {
			entries = append(entries, item.Value)
		}
	}
	return entries
}

// Attribute is a single typed field of an entity.
type Attribute struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Description string `yaml:"description"`
	MaxLength   int    `yaml:"max_length"`
	Required    bool   `yaml:"required"`
}

// Taxonomy is the classification mapping loaded at generator construction.
// Generation only inspects whether it is empty; the values themselves are not
// consulted.
type Taxonomy map[string]any
