package model

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrorCode categorizes input and output file faults.
type ErrorCode string

const (
	// NotFoundError marks a required file that does not exist.
	NotFoundError ErrorCode = "NotFoundError"
	// ParseError marks a file whose content is not valid structured data.
	ParseError ErrorCode = "ParseError"
	// IOError marks a file that exists but cannot be read or written.
	IOError ErrorCode = "IOError"
)

// Error is the structured error used for every file fault in the pipeline.
// Code selects the category, Path names the offending file, and Cause keeps
// the underlying error reachable through errors.Is and errors.As.
type Error struct {
	Code    ErrorCode
	Message string
	Path    string
	Cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// LoadModel parses the data-model file at path. The file may be JSON or YAML;
// both decode through the same reader. A missing file is a NotFoundError, an
// unreadable one an IOError, and malformed content a ParseError.
func LoadModel(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &Error{
				Code:    NotFoundError,
				Message: fmt.Sprintf("model file not found: %s", path),
				Path:    path,
				Cause:   err,
			}
		}
		return nil, &Error{
			Code:    IOError,
			Message: fmt.Sprintf("read model file %s: %v", path, err),
			Path:    path,
			Cause:   err,
		}
	}

	var m Model
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, &Error{
			Code:    ParseError,
			Message: fmt.Sprintf("parse model file %s: %v", path, err),
			Path:    path,
			Cause:   err,
		}
	}
	for i := range m.Entities {
		canonicalizeNode(&m.Entities[i].TaxonomyClassification)
	}
	return &m, nil
}

// LoadTaxonomy parses the optional taxonomy file at path. An empty path or an
// absent file yields an empty mapping; a file that exists but cannot be read
// or does not hold a mapping is an error.
func LoadTaxonomy(path string) (Taxonomy, error) {
	if path == "" {
		return Taxonomy{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Taxonomy{}, nil
		}
		return nil, &Error{
			Code:    IOError,
			Message: fmt.Sprintf("read taxonomy file %s: %v", path, err),
			Path:    path,
			Cause:   err,
		}
	}

	var t Taxonomy
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, &Error{
			Code:    ParseError,
			Message: fmt.Sprintf("parse taxonomy file %s: %v", path, err),
			Path:    path,
			Cause:   err,
		}
	}
	if t == nil {
		t = Taxonomy{}
	}
	return t, nil
}

// canonicalizeNode rewrites a carried node into the form it should re-emit
// in: block style with no source comments, and mapping keys deduplicated with
// dictionary semantics (first occurrence keeps its position, last occurrence
// keeps its value).
func canonicalizeNode(n *yaml.Node) {
	if n == nil {
		return
	}
	n.Style = 0
	n.HeadComment, n.LineComment, n.FootComment = "", "", ""
	if n.Kind == yaml.MappingNode {
		n.Content = dedupeMapping(n.Content)
	}
	for _, child := range n.Content {
		canonicalizeNode(child)
	}
}

func dedupeMapping(content []*yaml.Node) []*yaml.Node {
	index := make(map[string]int)
	deduped := make([]*yaml.Node, 0, len(content))
	for i := 0; i+1 < len(content); i += 2 {
		key, value := content[i], content[i+1]
		if at, ok := index[key.Value]; ok {
			deduped[at+1] = value
			continue
		}
		index[key.Value] = len(deduped)
		deduped = append(deduped, key, value)
	}
	return deduped
}
