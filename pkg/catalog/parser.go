package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"gopkg.in/yaml.v3"
)

// Entry declares one named rule.
//
//	patterns:
//	  - name: amount
//	    pattern: /^[0-9.,]+$/
//	    engine: re2
//	    description: digits with separators
type Entry struct {
	Name        string `yaml:"name" json:"name"`
	Pattern     string `yaml:"pattern" json:"pattern"`
	Engine      string `yaml:"engine,omitempty" json:"engine,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

type document struct {
	Patterns []Entry `yaml:"patterns" json:"patterns"`
}

// Parser decodes a catalog document.
type Parser interface {
	Parse(ctx context.Context, content []byte) ([]Entry, error)
	SupportsFileExtension(ext string) bool
}

// YAMLParser implements Parser for YAML documents.
type YAMLParser struct{}

func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

func (p *YAMLParser) Parse(ctx context.Context, content []byte) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadCancelled, err)
	}

	var doc document
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, errors.Join(ErrParsingDocument, err)
	}
	return doc.Patterns, nil
}

func (p *YAMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}

// JSONParser implements Parser for JSON documents.
type JSONParser struct{}

func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

func (p *JSONParser) Parse(ctx context.Context, content []byte) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadCancelled, err)
	}

	var doc document
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, errors.Join(ErrParsingDocument, err)
	}
	return doc.Patterns, nil
}

func (p *JSONParser) SupportsFileExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "json")
}
