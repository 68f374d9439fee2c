package compiler

import (
	"fmt"

	"github.com/aretw0/fable/pkg/domain"
	"gopkg.in/yaml.v3"
)

// Parser turns raw story documents into a StoryGraph.
// Parsing is delegated to yaml.v3, which yields a tagged tree of
// mapping, sequence and scalar nodes; Build interprets that tree.
type Parser struct{}

// NewParser creates a new parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes data and builds the story graph it describes.
func (p *Parser) Parse(data []byte) (*domain.StoryGraph, error) {
	root, err := ParseDocument(data)
	if err != nil {
		return nil, err
	}
	return Build(root)
}

// ParseDocument decodes the first YAML document in data into its node tree.
// An empty input yields a nil root, which Build rejects as malformed.
func ParseDocument(data []byte) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDocumentSyntax, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, nil
	}
	return doc.Content[0], nil
}
