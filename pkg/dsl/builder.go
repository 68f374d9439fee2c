package dsl

import (
	"fmt"

	"github.com/aretw0/fable/internal/compiler"
	"github.com/aretw0/fable/pkg/adapters/memory"
	"github.com/aretw0/fable/pkg/domain"
	"gopkg.in/yaml.v3"
)

// Builder manages the story construction.
type Builder struct {
	start string
	order []string
	nodes map[string]*NodeBuilder
}

// New creates a new story builder.
func New() *Builder {
	return &Builder{
		nodes: make(map[string]*NodeBuilder),
	}
}

// Start names the node the story begins at.
func (b *Builder) Start(name string) *Builder {
	b.start = name
	return b
}

// Add creates a new node in the story.
// If the node already exists, it returns the existing builder.
func (b *Builder) Add(name string) *NodeBuilder {
	if nb, ok := b.nodes[name]; ok {
		return nb
	}
	nb := &NodeBuilder{
		node:    domain.Node{Name: name},
		builder: b,
	}
	b.nodes[name] = nb
	b.order = append(b.order, name)
	return nb
}

// Graph returns the story as a graph, without a parsing round trip.
func (b *Builder) Graph() *domain.StoryGraph {
	g := domain.NewStoryGraph()
	g.Start = b.start
	for _, name := range b.order {
		n := b.nodes[name].node
		n.Choices = append([]domain.Choice(nil), n.Choices...)
		g.Nodes[name] = &n
	}
	return g
}

// Marshal renders the story as a YAML document, nodes and choices in the
// order they were added.
func (b *Builder) Marshal() ([]byte, error) {
	if b.start == compiler.KeyStart {
		return nil, fmt.Errorf("node name %q is reserved", compiler.KeyStart)
	}

	root := mapping()
	if b.start != "" {
		appendPair(root, compiler.KeyStart, scalar(b.start))
	}
	for _, name := range b.order {
		if name == compiler.KeyStart {
			return nil, fmt.Errorf("node name %q is reserved", compiler.KeyStart)
		}
		appendPair(root, name, b.nodes[name].yaml())
	}

	out, err := yaml.Marshal(root)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal story: %w", err)
	}
	return out, nil
}

// Loader compiles the story into a memory loader serving it under name.
func (b *Builder) Loader(name string) (*memory.Loader, error) {
	data, err := b.Marshal()
	if err != nil {
		return nil, err
	}
	return memory.NewLoader(map[string]string{name: string(data)}), nil
}

func mapping() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode}
}

func scalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

func appendPair(m *yaml.Node, key string, value *yaml.Node) {
	m.Content = append(m.Content, scalar(key), value)
}
