package dsl

import (
	"github.com/aretw0/fable/internal/compiler"
	"github.com/aretw0/fable/pkg/adapters/memory"
	"github.com/aretw0/fable/pkg/domain"
	"gopkg.in/yaml.v3"
)

// NodeBuilder provides a fluent API for configuring a node.
type NodeBuilder struct {
	node    domain.Node
	builder *Builder
}

// Enter sets the text shown on arriving at the node.
func (n *NodeBuilder) Enter(text string) *NodeBuilder {
	n.node.Enter = text
	return n
}

// Choice adds a labeled edge to target. Adding an existing label replaces it.
func (n *NodeBuilder) Choice(label, target, text string) *NodeBuilder {
	c := domain.Choice{Label: label, Target: target, Text: text}
	for i := range n.node.Choices {
		if n.node.Choices[i].Label == label {
			n.node.Choices[i] = c
			return n
		}
	}
	n.node.Choices = append(n.node.Choices, c)
	return n
}

// Add switches to another node of the same story.
func (n *NodeBuilder) Add(name string) *NodeBuilder {
	return n.builder.Add(name)
}

// Graph returns the whole story as a graph.
func (n *NodeBuilder) Graph() *domain.StoryGraph {
	return n.builder.Graph()
}

// Marshal renders the whole story as YAML.
func (n *NodeBuilder) Marshal() ([]byte, error) {
	return n.builder.Marshal()
}

// Loader compiles the whole story into a memory loader.
func (n *NodeBuilder) Loader(name string) (*memory.Loader, error) {
	return n.builder.Loader(name)
}

func (n *NodeBuilder) yaml() *yaml.Node {
	body := mapping()
	if n.node.Enter != "" {
		appendPair(body, compiler.KeyEnter, scalar(n.node.Enter))
	}
	if len(n.node.Choices) == 0 {
		return body
	}

	choices := mapping()
	for _, c := range n.node.Choices {
		edge := mapping()
		appendPair(edge, compiler.KeyTarget, scalar(c.Target))
		if c.Text != "" {
			appendPair(edge, compiler.KeyText, scalar(c.Text))
		}
		appendPair(choices, c.Label, edge)
	}
	appendPair(body, compiler.KeyChoices, choices)
	return body
}
