package domain

import "sort"

// Choice is one outgoing edge of a Node.
type Choice struct {
	// Label is the exact input that selects this choice.
	Label string `json:"label" yaml:"label"`

	// Target names the node this choice leads to. It is not checked when the
	// graph is built; a dangling target surfaces when the session enters it.
	Target string `json:"target" yaml:"target"`

	// Text is shown when the choice is taken.
	Text string `json:"text,omitempty" yaml:"text,omitempty"`
}

// Node is a single narrative location.
// A Node is never mutated once its graph is built.
type Node struct {
	Name string `json:"name" yaml:"name"`

	// Enter is displayed when the player arrives at the node.
	Enter string `json:"enter,omitempty" yaml:"enter,omitempty"`

	// Choices are kept in declaration order. Labels are unique.
	Choices []Choice `json:"choices,omitempty" yaml:"choices,omitempty"`
}

// Choice looks up a choice by its exact (case-sensitive) label.
func (n *Node) Choice(label string) (Choice, bool) {
	for _, c := range n.Choices {
		if c.Label == label {
			return c, true
		}
	}
	return Choice{}, false
}

// Labels returns the choice labels in declaration order.
func (n *Node) Labels() []string {
	labels := make([]string, 0, len(n.Choices))
	for _, c := range n.Choices {
		labels = append(labels, c.Label)
	}
	return labels
}

// StoryGraph is the typed form of a story document.
type StoryGraph struct {
	Nodes map[string]*Node `json:"nodes"`

	// Start is the node named by the reserved top-level "start" key.
	// Empty when the document declared none.
	Start string `json:"start,omitempty"`
}

// NewStoryGraph returns an empty graph.
func NewStoryGraph() *StoryGraph {
	return &StoryGraph{Nodes: make(map[string]*Node)}
}

// Node returns the node with the given name.
func (g *StoryGraph) Node(name string) (*Node, bool) {
	if g == nil {
		return nil, false
	}
	n, ok := g.Nodes[name]
	return n, ok
}

// HasStart reports whether the graph declares a start node that exists.
func (g *StoryGraph) HasStart() bool {
	if g == nil || g.Start == "" {
		return false
	}
	_, ok := g.Nodes[g.Start]
	return ok
}

// Names returns all node names, sorted for deterministic output.
func (g *StoryGraph) Names() []string {
	if g == nil {
		return nil
	}
	names := make([]string, 0, len(g.Nodes))
	for name := range g.Nodes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
