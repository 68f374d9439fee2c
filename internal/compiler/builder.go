package compiler

import (
	"fmt"

	"github.com/aretw0/fable/pkg/domain"
	"gopkg.in/yaml.v3"
)

// Reserved keys of the story format.
const (
	KeyStart   = "start"
	KeyEnter   = "enter"
	KeyChoices = "choices"
	KeyTarget  = "target"
	KeyText    = "text"
)

// Build walks a story document tree and materializes its graph.
//
// The only hard failure is a root that is not a mapping. Every other shape
// mismatch degrades to "missing field, default value": keys that are not
// scalars, unknown keys, and values of the wrong kind are skipped so that
// hand-authored, partially malformed stories still load as far as possible.
func Build(root *yaml.Node) (*domain.StoryGraph, error) {
	top, ok := extractMapping(root)
	if !ok {
		return nil, fmt.Errorf("%w: document root is %s, want mapping", domain.ErrMalformedDocument, describe(root))
	}

	b := newGraphBuilder()
	eachPair(top, func(key, value *yaml.Node) {
		name, ok := expectScalar(key)
		if !ok {
			return
		}
		if name == KeyStart {
			if start, ok := expectScalar(value); ok {
				b.start = start
			}
			return
		}
		b.node(name).apply(value)
	})

	return b.build(), nil
}

// graphBuilder accumulates nodes by name. A node name seen twice merges
// into the same entry, mirroring how choice labels merge.
type graphBuilder struct {
	start string
	order []string
	nodes map[string]*nodeBuilder
}

func newGraphBuilder() *graphBuilder {
	return &graphBuilder{nodes: make(map[string]*nodeBuilder)}
}

func (b *graphBuilder) node(name string) *nodeBuilder {
	if n, ok := b.nodes[name]; ok {
		return n
	}
	n := &nodeBuilder{name: name, choices: newChoiceBuilder()}
	b.nodes[name] = n
	b.order = append(b.order, name)
	return n
}

func (b *graphBuilder) build() *domain.StoryGraph {
	g := domain.NewStoryGraph()
	g.Start = b.start
	for _, name := range b.order {
		g.Nodes[name] = b.nodes[name].build()
	}
	return g
}

type nodeBuilder struct {
	name    string
	enter   string
	choices *choiceBuilder
}

// apply reads a node definition. A non-mapping definition leaves the node
// registered with empty text and no choices.
func (n *nodeBuilder) apply(def *yaml.Node) {
	body, ok := extractMapping(def)
	if !ok {
		return
	}
	eachPair(body, func(key, value *yaml.Node) {
		k, ok := expectScalar(key)
		if !ok {
			return
		}
		switch k {
		case KeyEnter:
			if enter, ok := expectScalar(value); ok {
				n.enter = enter
			}
		case KeyChoices:
			if choices, ok := extractMapping(value); ok {
				n.choices.apply(choices)
			}
		}
	})
}

func (n *nodeBuilder) build() *domain.Node {
	return &domain.Node{
		Name:    n.name,
		Enter:   n.enter,
		Choices: n.choices.build(),
	}
}

type choiceField int

const (
	fieldTarget choiceField = iota
	fieldText
)

// choiceBuilder keys partially-built choices by label so that "target"
// and "text" can arrive in any order, or in separate passes, without
// clobbering each other.
type choiceBuilder struct {
	order   []string
	byLabel map[string]*domain.Choice
}

func newChoiceBuilder() *choiceBuilder {
	return &choiceBuilder{byLabel: make(map[string]*domain.Choice)}
}

// upsert inserts a default choice for label if absent, then sets one field.
func (c *choiceBuilder) upsert(label string, field choiceField, value string) {
	choice := c.ensure(label)
	switch field {
	case fieldTarget:
		choice.Target = value
	case fieldText:
		choice.Text = value
	}
}

func (c *choiceBuilder) ensure(label string) *domain.Choice {
	choice, ok := c.byLabel[label]
	if !ok {
		choice = &domain.Choice{Label: label}
		c.byLabel[label] = choice
		c.order = append(c.order, label)
	}
	return choice
}

func (c *choiceBuilder) apply(choices *yaml.Node) {
	eachPair(choices, func(key, value *yaml.Node) {
		label, ok := expectScalar(key)
		if !ok {
			return
		}
		body, ok := extractMapping(value)
		if !ok {
			return
		}
		c.ensure(label)
		eachPair(body, func(k, v *yaml.Node) {
			field, ok := expectScalar(k)
			if !ok {
				return
			}
			s, ok := expectScalar(v)
			if !ok {
				return
			}
			switch field {
			case KeyTarget:
				c.upsert(label, fieldTarget, s)
			case KeyText:
				c.upsert(label, fieldText, s)
			}
		})
	})
}

func (c *choiceBuilder) build() []domain.Choice {
	if len(c.order) == 0 {
		return nil
	}
	out := make([]domain.Choice, 0, len(c.order))
	for _, label := range c.order {
		out = append(out, *c.byLabel[label])
	}
	return out
}
