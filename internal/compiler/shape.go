package compiler

import "gopkg.in/yaml.v3"

const (
	tagNull  = "!!null"
	tagMerge = "!!merge"
)

// resolve follows aliases and unwraps document nodes.
func resolve(n *yaml.Node) *yaml.Node {
	for n != nil {
		switch n.Kind {
		case yaml.AliasNode:
			n = n.Alias
		case yaml.DocumentNode:
			if len(n.Content) == 0 {
				return nil
			}
			n = n.Content[0]
		default:
			return n
		}
	}
	return nil
}

// extractMapping returns n as a mapping node, if it is one.
func extractMapping(n *yaml.Node) (*yaml.Node, bool) {
	n = resolve(n)
	if n == nil || n.Kind != yaml.MappingNode {
		return nil, false
	}
	return n, true
}

// expectScalar returns the text of a non-null scalar. Merge keys ("<<")
// are not scalars for our purposes.
func expectScalar(n *yaml.Node) (string, bool) {
	n = resolve(n)
	if n == nil || n.Kind != yaml.ScalarNode {
		return "", false
	}
	if tag := n.ShortTag(); tag == tagNull || tag == tagMerge {
		return "", false
	}
	return n.Value, true
}

// eachPair visits the key/value pairs of a mapping node in document order.
func eachPair(m *yaml.Node, fn func(key, value *yaml.Node)) {
	for i := 0; i+1 < len(m.Content); i += 2 {
		fn(m.Content[i], m.Content[i+1])
	}
}

func describe(n *yaml.Node) string {
	n = resolve(n)
	if n == nil {
		return "empty"
	}
	switch n.Kind {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	default:
		return "unknown"
	}
}
