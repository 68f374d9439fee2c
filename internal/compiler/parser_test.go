package compiler_test

import (
	"testing"

	"github.com/aretw0/fable/internal/compiler"
	"github.com/aretw0/fable/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseDocument(t *testing.T) {
	root, err := compiler.ParseDocument([]byte("start: A\nA: {}\n"))
	require.NoError(t, err)
	require.NotNil(t, root)
	assert.Equal(t, yaml.MappingNode, root.Kind)
}

func TestParseDocument_FirstDocumentOnly(t *testing.T) {
	g, err := compiler.NewParser().Parse([]byte("start: A\nA: {}\n---\nstart: B\nB: {}\n"))
	require.NoError(t, err)
	assert.Equal(t, "A", g.Start)
	assert.Len(t, g.Nodes, 1)
}

func TestParseDocument_SyntaxError(t *testing.T) {
	tests := []string{
		"start: [A\n",
		"A:\n\tenter: ok\n",
		"key: \"unterminated\n",
	}

	for _, doc := range tests {
		_, err := compiler.NewParser().Parse([]byte(doc))
		assert.ErrorIs(t, err, domain.ErrDocumentSyntax, "doc %q", doc)
	}
}
