package validator_test

import (
	"testing"

	"github.com/aretw0/fable/internal/compiler"
	"github.com/aretw0/fable/internal/validator"
	"github.com/aretw0/fable/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func graph(t *testing.T, doc string) *domain.StoryGraph {
	t.Helper()
	g, err := compiler.NewParser().Parse([]byte(doc))
	require.NoError(t, err)
	return g
}

func TestCheck_ValidGraph(t *testing.T) {
	// hall -> a -> b (end), a -> hall
	g := graph(t, `
start: hall
hall:
  choices:
    on: {target: a}
a:
  choices:
    on: {target: b}
    back: {target: hall}
b:
  enter: The end.
`)
	report := validator.Check(g)
	assert.True(t, report.OK())
	assert.NoError(t, report.Err())
	assert.Empty(t, report.Unreachable)
}

func TestCheck_BrokenLink(t *testing.T) {
	g := graph(t, `
start: broken_start
broken_start:
  choices:
    go: {target: ghost_node}
    nowhere: {text: Nothing happens.}
`)
	report := validator.Check(g)
	assert.False(t, report.OK())
	require.Len(t, report.Dangling, 2)
	assert.Equal(t, "ghost_node", report.Dangling[0].Target)
	assert.Equal(t, "", report.Dangling[1].Target)

	err := report.Err()
	assert.ErrorIs(t, err, domain.ErrDanglingTarget)
	assert.Contains(t, err.Error(), "broken_start -[go]-> ghost_node")
	assert.Contains(t, err.Error(), "(no target)")
}

func TestCheck_Unreachable(t *testing.T) {
	g := graph(t, `
start: a
a:
  choices:
    go: {target: b}
b: {}
island:
  choices:
    sail: {target: other_island}
other_island: {}
`)
	report := validator.Check(g)
	assert.True(t, report.OK(), "unreachable nodes are warnings")
	assert.Equal(t, []string{"island", "other_island"}, report.Unreachable)
}

func TestCheck_ReservedStartName(t *testing.T) {
	// "start" is never a node name, so this graph has no usable start node.
	g := graph(t, "start: start\nstart:\n  enter: shadowed\n")
	report := validator.Check(g)
	assert.True(t, report.MissingStart)
	assert.ErrorIs(t, report.Err(), domain.ErrNoStartingNode)
}
