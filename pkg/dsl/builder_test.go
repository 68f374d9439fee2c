package dsl_test

import (
	"context"
	"testing"

	"github.com/aretw0/fable/internal/compiler"
	"github.com/aretw0/fable/pkg/domain"
	"github.com/aretw0/fable/pkg/dsl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func node(t *testing.T, g *domain.StoryGraph, name string) *domain.Node {
	t.Helper()
	n, ok := g.Node(name)
	require.True(t, ok, "node %q missing", name)
	return n
}

func caveStory() *dsl.Builder {
	b := dsl.New().Start("mouth")
	b.Add("mouth").
		Enter("You stand at the mouth of a cave.").
		Choice("enter", "hall", "You step into the dark.").
		Choice("leave", "outside", "")
	b.Add("hall").Enter("Water drips\nsomewhere ahead.")
	b.Add("outside")
	return b
}

func TestBuilder_Graph(t *testing.T) {
	g := caveStory().Graph()

	assert.Equal(t, "mouth", g.Start)
	assert.Equal(t, []string{"hall", "mouth", "outside"}, g.Names())

	mouth := node(t, g, "mouth")
	assert.Equal(t, []string{"enter", "leave"}, mouth.Labels())
	enter, ok := mouth.Choice("enter")
	require.True(t, ok)
	assert.Equal(t, domain.Choice{Label: "enter", Target: "hall", Text: "You step into the dark."}, enter)
	assert.Empty(t, node(t, g, "outside").Choices)
}

func TestBuilder_MarshalParsesBack(t *testing.T) {
	b := caveStory()
	data, err := b.Marshal()
	require.NoError(t, err)

	parsed, err := compiler.NewParser().Parse(data)
	require.NoError(t, err)
	assert.Equal(t, b.Graph(), parsed)
}

func TestBuilder_AddReturnsExistingNode(t *testing.T) {
	b := dsl.New().Start("a")
	b.Add("a").Enter("first")
	b.Add("a").Choice("go", "a", "again")

	a := node(t, b.Graph(), "a")
	assert.Equal(t, "first", a.Enter)
	assert.Equal(t, []string{"go"}, a.Labels())
}

func TestNodeBuilder_ChoiceReplacesLabel(t *testing.T) {
	g := dsl.New().Start("a").
		Add("a").
		Choice("go", "b", "old").
		Choice("stay", "a", "").
		Choice("go", "c", "new").
		Graph()

	a := node(t, g, "a")
	assert.Equal(t, []string{"go", "stay"}, a.Labels())
	goChoice, ok := a.Choice("go")
	require.True(t, ok)
	assert.Equal(t, "c", goChoice.Target)
	assert.Equal(t, "new", goChoice.Text)
}

func TestBuilder_GraphIsACopy(t *testing.T) {
	b := dsl.New().Start("a")
	b.Add("a").Choice("go", "a", "")

	g := b.Graph()
	node(t, g, "a").Choices[0].Target = "elsewhere"

	assert.Equal(t, "a", node(t, b.Graph(), "a").Choices[0].Target)
}

func TestBuilder_ReservedNodeName(t *testing.T) {
	b := dsl.New().Start("a")
	b.Add("start")

	_, err := b.Marshal()
	assert.Error(t, err)

	_, err = dsl.New().Start("start").Marshal()
	assert.Error(t, err)
}

func TestBuilder_Loader(t *testing.T) {
	loader, err := caveStory().Loader("cave.yaml")
	require.NoError(t, err)

	names, err := loader.ListStories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"cave.yaml"}, names)

	data, err := loader.ReadStory(context.Background(), "cave.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "start: mouth")
}
