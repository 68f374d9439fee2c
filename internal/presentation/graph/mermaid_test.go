package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/fable/internal/presentation/graph"
	"github.com/aretw0/fable/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func story() *domain.StoryGraph {
	g := domain.NewStoryGraph()
	g.Start = "cave"
	g.Nodes["cave"] = &domain.Node{
		Name: "cave",
		Choices: []domain.Choice{
			{Label: "go", Target: "deep-hall"},
			{Label: "say \"hi\"", Target: "ghost.room"},
		},
	}
	g.Nodes["deep-hall"] = &domain.Node{Name: "deep-hall", Enter: "The end."}
	return g
}

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		overlay  *graph.GraphOverlay
		contains []string
		excludes []string
	}{
		{
			name: "Shapes and Edges",
			contains: []string{
				"graph TD\n",
				"cave((\"cave\"))",
				"deep_hall([\"deep-hall\"])",
				"cave -- \"go\" --> deep_hall",
				"cave -- \"say 'hi'\" --> ghost_room",
			},
			excludes: []string{"classDef current"},
		},
		{
			name: "Missing Targets",
			contains: []string{
				"classDef missing",
				"ghost_room[\"? ghost.room\"]",
				"class ghost_room missing;",
			},
		},
		{
			name:    "Current Overlay",
			overlay: &graph.GraphOverlay{CurrentNode: "deep-hall"},
			contains: []string{
				"classDef current",
				"class deep_hall current;",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := graph.GenerateMermaid(story(), tt.overlay)
			for _, s := range tt.contains {
				assert.Contains(t, output, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, output, s)
			}
		})
	}
}

func TestGenerateMermaid_Deterministic(t *testing.T) {
	first := graph.GenerateMermaid(story(), nil)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, graph.GenerateMermaid(story(), nil))
	}
	assert.True(t, strings.Index(first, "cave((") < strings.Index(first, "deep_hall(["))
}
