package runtime

import (
	"testing"

	"github.com/aretw0/fable/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestRenderEntry(t *testing.T) {
	node := &domain.Node{
		Name:  "hall",
		Enter: "A long hall.",
		Choices: []domain.Choice{
			{Label: "north"},
			{Label: "south"},
			{Label: "up"},
		},
	}
	assert.Equal(t, "A long hall.\nChoices:\nnorth south up\n", renderEntry(node))
	assert.Equal(t, "\nChoices:\n\n", renderEntry(&domain.Node{}))
}

func TestRenderTransition(t *testing.T) {
	choice := domain.Choice{Label: "go", Target: "B", Text: "You go."}
	next := &domain.Node{Name: "B", Enter: "Arrived."}
	assert.Equal(t, "go\nYou go.\nArrived.\nChoices:\n\n", renderTransition(choice, next))

	assert.Equal(t, "go\n\n\nChoices:\n\n", renderTransition(domain.Choice{Label: "go"}, &domain.Node{}))
}
