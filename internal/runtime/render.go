package runtime

import (
	"strings"

	"github.com/aretw0/fable/pkg/domain"
)

// ChoicesHeader introduces the list of available choices.
const ChoicesHeader = "Choices:"

// renderEntry is the text shown on arriving at a node: its enter text, then
// the choice listing.
func renderEntry(node *domain.Node) string {
	var sb strings.Builder
	writeEntry(&sb, node)
	return sb.String()
}

// renderTransition echoes the chosen label and its text before the entry of
// the new node.
func renderTransition(choice domain.Choice, next *domain.Node) string {
	var sb strings.Builder
	sb.WriteString(choice.Label)
	sb.WriteByte('\n')
	sb.WriteString(choice.Text)
	sb.WriteByte('\n')
	writeEntry(&sb, next)
	return sb.String()
}

func writeEntry(sb *strings.Builder, node *domain.Node) {
	sb.WriteString(node.Enter)
	sb.WriteByte('\n')
	sb.WriteString(ChoicesHeader)
	sb.WriteByte('\n')
	sb.WriteString(strings.Join(node.Labels(), " "))
	sb.WriteByte('\n')
}
