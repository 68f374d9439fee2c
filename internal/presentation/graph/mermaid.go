package graph

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/aretw0/fable/pkg/domain"
)

// GraphOverlay contains session data to visualize on the graph.
type GraphOverlay struct {
	CurrentNode string
}

// GenerateMermaid produces a Mermaid flowchart of a story graph.
// It applies semantic styling:
// - Start: ((Circle))
// - Ending (no choices): ([Stadium])
// - Default: [Rectangle]
// Choices become labeled edges. Targets that name no node are drawn
// as a dashed "missing" node so authoring mistakes stand out.
func GenerateMermaid(g *domain.StoryGraph, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	missing := make(map[string]bool)
	for _, name := range g.Names() {
		node := g.Nodes[name]
		safeID := sanitizeMermaidID(name)

		opener, closer := "[", "]"
		switch {
		case name == g.Start:
			opener, closer = "((", "))"
		case len(node.Choices) == 0:
			opener, closer = "([", "])"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, escapeLabel(name), closer))

		for _, c := range node.Choices {
			if _, ok := g.Node(c.Target); !ok {
				missing[c.Target] = true
			}
			sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", safeID, escapeLabel(c.Label), targetID(c.Target)))
		}
	}

	if len(missing) > 0 {
		sb.WriteString("\n    %% Missing targets\n")
		sb.WriteString("    classDef missing fill:#ffebee,stroke:#c62828,stroke-dasharray:5 5,color:#000;\n")
		for _, target := range slices.Sorted(maps.Keys(missing)) {
			id := targetID(target)
			sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", id, escapeLabel(missingLabel(target))))
			sb.WriteString(fmt.Sprintf("    class %s missing;\n", id))
		}
	}

	if overlay != nil && overlay.CurrentNode != "" {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		sb.WriteString(fmt.Sprintf("    class %s current;\n", sanitizeMermaidID(overlay.CurrentNode)))
	}

	return sb.String()
}

func targetID(target string) string {
	if target == "" {
		return "__no_target"
	}
	return sanitizeMermaidID(target)
}

func missingLabel(target string) string {
	if target == "" {
		return "(no target)"
	}
	return "? " + target
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}

func sanitizeMermaidID(id string) string {
	var sb strings.Builder
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			sb.WriteRune(r)
		default:
			sb.WriteRune('_')
		}
	}
	return sb.String()
}
