package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// markdownEscaper neutralizes markdown punctuation so story text and choice
// labels are shown literally.
var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, "`", "\\`", `*`, `\*`, `_`, `\_`,
	`[`, `\[`, `]`, `\]`, `<`, `\<`, `>`, `\>`,
	`#`, `\#`, `+`, `\+`, `-`, `\-`, `.`, `\.`,
	`!`, `\!`, `|`, `\|`, `~`, `\~`,
)

// NewRenderer returns a function that styles narrative text with glamour.
// Line breaks are kept, so each line of engine output stays on its own line.
// It falls back to the raw text when the renderer cannot be built.
func NewRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
		glamour.WithWordWrap(80),
		glamour.WithPreservedNewLines(),
	)
	if err != nil {
		return func(text string) (string, error) { return text, nil }
	}

	return func(text string) (string, error) {
		if strings.TrimSpace(text) == "" {
			return text, nil
		}
		return r.Render(markdownEscaper.Replace(text))
	}
}
