package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the Fable banner and version to w.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	lines := []struct {
		text  string
		color string
	}{
		{"   ___     _    _     ", "#fbbf24"},
		{"  | __|_ _| |__| |___ ", "#f59e0b"},
		{"  | _/ _` | '_ \\ / -_)", "#f97316"},
		{"  |_|\\__,_|_.__/_\\___|", "#ef4444"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w, out.String("  v"+version).Faint())
	fmt.Fprintln(w)
}

// SystemMessage styles a message from the shell (not the story).
func SystemMessage(w io.Writer, format string, args ...any) {
	out := termenv.NewOutput(w)
	fmt.Fprintln(w, out.String(">>> "+fmt.Sprintf(format, args...)).Foreground(out.Color("#94a3b8")))
}
