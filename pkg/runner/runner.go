package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/fable/internal/logging"
	"github.com/aretw0/fable/pkg/domain"
)

// Meta-commands understood by the runner itself. They never reach the engine.
const (
	CommandQuit  = "/quit"
	CommandReset = "/reset"
)

// Engine is the interpreter surface the runner drives.
// *fable.Engine satisfies it.
type Engine interface {
	Process(ctx context.Context, input string) (string, error)
	Mode() domain.Mode
	Reset()
}

// ContentRenderer is a function that transforms narrative text before output.
// This allows for TUI rendering (markdown to ANSI) without coupling the core package.
type ContentRenderer func(string) (string, error)

// Runner handles the presentation loop of the Fable engine using provided IO.
type Runner struct {
	Input    io.Reader
	Output   io.Writer
	Logger   *slog.Logger
	Headless bool
	Renderer ContentRenderer
	Story    string
}

// New creates a Runner. Input and Output must be set before Run.
func New(opts ...Option) *Runner {
	r := &Runner{}
	for _, opt := range opts {
		opt(r)
	}
	if r.Logger == nil {
		r.Logger = logging.NewNop()
	}
	return r
}

// Run executes the loop until EOF, /quit, or context cancellation.
func (r *Runner) Run(ctx context.Context, engine Engine) error {
	if r.Input == nil {
		return fmt.Errorf("input reader must be set (use os.Stdin)")
	}
	if r.Output == nil {
		return fmt.Errorf("output writer must be set (use os.Stdout)")
	}
	lines := bufio.NewReader(r.Input)

	if r.Story != "" {
		r.handle(ctx, engine, r.Story)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		r.prompt(engine.Mode())

		text, readErr := lines.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return fmt.Errorf("input error: %w", readErr)
		}

		// A final line without terminator is still a completed line.
		if text != "" {
			line := trimTerminator(text)
			switch line {
			case CommandQuit:
				r.system("Bye!")
				return nil
			case CommandReset:
				engine.Reset()
				r.system("Story closed.")
			default:
				r.handle(ctx, engine, line)
			}
		}

		if errors.Is(readErr, io.EOF) {
			return nil
		}
	}
}

// handle sends one line to the engine and displays the outcome.
func (r *Runner) handle(ctx context.Context, engine Engine, line string) {
	out, err := engine.Process(ctx, line)
	if err != nil {
		kind := domain.KindOf(err)
		level := slog.LevelWarn
		if kind == domain.KindChoiceNotFound {
			level = slog.LevelDebug
		}
		r.Logger.Log(ctx, level, "input rejected", "input", line, "kind", kind, "error", err)
		r.system("%s", describe(err))
		return
	}
	r.display(out)
}

func (r *Runner) display(text string) {
	if r.Renderer != nil {
		if rendered, err := r.Renderer(text); err == nil {
			text = rendered
		} else {
			r.Logger.Warn("render failed", "error", err)
		}
	}
	fmt.Fprint(r.Output, text)
}

func (r *Runner) prompt(mode domain.Mode) {
	if r.Headless {
		return
	}
	switch mode {
	case domain.ModeLoad:
		fmt.Fprint(r.Output, "story> ")
	case domain.ModePlay:
		fmt.Fprint(r.Output, "> ")
	}
}

func (r *Runner) system(format string, args ...any) {
	if r.Headless {
		return
	}
	fmt.Fprintf(r.Output, ">>> %s\n", fmt.Sprintf(format, args...))
}

// describe turns a diagnostic into a short message for the player.
func describe(err error) string {
	switch domain.KindOf(err) {
	case domain.KindChoiceNotFound:
		return "That is not one of the choices."
	case domain.KindCurrentNodeInvalid:
		return fmt.Sprintf("The story is broken here. Type %s to load another.", CommandReset)
	case domain.KindIO:
		return "Story not found or unreadable."
	case domain.KindDocumentSyntax:
		return "The story file is not valid YAML."
	case domain.KindMalformedDocument:
		return "The story file must be a mapping of nodes."
	case domain.KindNoStartingNode:
		return "The story has no usable 'start' node."
	case domain.KindDanglingTarget:
		return "The story has choices leading nowhere."
	default:
		return "Something went wrong. See the log for details."
	}
}

func trimTerminator(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
