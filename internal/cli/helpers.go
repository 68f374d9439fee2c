package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/fable/internal/config"
	"github.com/aretw0/fable/internal/logging"
	"github.com/aretw0/fable/pkg/domain"
	"golang.org/x/term"
)

// createLogger configures the application logger.
// It writes to Stderr to keep Stdout for the narrative.
func createLogger(cfg config.Config) *slog.Logger {
	return logging.New(os.Stderr, logging.Level(cfg.Debug), cfg.LogFormat)
}

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStoryLoaded: func(ctx context.Context, e *domain.StoryEvent) {
			logger.DebugContext(ctx, "Story Loaded", "story", e.Story, "nodes", e.Nodes, "start", e.Start)
		},
		OnNodeEnter: func(ctx context.Context, e *domain.NodeEvent) {
			logger.DebugContext(ctx, "Enter Node", "node", e.NodeName)
		},
		OnChoiceTaken: func(ctx context.Context, e *domain.ChoiceEvent) {
			logger.DebugContext(ctx, "Choice Taken", "from", e.From, "label", e.Label, "target", e.Target)
		},
	}
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
