package fable

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/aretw0/fable/internal/logging"
	"github.com/aretw0/fable/internal/runtime"
	"github.com/aretw0/fable/pkg/adapters/file"
	"github.com/aretw0/fable/pkg/domain"
	"github.com/aretw0/fable/pkg/ports"
)

// Version is the current release of the Fable interpreter.
const Version = "0.3.0"

// Engine is the high-level entry point for the Fable library.
// It wraps the internal session and provides a simplified API for consumers.
type Engine struct {
	session *runtime.Session
	loader  ports.StoryLoader
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
	strict  bool

	// AssetsRoot is the absolute directory story names resolve against.
	// Empty when a custom loader was injected without a root.
	AssetsRoot string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLoader injects a custom StoryLoader, bypassing the filesystem loader.
func WithLoader(l ports.StoryLoader) Option {
	return func(e *Engine) {
		e.loader = l
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithStrictTargets rejects stories whose choices target undeclared nodes.
// By default such targets only fail once the player reaches them.
func WithStrictTargets(strict bool) Option {
	return func(e *Engine) {
		e.strict = strict
	}
}

// New initializes a new Fable Engine in Load mode.
// By default, story names typed by the player resolve against assetsRoot.
// If WithLoader option is provided, assetsRoot can be empty.
func New(assetsRoot string, opts ...Option) (*Engine, error) {
	eng := &Engine{}

	for _, opt := range opts {
		opt(eng)
	}

	if eng.loader == nil {
		if assetsRoot == "" {
			return nil, fmt.Errorf("assetsRoot is required when no custom loader is provided")
		}
		absPath, err := filepath.Abs(assetsRoot)
		if err != nil {
			return nil, fmt.Errorf("invalid path: %w", err)
		}
		eng.AssetsRoot = absPath
		eng.loader = file.NewLoader(absPath)
	} else if assetsRoot != "" {
		eng.AssetsRoot = assetsRoot
	}

	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}

	eng.session = runtime.NewSession(eng.loader,
		runtime.WithLogger(eng.logger),
		runtime.WithLifecycleHooks(eng.hooks),
		runtime.WithStrictTargets(eng.strict),
	)

	return eng, nil
}

// Process feeds one completed line of input to the session and returns the
// text to display. A non-nil error is a diagnostic for the caller to log;
// the output is empty and the session unchanged in that case.
func (e *Engine) Process(ctx context.Context, input string) (string, error) {
	return e.session.Process(ctx, input)
}

// Mode returns the current machine state.
func (e *Engine) Mode() domain.Mode {
	return e.session.Mode()
}

// CurrentNode returns the node the player occupies; false outside Play mode.
func (e *Engine) CurrentNode() (string, bool) {
	return e.session.CurrentNode()
}

// Story returns the name of the loaded story, if any.
func (e *Engine) Story() string {
	return e.session.Story()
}

// Graph returns the loaded story graph, or nil in Load mode.
func (e *Engine) Graph() *domain.StoryGraph {
	return e.session.Graph()
}

// Reset discards the loaded story so the next input names a new one.
func (e *Engine) Reset() {
	e.session.Reset()
}

// Loader returns the underlying StoryLoader used by the engine.
func (e *Engine) Loader() ports.StoryLoader {
	return e.loader
}
