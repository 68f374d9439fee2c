package runtime

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/fable/internal/compiler"
	"github.com/aretw0/fable/internal/logging"
	"github.com/aretw0/fable/internal/validator"
	"github.com/aretw0/fable/pkg/domain"
	"github.com/aretw0/fable/pkg/ports"
)

// Session is the live interpreter: the installed graph, the cursor, and the
// Load/Play machine. It is not safe for concurrent use; the presentation
// loop owns it and delivers one input at a time.
type Session struct {
	loader ports.StoryLoader
	parser *compiler.Parser
	logger *slog.Logger
	hooks  domain.LifecycleHooks
	strict bool

	mode    domain.Mode
	story   string
	graph   *domain.StoryGraph
	current string
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(logger *slog.Logger) SessionOption {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) SessionOption {
	return func(s *Session) {
		s.hooks = hooks
	}
}

// WithStrictTargets makes loads fail when any choice targets an undeclared node.
func WithStrictTargets(strict bool) SessionOption {
	return func(s *Session) {
		s.strict = strict
	}
}

// NewSession creates a session in Load mode with no graph.
func NewSession(loader ports.StoryLoader, opts ...SessionOption) *Session {
	s := &Session{
		loader: loader,
		parser: compiler.NewParser(),
		logger: logging.NewNop(),
		mode:   domain.ModeLoad,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Mode returns the current machine state.
func (s *Session) Mode() domain.Mode {
	return s.mode
}

// Story returns the name of the installed story, if any.
func (s *Session) Story() string {
	return s.story
}

// Graph returns the installed graph, or nil in Load mode.
func (s *Session) Graph() *domain.StoryGraph {
	return s.graph
}

// CurrentNode returns the cursor. It is only meaningful in Play mode.
func (s *Session) CurrentNode() (string, bool) {
	if s.mode != domain.ModePlay {
		return "", false
	}
	return s.current, true
}

// Reset discards the installed story and returns to a fresh Load mode.
func (s *Session) Reset() {
	s.logger.Debug("session reset", "story", s.story)
	s.mode = domain.ModeLoad
	s.story = ""
	s.graph = nil
	s.current = ""
}

// Process feeds one line of player input to the machine.
// In Load mode the input names a story document; in Play mode it is a
// choice label. On error the output is empty and the session is unchanged.
func (s *Session) Process(ctx context.Context, input string) (string, error) {
	var (
		out string
		err error
	)

	switch s.mode {
	case domain.ModeLoad:
		out, err = s.load(ctx, input)
	case domain.ModePlay:
		out, err = s.step(ctx, input)
	default:
		err = fmt.Errorf("unsupported session mode %s", s.mode)
	}

	if err != nil {
		s.report(ctx, err)
		return "", err
	}
	return out, nil
}

// load reads, parses and installs a story. The session only changes once
// every step has succeeded.
func (s *Session) load(ctx context.Context, name string) (string, error) {
	data, err := s.loader.ReadStory(ctx, name)
	if err != nil {
		if !errors.Is(err, domain.ErrIO) {
			err = fmt.Errorf("%w: %v", domain.ErrIO, err)
		}
		return "", fmt.Errorf("failed to read story %q: %w", name, err)
	}

	graph, err := s.parser.Parse(data)
	if err != nil {
		return "", fmt.Errorf("failed to parse story %q: %w", name, err)
	}

	if graph.Start == "" {
		return "", fmt.Errorf("story %q: %w: no %q key", name, domain.ErrNoStartingNode, compiler.KeyStart)
	}
	start, ok := graph.Node(graph.Start)
	if !ok {
		return "", fmt.Errorf("story %q: %w: start names undeclared node %q", name, domain.ErrNoStartingNode, graph.Start)
	}

	report := validator.Check(graph)
	if s.strict {
		if err := report.Err(); err != nil {
			return "", fmt.Errorf("story %q: %w", name, err)
		}
	} else if len(report.Dangling) > 0 {
		s.logger.Warn("story has dangling choice targets", "story", name, "count", len(report.Dangling))
	}

	s.graph = graph
	s.story = name
	s.current = start.Name
	s.mode = domain.ModePlay

	s.logger.Info("story loaded", "story", name, "nodes", len(graph.Nodes), "start", start.Name)
	if s.hooks.OnStoryLoaded != nil {
		s.hooks.OnStoryLoaded(ctx, &domain.StoryEvent{
			EventBase: s.event(domain.EventStoryLoaded),
			Story:     name,
			Nodes:     len(graph.Nodes),
			Start:     start.Name,
		})
	}
	s.entered(ctx, start.Name)

	return renderEntry(start), nil
}

// step resolves the current node, matches the input against its choices and
// moves the cursor. Failures leave the cursor where it was.
func (s *Session) step(ctx context.Context, label string) (string, error) {
	node, ok := s.graph.Node(s.current)
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrCurrentNodeInvalid, s.current)
	}

	choice, ok := node.Choice(label)
	if !ok {
		return "", fmt.Errorf("%w: %q at node %q", domain.ErrChoiceNotFound, label, node.Name)
	}

	from := s.current
	s.current = choice.Target

	s.logger.Debug("choice taken", "from", from, "label", label, "target", choice.Target)
	if s.hooks.OnChoiceTaken != nil {
		s.hooks.OnChoiceTaken(ctx, &domain.ChoiceEvent{
			EventBase: s.event(domain.EventChoiceTaken),
			From:      from,
			Label:     label,
			Target:    choice.Target,
		})
	}

	next, ok := s.graph.Node(choice.Target)
	if !ok {
		// Surfaces as ErrCurrentNodeInvalid on the next call.
		s.logger.Warn("choice leads to undeclared node", "from", from, "label", label, "target", choice.Target)
		next = &domain.Node{Name: choice.Target}
	} else {
		s.entered(ctx, next.Name)
	}

	return renderTransition(choice, next), nil
}

func (s *Session) entered(ctx context.Context, name string) {
	if s.hooks.OnNodeEnter != nil {
		s.hooks.OnNodeEnter(ctx, &domain.NodeEvent{
			EventBase: s.event(domain.EventNodeEnter),
			NodeName:  name,
		})
	}
}

// report logs a diagnostic and emits the error hook. ErrCurrentNodeInvalid
// is an internal consistency fault and is logged at error level.
func (s *Session) report(ctx context.Context, err error) {
	kind := domain.KindOf(err)
	switch kind {
	case domain.KindCurrentNodeInvalid:
		s.logger.Error("session cursor names no node", "story", s.story, "node", s.current, "error", err)
	case domain.KindChoiceNotFound:
		s.logger.Debug("input matched no choice", "node", s.current, "error", err)
	default:
		s.logger.Warn("story load failed", "kind", kind, "error", err)
	}

	if s.hooks.OnError != nil {
		s.hooks.OnError(ctx, &domain.ErrorEvent{
			EventBase: s.event(domain.EventError),
			Mode:      s.mode,
			Kind:      kind,
			Err:       err,
		})
	}
}

func (s *Session) event(t domain.EventType) domain.EventBase {
	return domain.EventBase{Timestamp: time.Now(), Type: t}
}
