package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventStoryLoaded EventType = "story_loaded"
	EventNodeEnter   EventType = "node_enter"
	EventChoiceTaken EventType = "choice_taken"
	EventError       EventType = "error"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// StoryEvent is emitted after a story document has been installed.
type StoryEvent struct {
	EventBase
	Story string `json:"story"`
	Nodes int    `json:"nodes"`
	Start string `json:"start"`
}

// NodeEvent is emitted when the cursor arrives at a node.
type NodeEvent struct {
	EventBase
	NodeName string `json:"node_name"`
}

// ChoiceEvent is emitted when a choice is taken.
type ChoiceEvent struct {
	EventBase
	From   string `json:"from"`
	Label  string `json:"label"`
	Target string `json:"target"`
}

// ErrorEvent is emitted for every diagnostic returned by the session.
type ErrorEvent struct {
	EventBase
	Mode Mode  `json:"mode"`
	Kind Kind  `json:"kind"`
	Err  error `json:"-"`
}

// LifecycleHooks defines callbacks for session observability.
// Nil callbacks are skipped.
type LifecycleHooks struct {
	OnStoryLoaded func(context.Context, *StoryEvent)
	OnNodeEnter   func(context.Context, *NodeEvent)
	OnChoiceTaken func(context.Context, *ChoiceEvent)
	OnError       func(context.Context, *ErrorEvent)
}

// Merge returns hooks that invoke h and then other for every event.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnStoryLoaded: chain(h.OnStoryLoaded, other.OnStoryLoaded),
		OnNodeEnter:   chain(h.OnNodeEnter, other.OnNodeEnter),
		OnChoiceTaken: chain(h.OnChoiceTaken, other.OnChoiceTaken),
		OnError:       chain(h.OnError, other.OnError),
	}
}

func chain[E any](a, b func(context.Context, E)) func(context.Context, E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e E) {
		a(ctx, e)
		b(ctx, e)
	}
}
