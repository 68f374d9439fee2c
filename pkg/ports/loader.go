package ports

import "context"

// StoryLoader defines how the session retrieves story documents.
type StoryLoader interface {
	// ReadStory returns the full contents of the named story.
	// Failures must wrap domain.ErrIO so the session can classify them.
	ReadStory(ctx context.Context, name string) ([]byte, error)
}

// StoryLister is implemented by loaders that can enumerate their stories.
// It is used by introspection commands (e.g. 'fable stories').
type StoryLister interface {
	ListStories(ctx context.Context) ([]string, error)
}
