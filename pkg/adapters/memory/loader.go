package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/fable/pkg/domain"
)

// Loader implements ports.StoryLoader using an in-memory map.
// Safe for concurrent use.
type Loader struct {
	stories map[string][]byte
	mu      sync.RWMutex
}

// NewLoader creates a new Loader with the provided documents keyed by story name.
func NewLoader(data map[string]string) *Loader {
	stories := make(map[string][]byte, len(data))
	for k, v := range data {
		stories[k] = []byte(v)
	}
	return &Loader{stories: stories}
}

// Put adds or replaces a story document.
func (l *Loader) Put(name string, content []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stories[name] = append([]byte(nil), content...)
}

// ReadStory retrieves a copy of the named document.
func (l *Loader) ReadStory(ctx context.Context, name string) ([]byte, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	content, ok := l.stories[name]
	if !ok {
		return nil, fmt.Errorf("%w: story not found: %q", domain.ErrIO, name)
	}
	return append([]byte(nil), content...), nil
}

// ListStories returns all story names.
func (l *Loader) ListStories(ctx context.Context) ([]string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	keys := make([]string, 0, len(l.stories))
	for k := range l.stories {
		keys = append(keys, k)
	}
	sort.Strings(keys) // Deterministic order
	return keys, nil
}
