package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/fable/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// Loader implements ports.StoryLoader and ports.StoryLister using Redis.
// Each story document is a string key; names are indexed in a sorted set
// where every member has score 0, so ZRANGE yields them in lexical order.
type Loader struct {
	client *backend.Client
	prefix string
	index  string
}

// Option configures a Loader.
type Option func(*Loader)

// WithPrefix sets the key prefix for story documents.
func WithPrefix(prefix string) Option {
	return func(l *Loader) {
		l.prefix = prefix
	}
}

// WithIndexKey sets the key of the story index.
func WithIndexKey(key string) Option {
	return func(l *Loader) {
		l.index = key
	}
}

// New creates a new Redis loader with options.
func New(address, password string, db int, opts ...Option) *Loader {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis loader from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Loader {
	l := &Loader{
		client: client,
		prefix: "fable:story:",
		index:  "fable:stories",
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

func (l *Loader) key(name string) string {
	return l.prefix + name
}

// Publish stores a story document and adds it to the index.
func (l *Loader) Publish(ctx context.Context, name string, content []byte) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("story name cannot be empty")
	}

	pipe := l.client.TxPipeline()
	pipe.Set(ctx, l.key(name), content, 0)
	pipe.ZAdd(ctx, l.index, backend.Z{Score: 0, Member: name})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to publish story to redis: %w", err)
	}
	return nil
}

// Remove deletes a story document and its index entry.
func (l *Loader) Remove(ctx context.Context, name string) error {
	pipe := l.client.TxPipeline()
	pipe.Del(ctx, l.key(name))
	pipe.ZRem(ctx, l.index, name)

	_, err := pipe.Exec(ctx)
	return err
}

// ReadStory retrieves the document stored under the story name.
func (l *Loader) ReadStory(ctx context.Context, name string) ([]byte, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: story name cannot be empty", domain.ErrIO)
	}

	data, err := l.client.Get(ctx, l.key(name)).Bytes()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return nil, fmt.Errorf("%w: story not found: %q", domain.ErrIO, name)
		}
		return nil, fmt.Errorf("%w: failed to get from redis: %v", domain.ErrIO, err)
	}
	return data, nil
}

// ListStories returns the indexed story names in lexical order.
func (l *Loader) ListStories(ctx context.Context) ([]string, error) {
	names, err := l.client.ZRange(ctx, l.index, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list stories: %v", domain.ErrIO, err)
	}
	return names, nil
}

// Close closes the redis client.
func (l *Loader) Close() error {
	return l.client.Close()
}
