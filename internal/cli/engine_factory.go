package cli

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/fable"
	"github.com/aretw0/fable/internal/config"
	"github.com/aretw0/fable/pkg/adapters/file"
	"github.com/aretw0/fable/pkg/adapters/redis"
	"github.com/aretw0/fable/pkg/domain"
	"github.com/aretw0/fable/pkg/ports"
)

// createLoader selects the story source: Redis when an address is
// configured, the assets directory otherwise. The returned func releases it.
func createLoader(cfg config.Config) (ports.StoryLoader, func() error) {
	if cfg.Redis.Addr != "" {
		l := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, redis.WithPrefix(cfg.Redis.Prefix))
		return l, l.Close
	}
	return file.NewLoader(cfg.AssetsDir), func() error { return nil }
}

// createEngine initializes a Fable engine with standard CLI conventions.
func createEngine(cfg config.Config, loader ports.StoryLoader, logger *slog.Logger, hooks domain.LifecycleHooks) (*fable.Engine, error) {
	engineOpts := []fable.Option{
		fable.WithLoader(loader),
		fable.WithLogger(logger),
		fable.WithStrictTargets(cfg.Strict),
	}

	if cfg.Debug {
		hooks = hooks.Merge(createDebugHooks(logger))
	}
	engineOpts = append(engineOpts, fable.WithLifecycleHooks(hooks))

	engine, err := fable.New(cfg.AssetsDir, engineOpts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing engine: %w", err)
	}
	return engine, nil
}
