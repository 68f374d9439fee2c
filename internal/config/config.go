package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/aretw0/fable/internal/logging"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = "fable.yaml"

// Redis configures the optional Redis story source.
type Redis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

// Config holds the settings of the fable shell.
type Config struct {
	// AssetsDir is the directory story names resolve against.
	AssetsDir string `mapstructure:"assets_dir"`
	// Story is loaded before reading input, when set.
	Story       string `mapstructure:"story"`
	Debug       bool   `mapstructure:"debug"`
	LogFormat   string `mapstructure:"log_format"`
	Strict      bool   `mapstructure:"strict"`
	Plain       bool   `mapstructure:"plain"`
	MetricsAddr string `mapstructure:"metrics_addr"`
	Redis       Redis  `mapstructure:"redis"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		AssetsDir: "assets",
		LogFormat: logging.FormatText,
		Redis: Redis{
			Prefix: "fable:story:",
		},
	}
}

// Load reads path over the defaults. A missing file is not an error unless
// required is set. Unknown keys are rejected.
func Load(path string, required bool) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := Decode(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode applies raw settings onto cfg.
func Decode(raw map[string]any, cfg *Config) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return err
	}
	return decoder.Decode(raw)
}

// Validate checks settings that would otherwise fail late.
func (c Config) Validate() error {
	switch c.LogFormat {
	case logging.FormatText, logging.FormatJSON:
	default:
		return fmt.Errorf("log_format must be %q or %q, got %q", logging.FormatText, logging.FormatJSON, c.LogFormat)
	}
	if c.Redis.Addr == "" && c.AssetsDir == "" {
		return fmt.Errorf("assets_dir is required unless redis.addr is set")
	}
	return nil
}
