package main

import (
	"fmt"
	"os"

	"github.com/aretw0/fable/internal/config"
	"github.com/spf13/cobra"
)

// cfg is resolved before any command runs: defaults, then the config file, then flags.
var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "fable",
	Short: "Fable plays choice-driven text adventures written in YAML",
	Long:  `Fable interprets story documents made of nodes, entry text and named choices, and runs them as an interactive text session.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return resolveConfig(cmd)
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Path to the fable config file")
	rootCmd.PersistentFlags().String("assets", "", "Directory story names resolve against (default \"assets\")")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging to stderr")
	rootCmd.PersistentFlags().String("log-format", "", "Log format: text or json")
	rootCmd.PersistentFlags().String("redis-addr", "", "Read stories from Redis instead of the assets directory")
	rootCmd.PersistentFlags().String("redis-prefix", "", "Key prefix of story documents in Redis")
}

func resolveConfig(cmd *cobra.Command) error {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")

	loaded, err := config.Load(path, flags.Changed("config"))
	if err != nil {
		return err
	}
	cfg = loaded

	if flags.Changed("assets") {
		cfg.AssetsDir, _ = flags.GetString("assets")
	}
	if flags.Changed("debug") {
		cfg.Debug, _ = flags.GetBool("debug")
	}
	if flags.Changed("log-format") {
		cfg.LogFormat, _ = flags.GetString("log-format")
	}
	if flags.Changed("redis-addr") {
		cfg.Redis.Addr, _ = flags.GetString("redis-addr")
	}
	if flags.Changed("redis-prefix") {
		cfg.Redis.Prefix, _ = flags.GetString("redis-prefix")
	}
	if f := flags.Lookup("strict"); f != nil && f.Changed {
		cfg.Strict, _ = flags.GetBool("strict")
	}
	if f := flags.Lookup("plain"); f != nil && f.Changed {
		cfg.Plain, _ = flags.GetBool("plain")
	}
	if f := flags.Lookup("metrics-addr"); f != nil && f.Changed {
		cfg.MetricsAddr, _ = flags.GetString("metrics-addr")
	}
	return cfg.Validate()
}
