package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/fable/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [story]",
	Short: "Play a story interactively",
	Long: `Starts an interactive session. Without arguments, the first line typed names the
story file to load (relative to the assets directory). Lines after that are choices.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			cfg.Story = args[0]
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return cli.RunSession(ctx, cfg, os.Stdin, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("strict", false, "Reject stories whose choices lead to undeclared nodes")
	runCmd.Flags().Bool("plain", false, "Print narrative text without markdown rendering")
	runCmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9090)")

	// 'run' is the default if no command is provided
	rootCmd.Args = runCmd.Args
	rootCmd.RunE = runCmd.RunE
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
}
