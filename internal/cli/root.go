/*
PURPOSE:
  Defines the root Cobra command for the Headway Lab CLI.
  Handles global flags and command initialization.

REQUIREMENTS:
  User-specified:
  - Provide a CLI interface.
  - Support global flags like --config.

  Implementation-discovered:
  - Needs to expose an Execute() function for main.go.
  - Logger level must be set before any subcommand logs.

ARCHITECTURE INTEGRATION:
  - Called by: cmd/headway-lab/main.go
  - Calls: Child commands (compute, sweep, demo)
  - Modifies: output.Logger

ERROR HANDLING:
  - Returns error to main.go for exit code handling.

IMPLEMENTATION RULES:
  - Use `PersistentFlags()` for flags available to all subcommands.
  - Keep Run logic in subcommands.

RELATED FILES:
  - cmd/headway-lab/main.go
  - internal/cli/controls.go
*/

package cli

import (
	"fmt"

	"github.com/daryltucker/headway-lab/internal/config"
	"github.com/daryltucker/headway-lab/internal/output"
	"github.com/spf13/cobra"
)

var (
	// cfgFile stores the path to the config file (if specified via flag)
	cfgFile  string
	logLevel string

	rootCmd = &cobra.Command{
		Use:   "headway-lab",
		Short: "Illustrative rail throughput calculator",
		Long: `Computes trains per hour from headway, dwell, clearance, variability and
an AI precision factor, and draws the throughput sweep over the AI axis.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := output.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			output.Configure(cmd.ErrOrStderr(), level)
			return nil
		},
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig loads the config file named by --config (or the default search).
// The file's log_level applies unless --log-level was given.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if !cmd.Flags().Changed("log-level") && cfg.LogLevel != "" {
		level, err := output.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("config log_level: %w", err)
		}
		output.Configure(cmd.ErrOrStderr(), level)
	}
	return cfg, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./headway.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
}
