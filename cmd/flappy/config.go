package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var flagConfigDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the game configuration as YAML, after the search order
(--config, ~/.flappy/configs/flappy.yaml, ./configs/flappy.yaml, built-in)
has been applied and validated.

Examples:
  flappy config
  flappy config --default > ~/.flappy/configs/flappy.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefault, "default", false, "Print the built-in defaults instead")
}

func runConfig(cmd *cobra.Command, _ []string) {
	if flagConfigDefault {
		fmt.Fprint(cmd.OutOrStdout(), string(config.DefaultYAML()))
		return
	}

	cfg, err := loadConfig(newLogger(cmd.ErrOrStderr()))
	if err != nil {
		fail("%v", err)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fail("encoding config: %v", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
}
