package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var flagShowDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration that play and window would use, after the
config search and flag overrides, as YAML.

With --default, print the built-in config file instead; redirect it to
~/.tui-snake/config.yaml to start customising.

Examples:
  snake config
  snake config --fps 60
  snake config --default > ~/.tui-snake/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagShowDefault, "default", false, "Print the built-in default config file")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagShowDefault {
		//nolint:errcheck // Best-effort write to stdout
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fatal("%v", err)
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		fatal("%v", err)
	}
	logger.Debug("config loaded", "path", flagConfig, "moves_per_second", cfg.MovesPerSecond())

	data, err := config.Marshal(cfg)
	if err != nil {
		fatal("%v", err)
	}
	fmt.Print(string(data))
}
