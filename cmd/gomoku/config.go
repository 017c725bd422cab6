package main

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-gomoku/internal/config"
)

var flagConfigEffective bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration file. Save it as
~/.gomoku/configs/gomoku.yaml or ./configs/gomoku.yaml and edit the keys
you want to change.

With --effective, prints the configuration after the config file and
global flags are applied.

Examples:
  gomoku config > ~/.gomoku/configs/gomoku.yaml
  gomoku config --effective --config ./my.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigEffective, "effective", false, "Print the loaded configuration instead of the defaults")
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) {
	if !flagConfigEffective {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		exitWithError("%v", err)
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		exitWithError("encoding config: %v", err)
	}
	if err := enc.Close(); err != nil {
		exitWithError("encoding config: %v", err)
	}
}
