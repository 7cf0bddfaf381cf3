// tictactoe is a two-player Tic-Tac-Toe game for the terminal with a
// running score tally, playable locally or over SSH.
//
// Usage:
//
//	tictactoe                - Play in the current terminal
//	tictactoe play           - Same as above
//	tictactoe serve          - Start SSH server for remote play
//	tictactoe config         - Print the effective configuration
//
// Global flags:
//
//	--config <path>      - Path to a config YAML file
//	--log-level <level>  - Log level: debug, info, warn, error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tictactoe/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tictactoe",
	Short: "Tic-Tac-Toe - two players, one terminal",
	Long: `Tic-Tac-Toe for two players sharing a terminal.

X always moves first. Wins and draws are tallied for the session;
start a new match to play again without losing the tally.

Available commands:
  play     - Play in the current terminal (default)
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  tictactoe
  tictactoe --config ./tictactoe.yaml
  tictactoe serve --ssh :2222
  tictactoe play --log-file ./tictactoe.log --log-level debug`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML (default: search ~/.tictactoe, ./configs)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file path (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the config and applies the global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// mustLoadConfig loads the config or exits with an error.
func mustLoadConfig() config.Config {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
