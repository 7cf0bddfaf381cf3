package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/games/tictactoe"
	"github.com/vovakirdan/tui-tictactoe/internal/logging"
	"github.com/vovakirdan/tui-tictactoe/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a hot-seat match in the current terminal. X moves first.

Controls:
  1-9              - Play a cell (1 = top-left, 9 = bottom-right)
  Arrows/WASD/HJKL - Move the cursor
  Enter/Space      - Play the cell under the cursor
  Mouse click      - Play the clicked cell
  N/R              - New match (keeps the score tally)
  C                - Reset the score tally
  ?                - Show all keys
  Q/Ctrl+C         - Quit

Examples:
  tictactoe play
  tictactoe play --config ./my-theme.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()

	// The alternate screen owns the terminal, so logs go to a file or nowhere.
	logger, err := logging.New(cfg.Log, "tictactoe", io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error setting up logging: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size; Bubble Tea sends the real size once running
	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	game := tictactoe.New(cfg)
	runErr := tui.Run(game, rc, tui.WithLogger(logger.Logger))

	// Close log file before potential exit
	logger.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
