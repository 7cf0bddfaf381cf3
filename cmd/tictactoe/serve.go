package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tictactoe/internal/games/tictactoe"
	"github.com/vovakirdan/tui-tictactoe/internal/logging"
	"github.com/vovakirdan/tui-tictactoe/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Tic-Tac-Toe SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own board and its own score tally; the two
players of a match share that one connection's terminal.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, uses server.host_key from the config
  - Otherwise, auto-generates a key at ~/.tictactoe/host_key

Examples:
  tictactoe serve                           # Listen on the configured address
  tictactoe serve --ssh :2222               # Listen on port 2222
  tictactoe serve --host-key ./my_host_key  # Use specific host key
  tictactoe serve --idle-timeout 5          # Drop idle sessions after 5 minutes

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, overrides config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (overrides config)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes (overrides config)")
}

func runServe(cmd *cobra.Command, _ []string) {
	cfg := mustLoadConfig()

	if flagSSHAddr != "" {
		cfg.Server.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.Server.HostKeyPath = flagHostKey
	}
	if cmd.Flags().Changed("idle-timeout") {
		cfg.Server.IdleTimeoutMinutes = flagIdleTimeout
	}

	// Server logs go to stderr unless a file is configured.
	logger, err := logging.New(cfg.Log, "tictactoe-ssh", os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error setting up logging: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     cfg.Server.Address,
		HostKeyPath: cfg.Server.HostKeyPath,
		IdleTimeout: time.Duration(cfg.Server.IdleTimeoutMinutes) * time.Minute,
		NewGame:     func() tui.Game { return tictactoe.New(cfg) },
		Logger:      logger.Logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting Tic-Tac-Toe SSH server on %s\n", server.Addr())
	fmt.Printf("Connect with: ssh -t localhost -p %s\n", port(server.Addr()))
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		logger.Close()
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

// port extracts the port from a listen address, falling back to the default.
func port(addr string) string {
	if _, p, err := net.SplitHostPort(addr); err == nil && p != "" {
		return p
	}
	return "23234"
}
