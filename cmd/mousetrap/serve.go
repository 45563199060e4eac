package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mousetrap/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MouseTrap SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with a level selector. Progress
and history are stored per SSH user in the --db database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.mousetrap/host_key

Examples:
  mousetrap serve                           # Listen on :23234 with auto-generated key
  mousetrap serve --ssh :2222               # Listen on port 2222
  mousetrap serve --host-key ./my_host_key  # Use specific host key
  mousetrap serve --difficulty hard         # Serve the hard preset

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	serveCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runServe(_ *cobra.Command, _ []string) {
	setup, err := loadGameSetup()
	if err != nil {
		fail("%v", err)
	}

	logger, err := newLogger(os.Stderr, "mousetrap-ssh")
	if err != nil {
		fail("%v", err)
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS
	cfg.Catalog = setup.Catalog
	cfg.Params = &setup.Params
	cfg.ShowMouse = setup.Config.Mouse.Show
	cfg.Logger = logger

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting MouseTrap SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fail("server: %v", err)
	}
}
