package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/memoriku/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the memoriku SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own campaign with a level picker.
Nothing is shared between sessions.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.memoriku/host_key

Examples:
  memoriku serve                           # Listen on :23234 with auto-generated key
  memoriku serve --ssh :2222               # Listen on port 2222
  memoriku serve --host-key ./my_host_key  # Use specific host key
  memoriku serve --difficulty hard         # Shorter reveal delay for everyone

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	addConfigFlags(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) {
	settings, err := loadSettings()
	if err != nil {
		logger.Error("cannot load config", "error", err)
		os.Exit(1)
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
		Settings:    settings,
	}

	server, err := tui.NewSSHServer(cfg, logger.WithPrefix("memoriku-ssh"))
	if err != nil {
		logger.Error("cannot create server", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Starting memoriku SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
