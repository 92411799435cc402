// memoriku is a memory-matching card game for the terminal.
//
// Usage:
//
//	memoriku play            - Pick a level and play
//	memoriku levels          - List the levels of the campaign
//	memoriku validate        - Check a memory config file
//	memoriku serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible deals
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogLevel string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "memoriku",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "memoriku",
	Short: "Memoriku - a memory card game in your terminal",
	Long: `Memoriku is a concentration card game. Flip two cards per move and
find every matching pair to clear a level.

Available commands:
  play      - Play the campaign (with a level picker)
  levels    - Show the levels of the campaign
  validate  - Check a memory config file
  serve     - Start SSH server for remote play

Examples:
  memoriku play
  memoriku play --level 2 --difficulty hard
  memoriku levels --config ./my-memory.yaml
  memoriku serve --ssh :2222`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		logger.SetLevel(level)
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(serveCmd)
}
