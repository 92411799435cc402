package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/memoriku/internal/core"
	"github.com/vovakirdan/memoriku/internal/games/memory"
	"github.com/vovakirdan/memoriku/internal/platform/tui"
)

var flagLevel int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the memory campaign",
	Long: `Start playing the campaign. Without --level a level picker is shown first.

Controls:
  Arrows/hjkl   - Move the cursor
  Space/Enter   - Flip the card under the cursor
  Mouse click   - Flip a card
  N             - Next level (after clearing one)
  P             - Pause
  R             - Play again (after the last level)
  Esc/B         - Back to the level picker (paused or finished)
  Q/Ctrl+C      - Quit

Difficulty options (time mismatched cards stay visible):
  easy    - 1.5 seconds
  normal  - 1 second
  hard    - 0.5 seconds

Examples:
  memoriku play
  memoriku play --level 3
  memoriku play --difficulty hard
  memoriku play --config ./my-memory.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start directly at this level (1-indexed), skipping the picker")
	addConfigFlags(playCmd)
}

func runPlay(_ *cobra.Command, _ []string) {
	settings, err := loadSettings()
	if err != nil {
		logger.Error("cannot load config", "error", err)
		os.Exit(1)
	}

	game, err := memory.NewGame(settings)
	if err != nil {
		logger.Error("cannot create game", "error", err)
		os.Exit(1)
	}

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	if flagLevel != 0 {
		if err := game.SetStartLevel(flagLevel); err != nil {
			logger.Error("invalid --level", "error", err)
			os.Exit(1)
		}
		back, runErr := tui.RunGame(game, cfg)
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
			os.Exit(1)
		}
		if !back {
			return
		}
	}

	for {
		selection, menuErr := tui.RunLevelMenu(settings, cfg)
		if menuErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", menuErr)
			os.Exit(1)
		}
		if selection.Quit {
			return
		}
		cfg = selection.Config

		// Picker only offers existing levels
		//nolint:errcheck
		game.SetStartLevel(selection.Level)

		back, runErr := tui.RunGame(game, cfg)
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
			os.Exit(1)
		}
		if !back {
			return
		}
		logger.Debug("back to level picker")
	}
}
