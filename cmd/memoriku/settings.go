package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/memoriku/internal/config"
	"github.com/vovakirdan/memoriku/internal/games/memory"
)

var (
	flagConfig     string
	flagDifficulty string
)

// addConfigFlags registers the flags that select the memory config.
func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom memory config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

// loadSettings loads and validates the campaign selected by the flags.
func loadSettings() (memory.Settings, error) {
	settings, err := memory.LoadSettings(flagConfig, config.DifficultyPreset(flagDifficulty))
	if err != nil {
		return memory.Settings{}, err
	}
	logger.Debug("config loaded",
		"levels", len(settings.Levels),
		"icons", len(settings.Catalog),
		"reveal_delay", settings.RevealDelay,
	)
	return settings, nil
}
