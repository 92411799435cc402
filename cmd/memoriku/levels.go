package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the levels of the campaign",
	Long:  `Shows the levels in play order with their grid size and pair count.`,
	Args:  cobra.NoArgs,
	Run:   runLevels,
}

func init() {
	addConfigFlags(levelsCmd)
}

func runLevels(_ *cobra.Command, _ []string) {
	settings, err := loadSettings()
	if err != nil {
		logger.Error("cannot load config", "error", err)
		os.Exit(1)
	}

	fmt.Println("Levels:")
	fmt.Println()

	maxNameLen := len("Name")
	for _, lvl := range settings.Levels {
		if len(lvl.Name) > maxNameLen {
			maxNameLen = len(lvl.Name)
		}
	}

	fmt.Printf("  %-3s  %-*s  %-5s  %s\n", "#", maxNameLen, "Name", "Grid", "Pairs")
	fmt.Printf("  %-3s  %-*s  %-5s  %s\n", "-", maxNameLen, "----", "----", "-----")

	for i, lvl := range settings.Levels {
		grid := fmt.Sprintf("%dx%d", lvl.Rows, lvl.Cols)
		fmt.Printf("  %-3d  %-*s  %-5s  %d\n", i+1, maxNameLen, lvl.Name, grid, lvl.Pairs)
	}

	fmt.Println()
	fmt.Printf("Mismatched cards stay visible for %s.\n", settings.RevealDelay)
	fmt.Println("Run 'memoriku play --level <#>' to start at a level.")
}
