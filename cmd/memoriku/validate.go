package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a memory config file",
	Long: `Loads the memory config the same way 'play' does and reports whether every
level can be dealt from the icon catalog. Exits with status 1 on error.

Examples:
  memoriku validate
  memoriku validate --config ./my-memory.yaml`,
	Args: cobra.NoArgs,
	Run:  runValidate,
}

func init() {
	addConfigFlags(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) {
	settings, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("OK: %d levels, %d icons, reveal delay %s\n",
		len(settings.Levels), len(settings.Catalog), settings.RevealDelay)
}
