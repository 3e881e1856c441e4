// Package cli implements the command-line interface for cubesim.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	// Global flags
	cubeSize int
	plain    bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubesim",
	Short: "N×N×N cube simulator",
	Long: `cubesim - a geometric N×N×N twisty cube simulator.

Apply move sequences in standard notation to cubes of any size, generate
scrambles, and play interactively in the terminal.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&cubeSize, "size", "n", 3, "Cube side length")
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "Disable colored output")
}
