package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seamusw/cubesim"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the solved cube net",
	Long: `Print the flat net of a solved cube at the configured size.

Usage:
  cubesim show
  cubesim show --size 5`,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	cube := cubesim.New(cubeSize)
	fmt.Print(renderNet(cube.ToFaceletModel(), cube.Size(), !plain))
	return nil
}
