package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seamusw/cubesim"
)

var applyCmd = &cobra.Command{
	Use:   "apply <moves>...",
	Short: "Apply a move sequence and print the result",
	Long: `Apply a sequence of moves in standard notation to a solved cube and
print the resulting net.

Usage:
  cubesim apply "R U R' U'"
  cubesim apply --size 4 Rw2 F2 u'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	movements, err := cubesim.ParseScramble(strings.Join(args, " "))
	if err != nil {
		return err
	}

	cube := cubesim.New(cubeSize)
	cube.ApplyMovements(movements)

	fmt.Printf("Applied %d moves: %s\n\n", len(movements), cubesim.FormatMovements(movements))
	fmt.Print(renderNet(cube.ToFaceletModel(), cube.Size(), !plain))
	if cube.IsSolved() {
		fmt.Println("\nCube is solved.")
	}
	return nil
}
