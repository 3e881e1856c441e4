package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/seamusw/cubesim"
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate and apply a random scramble",
	Long: `Generate a random scramble, apply it to a solved cube, and print the
notation along with the scrambled net.

Usage:
  cubesim scramble
  cubesim scramble --length 25 --size 4
  cubesim scramble --seed 42`,
	RunE: runScramble,
}

var (
	scrambleLength int
	scrambleSeed   int64
)

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVarP(&scrambleLength, "length", "l", 20, "Number of moves")
	scrambleCmd.Flags().Int64Var(&scrambleSeed, "seed", 0, "Random seed (0 = time-based)")
}

func runScramble(cmd *cobra.Command, args []string) error {
	seed := scrambleSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	movements := cubesim.NewScramble(scrambleLength, rng)
	cube := cubesim.New(cubeSize)
	cube.ApplyMovements(movements)

	fmt.Printf("Scramble: %s\n\n", cubesim.FormatMovements(movements))
	fmt.Print(renderNet(cube.ToFaceletModel(), cube.Size(), !plain))
	return nil
}
