// cubesim - geometric N×N×N twisty cube simulator.
package main

import (
	"github.com/seamusw/cubesim/internal/cli"
)

func main() {
	cli.Execute()
}
