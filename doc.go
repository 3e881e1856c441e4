// Package cubesim simulates N×N×N twisty cube puzzles geometrically.
//
// Every visible sticker is a point in 3D integer space; applying a move
// rotates the stickers of the selected layers around a principal axis using
// exact 90-degree integer arithmetic. The 3D arrangement can be reprojected
// at any time into a flat facelet layout for comparison or display.
//
// # Quick Start
//
// Simulate a 3×3×3 cube:
//
//	cube := cubesim.New(3)
//
//	// Apply moves using predefined movements
//	cube.ApplyMovements(cubesim.SexyMove)
//
//	// Or from notation
//	if err := cube.ApplyNotation("R U Rw2 M' x"); err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Solved:", cube.IsSolved())
//	fmt.Println(cube.ToFaceletModel())
//
// # Notation
//
// Moves follow standard cube notation: U L F R B D turn outer faces, a "w"
// suffix or lowercase letter turns the outer and adjacent inner layer
// ("Rw" ≡ "r"), E M S turn middle slices, and x y z rotate the whole cube.
// An optional modifier follows the letters: "'" for counter-clockwise, "2"
// for a half turn.
//
// # Sizes
//
// New takes any size from 1 up; Grow and Shrink rebuild the cube solved at
// the adjacent size. Slice moves only match stickers on odd sizes, since
// even cubes have no middle layer.
//
// # Tracking
//
// Tracker wraps a cube with move history, undo, and solved-state callbacks:
//
//	tr := cubesim.NewTracker(3)
//	tr.SetSolvedCallback(func() { fmt.Println("solved!") })
//	tr.ApplyNotation("R U R' U'")
//	tr.Undo()
package cubesim
