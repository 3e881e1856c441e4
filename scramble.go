package cubesim

import "math/rand"

// scrambleMoves are the base moves a generated scramble draws from: outer
// face turns only, matching the usual scramble conventions.
var scrambleMoves = [6]Move{MoveU, MoveL, MoveF, MoveR, MoveB, MoveD}

var scrambleTurns = [3]Turn{CW, CCW, Double}

// NewScramble generates a random scramble of the given length using the
// provided source. Consecutive movements never turn the same face, so no
// pair can merge or cancel.
func NewScramble(length int, rng *rand.Rand) []Movement {
	movements := make([]Movement, 0, length)
	last := -1
	for len(movements) < length {
		pick := rng.Intn(len(scrambleMoves))
		if pick == last {
			continue
		}
		last = pick
		movements = append(movements, Movement{
			Move: scrambleMoves[pick],
			Turn: scrambleTurns[rng.Intn(len(scrambleTurns))],
		})
	}
	return movements
}
