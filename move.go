package cubesim

import (
	"fmt"
	"strings"
)

// Move is the base move identifier: the six outer face turns, their wide
// variants (outer layer plus the adjacent inner layer), the three middle
// slice moves and the three whole-cube rotations.
type Move int

const (
	MoveU Move = iota
	MoveL
	MoveF
	MoveR
	MoveB
	MoveD
	MoveUw
	MoveLw
	MoveFw
	MoveRw
	MoveBw
	MoveDw
	MoveE
	MoveM
	MoveS
	MoveX
	MoveY
	MoveZ
)

var moveNames = map[Move]string{
	MoveU: "U", MoveL: "L", MoveF: "F", MoveR: "R", MoveB: "B", MoveD: "D",
	MoveUw: "Uw", MoveLw: "Lw", MoveFw: "Fw", MoveRw: "Rw", MoveBw: "Bw", MoveDw: "Dw",
	MoveE: "E", MoveM: "M", MoveS: "S",
	MoveX: "X", MoveY: "Y", MoveZ: "Z",
}

// moveTokens maps every accepted spelling of a move part. Uppercase face
// letters are outer turns, lowercase face letters are shorthand for the wide
// variant, the slice letters E/M/S are uppercase only, and the rotation
// letters accept either case.
var moveTokens = map[string]Move{
	"U": MoveU, "L": MoveL, "F": MoveF, "R": MoveR, "B": MoveB, "D": MoveD,
	"u": MoveUw, "l": MoveLw, "f": MoveFw, "r": MoveRw, "b": MoveBw, "d": MoveDw,
	"Uw": MoveUw, "Lw": MoveLw, "Fw": MoveFw, "Rw": MoveRw, "Bw": MoveBw, "Dw": MoveDw,
	"E": MoveE, "M": MoveM, "S": MoveS,
	"X": MoveX, "Y": MoveY, "Z": MoveZ,
	"x": MoveX, "y": MoveY, "z": MoveZ,
}

func (m Move) String() string {
	if s, ok := moveNames[m]; ok {
		return s
	}
	return "?"
}

// Turn represents the direction and magnitude of a turn.
type Turn int

const (
	CW     Turn = 1  // Clockwise quarter turn (90 degrees)
	CCW    Turn = -1 // Counter-clockwise quarter turn
	Double Turn = 2  // Half turn (180 degrees)
)

// Inverse returns the opposite turn direction. Double is its own inverse.
func (t Turn) Inverse() Turn {
	switch t {
	case CW:
		return CCW
	case CCW:
		return CW
	default:
		return t
	}
}

func (t Turn) suffix() string {
	switch t {
	case CCW:
		return "'"
	case Double:
		return "2"
	default:
		return ""
	}
}

// Movement is a base move paired with a turn. It is an immutable value and
// comparable with ==.
type Movement struct {
	Move Move
	Turn Turn
}

// Notation returns the standard notation string for this movement.
// Examples: R, R', Rw2, M', x.
func (mv Movement) Notation() string {
	return mv.Move.String() + mv.Turn.suffix()
}

// String returns the notation string (alias for Notation).
func (mv Movement) String() string {
	return mv.Notation()
}

// Inverse returns the movement that undoes this one.
func (mv Movement) Inverse() Movement {
	return Movement{Move: mv.Move, Turn: mv.Turn.Inverse()}
}

func isLetter(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

// ParseMovement parses a single notation token into a Movement.
//
// A token is a 1-2 letter move part followed by an optional turn modifier
// ("" = clockwise, "2" = half turn, "'" = counter-clockwise). The move part
// is two characters long exactly when the second character is a letter, so
// "Rw2" splits as Rw|2 and "Z'" as Z|'.
func ParseMovement(token string) (Movement, error) {
	if token == "" {
		return Movement{}, ErrEmptyToken
	}

	split := 1
	if len(token) >= 2 && isLetter(token[1]) {
		split = 2
	}

	move, ok := moveTokens[token[:split]]
	if !ok {
		return Movement{}, fmt.Errorf("%w: %q in token %q", ErrUnknownMove, token[:split], token)
	}

	turn := CW
	switch suffix := token[split:]; suffix {
	case "":
	case "2":
		turn = Double
	case "'":
		turn = CCW
	default:
		return Movement{}, fmt.Errorf("%w: %q in token %q", ErrUnknownTurn, suffix, token)
	}

	return Movement{Move: move, Turn: turn}, nil
}

// ParseScramble parses a whitespace-separated sequence of move tokens.
// The first invalid token fails the whole sequence; no partial result is
// returned.
func ParseScramble(s string) ([]Movement, error) {
	fields := strings.Fields(s)
	movements := make([]Movement, 0, len(fields))
	for _, field := range fields {
		mv, err := ParseMovement(field)
		if err != nil {
			return nil, err
		}
		movements = append(movements, mv)
	}
	return movements, nil
}

// FormatMovements formats a movement sequence as a space-separated notation
// string.
func FormatMovements(movements []Movement) string {
	if len(movements) == 0 {
		return ""
	}
	parts := make([]string, len(movements))
	for i, mv := range movements {
		parts[i] = mv.Notation()
	}
	return strings.Join(parts, " ")
}
