package cubesim

import (
	"errors"
	"testing"
)

var allMoves = []Move{
	MoveU, MoveL, MoveF, MoveR, MoveB, MoveD,
	MoveUw, MoveLw, MoveFw, MoveRw, MoveBw, MoveDw,
	MoveE, MoveM, MoveS,
	MoveX, MoveY, MoveZ,
}

var allTurns = []Turn{CW, Double, CCW}

func TestNotationRoundTrip(t *testing.T) {
	for _, m := range allMoves {
		for _, turn := range allTurns {
			mv := Movement{Move: m, Turn: turn}
			parsed, err := ParseMovement(mv.Notation())
			if err != nil {
				t.Errorf("ParseMovement(%q) error: %v", mv.Notation(), err)
				continue
			}
			if parsed != mv {
				t.Errorf("ParseMovement(%q) = %v; want %v", mv.Notation(), parsed, mv)
			}
		}
	}
}

func TestParseMovementTokens(t *testing.T) {
	cases := []struct {
		token string
		want  Movement
	}{
		{"R", Movement{MoveR, CW}},
		{"R'", Movement{MoveR, CCW}},
		{"R2", Movement{MoveR, Double}},
		{"Rw2", Movement{MoveRw, Double}},
		{"u", Movement{MoveUw, CW}},   // lowercase is wide shorthand
		{"u'", Movement{MoveUw, CCW}}, // turn boundary at index 1
		{"Z'", Movement{MoveZ, CCW}},  // rotation letter is one char
		{"z'", Movement{MoveZ, CCW}},  // rotations are case-insensitive
		{"x2", Movement{MoveX, Double}},
		{"M'", Movement{MoveM, CCW}},
		{"E", Movement{MoveE, CW}},
		{"Dw", Movement{MoveDw, CW}},
	}
	for _, tc := range cases {
		got, err := ParseMovement(tc.token)
		if err != nil {
			t.Errorf("ParseMovement(%q) error: %v", tc.token, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseMovement(%q) = %v; want %v", tc.token, got, tc.want)
		}
	}
}

func TestParseMovementRejectsMalformed(t *testing.T) {
	cases := []struct {
		token string
		err   error
	}{
		{"", ErrEmptyToken},
		{"FF", ErrUnknownMove},
		{"2", ErrUnknownMove},
		{"e", ErrUnknownMove},  // slice letters are uppercase only
		{"m'", ErrUnknownMove}, // likewise
		{"Q", ErrUnknownMove},
		{"Rx", ErrUnknownMove},
		{"u2'", ErrUnknownTurn},
		{"M'2", ErrUnknownTurn},
		{"R''", ErrUnknownTurn},
		{"U3", ErrUnknownTurn},
	}
	for _, tc := range cases {
		_, err := ParseMovement(tc.token)
		if !errors.Is(err, tc.err) {
			t.Errorf("ParseMovement(%q) error = %v; want %v", tc.token, err, tc.err)
		}
	}
}

func TestParseScramble(t *testing.T) {
	movements, err := ParseScramble("R U2 Rw' \n M x2 b")
	if err != nil {
		t.Fatalf("ParseScramble error: %v", err)
	}
	want := []Movement{
		{MoveR, CW}, {MoveU, Double}, {MoveRw, CCW},
		{MoveM, CW}, {MoveX, Double}, {MoveBw, CW},
	}
	if len(movements) != len(want) {
		t.Fatalf("got %d movements; want %d", len(movements), len(want))
	}
	for i := range want {
		if movements[i] != want[i] {
			t.Errorf("movement %d = %v; want %v", i, movements[i], want[i])
		}
	}
}

func TestParseScrambleFailsWholeOnBadToken(t *testing.T) {
	// A stray digit anywhere fails the entire sequence.
	_, err := ParseScramble("R U R 2 U'")
	if !errors.Is(err, ErrUnknownMove) {
		t.Errorf("expected ErrUnknownMove, got %v", err)
	}
}

func TestMovementInverse(t *testing.T) {
	cases := []struct {
		mv, want Movement
	}{
		{Movement{MoveR, CW}, Movement{MoveR, CCW}},
		{Movement{MoveR, CCW}, Movement{MoveR, CW}},
		{Movement{MoveR, Double}, Movement{MoveR, Double}},
		{Movement{MoveM, CW}, Movement{MoveM, CCW}},
	}
	for _, tc := range cases {
		if got := tc.mv.Inverse(); got != tc.want {
			t.Errorf("%v.Inverse() = %v; want %v", tc.mv, got, tc.want)
		}
	}
}

func TestFormatMovements(t *testing.T) {
	movements := []Movement{{MoveR, CW}, {MoveUw, Double}, {MoveZ, CCW}}
	if got := FormatMovements(movements); got != "R Uw2 Z'" {
		t.Errorf("FormatMovements = %q; want %q", got, "R Uw2 Z'")
	}
	if got := FormatMovements(nil); got != "" {
		t.Errorf("FormatMovements(nil) = %q; want empty", got)
	}
}
