package cubesim

import (
	"math/rand"
	"testing"
)

func TestNewScrambleLengthAndFaces(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	movements := NewScramble(25, rng)
	if len(movements) != 25 {
		t.Fatalf("got %d movements; want 25", len(movements))
	}
	outer := map[Move]bool{
		MoveU: true, MoveL: true, MoveF: true, MoveR: true, MoveB: true, MoveD: true,
	}
	for i, mv := range movements {
		if !outer[mv.Move] {
			t.Errorf("movement %d is %v; scrambles use outer face turns only", i, mv)
		}
		if i > 0 && mv.Move == movements[i-1].Move {
			t.Errorf("movements %d and %d turn the same face: %v %v", i-1, i, movements[i-1], mv)
		}
	}
}

func TestNewScrambleDeterministicPerSeed(t *testing.T) {
	a := NewScramble(20, rand.New(rand.NewSource(7)))
	b := NewScramble(20, rand.New(rand.NewSource(7)))
	if FormatMovements(a) != FormatMovements(b) {
		t.Error("same seed should produce the same scramble")
	}
}

func TestNewScrambleActuallyScrambles(t *testing.T) {
	c := New(3)
	c.ApplyMovements(NewScramble(20, rand.New(rand.NewSource(3))))
	if c.IsSolved() {
		t.Error("20-move scramble left the cube solved")
	}
}
