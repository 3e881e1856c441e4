package cubesim

// Tracker wraps a GCube and maintains move history and solved-state
// detection around it.
type Tracker struct {
	cube           *GCube
	history        []Movement
	wasSolved      bool
	cfg            *config
	solvedCallback func()
}

// NewTracker creates a tracker around a solved cube of the given size.
func NewTracker(size int, opts ...Option) *Tracker {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Tracker{
		cube:      New(size),
		wasSolved: true,
		cfg:       cfg,
	}
}

// SetSolvedCallback sets a callback that fires when the cube transitions
// from scrambled back to solved.
func (t *Tracker) SetSolvedCallback(cb func()) {
	t.solvedCallback = cb
}

// Apply applies a movement, records it, and checks for a solved transition.
func (t *Tracker) Apply(mv Movement) {
	t.cube.ApplyMovement(mv)
	if t.cfg.moveHistory {
		t.history = append(t.history, mv)
	}
	t.checkSolvedTransition()
}

// ApplyAll applies a sequence of movements in order.
func (t *Tracker) ApplyAll(movements []Movement) {
	for _, mv := range movements {
		t.Apply(mv)
	}
}

// ApplyNotation parses a scramble string and applies it. Nothing is applied
// if any token fails to parse.
func (t *Tracker) ApplyNotation(s string) error {
	movements, err := ParseScramble(s)
	if err != nil {
		return err
	}
	t.ApplyAll(movements)
	return nil
}

// Undo reverts the most recent movement by applying its inverse. It reports
// false when there is no history to undo, including when history tracking is
// disabled.
func (t *Tracker) Undo() bool {
	if len(t.history) == 0 {
		return false
	}
	last := t.history[len(t.history)-1]
	t.history = t.history[:len(t.history)-1]
	t.cube.ApplyMovement(last.Inverse())
	t.checkSolvedTransition()
	return true
}

// Reset returns the tracker to a solved cube of the current size and clears
// the history.
func (t *Tracker) Reset() {
	t.cube = New(t.cube.Size())
	t.history = nil
	t.wasSolved = true
}

// Grow resizes the cube to N+1. Resizing rebuilds a solved cube, so the
// history is cleared.
func (t *Tracker) Grow() {
	t.cube.Grow()
	t.history = nil
	t.wasSolved = true
}

// Shrink resizes the cube to N-1 (floored at 1) and clears the history.
func (t *Tracker) Shrink() {
	t.cube.Shrink()
	t.history = nil
	t.wasSolved = true
}

func (t *Tracker) checkSolvedTransition() {
	solved := t.cube.IsSolved()
	if solved && !t.wasSolved && t.solvedCallback != nil {
		t.solvedCallback()
	}
	t.wasSolved = solved
}

// IsSolved reports whether the underlying cube is solved.
func (t *Tracker) IsSolved() bool {
	return t.cube.IsSolved()
}

// MoveCount returns the number of recorded movements.
func (t *Tracker) MoveCount() int {
	return len(t.history)
}

// History returns a copy of the recorded movements.
func (t *Tracker) History() []Movement {
	out := make([]Movement, len(t.history))
	copy(out, t.history)
	return out
}

// Cube returns the underlying cube for inspection.
func (t *Tracker) Cube() *GCube {
	return t.cube
}
