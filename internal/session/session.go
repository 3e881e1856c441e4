// Package session provides an in-memory log of a simulation session: every
// applied movement with a timestamp, plus summary statistics. Nothing is
// persisted across runs.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/seamusw/cubesim"
)

// TimedMovement is a movement together with its offset from session start.
type TimedMovement struct {
	Movement cubesim.Movement
	Offset   time.Duration
}

// Session accumulates the movements applied during one run.
type Session struct {
	id        string
	startedAt time.Time
	movements []TimedMovement
}

// New starts a new session.
func New() *Session {
	return &Session{
		id:        uuid.NewString(),
		startedAt: time.Now(),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// StartedAt returns when the session began.
func (s *Session) StartedAt() time.Time {
	return s.startedAt
}

// Record appends a movement with the current timestamp.
func (s *Session) Record(mv cubesim.Movement) {
	s.movements = append(s.movements, TimedMovement{
		Movement: mv,
		Offset:   time.Since(s.startedAt),
	})
}

// MoveCount returns the number of recorded movements.
func (s *Session) MoveCount() int {
	return len(s.movements)
}

// Duration returns the elapsed time since the session started.
func (s *Session) Duration() time.Duration {
	return time.Since(s.startedAt)
}

// Notation returns the recorded movements as a scramble string.
func (s *Session) Notation() string {
	movements := make([]cubesim.Movement, len(s.movements))
	for i, tm := range s.movements {
		movements[i] = tm.Movement
	}
	return cubesim.FormatMovements(movements)
}

// Summary holds aggregate statistics for a session.
type Summary struct {
	ID         string
	Duration   time.Duration
	TotalMoves int
	TPS        float64 // turns per second
	PerMove    map[cubesim.Move]int
}

// Summarize computes summary statistics over the recorded movements.
func (s *Session) Summarize() Summary {
	perMove := make(map[cubesim.Move]int)
	for _, tm := range s.movements {
		perMove[tm.Movement.Move]++
	}
	d := s.Duration()
	tps := 0.0
	if d > 0 {
		tps = float64(len(s.movements)) / d.Seconds()
	}
	return Summary{
		ID:         s.id,
		Duration:   d,
		TotalMoves: len(s.movements),
		TPS:        tps,
		PerMove:    perMove,
	}
}
