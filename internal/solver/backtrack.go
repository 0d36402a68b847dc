package solver

import "math/rand"

// BacktrackingSolver is a straightforward recursive solver. When rng is
// non-nil the candidate try order is shuffled per cell, which is the sole
// source of structural variety across generated puzzles; with a nil rng the
// search is fully deterministic (ascending candidate order).
type BacktrackingSolver struct {
	rng *rand.Rand
}

func NewBacktrackingSolver(rng *rand.Rand) *BacktrackingSolver {
	return &BacktrackingSolver{rng: rng}
}

// Solve and Unique live in backtrack_solve.go and backtrack_unique.go; both
// build on the validator package's FindEmpty/Candidates predicates.
