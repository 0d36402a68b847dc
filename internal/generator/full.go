package generator

import (
	"context"
	"math/rand"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/solver"
)

// fullGrid produces one complete valid grid. The three diagonal boxes share
// no row, column, or cell, so each can be seeded with an independent random
// permutation of 1..9 without any legality check; the solver then fills the
// remaining 54 cells. Completion from a diagonal seed always succeeds, so no
// retry loop is needed — ok is false only on context cancellation.
func fullGrid(ctx context.Context, rng *rand.Rand) (domain.Grid, int, bool) {
	var g domain.Grid
	for _, base := range [3]int{0, 3, 6} {
		perm := rng.Perm(9)
		for i, p := range perm {
			g[base+i/3][base+i%3] = uint8(p + 1)
		}
	}
	nodes, ok := solver.Complete(ctx, &g, rng)
	return g, nodes, ok
}
