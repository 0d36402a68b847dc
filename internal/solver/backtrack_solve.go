package solver

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/ports"
	"svw.info/sudoku-engine/internal/validator"
)

var errUnsolvable = errors.New("unsolvable or canceled")

// Complete fills g in place by depth-first search: first empty cell in
// row-major order, candidates shuffled by rng (ascending when rng is nil),
// assign, recurse, clear on a dead end. On success g holds a full valid
// solution; on failure (or cancellation) every frame has undone its own
// assignment, so g is exactly the grid the caller passed in. Recursion depth
// is bounded by the number of empty cells, at most 81.
func Complete(ctx context.Context, g *domain.Grid, rng *rand.Rand) (int, bool) {
	nodes := 0
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		r, c, ok := validator.FindEmpty(g)
		if !ok {
			return true
		}
		cands := validator.Candidates(g, r, c)
		if rng != nil {
			rng.Shuffle(len(cands), func(i, j int) { cands[i], cands[j] = cands[j], cands[i] })
		}
		for _, v := range cands {
			nodes++
			g[r][c] = v
			if dfs() {
				return true
			}
			g[r][c] = 0
		}
		return false
	}
	ok := dfs()
	return nodes, ok
}

func (s *BacktrackingSolver) Solve(ctx context.Context, g domain.Grid) (domain.Grid, ports.Stats, error) {
	start := time.Now()
	nodes, ok := Complete(ctx, &g, s.rng)
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if !ok {
		return domain.Grid{}, st, errUnsolvable
	}
	return g, st, nil
}
