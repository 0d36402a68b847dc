package solver

import (
	"context"
	"time"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/ports"
	"svw.info/sudoku-engine/internal/validator"
)

// CountSolutions counts the complete solutions reachable from g, aborting the
// whole search the instant limit solutions have been found. Unlike Complete,
// candidates are tried in ascending order: exhaustiveness matters here, not
// variety, and the count must not depend on any random source. The search
// runs on its own copy of g, so the caller's grid is never mutated.
func CountSolutions(ctx context.Context, g domain.Grid, limit int) (count, nodes int) {
	var dfs func() bool // true = stop searching
	dfs = func() bool {
		if ctx.Err() != nil || count >= limit {
			return true
		}
		r, c, ok := validator.FindEmpty(&g)
		if !ok {
			count++
			return count >= limit
		}
		for _, v := range validator.Candidates(&g, r, c) {
			nodes++
			g[r][c] = v
			if dfs() {
				return true
			}
			g[r][c] = 0
		}
		return false
	}
	_ = dfs()
	return count, nodes
}

// Unique reports whether g has exactly one completion. The counter is capped
// at 2: beyond that the exact solution count is irrelevant.
func (s *BacktrackingSolver) Unique(ctx context.Context, g domain.Grid) (bool, ports.Stats, error) {
	start := time.Now()
	count, nodes := CountSolutions(ctx, g, 2)
	return count == 1, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
