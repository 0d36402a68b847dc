package generator

import (
	"context"
	"math/rand"

	"svw.info/sudoku-engine/internal/domain"
)

// carve removes cells from a copy of solution until the difficulty's
// filled-cell target is reached or the attempts cap (2× the removal target)
// runs out. Removal order is a uniform shuffle of all 81 positions.
//
// Only hard puzzles get a uniqueness guard, and only for the final stretch:
// once 70% of the target removals are done, each further removal is kept only
// if the grid still has exactly one solution. Easy and medium removals are
// accepted unconditionally — those difficulties carry no uniqueness
// guarantee. That is a deliberate throughput tradeoff, not an oversight.
//
// The cap means the result can end up with more filled cells than the
// nominal target; FilledCells on the returned Puzzle reports the real count.
func (g *PuzzleGenerator) carve(ctx context.Context, rng *rand.Rand, solution domain.Grid, diff domain.Difficulty) (domain.Grid, int, error) {
	cfg, ok := domain.Difficulties[diff]
	if !ok {
		cfg = domain.Difficulties[domain.Medium]
	}
	toRemove := 81 - cfg.FilledCells

	positions := rng.Perm(81)
	puz := solution
	nodes := 0
	removed, attempts := 0, 0

	for _, pos := range positions {
		if removed >= toRemove || attempts >= 2*toRemove {
			break
		}
		if ctx.Err() != nil {
			return domain.Grid{}, nodes, ctx.Err()
		}
		r, c := pos/9, pos%9
		backup := puz[r][c]
		puz[r][c] = 0
		attempts++

		// guard the last 30% of hard removals with a uniqueness check
		if diff == domain.Hard && removed*10 >= toRemove*7 {
			unique, st, err := g.Solver.Unique(ctx, puz)
			nodes += st.Nodes
			if err != nil {
				return domain.Grid{}, nodes, err
			}
			if !unique {
				puz[r][c] = backup
				continue
			}
		}
		removed++
	}
	return puz, nodes, nil
}
