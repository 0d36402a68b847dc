package generator

import (
	"context"
	"math/rand"
	"time"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/ports"
)

// PuzzleGenerator builds a full solution, then masks cells down to the
// difficulty's filled-cell target. Uniqueness checks during masking go
// through the provided Solver, which must count solutions deterministically.
type PuzzleGenerator struct {
	Solver ports.Solver
}

func NewPuzzleGenerator(s ports.Solver) *PuzzleGenerator {
	return &PuzzleGenerator{Solver: s}
}

// Generate creates a puzzle for the seed and difficulty. The same seed and
// difficulty always produce the same puzzle.
func (g *PuzzleGenerator) Generate(ctx context.Context, seed int64, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	solution, nodes, ok := fullGrid(ctx, rng)
	if !ok {
		return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ctx.Err()
	}

	puz, carveNodes, err := g.carve(ctx, rng, solution, diff)
	if err != nil {
		return nil, ports.Stats{Nodes: nodes + carveNodes, Duration: time.Since(start)}, err
	}

	p := &domain.Puzzle{
		Seed:        seed,
		Difficulty:  diff,
		Puzzle:      puz,
		Solution:    solution,
		FilledCells: puz.CountFilled(),
		CreatedAt:   time.Now().UnixNano(),
	}
	return p, ports.Stats{Nodes: nodes + carveNodes, Duration: time.Since(start)}, nil
}
