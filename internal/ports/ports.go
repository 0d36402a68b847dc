package ports

import (
	"context"
	"time"

	"svw.info/sudoku-engine/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver completes a grid and can test solution uniqueness. Grids are passed
// by value; implementations never mutate the caller's copy.
type Solver interface {
	Solve(ctx context.Context, g domain.Grid) (domain.Grid, Stats, error)
	Unique(ctx context.Context, g domain.Grid) (bool, Stats, error)
}

// Generator creates new puzzles at a target difficulty from a caller seed.
type Generator interface {
	Generate(ctx context.Context, seed int64, difficulty domain.Difficulty) (*domain.Puzzle, Stats, error)
}

// Validator performs rule checks (row/col/box uniqueness) over a grid.
type Validator interface {
	Conflicts(ctx context.Context, g domain.Grid) ([]domain.CellCoord, error)
	IsComplete(ctx context.Context, g domain.Grid) (bool, error)
}

// Hinter proposes one safe move given the current grid and its solution.
type Hinter interface {
	Hint(ctx context.Context, current, solution domain.Grid) (domain.Hint, bool, error)
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
