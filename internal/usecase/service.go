package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/ports"
	"svw.info/sudoku-engine/internal/validator"
)

// Service is the engine's only window for the game controller. It enforces
// the grid precondition at the boundary; the engine packages behind it trust
// their input.
type Service struct {
	Solver    ports.Solver
	Generator ports.Generator
	Validator ports.Validator
	Hinter    ports.Hinter
	Storage   ports.Storage
}

func NewService(s ports.Solver, g ports.Generator, v ports.Validator, h ports.Hinter, st ports.Storage) *Service {
	return &Service{Solver: s, Generator: g, Validator: v, Hinter: h, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Generate(ctx context.Context, seed int64, d domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, seed, d)
}

func (u *Service) Solve(ctx context.Context, g domain.Grid) (domain.Grid, ports.Stats, error) {
	if u.Solver == nil {
		return domain.Grid{}, ports.Stats{}, errNotConfigured
	}
	if err := g.Check(); err != nil {
		return domain.Grid{}, ports.Stats{}, err
	}
	return u.Solver.Solve(ctx, g)
}

func (u *Service) IsComplete(ctx context.Context, g domain.Grid) (bool, error) {
	if u.Validator == nil {
		return false, errNotConfigured
	}
	if err := g.Check(); err != nil {
		return false, err
	}
	return u.Validator.IsComplete(ctx, g)
}

func (u *Service) Conflicts(ctx context.Context, g domain.Grid) ([]domain.CellCoord, error) {
	if u.Validator == nil {
		return nil, errNotConfigured
	}
	if err := g.Check(); err != nil {
		return nil, err
	}
	return u.Validator.Conflicts(ctx, g)
}

func (u *Service) Hint(ctx context.Context, current, solution domain.Grid) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	if err := current.Check(); err != nil {
		return domain.Hint{}, false, err
	}
	if err := solution.Check(); err != nil {
		return domain.Hint{}, false, err
	}
	return u.Hinter.Hint(ctx, current, solution)
}

// RelatedCells returns the 20 peers sharing a row, column, or box with the
// given cell.
func (u *Service) RelatedCells(r, c int) ([]domain.CellCoord, error) {
	if r < 0 || r > 8 || c < 0 || c > 8 {
		return nil, fmt.Errorf("%w: position (%d,%d)", domain.ErrInvalidGrid, r, c)
	}
	return validator.RelatedCells(r, c), nil
}

// Persistence (controller-side)

func (u *Service) Save(ctx context.Context, p *domain.Puzzle) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().UnixNano()
	}
	return u.Storage.Save(ctx, p)
}

func (u *Service) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}

func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
