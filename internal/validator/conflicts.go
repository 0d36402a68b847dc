package validator

import (
	"context"

	"svw.info/sudoku-engine/internal/domain"
)

// Conflicts reports every filled cell that violates row/column/box uniqueness,
// in row-major order. Each filled cell is cleared and retested, so both
// members of a duplicate pair fail symmetrically and both positions are
// reported, never just one.
func Conflicts(g domain.Grid) []domain.CellCoord {
	conf := make([]domain.CellCoord, 0, 8)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := g[r][c]
			if v == 0 {
				continue
			}
			g[r][c] = 0
			if !IsValidMove(&g, r, c, v) {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			g[r][c] = v
		}
	}
	return conf
}

// RelatedCells returns the peers of (r,c): the 8 other cells of its row, the
// 8 of its column, and the 4 remaining cells of its box. The box/line
// overlaps are deduplicated, so the result always has exactly 20 entries,
// none of them (r,c) itself.
func RelatedCells(r, c int) []domain.CellCoord {
	out := make([]domain.CellCoord, 0, 20)
	var seen [9][9]bool
	add := func(rr, cc int) {
		if rr == r && cc == c {
			return
		}
		if seen[rr][cc] {
			return
		}
		seen[rr][cc] = true
		out = append(out, domain.CellCoord{Row: rr, Col: cc})
	}
	for i := 0; i < 9; i++ {
		add(r, i)
		add(i, c)
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			add(br+dr, bc+dc)
		}
	}
	return out
}

// Rules adapts the package predicates to the ports.Validator interface used
// by the service facade and the HTTP adapter.
type Rules struct{}

func New() *Rules { return &Rules{} }

func (v *Rules) Conflicts(ctx context.Context, g domain.Grid) ([]domain.CellCoord, error) {
	return Conflicts(g), nil
}

func (v *Rules) IsComplete(ctx context.Context, g domain.Grid) (bool, error) {
	return IsComplete(&g), nil
}
