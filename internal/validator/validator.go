// Package validator holds the rule predicates everything else is built on:
// placement legality, candidate enumeration, the row-major empty scan, and
// whole-grid validity.
package validator

import "svw.info/sudoku-engine/internal/domain"

// IsValidMove reports whether v can legally occupy (r,c): it must not appear
// elsewhere in row r, column c, or the 3×3 box of (r,c). The cell's own
// current value is not consulted, so callers re-validating an occupied cell
// must clear it first.
func IsValidMove(g *domain.Grid, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if g[r][i] == v || g[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if g[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}

// Candidates returns the digits 1..9 that IsValidMove allows at (r,c), in
// ascending order.
func Candidates(g *domain.Grid, r, c int) []uint8 {
	out := make([]uint8, 0, 9)
	for v := uint8(1); v <= 9; v++ {
		if IsValidMove(g, r, c, v) {
			out = append(out, v)
		}
	}
	return out
}

// FindEmpty returns the first empty cell in row-major order. The scan order
// is load-bearing: it keeps the backtracking search deterministic in its
// position choice while the value order stays randomizable.
func FindEmpty(g *domain.Grid) (int, int, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// IsValidGrid retests every filled cell against the rest of the grid via the
// clear-then-retest technique: clear the cell, ask IsValidMove for its old
// value, restore. Valid iff no filled cell fails.
func IsValidGrid(g *domain.Grid) bool {
	work := *g
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := work[r][c]
			if v == 0 {
				continue
			}
			work[r][c] = 0
			ok := IsValidMove(&work, r, c, v)
			work[r][c] = v
			if !ok {
				return false
			}
		}
	}
	return true
}

// IsComplete reports whether g has no empty cells and breaks no rule.
func IsComplete(g *domain.Grid) bool {
	if _, _, empty := FindEmpty(g); empty {
		return false
	}
	return IsValidGrid(g)
}
