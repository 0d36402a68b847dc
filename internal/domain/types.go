package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidGrid marks grids whose cells fall outside 0..9.
var ErrInvalidGrid = errors.New("invalid grid")

// Grid is a 9×9 board of digits; 0 marks an empty cell. The array type gives
// value semantics, so plain assignment already yields an independent deep
// copy and no two puzzles ever alias the same cells.
type Grid [9][9]uint8

// Clone returns an independent copy. Assignment would do the same; the method
// exists so call sites state their intent.
func (g Grid) Clone() Grid { return g }

// CountFilled returns the number of nonzero cells.
func (g *Grid) CountFilled() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

// Check verifies the cell-value precondition for externally supplied grids.
func (g *Grid) Check() error {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] > 9 {
				return fmt.Errorf("%w: cell (%d,%d) holds %d", ErrInvalidGrid, r, c, g[r][c])
			}
		}
	}
	return nil
}

// ParseGrid reads an 81-character row-major grid string. '0' and '.' both
// mean empty; whitespace is ignored.
func ParseGrid(s string) (Grid, error) {
	var g Grid
	i := 0
	for _, ch := range s {
		switch {
		case ch == ' ' || ch == '\n' || ch == '\t' || ch == '\r':
			continue
		case ch == '.' || ch == '0':
			// empty cell
		case ch >= '1' && ch <= '9':
			if i < 81 {
				g[i/9][i%9] = uint8(ch - '0')
			}
		default:
			return Grid{}, fmt.Errorf("%w: unexpected character %q", ErrInvalidGrid, ch)
		}
		i++
	}
	if i != 81 {
		return Grid{}, fmt.Errorf("%w: got %d cells, want 81", ErrInvalidGrid, i)
	}
	return g, nil
}

// String renders the grid as an 81-character row-major string with '.' for
// empty cells, the same format ParseGrid accepts.
func (g Grid) String() string {
	var b strings.Builder
	b.Grow(81)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				b.WriteByte('.')
			} else {
				b.WriteByte('0' + g[r][c])
			}
		}
	}
	return b.String()
}

// CellCoord identifies a cell on the grid.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Hint is a safe single move: place Number at (Row,Col).
type Hint struct {
	Row    int   `json:"row"`
	Col    int   `json:"col"`
	Number uint8 `json:"number"`
}

// Puzzle pairs a masked grid with the full solution it was carved from.
// Invariant: every nonzero cell of Puzzle equals the Solution cell, and
// Solution is treated as immutable once returned from generation.
type Puzzle struct {
	ID          string     `json:"id,omitempty"`
	Seed        int64      `json:"seed,omitempty"`
	Difficulty  Difficulty `json:"difficulty"`
	Puzzle      Grid       `json:"puzzle"`
	Solution    Grid       `json:"solution"`
	FilledCells int        `json:"filledCells"`
	CreatedAt   int64      `json:"createdAt,omitempty"`
	// Optional user metadata
	Name string `json:"name,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID         string     `json:"id"`
	Name       string     `json:"name,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	CreatedAt  int64      `json:"createdAt"`
}
