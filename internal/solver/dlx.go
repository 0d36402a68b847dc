package solver

import (
	"context"
	"errors"
	"time"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/ports"
)

// DLXSolver solves via Algorithm X over the exact-cover formulation of
// sudoku: 729 candidate rows (r,c,v) against 324 constraint columns.
// Columns: 0..80    cell (r,c) is filled
//          81..161  row r contains v
//          162..242 column c contains v
//          243..323 box b contains v, b = (r/3)*3 + c/3
// It backs the controller's deterministic solve path; the engine's
// uniqueness verifier stays on the plain backtracker.
type DLXSolver struct{}

func NewDLXSolver() *DLXSolver { return &DLXSolver{} }

const (
	dlxCols = 324
	dlxRows = 729
)

type dlxNode struct {
	left, right, up, down *dlxNode
	col                   *dlxColumn
	cand                  int // 0..728 encodes (r,c,v)
}

type dlxColumn struct {
	dlxNode
	size   int
	active bool
}

type dlxMatrix struct {
	cols    [dlxCols]*dlxColumn
	rows    [dlxRows]*dlxNode
	chosen  [dlxRows]*dlxNode
	depth   int
	nodes   int
	covered int // columns currently covered
}

func candIndex(r, c, v int) int { return (r*9+c)*9 + (v - 1) }

func candCells(idx int) (r, c, v int) {
	v = idx%9 + 1
	cell := idx / 9
	return cell / 9, cell % 9, v
}

func candColumns(r, c, v int) [4]int {
	box := (r/3)*3 + c/3
	return [4]int{
		r*9 + c,
		81 + r*9 + (v - 1),
		162 + c*9 + (v - 1),
		243 + box*9 + (v - 1),
	}
}

func newMatrix() *dlxMatrix {
	m := &dlxMatrix{}
	for i := range m.cols {
		col := &dlxColumn{active: true}
		col.up = &col.dlxNode
		col.down = &col.dlxNode
		m.cols[i] = col
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			for v := 1; v <= 9; v++ {
				idx := candIndex(r, c, v)
				var first, prev *dlxNode
				for _, ci := range candColumns(r, c, v) {
					col := m.cols[ci]
					n := &dlxNode{col: col, cand: idx}
					n.down = &col.dlxNode
					n.up = col.dlxNode.up
					col.dlxNode.up.down = n
					col.dlxNode.up = n
					col.size++
					if first == nil {
						first = n
						n.left, n.right = n, n
					} else {
						n.left = prev
						n.right = prev.right
						prev.right.left = n
						prev.right = n
					}
					prev = n
				}
				m.rows[idx] = first
			}
		}
	}
	return m
}

func (m *dlxMatrix) cover(col *dlxColumn) {
	if col.active {
		col.active = false
		m.covered++
	}
	for i := col.down; i != &col.dlxNode; i = i.down {
		for j := i.right; j != i; j = j.right {
			j.down.up = j.up
			j.up.down = j.down
			j.col.size--
		}
	}
}

func (m *dlxMatrix) uncover(col *dlxColumn) {
	for i := col.up; i != &col.dlxNode; i = i.up {
		for j := i.left; j != i; j = j.left {
			j.col.size++
			j.down.up = j
			j.up.down = j
		}
	}
	if !col.active {
		col.active = true
		m.covered--
	}
}

// smallest active column; classic S-heuristic
func (m *dlxMatrix) pick() *dlxColumn {
	var best *dlxColumn
	for _, col := range m.cols {
		if !col.active {
			continue
		}
		if best == nil || col.size < best.size {
			best = col
			if best.size == 0 {
				break
			}
		}
	}
	return best
}

// search runs Algorithm X, stopping once want solutions have been found (or
// the context is canceled). found is shared across the recursion.
func (m *dlxMatrix) search(ctx context.Context, k, want int, found *int) bool {
	if ctx.Err() != nil {
		return true
	}
	if m.covered == dlxCols {
		m.depth = k
		*found++
		return *found >= want
	}
	col := m.pick()
	if col == nil || col.size == 0 {
		return false
	}
	m.cover(col)
	for row := col.down; row != &col.dlxNode; row = row.down {
		m.nodes++
		m.chosen[k] = row
		for j := row.right; j != row; j = j.right {
			if j.col.active {
				m.cover(j.col)
			}
		}
		stop := m.search(ctx, k+1, want, found)
		for j := row.left; j != row; j = j.left {
			m.uncover(j.col)
		}
		if stop {
			m.uncover(col)
			return true
		}
	}
	m.uncover(col)
	return false
}

// give pre-selects the candidate row of a given, covering its four columns.
func (m *dlxMatrix) give(r, c, v int) error {
	head := m.rows[candIndex(r, c, v)]
	if head == nil {
		return errors.New("bad candidate mapping")
	}
	j := head
	for {
		m.cover(j.col)
		if j.right == head {
			return nil
		}
		j = j.right
	}
}

func (m *dlxMatrix) loadGivens(g *domain.Grid) error {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := int(g[r][c]); v != 0 {
				if v > 9 {
					return domain.ErrInvalidGrid
				}
				if err := m.give(r, c, v); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (s *DLXSolver) Solve(ctx context.Context, g domain.Grid) (domain.Grid, ports.Stats, error) {
	start := time.Now()
	m := newMatrix()
	if err := m.loadGivens(&g); err != nil {
		return domain.Grid{}, ports.Stats{}, err
	}
	found := 0
	_ = m.search(ctx, 0, 1, &found)
	st := ports.Stats{Nodes: m.nodes, Duration: time.Since(start)}
	if found < 1 {
		return domain.Grid{}, st, errUnsolvable
	}
	out := g
	for i := 0; i < m.depth; i++ {
		r, c, v := candCells(m.chosen[i].cand)
		out[r][c] = uint8(v)
	}
	return out, st, nil
}

func (s *DLXSolver) Unique(ctx context.Context, g domain.Grid) (bool, ports.Stats, error) {
	start := time.Now()
	m := newMatrix()
	if err := m.loadGivens(&g); err != nil {
		return false, ports.Stats{}, err
	}
	found := 0
	_ = m.search(ctx, 0, 2, &found)
	return found == 1, ports.Stats{Nodes: m.nodes, Duration: time.Since(start)}, nil
}
