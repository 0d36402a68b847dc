// Package hint proposes one safe next move without revealing the whole
// solution.
package hint

import (
	"context"
	"math/rand"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/validator"
)

// Strategist prefers naked singles — pedagogically useful, and their forced
// value necessarily equals the solution cell on any grid reachable by legal
// play — and falls back to revealing a random empty cell from the known
// solution, so a hint always exists while cells remain.
type Strategist struct {
	rng *rand.Rand
}

func NewStrategist(rng *rand.Rand) *Strategist { return &Strategist{rng: rng} }

// Hint returns ok=false only when current has no empty cells.
func (h *Strategist) Hint(ctx context.Context, current, solution domain.Grid) (domain.Hint, bool, error) {
	empties := make([]domain.CellCoord, 0, 81)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if current[r][c] != 0 {
				continue
			}
			cands := validator.Candidates(&current, r, c)
			if len(cands) == 1 {
				return domain.Hint{Row: r, Col: c, Number: cands[0]}, true, nil
			}
			empties = append(empties, domain.CellCoord{Row: r, Col: c})
		}
	}
	if len(empties) == 0 {
		return domain.Hint{}, false, nil
	}
	pick := empties[h.rng.Intn(len(empties))]
	return domain.Hint{Row: pick.Row, Col: pick.Col, Number: solution[pick.Row][pick.Col]}, true, nil
}
