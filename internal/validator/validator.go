package validator

import (
	"context"

	"svw.info/sudokusolve/internal/domain"
)

// FastValidator re-derives row/column/subgrid occupancy from scratch on
// every call. It shares no state and no code with the solver, so it can
// serve as an independent oracle for solver output.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// Validate reports whether the filled cells of b are conflict-free and
// lists the coordinates of any duplicated digits. Empty cells are not
// conflicts, so partially filled boards pass as long as no unit repeats
// a digit.
func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	conf := make([]domain.CellCoord, 0, 8)
	var rows, cols, boxes [9]uint16
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			val := b.Values[r][c]
			if val == 0 {
				continue
			}
			bit := uint16(1) << (val - 1)
			gi := domain.SubgridIndex(r, c)
			if (rows[r]|cols[c]|boxes[gi])&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			rows[r] |= bit
			cols[c] |= bit
			boxes[gi] |= bit
		}
	}
	return len(conf) == 0, conf, nil
}

// Solved reports whether b is completely filled and every row, column,
// and subgrid is a permutation of 1..9.
func (v *FastValidator) Solved(ctx context.Context, b *domain.Board) (bool, error) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] == 0 {
				return false, nil
			}
		}
	}
	ok, _, err := v.Validate(ctx, b)
	return ok, err
}
