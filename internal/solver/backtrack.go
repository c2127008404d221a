package solver

import (
	"errors"
	"fmt"

	"svw.info/sudokusolve/internal/domain"
)

// BacktrackingSolver is a depth-first solver with O(1) constraint checks.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

var (
	// ErrInvalidBoard means the initial clues already break row, column,
	// or subgrid uniqueness; the search never starts.
	ErrInvalidBoard = errors.New("invalid initial board")
	// ErrUnsolvable means a well-formed board has no completion.
	ErrUnsolvable = errors.New("no solution")
)

// masks tracks which digits are placed in each row, column, and subgrid.
// Bit d-1 of rows[r] is set iff digit d appears somewhere in row r, and
// likewise for cols and boxes. Invariant: exactly the bits of the filled
// cells are set, at every point of the search.
type masks struct {
	rows  [9]uint16
	cols  [9]uint16
	boxes [9]uint16
}

// newMasks scans the grid once, recording every clue. The first duplicate
// found short-circuits with ErrInvalidBoard.
func newMasks(g *[9][9]uint8) (masks, error) {
	var m masks
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := g[r][c]
			if v == 0 {
				continue
			}
			bit := uint16(1) << (v - 1)
			gi := domain.SubgridIndex(r, c)
			if (m.rows[r]|m.cols[c]|m.boxes[gi])&bit != 0 {
				return m, fmt.Errorf("%w: digit %d conflicts at row %d col %d", ErrInvalidBoard, v, r, c)
			}
			m.rows[r] |= bit
			m.cols[c] |= bit
			m.boxes[gi] |= bit
		}
	}
	return m, nil
}

func (m *masks) place(r, c, gi int, bit uint16) {
	m.rows[r] |= bit
	m.cols[c] |= bit
	m.boxes[gi] |= bit
}

func (m *masks) unplace(r, c, gi int, bit uint16) {
	m.rows[r] &^= bit
	m.cols[c] &^= bit
	m.boxes[gi] &^= bit
}

// used reports the union of digits blocked for cell (r, c).
func (m *masks) used(r, c, gi int) uint16 {
	return m.rows[r] | m.cols[c] | m.boxes[gi]
}
