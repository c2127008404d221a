package hint

import (
	"context"
	"fmt"
	"math/bits"

	"svw.info/sudokusolve/internal/domain"
)

// Singles implements a minimal Hinter that suggests naked singles.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

// Hint returns the first empty cell whose candidate set is a single digit.
func (h *Singles) Hint(ctx context.Context, b *domain.Board, max domain.StrategyTier) (domain.Hint, bool, error) {
	if max < domain.StrategySingles {
		return domain.Hint{}, false, nil
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] != 0 {
				continue
			}
			cand := candidateMask(b, r, c)
			if bits.OnesCount16(cand) != 1 {
				continue
			}
			v := uint8(bits.TrailingZeros16(cand) + 1)
			return domain.Hint{
				Message:  fmt.Sprintf("Single: only %d fits here", v),
				Cells:    []domain.CellCoord{{Row: r, Col: c}},
				Value:    v,
				Strategy: domain.StrategySingles,
			}, true, nil
		}
	}
	return domain.Hint{}, false, nil
}

func candidateMask(b *domain.Board, r, c int) uint16 {
	var used uint16
	for i := 0; i < 9; i++ {
		if v := b.Values[r][i]; v != 0 {
			used |= uint16(1) << (v - 1)
		}
		if v := b.Values[i][c]; v != 0 {
			used |= uint16(1) << (v - 1)
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if v := b.Values[br+dr][bc+dc]; v != 0 {
				used |= uint16(1) << (v - 1)
			}
		}
	}
	return ^used & 0x1ff
}
