package solver

import (
	"context"
	"time"

	"svw.info/sudokusolve/internal/domain"
	"svw.info/sudokusolve/internal/ports"
)

// Unique counts solutions up to 2 and reports whether exactly one exists.
// Contradictory clues surface as ErrInvalidBoard.
func (s *BacktrackingSolver) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	start := time.Now()
	grid := b.Values
	m, err := newMasks(&grid)
	if err != nil {
		return false, ports.Stats{Duration: time.Since(start)}, err
	}
	nodes := 0
	count := 0

	var dfs func(pos int) bool
	dfs = func(pos int) bool {
		if ctx.Err() != nil || count >= 2 {
			return true // stop early
		}
		if pos == 81 {
			count++
			return count >= 2
		}
		r, c := pos/9, pos%9
		if grid[r][c] != 0 {
			return dfs(pos + 1)
		}
		gi := domain.SubgridIndex(r, c)
		for v := uint8(1); v <= 9; v++ {
			bit := uint16(1) << (v - 1)
			if m.used(r, c, gi)&bit != 0 {
				continue
			}
			nodes++
			grid[r][c] = v
			m.place(r, c, gi, bit)
			if dfs(pos + 1) {
				grid[r][c] = 0
				m.unplace(r, c, gi, bit)
				return true
			}
			grid[r][c] = 0
			m.unplace(r, c, gi, bit)
		}
		return false
	}
	_ = dfs(0)
	if err := ctx.Err(); err != nil {
		return false, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
	}
	return count == 1, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
