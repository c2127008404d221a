package solver

import (
	"context"
	"time"

	"svw.info/sudokusolve/internal/domain"
	"svw.info/sudokusolve/internal/ports"
)

// Solve returns a completed copy of b, or an error. The input board is
// never modified: clues are carried over unchanged and a failed search
// leaves no trace. Cells are tried in row-major order, digits ascending,
// so an under-constrained puzzle always yields the same solution.
func (s *BacktrackingSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	grid := b.Values
	m, err := newMasks(&grid)
	if err != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, err
	}
	nodes := 0
	var dfs func(pos int) bool
	dfs = func(pos int) bool {
		if ctx.Err() != nil {
			return false
		}
		if pos == 81 {
			return true
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
				return true
			}
			grid[r][c] = 0
			m.unplace(r, c, gi, bit)
		}
		return false
	}
	if !dfs(0) {
		st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
		if err := ctx.Err(); err != nil {
			return nil, st, err
		}
		return nil, st, ErrUnsolvable
	}
	out := &domain.Board{Values: grid, Fixed: b.Fixed}
	return out, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
