package generator

import (
	"context"
	"math/rand"
	"time"

	"svw.info/sudokusolve/internal/domain"
	"svw.info/sudokusolve/internal/ports"
)

// UniqueGenerator creates puzzles with a unique solution using a provided Solver.
type UniqueGenerator struct {
	Solver ports.Solver
}

// NewUniqueGenerator wires a generator that uses the given solver for uniqueness checks.
func NewUniqueGenerator(s ports.Solver) *UniqueGenerator {
	return &UniqueGenerator{Solver: s}
}

func targetGivens(d domain.Difficulty) int {
	switch d {
	case domain.Easy:
		return 40
	case domain.Medium:
		return 34
	case domain.Hard:
		return 28
	default:
		return 24 // Expert
	}
}

// Generate creates a puzzle with a unique solution from seed and target
// difficulty: fill a full random solution, then carve cells out as long
// as the remainder stays uniquely solvable, under a time budget.
func (g *UniqueGenerator) Generate(ctx context.Context, seed int64, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	var full [9][9]uint8
	if !fillRandom(ctx, rng, &full) {
		return nil, ports.Stats{}, context.Canceled
	}

	puz := full
	fixed := [9][9]bool{}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			fixed[r][c] = true
		}
	}
	positions := rng.Perm(81)

	target := targetGivens(diff)
	deadline := start.Add(900 * time.Millisecond)
	nodes := 0
	givens := 81

	for _, pos := range positions {
		if time.Now().After(deadline) || givens <= target {
			break
		}
		r, c := pos/9, pos%9
		old := puz[r][c]
		puz[r][c] = 0
		fixed[r][c] = false
		unique, st, _ := g.Solver.Unique(ctx, &domain.Board{Values: puz})
		nodes += st.Nodes
		if unique {
			givens--
		} else {
			puz[r][c] = old
			fixed[r][c] = true
		}
	}

	p := &domain.Puzzle{
		Seed:       seed,
		Difficulty: diff,
		Board:      domain.Board{Values: puz, Fixed: fixed},
		CreatedAt:  time.Now().UnixNano(),
	}
	return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// fillRandom completes an empty grid into a full valid solution, trying
// digits in a freshly shuffled order at every cell.
func fillRandom(ctx context.Context, rng *rand.Rand, grid *[9][9]uint8) bool {
	var nums [9]uint8
	for i := range nums {
		nums[i] = uint8(i + 1)
	}
	var dfs func(pos int) bool
	dfs = func(pos int) bool {
		if ctx.Err() != nil {
			return false
		}
		if pos == 81 {
			return true
		}
		r, c := pos/9, pos%9
		rng.Shuffle(9, func(i, j int) { nums[i], nums[j] = nums[j], nums[i] })
		for _, v := range nums {
			if candidateMask(grid, r, c)&(uint16(1)<<(v-1)) != 0 {
				grid[r][c] = v
				if dfs(pos + 1) {
					return true
				}
				grid[r][c] = 0
			}
		}
		return false
	}
	return dfs(0)
}

// candidateMask returns a bitmask of the digits placeable at (r, c):
// bit d-1 set iff digit d appears in neither the row, the column, nor
// the subgrid of the cell.
func candidateMask(g *[9][9]uint8, r, c int) uint16 {
	var used uint16
	for i := 0; i < 9; i++ {
		if v := g[r][i]; v != 0 {
			used |= uint16(1) << (v - 1)
		}
		if v := g[i][c]; v != 0 {
			used |= uint16(1) << (v - 1)
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if v := g[br+dr][bc+dc]; v != 0 {
				used |= uint16(1) << (v - 1)
			}
		}
	}
	return ^used & 0x1ff
}
