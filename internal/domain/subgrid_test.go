package domain

import "testing"

func TestSubgridIndexKnownCells(t *testing.T) {
	cases := []struct{ r, c, want int }{
		{0, 0, 0},
		{2, 2, 0},
		{0, 3, 1},
		{3, 0, 3},
		{4, 4, 4},
		{8, 8, 8},
	}
	for _, tc := range cases {
		if got := SubgridIndex(tc.r, tc.c); got != tc.want {
			t.Errorf("SubgridIndex(%d,%d) = %d, want %d", tc.r, tc.c, got, tc.want)
		}
	}
}

func TestSubgridIndexPartition(t *testing.T) {
	var sizes [9]int
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			g := SubgridIndex(r, c)
			if g < 0 || g > 8 {
				t.Fatalf("SubgridIndex(%d,%d) = %d out of range", r, c, g)
			}
			if want := (r/3)*3 + c/3; g != want {
				t.Fatalf("SubgridIndex(%d,%d) = %d, formula gives %d", r, c, g, want)
			}
			sizes[g]++
		}
	}
	for g, n := range sizes {
		if n != 9 {
			t.Errorf("subgrid %d has %d cells, want 9", g, n)
		}
	}
}
