package domain

// subgridIndex maps each cell to its 3x3 block in row-major block order.
// Equivalent to (r/3)*3 + c/3; there are only 81 entries, so a static
// table beats recomputing the divisions in the solver's hot loop.
var subgridIndex = [9][9]int{
	{0, 0, 0, 1, 1, 1, 2, 2, 2},
	{0, 0, 0, 1, 1, 1, 2, 2, 2},
	{0, 0, 0, 1, 1, 1, 2, 2, 2},
	{3, 3, 3, 4, 4, 4, 5, 5, 5},
	{3, 3, 3, 4, 4, 4, 5, 5, 5},
	{3, 3, 3, 4, 4, 4, 5, 5, 5},
	{6, 6, 6, 7, 7, 7, 8, 8, 8},
	{6, 6, 6, 7, 7, 7, 8, 8, 8},
	{6, 6, 6, 7, 7, 7, 8, 8, 8},
}

// SubgridIndex returns the index in [0,8] of the 3x3 block containing
// cell (r, c). Block 0 covers rows 0-2 / cols 0-2, block 8 rows 6-8 /
// cols 6-8.
func SubgridIndex(r, c int) int {
	return subgridIndex[r][c]
}
