package validator

import (
	"context"
	"testing"

	"svw.info/sudokusolve/internal/domain"
)

var solvedGrid = func() [9][9]uint8 {
	const s = "534678912" +
		"672195348" +
		"198342567" +
		"859761423" +
		"426853791" +
		"713924856" +
		"961537284" +
		"287419635" +
		"345286179"
	var g [9][9]uint8
	for i := 0; i < 81; i++ {
		g[i/9][i%9] = s[i] - '0'
	}
	return g
}()

func TestValidateSolvedBoard(t *testing.T) {
	v := New()
	b := &domain.Board{Values: solvedGrid}
	ok, conf, err := v.Validate(context.Background(), b)
	if err != nil || !ok || len(conf) != 0 {
		t.Fatalf("Validate = %v %v %v, want clean pass", ok, conf, err)
	}
	solved, err := v.Solved(context.Background(), b)
	if err != nil || !solved {
		t.Fatalf("Solved = %v %v, want true", solved, err)
	}
}

func TestValidateReportsRowConflict(t *testing.T) {
	var g [9][9]uint8
	g[0][0], g[0][5] = 7, 7
	ok, conf, err := New().Validate(context.Background(), &domain.Board{Values: g})
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if ok || len(conf) == 0 {
		t.Fatalf("duplicate in row not reported: ok=%v conf=%v", ok, conf)
	}
}

func TestValidateReportsSubgridConflict(t *testing.T) {
	var g [9][9]uint8
	g[0][0], g[2][2] = 4, 4 // same subgrid, different row and column
	ok, conf, _ := New().Validate(context.Background(), &domain.Board{Values: g})
	if ok || len(conf) == 0 {
		t.Fatalf("duplicate in subgrid not reported: ok=%v conf=%v", ok, conf)
	}
}

func TestValidatePartialBoardPasses(t *testing.T) {
	var g [9][9]uint8
	g[0][0], g[1][1], g[8][8] = 1, 2, 3
	v := New()
	ok, conf, _ := v.Validate(context.Background(), &domain.Board{Values: g})
	if !ok || len(conf) != 0 {
		t.Fatalf("conflict-free partial board failed: ok=%v conf=%v", ok, conf)
	}
	solved, _ := v.Solved(context.Background(), &domain.Board{Values: g})
	if solved {
		t.Fatal("partial board reported as solved")
	}
}

func TestSolvedRejectsIncompleteBoard(t *testing.T) {
	g := solvedGrid
	g[4][4] = 0
	solved, err := New().Solved(context.Background(), &domain.Board{Values: g})
	if err != nil {
		t.Fatalf("Solved failed: %v", err)
	}
	if solved {
		t.Fatal("board with an empty cell reported as solved")
	}
}
