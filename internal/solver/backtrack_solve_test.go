package solver

import (
	"context"
	"errors"
	"testing"
	"time"

	"svw.info/sudokusolve/internal/domain"
	"svw.info/sudokusolve/internal/validator"
)

// mustGrid parses 81 characters of '0'-'9' ('0' = empty) into a grid.
func mustGrid(t *testing.T, s string) [9][9]uint8 {
	t.Helper()
	if len(s) != 81 {
		t.Fatalf("bad grid literal: %d chars", len(s))
	}
	var g [9][9]uint8
	for i := 0; i < 81; i++ {
		if s[i] < '0' || s[i] > '9' {
			t.Fatalf("bad grid char %q at %d", s[i], i)
		}
		g[i/9][i%9] = s[i] - '0'
	}
	return g
}

// A classic, solvable Sudoku (0 = empty) with a unique solution.
var sample = mustGridString(
	"530070000" +
		"600195000" +
		"098000060" +
		"800060003" +
		"400803001" +
		"700020006" +
		"060000280" +
		"000419005" +
		"000080079")

var sampleSolution = mustGridString(
	"534678912" +
		"672195348" +
		"198342567" +
		"859761423" +
		"426853791" +
		"713924856" +
		"961537284" +
		"287419635" +
		"345286179")

// mustGridString is mustGrid without a *testing.T, for package-level vars.
func mustGridString(s string) [9][9]uint8 {
	var g [9][9]uint8
	for i := 0; i < 81; i++ {
		g[i/9][i%9] = s[i] - '0'
	}
	return g
}

func TestBacktrackingSolveUnder1s(t *testing.T) {
	in := &domain.Board{Values: sample}
	s := NewBacktrackingSolver()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	out, st, err := s.Solve(ctx, in)
	if err != nil {
		t.Fatalf("Solve failed: %v (nodes=%d dur=%v)", err, st.Nodes, st.Duration)
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if out.Values[r][c] == 0 {
				t.Fatalf("unsolved cell at r=%d c=%d", r, c)
			}
		}
	}
	// cross-check with the independent validator
	ok, conf, err := validator.New().Validate(ctx, out)
	if err != nil || !ok {
		t.Fatalf("invalid solution: err=%v conflicts=%v", err, conf)
	}
	if st.Duration > time.Second {
		t.Fatalf("took too long: %v (>1s)", st.Duration)
	}
	t.Logf("Solved in %v, nodes=%d", st.Duration, st.Nodes)
}

func TestSolveFindsKnownSolution(t *testing.T) {
	s := NewBacktrackingSolver()
	out, _, err := s.Solve(context.Background(), &domain.Board{Values: sample})
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if out.Values != sampleSolution {
		t.Fatalf("got wrong solution:\n%v\nwant:\n%v", out.Values, sampleSolution)
	}
}

func TestSolvePreservesClues(t *testing.T) {
	s := NewBacktrackingSolver()
	in := &domain.Board{Values: sample}
	out, _, err := s.Solve(context.Background(), in)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := sample[r][c]; v != 0 && out.Values[r][c] != v {
				t.Fatalf("clue overwritten at r=%d c=%d: had %d, got %d", r, c, v, out.Values[r][c])
			}
		}
	}
	if in.Values != sample {
		t.Fatal("input board was mutated")
	}
}

func TestSolve17Clue(t *testing.T) {
	puzzle := mustGrid(t,
		"000000010"+
			"400000000"+
			"020000000"+
			"000050407"+
			"008000300"+
			"001090000"+
			"300400200"+
			"050100000"+
			"000806000")
	want := mustGrid(t,
		"693784512"+
			"487512936"+
			"125963874"+
			"932651487"+
			"568247391"+
			"741398625"+
			"319475268"+
			"856129743"+
			"274836159")
	s := NewBacktrackingSolver()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	out, st, err := s.Solve(ctx, &domain.Board{Values: puzzle})
	if err != nil {
		t.Fatalf("Solve failed: %v (nodes=%d)", err, st.Nodes)
	}
	if out.Values != want {
		t.Fatalf("wrong completion of 17-clue puzzle")
	}
	t.Logf("17-clue solved in %v, nodes=%d", st.Duration, st.Nodes)
}

func TestSolveEmptyBoard(t *testing.T) {
	s := NewBacktrackingSolver()
	out, _, err := s.Solve(context.Background(), &domain.Board{})
	if err != nil {
		t.Fatalf("Solve failed on empty board: %v", err)
	}
	ok, err := validator.New().Solved(context.Background(), out)
	if err != nil || !ok {
		t.Fatalf("empty-board completion not valid: ok=%v err=%v", ok, err)
	}
	// row-major order, ascending digits: the first row fills trivially
	want := [9]uint8{1, 2, 3, 4, 5, 6, 7, 8, 9}
	if out.Values[0] != want {
		t.Fatalf("first row = %v, want %v", out.Values[0], want)
	}
}

func TestSolveRejectsContradictoryClues(t *testing.T) {
	g := mustGrid(t,
		"550000000"+
			"000000000"+
			"000000000"+
			"000000000"+
			"000000000"+
			"000000000"+
			"000000000"+
			"000000000"+
			"000000000")
	s := NewBacktrackingSolver()
	_, st, err := s.Solve(context.Background(), &domain.Board{Values: g})
	if !errors.Is(err, ErrInvalidBoard) {
		t.Fatalf("err = %v, want ErrInvalidBoard", err)
	}
	if st.Nodes != 0 {
		t.Fatalf("search ran before rejecting bad clues: nodes=%d", st.Nodes)
	}
}

func TestSolveUnsolvableLeavesBoardIntact(t *testing.T) {
	// (0,8) is empty; its row holds 1-8 and its column holds 9. No clue
	// conflicts with another, yet no digit fits.
	g := mustGrid(t,
		"123456780"+
			"000000009"+
			"000000000"+
			"000000000"+
			"000000000"+
			"000000000"+
			"000000000"+
			"000000000"+
			"000000000")
	in := &domain.Board{Values: g}
	s := NewBacktrackingSolver()
	out, _, err := s.Solve(context.Background(), in)
	if !errors.Is(err, ErrUnsolvable) {
		t.Fatalf("err = %v, want ErrUnsolvable", err)
	}
	if out != nil {
		t.Fatal("got a board from a failed solve")
	}
	if in.Values != g {
		t.Fatal("failed solve mutated the input board")
	}
}

func TestSolveCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := NewBacktrackingSolver()
	_, _, err := s.Solve(ctx, &domain.Board{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
