// Command sudoku-solve reads puzzles from files or stdin, solves them,
// and optionally submits the solutions to a remote verification server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"svw.info/sudokusolve/internal/domain"
	"svw.info/sudokusolve/internal/puzzleio"
	"svw.info/sudokusolve/internal/solver"
	"svw.info/sudokusolve/internal/verify"
)

func main() {
	printBoards := flag.Bool("print", false, "print each solved board")
	verifyURL := flag.String("verify-url", "", "verification endpoint; empty skips verification")
	connections := flag.Int("connections", 4, "max concurrent verification requests")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx := context.Background()

	var in io.Reader = os.Stdin
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			logger.Error("open input", "err", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	s := solver.NewBacktrackingSolver()
	rd := puzzleio.NewReader(in)
	var solved []*domain.Board
	total := 0
	for {
		b, err := rd.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			logger.Error("read puzzle", "puzzle", total, "err", err)
			os.Exit(1)
		}
		total++
		out, st, err := s.Solve(ctx, b)
		if err != nil {
			logger.Warn("solve failed", "puzzle", total-1, "nodes", st.Nodes, "err", err)
			continue
		}
		solved = append(solved, out)
		if *printBoards {
			_ = puzzleio.Print(os.Stdout, out)
		}
	}
	fmt.Printf("solved %d out of %d\n", len(solved), total)

	if *verifyURL == "" || len(solved) == 0 {
		return
	}
	client := verify.NewClient(*verifyURL, *connections, logger)
	report := client.VerifyAll(ctx, solved, *connections, nil)
	fmt.Printf("verified %d out of %d\n", report.Verified, report.Total)
}
