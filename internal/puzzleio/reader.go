package puzzleio

import (
	"bufio"
	"errors"
	"io"

	"svw.info/sudokusolve/internal/domain"
)

// Reader extracts 9x9 puzzles from a byte stream. The characters '1'-'9'
// are clues and '.' marks a blank; 81 such cells make one puzzle. Every
// other byte (whitespace, separators, commentary) is skipped.
type Reader struct {
	br *bufio.Reader
}

func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r)}
}

// ErrTruncated means the stream ended after the first cell of a puzzle
// but before its 81st.
var ErrTruncated = errors.New("puzzle stream truncated")

// Next returns the next puzzle from the stream. Clue cells are marked
// Fixed on the returned board. A stream exhausted before any cell of a
// new puzzle yields io.EOF.
func (r *Reader) Next() (*domain.Board, error) {
	b := &domain.Board{}
	n := 0
	for n < 81 {
		ch, err := r.br.ReadByte()
		if err == io.EOF {
			if n == 0 {
				return nil, io.EOF
			}
			return nil, ErrTruncated
		}
		if err != nil {
			return nil, err
		}
		switch {
		case ch >= '1' && ch <= '9':
			b.Values[n/9][n%9] = ch - '0'
			b.Fixed[n/9][n%9] = true
			n++
		case ch == '.':
			n++
		}
	}
	return b, nil
}
