package puzzleio

import (
	"io"

	"svw.info/sudokusolve/internal/domain"
)

// Print renders b as nine lines of nine characters, digits for filled
// cells and '.' for empty ones, followed by a blank line. Diagnostic
// output only; the wire format lives in the verify package.
func Print(w io.Writer, b *domain.Board) error {
	var buf [100]byte
	i := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := b.Values[r][c]; v != 0 {
				buf[i] = '0' + v
			} else {
				buf[i] = '.'
			}
			i++
		}
		buf[i] = '\n'
		i++
	}
	buf[i] = '\n'
	i++
	_, err := w.Write(buf[:i])
	return err
}
