// Package words formats AGC core images as octal 15-bit words, in the style
// of od. Core images store one word per big-endian byte pair with the parity
// bit in the lowest bit; the parity bit is not shown.
package words

import (
	"bufio"
	"fmt"
	"io"
)

// DefaultColumns is the number of words per output row.
const DefaultColumns = 8

// Dump reads byte pairs from r and writes their 15-bit words to w as
// five-digit octal, columns words per row, with a trailing newline if the
// last row is partial. An odd trailing byte is treated as a high byte with a
// zero low byte.
func Dump(w io.Writer, r io.Reader, columns int) error {
	if columns <= 0 {
		columns = DefaultColumns
	}

	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)
	col := 0
	for {
		hi, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		var lo byte
		lo, err = br.ReadByte()
		if err == io.EOF {
			lo = 0
		} else if err != nil {
			return err
		}

		word := uint16(hi)<<7 | uint16(lo)>>1
		col++
		sep := " "
		if col == columns {
			col = 0
			sep = "\n"
		}
		if _, err := fmt.Fprintf(bw, "%05o%s", word, sep); err != nil {
			return err
		}
	}
	if col > 0 {
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
