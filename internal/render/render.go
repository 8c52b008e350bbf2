// Package render converts the machine display to text and image output.
package render

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Display is a monochrome pixel grid.
type Display interface {
	Width() int
	Height() int
	Pixel(x, y int) bool
}

const (
	asciiOn  = '#'
	asciiOff = '.'
)

// half block characters indexed by top | bottom<<1
var halfBlocks = [4]rune{' ', '▀', '▄', '█'}

// IsTerminal returns whether the file is connected to a terminal that can
// show block characters.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Text writes the display as text. With blocks set, two pixel rows are
// combined into one line of unicode half block characters, otherwise every
// pixel row is written as one line of ASCII characters.
func Text(w io.Writer, d Display, blocks bool) error {
	buf := bufio.NewWriter(w)
	if blocks {
		writeBlocks(buf, d)
	} else {
		writeASCII(buf, d)
	}
	if err := buf.Flush(); err != nil {
		return fmt.Errorf("writing display: %w", err)
	}
	return nil
}

func writeASCII(buf *bufio.Writer, d Display) {
	for y := 0; y < d.Height(); y++ {
		for x := 0; x < d.Width(); x++ {
			if d.Pixel(x, y) {
				_ = buf.WriteByte(asciiOn)
			} else {
				_ = buf.WriteByte(asciiOff)
			}
		}
		_ = buf.WriteByte('\n')
	}
}

func writeBlocks(buf *bufio.Writer, d Display) {
	for y := 0; y < d.Height(); y += 2 {
		for x := 0; x < d.Width(); x++ {
			var i int
			if d.Pixel(x, y) {
				i |= 1
			}
			if d.Pixel(x, y+1) {
				i |= 2
			}
			_, _ = buf.WriteRune(halfBlocks[i])
		}
		_ = buf.WriteByte('\n')
	}
}
