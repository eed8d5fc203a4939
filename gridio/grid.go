package gridio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/klauspost/compress/zstd"

	"github.com/ransoing/AoC24/xyz"
)

// maxLine bounds a single input line.
const maxLine = 8 * 1024 * 1024

// Grid is a rectangular block of runes stored x-major: g[x][y] is the rune in
// column x of line y. It indexes directly with xyz.ValueIn.
type Grid [][]rune

// Parse reads a text grid, one line per row. Trailing blank lines and
// carriage returns are ignored.
// Returns ErrEmptyGrid if nothing remains and ErrNonRectangular if the lines
// differ in length (counted in runes).
// Complexity: O(W×H) time and memory.
func Parse(r io.Reader) (Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var lines []string
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridio: read: %w", err)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}

	w := utf8.RuneCountInString(lines[0])
	if w == 0 {
		return nil, ErrEmptyGrid
	}
	h := len(lines)
	g := make(Grid, w)
	for x := range g {
		g[x] = make([]rune, h)
	}
	for y, line := range lines {
		if n := utf8.RuneCountInString(line); n != w {
			return nil, fmt.Errorf("%w: line %d has %d columns, want %d", ErrNonRectangular, y+1, n, w)
		}
		x := 0
		for _, c := range line {
			g[x][y] = c
			x++
		}
	}

	return g, nil
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (Grid, error) {
	return Parse(strings.NewReader(s))
}

// Load reads the grid stored at path. Files ending in ".zst" are
// decompressed on the fly.
func Load(path string) (Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gridio: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".zst") {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("gridio: %s: %w", path, err)
		}
		defer dec.Close()
		r = dec
	}

	g, err := Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Width returns the number of columns.
func (g Grid) Width() int { return len(g) }

// Height returns the number of lines.
func (g Grid) Height() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Find returns the first cell holding r in reading order (line by line, left
// to right).
func (g Grid) Find(r rune) (xyz.Vec, bool) {
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if g[x][y] == r {
				return xyz.V(x, y), true
			}
		}
	}
	return xyz.Vec{}, false
}

// FindAll returns every cell holding r in reading order.
func (g Grid) FindAll(r rune) []xyz.Vec {
	var out []xyz.Vec
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if g[x][y] == r {
				out = append(out, xyz.V(x, y))
			}
		}
	}
	return out
}

// Points returns every cell in reading order.
func (g Grid) Points() []xyz.Vec {
	out := make([]xyz.Vec, 0, g.Width()*g.Height())
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			out = append(out, xyz.V(x, y))
		}
	}
	return out
}

// Digits converts the grid to numbers, x-major like the grid itself.
// Cells that are not ASCII digits become -1.
func (g Grid) Digits() [][]int {
	out := make([][]int, g.Width())
	for x, col := range g {
		out[x] = make([]int, len(col))
		for y, c := range col {
			if c >= '0' && c <= '9' {
				out[x][y] = int(c - '0')
			} else {
				out[x][y] = -1
			}
		}
	}
	return out
}

// String renders the grid back to text, one line per row, without a trailing
// newline.
func (g Grid) String() string {
	var b strings.Builder
	b.Grow((g.Width() + 1) * g.Height())
	for y := 0; y < g.Height(); y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < g.Width(); x++ {
			b.WriteRune(g[x][y])
		}
	}
	return b.String()
}
