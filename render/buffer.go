package render

import (
	"github.com/gdamore/tcell/v2"
)

// Cell is one terminal cell before flushing
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
}

// Buffer is an off-screen cell grid flushed to tcell once per frame
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a buffer with the specified dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocating only if capacity is insufficient
func (b *Buffer) Resize(width, height int) {
	size := max(width*height, 0)
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear(RGBBlack)
}

func (b *Buffer) Size() (int, int) { return b.width, b.height }

// Clear resets all cells to blanks on bg using exponential copy
func (b *Buffer) Clear(bg RGB) {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Fg: RGBWhite, Bg: bg}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at (x, y); out of bounds yields a zero cell
func (b *Buffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// Set overwrites one cell
func (b *Buffer) Set(x, y int, r rune, fg, bg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Fg: fg, Bg: bg}
}

// SetRune replaces the glyph and foreground, keeping the background
func (b *Buffer) SetRune(x, y int, r rune, fg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	c := &b.cells[y*b.width+x]
	c.Rune = r
	c.Fg = fg
}

// Fill paints blanks on bg over the inclusive rectangle, clipped
func (b *Buffer) Fill(x0, y0, x1, y1 int, bg RGB) {
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, b.width-1), min(y1, b.height-1)
	for y := y0; y <= y1; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x := x0; x <= x1; x++ {
			row[x] = Cell{Rune: ' ', Fg: RGBWhite, Bg: bg}
		}
	}
}

// Text writes s left to right keeping existing backgrounds, stopping at limit
// columns. Returns the number of cells written
func (b *Buffer) Text(x, y int, s string, fg RGB, limit int) int {
	n := 0
	for _, r := range s {
		if n >= limit {
			break
		}
		b.SetRune(x+n, y, r, fg)
		n++
	}
	return n
}

// TextBg writes s with an explicit background
func (b *Buffer) TextBg(x, y int, s string, fg, bg RGB, limit int) int {
	n := 0
	for _, r := range s {
		if n >= limit {
			break
		}
		b.Set(x+n, y, r, fg, bg)
		n++
	}
	return n
}

// Row returns the glyphs of row y as a string
func (b *Buffer) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	rs := make([]rune, b.width)
	for x := range rs {
		rs[x] = b.cells[y*b.width+x].Rune
	}
	return string(rs)
}

// Flush copies the buffer to screen; the caller calls Show
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			style := tcell.StyleDefault.Foreground(c.Fg.Tcell()).Background(c.Bg.Tcell())
			screen.SetContent(x, y, c.Rune, nil, style)
		}
	}
}
