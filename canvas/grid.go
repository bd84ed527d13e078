package canvas

import "strings"

// Grid is a fixed-size row-major array of cells
// Allocated once; contents are mutated in place every frame
type Grid struct {
	cells  []Cell
	width  int
	height int
}

// NewGrid creates a grid filled with Blank cells
func NewGrid(width, height int) *Grid {
	width = max(width, 0)
	height = max(height, 0)
	g := &Grid{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
	}
	g.Clear()
	return g
}

// Width returns the grid width
func (g *Grid) Width() int { return g.width }

// Height returns the grid height
func (g *Grid) Height() int { return g.height }

// InBounds returns true if the given coordinates are within the grid
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the cell at the given coordinates, false if out of bounds
func (g *Grid) At(x, y int) (Cell, bool) {
	if !g.InBounds(x, y) {
		return Cell{}, false
	}
	return g.cells[y*g.width+x], true
}

// Set stores a cell verbatim, no wide-glyph bookkeeping. Out of bounds is dropped
func (g *Grid) Set(x, y int, c Cell) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.cells[y*g.width+x] = c
	return true
}

// Row returns the backing slice for row y, nil if out of range
func (g *Grid) Row(y int) []Cell {
	if y < 0 || y >= g.height {
		return nil
	}
	start := y * g.width
	return g.cells[start : start+g.width : start+g.width]
}

// Fill sets every cell to c using exponential copy
func (g *Grid) Fill(c Cell) {
	if len(g.cells) == 0 {
		return
	}
	g.cells[0] = c
	for filled := 1; filled < len(g.cells); filled *= 2 {
		copy(g.cells[filled:], g.cells[:filled])
	}
}

// Clear resets all cells to Blank
func (g *Grid) Clear() {
	g.Fill(Blank)
}

// Invalidate sets every cell to a value no composed cell can equal
func (g *Grid) Invalidate() {
	g.Fill(invalidCell)
}

// String renders the grid as plain text lines, styles dropped, trailing spaces trimmed
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(len(g.cells) + g.height)
	for y := 0; y < g.height; y++ {
		line := make([]byte, 0, g.width)
		for _, c := range g.Row(y) {
			line = c.AppendGlyph(line)
		}
		sb.WriteString(strings.TrimRight(string(line), " "))
		if y < g.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// blankOver returns a space that keeps the style of the cell it replaces
func blankOver(c Cell) Cell {
	b := Blank
	if c.Style.Valid() {
		b.Style = c.Style
	}
	return b
}
