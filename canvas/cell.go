package canvas

import (
	"unicode/utf8"

	"github.com/lixenwraith/kiloc/terminal"
)

// MaxGlyphBytes is the longest UTF-8 encoding of a single scalar
const MaxGlyphBytes = utf8.UTFMax

// Cell is one canvas position: a glyph of up to four UTF-8 bytes and a style word
// An empty glyph marks the right half of a wide glyph placed one column to the left
// Cells are comparable with ==
type Cell struct {
	glyph [MaxGlyphBytes]byte
	n     uint8
	Style terminal.Style
}

// Blank is a space with the neutral style
var Blank = Cell{glyph: [MaxGlyphBytes]byte{' '}, n: 1}

// NewCell encodes r as the cell glyph
func NewCell(r rune, st terminal.Style) Cell {
	var c Cell
	c.n = uint8(utf8.EncodeRune(c.glyph[:], r))
	c.Style = st
	return c
}

// Continuation returns the right-half cell of a wide glyph
func Continuation(st terminal.Style) Cell {
	return Cell{Style: st}
}

// Glyph returns the glyph bytes as a string, empty for continuation cells
func (c Cell) Glyph() string {
	return string(c.glyph[:c.n])
}

// AppendGlyph appends the glyph bytes without allocating
func (c Cell) AppendGlyph(dst []byte) []byte {
	return append(dst, c.glyph[:c.n]...)
}

// IsContinuation reports whether the cell is the right half of a wide glyph
func (c Cell) IsContinuation() bool {
	return c.n == 0
}

// Width returns the columns the glyph occupies, 0 for a continuation cell
func (c Cell) Width() int {
	if c.n == 0 {
		return 0
	}
	r, _ := utf8.DecodeRune(c.glyph[:c.n])
	return RuneWidth(r)
}

// WithStyle returns a copy of c carrying st
func (c Cell) WithStyle(st terminal.Style) Cell {
	c.Style = st
	return c
}

// invalidCell never equals a composed cell
var invalidCell = Cell{Style: terminal.StyleInvalid}
