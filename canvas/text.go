package canvas

import (
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/kiloc/terminal"
)

// widthCond pins ambiguous-width runes to one column regardless of locale env
var widthCond = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// RuneWidth returns the terminal columns r occupies: 1 or 2
// Zero and negative widths count as 1 so placement always advances
func RuneWidth(r rune) int {
	w := widthCond.RuneWidth(r)
	if w <= 0 {
		return 1
	}
	if w > 2 {
		return 2
	}
	return w
}

// StringWidth returns the columns s occupies, up to the first invalid byte
func StringWidth(s string) int {
	n := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			break
		}
		n += RuneWidth(r)
		i += size
	}
	return n
}

// sanitize keeps control characters out of the grid; emitted raw they would move the cursor
func sanitize(r rune) rune {
	if unicode.IsControl(r) {
		return utf8.RuneError
	}
	return r
}

// PutRune writes a single glyph at (x, y) and returns the columns it consumed
// Returns 0 when the write is dropped: out of bounds, or a wide glyph whose
// right half would fall outside the grid
func (g *Grid) PutRune(x, y int, r rune, st terminal.Style) int {
	r = sanitize(r)
	w := RuneWidth(r)
	if !g.InBounds(x, y) || x+w > g.width {
		return 0
	}

	g.detach(x, y)
	if w == 2 {
		g.detach(x+1, y)
	}

	row := g.Row(y)
	row[x] = NewCell(r, st)
	if w == 2 {
		row[x+1] = Continuation(st)
	}
	return w
}

// PutString writes s starting at (x, y) without wrapping and returns the columns advanced
// Stops before any glyph that would reach past the right edge and at the first
// invalid UTF-8 byte. Columns left of zero are skipped but still advance
func (g *Grid) PutString(x, y int, s string, st terminal.Style) int {
	if y < 0 || y >= g.height {
		return 0
	}

	col := x
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			break
		}
		w := RuneWidth(sanitize(r))
		if col+w > g.width {
			break
		}
		if col >= 0 {
			g.PutRune(col, y, r, st)
		}
		col += w
		i += size
	}
	return col - x
}

// detach breaks any wide glyph that overlaps (x, y) before the cell is overwritten,
// blanking the orphaned half so no continuation outlives its head
func (g *Grid) detach(x, y int) {
	row := g.Row(y)
	if row == nil || x < 0 || x >= len(row) {
		return
	}
	if row[x].IsContinuation() {
		if x > 0 {
			row[x-1] = blankOver(row[x-1])
		}
		return
	}
	if x+1 < len(row) && row[x+1].IsContinuation() {
		row[x+1] = blankOver(row[x+1])
	}
}
