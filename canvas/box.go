package canvas

import (
	"unicode/utf8"

	"github.com/lixenwraith/kiloc/terminal"
)

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineDouble                  // ╔═╗║╚╝
	LineRounded                 // ╭─╮│╰╯
	LineHeavy                   // ┏━┓┃┗┛
	LineNone                    // spaces (invisible border)
)

// Box drawing character sets indexed by LineType
var boxChars = [...][6]rune{
	LineSingle:  {'┌', '─', '┐', '│', '└', '┘'},
	LineDouble:  {'╔', '═', '╗', '║', '╚', '╝'},
	LineRounded: {'╭', '─', '╮', '│', '╰', '╯'},
	LineHeavy:   {'┏', '━', '┓', '┃', '┗', '┛'},
	LineNone:    {' ', ' ', ' ', ' ', ' ', ' '},
}

const (
	boxTL = 0 // top-left
	boxH  = 1 // horizontal
	boxTR = 2 // top-right
	boxV  = 3 // vertical
	boxBL = 4 // bottom-left
	boxBR = 5 // bottom-right
)

// BoxChars returns the six border runes for a line type: tl, h, tr, v, bl, br
func BoxChars(line LineType) [6]rune {
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}
	return boxChars[line]
}

// DrawBox draws a w×h border with its top-left corner at (x, y)
// A non-empty title is centered on the top edge, truncated to fit; cells off the grid are dropped
func (g *Grid) DrawBox(x, y, w, h int, line LineType, st terminal.Style, title string) {
	if w < 2 || h < 2 {
		return
	}
	chars := BoxChars(line)

	g.PutRune(x, y, chars[boxTL], st)
	g.PutRune(x+w-1, y, chars[boxTR], st)
	g.PutRune(x, y+h-1, chars[boxBL], st)
	g.PutRune(x+w-1, y+h-1, chars[boxBR], st)

	for i := 1; i < w-1; i++ {
		g.PutRune(x+i, y, chars[boxH], st)
		g.PutRune(x+i, y+h-1, chars[boxH], st)
	}
	for j := 1; j < h-1; j++ {
		g.PutRune(x, y+j, chars[boxV], st)
		g.PutRune(x+w-1, y+j, chars[boxV], st)
	}

	if title == "" || w <= 4 {
		return
	}
	title = Truncate(title, w-4)
	tx := x + (w-StringWidth(title)-2)/2
	g.PutString(tx, y, " "+title+" ", st)
}

// Truncate cuts s to at most width columns without splitting a glyph
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	cols := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			return s[:i]
		}
		rw := RuneWidth(r)
		if cols+rw > width {
			return s[:i]
		}
		cols += rw
		i += size
	}
	return s
}
