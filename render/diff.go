// @focus: #render { diff }
package render

import (
	"github.com/lixenwraith/kiloc/canvas"
	"github.com/lixenwraith/kiloc/terminal"
)

// diff appends cursor-addressed writes for every cell where back differs from front,
// committing each one into front, and returns the number of visible cells repainted
//
// Every painted cell is cursor-addressed; the terminal's advance after a glyph is not
// assumed to match the grid's. SGR is emitted only when the style differs from the
// previous emitted cell, and is always a full reset-and-reapply.
// Continuation cells are committed but never addressed: their head glyph covers them.
// Cells beyond the terminal edge are committed without output
func (r *Renderer) diff() int {
	written := 0
	visW := r.termW - r.offsetX
	visH := r.termH - r.offsetY

	var lastStyle terminal.Style
	styleValid := false

	for y := 0; y < r.back.Height(); y++ {
		backRow := r.back.Row(y)
		frontRow := r.front.Row(y)
		rowVisible := y < visH

		for x, c := range backRow {
			if c == frontRow[x] {
				continue
			}
			frontRow[x] = c

			if !rowVisible || x >= visW {
				continue
			}
			written++

			if c.IsContinuation() {
				continue
			}

			if x+c.Width() > visW {
				// Right half would fall off screen; paint the visible half blank
				c = canvas.Blank.WithStyle(c.Style)
			}

			r.out = terminal.AppendCursorPos(r.out, r.offsetX+x, r.offsetY+y)
			if !styleValid || c.Style != lastStyle {
				r.out = terminal.AppendSGR(r.out, c.Style, r.colorMode)
				lastStyle = c.Style
				styleValid = true
			}
			r.out = c.AppendGlyph(r.out)
		}
	}

	return written
}
