package render

import (
	"unicode/utf8"

	"github.com/lixenwraith/kiloc/canvas"
	"github.com/lixenwraith/kiloc/terminal"
)

// drawBorder frames the canvas one cell outside its edges
// Only drawn on repaint frames: the diff never touches those screen cells, so the
// border survives until the next clear
func (r *Renderer) drawBorder() {
	if !r.borderOn {
		return
	}
	chars := canvas.BoxChars(r.borderLine)

	left, top := r.offsetX-1, r.offsetY-1
	right, bottom := r.offsetX+r.bounds.MaxW, r.offsetY+r.bounds.MaxH

	r.out = terminal.AppendSGR(r.out, r.borderStyle, r.colorMode)

	r.out = terminal.AppendCursorPos(r.out, left, top)
	r.out = utf8.AppendRune(r.out, chars[0])
	for i := 0; i < r.bounds.MaxW; i++ {
		r.out = utf8.AppendRune(r.out, chars[1])
	}
	r.out = utf8.AppendRune(r.out, chars[2])

	for y := top + 1; y < bottom; y++ {
		r.out = terminal.AppendCursorPos(r.out, left, y)
		r.out = utf8.AppendRune(r.out, chars[3])
		r.out = terminal.AppendCursorPos(r.out, right, y)
		r.out = utf8.AppendRune(r.out, chars[3])
	}

	r.out = terminal.AppendCursorPos(r.out, left, bottom)
	r.out = utf8.AppendRune(r.out, chars[4])
	for i := 0; i < r.bounds.MaxW; i++ {
		r.out = utf8.AppendRune(r.out, chars[1])
	}
	r.out = utf8.AppendRune(r.out, chars[5])

	r.out = append(r.out, terminal.CSIReset...)
}
