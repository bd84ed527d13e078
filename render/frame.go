package render

import (
	"fmt"

	"github.com/lixenwraith/kiloc/component"
	"github.com/lixenwraith/kiloc/logger"
	"github.com/lixenwraith/kiloc/terminal"
)

// resizeMessage is shown instead of the canvas when the terminal is below the minimum
const resizeMessage = "Please resize your terminal to at least %d x %d to view this content. :)"

// Stats describes what one frame emitted
type Stats struct {
	CellsWritten int  // visible cells repainted, continuation halves included
	Bytes        int  // bytes handed to the backend
	Resized      bool // terminal size changed, full repaint forced
	TooSmall     bool // only the resize advisory was drawn
}

// Frame composes the tree and paints the cells that changed since the last frame
// Recoverable conditions never surface as errors; only a failed backend write does
func (r *Renderer) Frame() (Stats, error) {
	var st Stats
	r.out = r.out[:0]

	if r.checkResize() || r.forceClear {
		st.Resized = true
		r.forceClear = false
		r.out = append(r.out, terminal.CSIClear...)
		r.front.Invalidate()
		r.repaint = true
	}

	r.updateOffset()

	if r.termW < r.bounds.MinW || r.termH < r.bounds.MinH {
		if !r.tooSmall {
			r.log.WithFields(logger.Fields{
				"term": fmt.Sprintf("%dx%d", r.termW, r.termH),
				"min":  fmt.Sprintf("%dx%d", r.bounds.MinW, r.bounds.MinH),
			}).Info("terminal below minimum size")
		}
		r.tooSmall = true
		st.TooSmall = true
		r.out = terminal.AppendCursorPos(r.out, 0, 0)
		r.out = fmt.Appendf(r.out, resizeMessage, r.bounds.MinW, r.bounds.MinH)
		return st, r.flush(&st)
	}
	r.tooSmall = false

	r.compose()
	st.CellsWritten = r.diff()
	r.out = append(r.out, terminal.CSIReset...)

	if r.repaint {
		r.drawBorder()
		r.repaint = false
	}

	return st, r.flush(&st)
}

// checkResize probes the backend and reports a change; a failed probe keeps the cache
func (r *Renderer) checkResize() bool {
	w, h, err := r.backend.Size()
	if err != nil {
		r.log.WithError(err).Debug("size probe failed, keeping cached size")
		return false
	}
	if w == r.termW && h == r.termH {
		return false
	}
	r.log.WithFields(logger.Fields{
		"from": fmt.Sprintf("%dx%d", r.termW, r.termH),
		"to":   fmt.Sprintf("%dx%d", w, h),
	}).Debug("terminal resized")
	r.termW, r.termH = w, h
	return true
}

// updateOffset centers the canvas (and its border, when it fits) in the terminal
func (r *Renderer) updateOffset() {
	needW, needH := r.bounds.MaxW, r.bounds.MaxH
	r.borderOn = r.bounds.Border && r.termW >= needW+2 && r.termH >= needH+2
	if r.borderOn {
		needW += 2
		needH += 2
	}

	r.offsetX, r.offsetY = 0, 0
	if r.termW > needW {
		r.offsetX = (r.termW - needW) / 2
	}
	if r.termH > needH {
		r.offsetY = (r.termH - needH) / 2
	}
	if r.borderOn {
		r.offsetX++
		r.offsetY++
	}
}

// compose clears the back grid and paints every node in tree order
func (r *Renderer) compose() {
	r.back.Fill(r.blank)
	r.tree.Walk(func(n *component.Node) {
		switch p := n.Payload.(type) {
		case *component.Text:
			r.back.PutString(n.Abs.X, n.Abs.Y, p.Content, p.Style)
		case *component.Box:
			r.back.DrawBox(n.Abs.X, n.Abs.Y, p.W, p.H, p.Line, p.Border, p.Title)
		}
	})
}

// flush hands the composed bytes to the backend in one write
func (r *Renderer) flush(st *Stats) error {
	st.Bytes = len(r.out)
	if len(r.out) == 0 {
		return nil
	}
	if _, err := r.backend.Write(r.out); err != nil {
		// Screen state is unknown once a write fails
		r.forceClear = true
		return fmt.Errorf("render: write frame: %w", err)
	}
	return nil
}
