package render

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/lixenwraith/kiloc/canvas"
	"github.com/lixenwraith/kiloc/component"
	"github.com/lixenwraith/kiloc/terminal"
)

var white = terminal.Pack(0xFFFFFF, 0, false, false, false)

// newFixture builds a 10x3 canvas with a single text node at the origin
func newFixture(t *testing.T, termW, termH int, b Bounds, opts ...Option) (*terminal.Memory, *component.Text, *Renderer) {
	t.Helper()
	mem := terminal.NewMemory(termW, termH)
	tree := component.NewTree(8)
	txt, err := tree.AddText(1, component.RootID, 0, 0, "hi", white)
	if err != nil {
		t.Fatal(err)
	}
	r, err := New(mem, b, tree, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return mem, txt, r
}

var small = Bounds{MaxW: 10, MaxH: 3}

func mustFrame(t *testing.T, r *Renderer) Stats {
	t.Helper()
	st, err := r.Frame()
	if err != nil {
		t.Fatalf("Frame failed: %v", err)
	}
	return st
}

func TestNewRejectsInvalidBounds(t *testing.T) {
	mem := terminal.NewMemory(80, 24)
	tree := component.NewTree(1)
	for _, b := range []Bounds{{MaxW: 0, MaxH: 3}, {MaxW: 10, MaxH: -1}, {MinW: -1, MaxW: 10, MaxH: 3}} {
		if _, err := New(mem, b, tree); !errors.Is(err, ErrInvalidBounds) {
			t.Errorf("Bounds %+v: expected ErrInvalidBounds, got %v", b, err)
		}
	}
	if _, err := New(nil, small, tree); err == nil {
		t.Error("Expected nil backend to be rejected")
	}
	if _, err := New(mem, small, nil); err == nil {
		t.Error("Expected nil tree to be rejected")
	}
}

func TestFirstFrameFullRepaint(t *testing.T) {
	mem, _, r := newFixture(t, 80, 24, small)

	st := mustFrame(t, r)
	if !st.Resized {
		t.Error("Expected first frame to count as a resize")
	}
	if st.CellsWritten != 30 {
		t.Errorf("Expected 30 cells written, got %d", st.CellsWritten)
	}

	out := mem.Take()
	if !strings.HasPrefix(out, "\x1b[2J") {
		t.Errorf("Expected screen clear first, got %q", out[:min(len(out), 16)])
	}
	if !strings.HasSuffix(out, "\x1b[0m") {
		t.Error("Expected trailing attribute reset")
	}
	if st.Bytes != len(out) {
		t.Errorf("Expected Bytes %d, got %d", len(out), st.Bytes)
	}
	if r.Front().String() != r.Back().String() {
		t.Errorf("Expected front to match back after frame")
	}
}

func TestSecondFrameIdempotent(t *testing.T) {
	mem, _, r := newFixture(t, 80, 24, small)
	mustFrame(t, r)
	mem.Take()

	st := mustFrame(t, r)
	if st.CellsWritten != 0 || st.Resized {
		t.Errorf("Expected no cells and no resize, got %+v", st)
	}
	if out := mem.Take(); out != "\x1b[0m" {
		t.Errorf("Expected only the trailing reset, got %q", out)
	}
}

func TestOnlyChangedCellEmitted(t *testing.T) {
	mem, txt, r := newFixture(t, 80, 24, small)
	mustFrame(t, r)
	mem.Take()

	txt.Content = "ho"
	st := mustFrame(t, r)
	if st.CellsWritten != 1 {
		t.Errorf("Expected 1 cell written, got %d", st.CellsWritten)
	}

	// Canvas origin is centered at (35,10); cell (1,0) is screen row 11 col 37
	want := "\x1b[11;37H\x1b[0;38;2;255;255;255mo\x1b[0m"
	if out := mem.Take(); out != want {
		t.Errorf("Expected %q, got %q", want, out)
	}
}

func TestEveryChangedCellAddressed(t *testing.T) {
	mem, txt, r := newFixture(t, 80, 24, small)
	mustFrame(t, r)
	mem.Take()

	txt.Content = "abcd"
	st := mustFrame(t, r)
	if st.CellsWritten != 4 {
		t.Errorf("Expected 4 cells written, got %d", st.CellsWritten)
	}
	want := "\x1b[11;36H\x1b[0;38;2;255;255;255ma\x1b[11;37Hb\x1b[11;38Hc\x1b[11;39Hd\x1b[0m"
	if out := mem.Take(); out != want {
		t.Errorf("Expected %q, got %q", want, out)
	}
}

func TestStyleChangeReappliesSGR(t *testing.T) {
	mem, txt, r := newFixture(t, 80, 24, small)
	mustFrame(t, r)
	mem.Take()

	txt.Style = terminal.Pack(0xFF0000, 0, true, false, false)
	st := mustFrame(t, r)
	if st.CellsWritten != 2 {
		t.Errorf("Expected 2 cells restyled, got %d", st.CellsWritten)
	}
	if out := mem.Take(); !strings.Contains(out, "\x1b[0;1;38;2;255;0;0mh\x1b[11;37Hi") {
		t.Errorf("Expected bold red SGR before glyphs, got %q", out)
	}
}

func TestResizeRepaintsOnce(t *testing.T) {
	mem, _, r := newFixture(t, 80, 24, small)
	mustFrame(t, r)
	mustFrame(t, r)
	mem.Take()

	mem.Resize(100, 30)
	st := mustFrame(t, r)
	if !st.Resized || st.CellsWritten != 30 {
		t.Errorf("Expected resized full repaint of 30 cells, got %+v", st)
	}
	if out := mem.Take(); !strings.HasPrefix(out, "\x1b[2J") {
		t.Errorf("Expected clear on resize, got %q", out)
	}
	if w, h := r.TermSize(); w != 100 || h != 30 {
		t.Errorf("Expected cached 100x30, got %dx%d", w, h)
	}
	if x, y := r.Offset(); x != 45 || y != 13 {
		t.Errorf("Expected offset (45,13), got (%d,%d)", x, y)
	}

	st = mustFrame(t, r)
	if st.Resized || st.CellsWritten != 0 {
		t.Errorf("Expected normal diff after resize, got %+v", st)
	}
}

func TestSizeProbeFailureKeepsCache(t *testing.T) {
	mem, txt, r := newFixture(t, 80, 24, small)
	mustFrame(t, r)
	mem.Take()

	mem.FailSize(errors.New("ioctl failed"))
	txt.Content = "ho"
	st := mustFrame(t, r)
	if st.Resized {
		t.Error("Expected failed probe not to count as resize")
	}
	if st.CellsWritten != 1 {
		t.Errorf("Expected 1 cell written, got %d", st.CellsWritten)
	}
	if w, h := r.TermSize(); w != 80 || h != 24 {
		t.Errorf("Expected cached 80x24, got %dx%d", w, h)
	}
}

func TestFirstProbeFailureShowsAdvisory(t *testing.T) {
	mem := terminal.NewMemory(80, 24)
	mem.FailSize(errors.New("no tty"))
	r, err := New(mem, Bounds{MinW: 10, MinH: 3, MaxW: 10, MaxH: 3}, component.NewTree(1))
	if err != nil {
		t.Fatal(err)
	}

	st := mustFrame(t, r)
	if !st.TooSmall || st.Resized {
		t.Errorf("Expected advisory without resize, got %+v", st)
	}
}

func TestTooSmallAdvisory(t *testing.T) {
	b := Bounds{MinW: 40, MinH: 12, MaxW: 60, MaxH: 20}
	mem, _, r := newFixture(t, 20, 5, b)
	msg := fmt.Sprintf(resizeMessage, 40, 12)

	st := mustFrame(t, r)
	if !st.TooSmall || st.CellsWritten != 0 {
		t.Errorf("Expected advisory only, got %+v", st)
	}
	if out := mem.Take(); out != "\x1b[2J\x1b[1;1H"+msg {
		t.Errorf("Expected clear and advisory, got %q", out)
	}

	st = mustFrame(t, r)
	if !st.TooSmall {
		t.Error("Expected advisory to persist")
	}
	if out := mem.Take(); out != "\x1b[1;1H"+msg {
		t.Errorf("Expected advisory redrawn without clear, got %q", out)
	}

	mem.Resize(80, 24)
	st = mustFrame(t, r)
	if st.TooSmall || !st.Resized {
		t.Errorf("Expected full repaint after growing, got %+v", st)
	}
	if st.CellsWritten != 60*20 {
		t.Errorf("Expected %d cells, got %d", 60*20, st.CellsWritten)
	}
}

func TestCenteringOffset(t *testing.T) {
	tests := []struct {
		name         string
		termW, termH int
		border       bool
		wantX, wantY int
	}{
		{"Plain centered", 80, 24, false, 35, 10},
		{"Bordered centered", 80, 24, true, 35, 10},
		{"Bordered odd", 81, 25, true, 35, 11},
		{"Exact fit", 10, 3, false, 0, 0},
		{"Border does not fit", 11, 4, true, 0, 0},
		{"Border exact fit", 12, 5, true, 1, 1},
		{"Smaller than canvas", 5, 2, false, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := small
			b.Border = tt.border
			_, _, r := newFixture(t, tt.termW, tt.termH, b)
			mustFrame(t, r)
			if x, y := r.Offset(); x != tt.wantX || y != tt.wantY {
				t.Errorf("Expected (%d,%d), got (%d,%d)", tt.wantX, tt.wantY, x, y)
			}
		})
	}
}

func TestBorderDrawnOnRepaintOnly(t *testing.T) {
	b := small
	b.Border = true
	mem, txt, r := newFixture(t, 80, 24, b, WithBorder(terminal.StyleNone, canvas.LineSingle))

	mustFrame(t, r)
	out := mem.Take()
	if !strings.Contains(out, "\x1b[10;35H┌──────────┐") {
		t.Errorf("Expected top border one cell outside the canvas, got %q", out)
	}
	if !strings.Contains(out, "\x1b[14;35H└──────────┘") {
		t.Errorf("Expected bottom border, got %q", out)
	}

	txt.Content = "ho"
	mustFrame(t, r)
	if out := mem.Take(); strings.Contains(out, "┌") {
		t.Errorf("Expected no border on a plain diff frame, got %q", out)
	}

	r.Invalidate()
	st := mustFrame(t, r)
	if !st.Resized {
		t.Error("Expected Invalidate to force a repaint")
	}
	if out := mem.Take(); !strings.Contains(out, "┌") {
		t.Error("Expected border redrawn after invalidate")
	}
}

func TestBorderSuppressedWhenTooTight(t *testing.T) {
	b := small
	b.Border = true
	mem, _, r := newFixture(t, 11, 4, b)
	mustFrame(t, r)
	if out := mem.Take(); strings.Contains(out, "┌") {
		t.Errorf("Expected no border, got %q", out)
	}
}

func TestWriteErrorForcesRepaint(t *testing.T) {
	mem, txt, r := newFixture(t, 80, 24, small)
	mustFrame(t, r)

	writeErr := errors.New("broken pipe")
	mem.FailWrite(writeErr)
	txt.Content = "ho"
	if _, err := r.Frame(); !errors.Is(err, writeErr) {
		t.Fatalf("Expected write error, got %v", err)
	}

	mem.FailWrite(nil)
	st := mustFrame(t, r)
	if !st.Resized || st.CellsWritten != 30 {
		t.Errorf("Expected full repaint after failed write, got %+v", st)
	}
}

func TestColorMode256(t *testing.T) {
	mem, txt, r := newFixture(t, 80, 24, small, WithColorMode(terminal.ColorMode256))
	txt.Style = terminal.Pack(0xFF0000, 0, false, false, false)
	mustFrame(t, r)
	out := mem.Take()
	if !strings.Contains(out, "\x1b[0;38;5;196mh\x1b[11;37Hi") {
		t.Errorf("Expected 256-color SGR, got %q", out)
	}
	if strings.Contains(out, "38;2;") {
		t.Errorf("Expected no truecolor sequences, got %q", out)
	}
}

func TestBackgroundStyle(t *testing.T) {
	bg := terminal.Pack(0, 0x000080, false, false, false)
	_, _, r := newFixture(t, 80, 24, small, WithBackground(bg))
	mustFrame(t, r)

	c, _ := r.Back().At(9, 2)
	if c.Glyph() != " " || c.Style != bg {
		t.Errorf("Expected themed blank, got %q/%x", c.Glyph(), c.Style)
	}
}

func TestLaterSiblingPaintsOver(t *testing.T) {
	mem := terminal.NewMemory(80, 24)
	tree := component.NewTree(4)
	tree.AddText(1, component.RootID, 0, 0, "aaa", white)
	tree.AddText(2, component.RootID, 1, 0, "b", white)
	r, err := New(mem, small, tree)
	if err != nil {
		t.Fatal(err)
	}
	mustFrame(t, r)

	if got := r.Back().String(); !strings.HasPrefix(got, "aba") {
		t.Errorf("Expected aba, got %q", got)
	}
}

func TestSnapshot(t *testing.T) {
	mem := terminal.NewMemory(80, 24)
	tree := component.NewTree(4)
	panel, _ := tree.AddContainer(1, component.RootID, 1, 0, 8, 2)
	tree.AddText(2, 1, 0, 1, "hello", white)
	r, err := New(mem, small, tree)
	if err != nil {
		t.Fatal(err)
	}

	if got := r.Snapshot(); got != "\n hello\n" {
		t.Errorf("Expected %q, got %q", "\n hello\n", got)
	}
	panel.X = 3
	if got := r.Snapshot(); got != "\n   hello\n" {
		t.Errorf("Expected moved text, got %q", got)
	}
	if mem.Output() != "" {
		t.Errorf("Expected no terminal output, got %q", mem.Output())
	}
	if got := r.Front().String(); got != "\n\n" {
		t.Errorf("Expected front untouched, got %q", got)
	}
}
