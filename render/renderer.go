package render

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/kiloc/canvas"
	"github.com/lixenwraith/kiloc/component"
	"github.com/lixenwraith/kiloc/logger"
	"github.com/lixenwraith/kiloc/terminal"
)

// ErrInvalidBounds is returned by New for unusable canvas bounds
var ErrInvalidBounds = errors.New("invalid canvas bounds")

// Bounds configures the canvas and the smallest terminal it will draw into
type Bounds struct {
	MinW, MinH int
	MaxW, MaxH int
	Border     bool
}

// Validate checks that the canvas has an area and minimums are not negative
func (b Bounds) Validate() error {
	if b.MaxW <= 0 || b.MaxH <= 0 {
		return fmt.Errorf("canvas %dx%d: %w", b.MaxW, b.MaxH, ErrInvalidBounds)
	}
	if b.MinW < 0 || b.MinH < 0 {
		return fmt.Errorf("minimum %dx%d: %w", b.MinW, b.MinH, ErrInvalidBounds)
	}
	return nil
}

// Renderer is the explicit render context: the grid pair, the tree it draws,
// and the cached terminal geometry. One goroutine owns it; Frame is not reentrant
type Renderer struct {
	backend terminal.Backend
	bounds  Bounds
	tree    *component.Tree

	front *canvas.Grid // last painted
	back  *canvas.Grid // being composed

	termW, termH     int
	offsetX, offsetY int
	borderOn         bool

	forceClear bool // clear + invalidate on next frame
	repaint    bool // a full repaint is in progress, border must be redrawn
	tooSmall   bool

	colorMode   terminal.ColorMode
	blank       canvas.Cell
	borderStyle terminal.Style
	borderLine  canvas.LineType
	log         *logger.Entry

	out []byte // composed frame, reused
}

// Option configures a Renderer
type Option func(*Renderer)

// WithLogger sets the log entry, default is logger.Named("render")
func WithLogger(e *logger.Entry) Option {
	return func(r *Renderer) {
		if e != nil {
			r.log = e
		}
	}
}

// WithColorMode selects true color or the 256-color fallback
func WithColorMode(m terminal.ColorMode) Option {
	return func(r *Renderer) { r.colorMode = m }
}

// WithBorder sets the style and line type of the outer border
func WithBorder(st terminal.Style, line canvas.LineType) Option {
	return func(r *Renderer) {
		r.borderStyle = st
		r.borderLine = line
	}
}

// WithBackground sets the style the back grid is cleared to every frame
func WithBackground(st terminal.Style) Option {
	return func(r *Renderer) {
		r.blank = canvas.Blank
		r.blank.Style = st
	}
}

// New sizes both grids to the canvas and binds the tree to draw
func New(backend terminal.Backend, bounds Bounds, tree *component.Tree, opts ...Option) (*Renderer, error) {
	if backend == nil {
		return nil, errors.New("render: nil backend")
	}
	if tree == nil {
		return nil, errors.New("render: nil tree")
	}
	if err := bounds.Validate(); err != nil {
		return nil, err
	}

	r := &Renderer{
		backend:    backend,
		bounds:     bounds,
		tree:       tree,
		front:      canvas.NewGrid(bounds.MaxW, bounds.MaxH),
		back:       canvas.NewGrid(bounds.MaxW, bounds.MaxH),
		colorMode:  terminal.ColorModeTrueColor,
		blank:      canvas.Blank,
		borderLine: canvas.LineSingle,
		log:        logger.Named("render"),
		out:        make([]byte, 0, 64*1024),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Front returns the last painted grid
func (r *Renderer) Front() *canvas.Grid { return r.front }

// Back returns the grid composed by the last frame
func (r *Renderer) Back() *canvas.Grid { return r.back }

// TermSize returns the cached terminal dimensions
func (r *Renderer) TermSize() (int, int) { return r.termW, r.termH }

// Offset returns the screen position of canvas cell (0, 0), 0-indexed
func (r *Renderer) Offset() (int, int) { return r.offsetX, r.offsetY }

// Invalidate forces a screen clear and full repaint on the next frame
func (r *Renderer) Invalidate() {
	r.forceClear = true
}

// Snapshot composes the tree once and returns the canvas as plain text
// Nothing is written to the backend and the front grid is untouched
func (r *Renderer) Snapshot() string {
	r.compose()
	return r.back.String()
}
