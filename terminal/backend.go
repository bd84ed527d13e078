package terminal

import "io"

// Backend is what the render pipeline needs from a terminal device
// Size is probed once per frame; a failed probe must not be fatal to the caller
type Backend interface {
	io.Writer

	// Size returns current terminal dimensions in cells
	Size() (width, height int, err error)
}
