package terminal

import (
	"sync"

	"golang.org/x/term"
)

// rawMode holds the cooked state captured by the TTY currently in raw mode
var rawMode struct {
	mu    sync.Mutex
	fd    int
	state *term.State
}

func rememberRawMode(fd int, st *term.State) {
	rawMode.mu.Lock()
	rawMode.fd, rawMode.state = fd, st
	rawMode.mu.Unlock()
}

func forgetRawMode() {
	rawMode.mu.Lock()
	rawMode.state = nil
	rawMode.mu.Unlock()
}

// restoreTerminalMode undoes raw mode after a crash
// The state saved by TTY.Init wins; without one the controlling tty is cooked in place
func restoreTerminalMode() {
	rawMode.mu.Lock()
	fd, st := rawMode.fd, rawMode.state
	rawMode.mu.Unlock()

	if st != nil && term.Restore(fd, st) == nil {
		return
	}
	cookControllingTTY()
}
