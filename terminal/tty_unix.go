//go:build unix

// @focus: #sys { term }
package terminal

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// ErrNotTerminal is returned by Init when the input is not a tty
var ErrNotTerminal = errors.New("not a terminal")

// TTY is the unix Backend over a pair of file descriptors
type TTY struct {
	in      *os.File
	out     *os.File
	inFd    int
	outFd   int
	oldTerm *term.State

	mu          sync.Mutex
	initialized bool
}

// NewTTY wraps the given files, usually os.Stdin and os.Stdout
func NewTTY(in, out *os.File) *TTY {
	return &TTY{
		in:    in,
		out:   out,
		inFd:  int(in.Fd()),
		outFd: int(out.Fd()),
	}
}

// Init enters raw mode, clears the screen and hides the cursor
func (t *TTY) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}
	if !term.IsTerminal(t.inFd) {
		return fmt.Errorf("stdin: %w", ErrNotTerminal)
	}

	old, err := term.MakeRaw(t.inFd)
	if err != nil {
		return fmt.Errorf("raw mode: %w", err)
	}
	t.oldTerm = old
	rememberRawMode(t.inFd, old)

	seq := make([]byte, 0, 32)
	seq = append(seq, CSIClear...)
	seq = append(seq, CSICursorHide...)
	seq = append(seq, csiAutoWrapOff...)
	if _, err := t.out.Write(seq); err != nil {
		term.Restore(t.inFd, old)
		forgetRawMode()
		return err
	}

	t.initialized = true
	return nil
}

// Fini restores the terminal. Safe to call multiple times
func (t *TTY) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized {
		return
	}

	seq := make([]byte, 0, 32)
	seq = append(seq, CSIReset...)
	seq = append(seq, csiAutoWrapOn...)
	seq = append(seq, CSICursorShow...)
	t.out.Write(seq)

	if t.oldTerm != nil {
		term.Restore(t.inFd, t.oldTerm)
		t.oldTerm = nil
		forgetRawMode()
	}
	t.initialized = false
}

// Size probes the output fd; errors are returned, not papered over with a default
func (t *TTY) Size() (int, int, error) {
	return getTerminalSize(t.outFd)
}

// Write sends composed bytes straight to the output file
func (t *TTY) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

// getTerminalSize returns the terminal size for a given fd
func getTerminalSize(fd int) (int, int, error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}
