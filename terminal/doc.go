// Package terminal provides direct ANSI terminal access for the kiloc renderer.
//
// Features:
//   - Packed 64-bit style word (fg RGB, bg RGB, bold/italic/underline)
//   - Allocation-free SGR and cursor sequence builders
//   - True color (24-bit) with 256-color palette fallback
//   - Unix tty backend over x/term raw mode and TIOCGWINSZ probing
//   - In-memory backend for headless rendering
//   - SIGWINCH resize notification
//   - Clean terminal restoration on exit/panic
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI sequences.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
