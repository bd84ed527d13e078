//go:build unix

package terminal

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
)

// WatchResize delivers one notification per SIGWINCH burst
// The channel holds at most one pending event and is closed when ctx ends
func WatchResize(ctx context.Context) <-chan struct{} {
	sigCh := make(chan os.Signal, 1)
	eventCh := make(chan struct{}, 1)
	signal.Notify(sigCh, syscall.SIGWINCH)

	go func() {
		defer close(eventCh)
		defer signal.Stop(sigCh)

		defer func() {
			if r := recover(); r != nil {
				EmergencyReset(os.Stdout)
				fmt.Fprintf(os.Stderr, "\n\x1b[31mRESIZE HANDLER CRASHED: %v\x1b[0m\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case <-sigCh:
				// Non-blocking: a pending event already means "size changed"
				select {
				case eventCh <- struct{}{}:
				default:
				}
			}
		}
	}()

	return eventCh
}
