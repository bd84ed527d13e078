//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly

package terminal

// cookControllingTTY has no termios ioctls to use here; RIS has already been sent
func cookControllingTTY() {}
