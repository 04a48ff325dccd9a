//go:build !windows

package daemon

import (
	"errors"

	"golang.org/x/sys/unix"
)

// processAlive reports whether pid refers to a live process, using the
// signal-0 probe. EPERM means the process exists but belongs to someone
// else; still alive.
func processAlive(pid int) bool {
	err := unix.Kill(pid, 0)
	return err == nil || errors.Is(err, unix.EPERM)
}

// terminate asks the process to shut down cleanly.
func terminate(pid int) error {
	return unix.Kill(pid, unix.SIGTERM)
}
