//go:build windows

package daemon

import "os"

// processAlive reports whether pid refers to a live process. FindProcess
// always succeeds on Windows, but opening a dead pid fails.
func processAlive(pid int) bool {
	p, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	defer p.Release()
	return true
}

// terminate kills the process; Windows has no graceful signal to send.
func terminate(pid int) error {
	p, err := os.FindProcess(pid)
	if err != nil {
		return err
	}
	defer p.Release()
	return p.Kill()
}
