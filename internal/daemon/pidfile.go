package daemon

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrNotRunning reports a stop/status request with no live daemon.
var ErrNotRunning = errors.New("daemon not running")

// AlreadyRunningError reports an attempt to start a second daemon.
type AlreadyRunningError struct {
	PID int
}

func (e AlreadyRunningError) Error() string {
	return fmt.Sprintf("daemon already running (pid %d)", e.PID)
}

// WritePIDFile records the current process ID at path, refusing when another
// daemon is already alive.
func WritePIDFile(path string) error {
	if pid, running := RunningPID(path); running {
		return AlreadyRunningError{PID: pid}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	pid := strconv.Itoa(os.Getpid())
	if err := os.WriteFile(path, []byte(pid+"\n"), 0o600); err != nil {
		return fmt.Errorf("write pid file: %w", err)
	}
	return nil
}

// RemovePIDFile deletes the liveness marker; a missing file is not an error.
func RemovePIDFile(path string) error {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove pid file: %w", err)
	}
	return nil
}

// RunningPID reads the liveness marker and validates that the recorded
// process is still alive. Stale markers (dead process, garbage contents) are
// removed on sight.
func RunningPID(path string) (int, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, false
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || pid <= 0 {
		_ = os.Remove(path)
		return 0, false
	}
	if !processAlive(pid) {
		_ = os.Remove(path)
		return 0, false
	}
	return pid, true
}

// Stop terminates the daemon recorded at path and removes the marker.
func Stop(path string) error {
	pid, running := RunningPID(path)
	if !running {
		return ErrNotRunning
	}
	if err := terminate(pid); err != nil {
		return fmt.Errorf("stop daemon (pid %d): %w", pid, err)
	}
	return RemovePIDFile(path)
}
