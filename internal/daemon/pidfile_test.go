package daemon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pidPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "daemon.pid")
}

func TestWriteAndReadPIDFile(t *testing.T) {
	path := pidPath(t)

	require.NoError(t, WritePIDFile(path))

	pid, running := RunningPID(path)
	assert.True(t, running)
	assert.Equal(t, os.Getpid(), pid)
}

func TestWritePIDFileRefusesSecondDaemon(t *testing.T) {
	path := pidPath(t)
	require.NoError(t, WritePIDFile(path))

	err := WritePIDFile(path)
	var already AlreadyRunningError
	require.ErrorAs(t, err, &already)
	assert.Equal(t, os.Getpid(), already.PID)
}

func TestRunningPIDMissingFile(t *testing.T) {
	_, running := RunningPID(pidPath(t))
	assert.False(t, running)
}

func TestRunningPIDRemovesGarbageFile(t *testing.T) {
	path := pidPath(t)
	require.NoError(t, os.WriteFile(path, []byte("not a pid"), 0o600))

	_, running := RunningPID(path)
	assert.False(t, running)

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestRunningPIDRemovesStaleFile(t *testing.T) {
	path := pidPath(t)
	// Way past any realistic pid_max, so the process cannot exist.
	require.NoError(t, os.WriteFile(path, []byte("999999999"), 0o600))

	_, running := RunningPID(path)
	assert.False(t, running)

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestRemovePIDFileIdempotent(t *testing.T) {
	path := pidPath(t)
	require.NoError(t, WritePIDFile(path))
	require.NoError(t, RemovePIDFile(path))
	require.NoError(t, RemovePIDFile(path))
}

func TestStopWithoutDaemon(t *testing.T) {
	err := Stop(pidPath(t))
	assert.ErrorIs(t, err, ErrNotRunning)
}
