// Package pid guards the fault journal against concurrent runs with a
// PID file. Stale and unreadable files are reclaimed; only a live
// process holding the file blocks a run.
package pid

import (
	"os"
	"path/filepath"
	"strconv"
	"syscall"

	"codeberg.org/mutker/faultctl/internal/errors"
)

const pidFile = "faultctl.pid"

// Path returns the PID file location.
func Path() string {
	return filepath.Join(os.TempDir(), pidFile)
}

// Write claims the PID file for the current process. It fails with
// already_running when the file names a process that is still alive;
// stale or unparsable files are overwritten.
func Write() error {
	errFactory := errors.New()
	path := Path()

	if data, err := os.ReadFile(path); err == nil {
		if prev, err := strconv.Atoi(string(data)); err == nil && alive(prev) {
			return errFactory.WithData(errors.ErrAlreadyRunning, struct {
				PID int
			}{PID: prev})
		}
	}

	if err := os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())), 0o600); err != nil {
		return errFactory.Wrap(errors.ErrInternal, err)
	}

	return nil
}

// Remove releases the PID file. A missing file is not an error.
func Remove() error {
	errFactory := errors.New()

	if err := os.Remove(Path()); err != nil && !os.IsNotExist(err) {
		return errFactory.Wrap(errors.ErrInternal, err)
	}

	return nil
}

// alive probes a PID with signal 0. On Linux FindProcess always
// succeeds, so the signal is the actual existence check.
func alive(pid int) bool {
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}

	return process.Signal(syscall.Signal(0)) == nil
}
