package daemon

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-ps"
)

// ErrAlreadyRunning is returned when another daemon process is found.
var ErrAlreadyRunning = errors.New("alarm daemon is already running")

// processLister returns the processes of the machine.
type processLister func() ([]ps.Process, error)

// ensureSingleInstance fails when another process runs the same executable.
func ensureSingleInstance(list processLister, executable string, selfPID int) error {
	processes, err := list()
	if err != nil {
		return fmt.Errorf("list processes: %w", err)
	}

	if pid, found := findInstance(processes, executable, selfPID); found {
		return fmt.Errorf("%w: pid %d", ErrAlreadyRunning, pid)
	}

	return nil
}

// findInstance looks for a process named executable other than selfPID.
// Names are compared case-insensitively to cover Windows.
func findInstance(processes []ps.Process, executable string, selfPID int) (int, bool) {
	for _, process := range processes {
		if process.Pid() == selfPID {
			continue
		}

		if strings.EqualFold(process.Executable(), executable) {
			return process.Pid(), true
		}
	}

	return 0, false
}

// currentExecutable returns the base name of the running binary.
func currentExecutable() string {
	path, err := os.Executable()
	if err != nil {
		path = os.Args[0]
	}

	return filepath.Base(path)
}
