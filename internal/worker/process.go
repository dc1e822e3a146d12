package worker

import (
	"context"
	"io"
	"os"
	"os/exec"

	apperrors "github.com/agbru/fibworker/internal/errors"
)

// ProcessSpawner starts each worker as a child process running Main.
type ProcessSpawner struct {
	// Path is the executable; empty means the running binary.
	Path string
	// Args follow the executable; empty means []string{Command}.
	Args []string
	// Env is appended to the parent's environment.
	Env []string
	// Stderr receives the child's log output; nil discards it.
	Stderr io.Writer
}

// Spawn starts a new worker process.
func (s ProcessSpawner) Spawn(_ context.Context) (Handle, error) {
	path := s.Path
	if path == "" {
		exe, err := os.Executable()
		if err != nil {
			return nil, apperrors.WorkerError{Op: "spawn", Cause: err}
		}
		path = exe
	}
	args := s.Args
	if len(args) == 0 {
		args = []string{Command}
	}

	// The child's lifetime is controlled by Terminate, not by a context.
	cmd := exec.Command(path, args...)
	cmd.Env = append(os.Environ(), s.Env...)
	cmd.Stderr = s.Stderr
	cmd.SysProcAttr = sysProcAttr()

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, apperrors.WorkerError{Op: "spawn", Cause: err}
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, apperrors.WorkerError{Op: "spawn", Cause: err}
	}
	if err := cmd.Start(); err != nil {
		return nil, apperrors.WorkerError{Op: "spawn", Cause: err}
	}

	h := newPipeHandle(stdin, cmd.Process.Kill)
	go h.readLoop(stdout, cmd.Wait)
	return h, nil
}

var _ Spawner = ProcessSpawner{}
