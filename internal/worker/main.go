package worker

import (
	"context"
	"flag"
	"io"
	"os"

	apperrors "github.com/agbru/fibworker/internal/errors"
	"github.com/agbru/fibworker/internal/logging"
)

// Command is the hidden first argument that turns the binary into a worker.
const Command = "__worker"

// IsInvocation reports whether args (without the program name) ask for the
// worker entry point.
func IsInvocation(args []string) bool {
	return len(args) > 0 && args[0] == Command
}

// Main is the worker process entry point. args are the arguments following
// Command. It returns the process exit code.
func Main(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(Command, flag.ContinueOnError)
	fs.SetOutput(stderr)
	level := fs.String("log-level", "info", "worker log level")
	if err := fs.Parse(args); err != nil {
		return apperrors.ExitErrorConfig
	}

	logger := logging.NewLogger(stderr, "worker").
		Level(logging.ParseLevel(*level)).
		With(logging.Int("pid", os.Getpid()))

	logger.Debug("worker started")
	if err := Serve(context.Background(), stdin, stdout, Options{Logger: logger}); err != nil {
		logger.Error("worker loop failed", err)
		return apperrors.ExitErrorGeneric
	}
	logger.Debug("worker input closed")
	return apperrors.ExitSuccess
}
