package main

import (
	"context"
	"os"

	"github.com/agbru/fibworker/internal/app"
	apperrors "github.com/agbru/fibworker/internal/errors"
	"github.com/agbru/fibworker/internal/worker"
)

func main() {
	// The same binary is the isolated worker when re-executed by the
	// process spawner.
	if worker.IsInvocation(os.Args[1:]) {
		os.Exit(worker.Main(os.Args[2:], os.Stdin, os.Stdout, os.Stderr))
	}

	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout)
		return
	}

	application, err := app.New(os.Args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			os.Exit(apperrors.ExitSuccess)
		}
		os.Exit(apperrors.ExitCodeFor(err))
	}

	exitCode := application.Run(context.Background(), os.Stdout)
	os.Exit(exitCode)
}
