package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/agbru/fibworker/internal/cli"
	"github.com/agbru/fibworker/internal/config"
	apperrors "github.com/agbru/fibworker/internal/errors"
	"github.com/agbru/fibworker/internal/executor"
	"github.com/agbru/fibworker/internal/logging"
	"github.com/agbru/fibworker/internal/metrics"
	"github.com/agbru/fibworker/internal/tui"
	"github.com/agbru/fibworker/internal/ui"
	"github.com/agbru/fibworker/internal/worker"
)

// Application represents the fibworker application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
	Spawner   worker.Spawner
	Recorder  *metrics.Recorder

	// isTerminal is replaced in tests.
	isTerminal func(io.Writer) bool
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithSpawner replaces the spawner chosen from --isolation.
func WithSpawner(s worker.Spawner) AppOption {
	return func(a *Application) { a.Spawner = s }
}

// New creates a new Application instance by parsing command-line arguments.
// args includes the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	programName := "fibworker"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	app := &Application{
		Config:     cfg,
		ErrWriter:  errWriter,
		Recorder:   metrics.NewRecorder(),
		isTerminal: isTerminal,
	}
	for _, opt := range opts {
		opt(app)
	}
	return app, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ui.InitTheme(a.Config.NoColor)

	interactive := !a.Config.NoTUI && a.isTerminal(out)

	logger, closeLog, err := a.newLogger(interactive)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error %v\n", err)
		return apperrors.ExitErrorConfig
	}
	defer closeLog()

	spawner, flushWorkerLog := a.spawner(logger)
	defer flushWorkerLog()

	fg := executor.NewForeground(executor.WithLogger(logger), executor.WithRecorder(a.Recorder))
	bg := executor.NewBackground(spawner, executor.WithLogger(logger), executor.WithRecorder(a.Recorder))
	defer bg.Close()

	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	logger.Info("starting",
		logging.String("version", Version),
		logging.String("isolation", a.Config.Isolation),
		logging.Int64("n", a.Config.N))

	var code int
	if interactive {
		code = tui.Run(ctx, tui.Options{
			Foreground: fg,
			Background: bg,
			N:          a.Config.N,
			Deferral:   a.Config.Deferral,
			Version:    Version,
			Logger:     logger,
		})
	} else {
		code = a.runReport(ctx, out, fg, bg, logger)
	}

	if a.Config.Metrics {
		if err := a.Recorder.WriteText(a.ErrWriter); err != nil {
			logger.Error("writing metrics failed", err)
		}
	}
	return code
}

// runReport runs both executors once and prints the report.
func (a *Application) runReport(ctx context.Context, out io.Writer, fg *executor.Foreground, bg *executor.Background, logger logging.Logger) int {
	opts := cli.Options{
		N:          a.Config.N,
		Isolation:  a.Config.Isolation,
		Quiet:      a.Config.Quiet,
		Details:    a.Config.Details,
		Foreground: fg,
		Background: bg,
		SpinnerOut: a.ErrWriter,
		Logger:     logger,
	}
	if !opts.Quiet {
		cli.PrintExecutionConfig(out, opts)
	}

	report := cli.Run(ctx, opts)
	cli.DisplayReport(out, report, opts.Details)

	if report.WorkerErr != nil {
		return apperrors.ExitCodeFor(report.WorkerErr)
	}
	return apperrors.ExitSuccess
}

// newLogger picks the log sink. The interactive page owns the terminal, so
// it only logs to --log-file; the report logs to stderr.
func (a *Application) newLogger(interactive bool) (*logging.ZerologAdapter, func(), error) {
	level := logging.ParseLevel(a.Config.LogLevel)
	if a.Config.LogFile != "" {
		f, err := os.OpenFile(a.Config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, func() {}, apperrors.WrapError(err, "opening log file %q", a.Config.LogFile)
		}
		return logging.NewLogger(f, "fibworker").Level(level), func() { _ = f.Close() }, nil
	}
	if interactive {
		return logging.Nop(), func() {}, nil
	}
	return logging.NewConsoleLogger(a.ErrWriter, "fibworker", level), func() {}, nil
}

// spawner builds the worker spawner for the configured isolation. The
// returned func flushes any partial line of worker log output.
func (a *Application) spawner(logger logging.Logger) (worker.Spawner, func()) {
	if a.Spawner != nil {
		return a.Spawner, func() {}
	}
	if a.Config.Isolation == config.IsolationGoroutine {
		return worker.InProcessSpawner{Logger: logger}, func() {}
	}
	relay := logging.NewLineWriter(logger, "worker log")
	return worker.ProcessSpawner{
		Args:   []string{worker.Command, "-log-level", a.Config.LogLevel},
		Stderr: relay,
	}, relay.Flush
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
