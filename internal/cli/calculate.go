package cli

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/briandowns/spinner"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/fibworker/internal/executor"
	"github.com/agbru/fibworker/internal/logging"
	"github.com/agbru/fibworker/internal/ui"
)

// Options configures one non-interactive run.
type Options struct {
	N int64
	// Isolation names the worker mode in the report header.
	Isolation  string
	Quiet      bool
	Details    bool
	Foreground *executor.Foreground
	Background *executor.Background
	// SpinnerOut receives the wait indicator; usually stderr.
	SpinnerOut io.Writer
	Logger     logging.Logger
}

// Report holds the outcome of both execution contexts for one input.
type Report struct {
	N         int64
	Worker    executor.Outcome
	WorkerErr error
	Main      executor.Outcome
}

// Agree reports whether both contexts produced the same value.
func (r Report) Agree() bool {
	return r.WorkerErr == nil && r.Worker.Result == r.Main.Result
}

// Run computes Fibonacci(N) in both contexts at once: the worker is
// dispatched first and awaited on its own goroutine while the calling
// goroutine runs the blocking computation.
func Run(ctx context.Context, opts Options) Report {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	report := Report{N: opts.N}

	var s Spinner = nopSpinner{}
	if !opts.Quiet && opts.SpinnerOut != nil {
		s = newSpinner(spinner.WithWriter(opts.SpinnerOut), spinner.WithHiddenCursor(true))
	}
	s.UpdateSuffix(fmt.Sprintf(" computing Fibonacci(%d) in both contexts...", opts.N))
	s.Start()
	defer s.Stop()

	g, gctx := errgroup.WithContext(ctx)
	job, err := opts.Background.Dispatch(gctx, opts.N)
	if err != nil {
		report.WorkerErr = err
	} else {
		g.Go(func() error {
			out, err := job.Wait(gctx)
			report.Worker = out
			return err
		})
	}

	report.Main = opts.Foreground.Run(ctx, opts.N)
	s.UpdateSuffix(" waiting for the worker...")

	if err := g.Wait(); err != nil {
		report.WorkerErr = err
	}
	if report.WorkerErr != nil {
		logger.Error("worker run failed", report.WorkerErr, logging.Int64("input", opts.N))
	}
	return report
}

// PrintExecutionConfig displays what is about to run.
func PrintExecutionConfig(out io.Writer, opts Options) {
	theme := ui.GetCurrentTheme()
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Computing %s with naive recursion on an isolated worker (%s) and on the main goroutine.\n",
		theme.Paint(theme.Bold, fmt.Sprintf("Fibonacci(%d)", opts.N)), opts.Isolation)
	fmt.Fprintf(out, "Environment: %d logical processors, Go %s.\n\n", runtime.NumCPU(), runtime.Version())
}
