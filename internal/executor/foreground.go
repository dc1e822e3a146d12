package executor

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/fibworker/internal/fibonacci"
	"github.com/agbru/fibworker/internal/logging"
	"github.com/agbru/fibworker/internal/metrics"
)

// Foreground computes on the calling goroutine.
type Foreground struct {
	opts options
}

// NewForeground creates a foreground executor.
func NewForeground(opts ...Option) *Foreground {
	return &Foreground{opts: buildOptions(opts)}
}

// Run computes Fibonacci(n) synchronously. There is no suspension point
// inside the computation: ctx is only used for tracing.
//
// n must pass fibonacci.CheckDepth. Deeper recursion overflows the stack,
// which ends the whole process.
func (f *Foreground) Run(ctx context.Context, n int64) Outcome {
	_, span := tracer.Start(ctx, "foreground.run", trace.WithAttributes(attribute.Int64("fib.input", n)))
	defer span.End()

	f.opts.logger.Debug("foreground computation started", logging.Int64("input", n))
	start := time.Now()
	result := fibonacci.Recursive(n)
	elapsed := time.Since(start)

	f.opts.recorder.ObserveRun(metrics.Foreground, elapsed)
	f.opts.logger.Info("foreground computation done",
		logging.Int64("input", n), logging.Duration("elapsed", elapsed))

	return Outcome{Input: n, Result: result, Elapsed: elapsed}
}
