package executor

import (
	"errors"
	"time"

	"github.com/agbru/fibworker/internal/format"
	"github.com/agbru/fibworker/internal/logging"
	"github.com/agbru/fibworker/internal/metrics"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("github.com/agbru/fibworker/internal/executor")

// ErrSuperseded is returned by Job.Wait when a newer Dispatch replaced the job.
var ErrSuperseded = errors.New("background computation superseded")

// Outcome is the result of one computation.
type Outcome struct {
	Input   int64
	Result  int64
	Elapsed time.Duration
}

// String returns the two-line display text.
func (o Outcome) String() string {
	return format.FormatResult(o.Input, o.Result, o.Elapsed)
}

// Option configures an executor.
type Option func(*options)

type options struct {
	logger   logging.Logger
	recorder *metrics.Recorder
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l logging.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithRecorder records runs in r.
func WithRecorder(r *metrics.Recorder) Option {
	return func(o *options) { o.recorder = r }
}

func buildOptions(opts []Option) options {
	o := options{logger: logging.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
