package executor

import (
	"context"
	"errors"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/agbru/fibworker/internal/errors"
	"github.com/agbru/fibworker/internal/format"
	"github.com/agbru/fibworker/internal/logging"
	"github.com/agbru/fibworker/internal/metrics"
	"github.com/agbru/fibworker/internal/worker"
)

// Background owns at most one live worker.
type Background struct {
	spawner worker.Spawner
	opts    options

	mu      sync.Mutex
	current *Job
	nextID  uint64
}

// NewBackground creates a background executor spawning workers from s.
func NewBackground(s worker.Spawner, opts ...Option) *Background {
	return &Background{spawner: s, opts: buildOptions(opts)}
}

// Job is one dispatched background computation.
type Job struct {
	ID      uint64
	Input   int64
	Started time.Time

	handle   worker.Handle
	owner    *Background
	finished atomic.Bool
}

// Dispatch terminates the current worker, if any, spawns a fresh one and
// sends it n. The returned job is the only one whose result may be observed
// until the next Dispatch.
func (b *Background) Dispatch(ctx context.Context, n int64) (*Job, error) {
	ctx, span := tracer.Start(ctx, "background.dispatch", trace.WithAttributes(attribute.Int64("fib.input", n)))
	defer span.End()

	b.mu.Lock()
	defer b.mu.Unlock()

	b.retireLocked()
	b.nextID++
	id := b.nextID

	h, err := b.spawner.Spawn(ctx)
	if err != nil {
		return nil, b.dispatchFailed(span, id, wrapWorker("spawn", err))
	}
	if err := h.Post(n); err != nil {
		h.Terminate()
		return nil, b.dispatchFailed(span, id, wrapWorker("post", err))
	}

	job := &Job{ID: id, Input: n, Started: time.Now(), handle: h, owner: b}
	b.current = job
	span.SetAttributes(attribute.Int64("fib.job", int64(id)))
	b.opts.logger.Debug("background job dispatched", logging.Uint64("job", id), logging.Int64("input", n))
	return job, nil
}

// retireLocked terminates the current handle. Callers hold b.mu.
func (b *Background) retireLocked() {
	prev := b.current
	if prev == nil {
		return
	}
	b.current = nil
	prev.handle.Terminate()
	if !prev.finished.Load() {
		b.opts.recorder.ObserveSuperseded()
		b.opts.logger.Info("background job superseded",
			logging.Uint64("job", prev.ID), logging.Int64("input", prev.Input))
	}
}

func (b *Background) dispatchFailed(span trace.Span, id uint64, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	b.opts.recorder.ObserveFailure(metrics.Background)
	b.opts.logger.Error("background dispatch failed", err, logging.Uint64("job", id))
	return err
}

// IsCurrent reports whether id names the live job.
func (b *Background) IsCurrent(id uint64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current != nil && b.current.ID == id
}

// Active reports whether a worker handle is live.
func (b *Background) Active() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current != nil
}

// Close terminates the live worker, if any.
func (b *Background) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.retireLocked()
}

// Wait blocks until the worker answers, fails, or the job is superseded.
// A superseded job always returns ErrSuperseded, even if its worker had
// already produced a value.
func (j *Job) Wait(ctx context.Context) (Outcome, error) {
	ctx, span := tracer.Start(ctx, "background.wait", trace.WithAttributes(attribute.Int64("fib.job", int64(j.ID))))
	defer span.End()

	select {
	case ev, ok := <-j.handle.Events():
		if j.superseded() {
			return Outcome{}, ErrSuperseded
		}
		j.finished.Store(true)
		if !ok {
			ev.Err = apperrors.WorkerError{Op: "exit", Cause: io.ErrUnexpectedEOF}
		}
		if ev.Err != nil {
			return Outcome{Input: j.Input}, j.fail(span, ev.Err)
		}
		elapsed, err := format.ParseMillis(ev.Response.Time)
		if err != nil {
			return Outcome{Input: j.Input}, j.fail(span, apperrors.WorkerError{Op: "decode", Cause: err})
		}
		j.owner.opts.recorder.ObserveRun(metrics.Background, elapsed)
		j.owner.opts.logger.Info("background computation done",
			logging.Uint64("job", j.ID), logging.Int64("input", ev.Response.Input), logging.Duration("elapsed", elapsed))
		return Outcome{Input: ev.Response.Input, Result: ev.Response.Result, Elapsed: elapsed}, nil

	case <-j.handle.Done():
		return Outcome{}, ErrSuperseded

	case <-ctx.Done():
		return Outcome{}, ctx.Err()
	}
}

func (j *Job) superseded() bool {
	select {
	case <-j.handle.Done():
		return true
	default:
		return false
	}
}

func (j *Job) fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	j.owner.opts.recorder.ObserveFailure(metrics.Background)
	j.owner.opts.logger.Error("background computation failed", err, logging.Uint64("job", j.ID))
	return err
}

// wrapWorker keeps an existing WorkerError and wraps anything else.
func wrapWorker(op string, err error) error {
	var workerErr apperrors.WorkerError
	if errors.As(err, &workerErr) {
		return err
	}
	return apperrors.WorkerError{Op: op, Cause: err}
}
