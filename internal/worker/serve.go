package worker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/agbru/fibworker/internal/fibonacci"
	"github.com/agbru/fibworker/internal/format"
	"github.com/agbru/fibworker/internal/logging"
	"github.com/agbru/fibworker/internal/protocol"
)

// ComputeFunc computes the value answered for a request.
type ComputeFunc func(n int64) int64

// Options configures a worker message loop.
type Options struct {
	// Compute defaults to fibonacci.Recursive.
	Compute ComputeFunc
	// Logger defaults to a no-op logger.
	Logger logging.Logger
}

func (o Options) withDefaults() Options {
	if o.Compute == nil {
		o.Compute = fibonacci.Recursive
	}
	if o.Logger == nil {
		o.Logger = logging.Nop()
	}
	return o
}

// Serve runs the worker message loop until in is exhausted, out fails, or
// ctx is canceled. A clean end of input returns nil.
func Serve(ctx context.Context, in io.Reader, out io.Writer, opts Options) error {
	opts = opts.withDefaults()
	dec := protocol.NewDecoder(in)
	enc := protocol.NewEncoder(out)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var req protocol.Request
		err := dec.Decode(&req)
		switch {
		case errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, protocol.ErrMalformed):
			opts.Logger.Warn("rejecting malformed request", logging.Err(err))
			if err := enc.Encode(protocol.Response{Error: err.Error()}); err != nil {
				return err
			}
			continue
		case err != nil:
			return err
		}

		resp := handle(req, opts)
		if err := enc.Encode(resp); err != nil {
			return err
		}
	}
}

// handle computes one response, turning a panic into an error response.
func handle(req protocol.Request, opts Options) (resp protocol.Response) {
	defer func() {
		if r := recover(); r != nil {
			opts.Logger.Error("computation panicked", fmt.Errorf("%v", r), logging.Int64("input", req.Input))
			resp = protocol.Response{Input: req.Input, Error: fmt.Sprint(r)}
		}
	}()

	// A stack overflow is fatal even here; refuse it so a goroutine worker
	// cannot take the parent down.
	if err := fibonacci.CheckDepth(req.Input); err != nil {
		opts.Logger.Warn("rejecting request", logging.Err(err))
		return protocol.Response{Input: req.Input, Error: err.Error()}
	}

	opts.Logger.Debug("computing", logging.Int64("input", req.Input))
	start := time.Now()
	result := opts.Compute(req.Input)
	elapsed := time.Since(start)
	opts.Logger.Debug("computed", logging.Int64("input", req.Input), logging.Duration("elapsed", elapsed))

	return protocol.Response{
		Input:  req.Input,
		Result: result,
		Time:   format.Millis(elapsed),
	}
}
