package worker

import (
	"context"
	"io"

	"github.com/agbru/fibworker/internal/logging"
)

// InProcessSpawner runs each worker on its own goroutine. Requests and
// responses still cross an io.Pipe as encoded messages. A superseded worker
// keeps computing until Recursive returns (see ErrTerminated), so rapid
// redispatching stacks busy goroutines.
type InProcessSpawner struct {
	Compute ComputeFunc
	Logger  logging.Logger
}

// Spawn starts a new worker goroutine.
func (s InProcessSpawner) Spawn(ctx context.Context) (Handle, error) {
	reqR, reqW := io.Pipe()
	respR, respW := io.Pipe()

	serveDone := make(chan error, 1)
	h := newPipeHandle(reqW, func() error {
		_ = reqR.CloseWithError(ErrTerminated)
		return respR.CloseWithError(ErrTerminated)
	})

	// Serve outlives the spawning call; only Terminate ends it.
	serveCtx := context.WithoutCancel(ctx)
	go func() {
		err := Serve(serveCtx, reqR, respW, Options{Compute: s.Compute, Logger: s.Logger})
		_ = respW.CloseWithError(err)
		serveDone <- err
	}()

	go h.readLoop(respR, func() error {
		select {
		case err := <-serveDone:
			return err
		case <-h.done:
			// The computation may still be running and burning a core until it
			// returns; nobody reads its result.
			return ErrTerminated
		}
	})
	return h, nil
}

var _ Spawner = InProcessSpawner{}
