//go:generate mockgen -source=handle.go -destination=mocks/mock_handle.go -package=mocks

package worker

import (
	"context"
	"errors"
	"io"
	"sync"

	apperrors "github.com/agbru/fibworker/internal/errors"
	"github.com/agbru/fibworker/internal/protocol"
)

// ErrTerminated is returned by Post on a terminated handle.
//
// Terminating a process worker kills it. Terminating a goroutine worker only
// disconnects it: Go cannot stop a running goroutine, so the computation
// keeps its core busy until it returns and its result is then discarded.
var ErrTerminated = errors.New("worker terminated")

// Event is a single message from a worker: either a response or a failure.
type Event struct {
	Response protocol.Response
	// Err is set when the worker failed. It is an apperrors.WorkerError.
	Err error
}

// Handle is the live reference to one isolated worker.
type Handle interface {
	// Post sends n to the worker. The value is copied.
	Post(n int64) error
	// Events delivers responses and failures. It is closed once the worker
	// is gone. No event is delivered after Terminate returns.
	Events() <-chan Event
	// Done is closed by Terminate.
	Done() <-chan struct{}
	// Terminate stops the worker unconditionally. It is idempotent.
	Terminate()
}

// Spawner creates fresh workers.
type Spawner interface {
	Spawn(ctx context.Context) (Handle, error)
}

// pipeHandle is the Handle shared by both spawners: requests go out through
// stdin, responses come back through a reader goroutine.
type pipeHandle struct {
	mu     sync.Mutex
	stdin  io.WriteCloser
	enc    *protocol.Encoder
	events chan Event
	done   chan struct{}
	once   sync.Once
	kill   func() error
}

func newPipeHandle(stdin io.WriteCloser, kill func() error) *pipeHandle {
	return &pipeHandle{
		stdin:  stdin,
		enc:    protocol.NewEncoder(stdin),
		events: make(chan Event),
		done:   make(chan struct{}),
		kill:   kill,
	}
}

func (h *pipeHandle) Post(n int64) error {
	if h.terminated() {
		return ErrTerminated
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.enc.Encode(protocol.Request{Input: n}); err != nil {
		return apperrors.WorkerError{Op: "post", Cause: err}
	}
	return nil
}

func (h *pipeHandle) Events() <-chan Event { return h.events }

func (h *pipeHandle) Done() <-chan struct{} { return h.done }

func (h *pipeHandle) Terminate() {
	h.once.Do(func() {
		close(h.done)
		_ = h.stdin.Close()
		if h.kill != nil {
			_ = h.kill()
		}
	})
}

func (h *pipeHandle) terminated() bool {
	select {
	case <-h.done:
		return true
	default:
		return false
	}
}

// emit delivers ev unless the handle is, or becomes, terminated.
func (h *pipeHandle) emit(ev Event) bool {
	if h.terminated() {
		return false
	}
	select {
	case h.events <- ev:
		return true
	case <-h.done:
		return false
	}
}

// readLoop decodes responses from stdout until the stream ends. wait is
// called once the stream is exhausted and reports how the worker ended.
func (h *pipeHandle) readLoop(stdout io.Reader, wait func() error) {
	defer close(h.events)

	dec := protocol.NewDecoder(stdout)
	for {
		var resp protocol.Response
		err := dec.Decode(&resp)
		if errors.Is(err, protocol.ErrMalformed) {
			h.emit(Event{Err: apperrors.WorkerError{Op: "decode", Cause: err}})
			continue
		}
		if err != nil {
			exitErr := wait()
			if h.terminated() {
				return
			}
			if exitErr == nil {
				exitErr = io.ErrUnexpectedEOF
			}
			h.emit(Event{Err: apperrors.WorkerError{Op: "exit", Cause: exitErr}})
			return
		}

		if resp.Failed() {
			h.emit(Event{Response: resp, Err: apperrors.WorkerError{Op: "compute", Cause: errors.New(resp.Error)}})
			continue
		}
		h.emit(Event{Response: resp})
	}
}
