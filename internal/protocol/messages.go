// Package protocol defines the messages exchanged between the primary
// context and an isolated worker. Messages are JSON objects, one per line,
// and are always copied: the two sides never share memory.
package protocol

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// MaxMessageSize bounds a single encoded line.
const MaxMessageSize = 64 * 1024

// Request asks the worker to compute Fibonacci(Input).
type Request struct {
	Input int64 `json:"input"`
}

// Response is the worker's answer to a single Request.
//
// Time is the worker-side elapsed time in milliseconds with exactly two
// fraction digits. When Error is non-empty the other fields are meaningless.
type Response struct {
	Input  int64  `json:"input"`
	Result int64  `json:"result"`
	Time   string `json:"time"`
	Error  string `json:"error,omitempty"`
}

// Failed reports whether the worker answered with an error.
func (r Response) Failed() bool { return r.Error != "" }

// Encoder writes newline-delimited messages.
type Encoder struct {
	enc *json.Encoder
}

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{enc: json.NewEncoder(w)}
}

// Encode writes v followed by a newline.
func (e *Encoder) Encode(v any) error {
	if err := e.enc.Encode(v); err != nil {
		return fmt.Errorf("encode message: %w", err)
	}
	return nil
}

// Decoder reads newline-delimited messages.
type Decoder struct {
	sc *bufio.Scanner
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), MaxMessageSize)
	return &Decoder{sc: sc}
}

// ErrMalformed wraps lines that are not valid messages.
var ErrMalformed = errors.New("malformed message")

// Decode reads the next non-empty line into v. It returns io.EOF when the
// stream ends cleanly between messages.
func (d *Decoder) Decode(v any) error {
	for d.sc.Scan() {
		line := d.sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if err := json.Unmarshal(line, v); err != nil {
			return fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		return nil
	}
	if err := d.sc.Err(); err != nil {
		return fmt.Errorf("read message: %w", err)
	}
	return io.EOF
}
