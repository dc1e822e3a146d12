package protocol

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestEncoder_OneMessagePerLine(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	enc := NewEncoder(&buf)

	if err := enc.Encode(Request{Input: 40}); err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	if err := enc.Encode(Response{Input: 10, Result: 55, Time: "0.01"}); err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}

	want := "{\"input\":40}\n{\"input\":10,\"result\":55,\"time\":\"0.01\"}\n"
	if buf.String() != want {
		t.Errorf("encoded = %q, want %q", buf.String(), want)
	}
}

func TestDecoder_SkipsBlankLines(t *testing.T) {
	t.Parallel()
	dec := NewDecoder(strings.NewReader("\n{\"input\":7}\n\n"))

	var req Request
	if err := dec.Decode(&req); err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if req.Input != 7 {
		t.Errorf("Input = %d, want 7", req.Input)
	}
	if err := dec.Decode(&req); !errors.Is(err, io.EOF) {
		t.Errorf("second Decode = %v, want io.EOF", err)
	}
}

func TestDecoder_Malformed(t *testing.T) {
	t.Parallel()
	dec := NewDecoder(strings.NewReader("not json\n"))

	var req Request
	err := dec.Decode(&req)
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("Decode = %v, want ErrMalformed", err)
	}
}

func TestResponse_Failed(t *testing.T) {
	t.Parallel()
	if (Response{Result: 1}).Failed() {
		t.Error("response without error should not be failed")
	}
	if !(Response{Error: "boom"}).Failed() {
		t.Error("response with error should be failed")
	}
}
