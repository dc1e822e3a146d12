package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func decodeEntry(t *testing.T, raw []byte) map[string]any {
	t.Helper()
	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(raw), &entry); err != nil {
		t.Fatalf("log output is not one JSON object: %v\n%s", err, raw)
	}
	return entry
}

func TestFieldHelpers(t *testing.T) {
	boom := errors.New("boom")
	tests := []struct {
		name  string
		field Field
		key   string
		value any
	}{
		{"String", String("executor", "background"), "executor", "background"},
		{"Int", Int("clicks", 7), "clicks", 7},
		{"Int64", Int64("input", 40), "input", int64(40)},
		{"Uint64", Uint64("calls", 331160281), "calls", uint64(331160281)},
		{"Float64", Float64("cpu", 12.5), "cpu", 12.5},
		{"Duration", Duration("elapsed", time.Millisecond), "elapsed", time.Millisecond},
		{"Err", Err(boom), "error", boom},
		{"Err nil", Err(nil), "error", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.field.Key != tt.key || tt.field.Value != tt.value {
				t.Errorf("got %s=%v, want %s=%v", tt.field.Key, tt.field.Value, tt.key, tt.value)
			}
		})
	}
}

func TestNewLogger_JSONEntry(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "executor")

	logger.Info("run finished",
		String("executor", "foreground"),
		Int64("input", 10),
		Int64("result", 55),
		Duration("elapsed", 2*time.Millisecond),
	)

	entry := decodeEntry(t, buf.Bytes())
	want := map[string]any{
		"level":     "info",
		"message":   "run finished",
		"component": "executor",
		"executor":  "foreground",
		"input":     float64(10),
		"result":    float64(55),
	}
	for k, v := range want {
		if entry[k] != v {
			t.Errorf("entry[%q] = %v, want %v", k, entry[k], v)
		}
	}
	if _, ok := entry["time"]; !ok {
		t.Error("entry has no timestamp")
	}
	if _, ok := entry["elapsed"]; !ok {
		t.Error("entry has no elapsed field")
	}
}

func TestNewLogger_FiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, "worker").Debug("request received", Int64("input", 3))
	if buf.Len() != 0 {
		t.Errorf("debug entry written at info level: %s", buf.String())
	}
}

func TestZerologAdapter_Levels(t *testing.T) {
	workerErr := errors.New("worker exit: signal: killed")
	tests := []struct {
		name      string
		log       func(Logger)
		wantLevel string
		wantMsg   string
	}{
		{"Debug", func(l Logger) { l.Debug("spawned") }, "debug", "spawned"},
		{"Info", func(l Logger) { l.Info("dispatched") }, "info", "dispatched"},
		{"Warn", func(l Logger) { l.Warn("superseded") }, "warn", "superseded"},
		{"Error", func(l Logger) { l.Error("wait failed", workerErr) }, "error", "wait failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(NewZerologAdapter(zerolog.New(&buf).Level(zerolog.DebugLevel)))

			entry := decodeEntry(t, buf.Bytes())
			if entry["level"] != tt.wantLevel || entry["message"] != tt.wantMsg {
				t.Errorf("got level=%v message=%v, want %s %q", entry["level"], entry["message"], tt.wantLevel, tt.wantMsg)
			}
			if tt.wantLevel == "error" && entry["error"] != workerErr.Error() {
				t.Errorf("error field = %v, want %q", entry["error"], workerErr.Error())
			}
		})
	}
}

func TestZerologAdapter_FieldTypes(t *testing.T) {
	var buf bytes.Buffer
	NewZerologAdapter(zerolog.New(&buf)).Info("typed",
		Field{Key: "flag", Value: true},
		Field{Key: "cause", Value: errors.New("eof")},
		Field{Key: "other", Value: []int{1, 2}},
	)

	entry := decodeEntry(t, buf.Bytes())
	if entry["flag"] != true {
		t.Errorf("flag = %v, want true", entry["flag"])
	}
	if entry["cause"] != "eof" {
		t.Errorf("cause = %v, want eof", entry["cause"])
	}
	if _, ok := entry["other"].([]any); !ok {
		t.Errorf("other = %#v, want a JSON array", entry["other"])
	}
}

func TestZerologAdapter_LevelAndWith(t *testing.T) {
	var buf bytes.Buffer
	base := NewLogger(&buf, "tui")

	base.Level(zerolog.ErrorLevel).Warn("dropped")
	if buf.Len() != 0 {
		t.Fatalf("warn entry passed an error-level filter: %s", buf.String())
	}

	base.With(String("executor", "background")).Warn("superseded", Int64("job", 2))
	entry := decodeEntry(t, buf.Bytes())
	if entry["executor"] != "background" || entry["job"] != float64(2) {
		t.Errorf("child logger fields missing: %v", entry)
	}
}

func TestNop(t *testing.T) {
	// Must not panic or write anywhere.
	l := Nop()
	l.Info("ignored", Int("n", 1))
	l.Error("ignored", errors.New("x"))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"WARN", zerolog.WarnLevel},
		{" error ", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"chatty", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLineWriter(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).Level(zerolog.DebugLevel)
	w := NewLineWriter(NewZerologAdapter(zl), "worker stderr")

	if _, err := w.Write([]byte("first line\nsecond ")); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if !strings.Contains(buf.String(), "first line") {
		t.Errorf("complete line should be logged, got: %s", buf.String())
	}
	if strings.Contains(buf.String(), "second") {
		t.Errorf("partial line should be buffered, got: %s", buf.String())
	}

	_, _ = w.Write([]byte("half\r\n\n"))
	if !strings.Contains(buf.String(), `"line":"second half"`) {
		t.Errorf("joined line should be logged without CR, got: %s", buf.String())
	}
	if n := strings.Count(buf.String(), "\n"); n != 2 {
		t.Errorf("blank lines should be skipped, got %d entries", n)
	}

	_, _ = w.Write([]byte("tail"))
	w.Flush()
	if !strings.Contains(buf.String(), "tail") {
		t.Errorf("Flush should log the buffered remainder, got: %s", buf.String())
	}
}
