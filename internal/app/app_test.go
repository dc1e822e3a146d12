package app

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperrors "github.com/agbru/fibworker/internal/errors"
	"github.com/agbru/fibworker/internal/worker"
)

func run(t *testing.T, args []string, opts ...AppOption) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	app, err := New(append([]string{"fibworker"}, args...), &errOut, opts...)
	if err != nil {
		t.Fatalf("New(%v): %v", args, err)
	}
	code = app.Run(context.Background(), &out)
	return code, out.String(), errOut.String()
}

func TestNew_Errors(t *testing.T) {
	if _, err := New([]string{"fibworker", "-h"}, &bytes.Buffer{}); !IsHelpError(err) {
		t.Errorf("-h: err = %v, want help error", err)
	}
	_, err := New([]string{"fibworker", "--isolation", "fork"}, &bytes.Buffer{})
	if apperrors.ExitCodeFor(err) != apperrors.ExitErrorConfig {
		t.Errorf("bad isolation: exit code %d, want %d", apperrors.ExitCodeFor(err), apperrors.ExitErrorConfig)
	}
	if IsHelpError(err) {
		t.Error("config error reported as help")
	}

	// The main-thread run would recurse deep enough to kill the process.
	_, err = New([]string{"fibworker", "--no-tui", "-n", "100000000"}, &bytes.Buffer{})
	if apperrors.ExitCodeFor(err) != apperrors.ExitErrorConfig {
		t.Errorf("huge n: exit code %d, want %d", apperrors.ExitCodeFor(err), apperrors.ExitErrorConfig)
	}
}

func TestRun_Report(t *testing.T) {
	code, stdout, _ := run(t, []string{"--no-tui", "--isolation", "goroutine", "-n", "10"})
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d", code)
	}
	if got := strings.Count(stdout, "Fibonacci(10) = 55\nCalculation time: "); got != 2 {
		t.Errorf("expected both blocks, found %d:\n%s", got, stdout)
	}
	if !strings.Contains(stdout, "--- Execution Configuration ---") {
		t.Error("header missing outside quiet mode")
	}
}

// A buffer is not a terminal, so the report runs even without --no-tui.
func TestRun_NonTerminalFallsBackToReport(t *testing.T) {
	code, stdout, _ := run(t, []string{"--isolation", "goroutine", "-n", "1", "-q"})
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d", code)
	}
	if strings.Count(stdout, "Fibonacci(1) = 1\n") != 2 {
		t.Errorf("unexpected report:\n%s", stdout)
	}
	if strings.Contains(stdout, "Execution Configuration") {
		t.Error("quiet mode printed the header")
	}
}

func TestRun_DetailsAndMetrics(t *testing.T) {
	code, stdout, stderr := run(t, []string{"--no-tui", "-q", "--isolation", "goroutine", "-n", "20", "--details", "--metrics"})
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(stdout, "Recursive calls per run: 21,891") || !strings.Contains(stdout, "Contexts agree: yes") {
		t.Errorf("details missing:\n%s", stdout)
	}
	for _, want := range []string{
		`fibworker_runs_total{executor="background"} 1`,
		`fibworker_runs_total{executor="foreground"} 1`,
	} {
		if !strings.Contains(stderr, want) {
			t.Errorf("metrics dump missing %q", want)
		}
	}
}

func TestRun_WorkerFailureExitCode(t *testing.T) {
	spawner := worker.InProcessSpawner{Compute: func(int64) int64 { panic("boom") }}
	code, stdout, _ := run(t, []string{"--no-tui", "-q", "-n", "8"}, WithSpawner(spawner))

	if code != apperrors.ExitErrorWorker {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorWorker)
	}
	if !strings.Contains(stdout, "Error: worker compute: boom") {
		t.Errorf("worker error not reported:\n%s", stdout)
	}
	if !strings.Contains(stdout, "Fibonacci(8) = 21\n") {
		t.Errorf("main-thread result missing:\n%s", stdout)
	}
}

func TestRun_LogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fibworker.log")
	code, _, stderr := run(t, []string{"--no-tui", "-q", "--isolation", "goroutine", "-n", "5",
		"--log-file", path, "--log-level", "info"})
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d", code)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if !strings.Contains(string(data), `"message":"starting"`) {
		t.Errorf("log file missing start entry:\n%s", data)
	}
	if strings.Contains(stderr, "starting") {
		t.Error("logs leaked to stderr while a log file is set")
	}
}

func TestRun_BadLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "x.log")
	code, _, stderr := run(t, []string{"--no-tui", "--log-file", path})
	if code != apperrors.ExitErrorConfig {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorConfig)
	}
	if !strings.Contains(stderr, "Error opening log file") || !strings.Contains(stderr, "x.log") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestNewLogger_WrapsOpenError(t *testing.T) {
	a := &Application{ErrWriter: &bytes.Buffer{}}
	a.Config.LogFile = filepath.Join(t.TempDir(), "missing", "x.log")

	_, _, err := a.newLogger(false)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("err = %v, want it to wrap fs.ErrNotExist", err)
	}
}

func TestHasVersionFlag(t *testing.T) {
	tests := []struct {
		args []string
		want bool
	}{
		{[]string{"--version"}, true},
		{[]string{"-n", "3", "-V"}, true},
		{[]string{"-n", "3"}, false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := HasVersionFlag(tt.args); got != tt.want {
			t.Errorf("HasVersionFlag(%v) = %v, want %v", tt.args, got, tt.want)
		}
	}
}

func TestPrintVersion(t *testing.T) {
	var buf bytes.Buffer
	PrintVersion(&buf)
	if !strings.HasPrefix(buf.String(), "fibworker "+Version+"\n") {
		t.Errorf("PrintVersion = %q", buf.String())
	}
}
