// Package config parses the command line and environment into an AppConfig.
package config

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	apperrors "github.com/agbru/fibworker/internal/errors"
	"github.com/agbru/fibworker/internal/fibonacci"
)

// EnvPrefix is prepended to every environment override key.
const EnvPrefix = "FIBWORKER_"

// Isolation modes for the background worker.
const (
	IsolationProcess   = "process"
	IsolationGoroutine = "goroutine"
)

// DefaultDeferral is how long the foreground path waits before blocking, so
// that "Calculating..." is painted first. One 60fps frame is ~16ms.
const DefaultDeferral = 25 * time.Millisecond

// AppConfig holds the resolved settings of one run.
type AppConfig struct {
	// N is the initial input value. Bounds are advisory only.
	N int64
	// Isolation selects how background workers are spawned.
	Isolation string
	// Deferral delays the foreground computation after the status update.
	Deferral time.Duration
	// NoTUI forces the non-interactive report.
	NoTUI bool
	// NoColor disables colored output.
	NoColor bool
	// Quiet suppresses the spinner and headers in the report.
	Quiet bool
	// Details adds the call count and overflow notice to the report.
	Details bool
	// LogFile receives logs in interactive mode. Empty discards them.
	LogFile string
	// LogLevel is a zerolog level name.
	LogLevel string
	// Metrics dumps the Prometheus text exposition to stderr on exit.
	Metrics bool
	// Version prints the version and exits.
	Version bool
}

// Validate checks the configuration for semantic errors.
func (c AppConfig) Validate() error {
	switch c.Isolation {
	case IsolationProcess, IsolationGoroutine:
	default:
		return apperrors.NewConfigError("unknown isolation %q: expected %s or %s",
			c.Isolation, IsolationProcess, IsolationGoroutine)
	}
	// The main-thread computation always runs in this process.
	if err := fibonacci.CheckDepth(c.N); err != nil {
		return apperrors.NewConfigError("-n %d is above the recursion limit of %d", c.N, fibonacci.MaxDepth)
	}
	if c.Deferral < 0 {
		return apperrors.NewConfigError("deferral must not be negative, got %s", c.Deferral)
	}
	if c.LogLevel != "" && !validLevel(c.LogLevel) {
		return apperrors.NewConfigError("unknown log level %q", c.LogLevel)
	}
	return nil
}

func validLevel(name string) bool {
	switch strings.ToLower(name) {
	case "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled":
		return true
	}
	return false
}

// ParseConfig parses args (without the program name) into an AppConfig.
// Priority: flags, then FIBWORKER_* environment variables, then defaults.
// Unparsable flags are reported on errWriter and returned as a ConfigError;
// -h returns flag.ErrHelp unchanged.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)
	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [flags]\n\n", programName)
		fmt.Fprintln(errWriter, "Compares a blocking computation on the UI loop with one on an isolated worker.")
		fmt.Fprintln(errWriter)
		fs.PrintDefaults()
	}

	config := AppConfig{}
	fs.Int64Var(&config.N, "n", fibonacci.DefaultN,
		fmt.Sprintf("Fibonacci index to compute (advisory range %d-%d, at most %d).",
			fibonacci.AdvisoryMin, fibonacci.AdvisoryMax, fibonacci.MaxDepth))
	fs.StringVar(&config.Isolation, "isolation", IsolationProcess,
		"Background worker isolation: process or goroutine.\n"+
			"A process worker is killed when superseded. A goroutine worker only has\n"+
			"its result dropped and keeps a core busy until the computation ends.")
	fs.DurationVar(&config.Deferral, "deferral", DefaultDeferral, "Delay before the main-thread computation starts.")
	fs.BoolVar(&config.NoTUI, "no-tui", false, "Print a one-shot report instead of the interactive interface.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colors (also honours NO_COLOR).")
	fs.BoolVar(&config.Quiet, "quiet", false, "Report mode: print results only.")
	fs.BoolVar(&config.Quiet, "q", false, "Shorthand for --quiet.")
	fs.BoolVar(&config.Details, "details", false, "Report mode: show call count and overflow notice.")
	fs.StringVar(&config.LogFile, "log-file", "", "Write logs to this file in interactive mode.")
	fs.StringVar(&config.LogLevel, "log-level", "warn", "Log level (debug, info, warn, error).")
	fs.BoolVar(&config.Metrics, "metrics", false, "Write run metrics to stderr on exit.")
	fs.BoolVar(&config.Version, "version", false, "Print version information and exit.")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return AppConfig{}, err
		}
		return AppConfig{}, apperrors.NewConfigError("%v", err)
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	applyEnvOverrides(&config, fs)
	config.Isolation = strings.ToLower(config.Isolation)

	if err := config.Validate(); err != nil {
		fmt.Fprintln(errWriter, "Configuration error:", err)
		return AppConfig{}, err
	}
	return config, nil
}

