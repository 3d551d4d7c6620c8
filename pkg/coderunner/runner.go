// Package coderunner executes candidate code submissions against a
// question's test cases. Process languages run one test at a time inside a
// bubblewrap sandbox (tmpfs root, read-only toolchains, no network); SQL
// runs in process against an in-memory sqlite database with the submission
// step locked to read-only.
//
// Per-test failures are results, not errors: the caller gets a pass/fail
// verdict and a human-readable log. Errors are reserved for submissions
// that cannot be judged at all.
package coderunner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"sort"
	"strings"

	"github.com/hireloop/hireloop/pkg/config"
)

// Errors surfaced to the caller instead of a verdict.
var (
	ErrSandboxUnavailable  = errors.New("no sandbox primitive available")
	ErrLanguageUnsupported = errors.New("language not supported")
	ErrNoTests             = errors.New("question has no test cases")
)

// TestCase is one authored test. Non-hidden tests run before hidden ones.
type TestCase struct {
	Input    string
	Expected string
	Hidden   bool
	Ordinal  int
}

// Result is the aggregated verdict for one submission.
type Result struct {
	PassedAll bool
	Log       string
}

// Runner executes submissions. Safe for concurrent use; every test gets
// its own working directory and process tree.
type Runner struct {
	cfg   *config.RunnerConfig
	bwrap string // resolved sandbox binary, empty when unavailable
}

// NewRunner probes the sandbox binary once and keeps the verdict for the
// process lifetime.
func NewRunner(cfg *config.RunnerConfig) *Runner {
	r := &Runner{cfg: cfg, bwrap: resolveBwrap(cfg.BwrapPath)}
	switch {
	case r.bwrap != "":
		slog.Info("Code runner sandbox ready", "bwrap", r.bwrap)
	case cfg.AllowUnsandboxed:
		slog.Warn("Code runner executing WITHOUT a sandbox, development mode only")
	default:
		slog.Warn("No sandbox primitive found, code execution disabled")
	}
	return r
}

func resolveBwrap(configured string) string {
	if configured != "" {
		if _, err := os.Stat(configured); err != nil {
			slog.Warn("Configured bwrap path not usable", "path", configured, "error", err)
			return ""
		}
		return configured
	}
	path, err := exec.LookPath("bwrap")
	if err != nil {
		return ""
	}
	return path
}

// Ready reports whether process languages can execute. SQL needs no
// sandbox and works regardless.
func (r *Runner) Ready() error {
	if r.bwrap == "" && !r.cfg.AllowUnsandboxed {
		return ErrSandboxUnavailable
	}
	return nil
}

// Sandboxed reports whether submissions run under an isolation primitive.
func (r *Runner) Sandboxed() bool {
	return r.bwrap != ""
}

// Run judges one submission. Tests run non-hidden first, then hidden, each
// under the per-test wall-clock limit; the suite stops at the first
// failure. Cancelling ctx kills any in-flight execution.
func (r *Runner) Run(ctx context.Context, language, source string, tests []TestCase) (*Result, error) {
	if len(tests) == 0 {
		return nil, ErrNoTests
	}
	if r.cfg.MaxSourceBytes > 0 && len(source) > r.cfg.MaxSourceBytes {
		return nil, fmt.Errorf("submission exceeds %d bytes", r.cfg.MaxSourceBytes)
	}

	ordered := orderTests(tests)

	if language == "sql" {
		return r.runSQLSuite(ctx, source, ordered)
	}

	spec, ok := languages[language]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLanguageUnsupported, language)
	}
	if err := r.Ready(); err != nil {
		return nil, err
	}

	entry := spec.entryName(source)
	var log strings.Builder
	for i, tc := range ordered {
		outcome, err := r.runProcessTest(ctx, spec, source, entry, tc)
		if err != nil {
			return nil, err
		}
		if failed := r.judge(&log, i+1, tc, outcome); failed {
			return &Result{Log: log.String()}, nil
		}
	}
	return &Result{PassedAll: true, Log: log.String()}, nil
}

// testOutcome is what one execution produced: a trimmed stdout line, or a
// failure description (stderr, timeout, crash).
type testOutcome struct {
	got     string
	failure string
}

// judge appends the per-test log line and reports whether the suite stops.
func (r *Runner) judge(log *strings.Builder, n int, tc TestCase, outcome testOutcome) bool {
	label := fmt.Sprintf("Test %d", n)
	if tc.Hidden {
		label += " (hidden)"
	}

	expected := strings.TrimSpace(tc.Expected)
	if outcome.failure == "" && outcome.got == expected {
		fmt.Fprintf(log, "%s: PASSED\n", label)
		return false
	}

	fmt.Fprintf(log, "%s: FAILED\n", label)
	fmt.Fprintf(log, "  input: %s\n", tc.Input)
	fmt.Fprintf(log, "  expected: %s\n", expected)
	if outcome.failure != "" {
		fmt.Fprintf(log, "  error: %s\n", outcome.failure)
	} else {
		fmt.Fprintf(log, "  got: %s\n", outcome.got)
	}
	return true
}

// orderTests returns non-hidden tests in ordinal order followed by hidden
// tests in ordinal order.
func orderTests(tests []TestCase) []TestCase {
	ordered := make([]TestCase, len(tests))
	copy(ordered, tests)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Hidden != ordered[j].Hidden {
			return !ordered[i].Hidden
		}
		return ordered[i].Ordinal < ordered[j].Ordinal
	})
	return ordered
}
