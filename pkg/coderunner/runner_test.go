package coderunner

import (
	"context"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/hireloop/pkg/config"
)

// newUnsandboxedRunner builds a runner that deterministically runs without
// bubblewrap, so tests behave the same on developer machines and CI.
func newUnsandboxedRunner(t *testing.T) *Runner {
	t.Helper()
	cfg := config.DefaultRunnerConfig()
	cfg.BwrapPath = filepath.Join(t.TempDir(), "missing-bwrap")
	cfg.AllowUnsandboxed = true
	cfg.WorkDir = t.TempDir()
	return NewRunner(cfg)
}

// requireInterpreter skips tests that need a language toolchain the host
// does not have.
func requireInterpreter(t *testing.T, bin string) {
	t.Helper()
	if _, err := exec.LookPath(bin); err != nil {
		t.Skipf("%s not installed", bin)
	}
}

func TestRunRejectsEmptyTestSuite(t *testing.T) {
	r := newUnsandboxedRunner(t)

	_, err := r.Run(context.Background(), "python", "def f(): pass", nil)
	require.ErrorIs(t, err, ErrNoTests)
}

func TestRunRejectsUnsupportedLanguage(t *testing.T) {
	r := newUnsandboxedRunner(t)

	_, err := r.Run(context.Background(), "cobol", "IDENTIFICATION DIVISION.", []TestCase{{Input: "1", Expected: "1"}})
	require.ErrorIs(t, err, ErrLanguageUnsupported)
	assert.Contains(t, err.Error(), "cobol")
}

func TestRunRejectsOversizedSource(t *testing.T) {
	r := newUnsandboxedRunner(t)
	r.cfg.MaxSourceBytes = 16

	_, err := r.Run(context.Background(), "python", strings.Repeat("x", 64), []TestCase{{Input: "1", Expected: "1"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds")
}

func TestRunRefusesProcessLanguagesWithoutSandbox(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.BwrapPath = filepath.Join(t.TempDir(), "missing-bwrap")
	cfg.AllowUnsandboxed = false
	r := NewRunner(cfg)

	require.ErrorIs(t, r.Ready(), ErrSandboxUnavailable)
	assert.False(t, r.Sandboxed())

	_, err := r.Run(context.Background(), "python", "def f(): pass", []TestCase{{Input: "1", Expected: "1"}})
	require.ErrorIs(t, err, ErrSandboxUnavailable)
}

func TestSQLRunsWithoutSandbox(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.BwrapPath = filepath.Join(t.TempDir(), "missing-bwrap")
	cfg.AllowUnsandboxed = false
	r := NewRunner(cfg)

	res, err := r.Run(context.Background(), "sql",
		"SELECT 1",
		[]TestCase{{Input: "SELECT 0", Expected: "1", Ordinal: 1}})
	require.NoError(t, err)
	assert.True(t, res.PassedAll)
}

func TestCanceledContextIsNotJudged(t *testing.T) {
	r := newUnsandboxedRunner(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := r.Run(ctx, "python", "def f(x):\n    return x", []TestCase{{Input: "1", Expected: "1"}})
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, res)
}

func TestOrderTestsRunsHiddenLast(t *testing.T) {
	tests := []TestCase{
		{Input: "c", Hidden: true, Ordinal: 1},
		{Input: "b", Ordinal: 2},
		{Input: "a", Ordinal: 1},
		{Input: "d", Hidden: true, Ordinal: 2},
	}

	ordered := orderTests(tests)

	var inputs []string
	for _, tc := range ordered {
		inputs = append(inputs, tc.Input)
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, inputs)

	// The caller's slice is untouched.
	assert.Equal(t, "c", tests[0].Input)
}

func TestJudgeLogFormat(t *testing.T) {
	r := newUnsandboxedRunner(t)

	t.Run("passed", func(t *testing.T) {
		var log strings.Builder
		stop := r.judge(&log, 1, TestCase{Input: "2, 3", Expected: "5"}, testOutcome{got: "5"})
		assert.False(t, stop)
		assert.Equal(t, "Test 1: PASSED\n", log.String())
	})

	t.Run("wrong output", func(t *testing.T) {
		var log strings.Builder
		stop := r.judge(&log, 2, TestCase{Input: "2, 3", Expected: "5", Hidden: true}, testOutcome{got: "6"})
		assert.True(t, stop)
		assert.Contains(t, log.String(), "Test 2 (hidden): FAILED")
		assert.Contains(t, log.String(), "input: 2, 3")
		assert.Contains(t, log.String(), "expected: 5")
		assert.Contains(t, log.String(), "got: 6")
	})

	t.Run("execution failure", func(t *testing.T) {
		var log strings.Builder
		stop := r.judge(&log, 1, TestCase{Input: "1", Expected: "1"}, testOutcome{failure: "timed out after 15s"})
		assert.True(t, stop)
		assert.Contains(t, log.String(), "error: timed out after 15s")
		assert.NotContains(t, log.String(), "got:")
	})

	t.Run("expected is compared trimmed", func(t *testing.T) {
		var log strings.Builder
		stop := r.judge(&log, 1, TestCase{Input: "1", Expected: "  5\n"}, testOutcome{got: "5"})
		assert.False(t, stop)
	})
}

func TestCapWriterTruncatesWithoutBlockingWriter(t *testing.T) {
	w := &capWriter{max: 8}

	n, err := w.Write([]byte("0123456789"))
	require.NoError(t, err)
	assert.Equal(t, 10, n)
	assert.Equal(t, "01234567", w.String())

	// Further writes still report success so the child keeps running.
	n, err = w.Write([]byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, "01234567", w.String())
}

func TestPythonSubmissionPasses(t *testing.T) {
	requireInterpreter(t, "python3")
	r := newUnsandboxedRunner(t)

	res, err := r.Run(context.Background(), "python",
		"def add(a, b):\n    return a + b",
		[]TestCase{
			{Input: "2, 3", Expected: "5", Ordinal: 1},
			{Input: "10, -4", Expected: "6", Ordinal: 2, Hidden: true},
		})
	require.NoError(t, err)
	assert.True(t, res.PassedAll)
	assert.Contains(t, res.Log, "Test 1: PASSED")
	assert.Contains(t, res.Log, "Test 2 (hidden): PASSED")
}

func TestPythonWrongAnswerStopsSuite(t *testing.T) {
	requireInterpreter(t, "python3")
	r := newUnsandboxedRunner(t)

	res, err := r.Run(context.Background(), "python",
		"def add(a, b):\n    return a - b",
		[]TestCase{
			{Input: "5, 3", Expected: "8", Ordinal: 1},
			{Input: "1, 1", Expected: "2", Ordinal: 2},
		})
	require.NoError(t, err)
	assert.False(t, res.PassedAll)
	assert.Contains(t, res.Log, "Test 1: FAILED")
	assert.Contains(t, res.Log, "got: 2")
	assert.NotContains(t, res.Log, "Test 2", "suite stops at the first failure")
}

func TestPythonStderrFailsTheTest(t *testing.T) {
	requireInterpreter(t, "python3")
	r := newUnsandboxedRunner(t)

	res, err := r.Run(context.Background(), "python",
		"import sys\n\ndef f(x):\n    print(\"boom\", file=sys.stderr)\n    return x",
		[]TestCase{{Input: "7", Expected: "7", Ordinal: 1}})
	require.NoError(t, err)
	assert.False(t, res.PassedAll)
	assert.Contains(t, res.Log, "error: boom")
}

func TestPythonInfiniteLoopTimesOut(t *testing.T) {
	requireInterpreter(t, "python3")
	r := newUnsandboxedRunner(t)
	r.cfg.TestTimeout = 500 * time.Millisecond

	start := time.Now()
	res, err := r.Run(context.Background(), "python",
		"def f(x):\n    while True:\n        pass",
		[]TestCase{{Input: "1", Expected: "1", Ordinal: 1}})
	require.NoError(t, err)
	assert.False(t, res.PassedAll)
	assert.Contains(t, res.Log, "timed out after 500ms")
	assert.Less(t, time.Since(start), 10*time.Second)
}

func TestJavaScriptSubmissionPasses(t *testing.T) {
	requireInterpreter(t, "node")
	r := newUnsandboxedRunner(t)

	res, err := r.Run(context.Background(), "javascript",
		"function greet(name) {\n  return \"hello \" + name;\n}",
		[]TestCase{{Input: "\"ada\"", Expected: "hello ada", Ordinal: 1}})
	require.NoError(t, err)
	assert.True(t, res.PassedAll)
}

func TestRubySubmissionPasses(t *testing.T) {
	requireInterpreter(t, "ruby")
	r := newUnsandboxedRunner(t)

	res, err := r.Run(context.Background(), "ruby",
		"def double(n)\n  n * 2\nend",
		[]TestCase{{Input: "21", Expected: "42", Ordinal: 1}})
	require.NoError(t, err)
	assert.True(t, res.PassedAll)
}
