package coderunner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// runProcessTest executes one test case: materialize the harnessed source
// in a fresh working directory, run the language's compile and run steps
// under the wall-clock limit, and capture the verdict. Infrastructure
// problems (tempdir creation, caller cancellation) surface as errors;
// everything the candidate's code does wrong is a testOutcome.
func (r *Runner) runProcessTest(ctx context.Context, spec *langSpec, source, entry string, tc TestCase) (testOutcome, error) {
	if err := ctx.Err(); err != nil {
		return testOutcome{}, err
	}

	dir, err := os.MkdirTemp(r.cfg.WorkDir, "hireloop-run-")
	if err != nil {
		return testOutcome{}, fmt.Errorf("failed to create working directory: %w", err)
	}
	defer os.RemoveAll(dir)

	harnessed := spec.harness(source, entry, tc.Input)
	if err := os.WriteFile(filepath.Join(dir, spec.sourceFile), []byte(harnessed), 0o644); err != nil {
		return testOutcome{}, fmt.Errorf("failed to write source: %w", err)
	}

	tctx, cancel := context.WithTimeout(ctx, r.cfg.TestTimeout)
	defer cancel()

	var lastStdout string
	for _, argv := range spec.commands {
		stdout, stderr, runErr := r.execute(tctx, dir, argv)
		switch {
		case ctx.Err() != nil:
			// Session terminated; the submission is not judged.
			return testOutcome{}, ctx.Err()
		case errors.Is(tctx.Err(), context.DeadlineExceeded):
			return testOutcome{failure: fmt.Sprintf("timed out after %s", r.cfg.TestTimeout)}, nil
		case stderr != "":
			return testOutcome{failure: stderr}, nil
		case runErr != nil:
			return testOutcome{failure: runErr.Error()}, nil
		}
		lastStdout = stdout
	}
	return testOutcome{got: strings.TrimSpace(lastStdout)}, nil
}

// execute runs one command step, wrapped in the sandbox when available.
func (r *Runner) execute(ctx context.Context, dir string, argv []string) (string, string, error) {
	cmd := r.command(ctx, dir, argv)

	stdout := &capWriter{max: r.cfg.MaxOutputBytes}
	stderr := &capWriter{max: r.cfg.MaxOutputBytes}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()
	return stdout.String(), strings.TrimSpace(stderr.String()), err
}

// command builds the exec invocation. With bubblewrap the working
// directory is bind-mounted read-write at /work over a minimal read-only
// toolchain root with no network.
func (r *Runner) command(ctx context.Context, dir string, argv []string) *exec.Cmd {
	if r.bwrap == "" {
		cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
		cmd.Dir = dir
		return cmd
	}

	args := []string{
		"--ro-bind", "/usr", "/usr",
		"--symlink", "usr/bin", "/bin",
		"--symlink", "usr/lib", "/lib",
		"--symlink", "usr/lib64", "/lib64",
		"--ro-bind-try", "/etc/alternatives", "/etc/alternatives",
		"--bind", dir, "/work",
		"--chdir", "/work",
		"--tmpfs", "/tmp",
		"--proc", "/proc",
		"--dev", "/dev",
		"--unshare-all",
		"--unshare-net",
		"--die-with-parent",
		"--clearenv",
		"--setenv", "PATH", "/usr/bin:/bin",
		"--setenv", "HOME", "/work",
	}
	args = append(args, argv...)
	return exec.CommandContext(ctx, r.bwrap, args...)
}

// capWriter buffers up to max bytes and silently discards the rest, so a
// submission printing in a loop cannot exhaust memory.
type capWriter struct {
	buf bytes.Buffer
	max int
}

func (w *capWriter) Write(p []byte) (int, error) {
	if w.max <= 0 || w.buf.Len() < w.max {
		n := len(p)
		if w.max > 0 && w.buf.Len()+n > w.max {
			n = w.max - w.buf.Len()
		}
		w.buf.Write(p[:n])
	}
	return len(p), nil
}

func (w *capWriter) String() string {
	return w.buf.String()
}
