package adapter

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	m "sabot.dev/pkg/sabot/internal/model"
)

const defaultTestTimeout = 30 * time.Second

// ErrTestTimeout reports that a test run was killed after exceeding its
// time budget.
var ErrTestTimeout = errors.New("test run timed out")

// failureCountPattern matches summary lines that report an explicit
// failure count, e.g. "5 tests, 2 failures". The leading integer wins
// over any other signal when present.
var failureCountPattern = regexp.MustCompile(`(\d+)\s+failures?\b`)

// failMarker is printed by 'go test -v' once per failing test function.
const failMarker = "--- FAIL:"

// buildFailedMarker appears in 'go test' output when a package under
// test does not compile.
const buildFailedMarker = "[build failed]"

// TestRunnerAdapter abstracts test execution for mutation workers.
type TestRunnerAdapter interface {
	// RunTests executes the test subset inside workDir and returns the
	// parsed outcome. testFiles are workDir-relative; passing none runs
	// the full suite. A run that exceeds timeout yields ErrTestTimeout
	// alongside the partial outcome.
	RunTests(ctx context.Context, workDir string, testFiles []string, timeout time.Duration) (m.TestOutcome, error)
}

// LocalTestRunnerAdapter provides a concrete implementation using os/exec.
// Test caching is disabled on every run so mutated code is always
// re-executed.
type LocalTestRunnerAdapter struct {
	extraEnv []string
}

// NewLocalTestRunnerAdapter constructs a LocalTestRunnerAdapter. Each
// extraEnv entry is a KEY=VALUE pair appended to the environment of
// every spawned test process; empty entries are dropped.
func NewLocalTestRunnerAdapter(extraEnv ...string) *LocalTestRunnerAdapter {
	adapter := &LocalTestRunnerAdapter{}

	for _, entry := range extraEnv {
		if strings.TrimSpace(entry) == "" {
			continue
		}

		adapter.extraEnv = append(adapter.extraEnv, entry)
	}

	return adapter
}

// RunTests runs 'go test -count=1 -v' over the packages containing the
// requested test files. A non-positive timeout falls back to the 30s
// default.
func (a *LocalTestRunnerAdapter) RunTests(ctx context.Context, workDir string, testFiles []string, timeout time.Duration) (m.TestOutcome, error) {
	if timeout <= 0 {
		timeout = defaultTestTimeout
	}

	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	args := append([]string{"test", "-count=1", "-v"}, packagesFor(testFiles)...)

	cmd := exec.CommandContext(runCtx, "go", args...)
	cmd.Dir = workDir

	if len(a.extraEnv) > 0 {
		cmd.Env = append(os.Environ(), a.extraEnv...)
	}

	var output bytes.Buffer

	cmd.Stdout = &output
	cmd.Stderr = &output

	started := time.Now()
	runErr := cmd.Run()

	outcome := m.TestOutcome{
		Output:   output.String(),
		Duration: time.Since(started),
	}

	if cmd.ProcessState != nil {
		outcome.ExitCode = cmd.ProcessState.ExitCode()
	}

	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		return outcome, ErrTestTimeout
	}

	var exitErr *exec.ExitError

	switch {
	case runErr == nil:
	case errors.As(runErr, &exitErr):
		// Non-zero exit is the expected shape for failing tests.
	default:
		return outcome, runErr
	}

	outcome.BuildFailed = strings.Contains(outcome.Output, buildFailedMarker)
	outcome.Failures = countFailures(outcome.Output, outcome.ExitCode)

	return outcome, nil
}

// countFailures extracts the failure count from test output. Explicit
// summary counts win, then per-test FAIL markers; with neither present
// the exit code decides, counting any non-zero exit as one failure.
func countFailures(output string, exitCode int) int {
	if match := failureCountPattern.FindStringSubmatch(output); match != nil {
		if n, err := strconv.Atoi(match[1]); err == nil {
			return n
		}
	}

	if n := strings.Count(output, failMarker); n > 0 {
		return n
	}

	if exitCode != 0 {
		return 1
	}

	return 0
}

// packagesFor maps workDir-relative test files to their unique package
// patterns. Go tests run per package, not per file.
func packagesFor(testFiles []string) []string {
	if len(testFiles) == 0 {
		return []string{"./..."}
	}

	seen := make(map[string]struct{})
	pkgs := make([]string, 0, len(testFiles))

	for _, file := range testFiles {
		dir := filepath.ToSlash(filepath.Dir(file))

		pkg := "./" + dir
		if dir == "." {
			pkg = "."
		}

		if _, ok := seen[pkg]; ok {
			continue
		}

		seen[pkg] = struct{}{}
		pkgs = append(pkgs, pkg)
	}

	sort.Strings(pkgs)

	return pkgs
}
