package model

import "time"

// TestOutcome is the raw result of one isolated test execution.
type TestOutcome struct {
	Failures    int
	Output      string // combined stdout and stderr
	ExitCode    int
	Duration    time.Duration
	BuildFailed bool // output contained a test-binary build failure
}

// TestStatus classifies a mutation after execution.
type TestStatus int

const (
	// Killed indicates the test suite detected the mutation.
	Killed TestStatus = iota
	// Survived indicates tests passed despite the mutation.
	Survived
	// Invalid indicates the mutated source failed to render or compile.
	Invalid
	// Timeout indicates the isolated test process exceeded its deadline.
	Timeout
	// Error indicates a runner or worker failure unrelated to the tests,
	// including a patch that matched no node.
	Error
)

func (s TestStatus) String() string {
	switch s {
	case Killed:
		return "killed"
	case Survived:
		return "survived"
	case Invalid:
		return "invalid"
	case Timeout:
		return "timeout"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// MutationResult is the terminal record for one mutation. Per-mutation
// failures are contained here; they never abort the batch or the run.
type MutationResult struct {
	Mutation Mutation
	Impact   int
	Status   TestStatus
	Duration time.Duration
	Detail   string // error or diagnostic detail, empty on clean outcomes
}
