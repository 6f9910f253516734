// Package controller provides output adapters for displaying mutation testing results.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	m "sabot.dev/pkg/sabot/internal/model"
)

// RunPlan describes the execution that is about to start.
type RunPlan struct {
	Files   int
	Mutants int
	Workers int
	Shard   string // "index/total", empty for unsharded runs
}

// ViewOptions controls how a persisted report is rendered.
type ViewOptions struct {
	ShowDiffs     bool
	SurvivorsOnly bool
}

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeEstimate StartMode = iota
	ModeRun
	ModeView
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithEstimateMode sets the UI to estimation mode.
func WithEstimateMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeEstimate
	}
}

// WithRunMode sets the UI to mutation execution mode.
func WithRunMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeRun
	}
}

// WithViewMode sets the UI to report viewing mode.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

// UI defines the interface for displaying mutation testing progress and
// results. Implementations can use different output methods (simple
// text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes it)
	DisplayEstimation(ctx context.Context, estimations map[m.Path]m.Estimation, err error) error
	DisplayRunPlan(ctx context.Context, plan RunPlan)
	DisplayResult(ctx context.Context, result m.MutationResult)
	DisplaySummary(ctx context.Context, summary m.RunSummary)
	DisplayReport(ctx context.Context, report m.Report, options ViewOptions) error
}

// NewUI selects the UI implementation for the command: interactive
// terminals get the Bubble Tea TUI, everything else the plain writer.
func NewUI(cmd *cobra.Command, interactive bool) UI {
	if interactive {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to an interactive terminal.
func IsTTY(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
