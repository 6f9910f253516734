package controller

import (
	"context"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/sergi/go-diff/diffmatchpatch"
	m "sabot.dev/pkg/sabot/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	program *tea.Program
	done    chan error
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the interactive program for run mode. Estimate and
// view modes render when their display method is called, so Start only
// validates the context for them.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	config := StartConfig{}
	for _, option := range options {
		option(&config)
	}

	if config.mode != ModeRun {
		return nil
	}

	t.program = tea.NewProgram(newRunModel(), tea.WithOutput(t.output), tea.WithAltScreen())
	t.done = make(chan error, 1)

	go func() {
		_, err := t.program.Run()
		t.done <- err
	}()

	return nil
}

// Close stops the interactive program if one is running.
func (t *TUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}

	if t.program != nil {
		t.program.Quit()
	}
}

// Wait blocks until the user closes the interactive program.
func (t *TUI) Wait(ctx context.Context) {
	if t.done == nil {
		return
	}

	select {
	case <-t.done:
	case <-ctx.Done():
		if t.program != nil {
			t.program.Kill()
		}
	}
}

// DisplayEstimation shows the per-file estimation list or the error.
func (t *TUI) DisplayEstimation(ctx context.Context, estimations map[m.Path]m.Estimation, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	if err != nil {
		_, _ = fmt.Fprintf(t.output, "estimation error: %v\n", err)

		return err
	}

	total := 0
	fileStats := make(map[string]int, len(estimations))

	for path, estimation := range estimations {
		count := estimation.Total()
		fileStats[string(path)] = count
		total += count
	}

	model := newEstimateModel().withEstimation(estimationMsg{total: total, fileStats: fileStats})

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// DisplayRunPlan forwards the plan to the running program.
func (t *TUI) DisplayRunPlan(ctx context.Context, plan RunPlan) {
	if err := ctx.Err(); err != nil {
		return
	}

	if t.program != nil {
		t.program.Send(planMsg{plan: plan})
	}
}

// DisplayResult forwards one classified mutation to the running program.
func (t *TUI) DisplayResult(ctx context.Context, result m.MutationResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	if t.program == nil {
		return
	}

	t.program.Send(resultMsg{result: result})
}

// DisplaySummary forwards the final tallies, switching the program to
// its results screen. Without a running program the summary prints as a
// single plain line, so batch operations still report their outcome.
func (t *TUI) DisplaySummary(ctx context.Context, summary m.RunSummary) {
	if err := ctx.Err(); err != nil {
		return
	}

	if t.program == nil {
		_, _ = fmt.Fprintf(t.output, "Tested %d mutation(s): %d killed, %d survived, score %.2f%%\n",
			summary.Total, summary.Killed, summary.Survived, summary.Score)

		return
	}

	t.program.Send(summaryMsg{summary: summary})
}

// DisplayReport renders a persisted report in an interactive browser.
func (t *TUI) DisplayReport(ctx context.Context, report m.Report, options ViewOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	model := newReportModel(report, options)

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// snippetDiff renders a unified diff between the original and mutated
// snippets, with a character-level highlight line on top.
func snippetDiff(original, mutated string) string {
	if original == "" && mutated == "" {
		return ""
	}

	unified, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(original),
		B:        difflib.SplitLines(mutated),
		FromFile: "original",
		ToFile:   "mutated",
		Context:  1,
	})
	if err != nil {
		return ""
	}

	return strings.TrimRight(inlineHighlight(original, mutated)+"\n"+unified, "\n")
}

// inlineHighlight produces a single ANSI-colored line showing the
// character-level change between the two snippets.
func inlineHighlight(original, mutated string) string {
	dmp := diffmatchpatch.New()

	diffs := dmp.DiffMain(original, mutated, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	return dmp.DiffPrettyText(diffs)
}
