package controller

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"
	m "sabot.dev/pkg/sabot/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
	// SimpleUI doesn't block - it just prints and continues
}

// DisplayEstimation prints the per-file estimation table or the error.
func (s *SimpleUI) DisplayEstimation(ctx context.Context, estimations map[m.Path]m.Estimation, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	if err != nil {
		s.printf("estimation error: %v\n", err)
		return err
	}

	s.printf("\n%s", renderEstimationTable(estimations))

	if breakdown := strategyBreakdown(estimations); breakdown != "" {
		s.printf("\nBy strategy: %s\n", breakdown)
	}

	return nil
}

func renderEstimationTable(estimations map[m.Path]m.Estimation) string {
	paths := make([]m.Path, 0, len(estimations))
	for path := range estimations {
		paths = append(paths, path)
	}

	sort.Slice(paths, func(i, j int) bool { return paths[i] < paths[j] })

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Mutations"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	total := 0

	for _, path := range paths {
		count := estimations[path].Total()
		total += count

		table.Append([]string{string(path), fmt.Sprintf("%d", count)})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(paths)),
		fmt.Sprintf("%d", total),
	})

	table.Render()

	return tableBuffer.String()
}

func strategyBreakdown(estimations map[m.Path]m.Estimation) string {
	totals := make(m.Estimation)
	for _, estimation := range estimations {
		for name, count := range estimation {
			totals[name] += count
		}
	}

	names := make([]m.StrategyName, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}

	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

	parts := ""
	for i, name := range names {
		if i > 0 {
			parts += ", "
		}

		parts += fmt.Sprintf("%s %d", name, totals[name])
	}

	return parts
}

// DisplayRunPlan shows the execution plan before testing starts.
func (s *SimpleUI) DisplayRunPlan(ctx context.Context, plan RunPlan) {
	if err := ctx.Err(); err != nil {
		return
	}

	line := fmt.Sprintf("Running %d mutations across %d file(s) with %d worker(s)", plan.Mutants, plan.Files, plan.Workers)
	if plan.Shard != "" {
		line += fmt.Sprintf(" (shard %s)", plan.Shard)
	}

	s.printf("%s\n", line)
}

// DisplayResult streams one classified mutation.
func (s *SimpleUI) DisplayResult(ctx context.Context, result m.MutationResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	mut := result.Mutation
	s.printf("Completed mutation %s (%s) %s:%d -> %s\n",
		shortID(mut.ID), mut.Strategy, mut.SourceFile, mut.Line, result.Status)

	if result.Status == m.Survived && mut.OriginalText != "" {
		s.printf("  %s => %s\n", mut.OriginalText, mutatedLabel(mut.MutatedText))
	}
}

// DisplaySummary prints the final tallies and the mutation score.
func (s *SimpleUI) DisplaySummary(ctx context.Context, summary m.RunSummary) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("\nTested %d mutation(s) in %s\n", summary.Total, summary.Duration.Round(time.Millisecond))

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Result", "Count"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	table.Append([]string{"killed", fmt.Sprintf("%d", summary.Killed)})
	table.Append([]string{"survived", fmt.Sprintf("%d", summary.Survived)})
	table.Append([]string{"invalid", fmt.Sprintf("%d", summary.Invalid)})
	table.Append([]string{"timeout", fmt.Sprintf("%d", summary.Timeouts)})
	table.Append([]string{"error", fmt.Sprintf("%d", summary.Errors)})
	table.SetFooter([]string{"score", fmt.Sprintf("%.2f%%", summary.Score)})

	table.Render()

	s.printf("%s", tableBuffer.String())
}

// DisplayReport renders a persisted report file by file.
func (s *SimpleUI) DisplayReport(ctx context.Context, report m.Report, options ViewOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("Report for %s (%d file(s))\n", report.Summary.Root, report.Summary.Files)

	for _, file := range report.Files {
		entries := filterEntries(file.Entries, options)
		if len(entries) == 0 {
			continue
		}

		s.printf("\n%s\n", file.File)

		for _, entry := range entries {
			s.printf("  %s %s L%d %s -> %s\n",
				statusIcon(entry.Status), shortID(entry.ID), entry.Line, entry.Description, entry.Status)

			if options.ShowDiffs && entry.Original != "" {
				s.printDiff(entry)
			}
		}
	}

	s.DisplaySummary(ctx, report.Summary)

	return nil
}

func (s *SimpleUI) printDiff(entry m.ReportEntry) {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(entry.Original),
		B:        difflib.SplitLines(entry.Mutated),
		FromFile: "original",
		ToFile:   "mutated",
		Context:  1,
	})
	if err != nil || diff == "" {
		return
	}

	s.printf("%s", indentLines(diff))
}

func filterEntries(entries []m.ReportEntry, options ViewOptions) []m.ReportEntry {
	if !options.SurvivorsOnly {
		return entries
	}

	kept := make([]m.ReportEntry, 0, len(entries))

	for _, entry := range entries {
		if entry.Status == m.Survived.String() {
			kept = append(kept, entry)
		}
	}

	return kept
}

func statusIcon(status string) string {
	switch status {
	case m.Killed.String():
		return "✓"
	case m.Survived.String():
		return "✗"
	default:
		return "•"
	}
}

func shortID(id string) string {
	const width = 8
	if len(id) < width {
		return id
	}

	return id[:width]
}

func mutatedLabel(mutated string) string {
	if mutated == "" {
		return "<removed>"
	}

	return mutated
}

func indentLines(text string) string {
	var out bytes.Buffer

	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			out.WriteString("    ")
			out.WriteString(text[start : i+1])

			start = i + 1
		}
	}

	if start < len(text) {
		out.WriteString("    ")
		out.WriteString(text[start:])
		out.WriteByte('\n')
	}

	return out.String()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
