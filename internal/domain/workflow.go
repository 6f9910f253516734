package domain

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"sabot.dev/pkg/sabot/internal/adapter"
	"sabot.dev/pkg/sabot/internal/controller"
	m "sabot.dev/pkg/sabot/internal/model"
	"sabot.dev/pkg/sabot/pkg"
)

// Report document names inside the reports directory. Sharded runs
// write one shard document each; merge folds them into the run
// document that view and the score gate read.
const (
	runReportName     = "run.yaml"
	shardReportFormat = "shard_%d.yaml"
	shardReportPrefix = "shard_"
	shardReportExt    = ".yaml"
)

// EstimateArgs contains the arguments for estimating mutation counts.
// The optimizer configuration is part of estimation so the counts match
// what a run with the same configuration would execute.
type EstimateArgs struct {
	Paths      []m.Path
	Exclude    []string
	Strategies []string
	Optimizer  OptimizerConfig
}

// RunArgs contains the arguments for running mutation tests.
type RunArgs struct {
	EstimateArgs
	Reports         m.Path
	Workers         int
	ShardIndex      int
	TotalShardCount int
	FailUnder       float64
	Timeout         time.Duration
}

// ViewArgs contains the arguments for viewing a persisted report.
type ViewArgs struct {
	Reports       m.Path
	ShowDiffs     bool
	SurvivorsOnly bool
}

// MergeArgs contains the arguments for merging shard reports.
// FailUnder applies the score gate to the merged result, so a sharded
// CI pipeline can gate once after all shards finish.
type MergeArgs struct {
	Reports   m.Path
	FailUnder float64
}

// Workflow defines the use cases the CLI drives: estimating mutation
// counts, executing a run, viewing persisted reports, and merging
// shard reports.
type Workflow interface {
	Estimate(ctx context.Context, args EstimateArgs) error
	Run(ctx context.Context, args RunArgs) error
	View(ctx context.Context, args ViewArgs) error
	Merge(ctx context.Context, args MergeArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.LanguageAdapter
	adapter.ReportStore
	controller.UI
	Scheduler
}

// NewWorkflow creates a new Workflow instance with the provided
// dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	language adapter.LanguageAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
	scheduler Scheduler,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		LanguageAdapter: language,
		ReportStore:     reportStore,
		UI:              ui,
		Scheduler:       scheduler,
	}
}

// Estimate discovers the project, generates and optimizes mutants
// without executing anything, and displays per-file counts. Running the
// optimizer here keeps the listed counts equal to what an identically
// configured run would execute.
func (w *workflow) Estimate(ctx context.Context, args EstimateArgs) error {
	active, err := ResolveStrategies(args.Strategies...)
	if err != nil {
		return err
	}

	if err := w.Start(ctx, controller.WithEstimateMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	project, err := w.loadProject(ctx, args.Paths, args.Exclude)
	if err != nil {
		w.Close(ctx)
		slog.Error("Failed to load project", "error", err)

		return fmt.Errorf("load project: %w", err)
	}

	var all []m.Mutation

	for _, src := range project.sources {
		all = append(all, Walk(src.tree, src.fset, src.source.Path, src.content, active)...)
	}

	estimations := make(map[m.Path]m.Estimation, len(project.sources))

	for _, mutant := range Optimize(all, args.Optimizer) {
		estimation, ok := estimations[mutant.SourceFile]
		if !ok {
			estimation = make(m.Estimation)
			estimations[mutant.SourceFile] = estimation
		}

		estimation[mutant.Strategy]++
	}

	if err := w.DisplayEstimation(ctx, estimations, nil); err != nil {
		w.Close(ctx)
		slog.Error("Failed to display estimation", "error", err)

		return fmt.Errorf("display estimation: %w", err)
	}

	w.Wait(ctx)
	w.Close(ctx)

	return nil
}

// Run executes mutation testing end to end: discover and parse the
// project, generate and optimize mutants, execute this shard's slice,
// persist the report, and gate on the resulting score.
func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	active, err := ResolveStrategies(args.Strategies...)
	if err != nil {
		return err
	}

	if err := w.Start(ctx, controller.WithRunMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	project, err := w.loadProject(ctx, args.Paths, args.Exclude)
	if err != nil {
		slog.Error("Failed to load project", "error", err)
		return fmt.Errorf("load project: %w", err)
	}

	var all []m.Mutation

	for _, src := range project.sources {
		all = append(all, Walk(src.tree, src.fset, src.source.Path, src.content, active)...)
	}

	optimized := Optimize(all, args.Optimizer)
	mutants, shard := shardMutants(optimized, args.ShardIndex, args.TotalShardCount)

	slog.Info("Starting mutation run",
		"root", project.root,
		"files", len(project.sources),
		"candidates", len(all),
		"mutants", len(mutants),
		"shard", shard,
	)

	summary := newRunSummary(project.root, shard, len(project.sources))

	w.DisplayRunPlan(ctx, controller.RunPlan{
		Files:   len(project.sources),
		Mutants: len(mutants),
		Workers: args.Workers,
		Shard:   shard,
	})

	spill, err := pkg.NewFileSpill[fileEntry]()
	if err != nil {
		return fmt.Errorf("create result spill: %w", err)
	}

	defer func() {
		if closeErr := spill.Close(); closeErr != nil {
			slog.Error("Failed to close result spill", "error", closeErr)
		}
	}()

	var tally sync.Mutex

	onResult := func(result m.MutationResult) {
		tally.Lock()
		defer tally.Unlock()

		summary.Count(result.Status)

		entry := fileEntry{
			File:   result.Mutation.SourceFile,
			Module: project.modules[result.Mutation.SourceFile],
			Entry:  m.EntryFromResult(result),
		}
		if spillErr := spill.Append(entry); spillErr != nil {
			slog.Error("Failed to spill result", "mutation", result.Mutation.ID, "error", spillErr)
		}

		w.DisplayResult(ctx, result)
	}

	_, err = w.Scheduler.Run(ctx, ScheduleArgs{
		Root:     project.root,
		Mutants:  mutants,
		Tests:    project.depmap,
		Workers:  args.Workers,
		Timeout:  args.Timeout,
		OnResult: onResult,
	})
	if err != nil {
		return fmt.Errorf("execute mutants: %w", err)
	}

	summary.Duration = time.Since(summary.StartedAt)
	summary.Score = MutationScore(summary.Killed, summary.Survived)

	report, err := buildReport(summary, spill)
	if err != nil {
		return fmt.Errorf("assemble report: %w", err)
	}

	target := w.reportTarget(args.Reports, args.ShardIndex, args.TotalShardCount)
	if err := w.Save(target, report); err != nil {
		slog.Error("Failed to save report", "path", target, "error", err)
		return fmt.Errorf("save report: %w", err)
	}

	w.DisplaySummary(ctx, summary)
	w.Wait(ctx)

	if args.FailUnder > 0 && summary.Score < args.FailUnder {
		return fmt.Errorf("mutation score %.2f%% is below the required %.2f%%", summary.Score, args.FailUnder)
	}

	return nil
}

// View loads the run document from the reports directory and renders
// it.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	report, err := w.Load(w.JoinPath(string(args.Reports), runReportName))
	if err != nil {
		return fmt.Errorf("load report: %w", err)
	}

	if err := w.Start(ctx, controller.WithViewMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	options := controller.ViewOptions{
		ShowDiffs:     args.ShowDiffs,
		SurvivorsOnly: args.SurvivorsOnly,
	}

	if err := w.DisplayReport(ctx, report, options); err != nil {
		return fmt.Errorf("display report: %w", err)
	}

	w.Wait(ctx)

	return nil
}

// Merge folds every shard document in the reports directory into a
// single run document, recomputing the aggregate score.
func (w *workflow) Merge(ctx context.Context, args MergeArgs) error {
	shardPaths, err := w.findShardReports(args.Reports)
	if err != nil {
		return fmt.Errorf("scan reports directory: %w", err)
	}

	if len(shardPaths) == 0 {
		return fmt.Errorf("no shard reports found in %s", args.Reports)
	}

	reports := make([]m.Report, 0, len(shardPaths))

	for _, path := range shardPaths {
		report, loadErr := w.Load(path)
		if loadErr != nil {
			return fmt.Errorf("load shard report: %w", loadErr)
		}

		reports = append(reports, report)
	}

	merged := MergeReports(reports)

	target := w.JoinPath(string(args.Reports), runReportName)
	if err := w.Save(target, merged); err != nil {
		return fmt.Errorf("save merged report: %w", err)
	}

	slog.Info("Merged shard reports", "shards", len(reports), "target", target)

	if err := w.Start(ctx); err != nil {
		return err
	}
	defer w.Close(ctx)

	w.DisplaySummary(ctx, merged.Summary)
	w.Wait(ctx)

	if args.FailUnder > 0 && merged.Summary.Score < args.FailUnder {
		return fmt.Errorf("mutation score %.2f%% is below the required %.2f%%", merged.Summary.Score, args.FailUnder)
	}

	return nil
}

// fileEntry is the spill record for one classified mutant. Results are
// spilled in serializable form because live results carry AST nodes,
// which gob cannot encode.
type fileEntry struct {
	File   m.Path
	Module string
	Entry  m.ReportEntry
}

// buildReport assembles the persisted document from the spilled
// entries, grouped by file and ordered for stable output.
func buildReport(summary m.RunSummary, spill pkg.FileSpill[fileEntry]) (m.Report, error) {
	report := m.Report{Summary: summary}
	index := make(map[m.Path]int)

	err := spill.Range(func(_ uint64, item fileEntry) error {
		i, ok := index[item.File]
		if !ok {
			i = len(report.Files)
			index[item.File] = i

			report.Files = append(report.Files, m.FileReport{File: item.File, Module: item.Module})
		}

		report.Files[i].Entries = append(report.Files[i].Entries, item.Entry)

		return nil
	})
	if err != nil {
		return m.Report{}, err
	}

	sort.Slice(report.Files, func(i, j int) bool {
		return report.Files[i].File < report.Files[j].File
	})

	for i := range report.Files {
		sortEntries(report.Files[i].Entries)
	}

	return report, nil
}

// shardMutants selects this shard's slice of the optimized mutants by
// position, so shards partition the run without coordinating. The
// returned label is carried in reports; it is empty for unsharded
// runs.
func shardMutants(mutants []m.OptimizedMutation, index, total int) ([]m.OptimizedMutation, string) {
	if total <= 1 {
		return mutants, ""
	}

	if index < 0 || index >= total {
		index = 0
	}

	shard := make([]m.OptimizedMutation, 0, len(mutants)/total+1)

	for i, mutant := range mutants {
		if i%total == index {
			shard = append(shard, mutant)
		}
	}

	return shard, fmt.Sprintf("%d/%d", index, total)
}

// reportTarget picks the document this run writes: a shard document
// when the run is sharded, the run document otherwise.
func (w *workflow) reportTarget(reports m.Path, shardIndex, totalShards int) m.Path {
	if totalShards > 1 {
		return w.JoinPath(string(reports), fmt.Sprintf(shardReportFormat, shardIndex))
	}

	return w.JoinPath(string(reports), runReportName)
}

// findShardReports lists shard documents directly inside the reports
// directory. Shard files sit flat next to the merged document, so the
// scan never recurses.
func (w *workflow) findShardReports(reports m.Path) ([]m.Path, error) {
	var found []m.Path

	err := w.Walk(reports, false, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			return nil
		}

		name := filepath.Base(path)
		if strings.HasPrefix(name, shardReportPrefix) && strings.HasSuffix(name, shardReportExt) {
			found = append(found, m.Path(path))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(found, func(i, j int) bool { return found[i] < found[j] })

	return found, nil
}
