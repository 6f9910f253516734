package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"sabot.dev/pkg/sabot/internal/adapter"
	m "sabot.dev/pkg/sabot/internal/model"
)

const workspacePattern = "sabot-workspace-*"

// detailLimit bounds the diagnostic text carried into reports.
const detailLimit = 500

// TestResolver narrows the test suite for one mutation. An empty result
// means the whole suite runs.
type TestResolver interface {
	TestsFor(mutation m.Mutation) []m.Path
}

// ScheduleArgs carries one batch execution request.
type ScheduleArgs struct {
	// Root is the project directory the workers clone.
	Root m.Path

	// Mutants is the optimizer output, in execution order.
	Mutants []m.OptimizedMutation

	// Tests resolves the test subset per mutation. Nil runs the full
	// suite for every mutant.
	Tests TestResolver

	// Workers bounds the pool size. Values below one run serially.
	Workers int

	// Timeout is the per-mutation test budget. Non-positive values use
	// the runner's default.
	Timeout time.Duration

	// OnResult, when set, observes each result as it completes.
	OnResult func(m.MutationResult)
}

// Scheduler drives mutants through patch, compile and test with a
// bounded pool of workers. Each worker owns a private clone of the
// project, so two mutants of the same file can never race on one copy.
type Scheduler interface {
	// Run blocks until every mutant is classified or ctx fails, and
	// returns results in completion order.
	Run(ctx context.Context, args ScheduleArgs) ([]m.MutationResult, error)
}

type scheduler struct {
	fsAdapter adapter.SourceFSAdapter
	language  adapter.LanguageAdapter
	runner    adapter.TestRunnerAdapter
	patcher   Patcher
}

// NewScheduler constructs a Scheduler backed by the provided adapters.
func NewScheduler(
	fsAdapter adapter.SourceFSAdapter,
	language adapter.LanguageAdapter,
	runner adapter.TestRunnerAdapter,
	patcher Patcher,
) Scheduler {
	return &scheduler{
		fsAdapter: fsAdapter,
		language:  language,
		runner:    runner,
		patcher:   patcher,
	}
}

// fileBatch holds every scheduled mutant of one source file. A batch is
// always handled by a single worker, sequentially.
type fileBatch struct {
	file    m.Path
	mutants []m.OptimizedMutation
}

func (s *scheduler) Run(ctx context.Context, args ScheduleArgs) ([]m.MutationResult, error) {
	if len(args.Mutants) == 0 {
		return nil, nil
	}

	batches := batchByFile(args.Mutants)

	workers := args.Workers
	if workers < 1 {
		workers = 1
	}

	if workers > len(batches) {
		workers = len(batches)
	}

	jobs := make(chan fileBatch, len(batches))
	for _, batch := range batches {
		jobs <- batch
	}

	close(jobs)

	var (
		mu      sync.Mutex
		results = make([]m.MutationResult, 0, len(args.Mutants))
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	for i := 0; i < workers; i++ {
		group.Go(func() error {
			workspace, err := s.cloneWorkspace(args.Root)
			if err != nil {
				return err
			}

			defer s.cleanupWorkspace(workspace)

			for batch := range jobs {
				for _, mutant := range batch.mutants {
					if err := groupCtx.Err(); err != nil {
						return err
					}

					result := s.testMutant(groupCtx, workspace, mutant, args)

					mu.Lock()
					results = append(results, result)
					mu.Unlock()

					if args.OnResult != nil {
						args.OnResult(result)
					}
				}
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return results, err
	}

	return results, nil
}

// testMutant runs one mutant through patch, compile and test inside the
// worker's workspace. The workspace is always restored before the next
// mutant, whatever the outcome.
func (s *scheduler) testMutant(ctx context.Context, workspace m.Path, mutant m.OptimizedMutation, args ScheduleArgs) m.MutationResult {
	result := m.MutationResult{
		Mutation: mutant.Mutation,
		Impact:   mutant.Impact,
	}

	started := time.Now()

	restore, err := s.patcher.Apply(workspace, mutant.Mutation)
	if err != nil {
		result.Status = m.Error
		result.Detail = truncateDetail(err.Error())

		return result
	}

	defer func() {
		if err := restore(); err != nil {
			slog.Error("Failed to restore mutated file", "id", mutant.ID, "error", err)
		}
	}()

	if err := s.language.Compile(ctx, string(workspace)); err != nil {
		result.Status = m.Invalid
		result.Detail = truncateDetail(err.Error())
		result.Duration = time.Since(started)

		return result
	}

	outcome, err := s.runner.RunTests(ctx, string(workspace), testFilePaths(args.Tests, mutant.Mutation), args.Timeout)
	result.Duration = time.Since(started)

	switch {
	case errors.Is(err, adapter.ErrTestTimeout):
		result.Status = m.Timeout
		result.Detail = fmt.Sprintf("test run exceeded its time budget after %s", outcome.Duration.Round(time.Millisecond))
	case err != nil:
		result.Status = m.Error
		result.Detail = truncateDetail(err.Error())
	case outcome.BuildFailed:
		result.Status = m.Invalid
		result.Detail = truncateDetail(outcome.Output)
	case outcome.Failures > 0:
		result.Status = m.Killed
	default:
		result.Status = m.Survived
	}

	return result
}

func (s *scheduler) cloneWorkspace(root m.Path) (m.Path, error) {
	workspace, err := s.fsAdapter.CreateTempDir(workspacePattern)
	if err != nil {
		slog.Error("Failed to create workspace", "error", err)
		return "", fmt.Errorf("failed to create workspace: %w", err)
	}

	if err := s.fsAdapter.CopyDir(root, workspace); err != nil {
		s.cleanupWorkspace(workspace)
		slog.Error("Failed to copy project to workspace", "root", root, "workspace", workspace, "error", err)

		return "", fmt.Errorf("failed to copy project: %w", err)
	}

	return workspace, nil
}

// cleanupWorkspace removes the workspace, logging errors if cleanup fails.
func (s *scheduler) cleanupWorkspace(workspace m.Path) {
	if err := s.fsAdapter.RemoveAll(workspace); err != nil {
		slog.Error("Failed to clean up workspace", "workspace", workspace, "error", err)
	}
}

// batchByFile groups mutants by source file, keeping the input order of
// both files and mutants.
func batchByFile(mutants []m.OptimizedMutation) []fileBatch {
	index := make(map[m.Path]int)
	batches := make([]fileBatch, 0)

	for _, mutant := range mutants {
		i, ok := index[mutant.SourceFile]
		if !ok {
			i = len(batches)
			index[mutant.SourceFile] = i

			batches = append(batches, fileBatch{file: mutant.SourceFile})
		}

		batches[i].mutants = append(batches[i].mutants, mutant)
	}

	return batches
}

func testFilePaths(tests TestResolver, mutation m.Mutation) []string {
	if tests == nil {
		return nil
	}

	paths := tests.TestsFor(mutation)

	files := make([]string, 0, len(paths))
	for _, path := range paths {
		files = append(files, string(path))
	}

	return files
}

func truncateDetail(detail string) string {
	if len(detail) <= detailLimit {
		return detail
	}

	return detail[:detailLimit] + "..."
}
