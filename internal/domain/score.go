package domain

import (
	"sort"
	"time"

	m "sabot.dev/pkg/sabot/internal/model"
)

// MutationScore returns the percentage of killed mutants among those
// with a definite verdict. Invalid, timeout and error results stay out
// of the denominator; an empty denominator scores 100.
func MutationScore(killed, survived int) float64 {
	total := killed + survived
	if total == 0 {
		return 100.0
	}

	return float64(killed) / float64(total) * 100.0
}

// MergeReports folds shard reports into one document. Tallies are
// summed, the score is recomputed from the summed verdicts, and file
// sections from all shards are concatenated and re-sorted. Entries for
// the same file are merged into one section.
func MergeReports(reports []m.Report) m.Report {
	var merged m.Report

	byFile := make(map[m.Path]int)

	for _, report := range reports {
		summary := report.Summary

		if merged.Summary.Root == "" {
			merged.Summary.Root = summary.Root
		}

		if merged.Summary.StartedAt.IsZero() || (!summary.StartedAt.IsZero() && summary.StartedAt.Before(merged.Summary.StartedAt)) {
			merged.Summary.StartedAt = summary.StartedAt
		}

		if summary.Duration > merged.Summary.Duration {
			merged.Summary.Duration = summary.Duration
		}

		merged.Summary.Total += summary.Total
		merged.Summary.Killed += summary.Killed
		merged.Summary.Survived += summary.Survived
		merged.Summary.Invalid += summary.Invalid
		merged.Summary.Timeouts += summary.Timeouts
		merged.Summary.Errors += summary.Errors

		for _, file := range report.Files {
			i, ok := byFile[file.File]
			if !ok {
				i = len(merged.Files)
				byFile[file.File] = i

				merged.Files = append(merged.Files, m.FileReport{File: file.File, Module: file.Module})
			}

			merged.Files[i].Entries = append(merged.Files[i].Entries, file.Entries...)
		}
	}

	sort.Slice(merged.Files, func(i, j int) bool {
		return merged.Files[i].File < merged.Files[j].File
	})

	for i := range merged.Files {
		sortEntries(merged.Files[i].Entries)
	}

	merged.Summary.Files = len(merged.Files)
	merged.Summary.Score = MutationScore(merged.Summary.Killed, merged.Summary.Survived)

	return merged
}

func sortEntries(entries []m.ReportEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Line != entries[j].Line {
			return entries[i].Line < entries[j].Line
		}

		return entries[i].ID < entries[j].ID
	})
}

// newRunSummary seeds the summary for a run over the given root.
func newRunSummary(root m.Path, shard string, files int) m.RunSummary {
	return m.RunSummary{
		Root:      string(root),
		Shard:     shard,
		StartedAt: time.Now().UTC(),
		Files:     files,
	}
}
