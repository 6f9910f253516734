package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	m "sabot.dev/pkg/sabot/internal/model"
)

func TestMutationScore(t *testing.T) {
	require.Equal(t, 100.0, MutationScore(0, 0))
	require.Equal(t, 100.0, MutationScore(5, 0))
	require.Equal(t, 0.0, MutationScore(0, 5))
	require.Equal(t, 50.0, MutationScore(2, 2))
	require.Equal(t, 25.0, MutationScore(1, 3))
}

func TestMergeReports(t *testing.T) {
	started := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	earlier := started.Add(-30 * time.Minute)

	shards := []m.Report{
		{
			Summary: m.RunSummary{
				Root:      "/proj",
				StartedAt: started,
				Duration:  5 * time.Second,
				Total:     4,
				Killed:    2,
				Survived:  1,
				Invalid:   1,
			},
			Files: []m.FileReport{
				{
					File:   "b.go",
					Module: "pkg/b",
					Entries: []m.ReportEntry{
						{ID: "z1", Line: 9, Status: "killed"},
						{ID: "a2", Line: 3, Status: "survived"},
					},
				},
			},
		},
		{
			Summary: m.RunSummary{
				Root:      "/ignored",
				StartedAt: earlier,
				Duration:  7 * time.Second,
				Total:     2,
				Killed:    1,
				Survived:  1,
			},
			Files: []m.FileReport{
				{
					File:    "a.go",
					Entries: []m.ReportEntry{{ID: "k1", Line: 4, Status: "killed"}},
				},
				{
					File:    "b.go",
					Entries: []m.ReportEntry{{ID: "a1", Line: 3, Status: "killed"}},
				},
			},
		},
	}

	merged := MergeReports(shards)

	require.Equal(t, "/proj", merged.Summary.Root)
	require.Equal(t, earlier, merged.Summary.StartedAt)
	require.Equal(t, 7*time.Second, merged.Summary.Duration)
	require.Equal(t, 6, merged.Summary.Total)
	require.Equal(t, 3, merged.Summary.Killed)
	require.Equal(t, 2, merged.Summary.Survived)
	require.Equal(t, 1, merged.Summary.Invalid)
	require.Equal(t, 2, merged.Summary.Files)
	require.Equal(t, 60.0, merged.Summary.Score)

	require.Len(t, merged.Files, 2)
	require.Equal(t, m.Path("a.go"), merged.Files[0].File)
	require.Equal(t, m.Path("b.go"), merged.Files[1].File)
	require.Equal(t, "pkg/b", merged.Files[1].Module)

	ids := make([]string, 0, len(merged.Files[1].Entries))
	for _, entry := range merged.Files[1].Entries {
		ids = append(ids, entry.ID)
	}

	require.Equal(t, []string{"a1", "a2", "z1"}, ids)
}

func TestMergeReports_NoShardsScores100(t *testing.T) {
	merged := MergeReports(nil)

	require.Equal(t, 100.0, merged.Summary.Score)
	require.Zero(t, merged.Summary.Total)
	require.Empty(t, merged.Files)
}

func TestSortEntries(t *testing.T) {
	entries := []m.ReportEntry{
		{ID: "b", Line: 5},
		{ID: "z", Line: 2},
		{ID: "a", Line: 5},
	}

	sortEntries(entries)

	require.Equal(t, "z", entries[0].ID)
	require.Equal(t, "a", entries[1].ID)
	require.Equal(t, "b", entries[2].ID)
}

func TestNewRunSummary(t *testing.T) {
	summary := newRunSummary("/proj", "2/4", 7)

	require.Equal(t, "/proj", summary.Root)
	require.Equal(t, "2/4", summary.Shard)
	require.Equal(t, 7, summary.Files)
	require.False(t, summary.StartedAt.IsZero())
	require.Equal(t, time.UTC, summary.StartedAt.Location())
}
