package model

import "time"

// ReportEntry is the serializable form of one MutationResult.
type ReportEntry struct {
	ID          string        `yaml:"id"`
	Strategy    StrategyName  `yaml:"strategy"`
	Line        int           `yaml:"line"`
	Column      int           `yaml:"column,omitempty"`
	Function    string        `yaml:"function,omitempty"`
	Description string        `yaml:"description"`
	Status      string        `yaml:"status"`
	Impact      int           `yaml:"impact,omitempty"`
	Duration    time.Duration `yaml:"duration,omitempty"`
	Original    string        `yaml:"original,omitempty"`
	Mutated     string        `yaml:"mutated,omitempty"`
	Detail      string        `yaml:"detail,omitempty"`
}

// FileReport groups the entries for one mutated source file.
type FileReport struct {
	File    Path          `yaml:"file"`
	Module  string        `yaml:"module,omitempty"`
	Entries []ReportEntry `yaml:"entries"`
}

// EntryFromResult converts a terminal result to its serializable form.
func EntryFromResult(r MutationResult) ReportEntry {
	return ReportEntry{
		ID:          r.Mutation.ID,
		Strategy:    r.Mutation.Strategy,
		Line:        r.Mutation.Line,
		Column:      r.Mutation.Column,
		Function:    r.Mutation.Function,
		Description: r.Mutation.Description,
		Status:      r.Status.String(),
		Impact:      r.Impact,
		Duration:    r.Duration,
		Original:    r.Mutation.OriginalText,
		Mutated:     r.Mutation.MutatedText,
		Detail:      r.Detail,
	}
}

// RunSummary aggregates a whole run for display and persistence.
type RunSummary struct {
	Root      string        `yaml:"root"`
	Shard     string        `yaml:"shard,omitempty"`
	StartedAt time.Time     `yaml:"started_at"`
	Duration  time.Duration `yaml:"duration"`
	Files     int           `yaml:"files"`
	Total     int           `yaml:"total"`
	Killed    int           `yaml:"killed"`
	Survived  int           `yaml:"survived"`
	Invalid   int           `yaml:"invalid"`
	Timeouts  int           `yaml:"timeouts"`
	Errors    int           `yaml:"errors"`
	Score     float64       `yaml:"score"`
}

// Report is the persisted document for one run or one shard: the
// summary plus every per-file result.
type Report struct {
	Summary RunSummary   `yaml:"summary"`
	Files   []FileReport `yaml:"files"`
}

// Count records one classified result in the summary tallies. Score is
// not recomputed here; callers derive it once tallying is complete.
func (s *RunSummary) Count(status TestStatus) {
	s.Total++

	switch status {
	case Killed:
		s.Killed++
	case Survived:
		s.Survived++
	case Invalid:
		s.Invalid++
	case Timeout:
		s.Timeouts++
	case Error:
		s.Errors++
	}
}

// Estimation holds per-strategy candidate counts for one file.
type Estimation map[StrategyName]int

// Total sums the per-strategy counts.
func (e Estimation) Total() int {
	total := 0
	for _, n := range e {
		total += n
	}

	return total
}
