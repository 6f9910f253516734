package controller

import (
	m "sabot.dev/pkg/sabot/internal/model"
)

// Message types.
type estimationMsg struct {
	total     int
	fileStats map[string]int
	err       error
}

type planMsg struct {
	plan RunPlan
}

type resultMsg struct {
	result m.MutationResult
}

type summaryMsg struct {
	summary m.RunSummary
}

// List item types.
type fileItem struct {
	path  string
	count int
}

func (f fileItem) FilterValue() string {
	return f.path
}

// resultItem is one classified mutation in the results list.
type resultItem struct {
	id       string
	file     string
	line     int
	strategy string
	status   string
	diff     string
}

func (r resultItem) FilterValue() string {
	return r.id + " " + r.file + " " + r.strategy + " " + r.status
}
