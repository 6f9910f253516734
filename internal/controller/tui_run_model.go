package controller

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "sabot.dev/pkg/sabot/internal/model"
)

type tickMsg time.Time

func browserTick() tea.Cmd {
	return tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// runModel handles the TUI display during mutation testing: a progress
// screen while workers are busy, then the browsable results screen.
type runModel struct {
	width       int
	height      int
	progressBar progress.Model
	browser     resultsBrowser
	plan        RunPlan
	planned     bool
	completed   int
	killed      int
	survived    int
	invalid     int
	timeouts    int
	errors      int
	results     []resultItem
	summary     *m.RunSummary
	finished    bool
}

func newRunModel() runModel {
	bar := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	return runModel{
		progressBar: bar,
		browser:     newResultsBrowser(),
	}
}

func (rm runModel) Init() tea.Cmd {
	return browserTick()
}

func (rm runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		rm.width = msg.Width
		rm.height = msg.Height

		rm.progressBar.Width = rm.width - 8
		if rm.progressBar.Width < 20 {
			rm.progressBar.Width = 20
		}

		return rm, nil

	case tea.KeyMsg:
		return rm.handleKey(msg)

	case tickMsg:
		if rm.finished {
			rm.browser = rm.browser.tick()
		}

		return rm, browserTick()

	case planMsg:
		rm.plan = msg.plan
		rm.planned = true

		return rm, nil

	case resultMsg:
		return rm.handleResult(msg), nil

	case summaryMsg:
		summary := msg.summary
		rm.summary = &summary
		rm.finished = true

		return rm, nil
	}

	return rm, nil
}

func (rm runModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return rm, tea.Quit
	default:
		if !rm.finished {
			return rm, nil
		}

		var cmd tea.Cmd

		rm.browser, cmd = rm.browser.handleKey(msg)

		return rm, cmd
	}
}

func (rm runModel) handleResult(msg resultMsg) runModel {
	rm.completed++

	switch msg.result.Status {
	case m.Killed:
		rm.killed++
	case m.Survived:
		rm.survived++
	case m.Invalid:
		rm.invalid++
	case m.Timeout:
		rm.timeouts++
	case m.Error:
		rm.errors++
	}

	mut := msg.result.Mutation
	rm.results = append(rm.results, resultItem{
		id:       mut.ID,
		file:     string(mut.SourceFile),
		line:     mut.Line,
		strategy: string(mut.Strategy),
		status:   msg.result.Status.String(),
		diff:     snippetDiff(mut.OriginalText, mut.MutatedText),
	})

	rm.browser = rm.browser.setItems(rm.results)

	return rm
}

func (rm runModel) View() string {
	if !rm.planned {
		return "Preparing mutation run…\n"
	}

	if rm.finished {
		return rm.viewResults()
	}

	return rm.viewProgress()
}

func (rm runModel) viewProgress() string {
	accent := lipgloss.Color("6")

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(accent)

	title := titleStyle.Render("🧬 Sabot Mutation Testing")

	planLine := fmt.Sprintf(
		"Progress: %s / %s  •  Workers: %s",
		accentStyle.Render(fmt.Sprintf("%d", rm.completed)),
		accentStyle.Render(fmt.Sprintf("%d", rm.plan.Mutants)),
		accentStyle.Render(fmt.Sprintf("%d", rm.plan.Workers)),
	)
	if rm.plan.Shard != "" {
		planLine += "  •  Shard: " + accentStyle.Render(rm.plan.Shard)
	}

	summary := summaryStyle.Render(planLine)

	percent := 0.0
	if rm.plan.Mutants > 0 {
		percent = float64(rm.completed) / float64(rm.plan.Mutants)
	}

	progressView := lipgloss.NewStyle().
		Padding(0, 2).
		Render(rm.progressBar.ViewAs(percent))

	tally := lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(rm.renderTally())

	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(rm.width).
		Render("Press q to quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		progressView,
		tally,
		footer,
	)
}

func (rm runModel) renderTally() string {
	chip := func(color lipgloss.Color, label string, count int) string {
		return lipgloss.NewStyle().Foreground(color).Render(fmt.Sprintf("%s %d", label, count))
	}

	return chip(statusColor("killed"), "✓ killed", rm.killed) +
		"  " + chip(statusColor("survived"), "✗ survived", rm.survived) +
		"  " + chip(statusColor("invalid"), "~ invalid", rm.invalid) +
		"  " + chip(statusColor("timeout"), "⧖ timeout", rm.timeouts) +
		"  " + chip(statusColor("error"), "! error", rm.errors)
}

func (rm runModel) viewResults() string {
	accent := lipgloss.Color("6")

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(accent)

	title := titleStyle.Render("🧬 Sabot Run Results")

	score := 0.0
	if rm.summary != nil {
		score = rm.summary.Score
	}

	summary := summaryStyle.Render(fmt.Sprintf(
		"Total: %s  •  Killed: %s  •  Survived: %s  •  Score: %s",
		accentStyle.Render(fmt.Sprintf("%d", rm.completed)),
		accentStyle.Render(fmt.Sprintf("%d", rm.killed)),
		accentStyle.Render(fmt.Sprintf("%d", rm.survived)),
		accentStyle.Render(fmt.Sprintf("%.2f%%", score)),
	))

	resultsBox := rm.browser.view(rm.width, rm.height, accent)

	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(rm.width).
		Render("↑/k up • ↓/j down • / filter • enter/space diff • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		resultsBox,
		footer,
	)
}
