package controller

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "sabot.dev/pkg/sabot/internal/model"
)

// reportModel browses a persisted report.
type reportModel struct {
	width   int
	height  int
	browser resultsBrowser
	summary m.RunSummary
}

func newReportModel(report m.Report, options ViewOptions) reportModel {
	var items []resultItem

	for _, file := range report.Files {
		for _, entry := range filterEntries(file.Entries, options) {
			items = append(items, resultItem{
				id:       entry.ID,
				file:     string(file.File),
				line:     entry.Line,
				strategy: string(entry.Strategy),
				status:   entry.Status,
				diff:     snippetDiff(entry.Original, entry.Mutated),
			})
		}
	}

	return reportModel{
		browser: newResultsBrowser().setItems(items),
		summary: report.Summary,
	}
}

func (pm reportModel) Init() tea.Cmd {
	return browserTick()
}

func (pm reportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.width = msg.Width
		pm.height = msg.Height

		return pm, nil

	case tickMsg:
		pm.browser = pm.browser.tick()

		return pm, browserTick()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return pm, tea.Quit
		default:
			var cmd tea.Cmd

			pm.browser, cmd = pm.browser.handleKey(msg)

			return pm, cmd
		}
	}

	return pm, nil
}

func (pm reportModel) View() string {
	accent := lipgloss.Color("6")

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(accent)

	title := titleStyle.Render("🧬 Sabot Mutation Report")

	summary := summaryStyle.Render(fmt.Sprintf(
		"Root: %s  •  Total: %s  •  Killed: %s  •  Survived: %s  •  Score: %s",
		accentStyle.Render(pm.summary.Root),
		accentStyle.Render(fmt.Sprintf("%d", pm.summary.Total)),
		accentStyle.Render(fmt.Sprintf("%d", pm.summary.Killed)),
		accentStyle.Render(fmt.Sprintf("%d", pm.summary.Survived)),
		accentStyle.Render(fmt.Sprintf("%.2f%%", pm.summary.Score)),
	))

	resultsBox := pm.browser.view(pm.width, pm.height, accent)

	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(pm.width).
		Render("↑/k up • ↓/j down • / filter • enter/space diff • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		resultsBox,
		footer,
	)
}
