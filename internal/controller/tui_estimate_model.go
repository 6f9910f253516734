package controller

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// estimateDelegate renders one file-and-count line.
type estimateDelegate struct {
	offset int
}

func (d estimateDelegate) Height() int  { return 1 }
func (d estimateDelegate) Spacing() int { return 0 }
func (d estimateDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d estimateDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	file, ok := item.(fileItem)
	if !ok {
		return
	}

	isSelected := index == lm.Index()
	pathWidth := lm.Width() - 8 // count column plus spacing

	var pathStyle, countStyle lipgloss.Style

	var displayPath string

	if isSelected {
		selected := lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)

		pathStyle = selected
		countStyle = selected.Width(6).Align(lipgloss.Right)
		displayPath = animateScroll(file.path, pathWidth, d.offset)
	} else {
		pathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true).
			Width(6).
			Align(lipgloss.Right)

		displayPath = truncateToWidth(file.path, pathWidth)
	}

	line := fmt.Sprintf("%s  %s",
		countStyle.Render(fmt.Sprintf("%d", file.count)),
		pathStyle.Render(displayPath),
	)
	_, _ = fmt.Fprint(w, line)
}

// estimateModel lists candidate mutation counts per file.
type estimateModel struct {
	width      int
	height     int
	fileList   list.Model
	delegate   estimateDelegate
	total      int
	totalFiles int
	rendered   bool
	animOffset int
}

func newEstimateModel() estimateModel {
	delegate := estimateDelegate{}
	fileList := list.New([]list.Item{}, delegate, 80, 20)
	fileList.SetShowPagination(false)
	fileList.SetShowFilter(true)
	fileList.SetShowHelp(false)
	fileList.SetShowTitle(false)
	fileList.SetShowStatusBar(false)
	fileList.FilterInput.Placeholder = "Filter by path…"

	return estimateModel{
		fileList: fileList,
		delegate: delegate,
	}
}

// withEstimation fills the list before the program starts.
func (em estimateModel) withEstimation(msg estimationMsg) estimateModel {
	em.total = msg.total
	em.totalFiles = len(msg.fileStats)

	paths := make([]string, 0, len(msg.fileStats))
	for path := range msg.fileStats {
		paths = append(paths, path)
	}

	sort.Strings(paths)

	items := make([]list.Item, 0, len(paths))
	for _, path := range paths {
		items = append(items, fileItem{path: path, count: msg.fileStats[path]})
	}

	em.fileList.SetItems(items)
	em.rendered = true

	return em
}

func (em estimateModel) Init() tea.Cmd {
	return browserTick()
}

func (em estimateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		em.width = msg.Width
		em.height = msg.Height

		return em, nil

	case tickMsg:
		if em.fileList.FilterState() != list.Filtering && em.rendered {
			em.animOffset++
			em.delegate.offset = em.animOffset
			em.fileList.SetDelegate(em.delegate)
		}

		return em, browserTick()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return em, tea.Quit
		default:
			var cmd tea.Cmd

			em.fileList, cmd = em.fileList.Update(msg)

			return em, cmd
		}
	}

	return em, nil
}

func (em estimateModel) View() string {
	if !em.rendered {
		return "Loading mutation list…\n"
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	title := titleStyle.Render("🧬 Sabot Mutation Estimate")

	summary := summaryStyle.Render(fmt.Sprintf(
		"Total Mutations: %s   Files: %s",
		accentStyle.Render(fmt.Sprintf("%d", em.total)),
		accentStyle.Render(fmt.Sprintf("%d", em.totalFiles)),
	))

	table := em.renderTable()

	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(em.width).
		Render("↑/k up • ↓/j down • g/G top/bottom • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		table,
		footer,
	)
}

func (em estimateModel) renderTable() string {
	listHeight := em.height - 9
	if listHeight < 5 {
		listHeight = 5
	}

	listWidth := em.width - 6

	em.fileList.SetHeight(listHeight)
	em.fileList.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%6s  %s", "Count", "File Path"))

	container := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return container.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			em.fileList.View(),
		),
	)
}
