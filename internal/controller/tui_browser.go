package controller

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// resultDelegate renders one classified mutation per list line.
type resultDelegate struct {
	offset int
}

func (d resultDelegate) Height() int  { return 1 }
func (d resultDelegate) Spacing() int { return 0 }
func (d resultDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d resultDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	result, ok := item.(resultItem)
	if !ok {
		return
	}

	isSelected := index == lm.Index()
	location := fmt.Sprintf("%s:%d", result.file, result.line)
	locationWidth := lm.Width() - 38 // ID, status and strategy columns plus spacing

	var idStyle, statusStyle, strategyStyle, locationStyle lipgloss.Style

	var displayLocation string

	if isSelected {
		selected := lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)

		idStyle = selected
		statusStyle = selected
		strategyStyle = selected
		locationStyle = selected
		displayLocation = animateScroll(location, locationWidth, d.offset)
	} else {
		idStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
		statusStyle = lipgloss.NewStyle().Foreground(statusColor(result.status)).Bold(true)
		strategyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
		locationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		displayLocation = truncateToWidth(location, locationWidth)
	}

	line := fmt.Sprintf("%s  %s  %s  %s",
		idStyle.Render(fmt.Sprintf("%-8s", shortID(result.id))),
		statusStyle.Render(fmt.Sprintf("%-8s", result.status)),
		strategyStyle.Render(fmt.Sprintf("%-12s", result.strategy)),
		locationStyle.Render(displayLocation),
	)
	_, _ = fmt.Fprint(w, line)
}

func statusColor(status string) lipgloss.Color {
	switch status {
	case "killed":
		return lipgloss.Color("2")
	case "survived":
		return lipgloss.Color("1")
	case "invalid":
		return lipgloss.Color("3")
	case "timeout":
		return lipgloss.Color("5")
	case "error":
		return lipgloss.Color("1")
	default:
		return lipgloss.Color("8")
	}
}

// resultsBrowser is the shared list-plus-diff pane used by the run and
// report screens.
type resultsBrowser struct {
	list         list.Model
	delegate     resultDelegate
	animOffset   int
	lastSelected int
	showDiff     bool
	selectedDiff string
	selectedPath string
}

func newResultsBrowser() resultsBrowser {
	delegate := resultDelegate{}
	items := list.New([]list.Item{}, delegate, 80, 20)
	items.SetShowPagination(false)
	items.SetShowFilter(true)
	items.SetShowHelp(false)
	items.SetShowTitle(false)
	items.SetShowStatusBar(false)
	items.FilterInput.Placeholder = "Filter results…"

	return resultsBrowser{
		list:         items,
		delegate:     delegate,
		lastSelected: -1,
	}
}

func (b resultsBrowser) setItems(results []resultItem) resultsBrowser {
	items := make([]list.Item, 0, len(results))
	for _, result := range results {
		items = append(items, result)
	}

	b.list.SetItems(items)

	return b
}

// handleKey forwards navigation to the list and toggles the diff box on
// enter or space.
func (b resultsBrowser) handleKey(msg tea.KeyMsg) (resultsBrowser, tea.Cmd) {
	if b.list.FilterState() != list.Filtering && (msg.String() == "enter" || msg.String() == " ") {
		b = b.toggleSelectedDiff()
		return b, nil
	}

	var cmd tea.Cmd

	b.list, cmd = b.list.Update(msg)

	if b.list.Index() != b.lastSelected {
		b.lastSelected = b.list.Index()
		b.animOffset = 0
		b.delegate.offset = 0
		b.list.SetDelegate(b.delegate)
		b.showDiff = false
		b.selectedDiff = ""
		b.selectedPath = ""
	}

	return b, cmd
}

// tick advances the marquee animation for the selected line.
func (b resultsBrowser) tick() resultsBrowser {
	if b.list.FilterState() == list.Filtering {
		return b
	}

	b.animOffset++
	b.delegate.offset = b.animOffset
	b.list.SetDelegate(b.delegate)

	return b
}

func (b resultsBrowser) toggleSelectedDiff() resultsBrowser {
	item := b.list.SelectedItem()

	result, ok := item.(resultItem)
	if !ok {
		return b
	}

	diff := strings.TrimSpace(result.diff)
	if diff == "" || (b.showDiff && b.selectedDiff == diff) {
		b.showDiff = false
		b.selectedDiff = ""
		b.selectedPath = ""

		return b
	}

	b.showDiff = true
	b.selectedDiff = diff
	b.selectedPath = result.file

	return b
}

// view renders the bordered results table plus the optional diff box.
func (b resultsBrowser) view(width, height int, accent lipgloss.Color) string {
	listWidth := width - 4
	diffHeight := b.diffBoxHeight(height)

	listHeight := height - 9 - diffHeight
	if listHeight < 5 {
		listHeight = 5
	}

	b.list.SetHeight(listHeight)
	b.list.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%-8s  %-8s  %-12s  %s", "ID", "Status", "Strategy", "Location"))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Margin(0, 1, 0, 0).
		Padding(0, 1)

	resultsBox := boxStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			b.list.View(),
		),
	)

	diffBox := b.renderDiffBox(accent, listWidth, height)
	if diffBox == "" {
		return resultsBox
	}

	return lipgloss.JoinVertical(lipgloss.Left, resultsBox, diffBox)
}

func (b resultsBrowser) diffMaxLines(height int) int {
	maxLines := height / 3
	if maxLines < 6 {
		maxLines = 6
	}

	if maxLines > 20 {
		maxLines = 20
	}

	return maxLines
}

func (b resultsBrowser) diffBoxHeight(height int) int {
	if !b.showDiff {
		return 0
	}

	diff := strings.TrimSpace(b.selectedDiff)
	if diff == "" {
		return 0
	}

	lines := strings.Split(diff, "\n")

	maxLines := b.diffMaxLines(height)
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}

	return len(lines) + 3
}

func (b resultsBrowser) renderDiffBox(accent lipgloss.Color, width, height int) string {
	if !b.showDiff {
		return ""
	}

	diff := strings.TrimSpace(b.selectedDiff)
	if diff == "" {
		return ""
	}

	lines := strings.Split(diff, "\n")
	maxLines := b.diffMaxLines(height)
	truncated := false

	if len(lines) > maxLines {
		lines = lines[:maxLines-1]
		truncated = true
	}

	contentWidth := width - 4
	if contentWidth < 10 {
		contentWidth = 10
	}

	bodyLines := make([]string, 0, len(lines)+1)
	for _, line := range lines {
		bodyLines = append(bodyLines, renderDiffLine(line, contentWidth))
	}

	if truncated {
		bodyLines = append(bodyLines, truncateToWidth("…", contentWidth))
	}

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true)

	headerText := "Diff"
	if b.selectedPath != "" {
		headerText = "Diff • " + b.selectedPath
	}

	header := headerStyle.Render(truncateToWidth(headerText, contentWidth))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Margin(0, 1, 0, 0).
		Padding(0, 1).
		Width(width)

	body := lipgloss.JoinVertical(lipgloss.Left, bodyLines...)

	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, body))
}

func renderDiffLine(line string, width int) string {
	trimmed := strings.TrimSpace(line)

	style := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	switch {
	case strings.HasPrefix(line, "+++"):
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	case strings.HasPrefix(line, "---"):
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	case strings.HasPrefix(line, "@@"):
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	case strings.HasPrefix(line, "+"):
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	case strings.HasPrefix(line, "-"):
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	case trimmed == "":
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	}

	return style.Render(truncateToWidth(line, width))
}

// animateScroll marquee-scrolls text that overflows width, pausing a few
// ticks before the first shift.
func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const gap = "   "

	const pause = 5

	if offset < pause {
		return truncateToWidth(text, width)
	}

	runes := []rune(text + gap)
	n := len(runes)

	if n == 0 {
		return ""
	}

	start := (offset - pause) % n

	window := make([]rune, 0, width)
	for i := 0; i < width; i++ {
		window = append(window, runes[(start+i)%n])
	}

	return string(window)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	kept := make([]rune, 0, len(text))
	for _, r := range text {
		runeWidth := lipgloss.Width(string(r))
		if currentWidth+runeWidth > maxWidth {
			break
		}

		kept = append(kept, r)
		currentWidth += runeWidth
	}

	return string(kept) + ellipsis
}
