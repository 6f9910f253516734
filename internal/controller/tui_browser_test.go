package controller

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestResultsBrowser_ToggleDiff(t *testing.T) {
	browser := newResultsBrowser().setItems([]resultItem{
		{
			id:       "aaaa1111bbbb",
			file:     "calc.go",
			line:     4,
			strategy: "Arithmetic",
			status:   "survived",
			diff:     "-a + b\n+a - b",
		},
	})

	enter := tea.KeyMsg{Type: tea.KeyEnter}

	browser, _ = browser.handleKey(enter)
	if !browser.showDiff {
		t.Fatal("enter should reveal the diff for the selected result")
	}

	if browser.selectedPath != "calc.go" {
		t.Errorf("selectedPath = %q, want calc.go", browser.selectedPath)
	}

	browser, _ = browser.handleKey(enter)
	if browser.showDiff {
		t.Error("a second enter should hide the diff")
	}
}

func TestResultsBrowser_ToggleWithoutDiff(t *testing.T) {
	browser := newResultsBrowser().setItems([]resultItem{
		{id: "aaaa1111bbbb", file: "calc.go", status: "killed"},
	})

	browser, _ = browser.handleKey(tea.KeyMsg{Type: tea.KeyEnter})

	if browser.showDiff {
		t.Error("results without a diff keep the box hidden")
	}
}

func TestStatusColor(t *testing.T) {
	if statusColor("killed") == statusColor("survived") {
		t.Error("killed and survived should use distinct colors")
	}

	if statusColor("nonsense") != statusColor("unknown") {
		t.Error("unrecognized statuses should share the fallback color")
	}
}

func TestTruncateToWidth(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{"fits unchanged", "calc.go", 10, "calc.go"},
		{"overflow keeps prefix and ellipsis", "internal/domain/workflow.go", 10, "internal/…"},
		{"zero width", "calc.go", 0, ""},
		{"width one", "calc.go", 1, "…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncateToWidth(tt.text, tt.width); got != tt.want {
				t.Errorf("truncateToWidth(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}

func TestAnimateScroll(t *testing.T) {
	t.Run("fitting text never scrolls", func(t *testing.T) {
		if got := animateScroll("calc.go", 20, 42); got != "calc.go" {
			t.Errorf("animateScroll() = %q, want calc.go", got)
		}
	})

	t.Run("pauses before the first shift", func(t *testing.T) {
		if got := animateScroll("abcdefghij", 5, 2); got != "abcd…" {
			t.Errorf("animateScroll() = %q, want abcd…", got)
		}
	})

	t.Run("scrolls one rune per tick after the pause", func(t *testing.T) {
		if got := animateScroll("abcdefghij", 5, 6); got != "bcdef" {
			t.Errorf("animateScroll() = %q, want bcdef", got)
		}
	})

	t.Run("wraps through the gap", func(t *testing.T) {
		if got := animateScroll("abcdefghij", 5, 14); got != "j   a" {
			t.Errorf("animateScroll() = %q, want %q", got, "j   a")
		}
	})
}
