package controller

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestEstimateModel_ViewBeforeData(t *testing.T) {
	em := newEstimateModel()

	if got := em.View(); got != "Loading mutation list…\n" {
		t.Errorf("View() = %q, want the loading message", got)
	}
}

func TestEstimateModel_View(t *testing.T) {
	em := newEstimateModel().withEstimation(estimationMsg{
		total: 7,
		fileStats: map[string]int{
			"calc.go": 4,
			"util.go": 3,
		},
	})

	updated, _ := em.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	em, ok := updated.(estimateModel)
	if !ok {
		t.Fatalf("Update() returned %T, want estimateModel", updated)
	}

	view := em.View()

	wantStrings := []string{
		"🧬 Sabot Mutation Estimate",
		"Total Mutations:",
		"Files:",
		"calc.go",
		"util.go",
		"File Path",
		"q quit",
	}
	for _, want := range wantStrings {
		if !strings.Contains(view, want) {
			t.Errorf("View() should contain %q, got:\n%s", want, view)
		}
	}
}

func TestEstimateModel_QuitKey(t *testing.T) {
	em := newEstimateModel().withEstimation(estimationMsg{total: 1, fileStats: map[string]int{"calc.go": 1}})

	_, cmd := em.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should quit the program")
	}

	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should produce a quit message")
	}
}
