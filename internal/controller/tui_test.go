package controller

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	m "sabot.dev/pkg/sabot/internal/model"
)

func TestTUI_StartOutsideRunMode(t *testing.T) {
	tests := []struct {
		name    string
		options []StartOption
	}{
		{"estimate mode", []StartOption{WithEstimateMode()}},
		{"view mode", []StartOption{WithViewMode()}},
		{"no mode", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			tui := NewTUI(&buf)

			if err := tui.Start(context.Background(), tt.options...); err != nil {
				t.Fatalf("Start() error = %v", err)
			}

			if tui.program != nil {
				t.Fatal("only run mode should launch the interactive program")
			}

			// Without a program these forward nowhere and stay silent.
			tui.DisplayRunPlan(context.Background(), RunPlan{Files: 1, Mutants: 2, Workers: 1})
			tui.DisplayResult(context.Background(), m.MutationResult{})

			if buf.Len() != 0 {
				t.Errorf("expected no output, got: %s", buf.String())
			}
		})
	}
}

func TestTUI_StartCancelledContext(t *testing.T) {
	var buf bytes.Buffer

	tui := NewTUI(&buf)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := tui.Start(ctx, WithRunMode()); err == nil {
		t.Error("Start() should propagate the cancelled context")
	}

	if tui.program != nil {
		t.Error("cancelled context should not launch the program")
	}
}

func TestTUI_DisplaySummaryWithoutProgram(t *testing.T) {
	var buf bytes.Buffer

	tui := NewTUI(&buf)

	tui.DisplaySummary(context.Background(), m.RunSummary{
		Total:    4,
		Killed:   3,
		Survived: 1,
		Score:    75,
	})

	want := "Tested 4 mutation(s): 3 killed, 1 survived, score 75.00%\n"
	if got := buf.String(); got != want {
		t.Errorf("DisplaySummary() output = %q, want %q", got, want)
	}
}

func TestTUI_DisplayEstimationError(t *testing.T) {
	var buf bytes.Buffer

	tui := NewTUI(&buf)

	wantErr := context.DeadlineExceeded

	err := tui.DisplayEstimation(context.Background(), nil, wantErr)
	if err != wantErr {
		t.Fatalf("DisplayEstimation() error = %v, want %v", err, wantErr)
	}

	if !strings.Contains(buf.String(), "estimation error: context deadline exceeded") {
		t.Errorf("output should report the estimation error, got: %s", buf.String())
	}
}

func TestTUI_WaitAndCloseWithoutProgram(t *testing.T) {
	var buf bytes.Buffer

	tui := NewTUI(&buf)

	tui.Close(context.Background())

	done := make(chan struct{})

	go func() {
		tui.Wait(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Wait() should return immediately when no program was started")
	}
}

func TestSnippetDiff(t *testing.T) {
	t.Run("empty snippets produce no diff", func(t *testing.T) {
		if got := snippetDiff("", ""); got != "" {
			t.Errorf("snippetDiff() = %q, want empty", got)
		}
	})

	t.Run("changed snippet renders a unified diff", func(t *testing.T) {
		diff := snippetDiff("a + b", "a - b")

		wantContains := []string{
			"--- original",
			"+++ mutated",
			"-a + b",
			"+a - b",
		}
		for _, want := range wantContains {
			if !strings.Contains(diff, want) {
				t.Errorf("snippetDiff() missing %q, got:\n%s", want, diff)
			}
		}

		if strings.HasSuffix(diff, "\n") {
			t.Error("snippetDiff() should not end with a trailing newline")
		}
	})
}

func TestInlineHighlight(t *testing.T) {
	if got := inlineHighlight("x", "x"); got != "x" {
		t.Errorf("identical snippets should render unchanged, got %q", got)
	}

	highlighted := inlineHighlight("a + b", "a - b")

	if !strings.Contains(highlighted, "\x1b[31m") {
		t.Errorf("removed text should be colored, got %q", highlighted)
	}

	if !strings.Contains(highlighted, "\x1b[32m") {
		t.Errorf("inserted text should be colored, got %q", highlighted)
	}
}
