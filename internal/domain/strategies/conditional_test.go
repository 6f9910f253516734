package strategies

import (
	"strings"
	"testing"
)

func TestConditionalMutate(t *testing.T) {
	t.Run("standalone if yields invert, force then, and removal", func(t *testing.T) {
		const src = `package example

func guard(n int) int {
	if n > 0 {
		return n
	}
	return 0
}
`

		mutations := collectMutations(t, src, Conditional{})

		if len(mutations) != 3 {
			t.Fatalf("expected 3 mutations, got %d: %v", len(mutations), descriptions(mutations))
		}

		invert := mutations[0]
		if invert.Description != "Conditional: invert condition" {
			t.Errorf("unexpected description: %q", invert.Description)
		}

		if !strings.Contains(invert.MutatedText, "!(n > 0)") {
			t.Errorf("expected inverted condition in %q", invert.MutatedText)
		}

		forced := mutations[1]
		if forced.Description != "Conditional: force then branch" {
			t.Errorf("unexpected description: %q", forced.Description)
		}

		if !strings.HasPrefix(forced.MutatedText, "{") || !strings.Contains(forced.MutatedText, "return n") {
			t.Errorf("expected a bare block forcing the then branch, got %q", forced.MutatedText)
		}

		removal := mutations[2]
		if removal.Description != "Conditional: remove if statement" {
			t.Errorf("unexpected description: %q", removal.Description)
		}

		if removal.Replacement != nil || removal.MutatedText != "" {
			t.Errorf("expected a deletion, got %q", removal.MutatedText)
		}
	})

	t.Run("if with else yields force else instead of removal", func(t *testing.T) {
		const src = `package example

func pick(a, b int) int {
	if a > b {
		return a
	} else {
		return b
	}
}
`

		mutations := collectMutations(t, src, Conditional{})

		if len(mutations) != 3 {
			t.Fatalf("expected 3 mutations, got %d: %v", len(mutations), descriptions(mutations))
		}

		forceElse := mutations[2]
		if forceElse.Description != "Conditional: force else branch" {
			t.Errorf("unexpected description: %q", forceElse.Description)
		}

		if !strings.Contains(forceElse.MutatedText, "return b") {
			t.Errorf("expected else body in %q", forceElse.MutatedText)
		}

		if countDescription(mutations, "Conditional: remove if statement") != 0 {
			t.Error("expected no removal when an else branch exists")
		}
	})

	t.Run("else-if keeps the dangling chain intact", func(t *testing.T) {
		const src = `package example

func classify(n int) string {
	if n > 10 {
		return "big"
	} else if n > 0 {
		return "small"
	}
	return "zero or less"
}
`

		mutations := collectMutations(t, src, Conditional{})

		// Outer if: invert, force then, force else. Inner else-if: invert
		// and force then only, since removing it would orphan the chain.
		if len(mutations) != 5 {
			t.Fatalf("expected 5 mutations, got %d: %v", len(mutations), descriptions(mutations))
		}

		if countDescription(mutations, "Conditional: remove if statement") != 0 {
			t.Error("expected no removal inside an else-if chain")
		}

		if countDescription(mutations, "Conditional: force else branch") != 1 {
			t.Errorf("expected exactly one force-else mutation, got %v", descriptions(mutations))
		}

		forceElse := mutations[2]
		if !strings.Contains(forceElse.MutatedText, "if n > 0") {
			t.Errorf("expected chained statement as branch body, got %q", forceElse.MutatedText)
		}
	})

	t.Run("init clause is hoisted into forced branches", func(t *testing.T) {
		const src = `package example

func lookup(cache map[string]int, key string) int {
	if v, ok := cache[key]; ok {
		return v
	}
	return 0
}
`

		mutations := collectMutations(t, src, Conditional{})

		if len(mutations) != 3 {
			t.Fatalf("expected 3 mutations, got %d: %v", len(mutations), descriptions(mutations))
		}

		forced := mutations[1]
		if !strings.Contains(forced.MutatedText, "v, ok := cache[key]") {
			t.Errorf("expected hoisted init clause in %q", forced.MutatedText)
		}

		if !strings.Contains(forced.MutatedText, "return v") {
			t.Errorf("expected branch body in %q", forced.MutatedText)
		}
	})

	t.Run("non-if nodes produce nothing", func(t *testing.T) {
		const src = `package example

func count(n int) int {
	total := 0
	for i := 0; i < n; i++ {
		total += i
	}
	return total
}
`

		if mutations := collectMutations(t, src, Conditional{}); len(mutations) != 0 {
			t.Errorf("expected no mutations, got %d: %v", len(mutations), descriptions(mutations))
		}
	})
}

func TestConditionalName(t *testing.T) {
	if got := (Conditional{}).Name(); got != "Conditional" {
		t.Errorf("expected Conditional, got %q", got)
	}
}
