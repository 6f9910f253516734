package strategies

import (
	"fmt"
	"go/token"
	"testing"

	m "sabot.dev/pkg/sabot/internal/model"
)

func TestArithmeticMutate(t *testing.T) {
	t.Run("generates swap and identity for addition", func(t *testing.T) {
		const src = `package example

func add(a, b int) int {
	return a + b
}
`

		mutations := collectMutations(t, src, Arithmetic{})

		if len(mutations) != 2 {
			t.Fatalf("expected 2 mutations, got %d: %v", len(mutations), descriptions(mutations))
		}

		swap := mutations[0]
		if swap.Description != "Arithmetic: replace + with -" {
			t.Errorf("unexpected swap description: %q", swap.Description)
		}

		if swap.OriginalText != "a + b" {
			t.Errorf("unexpected original text: %q", swap.OriginalText)
		}

		if swap.MutatedText != "a - b" {
			t.Errorf("unexpected mutated text: %q", swap.MutatedText)
		}

		identity := mutations[1]
		if identity.Description != "Arithmetic: replace expression with 0" {
			t.Errorf("unexpected identity description: %q", identity.Description)
		}

		if identity.MutatedText != "0" {
			t.Errorf("unexpected identity text: %q", identity.MutatedText)
		}

		for _, mut := range mutations {
			if mut.Strategy != m.StrategyArithmetic {
				t.Errorf("expected arithmetic strategy, got %v", mut.Strategy)
			}

			if mut.Function != "add" {
				t.Errorf("expected enclosing function add, got %q", mut.Function)
			}

			if mut.Line != 4 {
				t.Errorf("expected line 4, got %d", mut.Line)
			}
		}
	})

	t.Run("pairs every operator with its inverse and identity", func(t *testing.T) {
		tests := []struct {
			expr     string
			swapDesc string
			swapText string
			identity string
		}{
			{"a - b", "Arithmetic: replace - with +", "a + b", "0"},
			{"a * b", "Arithmetic: replace * with /", "a / b", "1"},
			{"a / b", "Arithmetic: replace / with *", "a * b", "1"},
		}

		for _, tt := range tests {
			t.Run(tt.expr, func(t *testing.T) {
				src := fmt.Sprintf(`package example

func calc(a, b int) int {
	return %s
}
`, tt.expr)

				mutations := collectMutations(t, src, Arithmetic{})

				if len(mutations) != 2 {
					t.Fatalf("expected 2 mutations, got %d", len(mutations))
				}

				if mutations[0].Description != tt.swapDesc {
					t.Errorf("expected %q, got %q", tt.swapDesc, mutations[0].Description)
				}

				if mutations[0].MutatedText != tt.swapText {
					t.Errorf("expected %q, got %q", tt.swapText, mutations[0].MutatedText)
				}

				if mutations[1].MutatedText != tt.identity {
					t.Errorf("expected identity %q, got %q", tt.identity, mutations[1].MutatedText)
				}
			})
		}
	})

	t.Run("modulo is not mutated", func(t *testing.T) {
		const src = `package example

func wrap(a, b int) int {
	return a % b
}
`

		if mutations := collectMutations(t, src, Arithmetic{}); len(mutations) != 0 {
			t.Errorf("expected no mutations for modulo, got %d", len(mutations))
		}
	})

	t.Run("returns nothing without arithmetic operators", func(t *testing.T) {
		const src = `package example

func identity(a int) int {
	return a
}
`

		if mutations := collectMutations(t, src, Arithmetic{}); len(mutations) != 0 {
			t.Errorf("expected no mutations, got %d", len(mutations))
		}
	})
}

func TestArithmeticName(t *testing.T) {
	if got := (Arithmetic{}).Name(); got != "Arithmetic" {
		t.Errorf("expected Arithmetic, got %q", got)
	}
}

func TestIsArithmeticOp(t *testing.T) {
	tests := []struct {
		op       token.Token
		expected bool
	}{
		{token.ADD, true},
		{token.SUB, true},
		{token.MUL, true},
		{token.QUO, true},
		{token.REM, false},
		{token.EQL, false},
		{token.LAND, false},
		{token.ILLEGAL, false},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			if got := isArithmeticOp(tt.op); got != tt.expected {
				t.Errorf("isArithmeticOp(%s) = %v, expected %v", tt.op, got, tt.expected)
			}
		})
	}
}

func TestArithmeticInverse(t *testing.T) {
	tests := []struct {
		op       token.Token
		expected token.Token
	}{
		{token.ADD, token.SUB},
		{token.SUB, token.ADD},
		{token.MUL, token.QUO},
		{token.QUO, token.MUL},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			if got := arithmeticInverse(tt.op); got != tt.expected {
				t.Errorf("arithmeticInverse(%s) = %s, expected %s", tt.op, got, tt.expected)
			}
		})
	}
}

func TestIdentityLiteral(t *testing.T) {
	tests := []struct {
		op       token.Token
		expected string
	}{
		{token.ADD, "0"},
		{token.SUB, "0"},
		{token.MUL, "1"},
		{token.QUO, "1"},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			lit := identityLiteral(tt.op)

			if lit.Kind != token.INT {
				t.Errorf("expected INT literal, got %v", lit.Kind)
			}

			if lit.Value != tt.expected {
				t.Errorf("identityLiteral(%s) = %s, expected %s", tt.op, lit.Value, tt.expected)
			}
		})
	}
}
