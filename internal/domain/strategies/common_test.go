package strategies

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	m "sabot.dev/pkg/sabot/internal/model"
)

// mutator is the strategy surface exercised by the helpers below.
type mutator interface {
	Name() string
	Mutate(node ast.Node, ctx Context) []m.Mutation
}

// collectMutations parses src as one file and applies the strategy at
// every node, tracking the immediate parent and the enclosing function
// the way the tree walker does.
func collectMutations(t *testing.T, src string, s mutator) []m.Mutation {
	t.Helper()

	fset := token.NewFileSet()

	file, err := parser.ParseFile(fset, "example.go", src, parser.ParseComments)
	if err != nil {
		t.Fatalf("failed to parse source: %v", err)
	}

	var (
		stack     []ast.Node
		mutations []m.Mutation
	)

	ast.Inspect(file, func(n ast.Node) bool {
		if n == nil {
			stack = stack[:len(stack)-1]
			return true
		}

		ctx := Context{Path: "example.go", Fset: fset, Function: enclosingFuncName(stack, n)}
		if len(stack) > 0 {
			ctx.Parent = stack[len(stack)-1]
		}

		mutations = append(mutations, s.Mutate(n, ctx)...)
		stack = append(stack, n)

		return true
	})

	return mutations
}

func enclosingFuncName(stack []ast.Node, n ast.Node) string {
	if fd, ok := n.(*ast.FuncDecl); ok {
		return fd.Name.Name
	}

	for i := len(stack) - 1; i >= 0; i-- {
		if fd, ok := stack[i].(*ast.FuncDecl); ok {
			return fd.Name.Name
		}
	}

	return ""
}

func descriptions(mutations []m.Mutation) []string {
	out := make([]string, 0, len(mutations))
	for _, mut := range mutations {
		out = append(out, mut.Description)
	}

	return out
}

func countDescription(mutations []m.Mutation, description string) int {
	count := 0

	for _, mut := range mutations {
		if mut.Description == description {
			count++
		}
	}

	return count
}

func TestNewMutationFields(t *testing.T) {
	const src = `package example

func add(a, b int) int {
	return a + b
}
`

	fset := token.NewFileSet()

	file, err := parser.ParseFile(fset, "example.go", src, parser.ParseComments)
	if err != nil {
		t.Fatalf("failed to parse source: %v", err)
	}

	var bin *ast.BinaryExpr

	ast.Inspect(file, func(n ast.Node) bool {
		if b, ok := n.(*ast.BinaryExpr); ok && bin == nil {
			bin = b
		}

		return true
	})

	if bin == nil {
		t.Fatal("expected to find a binary expression")
	}

	ctx := Context{Path: "example.go", Fset: fset, Function: "add"}
	replacement := &ast.BinaryExpr{X: ast.NewIdent("a"), Op: token.SUB, Y: ast.NewIdent("b")}

	mut := newMutation(ctx, m.StrategyArithmetic, bin, replacement, "replace + with -")

	if len(mut.ID) != mutationIDLength {
		t.Errorf("expected ID of length %d, got %d (%q)", mutationIDLength, len(mut.ID), mut.ID)
	}

	for _, r := range mut.ID {
		if !strings.ContainsRune("0123456789abcdef", r) {
			t.Errorf("expected hex ID, got %q", mut.ID)
			break
		}
	}

	if mut.Strategy != m.StrategyArithmetic {
		t.Errorf("expected arithmetic strategy, got %v", mut.Strategy)
	}

	if mut.SourceFile != "example.go" {
		t.Errorf("expected source file example.go, got %s", mut.SourceFile)
	}

	if mut.Line != 4 {
		t.Errorf("expected line 4, got %d", mut.Line)
	}

	if mut.Column != 9 {
		t.Errorf("expected column 9, got %d", mut.Column)
	}

	if mut.Function != "add" {
		t.Errorf("expected function add, got %q", mut.Function)
	}

	if mut.Description != "Arithmetic: replace + with -" {
		t.Errorf("unexpected description: %q", mut.Description)
	}

	if mut.OriginalText != "a + b" {
		t.Errorf("unexpected original text: %q", mut.OriginalText)
	}

	if mut.MutatedText != "a - b" {
		t.Errorf("unexpected mutated text: %q", mut.MutatedText)
	}
}

func TestMutationID(t *testing.T) {
	t.Run("is deterministic", func(t *testing.T) {
		a := mutationID("pkg/file.go", 10, 3, "Literal: replace 1 with 2")
		b := mutationID("pkg/file.go", 10, 3, "Literal: replace 1 with 2")

		if a != b {
			t.Errorf("expected identical IDs, got %q and %q", a, b)
		}
	})

	t.Run("differs by position", func(t *testing.T) {
		a := mutationID("pkg/file.go", 10, 3, "Literal: replace 1 with 2")
		b := mutationID("pkg/file.go", 10, 4, "Literal: replace 1 with 2")
		c := mutationID("pkg/file.go", 11, 3, "Literal: replace 1 with 2")

		if a == b || a == c {
			t.Errorf("expected position to change the ID: %q %q %q", a, b, c)
		}
	})

	t.Run("differs by description", func(t *testing.T) {
		a := mutationID("pkg/file.go", 10, 3, "Literal: replace 1 with 2")
		b := mutationID("pkg/file.go", 10, 3, "Literal: replace 1 with 0")

		if a == b {
			t.Errorf("expected description to change the ID, both are %q", a)
		}
	})

	t.Run("differs by file", func(t *testing.T) {
		a := mutationID("pkg/file.go", 10, 3, "Literal: replace 1 with 2")
		b := mutationID("pkg/other.go", 10, 3, "Literal: replace 1 with 2")

		if a == b {
			t.Errorf("expected file to change the ID, both are %q", a)
		}
	})
}

func TestRenderReplacement(t *testing.T) {
	t.Run("nil renders empty", func(t *testing.T) {
		if got := renderReplacement(nil); got != "" {
			t.Errorf("expected empty rendering for deletions, got %q", got)
		}
	})

	t.Run("prints position-free subtrees", func(t *testing.T) {
		node := &ast.BinaryExpr{
			X:  ast.NewIdent("total"),
			Op: token.MUL,
			Y:  &ast.BasicLit{Kind: token.INT, Value: "2"},
		}

		if got := renderReplacement(node); got != "total * 2" {
			t.Errorf("expected %q, got %q", "total * 2", got)
		}
	})
}
