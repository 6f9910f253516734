package strategies

import (
	"fmt"
	"go/ast"
	"go/token"

	m "sabot.dev/pkg/sabot/internal/model"
)

// Comparison mutates relational operators. Equality operators swap with
// each other; ordering operators produce the strict/non-strict pair that
// flips the comparison and the one that shifts its boundary.
type Comparison struct{}

// Name reports the strategy identifier.
func (Comparison) Name() string { return string(m.StrategyComparison) }

// Mutate produces one mutation per alternative operator.
func (Comparison) Mutate(node ast.Node, ctx Context) []m.Mutation {
	bin, ok := node.(*ast.BinaryExpr)
	if !ok {
		return nil
	}

	alternatives := comparisonAlternatives(bin.Op)
	if len(alternatives) == 0 {
		return nil
	}

	mutations := make([]m.Mutation, 0, len(alternatives))

	for _, alt := range alternatives {
		replacement := &ast.BinaryExpr{X: cloneExpr(bin.X), Op: alt, Y: cloneExpr(bin.Y)}
		mutations = append(mutations, newMutation(ctx, m.StrategyComparison, bin, replacement,
			fmt.Sprintf("replace %s with %s", bin.Op, alt)))
	}

	return mutations
}

// comparisonAlternatives returns the exact replacement set for each
// operator. The sets are contractual: >= maps to {<=, >} and never to
// itself or <.
func comparisonAlternatives(op token.Token) []token.Token {
	switch op {
	case token.EQL:
		return []token.Token{token.NEQ}
	case token.NEQ:
		return []token.Token{token.EQL}
	case token.GTR:
		return []token.Token{token.LSS, token.GEQ}
	case token.LSS:
		return []token.Token{token.GTR, token.LEQ}
	case token.GEQ:
		return []token.Token{token.LEQ, token.GTR}
	case token.LEQ:
		return []token.Token{token.GEQ, token.LSS}
	default:
		return nil
	}
}

// isBoundaryOp reports whether the operator belongs to the boundary set
// the optimizer must always preserve.
func isBoundaryOp(op token.Token) bool {
	return op == token.GEQ || op == token.LEQ || op == token.EQL || op == token.NEQ
}

// IsBoundary reports whether a mutation's original or replacement operator
// is in the boundary set. Non-comparison mutations are never boundary.
func IsBoundary(mut m.Mutation) bool {
	if mut.Strategy != m.StrategyComparison {
		return false
	}

	if orig, ok := mut.Original.(*ast.BinaryExpr); ok && isBoundaryOp(orig.Op) {
		return true
	}

	if repl, ok := mut.Replacement.(*ast.BinaryExpr); ok && isBoundaryOp(repl.Op) {
		return true
	}

	return false
}
