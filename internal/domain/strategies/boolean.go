package strategies

import (
	"fmt"
	"go/ast"
	"go/token"

	m "sabot.dev/pkg/sabot/internal/model"
)

const (
	trueStr  = "true"
	falseStr = "false"
)

// Boolean mutates short-circuit operators, boolean literals, and negation.
type Boolean struct{}

// Name reports the strategy identifier.
func (Boolean) Name() string { return string(m.StrategyBoolean) }

// Mutate swaps &&/||, flips true/false idents, and removes `!x` negation.
func (Boolean) Mutate(node ast.Node, ctx Context) []m.Mutation {
	switch n := node.(type) {
	case *ast.BinaryExpr:
		return mutateShortCircuit(n, ctx)
	case *ast.Ident:
		return mutateBoolLiteral(n, ctx)
	case *ast.UnaryExpr:
		return mutateNegation(n, ctx)
	default:
		return nil
	}
}

func mutateShortCircuit(bin *ast.BinaryExpr, ctx Context) []m.Mutation {
	if bin.Op != token.LAND && bin.Op != token.LOR {
		return nil
	}

	alt := token.LOR
	if bin.Op == token.LOR {
		alt = token.LAND
	}

	replacement := &ast.BinaryExpr{X: cloneExpr(bin.X), Op: alt, Y: cloneExpr(bin.Y)}

	return []m.Mutation{newMutation(ctx, m.StrategyBoolean, bin, replacement,
		fmt.Sprintf("replace %s with %s", bin.Op, alt))}
}

func mutateBoolLiteral(ident *ast.Ident, ctx Context) []m.Mutation {
	if !isBooleanLiteral(ident.Name) {
		return nil
	}

	flipped := flipBoolean(ident.Name)

	return []m.Mutation{newMutation(ctx, m.StrategyBoolean, ident, ast.NewIdent(flipped),
		fmt.Sprintf("replace %s with %s", ident.Name, flipped))}
}

func mutateNegation(unary *ast.UnaryExpr, ctx Context) []m.Mutation {
	if unary.Op != token.NOT {
		return nil
	}

	return []m.Mutation{newMutation(ctx, m.StrategyBoolean, unary, cloneExpr(unary.X),
		"remove negation")}
}

// isBooleanLiteral checks if a name is a boolean literal.
func isBooleanLiteral(name string) bool {
	return name == trueStr || name == falseStr
}

// flipBoolean returns the opposite boolean literal.
func flipBoolean(original string) string {
	if original == trueStr {
		return falseStr
	}

	return trueStr
}
