package strategies

import (
	"fmt"
	"go/ast"
	"go/token"
	"strconv"

	m "sabot.dev/pkg/sabot/internal/model"
)

// literalPadding is the character appended when growing a string literal.
const literalPadding = "X"

// Literal perturbs constant values: numbers move by one, strings empty or
// grow by one character, empty list literals gain a zero element. The
// predeclared sentinels true, false, and nil are identifiers in Go, so
// they never reach this strategy.
type Literal struct{}

// Name reports the strategy identifier.
func (Literal) Name() string { return string(m.StrategyLiteral) }

// Mutate produces the literal perturbations for the visited node.
func (Literal) Mutate(node ast.Node, ctx Context) []m.Mutation {
	switch n := node.(type) {
	case *ast.BasicLit:
		return mutateBasicLit(n, ctx)
	case *ast.CompositeLit:
		return mutateEmptyList(n, ctx)
	default:
		return nil
	}
}

func mutateBasicLit(lit *ast.BasicLit, ctx Context) []m.Mutation {
	switch lit.Kind {
	case token.INT:
		return mutateInt(lit, ctx)
	case token.FLOAT:
		return mutateFloat(lit, ctx)
	case token.STRING:
		return mutateString(lit, ctx)
	default:
		return nil
	}
}

func mutateInt(lit *ast.BasicLit, ctx Context) []m.Mutation {
	value, err := strconv.ParseInt(lit.Value, 0, 64)
	if err != nil {
		return nil
	}

	return []m.Mutation{
		intMutation(lit, ctx, value+1),
		intMutation(lit, ctx, value-1),
	}
}

func intMutation(lit *ast.BasicLit, ctx Context, value int64) m.Mutation {
	replacement := &ast.BasicLit{Kind: token.INT, Value: strconv.FormatInt(value, 10)}
	if value < 0 {
		// A negative constant is an expression, not a literal token.
		replacement = &ast.BasicLit{Kind: token.INT, Value: strconv.FormatInt(-value, 10)}

		return newMutation(ctx, m.StrategyLiteral, lit,
			&ast.UnaryExpr{Op: token.SUB, X: replacement},
			fmt.Sprintf("replace %s with -%s", lit.Value, replacement.Value))
	}

	return newMutation(ctx, m.StrategyLiteral, lit, replacement,
		fmt.Sprintf("replace %s with %s", lit.Value, replacement.Value))
}

func mutateFloat(lit *ast.BasicLit, ctx Context) []m.Mutation {
	value, err := strconv.ParseFloat(lit.Value, 64)
	if err != nil {
		return nil
	}

	return []m.Mutation{
		floatMutation(lit, ctx, value+1),
		floatMutation(lit, ctx, value-1),
	}
}

func floatMutation(lit *ast.BasicLit, ctx Context, value float64) m.Mutation {
	formatted := strconv.FormatFloat(value, 'g', -1, 64)

	var replacement ast.Expr = &ast.BasicLit{Kind: token.FLOAT, Value: formatted}
	if value < 0 {
		replacement = &ast.UnaryExpr{
			Op: token.SUB,
			X:  &ast.BasicLit{Kind: token.FLOAT, Value: strconv.FormatFloat(-value, 'g', -1, 64)},
		}
	}

	return newMutation(ctx, m.StrategyLiteral, lit, replacement,
		fmt.Sprintf("replace %s with %s", lit.Value, formatted))
}

func mutateString(lit *ast.BasicLit, ctx Context) []m.Mutation {
	unquoted, err := strconv.Unquote(lit.Value)
	if err != nil {
		return nil
	}

	grown := strconv.Quote(unquoted + literalPadding)

	if unquoted == "" {
		return []m.Mutation{newMutation(ctx, m.StrategyLiteral, lit,
			&ast.BasicLit{Kind: token.STRING, Value: grown},
			fmt.Sprintf("replace %s with %s", lit.Value, grown))}
	}

	emptied := `""`

	return []m.Mutation{
		newMutation(ctx, m.StrategyLiteral, lit,
			&ast.BasicLit{Kind: token.STRING, Value: emptied},
			fmt.Sprintf("replace %s with %s", lit.Value, emptied)),
		newMutation(ctx, m.StrategyLiteral, lit,
			&ast.BasicLit{Kind: token.STRING, Value: grown},
			fmt.Sprintf("replace %s with %s", lit.Value, grown)),
	}
}

// mutateEmptyList turns an empty slice or array literal into a singleton
// holding the element type's zero value. Only basic element types can be
// synthesized syntactically; anything else is skipped.
func mutateEmptyList(lit *ast.CompositeLit, ctx Context) []m.Mutation {
	if len(lit.Elts) != 0 {
		return nil
	}

	arr, ok := lit.Type.(*ast.ArrayType)
	if !ok {
		return nil
	}

	zero, ok := zeroElement(arr.Elt)
	if !ok {
		return nil
	}

	replacement := &ast.CompositeLit{Type: cloneExpr(lit.Type), Elts: []ast.Expr{zero}}

	return []m.Mutation{newMutation(ctx, m.StrategyLiteral, lit, replacement,
		"replace empty list with singleton")}
}

func zeroElement(elt ast.Expr) (ast.Expr, bool) {
	ident, ok := elt.(*ast.Ident)
	if !ok {
		return nil, false
	}

	switch ident.Name {
	case "int", "int8", "int16", "int32", "int64",
		"uint", "uint8", "uint16", "uint32", "uint64", "uintptr",
		"float32", "float64", "byte", "rune":
		return &ast.BasicLit{Kind: token.INT, Value: "0"}, true
	case "string":
		return &ast.BasicLit{Kind: token.STRING, Value: `""`}, true
	case "bool":
		return ast.NewIdent(falseStr), true
	default:
		return nil, false
	}
}
