package strategies

import (
	"fmt"
	"go/ast"
	"go/token"

	m "sabot.dev/pkg/sabot/internal/model"
)

// Arithmetic mutates the four basic arithmetic operators. Every matched
// expression yields exactly two mutations: a swap to the algebraic inverse
// and a removal to the operator's identity literal.
type Arithmetic struct{}

// Name reports the strategy identifier.
func (Arithmetic) Name() string { return string(m.StrategyArithmetic) }

// Mutate produces the swap and remove variants for arithmetic expressions.
func (Arithmetic) Mutate(node ast.Node, ctx Context) []m.Mutation {
	bin, ok := node.(*ast.BinaryExpr)
	if !ok || !isArithmeticOp(bin.Op) {
		return nil
	}

	inverse := arithmeticInverse(bin.Op)
	swapped := &ast.BinaryExpr{X: cloneExpr(bin.X), Op: inverse, Y: cloneExpr(bin.Y)}

	identity := identityLiteral(bin.Op)

	return []m.Mutation{
		newMutation(ctx, m.StrategyArithmetic, bin, swapped,
			fmt.Sprintf("replace %s with %s", bin.Op, inverse)),
		newMutation(ctx, m.StrategyArithmetic, bin, identity,
			fmt.Sprintf("replace expression with %s", identity.Value)),
	}
}

func isArithmeticOp(op token.Token) bool {
	return op == token.ADD || op == token.SUB || op == token.MUL || op == token.QUO
}

func arithmeticInverse(op token.Token) token.Token {
	switch op {
	case token.ADD:
		return token.SUB
	case token.SUB:
		return token.ADD
	case token.MUL:
		return token.QUO
	default:
		return token.MUL
	}
}

// identityLiteral returns 0 for additive operators and 1 for
// multiplicative ones.
func identityLiteral(op token.Token) *ast.BasicLit {
	value := "0"
	if op == token.MUL || op == token.QUO {
		value = "1"
	}

	return &ast.BasicLit{Kind: token.INT, Value: value}
}
