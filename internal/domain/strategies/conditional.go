package strategies

import (
	"go/ast"
	"go/token"

	m "sabot.dev/pkg/sabot/internal/model"
)

// Conditional mutates if statements: inverting the condition, forcing
// either branch unconditionally, and removing else-less statements
// entirely. The captured original is the whole statement, so optimizer
// complexity heuristics see the full branch bodies.
type Conditional struct{}

// Name reports the strategy identifier.
func (Conditional) Name() string { return string(m.StrategyConditional) }

// Mutate produces the branch mutations for an if statement.
func (Conditional) Mutate(node ast.Node, ctx Context) []m.Mutation {
	stmt, ok := node.(*ast.IfStmt)
	if !ok {
		return nil
	}

	mutations := []m.Mutation{
		newMutation(ctx, m.StrategyConditional, stmt, invertCondition(stmt), "invert condition"),
		newMutation(ctx, m.StrategyConditional, stmt, forceBranch(stmt, stmt.Body.List), "force then branch"),
	}

	switch {
	case stmt.Else != nil:
		mutations = append(mutations, newMutation(ctx, m.StrategyConditional, stmt,
			forceBranch(stmt, elseStmts(stmt.Else)), "force else branch"))
	case !isElseBranch(ctx.Parent, stmt):
		// Deleting an else-if would orphan the dangling else, so the
		// remove variant only applies to standalone statements.
		mutations = append(mutations, newMutation(ctx, m.StrategyConditional, stmt, nil,
			"remove if statement"))
	}

	return mutations
}

// invertCondition rebuilds the statement with the condition wrapped in a
// negation. The init clause and both branches are preserved.
func invertCondition(stmt *ast.IfStmt) *ast.IfStmt {
	return &ast.IfStmt{
		Init: cloneStmt(stmt.Init),
		Cond: &ast.UnaryExpr{Op: token.NOT, X: &ast.ParenExpr{X: cloneExpr(stmt.Cond)}},
		Body: cloneBlock(stmt.Body),
		Else: cloneStmt(stmt.Else),
	}
}

// forceBranch replaces the whole statement with one branch's body. An init
// clause is hoisted into the block so its bindings stay in scope.
func forceBranch(stmt *ast.IfStmt, body []ast.Stmt) *ast.BlockStmt {
	stmts := make([]ast.Stmt, 0, len(body)+1)
	if stmt.Init != nil {
		stmts = append(stmts, cloneStmt(stmt.Init))
	}

	stmts = append(stmts, cloneStmts(body)...)

	return &ast.BlockStmt{List: stmts}
}

func elseStmts(els ast.Stmt) []ast.Stmt {
	if block, ok := els.(*ast.BlockStmt); ok {
		return block.List
	}

	// else-if: keep the chained statement as the branch body.
	return []ast.Stmt{els}
}

func isElseBranch(parent ast.Node, stmt *ast.IfStmt) bool {
	parentIf, ok := parent.(*ast.IfStmt)

	return ok && parentIf.Else == stmt
}
