package strategies

import (
	"fmt"
	"go/ast"

	m "sabot.dev/pkg/sabot/internal/model"
)

// deniedCallees lists Go's special forms: builtins whose removal or
// argument swap produces nothing but noise, and the primitive conversion
// idents that parse as calls.
var deniedCallees = map[string]struct{}{
	"make": {}, "new": {}, "len": {}, "cap": {}, "append": {}, "copy": {},
	"delete": {}, "close": {}, "panic": {}, "recover": {}, "print": {}, "println": {},
	"int": {}, "int8": {}, "int16": {}, "int32": {}, "int64": {},
	"uint": {}, "uint8": {}, "uint16": {}, "uint32": {}, "uint64": {}, "uintptr": {},
	"float32": {}, "float64": {}, "complex64": {}, "complex128": {},
	"string": {}, "bool": {}, "byte": {}, "rune": {}, "error": {}, "any": {},
}

// FunctionCall removes eligible calls and swaps their leading arguments.
// A call whose statement is deleted exercises "is this call's effect
// asserted anywhere"; a call in value position is replaced by nil and
// leans on the compile check to discard type-invalid variants.
type FunctionCall struct{}

// Name reports the strategy identifier.
func (FunctionCall) Name() string { return string(m.StrategyFunctionCall) }

// Mutate matches both the statement wrapping a call and the call itself.
// Statement-level removal is generated at the ExprStmt node so the whole
// statement disappears; the call node then only contributes the argument
// swap, keeping exactly one removal per call.
func (FunctionCall) Mutate(node ast.Node, ctx Context) []m.Mutation {
	switch n := node.(type) {
	case *ast.ExprStmt:
		return mutateCallStmt(n, ctx)
	case *ast.CallExpr:
		return mutateCallExpr(n, ctx)
	default:
		return nil
	}
}

func mutateCallStmt(stmt *ast.ExprStmt, ctx Context) []m.Mutation {
	call, ok := stmt.X.(*ast.CallExpr)
	if !ok || !eligibleCall(call) {
		return nil
	}

	return []m.Mutation{newMutation(ctx, m.StrategyFunctionCall, stmt, nil,
		fmt.Sprintf("remove call to %s", calleeName(call)))}
}

func mutateCallExpr(call *ast.CallExpr, ctx Context) []m.Mutation {
	if !eligibleCall(call) {
		return nil
	}

	var mutations []m.Mutation

	if removableValueCall(ctx.Parent) {
		mutations = append(mutations, newMutation(ctx, m.StrategyFunctionCall, call,
			ast.NewIdent("nil"), fmt.Sprintf("remove call to %s", calleeName(call))))
	}

	if len(call.Args) >= 2 {
		swapped := cloneCall(call)
		swapped.Args[0], swapped.Args[1] = swapped.Args[1], swapped.Args[0]

		mutations = append(mutations, newMutation(ctx, m.StrategyFunctionCall, call, swapped,
			fmt.Sprintf("swap first two arguments of %s", calleeName(call))))
	}

	return mutations
}

// removableValueCall reports whether a nil replacement makes sense for a
// call in this position. Statement calls are removed at the ExprStmt node
// instead, and go/defer statements require a call expression.
func removableValueCall(parent ast.Node) bool {
	switch parent.(type) {
	case *ast.ExprStmt, *ast.GoStmt, *ast.DeferStmt:
		return false
	default:
		return true
	}
}

func eligibleCall(call *ast.CallExpr) bool {
	if len(call.Args) == 0 {
		return false
	}

	if ident, ok := call.Fun.(*ast.Ident); ok {
		if _, denied := deniedCallees[ident.Name]; denied {
			return false
		}
	}

	return true
}

// calleeName renders the call target for descriptions.
func calleeName(call *ast.CallExpr) string {
	switch fun := call.Fun.(type) {
	case *ast.Ident:
		return fun.Name
	case *ast.SelectorExpr:
		if x, ok := fun.X.(*ast.Ident); ok {
			return fmt.Sprintf("%s.%s", x.Name, fun.Sel.Name)
		}

		return fun.Sel.Name
	default:
		return "function"
	}
}
