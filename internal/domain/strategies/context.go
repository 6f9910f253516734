// Package strategies implements the built-in mutator strategies of the
// mutation catalog. Each strategy recognizes one syntactic pattern and
// produces zero or more candidate replacements for it. Strategies are pure
// and order-independent: identical node and context always yield identical
// mutations.
package strategies

import (
	"go/ast"
	"go/token"

	m "sabot.dev/pkg/sabot/internal/model"
)

// Context carries the walk state a strategy may consult when visiting a
// node. The walker maintains it; strategies never modify it.
type Context struct {
	Path     m.Path
	Fset     *token.FileSet
	Function string   // enclosing function name, empty at package level
	Parent   ast.Node // immediate parent of the visited node, nil at the root
}
