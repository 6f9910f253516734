package domain

import (
	"go/ast"
	"go/token"

	"sabot.dev/pkg/sabot/internal/domain/strategies"
	m "sabot.dev/pkg/sabot/internal/model"
)

// Walk performs a single pre-order traversal of a parsed file, invoking
// every active strategy at every node and concatenating the results.
// Traversal order defines output order but carries no semantic meaning.
// Import declarations are never descended into, and sabot:ignore
// directives suppress strategies at file, function, or line scope.
func Walk(file *ast.File, fset *token.FileSet, path m.Path, content []byte, active []Strategy) []m.Mutation {
	ignore := buildIgnoreIndex(file, fset, content)
	if ignore.file.all {
		return nil
	}

	active = withoutFileIgnored(active, ignore.file)
	if len(active) == 0 {
		return nil
	}

	w := &walker{fset: fset, path: path, active: active, ignore: ignore}

	ast.Inspect(file, w.visit)

	return w.mutations
}

type walker struct {
	fset      *token.FileSet
	path      m.Path
	active    []Strategy
	ignore    ignoreIndex
	stack     []ast.Node
	mutations []m.Mutation
}

// visit is the Inspect callback. A nil node signals the post-order pop for
// the matching push; returning false skips a subtree and suppresses the
// pop, so the stack is only pushed on true returns.
func (w *walker) visit(n ast.Node) bool {
	if n == nil {
		w.stack = w.stack[:len(w.stack)-1]

		return true
	}

	if _, ok := n.(*ast.ImportSpec); ok {
		return false
	}

	if fd, ok := n.(*ast.FuncDecl); ok {
		if rule, ok := w.ignore.funcByPos[fd.Pos()]; ok && rule.all {
			return false
		}
	}

	w.collect(n)
	w.stack = append(w.stack, n)

	return true
}

func (w *walker) collect(n ast.Node) {
	lineRule := w.ignore.line[w.fset.Position(n.Pos()).Line]
	function, funcRule := w.enclosingFunc(n)

	ctx := strategies.Context{
		Path:     w.path,
		Fset:     w.fset,
		Function: function,
		Parent:   w.parent(),
	}

	for _, s := range w.active {
		name := m.StrategyName(s.Name())
		if lineRule.ignores(name) || funcRule.ignores(name) {
			continue
		}

		w.mutations = append(w.mutations, s.Mutate(n, ctx)...)
	}
}

func (w *walker) parent() ast.Node {
	if len(w.stack) == 0 {
		return nil
	}

	return w.stack[len(w.stack)-1]
}

// enclosingFunc resolves the nearest function declaration on the stack,
// considering the visited node itself when it is a declaration.
func (w *walker) enclosingFunc(n ast.Node) (string, ignoreRule) {
	if fd, ok := n.(*ast.FuncDecl); ok {
		return fd.Name.Name, w.ignore.funcByPos[fd.Pos()]
	}

	for i := len(w.stack) - 1; i >= 0; i-- {
		if fd, ok := w.stack[i].(*ast.FuncDecl); ok {
			return fd.Name.Name, w.ignore.funcByPos[fd.Pos()]
		}
	}

	return "", ignoreRule{}
}

func withoutFileIgnored(active []Strategy, rule ignoreRule) []Strategy {
	if len(rule.names) == 0 {
		return active
	}

	kept := make([]Strategy, 0, len(active))

	for _, s := range active {
		if rule.ignores(m.StrategyName(s.Name())) {
			continue
		}

		kept = append(kept, s)
	}

	return kept
}
