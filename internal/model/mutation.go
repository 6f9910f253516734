package model

import "go/ast"

// StrategyName identifies a mutator strategy. The set is closed; strategies
// are registered explicitly at startup.
type StrategyName string

const (
	// StrategyArithmetic swaps +,-,*,/ operators and replaces arithmetic
	// expressions with their identity literal.
	StrategyArithmetic StrategyName = "Arithmetic"
	// StrategyComparison swaps ==,!=,<,>,<=,>= operators.
	StrategyComparison StrategyName = "Comparison"
	// StrategyBoolean swaps &&/||, flips true/false, removes negation.
	StrategyBoolean StrategyName = "Boolean"
	// StrategyLiteral perturbs numeric, string, and empty-list literals.
	StrategyLiteral StrategyName = "Literal"
	// StrategyFunctionCall removes calls and swaps leading arguments.
	StrategyFunctionCall StrategyName = "FunctionCall"
	// StrategyConditional inverts and forces if-statement branches.
	StrategyConditional StrategyName = "Conditional"
)

// Mutation is one candidate code alteration. Created by a strategy during
// the walk, consumed exactly once by the patcher, never mutated afterward.
//
// Original is the subtree captured at generation time; the patcher
// re-locates it in a freshly parsed tree by line and structural shape.
// Replacement is a position-free subtree; nil means "delete the matched
// statement".
type Mutation struct {
	ID           string
	Strategy     StrategyName
	SourceFile   Path
	Line         int
	Column       int
	Function     string // enclosing function name, empty at package level
	Description  string // "<StrategyName>: <short description>", deterministic
	Original     ast.Node
	Replacement  ast.Node
	OriginalText string // rendered snippet of Original
	MutatedText  string // rendered snippet of Replacement, empty for deletions
}

// OptimizedMutation is a Mutation plus the impact score assigned by the
// optimizer. Ordering by score decides which mutants survive per-function
// caps.
type OptimizedMutation struct {
	Mutation
	Impact int
}
