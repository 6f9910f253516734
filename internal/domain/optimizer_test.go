package domain

import (
	"go/ast"
	"go/token"
	"testing"

	"github.com/stretchr/testify/require"
	"sabot.dev/pkg/sabot/internal/domain/strategies"
	m "sabot.dev/pkg/sabot/internal/model"
)

func findNode(t *testing.T, src string, match func(ast.Node) bool) ast.Node {
	t.Helper()

	file, _ := parseSource(t, src)

	var found ast.Node

	ast.Inspect(file, func(n ast.Node) bool {
		if found != nil {
			return false
		}

		if n != nil && match(n) {
			found = n
			return false
		}

		return true
	})

	require.NotNil(t, found, "node not found in source")

	return found
}

func isIfStmt(n ast.Node) bool {
	_, ok := n.(*ast.IfStmt)
	return ok
}

func isBinaryOp(op token.Token) func(ast.Node) bool {
	return func(n ast.Node) bool {
		bin, ok := n.(*ast.BinaryExpr)
		return ok && bin.Op == op
	}
}

func scoredMutation(id string, file m.Path, line int, strategy m.StrategyName, impact int) m.OptimizedMutation {
	return m.OptimizedMutation{
		Mutation: m.Mutation{
			ID:          id,
			Strategy:    strategy,
			SourceFile:  file,
			Line:        line,
			Description: string(strategy) + ": " + id,
		},
		Impact: impact,
	}
}

func mutationIDs(moms []m.OptimizedMutation) []string {
	ids := make([]string, 0, len(moms))
	for _, om := range moms {
		ids = append(ids, om.ID)
	}

	return ids
}

func TestOptimize_DisabledPassesThrough(t *testing.T) {
	const src = `package example

func add(a, b int) int {
	return a + b
}
`

	mutations := walkSource(t, src, strategies.Arithmetic{})
	require.Len(t, mutations, 2)

	out := Optimize(mutations, OptimizerConfig{Enabled: false})

	require.Len(t, out, 2)

	for i, om := range out {
		require.Equal(t, mutations[i].ID, om.ID)
		require.Zero(t, om.Impact)
	}
}

func TestFilterEquivalents(t *testing.T) {
	t.Run("additive identity swaps are dropped", func(t *testing.T) {
		mut := m.Mutation{
			ID:       "m1",
			Strategy: m.StrategyArithmetic,
			Original: &ast.BinaryExpr{
				X: ast.NewIdent("x"), Op: token.ADD,
				Y: &ast.BasicLit{Kind: token.INT, Value: "0"},
			},
			Replacement: &ast.BinaryExpr{
				X: ast.NewIdent("x"), Op: token.SUB,
				Y: &ast.BasicLit{Kind: token.INT, Value: "0"},
			},
			OriginalText: "x + 0",
			MutatedText:  "x - 0",
		}

		require.Empty(t, filterEquivalents([]m.Mutation{mut}))
	})

	t.Run("multiplicative identity swaps are dropped", func(t *testing.T) {
		mut := m.Mutation{
			ID:       "m2",
			Strategy: m.StrategyArithmetic,
			Original: &ast.BinaryExpr{
				X: ast.NewIdent("x"), Op: token.MUL,
				Y: &ast.BasicLit{Kind: token.INT, Value: "1"},
			},
			Replacement: &ast.BinaryExpr{
				X: ast.NewIdent("x"), Op: token.QUO,
				Y: &ast.BasicLit{Kind: token.INT, Value: "1"},
			},
			OriginalText: "x * 1",
			MutatedText:  "x / 1",
		}

		require.Empty(t, filterEquivalents([]m.Mutation{mut}))
	})

	t.Run("identical short-circuit operands are dropped", func(t *testing.T) {
		mut := m.Mutation{
			ID:       "m3",
			Strategy: m.StrategyBoolean,
			Original: &ast.BinaryExpr{
				X: ast.NewIdent("ok"), Op: token.LAND, Y: ast.NewIdent("ok"),
			},
			Replacement: &ast.BinaryExpr{
				X: ast.NewIdent("ok"), Op: token.LOR, Y: ast.NewIdent("ok"),
			},
			OriginalText: "ok && ok",
			MutatedText:  "ok || ok",
		}

		require.Empty(t, filterEquivalents([]m.Mutation{mut}))
	})

	t.Run("meaningful operand swaps survive", func(t *testing.T) {
		mut := m.Mutation{
			ID:       "m4",
			Strategy: m.StrategyArithmetic,
			Original: &ast.BinaryExpr{
				X: ast.NewIdent("x"), Op: token.ADD,
				Y: &ast.BasicLit{Kind: token.INT, Value: "1"},
			},
			Replacement: &ast.BinaryExpr{
				X: ast.NewIdent("x"), Op: token.SUB,
				Y: &ast.BasicLit{Kind: token.INT, Value: "1"},
			},
			OriginalText: "x + 1",
			MutatedText:  "x - 1",
		}

		require.Len(t, filterEquivalents([]m.Mutation{mut}), 1)
	})

	t.Run("distinct short-circuit operands survive", func(t *testing.T) {
		mut := m.Mutation{
			ID:       "m5",
			Strategy: m.StrategyBoolean,
			Original: &ast.BinaryExpr{
				X: ast.NewIdent("a"), Op: token.LAND, Y: ast.NewIdent("b"),
			},
			Replacement: &ast.BinaryExpr{
				X: ast.NewIdent("a"), Op: token.LOR, Y: ast.NewIdent("b"),
			},
			OriginalText: "a && b",
			MutatedText:  "a || b",
		}

		require.Len(t, filterEquivalents([]m.Mutation{mut}), 1)
	})

	t.Run("identical rendering is always equivalent", func(t *testing.T) {
		mut := m.Mutation{
			ID:           "m6",
			Strategy:     m.StrategyLiteral,
			Original:     ast.NewIdent("x"),
			Replacement:  ast.NewIdent("x"),
			OriginalText: "x",
			MutatedText:  "x",
		}

		require.Empty(t, filterEquivalents([]m.Mutation{mut}))
	})

	t.Run("deletions are never equivalent", func(t *testing.T) {
		mut := m.Mutation{
			ID:           "m7",
			Strategy:     m.StrategyConditional,
			Original:     &ast.IfStmt{Cond: ast.NewIdent("ok"), Body: &ast.BlockStmt{}},
			Replacement:  nil,
			OriginalText: "if ok {\n}",
			MutatedText:  "",
		}

		require.Len(t, filterEquivalents([]m.Mutation{mut}), 1)
	})
}

func TestImpactScore(t *testing.T) {
	t.Run("strategy base scores", func(t *testing.T) {
		tests := []struct {
			strategy m.StrategyName
			expected int
		}{
			{m.StrategyConditional, 4},
			{m.StrategyComparison, 3},
			{m.StrategyBoolean, 3},
			{m.StrategyArithmetic, 2},
			{m.StrategyFunctionCall, 2},
			{m.StrategyLiteral, 1},
		}

		for _, tt := range tests {
			t.Run(string(tt.strategy), func(t *testing.T) {
				mut := m.Mutation{Strategy: tt.strategy, Original: ast.NewIdent("x"), Line: 200}

				require.Equal(t, tt.expected, impactScore(mut))
			})
		}
	})

	t.Run("early lines gain one", func(t *testing.T) {
		early := m.Mutation{Strategy: m.StrategyLiteral, Original: ast.NewIdent("x"), Line: 99}
		late := m.Mutation{Strategy: m.StrategyLiteral, Original: ast.NewIdent("x"), Line: 100}

		require.Equal(t, 2, impactScore(early))
		require.Equal(t, 1, impactScore(late))
	})

	t.Run("nested conditional bonus", func(t *testing.T) {
		const src = `package example

func guard(a, b int) int {
	if a > 0 {
		if b > 0 {
			return 1
		}
	}
	return 0
}
`

		node := findNode(t, src, isIfStmt)
		mut := m.Mutation{Strategy: m.StrategyConditional, Original: node, Line: 200}

		require.Equal(t, 9, impactScore(mut))
	})

	t.Run("iteration bonus", func(t *testing.T) {
		const src = `package example

func sum(n int) int {
	total := 0
	for i := 0; i < n; i++ {
		total += i
	}
	return total
}
`

		node := findNode(t, src, func(n ast.Node) bool {
			_, ok := n.(*ast.ForStmt)
			return ok
		})
		mut := m.Mutation{Strategy: m.StrategyLiteral, Original: node, Line: 200}

		require.Equal(t, 5, impactScore(mut))
	})

	t.Run("recursion bonus requires the enclosing name", func(t *testing.T) {
		const src = `package example

func fib(n int) int {
	if n < 2 {
		return n
	}
	return fib(n-1) + fib(n-2)
}
`

		node := findNode(t, src, isBinaryOp(token.ADD))

		recursive := m.Mutation{Strategy: m.StrategyArithmetic, Original: node, Function: "fib", Line: 200}
		require.Equal(t, 6, impactScore(recursive))

		anonymous := m.Mutation{Strategy: m.StrategyArithmetic, Original: node, Line: 200}
		require.Equal(t, 2, impactScore(anonymous))
	})

	t.Run("multi-clause switch bonus", func(t *testing.T) {
		const src = `package example

func describe(n int) string {
	switch n {
	case 1:
		return "one"
	case 2:
		return "two"
	}
	return "many"
}
`

		node := findNode(t, src, func(n ast.Node) bool {
			_, ok := n.(*ast.SwitchStmt)
			return ok
		})
		mut := m.Mutation{Strategy: m.StrategyLiteral, Original: node, Line: 200}

		require.Equal(t, 4, impactScore(mut))
	})

	t.Run("multi-operand bonus", func(t *testing.T) {
		const src = `package example

func area(a, b, c int) int {
	return a + b*c
}
`

		node := findNode(t, src, isBinaryOp(token.ADD))
		mut := m.Mutation{Strategy: m.StrategyArithmetic, Original: node, Line: 200}

		require.Equal(t, 4, impactScore(mut))
	})

	t.Run("parenthesized operands unwrap", func(t *testing.T) {
		const src = `package example

func scaled(a, b, c int) int {
	return (a + b) * c
}
`

		node := findNode(t, src, isBinaryOp(token.MUL))
		mut := m.Mutation{Strategy: m.StrategyArithmetic, Original: node, Line: 200}

		require.Equal(t, 4, impactScore(mut))
	})

	t.Run("bonuses never accumulate", func(t *testing.T) {
		const src = `package example

func scan(a int) int {
	if a > 0 {
		for i := 0; i < a; i++ {
			if i > 1 {
				return i
			}
		}
	}
	return 0
}
`

		node := findNode(t, src, isIfStmt)
		mut := m.Mutation{Strategy: m.StrategyConditional, Original: node, Line: 200}

		require.Equal(t, 9, impactScore(mut))
	})
}

func TestCyclomaticEstimate(t *testing.T) {
	t.Run("leaf nodes estimate one", func(t *testing.T) {
		require.Equal(t, 1, cyclomaticEstimate(ast.NewIdent("x")))
	})

	t.Run("comparisons carry no decision point", func(t *testing.T) {
		const src = `package example

func atLeast(a, b int) bool {
	return a >= b
}
`

		node := findNode(t, src, isBinaryOp(token.GEQ))
		require.Equal(t, 1, cyclomaticEstimate(node))
	})

	t.Run("short-circuit operators count", func(t *testing.T) {
		const src = `package example

func both(a, b int) bool {
	return a > 0 && b > 0
}
`

		node := findNode(t, src, isBinaryOp(token.LAND))
		require.Equal(t, 2, cyclomaticEstimate(node))
	})

	t.Run("branches count", func(t *testing.T) {
		const src = `package example

func guard(a int) int {
	if a > 0 {
		return a
	}
	return 0
}
`

		node := findNode(t, src, isIfStmt)
		require.Equal(t, 2, cyclomaticEstimate(node))
	})

	t.Run("condition operators add to the branch", func(t *testing.T) {
		const src = `package example

func guard(a, b int) int {
	if a > 0 && b > 0 {
		return a
	}
	return 0
}
`

		node := findNode(t, src, isIfStmt)
		require.Equal(t, 3, cyclomaticEstimate(node))
	})

	t.Run("loops count", func(t *testing.T) {
		const src = `package example

func drain(items []int) int {
	total := 0
	for _, item := range items {
		total += item
	}
	return total
}
`

		node := findNode(t, src, func(n ast.Node) bool {
			_, ok := n.(*ast.RangeStmt)
			return ok
		})
		require.Equal(t, 2, cyclomaticEstimate(node))
	})

	t.Run("case clauses count", func(t *testing.T) {
		const src = `package example

func describe(n int) string {
	switch n {
	case 1:
		return "one"
	case 2:
		return "two"
	}
	return "many"
}
`

		node := findNode(t, src, func(n ast.Node) bool {
			_, ok := n.(*ast.SwitchStmt)
			return ok
		})
		require.Equal(t, 3, cyclomaticEstimate(node))
	})
}

func TestFilterByComplexity(t *testing.T) {
	const src = `package example

func guard(a int) int {
	if a > 0 {
		return a
	}
	return 0
}
`

	branchy := m.OptimizedMutation{
		Mutation: m.Mutation{ID: "branchy", Original: findNode(t, src, isIfStmt)},
	}
	trivial := m.OptimizedMutation{
		Mutation: m.Mutation{ID: "trivial", Original: ast.NewIdent("x")},
	}

	t.Run("drops mutations below the cutoff", func(t *testing.T) {
		kept := filterByComplexity([]m.OptimizedMutation{trivial, branchy}, 2)

		require.Equal(t, []string{"branchy"}, mutationIDs(kept))
	})

	t.Run("cutoff of one keeps everything", func(t *testing.T) {
		kept := filterByComplexity([]m.OptimizedMutation{trivial, branchy}, 1)

		require.Equal(t, []string{"trivial", "branchy"}, mutationIDs(kept))
	})
}

func TestClusterAndSample(t *testing.T) {
	t.Run("small groups pass whole", func(t *testing.T) {
		scored := []m.OptimizedMutation{
			scoredMutation("s1", "a.go", 10, m.StrategyLiteral, 1),
			scoredMutation("s2", "a.go", 12, m.StrategyLiteral, 2),
			scoredMutation("s3", "a.go", 14, m.StrategyLiteral, 3),
		}

		require.Equal(t, []string{"s1", "s2", "s3"}, mutationIDs(clusterAndSample(scored)))
	})

	t.Run("large groups keep their top third", func(t *testing.T) {
		scored := []m.OptimizedMutation{
			scoredMutation("g1", "a.go", 10, m.StrategyLiteral, 1),
			scoredMutation("g2", "a.go", 11, m.StrategyLiteral, 2),
			scoredMutation("g3", "a.go", 12, m.StrategyLiteral, 3),
			scoredMutation("g4", "a.go", 13, m.StrategyLiteral, 4),
			scoredMutation("g5", "a.go", 14, m.StrategyLiteral, 5),
			scoredMutation("g6", "a.go", 15, m.StrategyLiteral, 6),
		}

		// (6+2)/3 = 2 survivors, the two highest impacts, in input order.
		require.Equal(t, []string{"g5", "g6"}, mutationIDs(clusterAndSample(scored)))
	})

	t.Run("strategies cluster separately", func(t *testing.T) {
		scored := []m.OptimizedMutation{
			scoredMutation("a1", "a.go", 10, m.StrategyArithmetic, 1),
			scoredMutation("a2", "a.go", 11, m.StrategyArithmetic, 2),
			scoredMutation("b1", "a.go", 12, m.StrategyBoolean, 1),
			scoredMutation("b2", "a.go", 13, m.StrategyBoolean, 2),
		}

		require.Len(t, mutationIDs(clusterAndSample(scored)), 4)
	})

	t.Run("line buckets cluster separately", func(t *testing.T) {
		scored := []m.OptimizedMutation{
			scoredMutation("a1", "a.go", 10, m.StrategyLiteral, 4),
			scoredMutation("a2", "a.go", 11, m.StrategyLiteral, 3),
			scoredMutation("a3", "a.go", 12, m.StrategyLiteral, 2),
			scoredMutation("a4", "a.go", 13, m.StrategyLiteral, 1),
			scoredMutation("b1", "a.go", 80, m.StrategyLiteral, 1),
		}

		require.Equal(t, []string{"a1", "a2", "b1"}, mutationIDs(clusterAndSample(scored)))
	})
}

func TestCapPerFunction(t *testing.T) {
	t.Run("caps each file bucket", func(t *testing.T) {
		scored := []m.OptimizedMutation{
			scoredMutation("c1", "a.go", 10, m.StrategyLiteral, 5),
			scoredMutation("c2", "a.go", 11, m.StrategyLiteral, 4),
			scoredMutation("c3", "a.go", 12, m.StrategyLiteral, 3),
			scoredMutation("c4", "a.go", 13, m.StrategyLiteral, 2),
			scoredMutation("c5", "a.go", 14, m.StrategyLiteral, 1),
		}

		require.Equal(t, []string{"c1", "c2", "c3"}, mutationIDs(capPerFunction(scored, 3)))
	})

	t.Run("strategies share one cap", func(t *testing.T) {
		scored := []m.OptimizedMutation{
			scoredMutation("x1", "a.go", 10, m.StrategyArithmetic, 9),
			scoredMutation("x2", "a.go", 11, m.StrategyLiteral, 1),
			scoredMutation("x3", "a.go", 12, m.StrategyArithmetic, 8),
			scoredMutation("x4", "a.go", 13, m.StrategyLiteral, 2),
		}

		require.Equal(t, []string{"x1", "x3"}, mutationIDs(capPerFunction(scored, 2)))
	})

	t.Run("non-positive limit disables the cap", func(t *testing.T) {
		scored := []m.OptimizedMutation{
			scoredMutation("c1", "a.go", 10, m.StrategyLiteral, 1),
			scoredMutation("c2", "a.go", 11, m.StrategyLiteral, 2),
		}

		require.Len(t, capPerFunction(scored, 0), 2)
		require.Len(t, capPerFunction(scored, -1), 2)
	})
}

func TestPreserveBoundaries(t *testing.T) {
	const boundarySrc = `package example

func atLeast(a, b int) bool {
	return a >= b
}
`

	const plainSrc = `package example

func add(a, b int) int {
	return a + b
}
`

	boundary := walkSource(t, boundarySrc, strategies.Comparison{})
	require.Len(t, boundary, 2)

	plain := walkSource(t, plainSrc, strategies.Arithmetic{})
	require.Len(t, plain, 2)

	t.Run("revives dropped boundary mutations at the front", func(t *testing.T) {
		scored := []m.OptimizedMutation{
			{Mutation: plain[0], Impact: 9},
			{Mutation: boundary[0], Impact: 1},
		}
		kept := scored[:1]

		out := preserveBoundaries(scored, kept)

		require.Equal(t, []string{boundary[0].ID, plain[0].ID}, mutationIDs(out))
	})

	t.Run("kept boundaries are not duplicated", func(t *testing.T) {
		scored := []m.OptimizedMutation{
			{Mutation: boundary[0], Impact: 5},
			{Mutation: plain[0], Impact: 4},
		}

		out := preserveBoundaries(scored, scored)

		require.Equal(t, []string{boundary[0].ID, plain[0].ID}, mutationIDs(out))
	})

	t.Run("no boundaries leaves the kept list unchanged", func(t *testing.T) {
		scored := []m.OptimizedMutation{{Mutation: plain[0], Impact: 2}}

		out := preserveBoundaries(scored, scored)

		require.Equal(t, []string{plain[0].ID}, mutationIDs(out))
	})
}

func TestSortByImpact(t *testing.T) {
	moms := []m.OptimizedMutation{
		{Mutation: m.Mutation{ID: "low", Line: 1, Description: "a"}, Impact: 1},
		{Mutation: m.Mutation{ID: "late", Line: 9, Description: "a"}, Impact: 5},
		{Mutation: m.Mutation{ID: "zed", Line: 3, Description: "z"}, Impact: 5},
		{Mutation: m.Mutation{ID: "mid", Line: 3, Description: "m"}, Impact: 5},
	}

	sortByImpact(moms)

	require.Equal(t, []string{"mid", "zed", "late", "low"}, mutationIDs(moms))
}

func TestOptimize_KeepBoundaryRevivesTrivialComparisons(t *testing.T) {
	const src = `package example

func atLeast(a, b int) bool {
	return a >= b
}
`

	mutations := walkSource(t, src, strategies.Comparison{})
	require.Len(t, mutations, 2)

	kept := Optimize(mutations, DefaultOptimizerConfig())

	require.Len(t, kept, 2)
	require.Equal(t, mutations[0].ID, kept[0].ID)

	for _, om := range kept {
		require.True(t, strategies.IsBoundary(om.Mutation))
	}

	cfg := DefaultOptimizerConfig()
	cfg.KeepBoundary = false

	require.Empty(t, Optimize(mutations, cfg))
}

func TestOptimize_Deterministic(t *testing.T) {
	const src = `package example

func tally(values []int, threshold int) int {
	total := 0
	for _, v := range values {
		if v > threshold {
			total += v
		}
	}
	return total
}
`

	first := Optimize(walkSource(t, src, DefaultCatalog()...), DefaultOptimizerConfig())
	second := Optimize(walkSource(t, src, DefaultCatalog()...), DefaultOptimizerConfig())

	require.NotEmpty(t, first)
	require.Equal(t, mutationIDs(first), mutationIDs(second))
}
