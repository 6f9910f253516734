package domain

import (
	"go/ast"
	"go/token"
	"sort"

	"sabot.dev/pkg/sabot/internal/domain/strategies"
	m "sabot.dev/pkg/sabot/internal/model"
)

// OptimizerConfig controls the mutant reduction pipeline.
type OptimizerConfig struct {
	Enabled        bool
	MinComplexity  int  // stage 3 cutoff, cyclomatic estimate of the captured subtree
	MaxPerFunction int  // stage 5 cap within one (file, line-bucket) group
	KeepBoundary   bool // stage 6, boundary comparison preservation
}

// DefaultOptimizerConfig mirrors the documented defaults.
func DefaultOptimizerConfig() OptimizerConfig {
	return OptimizerConfig{
		Enabled:        true,
		MinComplexity:  2,
		MaxPerFunction: 20,
		KeepBoundary:   true,
	}
}

// lineBucketSize groups nearby lines as a function proxy for clustering
// and per-function caps.
const lineBucketSize = 50

// Optimize runs the reduction pipeline. All stages are pure; identical
// input and configuration produce an identical output list, order
// included. With optimization disabled every mutation passes through
// unscored.
func Optimize(mutations []m.Mutation, cfg OptimizerConfig) []m.OptimizedMutation {
	if !cfg.Enabled {
		return wrapUnscored(mutations)
	}

	viable := filterEquivalents(mutations)
	scored := scoreImpact(viable)

	kept := filterByComplexity(scored, cfg.MinComplexity)
	kept = clusterAndSample(kept)
	kept = capPerFunction(kept, cfg.MaxPerFunction)

	if cfg.KeepBoundary {
		kept = preserveBoundaries(scored, kept)
	}

	return kept
}

func wrapUnscored(mutations []m.Mutation) []m.OptimizedMutation {
	wrapped := make([]m.OptimizedMutation, 0, len(mutations))
	for _, mut := range mutations {
		wrapped = append(wrapped, m.OptimizedMutation{Mutation: mut})
	}

	return wrapped
}

// Stage 1: drop syntactically detectable no-ops from a fixed pattern list.
func filterEquivalents(mutations []m.Mutation) []m.Mutation {
	kept := make([]m.Mutation, 0, len(mutations))

	for _, mut := range mutations {
		if isEquivalentMutation(mut) {
			continue
		}

		kept = append(kept, mut)
	}

	return kept
}

func isEquivalentMutation(mut m.Mutation) bool {
	if mut.Replacement != nil && mut.OriginalText == mut.MutatedText {
		return true
	}

	orig, origOK := mut.Original.(*ast.BinaryExpr)
	repl, replOK := mut.Replacement.(*ast.BinaryExpr)

	if !origOK || !replOK {
		return false
	}

	switch mut.Strategy {
	case m.StrategyArithmetic:
		// x+0 <-> x-0 and x*1 <-> x/1 do not change the value.
		if isAdditive(orig.Op) && isAdditive(repl.Op) && isIntLit(orig.Y, "0") {
			return true
		}

		if isMultiplicative(orig.Op) && isMultiplicative(repl.Op) && isIntLit(orig.Y, "1") {
			return true
		}
	case m.StrategyBoolean:
		// x&&x <-> x||x short-circuits to the same value.
		if isShortCircuit(orig.Op) && isShortCircuit(repl.Op) && nodeText(orig.X) == nodeText(orig.Y) {
			return true
		}
	}

	return false
}

func isAdditive(op token.Token) bool       { return op == token.ADD || op == token.SUB }
func isMultiplicative(op token.Token) bool { return op == token.MUL || op == token.QUO }
func isShortCircuit(op token.Token) bool   { return op == token.LAND || op == token.LOR }

func isIntLit(e ast.Expr, value string) bool {
	lit, ok := e.(*ast.BasicLit)

	return ok && lit.Kind == token.INT && lit.Value == value
}

// Stage 2: impact = base(strategy) + complexity bonus + location bonus.
func scoreImpact(mutations []m.Mutation) []m.OptimizedMutation {
	scored := make([]m.OptimizedMutation, 0, len(mutations))

	for _, mut := range mutations {
		scored = append(scored, m.OptimizedMutation{Mutation: mut, Impact: impactScore(mut)})
	}

	return scored
}

var strategyBaseScores = map[m.StrategyName]int{
	m.StrategyConditional:  4,
	m.StrategyComparison:   3,
	m.StrategyBoolean:      3,
	m.StrategyArithmetic:   2,
	m.StrategyFunctionCall: 2,
	m.StrategyLiteral:      1,
}

const earlyLineThreshold = 100

func impactScore(mut m.Mutation) int {
	score := strategyBaseScores[mut.Strategy] + complexityBonus(mut)
	if mut.Line < earlyLineThreshold {
		score++
	}

	return score
}

// complexityBonus awards the first matching structural pattern only; the
// bonuses never accumulate.
func complexityBonus(mut m.Mutation) int {
	switch {
	case hasNestedConditional(mut.Original):
		return 5
	case hasRecursionOrIteration(mut.Original, mut.Function):
		return 4
	case hasMultiClauseSwitch(mut.Original):
		return 3
	case isMultiOperand(mut.Original):
		return 2
	default:
		return 0
	}
}

func hasNestedConditional(node ast.Node) bool {
	conditionals := 0

	ast.Inspect(node, func(n ast.Node) bool {
		if _, ok := n.(*ast.IfStmt); ok {
			conditionals++
		}

		return true
	})

	if _, rootIsIf := node.(*ast.IfStmt); rootIsIf {
		return conditionals >= 2
	}

	return conditionals >= 1
}

func hasRecursionOrIteration(node ast.Node, enclosing string) bool {
	found := false

	ast.Inspect(node, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.ForStmt, *ast.RangeStmt:
			found = true
		case *ast.CallExpr:
			if ident, ok := n.Fun.(*ast.Ident); ok && enclosing != "" && ident.Name == enclosing {
				found = true
			}
		}

		return !found
	})

	return found
}

func hasMultiClauseSwitch(node ast.Node) bool {
	found := false

	ast.Inspect(node, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.SwitchStmt:
			found = found || len(n.Body.List) >= 2
		case *ast.TypeSwitchStmt:
			found = found || len(n.Body.List) >= 2
		case *ast.SelectStmt:
			found = found || len(n.Body.List) >= 2
		}

		return !found
	})

	return found
}

func isMultiOperand(node ast.Node) bool {
	bin, ok := node.(*ast.BinaryExpr)
	if !ok {
		return false
	}

	_, xBin := unparen(bin.X).(*ast.BinaryExpr)
	_, yBin := unparen(bin.Y).(*ast.BinaryExpr)

	return xBin || yBin
}

func unparen(e ast.Expr) ast.Expr {
	for {
		paren, ok := e.(*ast.ParenExpr)
		if !ok {
			return e
		}

		e = paren.X
	}
}

// Stage 3: drop mutations in structurally trivial spots.
func filterByComplexity(scored []m.OptimizedMutation, minComplexity int) []m.OptimizedMutation {
	kept := make([]m.OptimizedMutation, 0, len(scored))

	for _, om := range scored {
		if cyclomaticEstimate(om.Original) < minComplexity {
			continue
		}

		kept = append(kept, om)
	}

	return kept
}

// cyclomaticEstimate counts decision points in the captured subtree, +1.
func cyclomaticEstimate(node ast.Node) int {
	count := 1

	ast.Inspect(node, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.IfStmt, *ast.ForStmt, *ast.RangeStmt, *ast.CaseClause, *ast.CommClause:
			count++
		case *ast.BinaryExpr:
			if isShortCircuit(n.Op) {
				count++
			}
		}

		return true
	})

	return count
}

// Stage 4: group by (file, line bucket, strategy); small groups pass
// whole, larger ones keep their top third by impact (at least two).
func clusterAndSample(scored []m.OptimizedMutation) []m.OptimizedMutation {
	type clusterKey struct {
		file     m.Path
		bucket   int
		strategy m.StrategyName
	}

	order := make([]clusterKey, 0)
	groups := make(map[clusterKey][]m.OptimizedMutation)

	for _, om := range scored {
		key := clusterKey{file: om.SourceFile, bucket: om.Line / lineBucketSize, strategy: om.Strategy}
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}

		groups[key] = append(groups[key], om)
	}

	survivors := make(map[string]struct{}, len(scored))

	for _, key := range order {
		group := groups[key]
		if len(group) <= 3 {
			for _, om := range group {
				survivors[om.ID] = struct{}{}
			}

			continue
		}

		keep := (len(group) + 2) / 3
		if keep < 2 {
			keep = 2
		}

		ranked := make([]m.OptimizedMutation, len(group))
		copy(ranked, group)
		sortByImpact(ranked)

		for _, om := range ranked[:keep] {
			survivors[om.ID] = struct{}{}
		}
	}

	return filterSurvivors(scored, survivors)
}

// Stage 5: hard cap per (file, line bucket) group.
func capPerFunction(scored []m.OptimizedMutation, maxPerFunction int) []m.OptimizedMutation {
	if maxPerFunction <= 0 {
		return scored
	}

	type functionKey struct {
		file   m.Path
		bucket int
	}

	order := make([]functionKey, 0)
	groups := make(map[functionKey][]m.OptimizedMutation)

	for _, om := range scored {
		key := functionKey{file: om.SourceFile, bucket: om.Line / lineBucketSize}
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}

		groups[key] = append(groups[key], om)
	}

	survivors := make(map[string]struct{}, len(scored))

	for _, key := range order {
		group := groups[key]
		if len(group) > maxPerFunction {
			ranked := make([]m.OptimizedMutation, len(group))
			copy(ranked, group)
			sortByImpact(ranked)
			group = ranked[:maxPerFunction]
		}

		for _, om := range group {
			survivors[om.ID] = struct{}{}
		}
	}

	return filterSurvivors(scored, survivors)
}

// Stage 6: boundary comparisons from the scored input always survive and
// lead the output.
func preserveBoundaries(scored, kept []m.OptimizedMutation) []m.OptimizedMutation {
	boundary := make([]m.OptimizedMutation, 0)
	boundaryIDs := make(map[string]struct{})

	for _, om := range scored {
		if strategies.IsBoundary(om.Mutation) {
			boundary = append(boundary, om)
			boundaryIDs[om.ID] = struct{}{}
		}
	}

	if len(boundary) == 0 {
		return kept
	}

	result := make([]m.OptimizedMutation, 0, len(boundary)+len(kept))
	result = append(result, boundary...)

	for _, om := range kept {
		if _, isBoundary := boundaryIDs[om.ID]; isBoundary {
			continue
		}

		result = append(result, om)
	}

	return result
}

// sortByImpact ranks high impact first with a stable, fully deterministic
// tie-break on line then description.
func sortByImpact(moms []m.OptimizedMutation) {
	sort.SliceStable(moms, func(i, j int) bool {
		if moms[i].Impact != moms[j].Impact {
			return moms[i].Impact > moms[j].Impact
		}

		if moms[i].Line != moms[j].Line {
			return moms[i].Line < moms[j].Line
		}

		return moms[i].Description < moms[j].Description
	})
}

func filterSurvivors(scored []m.OptimizedMutation, survivors map[string]struct{}) []m.OptimizedMutation {
	kept := make([]m.OptimizedMutation, 0, len(survivors))

	for _, om := range scored {
		if _, ok := survivors[om.ID]; ok {
			kept = append(kept, om)
		}
	}

	return kept
}
