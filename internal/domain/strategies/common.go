package strategies

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"go/ast"
	"go/printer"
	"go/token"

	m "sabot.dev/pkg/sabot/internal/model"
)

const mutationIDLength = 16

// newMutation assembles a Mutation for the node under visit. The
// description is prefixed with the strategy name so the full string is
// "<StrategyName>: <short description>"; callers pass only the short part.
func newMutation(ctx Context, strategy m.StrategyName, original, replacement ast.Node, short string) m.Mutation {
	pos := ctx.Fset.Position(original.Pos())
	description := fmt.Sprintf("%s: %s", strategy, short)

	return m.Mutation{
		ID:           mutationID(ctx.Path, pos.Line, pos.Column, description),
		Strategy:     strategy,
		SourceFile:   ctx.Path,
		Line:         pos.Line,
		Column:       pos.Column,
		Function:     ctx.Function,
		Description:  description,
		Original:     original,
		Replacement:  replacement,
		OriginalText: render(ctx.Fset, original),
		MutatedText:  renderReplacement(replacement),
	}
}

func mutationID(path m.Path, line, column int, description string) string {
	sum := sha256.Sum256(fmt.Appendf(nil, "%s:%d:%d:%s", path, line, column, description))

	return fmt.Sprintf("%x", sum)[:mutationIDLength]
}

// render prints a node from a parsed tree back to source text.
func render(fset *token.FileSet, node ast.Node) string {
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, fset, node); err != nil {
		return ""
	}

	return buf.String()
}

// renderReplacement prints a position-free replacement subtree. Deletions
// (nil replacement) render empty.
func renderReplacement(node ast.Node) string {
	if node == nil {
		return ""
	}

	return render(token.NewFileSet(), node)
}
