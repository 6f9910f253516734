package domain

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/printer"
	"go/token"
	"io/fs"
	"log/slog"
	"reflect"

	"golang.org/x/tools/go/ast/astutil"
	"sabot.dev/pkg/sabot/internal/adapter"
	m "sabot.dev/pkg/sabot/internal/model"
)

const mutatedFileMode fs.FileMode = 0o600

// Patcher materializes one mutation inside a workspace and undoes it
// afterwards. Files are patched in place: the original bytes are kept in
// memory and written back by the returned restore function.
type Patcher interface {
	// Apply patches the mutation into the workspace copy of its source
	// file. The restore function is non-nil exactly when err is nil.
	Apply(workspaceRoot m.Path, mutation m.Mutation) (restore func() error, err error)
}

type patcher struct {
	fsAdapter adapter.SourceFSAdapter
	language  adapter.LanguageAdapter
}

// NewPatcher constructs a Patcher backed by the provided filesystem and
// language adapters.
func NewPatcher(fsAdapter adapter.SourceFSAdapter, language adapter.LanguageAdapter) Patcher {
	return &patcher{
		fsAdapter: fsAdapter,
		language:  language,
	}
}

// Apply re-parses the target file inside the workspace, splices the
// mutation into the fresh tree and overwrites the file with the mutated
// rendering.
func (p *patcher) Apply(workspaceRoot m.Path, mutation m.Mutation) (func() error, error) {
	target := p.fsAdapter.JoinPath(string(workspaceRoot), string(mutation.SourceFile))

	original, err := p.fsAdapter.ReadFile(target)
	if err != nil {
		slog.Error("Failed to read mutation target", "path", target, "error", err)
		return nil, fmt.Errorf("failed to read %s: %w", target, err)
	}

	fset := token.NewFileSet()

	tree, err := p.language.Parse(fset, string(target), original)
	if err != nil {
		slog.Error("Failed to parse mutation target", "path", target, "error", err)
		return nil, fmt.Errorf("failed to parse %s: %w", target, err)
	}

	if err := SpliceMutation(tree, fset, mutation); err != nil {
		return nil, err
	}

	mutated, err := p.language.Unparse(fset, tree)
	if err != nil {
		slog.Error("Failed to render mutated tree", "path", target, "error", err)
		return nil, fmt.Errorf("failed to render %s: %w", target, err)
	}

	perm := mutatedFileMode
	if info, infoErr := p.fsAdapter.FileInfo(target); infoErr == nil {
		perm = info.Mode().Perm()
	}

	if err := p.fsAdapter.WriteFile(target, mutated, perm); err != nil {
		slog.Error("Failed to write mutated file", "path", target, "error", err)
		return nil, fmt.Errorf("failed to write mutated file %s: %w", target, err)
	}

	restore := func() error {
		if err := p.fsAdapter.WriteFile(target, original, perm); err != nil {
			return fmt.Errorf("failed to restore %s: %w", target, err)
		}

		return nil
	}

	return restore, nil
}

// LocateTarget finds the tree node the mutation was generated from. The
// node must start on the recorded line and have the same structure as
// the original; the first pre-order match wins. Positions drift between
// the generation parse and the workspace parse, so identity is never
// assumed.
func LocateTarget(tree *ast.File, fset *token.FileSet, mutation m.Mutation) (ast.Node, error) {
	if mutation.Original == nil {
		return nil, fmt.Errorf("mutation %s carries no original node", mutation.ID)
	}

	wantText := nodeText(mutation.Original)

	var found ast.Node

	ast.Inspect(tree, func(n ast.Node) bool {
		if found != nil || n == nil {
			return false
		}

		if fset.Position(n.Pos()).Line != mutation.Line {
			return true
		}

		if shapeEqual(n, mutation.Original, wantText) {
			found = n
			return false
		}

		return true
	})

	if found == nil {
		return nil, fmt.Errorf("no node matching %q at %s:%d", mutation.Description, mutation.SourceFile, mutation.Line)
	}

	return found, nil
}

// SpliceMutation replaces the located node with the mutation's
// replacement, or removes it when the replacement is nil. Exactly one
// node changes; on any failure the tree is left untouched.
func SpliceMutation(tree *ast.File, fset *token.FileSet, mutation m.Mutation) error {
	target, err := LocateTarget(tree, fset, mutation)
	if err != nil {
		return err
	}

	applied := false

	astutil.Apply(tree, func(c *astutil.Cursor) bool {
		if applied || c.Node() != target {
			return !applied
		}

		if mutation.Replacement == nil {
			if c.Index() < 0 {
				// Not a list element, removal would corrupt the tree.
				return false
			}

			c.Delete()
		} else {
			c.Replace(mutation.Replacement)
		}

		applied = true

		return false
	}, nil)

	if !applied {
		return fmt.Errorf("cannot splice %q at %s:%d", mutation.Description, mutation.SourceFile, mutation.Line)
	}

	return nil
}

// shapeEqual reports whether two nodes are the same kind and render to
// the same position-free text.
func shapeEqual(a, b ast.Node, bText string) bool {
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}

	return nodeText(a) == bText
}

// nodeText prints a node without layout information, enough for
// structural comparisons.
func nodeText(n ast.Node) string {
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, token.NewFileSet(), n); err != nil {
		return ""
	}

	return buf.String()
}
