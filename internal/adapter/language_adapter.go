package adapter

import (
	"bytes"
	"context"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"os/exec"
)

// LanguageAdapter encapsulates the language-specific mechanics of
// mutation testing: turning source text into a tree, turning a mutated
// tree back into text, and checking that a workspace still compiles.
// The domain layer stays language-neutral and talks to this port only.
type LanguageAdapter interface {
	// Parse builds an AST using the provided file set and source bytes.
	Parse(fileSet *token.FileSet, filename string, src []byte) (*ast.File, error)

	// Unparse renders a (possibly mutated) AST back to source text.
	Unparse(fileSet *token.FileSet, file *ast.File) ([]byte, error)

	// Compile type-checks the packages under dir and reports the first
	// build failure. A nil error means the mutated workspace builds.
	Compile(ctx context.Context, dir string) error

	// FileExtensions lists the source file extensions this language uses.
	FileExtensions() []string

	// TestFileSuffix returns the filename suffix marking test files.
	TestFileSuffix() string
}

// GoLanguageAdapter backs LanguageAdapter with go/parser, go/format and
// the go tool.
type GoLanguageAdapter struct{}

// NewGoLanguageAdapter constructs a GoLanguageAdapter.
func NewGoLanguageAdapter() *GoLanguageAdapter {
	return &GoLanguageAdapter{}
}

// Parse builds an AST for the provided filename/source pair. Comments
// are kept so suppression directives stay visible to the walker.
func (a *GoLanguageAdapter) Parse(fileSet *token.FileSet, filename string, src []byte) (*ast.File, error) {
	return parser.ParseFile(fileSet, filename, src, parser.ParseComments)
}

// Unparse renders the AST with gofmt layout so mutated files diff
// cleanly against their originals.
func (a *GoLanguageAdapter) Unparse(fileSet *token.FileSet, file *ast.File) ([]byte, error) {
	var buf bytes.Buffer
	if err := format.Node(&buf, fileSet, file); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Compile runs 'go build ./...' in dir and wraps the tool output into
// the returned error so callers can surface the failing diagnostic.
func (a *GoLanguageAdapter) Compile(ctx context.Context, dir string) error {
	cmd := exec.CommandContext(ctx, "go", "build", "./...")
	cmd.Dir = dir

	var output bytes.Buffer

	cmd.Stdout = &output
	cmd.Stderr = &output

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("build failed: %w: %s", err, output.String())
	}

	return nil
}

// FileExtensions lists Go source extensions.
func (a *GoLanguageAdapter) FileExtensions() []string {
	return []string{".go"}
}

// TestFileSuffix returns the Go test file suffix.
func (a *GoLanguageAdapter) TestFileSuffix() string {
	return "_test.go"
}
