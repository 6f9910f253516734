package adapter

import (
	"context"
	"go/token"
	"strings"
	"testing"
)

func TestGoLanguageAdapter_ParseAndUnparse(t *testing.T) {
	adapter := NewGoLanguageAdapter()
	fset := token.NewFileSet()

	src := []byte("package calc\n\n// Add sums two ints.\nfunc  Add(a,b int)int{\nreturn a+b\n}\n")

	file, err := adapter.Parse(fset, "calc.go", src)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if file.Name.Name != "calc" {
		t.Fatalf("Parse() package = %s, want calc", file.Name.Name)
	}

	rendered, err := adapter.Unparse(fset, file)
	if err != nil {
		t.Fatalf("Unparse() error = %v", err)
	}

	out := string(rendered)

	// Output is gofmt-normalized and keeps comments.
	if !strings.Contains(out, "func Add(a, b int) int {") {
		t.Fatalf("Unparse() did not normalize formatting: %q", out)
	}

	if !strings.Contains(out, "// Add sums two ints.") {
		t.Fatalf("Unparse() dropped the doc comment: %q", out)
	}

	if _, err := adapter.Parse(token.NewFileSet(), "calc.go", rendered); err != nil {
		t.Fatalf("Parse() of rendered output error = %v", err)
	}
}

func TestGoLanguageAdapter_ParseInvalidSource(t *testing.T) {
	adapter := NewGoLanguageAdapter()

	if _, err := adapter.Parse(token.NewFileSet(), "broken.go", []byte("package foo\n func")); err == nil {
		t.Fatalf("Parse() expected error for invalid source")
	}
}

func TestGoLanguageAdapter_Compile(t *testing.T) {
	adapter := NewGoLanguageAdapter()

	t.Run("valid module builds", func(t *testing.T) {
		workDir := scratchModule(t, map[string]string{
			"go.mod":  scratchGoMod,
			"calc.go": "package scratch\n\nfunc Add(a, b int) int { return a + b }\n",
		})

		if err := adapter.Compile(context.Background(), workDir); err != nil {
			t.Fatalf("Compile() error = %v", err)
		}
	})

	t.Run("broken module reports diagnostics", func(t *testing.T) {
		workDir := scratchModule(t, map[string]string{
			"go.mod":  scratchGoMod,
			"calc.go": "package scratch\n\nfunc Add(a, b int) int { return a + c }\n",
		})

		err := adapter.Compile(context.Background(), workDir)
		if err == nil {
			t.Fatalf("Compile() expected error for undefined identifier")
		}

		if !strings.Contains(err.Error(), "build failed") {
			t.Fatalf("Compile() error = %v, want build failed prefix", err)
		}

		if !strings.Contains(err.Error(), "undefined") {
			t.Fatalf("Compile() error missing tool diagnostics: %v", err)
		}
	})

	t.Run("cancelled context aborts", func(t *testing.T) {
		workDir := scratchModule(t, map[string]string{
			"go.mod":  scratchGoMod,
			"calc.go": "package scratch\n",
		})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if err := adapter.Compile(ctx, workDir); err == nil {
			t.Fatalf("Compile() expected error for cancelled context")
		}
	})
}

func TestGoLanguageAdapter_Metadata(t *testing.T) {
	adapter := NewGoLanguageAdapter()

	exts := adapter.FileExtensions()
	if len(exts) != 1 || exts[0] != ".go" {
		t.Fatalf("FileExtensions() = %v, want [.go]", exts)
	}

	if suffix := adapter.TestFileSuffix(); suffix != "_test.go" {
		t.Fatalf("TestFileSuffix() = %s, want _test.go", suffix)
	}
}
