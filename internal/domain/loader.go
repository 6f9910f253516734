package domain

import (
	"context"
	"fmt"
	"go/ast"
	"go/token"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/mod/modfile"
	m "sabot.dev/pkg/sabot/internal/model"
)

// skipScanDirs are directory basenames never scanned for sources.
var skipScanDirs = map[string]struct{}{
	".git":           {},
	"vendor":         {},
	"node_modules":   {},
	".sabot-reports": {},
}

// parsedSource couples one production file with its parse artifacts so
// later stages never re-read the original from disk.
type parsedSource struct {
	source  m.SourceFile
	fset    *token.FileSet
	tree    *ast.File
	content []byte
}

// loadResult is everything project discovery produces.
type loadResult struct {
	root    m.Path
	sources []parsedSource
	modules m.FileModules
	depmap  *DependencyMapper
	skipped []m.Path
}

// loadProject discovers, hashes and parses every production source under
// the requested paths, then builds the test dependency map from the
// discovered test files. Files that fail to parse are skipped with a
// warning; they never abort the run.
func (w *workflow) loadProject(ctx context.Context, paths []m.Path, exclude []string) (*loadResult, error) {
	filters, err := compileExcludes(exclude)
	if err != nil {
		return nil, err
	}

	start, err := normalizePath(firstPath(paths))
	if err != nil {
		return nil, err
	}

	root, err := w.FindProjectRoot(start)
	if err != nil {
		return nil, err
	}

	project := &loadResult{
		root:    root,
		modules: make(m.FileModules),
	}
	project.depmap = NewDependencyMapper(w.modulePrefix(root), project.modules)

	scanRoots, err := resolveScanRoots(root, paths)
	if err != nil {
		return nil, err
	}

	seen := make(map[m.Path]struct{})

	var testFiles []m.Path

	for _, dir := range scanRoots {
		walkErr := w.Walk(dir, true, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() {
				if _, skip := skipScanDirs[filepath.Base(path)]; skip && path != string(dir) {
					return filepath.SkipDir
				}

				return nil
			}

			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}

			if !w.hasSourceExtension(path) {
				return nil
			}

			rel, relErr := w.RelPath(root, m.Path(path))
			if relErr != nil || strings.HasPrefix(string(rel), "..") {
				return nil
			}

			if _, dup := seen[rel]; dup {
				return nil
			}

			seen[rel] = struct{}{}

			if matchesAny(filters, string(rel)) {
				return nil
			}

			if strings.HasSuffix(path, w.TestFileSuffix()) {
				testFiles = append(testFiles, rel)
				return nil
			}

			w.loadSource(project, rel)

			return nil
		})
		if walkErr != nil {
			return nil, fmt.Errorf("scan %s: %w", dir, walkErr)
		}
	}

	sort.Slice(project.sources, func(i, j int) bool {
		return project.sources[i].source.Path < project.sources[j].source.Path
	})

	for _, rel := range testFiles {
		w.loadTestFile(project, rel)
	}

	return project, nil
}

// loadSource parses one production file and records it in the project.
func (w *workflow) loadSource(project *loadResult, rel m.Path) {
	abs := w.JoinPath(string(project.root), string(rel))

	content, err := w.ReadFile(abs)
	if err != nil {
		slog.Warn("Skipping unreadable source file", "path", rel, "error", err)
		project.skipped = append(project.skipped, rel)

		return
	}

	fset := token.NewFileSet()

	tree, err := w.Parse(fset, string(rel), content)
	if err != nil {
		slog.Warn("Skipping source file with parse errors", "path", rel, "error", err)
		project.skipped = append(project.skipped, rel)

		return
	}

	hash, err := w.HashFile(abs)
	if err != nil {
		slog.Warn("Failed to hash source file", "path", rel, "error", err)
	}

	moduleID := moduleIDFor(rel)

	var test m.Path

	if testAbs, testErr := w.DetectTestFile(abs); testErr == nil && testAbs != "" {
		if testRel, relErr := w.RelPath(project.root, testAbs); relErr == nil {
			test = testRel
		}
	}

	project.modules[rel] = moduleID
	project.depmap.RegisterModule(moduleID, tree.Name.Name)

	project.sources = append(project.sources, parsedSource{
		source: m.SourceFile{
			Path:   rel,
			Hash:   hash,
			Module: moduleID,
			Test:   test,
		},
		fset:    fset,
		tree:    tree,
		content: content,
	})
}

// loadTestFile parses one test file and feeds it to the dependency
// mapper. Unparseable test files are skipped with a warning.
func (w *workflow) loadTestFile(project *loadResult, rel m.Path) {
	abs := w.JoinPath(string(project.root), string(rel))

	content, err := w.ReadFile(abs)
	if err != nil {
		slog.Warn("Skipping unreadable test file", "path", rel, "error", err)
		return
	}

	fset := token.NewFileSet()

	tree, err := w.Parse(fset, string(rel), content)
	if err != nil {
		slog.Warn("Skipping test file with parse errors", "path", rel, "error", err)
		return
	}

	project.depmap.AddTestFile(rel, moduleIDFor(rel), tree)
}

// modulePrefix reads the project's module path from go.mod. Projects
// without one still work; selector resolution in the dependency mapper
// just loses import-based references.
func (w *workflow) modulePrefix(root m.Path) string {
	data, err := w.ReadFile(w.JoinPath(string(root), "go.mod"))
	if err != nil {
		slog.Warn("Failed to read go.mod", "root", root, "error", err)
		return ""
	}

	return modfile.ModulePath(data)
}

func (w *workflow) hasSourceExtension(path string) bool {
	ext := filepath.Ext(path)
	for _, candidate := range w.FileExtensions() {
		if ext == candidate {
			return true
		}
	}

	return false
}

// moduleIDFor derives the module identifier from a project-relative
// path: the containing directory in slash form.
func moduleIDFor(rel m.Path) string {
	return filepath.ToSlash(filepath.Dir(string(rel)))
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	filters := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		filters = append(filters, re)
	}

	return filters, nil
}

func matchesAny(filters []*regexp.Regexp, path string) bool {
	for _, re := range filters {
		if re.MatchString(path) {
			return true
		}
	}

	return false
}

// normalizePath strips Go-style "..." wildcards and makes the path
// absolute.
func normalizePath(path m.Path) (m.Path, error) {
	cleaned := strings.TrimSuffix(string(path), "...")
	cleaned = strings.TrimSuffix(cleaned, "/")

	if cleaned == "" {
		cleaned = "."
	}

	abs, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve path %q: %w", path, err)
	}

	return m.Path(abs), nil
}

func firstPath(paths []m.Path) m.Path {
	if len(paths) == 0 {
		return "."
	}

	return paths[0]
}

// resolveScanRoots maps the requested paths to absolute directories
// under the project root. No paths means the whole project.
func resolveScanRoots(root m.Path, paths []m.Path) ([]m.Path, error) {
	if len(paths) == 0 {
		return []m.Path{root}, nil
	}

	roots := make([]m.Path, 0, len(paths))

	for _, path := range paths {
		abs, err := normalizePath(path)
		if err != nil {
			return nil, err
		}

		roots = append(roots, abs)
	}

	return roots, nil
}
