package domain

import (
	"go/ast"
	"go/token"
	"regexp"
	"sort"
	"strconv"
	"strings"

	m "sabot.dev/pkg/sabot/internal/model"
)

// qualifiedNamePattern extracts "pkg.Symbol" shapes from test label
// strings, a best-effort signal for modules a test exercises without
// importing.
var qualifiedNamePattern = regexp.MustCompile(`\b([A-Za-z_][A-Za-z0-9_]*)\.[A-Za-z_][A-Za-z0-9_]*\b`)

// DependencyMapper builds the module-to-tests map from discovered test
// files. Built once per run before scheduling and read-only afterwards:
// TestsFor is safe for concurrent workers.
//
// Three extraction sources per test file: import declarations pointing
// into the project, selector-expression qualifiers resolved through
// registered package names, and qualified names inside string literals.
// A test file always maps to its own directory's module.
type DependencyMapper struct {
	modulePrefix   string
	moduleByFile   m.FileModules
	namesToModules map[string][]string
	testsByModule  map[string]map[m.Path]struct{}
	allTests       []m.Path
}

// NewDependencyMapper creates a mapper for one project. modulePrefix is
// the project's module path from go.mod; fileModules is the loader-built
// production-file lookup table.
func NewDependencyMapper(modulePrefix string, fileModules m.FileModules) *DependencyMapper {
	return &DependencyMapper{
		modulePrefix:   strings.TrimSuffix(modulePrefix, "/"),
		moduleByFile:   fileModules,
		namesToModules: make(map[string][]string),
		testsByModule:  make(map[string]map[m.Path]struct{}),
	}
}

// RegisterModule associates a module identifier with its package name so
// selector qualifiers in tests can resolve. Idempotent per pair.
func (dm *DependencyMapper) RegisterModule(moduleID, packageName string) {
	if moduleID == "" || packageName == "" {
		return
	}

	for _, existing := range dm.namesToModules[packageName] {
		if existing == moduleID {
			return
		}
	}

	dm.namesToModules[packageName] = append(dm.namesToModules[packageName], moduleID)
}

// AddTestFile extracts module references from one parsed test file.
// ownModule is the module identifier of the directory the test lives in.
func (dm *DependencyMapper) AddTestFile(path m.Path, ownModule string, tree *ast.File) {
	dm.allTests = append(dm.allTests, path)

	dm.addReference(ownModule, path)

	for _, imp := range tree.Imports {
		dm.addReference(dm.moduleForImport(imp), path)
	}

	for _, qualifier := range collectQualifiers(tree) {
		for _, moduleID := range dm.namesToModules[qualifier] {
			dm.addReference(moduleID, path)
		}
	}
}

func (dm *DependencyMapper) moduleForImport(imp *ast.ImportSpec) string {
	importPath, err := strconv.Unquote(imp.Path.Value)
	if err != nil {
		return ""
	}

	if importPath == dm.modulePrefix {
		return "."
	}

	if rest, ok := strings.CutPrefix(importPath, dm.modulePrefix+"/"); ok {
		return rest
	}

	return ""
}

func (dm *DependencyMapper) addReference(moduleID string, path m.Path) {
	if moduleID == "" {
		return
	}

	tests, ok := dm.testsByModule[moduleID]
	if !ok {
		tests = make(map[m.Path]struct{})
		dm.testsByModule[moduleID] = tests
	}

	tests[path] = struct{}{}
}

// collectQualifiers gathers selector qualifiers and label-string
// qualifiers from the tree, deduplicated in first-seen order.
func collectQualifiers(tree *ast.File) []string {
	seen := make(map[string]struct{})
	qualifiers := make([]string, 0)

	record := func(name string) {
		if _, ok := seen[name]; ok {
			return
		}

		seen[name] = struct{}{}
		qualifiers = append(qualifiers, name)
	}

	ast.Inspect(tree, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.SelectorExpr:
			if ident, ok := n.X.(*ast.Ident); ok {
				record(ident.Name)
			}
		case *ast.BasicLit:
			if n.Kind != token.STRING {
				return true
			}

			value, err := strconv.Unquote(n.Value)
			if err != nil {
				return true
			}

			for _, match := range qualifiedNamePattern.FindAllStringSubmatch(value, -1) {
				record(match[1])
			}
		}

		return true
	})

	return qualifiers
}

// TestsFor resolves the test subset for a mutation through the
// file-to-module table. Unknown files yield an empty set; callers fall
// back to the full test suite.
func (dm *DependencyMapper) TestsFor(mut m.Mutation) []m.Path {
	moduleID, ok := dm.moduleByFile[mut.SourceFile]
	if !ok {
		return nil
	}

	return sortedPaths(dm.testsByModule[moduleID])
}

// AllTests returns every discovered test file in sorted order.
func (dm *DependencyMapper) AllTests() []m.Path {
	paths := make([]m.Path, len(dm.allTests))
	copy(paths, dm.allTests)
	sort.Slice(paths, func(i, j int) bool { return paths[i] < paths[j] })

	return paths
}

// Map snapshots the dependency map in its exported, sorted form.
func (dm *DependencyMapper) Map() m.DependencyMap {
	snapshot := make(m.DependencyMap, len(dm.testsByModule))
	for moduleID, tests := range dm.testsByModule {
		snapshot[moduleID] = sortedPaths(tests)
	}

	return snapshot
}

func sortedPaths(set map[m.Path]struct{}) []m.Path {
	if len(set) == 0 {
		return nil
	}

	paths := make([]m.Path, 0, len(set))
	for path := range set {
		paths = append(paths, path)
	}

	sort.Slice(paths, func(i, j int) bool { return paths[i] < paths[j] })

	return paths
}
