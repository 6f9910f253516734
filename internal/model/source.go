// Package model defines the data structures shared across the mutation engine.
package model

// Path represents a file system path.
type Path string

// SourceFile is one discovered production source file. Created once per
// file by the loader and immutable for the lifetime of a run.
type SourceFile struct {
	Path   Path
	Hash   string
	Module string // package path relative to the project root, e.g. "internal/store"
	Test   Path   // sibling test file, empty when none was detected
}

// DependencyMap maps a module identifier to the test files that reference
// it. Built once per run from the discovered test files; read-only during
// scheduling.
type DependencyMap map[string][]Path

// FileModules maps a production file path to its owning module identifier.
// Built by the loader, consumed by the dependency mapper.
type FileModules map[Path]string
