// Package adapter contains UI and infrastructure adapters for the Sabot CLI.
package adapter

import (
	"crypto/sha256"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	m "sabot.dev/pkg/sabot/internal/model"
)

// skipCloneDirs are directory basenames never copied into worker
// workspaces. Report output is excluded so clones do not snowball
// between runs.
var skipCloneDirs = map[string]struct{}{
	".git":           {},
	"vendor":         {},
	"node_modules":   {},
	".sabot-reports": {},
}

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when scanning user projects and staging mutation workspaces. It
// intentionally hides direct `os` access so the workflow logic can be tested
// without touching the disk.
//
//nolint:interfacebloat // A richer interface keeps workflow logic decoupled from os/fs.
type SourceFSAdapter interface {
	// Walk traverses the provided root path. When recursive is false the
	// implementation should limit itself to the root directory (no sub-dirs).
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// HashFile returns a stable fingerprint (e.g. SHA-256) for the file at path.
	HashFile(path m.Path) (string, error)

	// DetectTestFile attempts to find a test file that matches the provided
	// source file. This allows the domain to auto-link source/test pairs.
	DetectTestFile(sourcePath m.Path) (m.Path, error)

	// FileInfo returns metadata for a path so the domain can check existence or
	// distinguish between files and directories when necessary.
	FileInfo(path m.Path) (os.FileInfo, error)

	// FindProjectRoot searches for go.mod file walking up the directory tree.
	FindProjectRoot(startPath m.Path) (m.Path, error)

	// CreateTempDir creates a temporary directory for a mutation workspace.
	CreateTempDir(pattern string) (m.Path, error)

	// RemoveAll removes a directory and all its contents.
	RemoveAll(path m.Path) error

	// CopyDir recursively copies a directory tree, skipping version-control
	// and dependency directories.
	CopyDir(src, dst m.Path) error

	// WriteFile writes content to a file with the given permissions.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// RelPath returns the relative path from base to target.
	RelPath(base, target m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// FilepathWalkFunc mirrors the callback shape of filepath.Walk so the
// domain layer never imports path/filepath for its walk contract.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter is the concrete SourceFSAdapter backed by the os
// package.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Walk iterates over entries under root. Directories are reported before
// their contents; returning filepath.SkipDir from fn prunes a subtree.
func (a *LocalSourceFSAdapter) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.WalkDir(rootStr, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return fn(path, nil, err)
		}

		if entry.IsDir() && !recursive && path != rootStr {
			return filepath.SkipDir
		}

		info, infoErr := entry.Info()

		return fn(path, info, infoErr)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// HashFile returns the SHA-256 hash of the file at the provided path.
// Source files are small enough to hash in one read.
func (a *LocalSourceFSAdapter) HashFile(path m.Path) (string, error) {
	content, err := os.ReadFile(string(path))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", sha256.Sum256(content)), nil
}

// DetectTestFile finds the companion *_test.go file for the provided source path.
func (a *LocalSourceFSAdapter) DetectTestFile(sourcePath m.Path) (m.Path, error) {
	source := string(sourcePath)
	if filepath.Ext(source) != ".go" || strings.HasSuffix(source, "_test.go") {
		return "", nil
	}

	candidate := strings.TrimSuffix(source, ".go") + "_test.go"

	switch _, err := os.Stat(candidate); {
	case err == nil:
		return m.Path(candidate), nil
	case os.IsNotExist(err):
		return "", nil
	default:
		return "", err
	}
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// FindProjectRoot searches for go.mod file walking up the directory tree.
// The start may be a file or a directory.
func (a *LocalSourceFSAdapter) FindProjectRoot(startPath m.Path) (m.Path, error) {
	dir := string(startPath)

	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		dir = filepath.Dir(dir)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return m.Path(dir), nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found in any parent directory of %s", startPath)
		}

		dir = parent
	}
}

// CreateTempDir creates a temporary directory for a mutation workspace.
func (a *LocalSourceFSAdapter) CreateTempDir(pattern string) (m.Path, error) {
	tmpDir, err := os.MkdirTemp("", pattern)
	if err != nil {
		return "", err
	}

	return m.Path(tmpDir), nil
}

// RemoveAll removes a directory and all its contents.
func (a *LocalSourceFSAdapter) RemoveAll(path m.Path) error {
	return os.RemoveAll(string(path))
}

// CopyDir recursively copies a directory tree into dst, skipping the
// directories listed in skipCloneDirs. Directory entries are visited
// before their contents, so parents exist by the time files are written.
func (a *LocalSourceFSAdapter) CopyDir(src, dst m.Path) error {
	return filepath.WalkDir(string(src), func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(string(src), path)
		if err != nil {
			return err
		}

		target := filepath.Join(string(dst), rel)

		if entry.IsDir() {
			if _, skip := skipCloneDirs[entry.Name()]; skip && path != string(src) {
				return filepath.SkipDir
			}

			info, infoErr := entry.Info()
			if infoErr != nil {
				return infoErr
			}

			return os.MkdirAll(target, info.Mode().Perm())
		}

		return a.copyFile(path, target, entry)
	})
}

// copyFile clones one regular file, preserving its permission bits.
func (a *LocalSourceFSAdapter) copyFile(src, dst string, entry fs.DirEntry) error {
	info, err := entry.Info()
	if err != nil {
		return err
	}

	// #nosec G304 - src comes from the walked project tree, not user input
	content, err := os.ReadFile(src)
	if err != nil {
		return err
	}

	return os.WriteFile(dst, content, info.Mode().Perm())
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	return os.WriteFile(string(path), content, perm)
}

// RelPath returns the relative path from base to target.
func (a *LocalSourceFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
