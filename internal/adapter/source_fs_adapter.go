// Package adapter contains filesystem and diff adapters for the viewstrap CLI.
package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"

	m "viewstrap.dev/pkg/viewstrap/internal/model"
)

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when reading and rewriting source files. It hides direct `os`
// access so the workflow logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// Walk traverses the provided root path. When recursive is false the
	// implementation limits itself to the root directory (no sub-dirs).
	// Files ignored by a .gitignore at root are never reported.
	Walk(ctx context.Context, root m.Path, recursive bool, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents. The stdio
	// path reads standard input instead.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)

	// WriteFile replaces the file's contents, keeping its permissions.
	WriteFile(ctx context.Context, path m.Path, content []byte) error

	// FileInfo returns metadata for a path so the domain can check existence or
	// distinguish between files and directories when necessary.
	FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error)
}

// FilepathWalkFunc is called for every regular file visited by Walk.
type FilepathWalkFunc func(path m.Path, info os.FileInfo) error

// skipDirs lists directories that never hold sources worth scaffolding.
var skipDirs = map[string]struct{}{
	".git":         {},
	".build":       {},
	"Pods":         {},
	"Carthage":     {},
	"DerivedData":  {},
	"node_modules": {},
	"vendor":       {},
}

const defaultFileMode = 0o644

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct {
	stdin io.Reader
}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter reading the
// stdio path from os.Stdin.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{stdin: os.Stdin}
}

// NewLocalSourceFSAdapterWithStdin is used by tests to feed the stdio path.
func NewLocalSourceFSAdapterWithStdin(stdin io.Reader) *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{stdin: stdin}
}

// Walk iterates over files under root, optionally descending into subdirectories.
func (a *LocalSourceFSAdapter) Walk(ctx context.Context, root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := filepath.Clean(string(root))

	info, err := os.Stat(rootStr)
	if err != nil {
		return fmt.Errorf("stat %s: %w", rootStr, err)
	}

	if !info.IsDir() {
		return fn(m.Path(rootStr), info)
	}

	gitignore := loadGitignore(rootStr)

	return filepath.WalkDir(rootStr, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if path == rootStr {
			return nil
		}

		rel, relErr := filepath.Rel(rootStr, path)
		if relErr != nil {
			return relErr
		}

		if d.IsDir() {
			if _, skip := skipDirs[d.Name()]; skip || !recursive || strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}

			if gitignore != nil && gitignore.MatchesPath(rel+"/") {
				slog.Debug("skipping ignored directory", "path", path)
				return filepath.SkipDir
			}

			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		if gitignore != nil && gitignore.MatchesPath(rel) {
			slog.Debug("skipping ignored file", "path", path)
			return nil
		}

		fileInfo, infoErr := d.Info()
		if infoErr != nil {
			return infoErr
		}

		return fn(m.Path(path), fileInfo)
	})
}

func loadGitignore(root string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}

	return gi
}

// ReadFile loads file contents from disk, or from stdin for the stdio path.
func (a *LocalSourceFSAdapter) ReadFile(ctx context.Context, path m.Path) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if path.IsStdio() {
		if a.stdin == nil {
			return nil, errors.New("stdin is not available")
		}

		return io.ReadAll(a.stdin)
	}

	return os.ReadFile(string(path))
}

// WriteFile writes content to path. An existing file keeps its permissions.
func (a *LocalSourceFSAdapter) WriteFile(ctx context.Context, path m.Path, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if path.IsStdio() {
		return errors.New("cannot write back to stdin")
	}

	perm := os.FileMode(defaultFileMode)
	if info, err := os.Stat(string(path)); err == nil {
		perm = info.Mode().Perm()
	}

	return os.WriteFile(string(path), content, perm)
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.Stat(string(path))
}
