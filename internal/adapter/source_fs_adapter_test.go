package adapter

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "viewstrap.dev/pkg/viewstrap/internal/model"
)

func TestLocalSourceFSAdapter_Walk(t *testing.T) {
	ctx := context.Background()

	newTree := func(t *testing.T) string {
		t.Helper()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "RootView.swift"), "class RootView {}\n")
		mustMkdir(t, filepath.Join(root, "Views"))
		writeTestFile(t, filepath.Join(root, "Views", "CardView.swift"), "class CardView {}\n")
		mustMkdir(t, filepath.Join(root, "Generated"))
		writeTestFile(t, filepath.Join(root, "Generated", "Assets.swift"), "enum Assets {}\n")
		mustMkdir(t, filepath.Join(root, "Pods"))
		writeTestFile(t, filepath.Join(root, "Pods", "Lib.swift"), "class Lib {}\n")
		writeTestFile(t, filepath.Join(root, "Secret.swift"), "class Secret {}\n")
		writeTestFile(t, filepath.Join(root, ".gitignore"), "Generated/\nSecret.swift\n")

		return root
	}

	collect := func(t *testing.T, adapter *LocalSourceFSAdapter, root string, recursive bool) []string {
		t.Helper()

		var visited []string
		err := adapter.Walk(ctx, m.Path(root), recursive, func(path m.Path, _ os.FileInfo) error {
			rel, err := filepath.Rel(root, string(path))
			require.NoError(t, err)
			visited = append(visited, filepath.ToSlash(rel))
			return nil
		})
		require.NoError(t, err)

		return visited
	}

	t.Run("recursive honors gitignore and skip dirs", func(t *testing.T) {
		root := newTree(t)
		visited := collect(t, NewLocalSourceFSAdapter(), root, true)

		assert.Contains(t, visited, "RootView.swift")
		assert.Contains(t, visited, "Views/CardView.swift")
		assert.Contains(t, visited, ".gitignore")
		assert.NotContains(t, visited, "Generated/Assets.swift")
		assert.NotContains(t, visited, "Pods/Lib.swift")
		assert.NotContains(t, visited, "Secret.swift")
	})

	t.Run("non recursive stays in root", func(t *testing.T) {
		root := newTree(t)
		visited := collect(t, NewLocalSourceFSAdapter(), root, false)

		assert.Contains(t, visited, "RootView.swift")
		assert.NotContains(t, visited, "Views/CardView.swift")
	})

	t.Run("file root visits the file", func(t *testing.T) {
		root := newTree(t)
		file := filepath.Join(root, "RootView.swift")

		var visited []m.Path
		err := NewLocalSourceFSAdapter().Walk(ctx, m.Path(file), true, func(path m.Path, _ os.FileInfo) error {
			visited = append(visited, path)
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, []m.Path{m.Path(file)}, visited)
	})

	t.Run("missing root", func(t *testing.T) {
		err := NewLocalSourceFSAdapter().Walk(ctx, m.Path(filepath.Join(t.TempDir(), "nope")), true,
			func(m.Path, os.FileInfo) error { return nil })
		require.Error(t, err)
	})

	t.Run("cancelled context stops the walk", func(t *testing.T) {
		root := newTree(t)
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		err := NewLocalSourceFSAdapter().Walk(cancelled, m.Path(root), true, func(m.Path, os.FileInfo) error { return nil })
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestLocalSourceFSAdapter_ReadFile(t *testing.T) {
	ctx := context.Background()

	t.Run("reads from disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "View.swift")
		writeTestFile(t, path, "class View {}\n")

		got, err := NewLocalSourceFSAdapter().ReadFile(ctx, m.Path(path))
		require.NoError(t, err)
		assert.Equal(t, "class View {}\n", string(got))
	})

	t.Run("stdio path reads stdin", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapterWithStdin(strings.NewReader("from stdin\n"))

		got, err := adapter.ReadFile(ctx, m.StdioPath)
		require.NoError(t, err)
		assert.Equal(t, "from stdin\n", string(got))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewLocalSourceFSAdapter().ReadFile(ctx, m.Path(filepath.Join(t.TempDir(), "missing.swift")))
		require.Error(t, err)
	})
}

func TestLocalSourceFSAdapter_WriteFile(t *testing.T) {
	ctx := context.Background()
	adapter := NewLocalSourceFSAdapter()

	t.Run("keeps permissions of existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "View.swift")
		require.NoError(t, os.WriteFile(path, []byte("old\n"), 0o600))

		require.NoError(t, adapter.WriteFile(ctx, m.Path(path), []byte("new\n")))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new\n", string(content))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})

	t.Run("refuses stdio path", func(t *testing.T) {
		require.Error(t, adapter.WriteFile(ctx, m.StdioPath, []byte("x")))
	})
}

func TestLocalSourceFSAdapter_FileInfo(t *testing.T) {
	dir := t.TempDir()

	info, err := NewLocalSourceFSAdapter().FileInfo(context.Background(), m.Path(dir))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", path, err)
	}
}
