package manifest

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/dbgreport/internal/testable"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_ReadsFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "dumps/ast.txt", "program <- clauses")
	writeFile(t, dir, "dumps/ram.txt", "LOOP x < 3")
	path := writeFile(t, dir, "report.yaml", `
sections:
  - id: ast
    title: AST
    file: dumps/ast.txt
  - id: g
    title: Group
    sections:
      - id: ram
        title: RAM
        file: dumps/ram.txt
`)

	m, err := Load(context.Background(), testable.DefaultFS, path, 2)
	require.NoError(t, err)
	assert.Equal(t, "program <- clauses", m.Sections[0].Text())
	assert.Equal(t, "LOOP x < 3", m.Sections[1].Sections[0].Text())
}

func TestLoad_ManyFilesKeepOrder(t *testing.T) {
	dir := t.TempDir()
	var sb strings.Builder
	sb.WriteString("sections:\n")
	for i := range 40 {
		name := filepath.Join("d", string(rune('a'+i%26))+strings.Repeat("x", i/26)+".txt")
		writeFile(t, dir, name, name)
		sb.WriteString("  - id: s\n    title: S\n    file: " + name + "\n")
	}
	path := writeFile(t, dir, "m.yaml", sb.String())

	var mu sync.Mutex
	reads := 0
	mock := &testable.MockFileSystem{
		ReadFileFn: func(name string) ([]byte, error) {
			mu.Lock()
			reads++
			mu.Unlock()
			return os.ReadFile(name) //nolint:gosec // test path
		},
	}

	m, err := Load(context.Background(), mock, path, 4)
	require.NoError(t, err)
	assert.Equal(t, 41, reads, "manifest plus every file")
	for i := range m.Sections {
		assert.Equal(t, m.Sections[i].File, m.Sections[i].Text())
	}
}

func TestLoad_MissingFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "m.yaml", "sections:\n  - id: gone\n    title: Gone\n    file: missing.txt\n")

	_, err := Load(context.Background(), testable.DefaultFS, path, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Contains(t, err.Error(), `section "gone"`)
}

func TestLoad_MissingManifest(t *testing.T) {
	_, err := Load(context.Background(), testable.DefaultFS, filepath.Join(t.TempDir(), "nope.yaml"), 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read manifest")
}

func TestLoad_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "a")
	path := writeFile(t, dir, "m.yaml", "sections:\n  - id: a\n    title: A\n    file: a.txt\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Load(ctx, testable.DefaultFS, path, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoad_NoFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "m.yaml", "sections:\n  - id: a\n    title: A\n    code: inline\n")

	m, err := Load(context.Background(), testable.DefaultFS, path, 0)
	require.NoError(t, err)
	assert.Equal(t, "inline", m.Sections[0].Text())
}
