package renumber

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileCommitterNoChangesIsNoop(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "MAIN.agc")
	writeFile(t, path, "line one\r\nline two\r\n")

	c := &FileCommitter{}
	require.NoError(t, c.Commit(path, []string{"line one", "line two"}, nil))

	// Untouched: original bytes, original terminators, no temp file.
	assert.Equal(t, "line one\r\nline two\r\n", readFile(t, path))
	_, err := os.Stat(path + DefaultTempSuffix)
	assert.True(t, os.IsNotExist(err))
	assert.Empty(t, c.Modified)
}

func TestFileCommitterSubstitutesChangedLines(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "MAIN.agc")
	writeFile(t, path, "a\nb\nc\n")

	c := &FileCommitter{}
	require.NoError(t, c.Commit(path, []string{"a", "b", "c"}, map[int]string{1: "B"}))

	eol := nativeLineEnding()
	assert.Equal(t, "a"+eol+"B"+eol+"c"+eol, readFile(t, path))
	assert.Equal(t, []string{path}, c.Modified)
	_, err := os.Stat(path + DefaultTempSuffix)
	assert.True(t, os.IsNotExist(err), "temporary file should be renamed away")
}

func TestFileCommitterPreservesFileMode(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "MAIN.agc")
	require.NoError(t, os.WriteFile(path, []byte("x\n"), 0600))

	c := &FileCommitter{}
	require.NoError(t, c.Commit(path, []string{"x"}, map[int]string{0: "y"}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestDryRunCommitterNeverWrites(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "MAIN.agc")
	writeFile(t, path, "original\n")

	require.NoError(t, DryRun{}.Commit(path, []string{"original"}, map[int]string{0: "changed"}))

	assert.Equal(t, "original\n", readFile(t, path))
	_, err := os.Stat(path + DefaultTempSuffix)
	assert.True(t, os.IsNotExist(err))
}
