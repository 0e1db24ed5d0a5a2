package renumber

import (
	"bytes"
	"runtime"

	"github.com/smithery1/yultool/internal/fileutil"
)

const (
	// DefaultTempSuffix is appended to a file's name to form its sibling
	// temporary file during a live rewrite.
	DefaultTempSuffix = ".renumber"

	// DefaultMaxDepth bounds insertion nesting when no limit is configured.
	DefaultMaxDepth = 64
)

// Committer decides what happens to a file once its traversal completes.
// The walker hands it every file it visits, changed or not.
type Committer interface {
	Commit(path string, lines []string, changes map[int]string) error
}

// DryRun satisfies Committer without ever touching the disk.
type DryRun struct{}

func (DryRun) Commit(string, []string, map[int]string) error { return nil }

// FileCommitter rewrites changed files through a sibling temporary file and
// an atomic rename. Files with no changes are left alone entirely: no
// temporary file, no mtime bump.
type FileCommitter struct {
	TempSuffix string

	// Modified accumulates the paths rewritten during one run, in commit
	// order.
	Modified []string
}

func (c *FileCommitter) Commit(path string, lines []string, changes map[int]string) error {
	if len(changes) == 0 {
		return nil
	}

	eol := nativeLineEnding()
	var buf bytes.Buffer
	for i, line := range lines {
		if fixed, ok := changes[i]; ok {
			line = fixed
		}
		buf.WriteString(line)
		buf.WriteString(eol)
	}

	suffix := c.TempSuffix
	if suffix == "" {
		suffix = DefaultTempSuffix
	}
	if err := fileutil.ReplaceAtomic(path, path+suffix, buf.Bytes()); err != nil {
		return err
	}
	c.Modified = append(c.Modified, path)
	return nil
}

// Output uses the platform's line terminator regardless of what the input
// files used.
func nativeLineEnding() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}
