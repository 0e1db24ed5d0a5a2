package renumber

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Options configures one invocation of Run.
type Options struct {
	// DryRun prints notices without writing any file.
	DryRun bool

	// TempSuffix overrides DefaultTempSuffix for live rewrites.
	TempSuffix string

	// MaxDepth overrides DefaultMaxDepth for insertion nesting.
	MaxDepth int

	// Out receives the entry-file announcements and correction notices.
	// Defaults to os.Stdout.
	Out io.Writer
}

// Result summarizes one entry file's traversal.
type Result struct {
	Entry    string
	Notices  []Notice
	Modified []string
}

// Run renumbers each entry file's source tree in turn. Every entry file gets
// a fresh counter; nothing carries over between them. The first error stops
// the invocation, returning the results completed so far — rewrites already
// committed are not rolled back.
func Run(entries []string, opts Options) ([]Result, error) {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	results := make([]Result, 0, len(entries))
	for _, entry := range entries {
		fmt.Fprintln(out, entry)

		reporter := &Reporter{Out: out}
		var committer Committer = DryRun{}
		var files *FileCommitter
		if !opts.DryRun {
			files = &FileCommitter{TempSuffix: opts.TempSuffix}
			committer = files
		}

		w := &Walker{
			Root:      filepath.Dir(entry),
			Counter:   NewCounter(),
			Committer: committer,
			Reporter:  reporter,
			MaxDepth:  opts.MaxDepth,
		}
		if err := w.Visit(filepath.Base(entry)); err != nil {
			return results, fmt.Errorf("failed to renumber %s: %w", entry, err)
		}

		result := Result{Entry: entry, Notices: reporter.Notices}
		if files != nil {
			result.Modified = files.Modified
		}
		results = append(results, result)
	}
	return results, nil
}
