// Package renumber walks a yaYUL-formatted AGC source tree and keeps the
// `## Page N` comments increasing monotonically from 1.
//
// An entry file (conventionally MAIN.agc) references further files with
// insertion lines of the form `$SUBROUTINE.agc`; those files are read in
// place, depth first, sharing one page counter across the whole traversal.
// The counter is authoritative: a page comment that disagrees with it is
// rewritten to match and a notice is printed, but the counter advances either
// way.
package renumber

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
)

var (
	insertPattern = regexp.MustCompile(`^\$(\S+)`)
	pagePattern   = regexp.MustCompile(`^[ \t]*##[ \t]*Page[ \t]+([0-9]+)`)
)

// Counter is the authoritative page sequence for one entry-file run. It is
// created by the run controller and shared by every recursive visit; it is
// never reset mid-traversal.
type Counter struct {
	next int
}

func NewCounter() *Counter {
	return &Counter{next: 1}
}

// Take returns the expected number for the page marker being examined and
// advances the sequence.
func (c *Counter) Take() int {
	n := c.next
	c.next++
	return n
}

// Walker reads files line by line, recursing into insertion references and
// handing each completed file to its Committer. Root is the entry file's
// directory: every insertion path resolves against it, not against the
// directory of the file that contains the insertion line.
type Walker struct {
	Root      string
	Counter   *Counter
	Committer Committer
	Reporter  *Reporter
	MaxDepth  int

	active map[string]bool
	depth  int
}

// Visit processes one file and, through insertion lines, everything it
// transitively references. The returned error aborts the traversal; files
// already committed stay committed.
func (w *Walker) Visit(name string) error {
	path := filepath.Join(w.Root, name)
	if w.active[path] {
		return fmt.Errorf("cycle detected: %s is already on the insertion stack", path)
	}
	maxDepth := w.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	if w.depth >= maxDepth {
		return fmt.Errorf("insertion depth exceeds %d at %s", maxDepth, path)
	}
	if w.active == nil {
		w.active = make(map[string]bool)
	}
	w.active[path] = true
	w.depth++
	defer func() {
		delete(w.active, path)
		w.depth--
	}()

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	changes := make(map[int]string)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		lines = append(lines, line)

		if m := insertPattern.FindStringSubmatch(line); m != nil {
			// The insertion line itself passes through untouched.
			if err := w.Visit(m[1]); err != nil {
				return err
			}
			continue
		}

		loc := pagePattern.FindStringSubmatchIndex(line)
		if loc == nil {
			continue
		}
		declared, err := strconv.Atoi(line[loc[2]:loc[3]])
		if err != nil {
			return fmt.Errorf("failed to parse page number in %s: %w", path, err)
		}
		expected := w.Counter.Take()
		if declared != expected {
			// Only the numeral span is rewritten; the rest of the
			// line is kept byte for byte.
			changes[len(lines)-1] = line[:loc[2]] + strconv.Itoa(expected) + line[loc[3]:]
			w.Reporter.Renumbered(declared, expected)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	return w.Committer.Commit(path, lines, changes)
}
