package renumber

import (
	"fmt"
	"io"
)

// Notice records one page correction: the number the file declared and the
// number the counter required.
type Notice struct {
	Declared int
	Expected int
}

// Reporter emits operator-facing correction notices in traversal order and
// keeps them for the run's result. The same notices are produced whether the
// run is dry or live.
type Reporter struct {
	Out     io.Writer
	Notices []Notice
}

func (r *Reporter) Renumbered(declared, expected int) {
	r.Notices = append(r.Notices, Notice{Declared: declared, Expected: expected})
	fmt.Fprintf(r.Out, "  Renumbering %d to %d\n", declared, expected)
}
