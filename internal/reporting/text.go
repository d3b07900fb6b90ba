// Filename: internal/reporting/text.go
package reporting

import (
	"fmt"
	"io"
)

// textReporter streams `path:line:col: message` lines as results come in
// and prints a count on Close. Columns are printed 1-based the way editors
// expect them.
type textReporter struct {
	w     io.WriteCloser
	total int
}

func newTextReporter(w io.WriteCloser) *textReporter {
	return &textReporter{w: w}
}

func (r *textReporter) Write(result *FileResult) error {
	for _, f := range result.Findings {
		if _, err := fmt.Fprintf(r.w, "%s:%d:%d: %s\n", result.Path, f.Line, f.Column+1, f.Message); err != nil {
			return err
		}
		r.total++
	}
	return nil
}

func (r *textReporter) Close() error {
	if r.total > 0 {
		if _, err := fmt.Fprintf(r.w, "\n%d problem(s) found\n", r.total); err != nil {
			return err
		}
	}
	return r.w.Close()
}
