// Filename: internal/reporting/reporter.go
package reporting

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Entry is one reported finding inside a file.
type Entry struct {
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Kind    string `json:"kind"`
	Name    string `json:"name,omitempty"`
	Message string `json:"message"`
}

// FileResult groups the findings of a single analyzed file, in document
// order.
type FileResult struct {
	Path     string  `json:"path"`
	Findings []Entry `json:"findings"`
}

// Report is the envelope a reporter finalizes on Close.
type Report struct {
	RunID         string       `json:"run_id"`
	GeneratedAt   time.Time    `json:"generated_at"`
	Files         []FileResult `json:"files"`
	TotalFindings int          `json:"total_findings"`
}

// Reporter writes analysis results to an output. Write is called once per
// analyzed file; Close finalizes the report and releases the underlying
// writer.
type Reporter interface {
	Write(result *FileResult) error
	Close() error
}

// nopWriteCloser wraps an io.Writer with a no-op Close so stdout is never
// closed by a reporter.
type nopWriteCloser struct {
	io.Writer
}

func (nwc *nopWriteCloser) Close() error { return nil }

// New creates a reporter for the given format writing to outputPath, with
// "" or "stdout" meaning standard output.
func New(format, outputPath string) (Reporter, error) {
	var writer io.WriteCloser
	isStdout := outputPath == "" || outputPath == "stdout"

	if isStdout {
		writer = &nopWriteCloser{os.Stdout}
	} else {
		f, err := os.Create(outputPath)
		if err != nil {
			return nil, fmt.Errorf("failed to create output file %s: %w", outputPath, err)
		}
		writer = f
	}

	switch format {
	case "text":
		return newTextReporter(writer), nil
	case "json":
		return newJSONReporter(writer), nil
	default:
		if !isStdout {
			writer.Close()
		}
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}
