// Filename: internal/reporting/json.go
package reporting

import (
	"io"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// jsonReporter accumulates per-file results and writes one indented report
// envelope on Close.
type jsonReporter struct {
	w     io.WriteCloser
	files []FileResult
	total int
}

func newJSONReporter(w io.WriteCloser) *jsonReporter {
	return &jsonReporter{w: w}
}

func (r *jsonReporter) Write(result *FileResult) error {
	r.files = append(r.files, *result)
	r.total += len(result.Findings)
	return nil
}

func (r *jsonReporter) Close() error {
	report := Report{
		RunID:         uuid.New().String(),
		GeneratedAt:   time.Now().UTC(),
		Files:         r.files,
		TotalFindings: r.total,
	}
	if report.Files == nil {
		report.Files = []FileResult{}
	}

	data, err := json.MarshalIndent(&report, "", "  ")
	if err != nil {
		r.w.Close()
		return err
	}
	if _, err := r.w.Write(append(data, '\n')); err != nil {
		r.w.Close()
		return err
	}
	return r.w.Close()
}
