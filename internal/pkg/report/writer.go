package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/EngrDhee/automatic-credit-debit-operations/internal/pkg/consts"
)

// Writer appends report lines to the per-run output file. Lines are flushed
// per append so a crash mid-batch keeps everything reported so far.
type Writer struct {
	path string
}

// NewWriter builds the per-run report file path from the input name and the
// run timestamp, creating the directory if needed.
func NewWriter(dir, inputName string, now time.Time) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create report directory: %w", err)
	}
	filename := fmt.Sprintf("debit_credit_%s_%s.txt",
		filepath.Base(inputName), now.Format(consts.ReportFileLayout))
	return &Writer{path: filepath.Join(dir, filename)}, nil
}

func (w *Writer) Path() string {
	return w.path
}

// Append writes one report line to the run's output file.
func (w *Writer) Append(line string) error {
	file, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("could not open report file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	if _, err := file.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("could not write report line: %w", err)
	}
	return nil
}
