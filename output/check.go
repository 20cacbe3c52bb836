package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/vegasq/parqmeta/meta"
)

// CheckFormatter outputs one pipe-delimited status line per result, for
// quick batch validation without the full metadata payload.
type CheckFormatter struct {
	writer io.Writer
}

// NewCheckFormatter creates a new check-line formatter.
func NewCheckFormatter(w io.Writer) *CheckFormatter {
	return &CheckFormatter{writer: w}
}

// SetOutput sets the output writer.
func (c *CheckFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes results as status|file_name|file_size lines.
func (c *CheckFormatter) Format(results []meta.Result) error {
	w := bufio.NewWriter(c.writer)
	for _, r := range results {
		if _, err := fmt.Fprintf(w, "%s|%s|%d\n", r.Status, r.FileName, r.FileSize); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush check output: %w", err)
	}
	return nil
}
