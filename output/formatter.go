package output

import (
	"io"

	"github.com/vegasq/parqmeta/meta"
)

// Formatter renders an ordered result list.
type Formatter interface {
	// Format writes the results in the formatter's specific format.
	Format(results []meta.Result) error

	// SetOutput changes the output writer.
	SetOutput(w io.Writer)
}
