package output

import (
	"encoding/json"
	"io"

	"github.com/vegasq/parqmeta/meta"
)

// JSONFormatter outputs all results as one indented JSON array.
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer.
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes the results as a JSON array in the given order. An empty
// result set encodes as [].
func (j *JSONFormatter) Format(results []meta.Result) error {
	if results == nil {
		results = []meta.Result{}
	}
	encoder := json.NewEncoder(j.writer)
	encoder.SetIndent("", "    ")
	return encoder.Encode(results)
}
