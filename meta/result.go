package meta

// Status reports whether a file's metadata was extracted.
type Status string

const (
	StatusOK    Status = "OK"
	StatusError Status = "Error"
)

// Result is the outcome of extracting one file. It is the unit of output
// and of fault isolation: a failed file yields a Result with StatusError
// and nil Metadata, never an error that interrupts sibling files.
//
// Metadata holds a *SchemaSummary at the Simple level, the sanitized footer
// tree at the Exhaustive level, and nil otherwise.
type Result struct {
	Status   Status `json:"status"`
	FileName string `json:"file_name"`
	FileSize int64  `json:"file_size"`
	Metadata any    `json:"meta_data,omitempty"`
}
