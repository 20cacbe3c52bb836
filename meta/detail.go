package meta

import "fmt"

// DetailLevel selects how much of the footer is rendered.
type DetailLevel int

const (
	// CheckOnly parses the footer to validate well-formedness and discards it.
	CheckOnly DetailLevel = iota
	// Simple renders a compact schema summary.
	Simple
	// Exhaustive renders the full sanitized footer structure.
	Exhaustive
)

// ParseDetailLevel validates a numeric detail tier from configuration.
// Anything outside 0..2 is a configuration error, reported before any file
// is processed.
func ParseDetailLevel(n int) (DetailLevel, error) {
	switch n {
	case 0:
		return CheckOnly, nil
	case 1:
		return Simple, nil
	case 2:
		return Exhaustive, nil
	default:
		return 0, fmt.Errorf("invalid detail level %d: must be 0 (check), 1 (simple), or 2 (exhaustive)", n)
	}
}

// String returns the level name.
func (d DetailLevel) String() string {
	switch d {
	case CheckOnly:
		return "check"
	case Simple:
		return "simple"
	case Exhaustive:
		return "exhaustive"
	default:
		return fmt.Sprintf("DetailLevel(%d)", int(d))
	}
}
