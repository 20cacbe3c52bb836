// Package meta extracts structural metadata from Parquet files.
//
// An Extractor opens one file through a storage backend, parses the footer
// with parquet-go without touching row data, and renders it at one of three
// detail levels: check-only, a compact schema summary, or an exhaustive
// sanitized dump of the full footer including per-column-chunk statistics.
//
// Per-file problems (unreadable streams, truncated or malformed footers,
// permission errors) are captured in the returned Result and never escape
// the Extract call, so one bad file cannot abort a batch run.
package meta
