// Package output renders ordered extraction results.
//
// Two formats are supported: a single indented JSON array of results, and a
// compact check mode emitting one pipe-delimited line per file
// (status|file_name|file_size). Both preserve the result order they are
// given.
package output
