package meta

import (
	"github.com/parquet-go/parquet-go"
)

// ColumnInfo describes one leaf column in on-disk order.
type ColumnInfo struct {
	FieldName    string `json:"field_name"`
	PhysicalType string `json:"physical_type"`
	LogicalType  string `json:"logical_type"`
}

// SchemaSummary is the compact (Simple detail level) projection of a footer.
type SchemaSummary struct {
	FormatVersion int          `json:"format_version"`
	CreatedBy     string       `json:"created_by"`
	NumColumns    int          `json:"num_columns"`
	NumRows       int64        `json:"num_rows"`
	NumRowGroups  int          `json:"num_row_groups"`
	Schema        []ColumnInfo `json:"schema"`
}

// buildSummary projects the parsed file into a SchemaSummary. Column order
// matches the on-disk schema order; nested fields flatten to leaf columns
// with dot-notation names (e.g. "address.street").
func buildSummary(f *parquet.File) *SchemaSummary {
	md := f.Metadata()

	var columns []ColumnInfo
	for _, field := range f.Schema().Fields() {
		columns = append(columns, collectColumns(field, "")...)
	}

	return &SchemaSummary{
		FormatVersion: int(md.Version),
		CreatedBy:     md.CreatedBy,
		NumColumns:    len(columns),
		NumRows:       md.NumRows,
		NumRowGroups:  len(md.RowGroups),
		Schema:        columns,
	}
}

// collectColumns recursively flattens a field into its leaf columns. Groups
// contribute no column of their own, only a name prefix.
func collectColumns(field parquet.Field, prefix string) []ColumnInfo {
	name := field.Name()
	if prefix != "" {
		name = prefix + "." + name
	}

	children := field.Fields()
	if len(children) > 0 {
		var columns []ColumnInfo
		for _, child := range children {
			columns = append(columns, collectColumns(child, name)...)
		}
		return columns
	}

	return []ColumnInfo{{
		FieldName:    name,
		PhysicalType: physicalTypeName(field),
		LogicalType:  logicalTypeName(field),
	}}
}

// physicalTypeName returns the Parquet physical type name of a leaf field.
func physicalTypeName(field parquet.Field) string {
	if field.Type() == nil {
		return "GROUP"
	}

	switch field.Type().Kind() {
	case parquet.Boolean:
		return "BOOLEAN"
	case parquet.Int32:
		return "INT32"
	case parquet.Int64:
		return "INT64"
	case parquet.Int96:
		return "INT96"
	case parquet.Float:
		return "FLOAT"
	case parquet.Double:
		return "DOUBLE"
	case parquet.ByteArray:
		return "BYTE_ARRAY"
	case parquet.FixedLenByteArray:
		return "FIXED_LEN_BYTE_ARRAY"
	default:
		return "UNKNOWN"
	}
}

// logicalTypeName returns the logical type annotation of a leaf field, or
// "NONE" when the column carries no annotation.
func logicalTypeName(field parquet.Field) string {
	if field.Type() == nil {
		return "NONE"
	}

	logicalType := field.Type().LogicalType()
	if logicalType == nil {
		return "NONE"
	}
	return logicalType.String()
}
