package sifmock

// Schema is an ordered mapping from column names to Columns. It is opaque
// metadata attached to a DataFrame: the contents of Rows are never validated
// against it.
type Schema interface {
	Equals(otherSchema Schema) error // Equals returns nil iff this Schema is structurally equivalent to otherSchema, or an error describing the first difference
	Clone() Schema
	NumColumns() int
	GetColumn(colName string) (col Column, err error)
	HasColumn(colName string) bool
	CreateColumn(colName string, columnType ColumnType) (newSchema Schema, err error)
	ColumnNames() []string
	ColumnTypes() []ColumnType
	ForEachColumn(fn func(name string, col Column) error) error
	SimpleString() string // SimpleString describes this Schema, e.g. struct<a:string,b:int>
}
