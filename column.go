package sifmock

// Column describes the position and type of a field in a Row.
type Column interface {
	Clone() Column    // Clone returns a copy of this Column
	Index() int       // Index returns the index of this Column within a Schema
	Type() ColumnType // Type returns the ColumnType of this Column
}
