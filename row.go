package sifmock

import "time"

// Row is a single record of a DataFrame: positional values along with the Schema
// which names them. Typed getters return an error if the column is missing, nil,
// or holds a value of another Go type.
type Row interface {
	Schema() Schema                                   // Schema returns the schema for this row
	ToString() string                                 // ToString returns a string representation of this row
	Values() []interface{}                            // Values returns a copy of the values in this row, in column order
	IsNil(colName string) bool                        // IsNil returns true iff the given column value is nil in this row. If an error occurs, this function will return false.
	Get(colName string) (col interface{}, err error)  // Get returns the value of any column as an interface{}, if it exists
	GetString(colName string) (col string, err error) // GetString retrieves a single string from the column with the given name
	GetInt32(colName string) (col int32, err error)   // GetInt32 retrieves a single int32 from the column with the given name
	GetInt64(colName string) (col int64, err error)   // GetInt64 retrieves a single int64 from the column with the given name
	GetFloat32(colName string) (col float32, err error)
	GetFloat64(colName string) (col float64, err error)
	GetBool(colName string) (col bool, err error)
	GetTime(colName string) (col time.Time, err error)
	GetBytes(colName string) (col []byte, err error)
}
