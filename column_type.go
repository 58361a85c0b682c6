package sifmock

import (
	"fmt"
	"strings"
	"time"
)

// ColumnType describes the kind of value held by a Column. ColumnTypes are
// descriptive only: values are never coerced into or checked against them,
// except when Rows are parsed from JSON documents.
type ColumnType interface {
	Name() string                  // Name returns the simple name of this type, e.g. "string" or "int"
	ToString(v interface{}) string // ToString produces a string representation of a value of this type
}

// StringColumnType is a column type which stores a string value
type StringColumnType struct{}

// Name returns the simple name of a StringColumnType
func (b *StringColumnType) Name() string {
	return "string"
}

// ToString produces a string representation of a value of a StringColumnType value
func (b *StringColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("\"%v\"", v)
}

// Int32ColumnType is a column type which stores an int32 value
type Int32ColumnType struct{}

// Name returns the simple name of an Int32ColumnType
func (b *Int32ColumnType) Name() string {
	return "int"
}

// ToString produces a string representation of a value of an Int32ColumnType value
func (b *Int32ColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%d", v)
}

// Int64ColumnType is a column type which stores an int64 value
type Int64ColumnType struct{}

// Name returns the simple name of an Int64ColumnType
func (b *Int64ColumnType) Name() string {
	return "bigint"
}

// ToString produces a string representation of a value of an Int64ColumnType value
func (b *Int64ColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%d", v)
}

// Float32ColumnType is a column type which stores a float32 value
type Float32ColumnType struct{}

// Name returns the simple name of a Float32ColumnType
func (b *Float32ColumnType) Name() string {
	return "float"
}

// ToString produces a string representation of a value of a Float32ColumnType value
func (b *Float32ColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%f", v)
}

// Float64ColumnType is a column type which stores a float64 value
type Float64ColumnType struct{}

// Name returns the simple name of a Float64ColumnType
func (b *Float64ColumnType) Name() string {
	return "double"
}

// ToString produces a string representation of a value of a Float64ColumnType value
func (b *Float64ColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%f", v)
}

// BoolColumnType is a column type which stores a boolean value
type BoolColumnType struct{}

// Name returns the simple name of a BoolColumnType
func (b *BoolColumnType) Name() string {
	return "boolean"
}

// ToString produces a string representation of a value of a BoolColumnType value
func (b *BoolColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%t", v)
}

// TimeColumnType is a column type which stores a time.Time value. Format is the layout
// used to parse string values from JSON documents, and defaults to time.RFC3339.
type TimeColumnType struct {
	Format string
}

// Name returns the simple name of a TimeColumnType
func (b *TimeColumnType) Name() string {
	return "timestamp"
}

// ToString produces a string representation of a value of a TimeColumnType value
func (b *TimeColumnType) ToString(v interface{}) string {
	t, ok := v.(time.Time)
	if !ok {
		return fmt.Sprintf("\"%v\"", v)
	}
	return fmt.Sprintf("\"%s\"", t.String())
}

// BytesColumnType is a column type which stores a variable-length byte array
type BytesColumnType struct{}

// Name returns the simple name of a BytesColumnType
func (b *BytesColumnType) Name() string {
	return "binary"
}

// ToString produces a string representation of a value of a BytesColumnType value
func (b *BytesColumnType) ToString(v interface{}) string {
	bytes, ok := v.([]byte)
	if !ok {
		return fmt.Sprintf("%v", v)
	}
	var res strings.Builder
	fmt.Fprint(&res, "[")
	for i, v := range bytes {
		// don't print more than 5 entries
		if i >= 5 {
			fmt.Fprintf(&res, "... %d more", len(bytes)-5)
			break
		}
		fmt.Fprintf(&res, "%x", v)
	}
	fmt.Fprint(&res, "]")
	return res.String()
}
