// Package row builds the Rows held by a DataFrame.
package row

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"

	"github.com/go-sif/sifmock"
	errors "github.com/go-sif/sifmock/errors"
)

// rowImpl is a representation of a single record: positional values,
// along with the Schema which names them
type rowImpl struct {
	values []interface{}
	schema sifmock.Schema
}

// CreateRow builds a new Row from values, in column order. The number of
// values must match the number of columns in schema.
func CreateRow(schema sifmock.Schema, values []interface{}) (sifmock.Row, error) {
	if schema == nil || len(values) != schema.NumColumns() {
		cols := 0
		if schema != nil {
			cols = schema.NumColumns()
		}
		return nil, errors.IncompatibleRowError{Record: values, Columns: cols}
	}
	stored := make([]interface{}, len(values))
	copy(stored, values)
	return &rowImpl{values: stored, schema: schema}, nil
}

// Schema returns a read-only copy of the schema for a row
func (r *rowImpl) Schema() sifmock.Schema {
	return r.schema.Clone()
}

// Values returns a copy of the values in this row, in column order
func (r *rowImpl) Values() []interface{} {
	res := make([]interface{}, len(r.values))
	copy(res, r.values)
	return res
}

// ToString returns a string representation of this row
func (r *rowImpl) ToString() string {
	var res strings.Builder
	fmt.Fprint(&res, "{")
	for i, name := range r.schema.ColumnNames() {
		if i > 0 {
			fmt.Fprint(&res, ", ")
		}
		col, _ := r.schema.GetColumn(name)
		val := "nil"
		if v := r.values[col.Index()]; v != nil {
			val = col.Type().ToString(v)
		}
		fmt.Fprintf(&res, "\"%s\": %s", name, val)
	}
	fmt.Fprint(&res, "}")
	return res.String()
}

// IsNil returns true iff the given column value is nil in this row. If an error occurs, this function will return false.
func (r *rowImpl) IsNil(colName string) bool {
	col, err := r.schema.GetColumn(colName)
	if err != nil {
		return false
	}
	return r.values[col.Index()] == nil
}

// Get returns the value of any column as an interface{}, if it exists
func (r *rowImpl) Get(colName string) (interface{}, error) {
	col, err := r.schema.GetColumn(colName)
	if err != nil {
		return nil, err
	}
	v := r.values[col.Index()]
	if v == nil {
		return nil, errors.NilValueError{Name: colName}
	}
	return v, nil
}

// GetString retrieves a single string from the column with the given name
func (r *rowImpl) GetString(colName string) (col string, err error) {
	v, err := r.Get(colName)
	if err != nil {
		return
	}
	col, ok := v.(string)
	if !ok {
		err = errors.ColumnTypeMismatchError{Name: colName, Expected: "string", Actual: v}
	}
	return
}

// GetInt32 retrieves a single int32 from the column with the given name. Any Go
// integer which fits in an int32 is accepted.
func (r *rowImpl) GetInt32(colName string) (int32, error) {
	n, err := r.getInt(colName, "int32", math.MinInt32, math.MaxInt32)
	return int32(n), err
}

// GetInt64 retrieves a single int64 from the column with the given name. Any Go
// integer which fits in an int64 is accepted.
func (r *rowImpl) GetInt64(colName string) (int64, error) {
	return r.getInt(colName, "int64", math.MinInt64, math.MaxInt64)
}

func (r *rowImpl) getInt(colName string, expected string, lo, hi int64) (int64, error) {
	v, err := r.Get(colName)
	if err != nil {
		return 0, err
	}
	mismatch := errors.ColumnTypeMismatchError{Name: colName, Expected: expected, Actual: v}
	rv := reflect.ValueOf(v)
	var n int64
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n = rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if rv.Uint() > math.MaxInt64 {
			return 0, mismatch
		}
		n = int64(rv.Uint())
	default:
		return 0, mismatch
	}
	if n < lo || n > hi {
		return 0, mismatch
	}
	return n, nil
}

// GetFloat32 retrieves a single float32 from the column with the given name
func (r *rowImpl) GetFloat32(colName string) (col float32, err error) {
	v, err := r.Get(colName)
	if err != nil {
		return
	}
	col, ok := v.(float32)
	if !ok {
		err = errors.ColumnTypeMismatchError{Name: colName, Expected: "float32", Actual: v}
	}
	return
}

// GetFloat64 retrieves a single float64 from the column with the given name. float32
// values are widened.
func (r *rowImpl) GetFloat64(colName string) (float64, error) {
	v, err := r.Get(colName)
	if err != nil {
		return 0, err
	}
	switch f := v.(type) {
	case float64:
		return f, nil
	case float32:
		return float64(f), nil
	}
	return 0, errors.ColumnTypeMismatchError{Name: colName, Expected: "float64", Actual: v}
}

// GetBool retrieves a single bool from the column with the given name
func (r *rowImpl) GetBool(colName string) (col bool, err error) {
	v, err := r.Get(colName)
	if err != nil {
		return
	}
	col, ok := v.(bool)
	if !ok {
		err = errors.ColumnTypeMismatchError{Name: colName, Expected: "bool", Actual: v}
	}
	return
}

// GetTime retrieves a single time.Time from the column with the given name
func (r *rowImpl) GetTime(colName string) (col time.Time, err error) {
	v, err := r.Get(colName)
	if err != nil {
		return
	}
	col, ok := v.(time.Time)
	if !ok {
		err = errors.ColumnTypeMismatchError{Name: colName, Expected: "time.Time", Actual: v}
	}
	return
}

// GetBytes retrieves a byte slice from the column with the given name
func (r *rowImpl) GetBytes(colName string) (col []byte, err error) {
	v, err := r.Get(colName)
	if err != nil {
		return
	}
	col, ok := v.([]byte)
	if !ok {
		err = errors.ColumnTypeMismatchError{Name: colName, Expected: "[]byte", Actual: v}
	}
	return
}
