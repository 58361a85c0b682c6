package schema

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-sif/sifmock"
	errors "github.com/go-sif/sifmock/errors"
)

// column describes the position and type of a field in a Row.
type column struct {
	idx     int
	colType sifmock.ColumnType
}

// Clone returns a copy of this Column
func (c *column) Clone() sifmock.Column {
	return &column{c.idx, c.colType}
}

// Index returns the index of this Column within a Schema
func (c *column) Index() int {
	return c.idx
}

// Type returns the ColumnType of this Column
func (c *column) Type() sifmock.ColumnType {
	return c.colType
}

// schema is an ordered mapping from column names to Columns
type schema struct {
	schema map[string]sifmock.Column
	names  []string // in index order
}

// CreateSchema is a factory for Schemas
func CreateSchema() sifmock.Schema {
	return &schema{
		schema: make(map[string]sifmock.Column),
		names:  []string{},
	}
}

// Equals returns nil iff this and another Schema are equivalent
func (s *schema) Equals(otherSchema sifmock.Schema) error {
	if otherSchema == nil {
		return fmt.Errorf("Schema cannot equal a nil Schema")
	}
	if s.NumColumns() != otherSchema.NumColumns() {
		return fmt.Errorf("Schemas have unequal numbers of columns")
	}
	return s.ForEachColumn(func(name string, col sifmock.Column) error {
		otherCol, err := otherSchema.GetColumn(name)
		if err != nil {
			return err
		}
		if col.Index() != otherCol.Index() {
			return fmt.Errorf("Column %s indices do not match", name)
		}
		if reflect.TypeOf(col.Type()) != reflect.TypeOf(otherCol.Type()) {
			return fmt.Errorf("Column %s types do not match", name)
		}
		if !reflect.DeepEqual(col.Type(), otherCol.Type()) {
			return fmt.Errorf("Column %s type fields do not match", name)
		}
		return nil
	})
}

// Clone returns a copy of this Schema
func (s *schema) Clone() sifmock.Schema {
	newSchema := make(map[string]sifmock.Column)
	for k, v := range s.schema {
		newSchema[k] = v.Clone()
	}
	newNames := make([]string, len(s.names))
	copy(newNames, s.names)
	return &schema{schema: newSchema, names: newNames}
}

// NumColumns returns the number of columns in this Schema
func (s *schema) NumColumns() int {
	return len(s.names)
}

// GetColumn returns the Column with the given name
func (s *schema) GetColumn(colName string) (col sifmock.Column, err error) {
	col, ok := s.schema[colName]
	if !ok {
		err = errors.NoSuchColumnError{Name: colName}
	}
	return
}

// HasColumn returns true iff this schema contains a column with the given name
func (s *schema) HasColumn(colName string) bool {
	_, err := s.GetColumn(colName)
	return err == nil
}

// CreateColumn defines a new column at the end of the Schema
func (s *schema) CreateColumn(colName string, columnType sifmock.ColumnType) (newSchema sifmock.Schema, err error) {
	_, containsColumn := s.schema[colName]
	if containsColumn {
		err = fmt.Errorf("Schema already contains column with name %s", colName)
	} else if columnType == nil {
		err = fmt.Errorf("Column %s must have a type", colName)
	} else {
		s.schema[colName] = &column{len(s.names), columnType}
		s.names = append(s.names, colName)
		newSchema = s
	}
	return
}

// ColumnNames returns the names in the schema, in index order
func (s *schema) ColumnNames() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}

// ColumnTypes returns the types in the schema, in index order
func (s *schema) ColumnTypes() []sifmock.ColumnType {
	types := make([]sifmock.ColumnType, len(s.names))
	for i, name := range s.names {
		types[i] = s.schema[name].Type()
	}
	return types
}

// ForEachColumn iterates over the columns in this Schema, in index order
func (s *schema) ForEachColumn(fn func(name string, col sifmock.Column) error) error {
	for _, name := range s.names {
		err := fn(name, s.schema[name])
		if err != nil {
			return err
		}
	}
	return nil
}

// SimpleString describes this Schema, e.g. struct<a:string,b:int>
func (s *schema) SimpleString() string {
	var res strings.Builder
	res.WriteString("struct<")
	for i, name := range s.names {
		if i > 0 {
			res.WriteString(",")
		}
		fmt.Fprintf(&res, "%s:%s", name, s.schema[name].Type().Name())
	}
	res.WriteString(">")
	return res.String()
}
