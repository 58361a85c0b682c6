package dataframe

import (
	"fmt"
	"time"

	"github.com/go-sif/sifmock"
	errors "github.com/go-sif/sifmock/errors"
	"github.com/go-sif/sifmock/row"
	"github.com/tidwall/gjson"
)

// parseJSONRow builds a Row from a JSON document. Each column name is a gjson path
// into the document; missing and null values become nil.
func parseJSONRow(doc []byte, schema sifmock.Schema) (sifmock.Row, error) {
	if !gjson.ValidBytes(doc) {
		return nil, errors.IncompatibleRowError{Record: string(doc), Columns: schema.NumColumns()}
	}
	values := make([]interface{}, schema.NumColumns())
	err := schema.ForEachColumn(func(name string, col sifmock.Column) error {
		res := gjson.GetBytes(doc, name)
		if !res.Exists() || res.Type == gjson.Null {
			return nil
		}
		val, err := parseJSONValue(res, name, col.Type())
		if err != nil {
			return err
		}
		values[col.Index()] = val
		return nil
	})
	if err != nil {
		return nil, err
	}
	return row.CreateRow(schema, values)
}

func parseJSONValue(res gjson.Result, colName string, colType sifmock.ColumnType) (interface{}, error) {
	switch ct := colType.(type) {
	case *sifmock.BoolColumnType:
		if res.Type != gjson.True && res.Type != gjson.False {
			return nil, fmt.Errorf("Column %s was not a boolean. Was: %s", colName, res.Raw)
		}
		return res.Bool(), nil
	case *sifmock.Int32ColumnType:
		if res.Type != gjson.Number {
			return nil, fmt.Errorf("Column %s was not a number. Was: %s", colName, res.Raw)
		}
		return int32(res.Int()), nil
	case *sifmock.Int64ColumnType:
		if res.Type != gjson.Number {
			return nil, fmt.Errorf("Column %s was not a number. Was: %s", colName, res.Raw)
		}
		return res.Int(), nil
	case *sifmock.Float32ColumnType:
		if res.Type != gjson.Number {
			return nil, fmt.Errorf("Column %s was not a number. Was: %s", colName, res.Raw)
		}
		return float32(res.Float()), nil
	case *sifmock.Float64ColumnType:
		if res.Type != gjson.Number {
			return nil, fmt.Errorf("Column %s was not a number. Was: %s", colName, res.Raw)
		}
		return res.Float(), nil
	case *sifmock.StringColumnType:
		if res.Type != gjson.String {
			return nil, fmt.Errorf("Column %s was not a string. Was: %s", colName, res.Raw)
		}
		return res.Str, nil
	case *sifmock.BytesColumnType:
		if res.Type != gjson.String {
			return nil, fmt.Errorf("Column %s was not a string. Was: %s", colName, res.Raw)
		}
		return []byte(res.Str), nil
	case *sifmock.TimeColumnType:
		format := ct.Format
		if len(format) == 0 {
			format = time.RFC3339
		}
		tval, err := time.Parse(format, res.String())
		if err != nil {
			return nil, fmt.Errorf("Column %s could not be parsed as datetime with format %s. Was: %s", colName, format, res.Raw)
		}
		return tval, nil
	}
	return nil, fmt.Errorf("JSON parsing does not support column type %T", colType)
}
