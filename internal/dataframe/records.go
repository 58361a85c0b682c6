package dataframe

import (
	"github.com/go-sif/sifmock"
	errors "github.com/go-sif/sifmock/errors"
	iutil "github.com/go-sif/sifmock/internal/util"
	"github.com/go-sif/sifmock/row"
	"github.com/hashicorp/go-multierror"
)

// ToRows converts records into Rows bound to schema. Supported records are Rows,
// Tuples or []interface{} (positional), Pairs (two columns), map[string]interface{}
// (by column name) and []byte JSON documents (by gjson path). If schema is nil, every
// record must be a Row and all must share an equal Schema, which is then returned.
// Conversion failures are aggregated into a *multierror.Error.
func ToRows(records []interface{}, schema sifmock.Schema) ([]interface{}, sifmock.Schema, error) {
	if schema == nil {
		inferred, err := inferSchema(records)
		if err != nil {
			return nil, nil, err
		}
		schema = inferred
	}
	var multierr *multierror.Error
	rows := make([]interface{}, 0, len(records))
	for _, record := range records {
		r, err := toRow(record, schema)
		if err != nil {
			multierr = multierror.Append(multierr, err)
			continue
		}
		rows = append(rows, r)
	}
	if multierr != nil {
		multierr.ErrorFormat = iutil.FormatMultiError
		return nil, nil, multierr
	}
	return rows, schema, nil
}

func inferSchema(records []interface{}) (sifmock.Schema, error) {
	var schema sifmock.Schema
	for _, record := range records {
		r, ok := record.(sifmock.Row)
		if !ok {
			return nil, errors.CannotInferSchemaError{}
		}
		if schema == nil {
			schema = r.Schema()
		} else if schema.Equals(r.Schema()) != nil {
			return nil, errors.CannotInferSchemaError{}
		}
	}
	if schema == nil {
		return nil, errors.CannotInferSchemaError{}
	}
	return schema, nil
}

func toRow(record interface{}, schema sifmock.Schema) (sifmock.Row, error) {
	switch rec := record.(type) {
	case sifmock.Row:
		return row.CreateRow(schema, rec.Values())
	case sifmock.Tuple:
		return row.CreateRow(schema, rec)
	case []interface{}:
		return row.CreateRow(schema, rec)
	case sifmock.Pair:
		return row.CreateRow(schema, []interface{}{rec.Key, rec.Value})
	case map[string]interface{}:
		values := make([]interface{}, schema.NumColumns())
		err := schema.ForEachColumn(func(name string, col sifmock.Column) error {
			values[col.Index()] = rec[name]
			return nil
		})
		if err != nil {
			return nil, err
		}
		return row.CreateRow(schema, values)
	case []byte:
		return parseJSONRow(rec, schema)
	}
	return nil, errors.IncompatibleRowError{Record: record, Columns: schema.NumColumns()}
}
