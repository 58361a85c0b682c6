package dataframe

import (
	"fmt"

	"github.com/go-sif/sifmock"
	"github.com/go-sif/sifmock/internal/kv"
	"go.uber.org/zap"
)

// A dataFrameImpl implements DataFrame internally for sifmock
type dataFrameImpl struct {
	rows   sifmock.RDD    // an RDD of sifmock.Row
	schema sifmock.Schema // the schema this DataFrame was created with, returned as supplied
	logger *zap.Logger
}

// CreateDataFrame is a factory for DataFrames. records are converted into Rows
// (see ToRows) and stored in an RDD produced by parallelize. This function is not
// intended to be used directly, as DataFrames are returned by a session.
func CreateDataFrame(records []interface{}, schema sifmock.Schema, parallelize func([]interface{}) sifmock.RDD, logger *zap.Logger) (sifmock.DataFrame, error) {
	rows, schema, err := ToRows(records, schema)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	df := &dataFrameImpl{
		rows:   parallelize(rows),
		schema: schema,
		logger: logger,
	}
	logger.Debug("Created DataFrame", zap.Int("rows", len(rows)), zap.String("schema", schema.SimpleString()))
	return df, nil
}

// CopyDataFrame produces a distinct DataFrame with the same Rows and a clone of the Schema
func CopyDataFrame(df sifmock.DataFrame, parallelize func([]interface{}) sifmock.RDD) (sifmock.DataFrame, error) {
	src, ok := df.(*dataFrameImpl)
	if !ok {
		return nil, fmt.Errorf("Cannot copy DataFrame of type %T", df)
	}
	return CreateDataFrame(src.rows.Collect(), src.schema.Clone(), parallelize, src.logger)
}

// Count returns the number of Rows in this DataFrame
func (df *dataFrameImpl) Count() int {
	return df.rows.Count()
}

// Schema returns the Schema this DataFrame was created with
func (df *dataFrameImpl) Schema() sifmock.Schema {
	return df.schema
}

// Cache is a no-op, returning this DataFrame
func (df *dataFrameImpl) Cache() sifmock.DataFrame {
	df.rows.Cache()
	return df
}

// Equals returns true iff both DataFrames have equal Rows and Schemas
func (df *dataFrameImpl) Equals(other sifmock.DataFrame) bool {
	if other == nil || df.schema.Equals(other.Schema()) != nil {
		return false
	}
	o, ok := other.(*dataFrameImpl)
	if !ok {
		return false
	}
	if df == o {
		return true
	}
	mine, theirs := df.rows.Collect(), o.rows.Collect()
	if len(mine) != len(theirs) {
		return false
	}
	for i := range mine {
		if !kv.Equal(mine[i].(sifmock.Row).Values(), theirs[i].(sifmock.Row).Values()) {
			return false
		}
	}
	return true
}
