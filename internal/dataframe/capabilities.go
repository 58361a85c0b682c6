package dataframe

import (
	"fmt"

	"github.com/go-sif/sifmock"
	errors "github.com/go-sif/sifmock/errors"
	"go.uber.org/zap"
)

// implemented maps the members of the tabular surface which exist here to their implementations
var implemented = map[string]func(df *dataFrameImpl, args []interface{}) (interface{}, error){
	"count": func(df *dataFrameImpl, args []interface{}) (interface{}, error) {
		return df.Count(), nil
	},
	"cache": func(df *dataFrameImpl, args []interface{}) (interface{}, error) {
		return df.Cache(), nil
	},
	"schema": func(df *dataFrameImpl, args []interface{}) (interface{}, error) {
		return df.Schema(), nil
	},
}

// unimplemented lists the remaining members of the tabular surface
var unimplemented = map[string]bool{}

func init() {
	for _, name := range []string{
		"agg",
		"alias",
		"approxQuantile",
		"checkpoint",
		"coalesce",
		"collect",
		"columns",
		"corr",
		"cov",
		"createGlobalTempView",
		"createOrReplaceGlobalTempView",
		"createOrReplaceTempView",
		"createTempView",
		"crossJoin",
		"crosstab",
		"cube",
		"describe",
		"distinct",
		"drop",
		"dropDuplicates",
		"drop_duplicates",
		"dropna",
		"dtypes",
		"explain",
		"fillna",
		"filter",
		"first",
		"foreach",
		"foreachPartition",
		"freqItems",
		"groupBy",
		"groupby",
		"head",
		"hint",
		"intersect",
		"isLocal",
		"isStreaming",
		"join",
		"limit",
		"na",
		"orderBy",
		"persist",
		"printSchema",
		"randomSplit",
		"rdd",
		"registerTempTable",
		"repartition",
		"replace",
		"rollup",
		"sample",
		"sampleBy",
		"select",
		"selectExpr",
		"show",
		"sort",
		"sortWithinPartitions",
		"stat",
		"storageLevel",
		"subtract",
		"take",
		"toDF",
		"toJSON",
		"toLocalIterator",
		"toPandas",
		"union",
		"unionAll",
		"unpersist",
		"where",
		"withColumn",
		"withColumnRenamed",
		"withWatermark",
		"write",
		"writeStream",
	} {
		unimplemented[name] = true
	}
}

// Call invokes a member of the tabular surface by name. Members which exist here take no
// arguments; the rest report a NotImplementedError.
func (df *dataFrameImpl) Call(op string, args ...interface{}) (interface{}, error) {
	if fn, ok := implemented[op]; ok {
		if len(args) > 0 {
			return nil, fmt.Errorf("DataFrame.%s takes no arguments, got %d", op, len(args))
		}
		return fn(df, args)
	}
	if unimplemented[op] {
		df.logger.Warn("DataFrame member is not implemented", zap.String("member", op))
		return nil, errors.NotImplementedError{Operation: op}
	}
	return nil, errors.UnknownOperationError{Operation: op}
}

// IsImplemented returns true iff Call can dispatch op
func IsImplemented(op string) bool {
	_, ok := implemented[op]
	return ok
}

var _ sifmock.DataFrame = &dataFrameImpl{}
