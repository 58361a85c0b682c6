package transform

import (
	"github.com/go-sif/sifmock"
	"github.com/go-sif/sifmock/internal/kv"
	iutil "github.com/go-sif/sifmock/internal/util"
)

// FlatMap transforms every element into zero or more elements, concatenating the results in order
func FlatMap(fn sifmock.FlatMapOperation) *sifmock.RDDOperation {
	safeFn := iutil.SafeFlatMapOperation("FlatMap", fn)
	return &sifmock.RDDOperation{
		TaskType: sifmock.FlatMapTaskType,
		Do: func(elems []interface{}) ([]interface{}, error) {
			next := make([]interface{}, 0, len(elems))
			for _, elem := range elems {
				res, err := safeFn(elem)
				if err != nil {
					return nil, err
				}
				next = append(next, res...)
			}
			return next, nil
		},
	}
}

// FlatMapValues expands the value of every key-value element into zero or more values,
// producing a Pair{key, v} for each
func FlatMapValues(fn sifmock.FlatMapOperation) *sifmock.RDDOperation {
	safeFn := iutil.SafeFlatMapOperation("FlatMapValues", fn)
	return &sifmock.RDDOperation{
		TaskType: sifmock.FlatMapValuesTaskType,
		Do: func(elems []interface{}) ([]interface{}, error) {
			next := make([]interface{}, 0, len(elems))
			for _, elem := range elems {
				key, value, err := kv.Split(elem)
				if err != nil {
					return nil, err
				}
				res, err := safeFn(value)
				if err != nil {
					return nil, err
				}
				for _, v := range res {
					next = append(next, sifmock.Pair{Key: key, Value: v})
				}
			}
			return next, nil
		},
	}
}
