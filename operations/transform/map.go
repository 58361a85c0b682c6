package transform

import (
	"github.com/go-sif/sifmock"
	"github.com/go-sif/sifmock/internal/kv"
	iutil "github.com/go-sif/sifmock/internal/util"
)

// Map transforms every element, producing exactly one element for each
func Map(fn sifmock.MapOperation) *sifmock.RDDOperation {
	safeFn := iutil.SafeMapOperation("Map", fn)
	return &sifmock.RDDOperation{
		TaskType: sifmock.MapTaskType,
		Do: func(elems []interface{}) ([]interface{}, error) {
			next := make([]interface{}, len(elems))
			for i, elem := range elems {
				res, err := safeFn(elem)
				if err != nil {
					return nil, err
				}
				next[i] = res
			}
			return next, nil
		},
	}
}

// MapValues transforms the value of every key-value element, retaining its key. The
// result is always a Pair, so Tuples of three or more components are narrowed to
// Pair{component 0, fn(component 1)}.
func MapValues(fn sifmock.MapOperation) *sifmock.RDDOperation {
	safeFn := iutil.SafeMapOperation("MapValues", fn)
	return &sifmock.RDDOperation{
		TaskType: sifmock.MapValuesTaskType,
		Do: func(elems []interface{}) ([]interface{}, error) {
			next := make([]interface{}, len(elems))
			for i, elem := range elems {
				key, value, err := kv.Split(elem)
				if err != nil {
					return nil, err
				}
				res, err := safeFn(value)
				if err != nil {
					return nil, err
				}
				next[i] = sifmock.Pair{Key: key, Value: res}
			}
			return next, nil
		},
	}
}
