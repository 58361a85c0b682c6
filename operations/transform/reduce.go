package transform

import (
	"github.com/go-sif/sifmock"
	"github.com/go-sif/sifmock/internal/kv"
	iutil "github.com/go-sif/sifmock/internal/util"
)

// ReduceByKey combines the values sharing a key with fn, left to right in encounter
// order, producing a Pair{key, combined} per key
func ReduceByKey(fn sifmock.ReductionOperation, order sifmock.GroupOrder) *sifmock.RDDOperation {
	safeFn := iutil.SafeReductionOperation(fn)
	return &sifmock.RDDOperation{
		TaskType: sifmock.ReduceByKeyTaskType,
		Do: func(elems []interface{}) ([]interface{}, error) {
			g, err := groupElements(elems, kv.Split)
			if err != nil {
				return nil, err
			}
			return g.emit(order, func(key interface{}, values []interface{}) (interface{}, error) {
				var err error
				acc := values[0]
				for _, v := range values[1:] {
					acc, err = safeFn(acc, v)
					if err != nil {
						return nil, err
					}
				}
				return sifmock.Pair{Key: key, Value: acc}, nil
			})
		},
	}
}
