package transform

import (
	"github.com/go-sif/sifmock"
	"github.com/go-sif/sifmock/internal/index"
	iutil "github.com/go-sif/sifmock/internal/util"
)

// Filter retains the elements for which fn returns true
func Filter(fn sifmock.FilterOperation) *sifmock.RDDOperation {
	safeFn := iutil.SafeFilterOperation(fn)
	return &sifmock.RDDOperation{
		TaskType: sifmock.FilterTaskType,
		Do: func(elems []interface{}) ([]interface{}, error) {
			next := make([]interface{}, 0, len(elems))
			for _, elem := range elems {
				keep, err := safeFn(elem)
				if err != nil {
					return nil, err
				}
				if keep {
					next = append(next, elem)
				}
			}
			return next, nil
		},
	}
}

// Distinct drops repeated elements, keeping the first occurrence of each
func Distinct() *sifmock.RDDOperation {
	return &sifmock.RDDOperation{
		TaskType: sifmock.DistinctTaskType,
		Do: func(elems []interface{}) ([]interface{}, error) {
			seen := index.New()
			next := make([]interface{}, 0, len(elems))
			for _, elem := range elems {
				if _, inserted := seen.Insert(elem); inserted {
					next = append(next, elem)
				}
			}
			return next, nil
		},
	}
}
