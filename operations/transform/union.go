package transform

import (
	"github.com/go-sif/sifmock"
)

// Union appends the elements of other, keeping duplicates
func Union(other sifmock.RDD) *sifmock.RDDOperation {
	return &sifmock.RDDOperation{
		TaskType: sifmock.UnionTaskType,
		Do: func(elems []interface{}) ([]interface{}, error) {
			otherElems := other.Collect()
			next := make([]interface{}, 0, len(elems)+len(otherElems))
			next = append(next, elems...)
			return append(next, otherElems...), nil
		},
	}
}
