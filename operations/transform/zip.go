package transform

import (
	"github.com/go-sif/sifmock"
	errors "github.com/go-sif/sifmock/errors"
)

// Zip pairs every element with the element at the same position in other, as
// Pair{this, other}. Both RDDs must have the same number of elements.
func Zip(other sifmock.RDD) *sifmock.RDDOperation {
	return &sifmock.RDDOperation{
		TaskType: sifmock.ZipTaskType,
		Do: func(elems []interface{}) ([]interface{}, error) {
			otherElems := other.Collect()
			if len(elems) != len(otherElems) {
				return nil, errors.IncompatibleLengthsError{Left: len(elems), Right: len(otherElems)}
			}
			next := make([]interface{}, len(elems))
			for i, elem := range elems {
				next[i] = sifmock.Pair{Key: elem, Value: otherElems[i]}
			}
			return next, nil
		},
	}
}

// ZipWithIndex pairs every element with its zero-based position, as Pair{element, index}
func ZipWithIndex() *sifmock.RDDOperation {
	return &sifmock.RDDOperation{
		TaskType: sifmock.ZipWithIndexTaskType,
		Do: func(elems []interface{}) ([]interface{}, error) {
			next := make([]interface{}, len(elems))
			for i, elem := range elems {
				next[i] = sifmock.Pair{Key: elem, Value: i}
			}
			return next, nil
		},
	}
}
