package transform

import (
	"github.com/go-sif/sifmock"
	"github.com/go-sif/sifmock/internal/index"
	"github.com/go-sif/sifmock/internal/kv"
)

// Join performs an inner join on key equality with other. Every combination of matching
// elements produces a Pair{key, Pair{thisValue, otherValue}}, ordered by this RDD's
// elements and then by other's.
func Join(other sifmock.RDD) *sifmock.RDDOperation {
	return &sifmock.RDDOperation{
		TaskType: sifmock.JoinTaskType,
		Do: func(elems []interface{}) ([]interface{}, error) {
			right, err := groupElements(other.Collect(), kv.Split)
			if err != nil {
				return nil, err
			}
			next := make([]interface{}, 0, len(elems))
			for _, elem := range elems {
				key, value, err := kv.Split(elem)
				if err != nil {
					return nil, err
				}
				pos, ok := right.keys.Find(key)
				if !ok {
					continue
				}
				for _, otherValue := range right.values[pos] {
					next = append(next, sifmock.Pair{Key: key, Value: sifmock.Pair{Key: value, Value: otherValue}})
				}
			}
			return next, nil
		},
	}
}

// SubtractByKey retains the elements whose key appears nowhere in other
func SubtractByKey(other sifmock.RDD) *sifmock.RDDOperation {
	return &sifmock.RDDOperation{
		TaskType: sifmock.SubtractByKeyTaskType,
		Do: func(elems []interface{}) ([]interface{}, error) {
			otherKeys := index.New()
			for _, otherElem := range other.Collect() {
				otherKeys.Insert(kv.Key(otherElem))
			}
			next := make([]interface{}, 0, len(elems))
			for _, elem := range elems {
				if !otherKeys.Contains(kv.Key(elem)) {
					next = append(next, elem)
				}
			}
			return next, nil
		},
	}
}
