package transform

import (
	"github.com/go-sif/sifmock"
	"github.com/go-sif/sifmock/internal/kv"
	iutil "github.com/go-sif/sifmock/internal/util"
)

// KeyBy pairs every element with a key produced by kfn, as Pair{key, element}
func KeyBy(kfn sifmock.KeyingOperation) *sifmock.RDDOperation {
	safeKfn := iutil.SafeKeyingOperation(kfn)
	return &sifmock.RDDOperation{
		TaskType: sifmock.KeyByTaskType,
		Do: func(elems []interface{}) ([]interface{}, error) {
			next := make([]interface{}, len(elems))
			for i, elem := range elems {
				key, err := safeKfn(elem)
				if err != nil {
					return nil, err
				}
				next[i] = sifmock.Pair{Key: key, Value: elem}
			}
			return next, nil
		},
	}
}

// Keys extracts the key of every element. Elements which are not key-value pairs are their own key.
func Keys() *sifmock.RDDOperation {
	return &sifmock.RDDOperation{
		TaskType: sifmock.KeysTaskType,
		Do: func(elems []interface{}) ([]interface{}, error) {
			next := make([]interface{}, len(elems))
			for i, elem := range elems {
				next[i] = kv.Key(elem)
			}
			return next, nil
		},
	}
}

// Values extracts the value of every element. Elements which are not key-value pairs
// yield their item at index 1 (e.g. the second character of a string).
func Values() *sifmock.RDDOperation {
	return &sifmock.RDDOperation{
		TaskType: sifmock.ValuesTaskType,
		Do: func(elems []interface{}) ([]interface{}, error) {
			next := make([]interface{}, len(elems))
			for i, elem := range elems {
				value, err := kv.Value(elem)
				if err != nil {
					return nil, err
				}
				next[i] = value
			}
			return next, nil
		},
	}
}
