package transform

import (
	"github.com/go-sif/sifmock"
	"github.com/go-sif/sifmock/internal/index"
	"github.com/go-sif/sifmock/internal/kv"
	iutil "github.com/go-sif/sifmock/internal/util"
)

// grouping collects values by key. Keys are positioned in order of first appearance.
type grouping struct {
	keys   *index.Index
	values [][]interface{}
}

type splitFunc func(elem interface{}) (key interface{}, value interface{}, err error)

func groupElements(elems []interface{}, split splitFunc) (*grouping, error) {
	g := &grouping{keys: index.New()}
	for _, elem := range elems {
		key, value, err := split(elem)
		if err != nil {
			return nil, err
		}
		pos, inserted := g.keys.Insert(key)
		if inserted {
			g.values = append(g.values, []interface{}{})
		}
		g.values[pos] = append(g.values[pos], value)
	}
	return g, nil
}

// emit produces one element per group, visiting groups in the given order
func (g *grouping) emit(order sifmock.GroupOrder, fn func(key interface{}, values []interface{}) (interface{}, error)) ([]interface{}, error) {
	next := make([]interface{}, 0, g.keys.Len())
	visit := func(pos int) error {
		res, err := fn(g.keys.Key(pos), g.values[pos])
		if err != nil {
			return err
		}
		next = append(next, res)
		return nil
	}
	if order == sifmock.GroupOrderFirstSeen {
		for pos := 0; pos < g.keys.Len(); pos++ {
			if err := visit(pos); err != nil {
				return nil, err
			}
		}
	} else {
		for pos := g.keys.Len() - 1; pos >= 0; pos-- {
			if err := visit(pos); err != nil {
				return nil, err
			}
		}
	}
	return next, nil
}

func collectGroup(key interface{}, values []interface{}) (interface{}, error) {
	return sifmock.Pair{Key: key, Value: values}, nil
}

// GroupBy groups elements by the key produced by kfn, producing a Pair{key, []interface{}{elements...}} per group
func GroupBy(kfn sifmock.KeyingOperation, order sifmock.GroupOrder) *sifmock.RDDOperation {
	safeKfn := iutil.SafeKeyingOperation(kfn)
	return &sifmock.RDDOperation{
		TaskType: sifmock.GroupByTaskType,
		Do: func(elems []interface{}) ([]interface{}, error) {
			g, err := groupElements(elems, func(elem interface{}) (interface{}, interface{}, error) {
				key, err := safeKfn(elem)
				return key, elem, err
			})
			if err != nil {
				return nil, err
			}
			return g.emit(order, collectGroup)
		},
	}
}

// GroupByKey groups the values of key-value elements by key, producing a Pair{key, []interface{}{values...}} per key
func GroupByKey(order sifmock.GroupOrder) *sifmock.RDDOperation {
	return &sifmock.RDDOperation{
		TaskType: sifmock.GroupByKeyTaskType,
		Do: func(elems []interface{}) ([]interface{}, error) {
			g, err := groupElements(elems, kv.Split)
			if err != nil {
				return nil, err
			}
			return g.emit(order, collectGroup)
		},
	}
}
