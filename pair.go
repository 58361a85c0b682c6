package sifmock

import (
	"fmt"
	"strings"
)

// Pair is a key-value element. Key-oriented operations (GroupByKey, ReduceByKey, Join,
// SubtractByKey, CountByKey, MapValues, FlatMapValues) read its Key and Value.
type Pair struct {
	Key   interface{}
	Value interface{}
}

// String returns a human-readable representation: "(key, value)"
func (p Pair) String() string {
	return fmt.Sprintf("(%v, %v)", p.Key, p.Value)
}

// Tuple is an ordered, fixed group of components. A Tuple with at least two
// components is treated as a key-value element whose key is component 0 and
// whose value is component 1.
type Tuple []interface{}

// String returns a human-readable representation: "(a, b, c)"
func (t Tuple) String() string {
	parts := make([]string, len(t))
	for i, v := range t {
		parts[i] = fmt.Sprintf("%v", v)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
