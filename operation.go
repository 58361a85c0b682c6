package sifmock

// AccumulatorFactory is a function that produces a fresh Accumulator
type AccumulatorFactory func() Accumulator

// RDDOperation is a generic RDD transform. Do computes the elements of the next RDD from the
// elements of the previous one, and TaskType names the transform for lineage purposes.
type RDDOperation struct {
	TaskType TaskType
	Do       func(elems []interface{}) ([]interface{}, error)
}

// MapOperation - A generic function for transforming one element into another
type MapOperation func(elem interface{}) (interface{}, error)

// FilterOperation - A generic function for determining whether or not an element should be retained
type FilterOperation func(elem interface{}) (bool, error)

// FlatMapOperation - A generic function for turning an element into zero or more elements
type FlatMapOperation func(elem interface{}) ([]interface{}, error)

// KeyingOperation - A generic function for generating a key from an element
type KeyingOperation func(elem interface{}) (interface{}, error)

// ReductionOperation - A generic function for combining two values into one. left is the running result.
type ReductionOperation func(left interface{}, right interface{}) (interface{}, error)

// ForeachOperation - A generic function invoked on each element for its side effects
type ForeachOperation func(elem interface{}) error
