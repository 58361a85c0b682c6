package sifmock

// An Accumulator siphons the elements of an RDD into a custom data structure. The
// result is the Accumulator itself, rather than another RDD. Count, Sum, Max, Min,
// CountByKey and CountByValue are all implemented as Accumulators (see the
// accumulators package), and custom ones may be supplied to RDD.Accumulate.
type Accumulator interface {
	Accumulate(elem interface{}) error // Accumulate adds an element to this Accumulator
	Merge(o Accumulator) error         // Merge merges another Accumulator into this one
}
