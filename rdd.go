package sifmock

// An RDD is an ordered, in-memory collection of opaque elements. Transformations
// return a new RDD and never alter the receiver; actions return concrete results.
// The name label is the only mutable piece of state.
type RDD interface {
	ID() string                           // ID returns the unique identifier of this RDD
	Name() string                         // Name returns the name of this RDD, or "" if none has been set
	SetName(name string) RDD              // SetName changes the name of this RDD, returning the RDD
	Equals(other RDD) bool                // Equals returns true iff both RDDs have structurally equal elements and equal names
	ToDebugString() string                // ToDebugString describes this RDD and its lineage
	To(ops ...*RDDOperation) (RDD, error) // To is a "functional operations" factory method for RDDs, chaining operations onto the current one

	// Transformations
	Map(fn MapOperation) (RDD, error)               // Map applies fn to every element
	FlatMap(fn FlatMapOperation) (RDD, error)       // FlatMap applies fn to every element and concatenates the results
	MapValues(fn MapOperation) (RDD, error)         // MapValues applies fn to the value of every key-value element
	FlatMapValues(fn FlatMapOperation) (RDD, error) // FlatMapValues expands the value of every key-value element into many elements sharing its key
	Filter(fn FilterOperation) (RDD, error)         // Filter retains the elements for which fn is true
	Distinct() RDD                                  // Distinct drops repeated elements, keeping first occurrences
	GroupBy(fn KeyingOperation) (RDD, error)        // GroupBy groups elements by fn, producing Pair{key, []interface{}}
	GroupByKey() (RDD, error)                       // GroupByKey groups values by key, producing Pair{key, []interface{}}
	ReduceByKey(fn ReductionOperation) (RDD, error) // ReduceByKey folds the values sharing a key, producing Pair{key, value}
	KeyBy(fn KeyingOperation) (RDD, error)          // KeyBy produces Pair{fn(elem), elem}
	Keys() RDD                                      // Keys extracts the key of every element
	Values() (RDD, error)                           // Values extracts the value of every element
	Union(other RDD) RDD                            // Union concatenates the elements of other onto this RDD
	Join(other RDD) (RDD, error)                    // Join produces Pair{key, Pair{thisValue, otherValue}} for every matching key
	SubtractByKey(other RDD) RDD                    // SubtractByKey retains the elements whose key does not appear in other
	Zip(other RDD) (RDD, error)                     // Zip pairs elements positionally with those of other
	ZipWithIndex() RDD                              // ZipWithIndex pairs every element with its position
	Cache() RDD                                     // Cache is a no-op, returning this RDD
	Persist(level StorageLevel) RDD                 // Persist is a no-op which records level, returning this RDD
	Unpersist() RDD                                 // Unpersist clears any recorded storage level, returning this RDD
	StorageLevel() StorageLevel                     // StorageLevel returns the level recorded by Cache or Persist
	IsCached() bool                                 // IsCached returns true iff Cache or Persist has been called
	Checkpoint() error                              // Checkpoint saves the elements of this RDD to the checkpoint directory
	IsCheckpointed() bool                           // IsCheckpointed returns true iff Checkpoint has succeeded
	CheckpointFile() (path string, ok bool)         // CheckpointFile returns the file written by Checkpoint

	// Actions
	Collect() []interface{}                                     // Collect returns the elements of this RDD
	Count() int                                                 // Count returns the number of elements in this RDD
	CountByKey() (map[interface{}]int, error)                   // CountByKey counts the occurrences of every key
	CountByValue() (map[interface{}]int, error)                 // CountByValue counts the occurrences of every distinct element
	IsEmpty() bool                                              // IsEmpty returns true iff this RDD has no elements
	First() (interface{}, error)                                // First returns the first element
	Take(n int) []interface{}                                   // Take returns at most the first n elements
	Max() (interface{}, error)                                  // Max returns the greatest element under natural ordering
	Min() (interface{}, error)                                  // Min returns the least element under natural ordering
	Sum() (interface{}, error)                                  // Sum adds the elements together, as an int64 if they are all integers and a float64 otherwise
	Reduce(fn ReductionOperation) (interface{}, error)          // Reduce folds all elements, left to right
	Foreach(fn ForeachOperation) error                          // Foreach invokes fn on a copy of every element
	Accumulate(factory AccumulatorFactory) (Accumulator, error) // Accumulate feeds every element to a fresh Accumulator
}
