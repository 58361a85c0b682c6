package sifmock

// TaskType describes the operation which produced an RDD, used for lineage and logging
type TaskType string

const (
	// ParallelizeTaskType indicates that an RDD was created directly from elements
	ParallelizeTaskType TaskType = "parallelize"
	// CheckpointTaskType indicates that an RDD was restored from a checkpoint file
	CheckpointTaskType TaskType = "checkpoint"
	// MapTaskType indicates that an RDD was produced by a Map
	MapTaskType TaskType = "map"
	// FlatMapTaskType indicates that an RDD was produced by a FlatMap
	FlatMapTaskType TaskType = "flatmap"
	// MapValuesTaskType indicates that an RDD was produced by a MapValues
	MapValuesTaskType TaskType = "mapvalues"
	// FlatMapValuesTaskType indicates that an RDD was produced by a FlatMapValues
	FlatMapValuesTaskType TaskType = "flatmapvalues"
	// FilterTaskType indicates that an RDD was produced by a Filter
	FilterTaskType TaskType = "filter"
	// DistinctTaskType indicates that an RDD was produced by a Distinct
	DistinctTaskType TaskType = "distinct"
	// GroupByTaskType indicates that an RDD was produced by a GroupBy
	GroupByTaskType TaskType = "groupby"
	// GroupByKeyTaskType indicates that an RDD was produced by a GroupByKey
	GroupByKeyTaskType TaskType = "groupbykey"
	// ReduceByKeyTaskType indicates that an RDD was produced by a ReduceByKey
	ReduceByKeyTaskType TaskType = "reducebykey"
	// KeyByTaskType indicates that an RDD was produced by a KeyBy
	KeyByTaskType TaskType = "keyby"
	// KeysTaskType indicates that an RDD was produced by Keys
	KeysTaskType TaskType = "keys"
	// ValuesTaskType indicates that an RDD was produced by Values
	ValuesTaskType TaskType = "values"
	// UnionTaskType indicates that an RDD was produced by a Union
	UnionTaskType TaskType = "union"
	// JoinTaskType indicates that an RDD was produced by a Join
	JoinTaskType TaskType = "join"
	// SubtractByKeyTaskType indicates that an RDD was produced by a SubtractByKey
	SubtractByKeyTaskType TaskType = "subtractbykey"
	// ZipTaskType indicates that an RDD was produced by a Zip
	ZipTaskType TaskType = "zip"
	// ZipWithIndexTaskType indicates that an RDD was produced by a ZipWithIndex
	ZipWithIndexTaskType TaskType = "zipwithindex"
)
