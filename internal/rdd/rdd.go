package rdd

import (
	"fmt"
	"strings"

	"github.com/docker/docker/pkg/locker"
	"github.com/go-sif/sifmock"
	"github.com/go-sif/sifmock/accumulators"
	errors "github.com/go-sif/sifmock/errors"
	"github.com/go-sif/sifmock/internal/kv"
	iutil "github.com/go-sif/sifmock/internal/util"
	"github.com/go-sif/sifmock/operations/transform"
	uuid "github.com/gofrs/uuid"
	"go.uber.org/zap"
)

// Config is shared by every RDD created from the same session
type Config struct {
	GroupOrder    sifmock.GroupOrder // the order in which grouping transformations emit groups
	CheckpointDir string             // the directory which Checkpoint writes to. Checkpoint fails if empty.
	Logger        *zap.Logger        // the logger for RDD lifecycle messages
	locks         *locker.Locker     // per-file checkpoint locks
}

// NewConfig produces a Config, defaulting any missing values
func NewConfig(order sifmock.GroupOrder, checkpointDir string, logger *zap.Logger) *Config {
	if len(order) == 0 {
		order = sifmock.GroupOrderReverseFirstSeen
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Config{
		GroupOrder:    order,
		CheckpointDir: checkpointDir,
		Logger:        logger,
		locks:         locker.New(),
	}
}

// A rddImpl implements RDD internally for sifmock
type rddImpl struct {
	id             string
	name           string
	elems          []interface{}
	parent         *rddImpl         // the parent RDD. Nil if this is the root.
	taskType       sifmock.TaskType // the type of operation which produced this RDD
	storageLevel   sifmock.StorageLevel
	checkpointFile string
	conf           *Config
}

// CreateRDD is a factory for RDDs. The given elements are copied. This function is not
// intended to be used directly, as RDDs are returned by a session.
func CreateRDD(conf *Config, elems []interface{}, taskType sifmock.TaskType) sifmock.RDD {
	stored := make([]interface{}, len(elems))
	copy(stored, elems)
	r := &rddImpl{
		id:       uuid.Must(uuid.NewV4()).String(),
		elems:    stored,
		taskType: taskType,
		conf:     conf,
	}
	conf.Logger.Debug("Created RDD", zap.String("id", r.id), zap.String("task", string(taskType)), zap.Int("elements", len(stored)))
	return r
}

// derive produces a child of this RDD over freshly computed elements
func (r *rddImpl) derive(taskType sifmock.TaskType, elems []interface{}) *rddImpl {
	return &rddImpl{
		id:       uuid.Must(uuid.NewV4()).String(),
		elems:    elems,
		parent:   r,
		taskType: taskType,
		conf:     r.conf,
	}
}

// ID returns the unique identifier of this RDD
func (r *rddImpl) ID() string {
	return r.id
}

// Name returns the name of this RDD, or "" if none has been set
func (r *rddImpl) Name() string {
	return r.name
}

// SetName changes the name of this RDD, returning the RDD
func (r *rddImpl) SetName(name string) sifmock.RDD {
	r.name = name
	return r
}

// Equals returns true iff both RDDs have structurally equal elements and equal names
func (r *rddImpl) Equals(other sifmock.RDD) bool {
	if other == nil {
		return false
	}
	if r.name != other.Name() {
		return false
	}
	otherElems := other.Collect()
	if len(r.elems) != len(otherElems) {
		return false
	}
	for i := range r.elems {
		if !kv.Equal(r.elems[i], otherElems[i]) {
			return false
		}
	}
	return true
}

// ToDebugString describes this RDD and its lineage, one line per ancestor
func (r *rddImpl) ToDebugString() string {
	var res strings.Builder
	for next, depth := r, 0; next != nil; next, depth = next.parent, depth+1 {
		if depth > 0 {
			res.WriteString("\n" + strings.Repeat(" |  ", depth))
		}
		fmt.Fprintf(&res, "(%d) ", len(next.elems))
		if len(next.name) > 0 {
			fmt.Fprintf(&res, "%s ", next.name)
		}
		fmt.Fprintf(&res, "%s RDD[%s]", next.taskType, next.id)
		if next.storageLevel != sifmock.StorageLevelNone {
			fmt.Fprintf(&res, " [%s]", next.storageLevel)
		}
	}
	return res.String()
}

// To is a "functional operations" factory method for RDDs,
// chaining operations onto the current one(s).
func (r *rddImpl) To(ops ...*sifmock.RDDOperation) (sifmock.RDD, error) {
	next := r
	for _, op := range ops {
		elems, err := op.Do(next.elems)
		if err != nil {
			return nil, err
		}
		next = next.derive(op.TaskType, elems)
	}
	return next, nil
}

// infallible applies an operation which never returns an error
func (r *rddImpl) infallible(op *sifmock.RDDOperation) sifmock.RDD {
	next, err := r.To(op)
	if err != nil {
		panic(fmt.Errorf("%s operation unexpectedly failed: %w", op.TaskType, err))
	}
	return next
}

// Map applies fn to every element
func (r *rddImpl) Map(fn sifmock.MapOperation) (sifmock.RDD, error) {
	return r.To(transform.Map(fn))
}

// FlatMap applies fn to every element and concatenates the results
func (r *rddImpl) FlatMap(fn sifmock.FlatMapOperation) (sifmock.RDD, error) {
	return r.To(transform.FlatMap(fn))
}

// MapValues applies fn to the value of every key-value element
func (r *rddImpl) MapValues(fn sifmock.MapOperation) (sifmock.RDD, error) {
	return r.To(transform.MapValues(fn))
}

// FlatMapValues expands the value of every key-value element into many elements sharing its key
func (r *rddImpl) FlatMapValues(fn sifmock.FlatMapOperation) (sifmock.RDD, error) {
	return r.To(transform.FlatMapValues(fn))
}

// Filter retains the elements for which fn is true
func (r *rddImpl) Filter(fn sifmock.FilterOperation) (sifmock.RDD, error) {
	return r.To(transform.Filter(fn))
}

// Distinct drops repeated elements, keeping first occurrences
func (r *rddImpl) Distinct() sifmock.RDD {
	return r.infallible(transform.Distinct())
}

// GroupBy groups elements by fn
func (r *rddImpl) GroupBy(fn sifmock.KeyingOperation) (sifmock.RDD, error) {
	return r.To(transform.GroupBy(fn, r.conf.GroupOrder))
}

// GroupByKey groups values by key
func (r *rddImpl) GroupByKey() (sifmock.RDD, error) {
	return r.To(transform.GroupByKey(r.conf.GroupOrder))
}

// ReduceByKey folds the values sharing a key
func (r *rddImpl) ReduceByKey(fn sifmock.ReductionOperation) (sifmock.RDD, error) {
	return r.To(transform.ReduceByKey(fn, r.conf.GroupOrder))
}

// KeyBy produces Pair{fn(elem), elem}
func (r *rddImpl) KeyBy(fn sifmock.KeyingOperation) (sifmock.RDD, error) {
	return r.To(transform.KeyBy(fn))
}

// Keys extracts the key of every element
func (r *rddImpl) Keys() sifmock.RDD {
	return r.infallible(transform.Keys())
}

// Values extracts the value of every element
func (r *rddImpl) Values() (sifmock.RDD, error) {
	return r.To(transform.Values())
}

// Union concatenates the elements of other onto this RDD
func (r *rddImpl) Union(other sifmock.RDD) sifmock.RDD {
	return r.infallible(transform.Union(other))
}

// Join produces Pair{key, Pair{thisValue, otherValue}} for every matching key
func (r *rddImpl) Join(other sifmock.RDD) (sifmock.RDD, error) {
	return r.To(transform.Join(other))
}

// SubtractByKey retains the elements whose key does not appear in other
func (r *rddImpl) SubtractByKey(other sifmock.RDD) sifmock.RDD {
	return r.infallible(transform.SubtractByKey(other))
}

// Zip pairs elements positionally with those of other
func (r *rddImpl) Zip(other sifmock.RDD) (sifmock.RDD, error) {
	return r.To(transform.Zip(other))
}

// ZipWithIndex pairs every element with its position
func (r *rddImpl) ZipWithIndex() sifmock.RDD {
	return r.infallible(transform.ZipWithIndex())
}

// Cache is a no-op, returning this RDD
func (r *rddImpl) Cache() sifmock.RDD {
	return r.Persist(sifmock.StorageLevelMemoryOnly)
}

// Persist is a no-op which records level, returning this RDD
func (r *rddImpl) Persist(level sifmock.StorageLevel) sifmock.RDD {
	r.storageLevel = level
	return r
}

// Unpersist clears any recorded storage level, returning this RDD
func (r *rddImpl) Unpersist() sifmock.RDD {
	r.storageLevel = sifmock.StorageLevelNone
	return r
}

// StorageLevel returns the level recorded by Cache or Persist
func (r *rddImpl) StorageLevel() sifmock.StorageLevel {
	return r.storageLevel
}

// IsCached returns true iff Cache or Persist has been called
func (r *rddImpl) IsCached() bool {
	return r.storageLevel != sifmock.StorageLevelNone
}

// Collect returns copies of the elements of this RDD
func (r *rddImpl) Collect() []interface{} {
	return copyElems(r.elems)
}

func copyElems(elems []interface{}) []interface{} {
	res := make([]interface{}, len(elems))
	for i, elem := range elems {
		res[i] = kv.DeepCopy(elem)
	}
	return res
}

// Count returns the number of elements in this RDD
func (r *rddImpl) Count() int {
	return len(r.elems)
}

// CountByKey counts the occurrences of every key
func (r *rddImpl) CountByKey() (map[interface{}]int, error) {
	acc, err := r.Accumulate(accumulators.KeyCounter)
	if err != nil {
		return nil, err
	}
	return acc.(*accumulators.Frequency).GetCounts(), nil
}

// CountByValue counts the occurrences of every distinct element
func (r *rddImpl) CountByValue() (map[interface{}]int, error) {
	acc, err := r.Accumulate(accumulators.ValueCounter)
	if err != nil {
		return nil, err
	}
	return acc.(*accumulators.Frequency).GetCounts(), nil
}

// IsEmpty returns true iff this RDD has no elements
func (r *rddImpl) IsEmpty() bool {
	return len(r.elems) == 0
}

// First returns the first element
func (r *rddImpl) First() (interface{}, error) {
	if len(r.elems) == 0 {
		return nil, errors.EmptyCollectionError{Operation: "First"}
	}
	return kv.DeepCopy(r.elems[0]), nil
}

// Take returns at most the first n elements
func (r *rddImpl) Take(n int) []interface{} {
	if n < 0 {
		n = 0
	}
	if n > len(r.elems) {
		n = len(r.elems)
	}
	return copyElems(r.elems[:n])
}

// Max returns the greatest element under natural ordering
func (r *rddImpl) Max() (interface{}, error) {
	if len(r.elems) == 0 {
		return nil, errors.EmptyCollectionError{Operation: "Max"}
	}
	acc, err := r.Accumulate(accumulators.Maximizer)
	if err != nil {
		return nil, err
	}
	return acc.(*accumulators.Extremum).GetValue(), nil
}

// Min returns the least element under natural ordering
func (r *rddImpl) Min() (interface{}, error) {
	if len(r.elems) == 0 {
		return nil, errors.EmptyCollectionError{Operation: "Min"}
	}
	acc, err := r.Accumulate(accumulators.Minimizer)
	if err != nil {
		return nil, err
	}
	return acc.(*accumulators.Extremum).GetValue(), nil
}

// Sum adds the elements together
func (r *rddImpl) Sum() (interface{}, error) {
	acc, err := r.Accumulate(accumulators.Adder)
	if err != nil {
		return nil, err
	}
	return acc.(*accumulators.Sum).GetSum(), nil
}

// Reduce folds all elements, left to right
func (r *rddImpl) Reduce(fn sifmock.ReductionOperation) (interface{}, error) {
	if len(r.elems) == 0 {
		return nil, errors.EmptyCollectionError{Operation: "Reduce"}
	}
	safeFn := iutil.SafeReductionOperation(fn)
	acc := r.elems[0]
	for _, elem := range r.elems[1:] {
		var err error
		acc, err = safeFn(acc, elem)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

// Foreach invokes fn on a copy of every element, so fn cannot alter this RDD
func (r *rddImpl) Foreach(fn sifmock.ForeachOperation) error {
	safeFn := iutil.SafeForeachOperation(fn)
	for _, elem := range r.elems {
		if err := safeFn(kv.DeepCopy(elem)); err != nil {
			return err
		}
	}
	return nil
}

// Accumulate feeds every element to a fresh Accumulator
func (r *rddImpl) Accumulate(factory sifmock.AccumulatorFactory) (sifmock.Accumulator, error) {
	acc := factory()
	for _, elem := range r.elems {
		if err := acc.Accumulate(elem); err != nil {
			return nil, err
		}
	}
	return acc, nil
}
