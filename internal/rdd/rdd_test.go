package rdd

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/go-sif/sifmock"
	errors "github.com/go-sif/sifmock/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newConfig(t *testing.T) *Config {
	return NewConfig(sifmock.GroupOrderReverseFirstSeen, "", zaptest.NewLogger(t))
}

func parallelize(t *testing.T, elems ...interface{}) sifmock.RDD {
	return CreateRDD(newConfig(t), elems, sifmock.ParallelizeTaskType)
}

func pair(k, v interface{}) sifmock.Pair {
	return sifmock.Pair{Key: k, Value: v}
}

func TestCacheIsNoop(t *testing.T) {
	r := parallelize(t, 1, 2, 3)
	cached := r.Cache()
	require.True(t, r.Equals(cached))
	require.True(t, cached.IsCached())
	require.Equal(t, sifmock.StorageLevelMemoryOnly, cached.StorageLevel())
	require.Equal(t, []interface{}{1, 2, 3}, cached.Collect())

	r.Persist(sifmock.StorageLevelDiskOnly)
	require.Equal(t, sifmock.StorageLevelDiskOnly, r.StorageLevel())
	r.Unpersist()
	require.False(t, r.IsCached())
}

func TestCollect(t *testing.T) {
	require.Equal(t, []interface{}{}, parallelize(t).Collect())
	r := parallelize(t, 1, 2, 3)
	collected := r.Collect()
	require.Equal(t, []interface{}{1, 2, 3}, collected)
	collected[0] = 100
	require.Equal(t, []interface{}{1, 2, 3}, r.Collect())
}

func TestResultsDoNotAliasGroups(t *testing.T) {
	grouped, err := parallelize(t, pair("k", 1), pair("k", 2)).GroupByKey()
	require.Nil(t, err)

	collected := grouped.Collect()
	collected[0].(sifmock.Pair).Value.([]interface{})[0] = 99
	taken := grouped.Take(1)
	taken[0].(sifmock.Pair).Value.([]interface{})[1] = 98
	first, err := grouped.First()
	require.Nil(t, err)
	first.(sifmock.Pair).Value.([]interface{})[0] = 97

	require.Equal(t, []interface{}{pair("k", []interface{}{1, 2})}, grouped.Collect())
}

func TestCreateRDDCopiesInput(t *testing.T) {
	elems := []interface{}{1, 2, 3}
	r := CreateRDD(newConfig(t), elems, sifmock.ParallelizeTaskType)
	elems[0] = 100
	require.Equal(t, []interface{}{1, 2, 3}, r.Collect())
}

func TestCount(t *testing.T) {
	require.Equal(t, 0, parallelize(t).Count())
	require.Equal(t, 3, parallelize(t, 1, 2, 3).Count())
}

func TestCountByKey(t *testing.T) {
	counts, err := parallelize(t).CountByKey()
	require.Nil(t, err)
	require.Equal(t, map[interface{}]int{}, counts)

	counts, err = parallelize(t, pair("a", 1), pair("b", 2), pair("a", 3)).CountByKey()
	require.Nil(t, err)
	require.Equal(t, map[interface{}]int{"a": 2, "b": 1}, counts)

	_, err = parallelize(t, pair([]int{1}, 1)).CountByKey()
	_, ok := err.(errors.UnhashableKeyError)
	require.True(t, ok)
}

func TestCountByValue(t *testing.T) {
	counts, err := parallelize(t, 1, 2, 3, 1, 2, 1).CountByValue()
	require.Nil(t, err)
	require.Equal(t, map[interface{}]int{1: 3, 2: 2, 3: 1}, counts)
}

func TestDistinct(t *testing.T) {
	require.Equal(t, []interface{}{1, 2, 3}, parallelize(t, 1, 2, 3, 1, 2, 1).Distinct().Collect())
	require.Equal(t, []interface{}{1, 2, 3}, parallelize(t, 1, 2, 3).Distinct().Collect())
}

func TestDistinctMergesSignedZeros(t *testing.T) {
	r := parallelize(t, 0.0, math.Copysign(0, -1), pair(math.Copysign(0, -1), 1), pair(0.0, 1))
	require.Equal(t, 2, r.Distinct().Count())
	counts, err := r.CountByValue()
	require.Nil(t, err)
	require.Equal(t, 2, len(counts))

	grouped, err := parallelize(t, pair(0.0, "a"), pair(math.Copysign(0, -1), "b")).GroupByKey()
	require.Nil(t, err)
	require.Equal(t, 1, grouped.Count())
}

func TestFilter(t *testing.T) {
	r := parallelize(t, 1, 2, 3)
	all, err := r.Filter(func(elem interface{}) (bool, error) { return true, nil })
	require.Nil(t, err)
	require.Equal(t, r.Collect(), all.Collect())

	some, err := r.Filter(func(elem interface{}) (bool, error) { return elem.(int) > 1, nil })
	require.Nil(t, err)
	require.Equal(t, []interface{}{2, 3}, some.Collect())
}

func TestFirst(t *testing.T) {
	_, err := parallelize(t).First()
	_, ok := err.(errors.EmptyCollectionError)
	require.True(t, ok)

	first, err := parallelize(t, 1, 2, 3).First()
	require.Nil(t, err)
	require.Equal(t, 1, first)
}

func TestFlatMap(t *testing.T) {
	r := parallelize(t, 1, 2, 3)
	same, err := r.FlatMap(func(elem interface{}) ([]interface{}, error) { return []interface{}{elem}, nil })
	require.Nil(t, err)
	require.Equal(t, r.Collect(), same.Collect())

	words, err := parallelize(t, "a b c", "d e f").FlatMap(func(elem interface{}) ([]interface{}, error) {
		var res []interface{}
		for _, w := range strings.Fields(elem.(string)) {
			res = append(res, w)
		}
		return res, nil
	})
	require.Nil(t, err)
	require.Equal(t, []interface{}{"a", "b", "c", "d", "e", "f"}, words.Collect())
}

func TestFlatMapValues(t *testing.T) {
	r := parallelize(t, pair("a", 1), pair("b", 2), pair("c", 3))
	same, err := r.FlatMapValues(func(v interface{}) ([]interface{}, error) { return []interface{}{v}, nil })
	require.Nil(t, err)
	require.Equal(t, r.Collect(), same.Collect())

	split, err := parallelize(t, pair("a", "a b c"), pair("b", "d e f")).FlatMapValues(func(v interface{}) ([]interface{}, error) {
		var res []interface{}
		for _, w := range strings.Fields(v.(string)) {
			res = append(res, w)
		}
		return res, nil
	})
	require.Nil(t, err)
	require.Equal(t, []interface{}{
		pair("a", "a"), pair("a", "b"), pair("a", "c"),
		pair("b", "d"), pair("b", "e"), pair("b", "f"),
	}, split.Collect())
}

func TestForeachDoesNotAffectRDD(t *testing.T) {
	var items []interface{}
	r := parallelize(t, 1, 2, 3)
	err := r.Foreach(func(elem interface{}) error {
		items = append(items, elem)
		return nil
	})
	require.Nil(t, err)
	require.Equal(t, []interface{}{1, 2, 3}, items)
	require.Equal(t, []interface{}{1, 2, 3}, r.Collect())

	nested := parallelize(t, []int{1, 2})
	err = nested.Foreach(func(elem interface{}) error {
		elem.([]int)[0] = 100
		return nil
	})
	require.Nil(t, err)
	require.Equal(t, []interface{}{[]int{1, 2}}, nested.Collect())

	err = r.Foreach(func(elem interface{}) error {
		return fmt.Errorf("failed on %v", elem)
	})
	require.NotNil(t, err)
}

func TestGroupBy(t *testing.T) {
	grouped, err := parallelize(t, 1, 2, 3).GroupBy(func(elem interface{}) (interface{}, error) {
		return elem.(int) % 2, nil
	})
	require.Nil(t, err)
	require.Equal(t, []interface{}{
		pair(0, []interface{}{2}),
		pair(1, []interface{}{1, 3}),
	}, grouped.Collect())
}

func TestGroupByKey(t *testing.T) {
	grouped, err := parallelize(t, pair("k1", 1), pair("k1", 2), pair("k2", 3)).GroupByKey()
	require.Nil(t, err)
	require.Equal(t, []interface{}{
		pair("k2", []interface{}{3}),
		pair("k1", []interface{}{1, 2}),
	}, grouped.Collect())
}

func TestGroupByKeyEmitsMostRecentlySeenKeyFirst(t *testing.T) {
	grouped, err := parallelize(t, pair("a", 1), pair("b", 2), pair("c", 3), pair("a", 4)).GroupByKey()
	require.Nil(t, err)
	require.Equal(t, []interface{}{
		pair("c", []interface{}{3}),
		pair("b", []interface{}{2}),
		pair("a", []interface{}{1, 4}),
	}, grouped.Collect())

	reduced, err := parallelize(t, pair("a", 1), pair("b", 2), pair("c", 3), pair("a", 4)).ReduceByKey(func(a, b interface{}) (interface{}, error) {
		return a.(int) + b.(int), nil
	})
	require.Nil(t, err)
	require.Equal(t, []interface{}{pair("c", 3), pair("b", 2), pair("a", 5)}, reduced.Collect())
}

func TestGroupByKeyFirstSeenOrder(t *testing.T) {
	conf := NewConfig(sifmock.GroupOrderFirstSeen, "", zaptest.NewLogger(t))
	r := CreateRDD(conf, []interface{}{pair("k1", 1), pair("k2", 3), pair("k1", 2)}, sifmock.ParallelizeTaskType)
	grouped, err := r.GroupByKey()
	require.Nil(t, err)
	require.Equal(t, []interface{}{
		pair("k1", []interface{}{1, 2}),
		pair("k2", []interface{}{3}),
	}, grouped.Collect())
}

func TestIsEmpty(t *testing.T) {
	require.False(t, parallelize(t, pair("k1", "v1"), pair("k1", "v2"), pair("k2", "v3")).IsEmpty())
	require.True(t, parallelize(t).IsEmpty())
}

func TestKeyBy(t *testing.T) {
	keyed, err := parallelize(t, 1, 2, 3).KeyBy(func(elem interface{}) (interface{}, error) {
		return fmt.Sprint(elem), nil
	})
	require.Nil(t, err)
	require.Equal(t, []interface{}{pair("1", 1), pair("2", 2), pair("3", 3)}, keyed.Collect())
}

func TestJoin(t *testing.T) {
	x := parallelize(t, pair("a", 11), pair("b", 12))
	y := parallelize(t, pair("b", 21), pair("c", 22))
	joined, err := x.Join(y)
	require.Nil(t, err)
	require.Equal(t, []interface{}{pair("b", pair(12, 21))}, joined.Collect())
}

func TestKeys(t *testing.T) {
	r := parallelize(t, pair("k1", "v1"), pair("k1", "v2"), pair("k2", "v3"))
	require.Equal(t, []interface{}{"k1", "k1", "k2"}, r.Keys().Collect())
	require.Equal(t, []interface{}{"a", "b", "c"}, parallelize(t, "a", "b", "c").Keys().Collect())
}

func TestMap(t *testing.T) {
	r := parallelize(t, 1, 2, 3)
	same, err := r.Map(func(elem interface{}) (interface{}, error) { return elem, nil })
	require.Nil(t, err)
	require.Equal(t, r.Collect(), same.Collect())

	squared, err := r.Map(func(elem interface{}) (interface{}, error) { return elem.(int) * elem.(int), nil })
	require.Nil(t, err)
	require.Equal(t, []interface{}{1, 4, 9}, squared.Collect())

	_, err = r.Map(func(elem interface{}) (interface{}, error) { panic("boom") })
	require.NotNil(t, err)
}

func TestMapValues(t *testing.T) {
	squared, err := parallelize(t, pair("a", 1), pair("b", 2), pair("c", 3)).MapValues(func(v interface{}) (interface{}, error) {
		return v.(int) * v.(int), nil
	})
	require.Nil(t, err)
	require.Equal(t, []interface{}{pair("a", 1), pair("b", 4), pair("c", 9)}, squared.Collect())
}

func TestMapValuesOfTriplesProducesPairs(t *testing.T) {
	r := parallelize(t, sifmock.Tuple{"a", 1, "v1"}, sifmock.Tuple{"b", 2, "v2"}, sifmock.Tuple{"c", 3, "v3"})
	mapped, err := r.MapValues(func(v interface{}) (interface{}, error) { return v, nil })
	require.Nil(t, err)
	require.Equal(t, []interface{}{pair("a", 1), pair("b", 2), pair("c", 3)}, mapped.Collect())
}

func TestMaxMin(t *testing.T) {
	r := parallelize(t, 1, 2, 3)
	greatest, err := r.Max()
	require.Nil(t, err)
	require.Equal(t, 3, greatest)
	least, err := r.Min()
	require.Nil(t, err)
	require.Equal(t, 1, least)

	_, err = parallelize(t).Max()
	_, ok := err.(errors.EmptyCollectionError)
	require.True(t, ok)
	_, err = parallelize(t).Min()
	_, ok = err.(errors.EmptyCollectionError)
	require.True(t, ok)

	_, err = parallelize(t, 1, "a").Max()
	_, ok = err.(errors.IncomparableTypesError)
	require.True(t, ok)
}

func TestName(t *testing.T) {
	r := parallelize(t)
	require.Equal(t, "", r.Name())
	require.Equal(t, r, r.SetName("my_RDD"))
	require.Equal(t, "my_RDD", r.Name())
}

func TestEquals(t *testing.T) {
	require.True(t, parallelize(t, 1, 2).Equals(parallelize(t, 1, 2)))
	require.False(t, parallelize(t, 1, 2).Equals(parallelize(t, 2, 1)))
	require.False(t, parallelize(t, 1, 2).SetName("x").Equals(parallelize(t, 1, 2)))
	require.False(t, parallelize(t, 1).Equals(nil))
}

func TestReduceByKey(t *testing.T) {
	reduced, err := parallelize(t, pair("k1", 1), pair("k1", 2), pair("k2", 3)).ReduceByKey(func(left, right interface{}) (interface{}, error) {
		return left.(int) + right.(int), nil
	})
	require.Nil(t, err)
	require.Equal(t, []interface{}{pair("k2", 3), pair("k1", 3)}, reduced.Collect())
}

func TestReduce(t *testing.T) {
	add := func(left, right interface{}) (interface{}, error) { return left.(int) + right.(int), nil }
	total, err := parallelize(t, 1, 2, 3).Reduce(add)
	require.Nil(t, err)
	require.Equal(t, 6, total)

	_, err = parallelize(t).Reduce(add)
	_, ok := err.(errors.EmptyCollectionError)
	require.True(t, ok)
}

func TestSubtractByKey(t *testing.T) {
	r := parallelize(t, pair("k1", 1), pair("k2", 2), pair("k3", 3))
	other := parallelize(t, pair("k2", 5), pair("k4", 7))
	require.Equal(t, []interface{}{pair("k1", 1), pair("k3", 3)}, r.SubtractByKey(other).Collect())
}

func TestSum(t *testing.T) {
	sum, err := parallelize(t).Sum()
	require.Nil(t, err)
	require.Equal(t, int64(0), sum)

	sum, err = parallelize(t, 1, 2, 3).Sum()
	require.Nil(t, err)
	require.Equal(t, int64(6), sum)

	sum, err = parallelize(t, 1, 2.5, uint8(3)).Sum()
	require.Nil(t, err)
	require.Equal(t, 6.5, sum)

	// integer sums beyond float64 precision stay exact
	sum, err = parallelize(t, int64(1)<<60+1, int64(1)<<60).Sum()
	require.Nil(t, err)
	require.Equal(t, int64(1)<<61+1, sum)

	sum, err = parallelize(t, int64(math.MaxInt64), 1).Sum()
	require.Nil(t, err)
	require.Equal(t, math.Exp2(63), sum)

	_, err = parallelize(t, 1, "2").Sum()
	_, ok := err.(errors.NotNumericError)
	require.True(t, ok)
}

func TestTake(t *testing.T) {
	require.Equal(t, []interface{}{}, parallelize(t).Take(10))
	require.Equal(t, []interface{}{1, 2, 3}, parallelize(t, 1, 2, 3).Take(10))

	elems := make([]interface{}, 20)
	for i := range elems {
		elems[i] = i
	}
	long := CreateRDD(newConfig(t), elems, sifmock.ParallelizeTaskType)
	require.Equal(t, elems[:10], long.Take(10))
	require.Equal(t, []interface{}{}, long.Take(-1))
}

func TestUnion(t *testing.T) {
	require.Equal(t, []interface{}{}, parallelize(t).Union(parallelize(t)).Collect())
	x := parallelize(t, 1, 2, 3)
	y := parallelize(t, "a", "b", "c", "d")
	require.Equal(t, []interface{}{1, 2, 3, "a", "b", "c", "d"}, x.Union(y).Collect())
}

func TestValues(t *testing.T) {
	values, err := parallelize(t, pair("k1", "v1"), pair("k1", "v2"), pair("k2", "v3")).Values()
	require.Nil(t, err)
	require.Equal(t, []interface{}{"v1", "v2", "v3"}, values.Collect())

	values, err = parallelize(t, "abc", "def").Values()
	require.Nil(t, err)
	require.Equal(t, []interface{}{"b", "e"}, values.Collect())

	_, err = parallelize(t, 1).Values()
	_, ok := err.(errors.NotKeyValueError)
	require.True(t, ok)
}

func TestZip(t *testing.T) {
	zipped, err := parallelize(t, 1, 2, 3).Zip(parallelize(t, "a", "b", "c"))
	require.Nil(t, err)
	require.Equal(t, []interface{}{pair(1, "a"), pair(2, "b"), pair(3, "c")}, zipped.Collect())

	_, err = parallelize(t, 1, 2, 3).Zip(parallelize(t, 1, 2, 3, 4))
	_, ok := err.(errors.IncompatibleLengthsError)
	require.True(t, ok)
}

func TestZipWithIndex(t *testing.T) {
	zipped := parallelize(t, "a", "b", "c").ZipWithIndex()
	require.Equal(t, []interface{}{pair("a", 0), pair("b", 1), pair("c", 2)}, zipped.Collect())
}

func TestTransformationsDoNotAlterReceiver(t *testing.T) {
	r := parallelize(t, 3, 1, 2, 1)
	_, err := r.Map(func(elem interface{}) (interface{}, error) { return elem.(int) * 2, nil })
	require.Nil(t, err)
	r.Distinct()
	r.ZipWithIndex()
	require.Equal(t, []interface{}{3, 1, 2, 1}, r.Collect())
}

func TestTo(t *testing.T) {
	r := parallelize(t, 1, 2, 3)
	double := &sifmock.RDDOperation{
		TaskType: sifmock.MapTaskType,
		Do: func(elems []interface{}) ([]interface{}, error) {
			next := make([]interface{}, len(elems))
			for i, e := range elems {
				next[i] = e.(int) * 2
			}
			return next, nil
		},
	}
	res, err := r.To(double, double)
	require.Nil(t, err)
	require.Equal(t, []interface{}{4, 8, 12}, res.Collect())

	failing := &sifmock.RDDOperation{
		TaskType: sifmock.FilterTaskType,
		Do: func(elems []interface{}) ([]interface{}, error) {
			return nil, fmt.Errorf("failed")
		},
	}
	_, err = r.To(double, failing)
	require.NotNil(t, err)
}

func TestToDebugString(t *testing.T) {
	r := parallelize(t, 1, 2, 3).SetName("numbers")
	mapped, err := r.Map(func(elem interface{}) (interface{}, error) { return elem, nil })
	require.Nil(t, err)
	lines := strings.Split(mapped.Cache().ToDebugString(), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, fmt.Sprintf("(3) map RDD[%s] [MEMORY_ONLY]", mapped.ID()), lines[0])
	require.Equal(t, fmt.Sprintf(" |  (3) numbers parallelize RDD[%s]", r.ID()), lines[1])
}

func TestIDsAreUnique(t *testing.T) {
	r := parallelize(t, 1)
	require.NotEqual(t, r.ID(), r.Distinct().ID())
	require.NotEqual(t, r.ID(), parallelize(t, 1).ID())
}
