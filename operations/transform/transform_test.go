package transform_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/go-sif/sifmock"
	errors "github.com/go-sif/sifmock/errors"
	"github.com/go-sif/sifmock/operations/transform"
	siftest "github.com/go-sif/sifmock/testing"
	"github.com/stretchr/testify/require"
)

func pair(k, v interface{}) sifmock.Pair {
	return sifmock.Pair{Key: k, Value: v}
}

func TestChainedOperations(t *testing.T) {
	r := siftest.Parallelize(t, "a b", "c", "a")
	res, err := r.To(
		transform.FlatMap(func(elem interface{}) ([]interface{}, error) {
			var words []interface{}
			for _, w := range strings.Fields(elem.(string)) {
				words = append(words, w)
			}
			return words, nil
		}),
		transform.Distinct(),
		transform.Map(func(elem interface{}) (interface{}, error) {
			return strings.ToUpper(elem.(string)), nil
		}),
	)
	require.Nil(t, err)
	require.Equal(t, []interface{}{"A", "B", "C"}, res.Collect())
	require.True(t, strings.HasPrefix(res.ToDebugString(), "(3) map RDD["))
	require.Contains(t, res.ToDebugString(), " |   |  (3) parallelize RDD[")
}

func TestMapPropagatesErrorsAndPanics(t *testing.T) {
	r := siftest.Parallelize(t, 1, 2)
	_, err := r.To(transform.Map(func(elem interface{}) (interface{}, error) {
		return nil, fmt.Errorf("bad element")
	}))
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "bad element")

	_, err = r.To(transform.Map(func(elem interface{}) (interface{}, error) {
		return elem.(string), nil
	}))
	require.NotNil(t, err)
}

func TestFlatMapOfNothing(t *testing.T) {
	res, err := siftest.Parallelize(t, 1, 2).To(transform.FlatMap(func(elem interface{}) ([]interface{}, error) {
		return nil, nil
	}))
	require.Nil(t, err)
	require.True(t, res.IsEmpty())
}

func TestMapValuesRejectsNonPairs(t *testing.T) {
	_, err := siftest.Parallelize(t, 1).To(transform.MapValues(func(v interface{}) (interface{}, error) { return v, nil }))
	_, ok := err.(errors.NotKeyValueError)
	require.True(t, ok)
}

func TestDistinctOfUnhashableElements(t *testing.T) {
	r := siftest.Parallelize(t, []int{1}, []int{1}, sifmock.Tuple{"a", 1}, sifmock.Tuple{"a", 1}, []int{2})
	res, err := r.To(transform.Distinct())
	require.Nil(t, err)
	require.Equal(t, []interface{}{[]int{1}, sifmock.Tuple{"a", 1}, []int{2}}, res.Collect())
}

func TestGroupByKeyWithUnhashableKeys(t *testing.T) {
	r := siftest.Parallelize(t, pair([]string{"x"}, 1), pair([]string{"y"}, 2), pair([]string{"x"}, 3))
	res, err := r.To(transform.GroupByKey(sifmock.GroupOrderFirstSeen))
	require.Nil(t, err)
	require.Equal(t, []interface{}{
		pair([]string{"x"}, []interface{}{1, 3}),
		pair([]string{"y"}, []interface{}{2}),
	}, res.Collect())
}

func TestGroupByKeyOfTuples(t *testing.T) {
	r := siftest.Parallelize(t, sifmock.Tuple{"k", 1, "ignored"}, sifmock.Tuple{"k", 2})
	res, err := r.To(transform.GroupByKey(sifmock.GroupOrderReverseFirstSeen))
	require.Nil(t, err)
	require.Equal(t, []interface{}{pair("k", []interface{}{1, 2})}, res.Collect())
}

func TestGroupByOrders(t *testing.T) {
	parity := func(elem interface{}) (interface{}, error) { return elem.(int) % 2, nil }
	r := siftest.Parallelize(t, 1, 2, 3, 4)

	reversed, err := r.To(transform.GroupBy(parity, sifmock.GroupOrderReverseFirstSeen))
	require.Nil(t, err)
	require.Equal(t, []interface{}{pair(0, []interface{}{2, 4}), pair(1, []interface{}{1, 3})}, reversed.Collect())

	firstSeen, err := r.To(transform.GroupBy(parity, sifmock.GroupOrderFirstSeen))
	require.Nil(t, err)
	require.Equal(t, []interface{}{pair(1, []interface{}{1, 3}), pair(0, []interface{}{2, 4})}, firstSeen.Collect())

	_, err = r.To(transform.GroupBy(func(elem interface{}) (interface{}, error) {
		return nil, fmt.Errorf("no key")
	}, sifmock.GroupOrderFirstSeen))
	require.NotNil(t, err)
}

func TestReduceByKeyFoldsInEncounterOrder(t *testing.T) {
	r := siftest.Parallelize(t, pair("k", "a"), pair("j", "x"), pair("k", "b"), pair("k", "c"))
	res, err := r.To(transform.ReduceByKey(func(left, right interface{}) (interface{}, error) {
		return left.(string) + right.(string), nil
	}, sifmock.GroupOrderFirstSeen))
	require.Nil(t, err)
	require.Equal(t, []interface{}{pair("k", "abc"), pair("j", "x")}, res.Collect())

	_, err = r.To(transform.ReduceByKey(func(left, right interface{}) (interface{}, error) {
		panic("boom")
	}, sifmock.GroupOrderFirstSeen))
	require.NotNil(t, err)
}

func TestJoinProducesEveryCombination(t *testing.T) {
	x := siftest.Parallelize(t, pair("a", 1), pair("b", 2), pair("a", 3))
	y := siftest.Parallelize(t, pair("a", "p"), pair("a", "q"), pair("c", "r"))
	res, err := x.To(transform.Join(y))
	require.Nil(t, err)
	require.Equal(t, []interface{}{
		pair("a", pair(1, "p")),
		pair("a", pair(1, "q")),
		pair("a", pair(3, "p")),
		pair("a", pair(3, "q")),
	}, res.Collect())

	_, err = siftest.Parallelize(t, 1).To(transform.Join(y))
	require.NotNil(t, err)
}

func TestSubtractByKeyOfDegenerateElements(t *testing.T) {
	x := siftest.Parallelize(t, "a", "b", pair("c", 1))
	y := siftest.Parallelize(t, "b", pair("c", 2))
	res, err := x.To(transform.SubtractByKey(y))
	require.Nil(t, err)
	require.Equal(t, []interface{}{"a"}, res.Collect())
}

func TestUnionWithSelf(t *testing.T) {
	r := siftest.Parallelize(t, 1, 2)
	res, err := r.To(transform.Union(r))
	require.Nil(t, err)
	require.Equal(t, []interface{}{1, 2, 1, 2}, res.Collect())
	require.Equal(t, []interface{}{1, 2}, r.Collect())
}

func TestKeyByAndValues(t *testing.T) {
	r := siftest.Parallelize(t, "apple", "banana")
	res, err := r.To(
		transform.KeyBy(func(elem interface{}) (interface{}, error) { return len(elem.(string)), nil }),
		transform.Values(),
	)
	require.Nil(t, err)
	require.Equal(t, []interface{}{"apple", "banana"}, res.Collect())

	keys, err := r.To(transform.KeyBy(func(elem interface{}) (interface{}, error) { return elem.(string)[:1], nil }), transform.Keys())
	require.Nil(t, err)
	require.Equal(t, []interface{}{"a", "b"}, keys.Collect())
}

func TestZipOperations(t *testing.T) {
	r := siftest.Parallelize(t, "a", "b")
	res, err := r.To(transform.ZipWithIndex(), transform.Zip(siftest.Parallelize(t, true, false)))
	require.Nil(t, err)
	require.Equal(t, []interface{}{pair(pair("a", 0), true), pair(pair("b", 1), false)}, res.Collect())

	_, err = r.To(transform.Zip(siftest.Parallelize(t)))
	lengths, ok := err.(errors.IncompatibleLengthsError)
	require.True(t, ok)
	require.Equal(t, 2, lengths.Left)
	require.Equal(t, 0, lengths.Right)
}

func TestFilterRecoversPanics(t *testing.T) {
	_, err := siftest.Parallelize(t, 1).To(transform.Filter(func(elem interface{}) (bool, error) {
		return elem.(string) == "", nil
	}))
	require.NotNil(t, err)
}
