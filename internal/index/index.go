// Package index provides an insertion-ordered index over arbitrary values. Values are
// bucketed by an xxhash of their canonical rendering and matched by structural
// equality, so values which cannot be Go map keys (slices, Tuples, maps) can still be
// grouped and de-duplicated.
package index

import (
	"fmt"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/go-sif/sifmock"
	"github.com/go-sif/sifmock/internal/kv"
)

// An Index assigns each distinct key a position, in order of first insertion
type Index struct {
	buckets map[uint64][]int
	keys    []interface{}
}

// New creates an empty Index
func New() *Index {
	return &Index{
		buckets: make(map[uint64][]int),
		keys:    []interface{}{},
	}
}

// HashKey computes the bucket hash of a key. Structurally equal keys share a hash, except
// those which reach equal values through distinct nested pointers.
func HashKey(key interface{}) uint64 {
	hasher := xxhash.New()
	key = canonical(key)
	// %#v renders map keys in sorted order, so the rendering is deterministic
	fmt.Fprintf(hasher, "%T|%#v", key, key)
	return hasher.Sum64()
}

// canonical rewrites negative zeros as positive zeros, which compare equal but render
// differently
func canonical(key interface{}) interface{} {
	switch k := key.(type) {
	case float64:
		if k == 0 {
			return float64(0)
		}
	case float32:
		if k == 0 {
			return float32(0)
		}
	case sifmock.Pair:
		return sifmock.Pair{Key: canonical(k.Key), Value: canonical(k.Value)}
	case *sifmock.Pair:
		if k != nil {
			return &sifmock.Pair{Key: canonical(k.Key), Value: canonical(k.Value)}
		}
	case sifmock.Tuple:
		return sifmock.Tuple(canonicalAll(k))
	case []interface{}:
		return canonicalAll(k)
	case map[string]interface{}:
		res := make(map[string]interface{}, len(k))
		for name, v := range k {
			res[name] = canonical(v)
		}
		return res
	}
	return key
}

func canonicalAll(items []interface{}) []interface{} {
	if items == nil {
		return nil
	}
	res := make([]interface{}, len(items))
	for i, item := range items {
		res[i] = canonical(item)
	}
	return res
}

// Find returns the position of a key, if it has been inserted
func (ix *Index) Find(key interface{}) (pos int, ok bool) {
	return ix.find(key, HashKey(key))
}

func (ix *Index) find(key interface{}, hash uint64) (int, bool) {
	for _, pos := range ix.buckets[hash] {
		if kv.Equal(ix.keys[pos], key) {
			return pos, true
		}
	}
	return -1, false
}

// Insert adds a key to the Index if it is not already present, returning its position
// and whether or not it was newly inserted
func (ix *Index) Insert(key interface{}) (pos int, inserted bool) {
	hash := HashKey(key)
	if pos, ok := ix.find(key, hash); ok {
		return pos, false
	}
	pos = len(ix.keys)
	ix.keys = append(ix.keys, key)
	ix.buckets[hash] = append(ix.buckets[hash], pos)
	return pos, true
}

// Contains returns true iff the key has been inserted
func (ix *Index) Contains(key interface{}) bool {
	_, ok := ix.Find(key)
	return ok
}

// Len returns the number of distinct keys in the Index
func (ix *Index) Len() int {
	return len(ix.keys)
}

// Key returns the key at a position
func (ix *Index) Key(pos int) interface{} {
	return ix.keys[pos]
}

// Keys returns the distinct keys, in order of first insertion
func (ix *Index) Keys() []interface{} {
	keys := make([]interface{}, len(ix.keys))
	copy(keys, ix.keys)
	return keys
}
