package accumulators

import (
	"fmt"

	"github.com/go-sif/sifmock"
	errors "github.com/go-sif/sifmock/errors"
	"github.com/go-sif/sifmock/internal/kv"
)

// KeyCounter returns a new Frequency Accumulator which counts the key of each element
func KeyCounter() sifmock.Accumulator {
	return &Frequency{byKey: true, counts: make(map[interface{}]int)}
}

// ValueCounter returns a new Frequency Accumulator which counts whole elements
func ValueCounter() sifmock.Accumulator {
	return &Frequency{counts: make(map[interface{}]int)}
}

// Frequency counts occurrences. Counted values must be usable as Go map keys.
type Frequency struct {
	byKey  bool
	counts map[interface{}]int
}

// GetCounts returns the occurrence counts from this Accumulator
func (a *Frequency) GetCounts() map[interface{}]int {
	return a.counts
}

// Accumulate adds an element to this Accumulator
func (a *Frequency) Accumulate(elem interface{}) error {
	k := elem
	if a.byKey {
		k = kv.Key(elem)
	}
	return a.add(k, 1)
}

func (a *Frequency) add(k interface{}, n int) error {
	if !kv.Hashable(k) {
		return errors.UnhashableKeyError{Key: k}
	}
	a.counts[k] += n
	return nil
}

// Merge merges another Accumulator into this one
func (a *Frequency) Merge(o sifmock.Accumulator) error {
	fa, ok := o.(*Frequency)
	if !ok {
		return fmt.Errorf("Incoming accumulator is not a Frequency Accumulator")
	}
	for k, n := range fa.counts {
		if err := a.add(k, n); err != nil {
			return err
		}
	}
	return nil
}
