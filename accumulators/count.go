package accumulators

import (
	"fmt"

	"github.com/go-sif/sifmock"
)

// Counter returns a new Count Accumulator
func Counter() sifmock.Accumulator {
	return new(Count)
}

// Count counts elements
type Count struct {
	count int
}

// GetCount returns the element count from this Accumulator
func (a *Count) GetCount() int {
	return a.count
}

// Accumulate adds an element to this Accumulator
func (a *Count) Accumulate(elem interface{}) error {
	a.count++
	return nil
}

// Merge merges another Accumulator into this one
func (a *Count) Merge(o sifmock.Accumulator) error {
	ca, ok := o.(*Count)
	if !ok {
		return fmt.Errorf("Incoming accumulator is not a Count Accumulator")
	}
	a.count += ca.count
	return nil
}
