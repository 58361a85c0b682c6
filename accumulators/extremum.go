package accumulators

import (
	"fmt"

	"github.com/go-sif/sifmock"
	"github.com/go-sif/sifmock/internal/kv"
)

// Maximizer returns a new Extremum Accumulator which tracks the greatest element
func Maximizer() sifmock.Accumulator {
	return &Extremum{sign: 1}
}

// Minimizer returns a new Extremum Accumulator which tracks the least element
func Minimizer() sifmock.Accumulator {
	return &Extremum{sign: -1}
}

// Extremum tracks the greatest or least element seen, under natural ordering.
// Ties keep the earliest element.
type Extremum struct {
	sign  int
	seen  bool
	value interface{}
}

// GetValue returns the extreme element, or nil if nothing was accumulated
func (a *Extremum) GetValue() interface{} {
	return a.value
}

// IsEmpty returns true iff nothing was accumulated
func (a *Extremum) IsEmpty() bool {
	return !a.seen
}

// Accumulate adds an element to this Accumulator
func (a *Extremum) Accumulate(elem interface{}) error {
	if !a.seen {
		a.seen = true
		a.value = elem
		return nil
	}
	c, err := kv.Compare(elem, a.value)
	if err != nil {
		return err
	}
	if c*a.sign > 0 {
		a.value = elem
	}
	return nil
}

// Merge merges another Accumulator into this one
func (a *Extremum) Merge(o sifmock.Accumulator) error {
	ea, ok := o.(*Extremum)
	if !ok || ea.sign != a.sign {
		return fmt.Errorf("Incoming accumulator is not a matching Extremum Accumulator")
	}
	if !ea.seen {
		return nil
	}
	return a.Accumulate(ea.value)
}
