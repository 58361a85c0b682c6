package accumulators

import (
	"fmt"

	"github.com/go-sif/sifmock"
)

// Compose returns a factory for Composed Accumulators, so that several
// results may be computed in one pass over an RDD
func Compose(faccs ...sifmock.AccumulatorFactory) sifmock.AccumulatorFactory {
	return func() sifmock.Accumulator {
		accs := make([]sifmock.Accumulator, len(faccs))
		for i, f := range faccs {
			accs[i] = f()
		}
		return &Composed{accs: accs}
	}
}

// Composed composes other Accumulators
type Composed struct {
	accs []sifmock.Accumulator
}

// GetResults returns the contained Accumulators, so that their results may be accessed
func (c *Composed) GetResults() []sifmock.Accumulator {
	return c.accs
}

// Accumulate adds an element to all contained Accumulators
func (c *Composed) Accumulate(elem interface{}) error {
	for _, a := range c.accs {
		if err := a.Accumulate(elem); err != nil {
			return err
		}
	}
	return nil
}

// Merge merges another Composed Accumulator into this one, merging all contained Accumulators
func (c *Composed) Merge(o sifmock.Accumulator) error {
	compa, ok := o.(*Composed)
	if !ok || len(compa.accs) != len(c.accs) {
		return fmt.Errorf("Incoming accumulator is not a matching Composed Accumulator")
	}
	for i, a := range c.accs {
		if err := a.Merge(compa.accs[i]); err != nil {
			return err
		}
	}
	return nil
}
