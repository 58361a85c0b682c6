package accumulators

import (
	"fmt"

	"github.com/go-sif/sifmock"
	errors "github.com/go-sif/sifmock/errors"
	"github.com/go-sif/sifmock/internal/kv"
)

// Adder returns a new Sum Accumulator
func Adder() sifmock.Accumulator {
	return new(Sum)
}

// Sum adds numeric elements of any Go numeric kind. The total is kept as an exact
// int64 until a non-integer element arrives or the total overflows, after which it
// is a float64.
type Sum struct {
	isum    int64
	fsum    float64
	inexact bool
}

// GetSum returns the sum from this Accumulator, either an int64 or a float64
func (a *Sum) GetSum() interface{} {
	if a.inexact {
		return a.fsum
	}
	return a.isum
}

// Accumulate adds an element to this Accumulator
func (a *Sum) Accumulate(elem interface{}) error {
	if i, ok := kv.ToInt64(elem); ok && !a.inexact {
		a.addInt(i)
		return nil
	}
	v, ok := kv.ToFloat64(elem)
	if !ok {
		return errors.NotNumericError{Element: elem}
	}
	a.toFloat()
	a.fsum += v
	return nil
}

func (a *Sum) addInt(i int64) {
	s := a.isum + i
	if (i > 0 && s < a.isum) || (i < 0 && s > a.isum) {
		a.toFloat()
		a.fsum += float64(i)
		return
	}
	a.isum = s
}

func (a *Sum) toFloat() {
	if !a.inexact {
		a.inexact = true
		a.fsum = float64(a.isum)
	}
}

// Merge merges another Accumulator into this one
func (a *Sum) Merge(o sifmock.Accumulator) error {
	sa, ok := o.(*Sum)
	if !ok {
		return fmt.Errorf("Incoming accumulator is not a Sum Accumulator")
	}
	switch {
	case sa.inexact:
		a.toFloat()
		a.fsum += sa.fsum
	case a.inexact:
		a.fsum += float64(sa.isum)
	default:
		a.addInt(sa.isum)
	}
	return nil
}
