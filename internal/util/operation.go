package util

import (
	"fmt"

	"github.com/go-sif/sifmock"
)

// SafeMapOperation wraps a MapOperation such that panics are recovered and nice error messages are constructed
func SafeMapOperation(opName string, mapOp sifmock.MapOperation) (safeMapOp sifmock.MapOperation) {
	return func(elem interface{}) (result interface{}, err error) {
		defer func() {
			if r := recover(); r != nil {
				if anErr, ok := r.(error); ok {
					err = fmt.Errorf("%s Panic: %w\nElement: %s\n%s", opName, anErr, ElementToString(elem), GetTrace())
				} else {
					err = fmt.Errorf("%s Panic: %v\nElement: %s\n%s", opName, r, ElementToString(elem), GetTrace())
				}
			} else if err != nil {
				err = fmt.Errorf("%s Error: %w\nElement: %s", opName, err, ElementToString(elem))
			}
		}()
		result, err = mapOp(elem)
		return
	}
}

// SafeFilterOperation wraps a FilterOperation such that panics are recovered and nice error messages are constructed
func SafeFilterOperation(filterOp sifmock.FilterOperation) (safeFilterOp sifmock.FilterOperation) {
	return func(elem interface{}) (keep bool, err error) {
		defer func() {
			if r := recover(); r != nil {
				if anErr, ok := r.(error); ok {
					err = fmt.Errorf("Filter Panic: %w\nElement: %s\n%s", anErr, ElementToString(elem), GetTrace())
				} else {
					err = fmt.Errorf("Filter Panic: %v\nElement: %s\n%s", r, ElementToString(elem), GetTrace())
				}
			} else if err != nil {
				err = fmt.Errorf("Filter Error: %w\nElement: %s", err, ElementToString(elem))
			}
		}()
		keep, err = filterOp(elem)
		return
	}
}

// SafeFlatMapOperation wraps a FlatMapOperation such that panics are recovered and nice error messages are constructed
func SafeFlatMapOperation(opName string, flatMapOp sifmock.FlatMapOperation) (safeFlatMapOp sifmock.FlatMapOperation) {
	return func(elem interface{}) (result []interface{}, err error) {
		defer func() {
			if r := recover(); r != nil {
				if anErr, ok := r.(error); ok {
					err = fmt.Errorf("%s Panic: %w\nElement: %s\n%s", opName, anErr, ElementToString(elem), GetTrace())
				} else {
					err = fmt.Errorf("%s Panic: %v\nElement: %s\n%s", opName, r, ElementToString(elem), GetTrace())
				}
			} else if err != nil {
				err = fmt.Errorf("%s Error: %w\nElement: %s", opName, err, ElementToString(elem))
			}
		}()
		result, err = flatMapOp(elem)
		return
	}
}

// SafeKeyingOperation wraps a KeyingOperation such that panics are recovered and nice error messages are constructed
func SafeKeyingOperation(keyingOp sifmock.KeyingOperation) (safeKeyingOp sifmock.KeyingOperation) {
	return func(elem interface{}) (key interface{}, err error) {
		defer func() {
			if r := recover(); r != nil {
				if anErr, ok := r.(error); ok {
					err = fmt.Errorf("Keying Panic: %w\nElement: %s\n%s", anErr, ElementToString(elem), GetTrace())
				} else {
					err = fmt.Errorf("Keying Panic: %v\nElement: %s\n%s", r, ElementToString(elem), GetTrace())
				}
			} else if err != nil {
				err = fmt.Errorf("Keying Error: %w\nElement: %s", err, ElementToString(elem))
			}
		}()
		key, err = keyingOp(elem)
		return
	}
}

// SafeReductionOperation wraps a ReductionOperation such that panics are recovered and nice error messages are constructed
func SafeReductionOperation(reductionOp sifmock.ReductionOperation) (safeReductionOp sifmock.ReductionOperation) {
	return func(left, right interface{}) (result interface{}, err error) {
		defer func() {
			if r := recover(); r != nil {
				if anErr, ok := r.(error); ok {
					err = fmt.Errorf("Reduction Panic: %w\nLeft: %s\nRight: %s\n%s", anErr, ElementToString(left), ElementToString(right), GetTrace())
				} else {
					err = fmt.Errorf("Reduction Panic: %v\nLeft: %s\nRight: %s\n%s", r, ElementToString(left), ElementToString(right), GetTrace())
				}
			} else if err != nil {
				err = fmt.Errorf("Reduction Error: %w\nLeft: %s\nRight: %s", err, ElementToString(left), ElementToString(right))
			}
		}()
		result, err = reductionOp(left, right)
		return
	}
}

// SafeForeachOperation wraps a ForeachOperation such that panics are recovered and nice error messages are constructed
func SafeForeachOperation(foreachOp sifmock.ForeachOperation) (safeForeachOp sifmock.ForeachOperation) {
	return func(elem interface{}) (err error) {
		defer func() {
			if r := recover(); r != nil {
				if anErr, ok := r.(error); ok {
					err = fmt.Errorf("Foreach Panic: %w\nElement: %s\n%s", anErr, ElementToString(elem), GetTrace())
				} else {
					err = fmt.Errorf("Foreach Panic: %v\nElement: %s\n%s", r, ElementToString(elem), GetTrace())
				}
			} else if err != nil {
				err = fmt.Errorf("Foreach Error: %w\nElement: %s", err, ElementToString(elem))
			}
		}()
		err = foreachOp(elem)
		return
	}
}
