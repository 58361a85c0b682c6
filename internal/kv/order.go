package kv

import (
	"math"
	"reflect"
	"time"

	"github.com/go-sif/sifmock"
	errors "github.com/go-sif/sifmock/errors"
)

// ToFloat64 converts any Go numeric value to a float64
func ToFloat64(v interface{}) (float64, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// ToInt64 converts any Go integer which fits in an int64
func ToInt64(v interface{}) (int64, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if rv.Uint() <= math.MaxInt64 {
			return int64(rv.Uint()), true
		}
	}
	return 0, false
}

// Compare orders two elements naturally, returning a negative number if a < b, zero if
// they are equivalent, and a positive number if a > b. Numbers of any Go numeric kind
// compare numerically, strings lexicographically, bools false before true, times
// chronologically, and Pairs and Tuples component by component.
func Compare(a, b interface{}) (int, error) {
	if af, ok := ToFloat64(a); ok {
		if bf, ok := ToFloat64(b); ok {
			// compare integers exactly where floats would lose precision
			if ai, bi, ok := bothInt64(a, b); ok {
				return compareInt64(ai, bi), nil
			}
			return compareFloat64(af, bf), nil
		}
		return 0, errors.IncomparableTypesError{Left: a, Right: b}
	}
	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			switch {
			case av < bv:
				return -1, nil
			case av > bv:
				return 1, nil
			}
			return 0, nil
		}
	case bool:
		if bv, ok := b.(bool); ok {
			switch {
			case av == bv:
				return 0, nil
			case bv:
				return -1, nil
			}
			return 1, nil
		}
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			switch {
			case av.Before(bv):
				return -1, nil
			case av.After(bv):
				return 1, nil
			}
			return 0, nil
		}
	case sifmock.Pair:
		if bv, ok := b.(sifmock.Pair); ok {
			return compareSequences([]interface{}{av.Key, av.Value}, []interface{}{bv.Key, bv.Value})
		}
	case sifmock.Tuple:
		if bv, ok := b.(sifmock.Tuple); ok {
			return compareSequences(av, bv)
		}
	}
	return 0, errors.IncomparableTypesError{Left: a, Right: b}
}

func compareSequences(a, b []interface{}) (int, error) {
	for i := 0; i < len(a) && i < len(b); i++ {
		c, err := Compare(a[i], b[i])
		if err != nil || c != 0 {
			return c, err
		}
	}
	return compareInt64(int64(len(a)), int64(len(b))), nil
}

func bothInt64(a, b interface{}) (int64, int64, bool) {
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	isInt := func(v reflect.Value) bool {
		switch v.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return true
		}
		return false
	}
	if isInt(av) && isInt(bv) {
		return av.Int(), bv.Int(), true
	}
	return 0, 0, false
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareFloat64(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
