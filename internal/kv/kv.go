// Package kv resolves the key and value of RDD elements. Every element has a Shape:
// either a key-value pair (a sifmock.Pair, or a sifmock.Tuple of at least two
// components), or a degenerate pair, which stands in for its own key and whose
// value is the element's item at index 1.
package kv

import (
	"reflect"

	"github.com/go-sif/sifmock"
	errors "github.com/go-sif/sifmock/errors"
)

// Shape classifies an element for key and value extraction
type Shape int

const (
	// PairShape elements carry an explicit key and value
	PairShape Shape = iota
	// DegenerateShape elements are their own key
	DegenerateShape
)

// ShapeOf classifies an element
func ShapeOf(elem interface{}) Shape {
	switch e := elem.(type) {
	case sifmock.Pair:
		return PairShape
	case *sifmock.Pair:
		if e != nil {
			return PairShape
		}
	case sifmock.Tuple:
		if len(e) >= 2 {
			return PairShape
		}
	}
	return DegenerateShape
}

// Key returns the key of an element. Degenerate pairs are their own key.
func Key(elem interface{}) interface{} {
	if ShapeOf(elem) == DegenerateShape {
		return elem
	}
	switch e := elem.(type) {
	case sifmock.Pair:
		return e.Key
	case *sifmock.Pair:
		return e.Key
	case sifmock.Tuple:
		return e[0]
	}
	return elem
}

// Value returns the value of an element. For degenerate pairs, this is the item
// at index 1 of the element: the second character of a string, or the second
// item of a slice or array. Other elements have no value.
func Value(elem interface{}) (interface{}, error) {
	if ShapeOf(elem) == PairShape {
		switch e := elem.(type) {
		case sifmock.Pair:
			return e.Value, nil
		case *sifmock.Pair:
			return e.Value, nil
		case sifmock.Tuple:
			return e[1], nil
		}
	}
	if s, ok := elem.(string); ok {
		runes := []rune(s)
		if len(runes) < 2 {
			return nil, errors.NotKeyValueError{Element: elem}
		}
		return string(runes[1]), nil
	}
	if elem == nil {
		return nil, errors.NotKeyValueError{Element: elem}
	}
	v := reflect.ValueOf(elem)
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		if v.Len() < 2 {
			return nil, errors.NotKeyValueError{Element: elem}
		}
		return v.Index(1).Interface(), nil
	}
	return nil, errors.NotKeyValueError{Element: elem}
}

// Split returns both the key and value of an element
func Split(elem interface{}) (key interface{}, value interface{}, err error) {
	value, err = Value(elem)
	if err != nil {
		return nil, nil, err
	}
	return Key(elem), value, nil
}

// Hashable returns true iff v may be used as a Go map key without panicking
func Hashable(v interface{}) bool {
	if v == nil {
		return true
	}
	return hashableValue(reflect.ValueOf(v))
}

func hashableValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Slice, reflect.Map, reflect.Func:
		return false
	case reflect.Interface:
		if v.IsNil() {
			return true
		}
		return hashableValue(v.Elem())
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if !hashableValue(v.Index(i)) {
				return false
			}
		}
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if !hashableValue(v.Field(i)) {
				return false
			}
		}
	}
	return true
}

// Equal returns true iff two elements are structurally equal
func Equal(a, b interface{}) bool {
	return reflect.DeepEqual(a, b)
}

// DeepCopy returns a copy of v which shares no slices or maps with it. Pointers
// and struct fields are copied shallowly.
func DeepCopy(v interface{}) interface{} {
	if v == nil {
		return nil
	}
	return deepCopyValue(reflect.ValueOf(v)).Interface()
}

func deepCopyValue(v reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return v
		}
		c := reflect.New(v.Type()).Elem()
		c.Set(deepCopyValue(v.Elem()))
		return c
	case reflect.Slice:
		if v.IsNil() {
			return v
		}
		c := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := 0; i < v.Len(); i++ {
			c.Index(i).Set(deepCopyValue(v.Index(i)))
		}
		return c
	case reflect.Array:
		c := reflect.New(v.Type()).Elem()
		for i := 0; i < v.Len(); i++ {
			c.Index(i).Set(deepCopyValue(v.Index(i)))
		}
		return c
	case reflect.Map:
		if v.IsNil() {
			return v
		}
		c := reflect.MakeMapWithSize(v.Type(), v.Len())
		iter := v.MapRange()
		for iter.Next() {
			c.SetMapIndex(iter.Key(), deepCopyValue(iter.Value()))
		}
		return c
	case reflect.Struct:
		if v.Type() == reflect.TypeOf(sifmock.Pair{}) {
			p := v.Interface().(sifmock.Pair)
			return reflect.ValueOf(sifmock.Pair{Key: DeepCopy(p.Key), Value: DeepCopy(p.Value)})
		}
	}
	return v
}
