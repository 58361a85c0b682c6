package errors

import (
	"fmt"
)

// NilValueError occurs when a value in a Row is null
type NilValueError struct{ Name string }

// Error returns a textual representation of this NilValueError
func (e NilValueError) Error() string {
	return fmt.Sprintf("Value for column %s is nil", e.Name)
}

// NoSuchColumnError occurs when a Schema does not contain a requested column
type NoSuchColumnError struct{ Name string }

// Error returns a textual representation of this NoSuchColumnError
func (e NoSuchColumnError) Error() string {
	return fmt.Sprintf("Schema does not contain column with name %s", e.Name)
}

// ColumnTypeMismatchError occurs when a typed Row getter finds a value of another Go type
type ColumnTypeMismatchError struct {
	Name     string
	Expected string
	Actual   interface{}
}

// Error returns a textual representation of this ColumnTypeMismatchError
func (e ColumnTypeMismatchError) Error() string {
	return fmt.Sprintf("Value for column %s is a %T, not a %s", e.Name, e.Actual, e.Expected)
}

// IncompatibleRowError occurs when a record's shape or width does not match an expected Schema
type IncompatibleRowError struct {
	Record  interface{}
	Columns int
}

// Error returns a textual representation of this IncompatibleRowError
func (e IncompatibleRowError) Error() string {
	return fmt.Sprintf("Record %v is not compatible with a Schema of %d columns", e.Record, e.Columns)
}

// CannotInferSchemaError occurs when a DataFrame is created without a Schema, and
// none can be derived from the records themselves
type CannotInferSchemaError struct{}

// Error returns a textual representation of this CannotInferSchemaError
func (e CannotInferSchemaError) Error() string {
	return "Cannot infer a Schema from the given records; supply one explicitly"
}

// EmptyCollectionError occurs when an action requiring at least one element is applied to an empty RDD
type EmptyCollectionError struct{ Operation string }

// Error returns a textual representation of this EmptyCollectionError
func (e EmptyCollectionError) Error() string {
	return fmt.Sprintf("%s cannot be applied to an empty RDD", e.Operation)
}

// IncompatibleLengthsError occurs when two RDDs of differing lengths are zipped together
type IncompatibleLengthsError struct {
	Left  int
	Right int
}

// Error returns a textual representation of this IncompatibleLengthsError
func (e IncompatibleLengthsError) Error() string {
	return fmt.Sprintf("Can only zip RDDs with the same number of elements (%d != %d)", e.Left, e.Right)
}

// NotImplementedError occurs when a member of the tabular surface which does not exist here is invoked
type NotImplementedError struct{ Operation string }

// Error returns a textual representation of this NotImplementedError
func (e NotImplementedError) Error() string {
	return fmt.Sprintf("DataFrame.%s is not implemented", e.Operation)
}

// UnknownOperationError occurs when a name which is not part of the tabular surface is invoked
type UnknownOperationError struct{ Operation string }

// Error returns a textual representation of this UnknownOperationError
func (e UnknownOperationError) Error() string {
	return fmt.Sprintf("DataFrame has no member %s", e.Operation)
}

// NotKeyValueError occurs when a value cannot be extracted from an element
type NotKeyValueError struct{ Element interface{} }

// Error returns a textual representation of this NotKeyValueError
func (e NotKeyValueError) Error() string {
	return fmt.Sprintf("Element %v (%T) has no value component", e.Element, e.Element)
}

// UnhashableKeyError occurs when a key cannot be used as a map key
type UnhashableKeyError struct{ Key interface{} }

// Error returns a textual representation of this UnhashableKeyError
func (e UnhashableKeyError) Error() string {
	return fmt.Sprintf("Key %v (%T) is not hashable", e.Key, e.Key)
}

// IncomparableTypesError occurs when two elements have no natural ordering relative to each other
type IncomparableTypesError struct {
	Left  interface{}
	Right interface{}
}

// Error returns a textual representation of this IncomparableTypesError
func (e IncomparableTypesError) Error() string {
	return fmt.Sprintf("Cannot order %v (%T) relative to %v (%T)", e.Left, e.Left, e.Right, e.Right)
}

// NotNumericError occurs when an arithmetic action encounters a non-numeric element
type NotNumericError struct{ Element interface{} }

// Error returns a textual representation of this NotNumericError
func (e NotNumericError) Error() string {
	return fmt.Sprintf("Element %v (%T) is not numeric", e.Element, e.Element)
}

// CheckpointDirNotSetError occurs when an RDD is checkpointed before a checkpoint directory is configured
type CheckpointDirNotSetError struct{}

// Error returns a textual representation of this CheckpointDirNotSetError
func (e CheckpointDirNotSetError) Error() string {
	return "Checkpoint directory has not been set"
}
