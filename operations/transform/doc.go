// Package transform provides the transformations which may be applied to an RDD, as
// RDDOperations suitable for RDD.To. Each operation computes a fresh slice of elements
// and never alters its input.
package transform
