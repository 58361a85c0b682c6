// Package sifmock contains the core components of sifmock, an in-memory stand-in for a
// distributed dataset API. Code written against the RDD and DataFrame interfaces defined here
// runs on a single node, eagerly, without a cluster, so it can be unit-tested quickly.
// This root package defines the types which are employed during the regular use of the
// library, and is an overview of its key concepts: RDDs, Pairs and Tuples, DataFrames, Rows,
// Schemas and Accumulators. Concrete values are produced by the session package.
package sifmock
