package sifmock

// A DataFrame wraps an RDD of Rows with a fixed Schema. Only a handful of members are
// implemented; the rest of the tabular surface is reachable through Call, which reports
// a NotImplementedError for members which do not exist here yet.
type DataFrame interface {
	Count() int                                               // Count returns the number of Rows in this DataFrame
	Schema() Schema                                           // Schema returns the Schema this DataFrame was created with
	Cache() DataFrame                                         // Cache is a no-op, returning this DataFrame
	Equals(other DataFrame) bool                              // Equals returns true iff both DataFrames have equal Rows and Schemas
	Call(op string, args ...interface{}) (interface{}, error) // Call invokes a member of the tabular surface by name
}
