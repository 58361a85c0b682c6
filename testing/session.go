// Package testing provides helpers for tests which exercise code built on sifmock.
// It is conventionally imported as siftest.
package testing

import (
	"github.com/go-sif/sifmock"
	"github.com/go-sif/sifmock/session"
	"go.uber.org/zap/zaptest"
)

// TB is the subset of testing.TB needed to build a test Session
type TB interface {
	zaptest.TestingT
	Helper()
	TempDir() string
	Fatalf(format string, args ...interface{})
}

// Option customizes the Options of a test Session
type Option func(opts *session.Options)

// WithGroupOrder sets the order in which grouping transformations emit groups
func WithGroupOrder(order sifmock.GroupOrder) Option {
	return func(opts *session.Options) {
		opts.GroupOrder = order
	}
}

// WithoutCheckpointDir leaves the checkpoint directory unset
func WithoutCheckpointDir() Option {
	return func(opts *session.Options) {
		opts.CheckpointDir = ""
	}
}

// NewSession builds a Session which logs through t and checkpoints into a
// temporary directory removed when the test completes
func NewSession(t TB, options ...Option) *session.Session {
	t.Helper()
	opts := &session.Options{
		AppName:       t.Name(),
		Logger:        zaptest.NewLogger(t),
		CheckpointDir: t.TempDir(),
	}
	for _, o := range options {
		o(opts)
	}
	s, err := session.Create(opts)
	if err != nil {
		t.Fatalf("Unable to create test session: %s", err)
	}
	return s
}

// Parallelize builds an RDD over elems using a fresh test Session
func Parallelize(t TB, elems ...interface{}) sifmock.RDD {
	t.Helper()
	return NewSession(t).Parallelize(elems)
}
