// Package session creates RDDs and DataFrames. A Session holds the options shared by
// every collection it creates: the logger, the grouping order and the checkpoint directory.
package session

import (
	"os"

	"github.com/go-sif/sifmock"
	"github.com/go-sif/sifmock/internal/dataframe"
	"github.com/go-sif/sifmock/internal/rdd"
	"github.com/go-sif/sifmock/logging"
	"go.uber.org/zap"
)

// Session is the factory for RDDs and DataFrames
type Session struct {
	opts   *Options
	conf   *rdd.Config
	logger *zap.Logger
}

// Create builds a Session from opts, defaulting any missing values
func Create(opts *Options) (*Session, error) {
	if opts == nil {
		opts = &Options{}
	}
	opts = CloneOptions(opts)
	ensureDefaultOptionsValues(opts)
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		level, _ := logging.ParseLevel(opts.LogLevel)
		built, err := logging.New(level)
		if err != nil {
			return nil, err
		}
		logger = built
	}
	logger = logger.Named(opts.AppName)
	s := &Session{
		opts:   opts,
		conf:   rdd.NewConfig(opts.GroupOrder, "", logger),
		logger: logger,
	}
	if len(opts.CheckpointDir) > 0 {
		if err := s.SetCheckpointDir(opts.CheckpointDir); err != nil {
			return nil, err
		}
	}
	logger.Debug("Created session", zap.String("groupOrder", string(opts.GroupOrder)))
	return s, nil
}

// Default builds a Session with default Options, logging at info level
func Default() *Session {
	s, err := Create(&Options{})
	if err != nil {
		// fall back to a silent logger
		s, _ = Create(&Options{Logger: zap.NewNop()})
	}
	return s
}

// Options returns a copy of the Options this Session was created with
func (s *Session) Options() *Options {
	opts := CloneOptions(s.opts)
	opts.CheckpointDir = s.conf.CheckpointDir
	return opts
}

// Logger returns the logger for this Session
func (s *Session) Logger() *zap.Logger {
	return s.logger
}

// Parallelize creates an RDD over a copy of elems, in order
func (s *Session) Parallelize(elems []interface{}) sifmock.RDD {
	return rdd.CreateRDD(s.conf, elems, sifmock.ParallelizeTaskType)
}

// EmptyRDD creates an RDD with no elements
func (s *Session) EmptyRDD() sifmock.RDD {
	return s.Parallelize(nil)
}

// CreateDataFrame converts records into the Rows of a new DataFrame. If schema is nil, every
// record must be a Row, and all must share one Schema.
func (s *Session) CreateDataFrame(records []interface{}, schema sifmock.Schema) (sifmock.DataFrame, error) {
	return dataframe.CreateDataFrame(records, schema, s.Parallelize, s.logger)
}

// CreateDataFrameFromRDD converts the elements of an RDD into the Rows of a new DataFrame
func (s *Session) CreateDataFrameFromRDD(r sifmock.RDD, schema sifmock.Schema) (sifmock.DataFrame, error) {
	return s.CreateDataFrame(r.Collect(), schema)
}

// CreateDataFrameFromDataFrame creates a distinct DataFrame with the same Rows and an equal Schema
func (s *Session) CreateDataFrameFromDataFrame(df sifmock.DataFrame) (sifmock.DataFrame, error) {
	return dataframe.CopyDataFrame(df, s.Parallelize)
}

// SetCheckpointDir sets the directory which RDD.Checkpoint writes to, creating it if
// necessary. It applies to every RDD created by this Session, including existing ones.
func (s *Session) SetCheckpointDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	s.conf.CheckpointDir = dir
	s.logger.Debug("Set checkpoint directory", zap.String("dir", dir))
	return nil
}

// CheckpointDir returns the directory which RDD.Checkpoint writes to, or "" if unset
func (s *Session) CheckpointDir() string {
	return s.conf.CheckpointDir
}

// ReadCheckpoint restores an RDD from a file written by RDD.Checkpoint
func (s *Session) ReadCheckpoint(path string) (sifmock.RDD, error) {
	r, err := rdd.ReadCheckpoint(s.conf, path)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("Restored RDD from checkpoint", zap.String("id", r.ID()), zap.String("file", path))
	return r, nil
}

// Close flushes any buffered log messages
func (s *Session) Close() {
	_ = s.logger.Sync()
}
