package rdd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-sif/sifmock"
	errors "github.com/go-sif/sifmock/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestCheckpointWithoutDirFails(t *testing.T) {
	r := parallelize(t, 1, 2, 3)
	_, ok := r.Checkpoint().(errors.CheckpointDirNotSetError)
	require.True(t, ok)
	require.False(t, r.IsCheckpointed())
	_, ok = r.CheckpointFile()
	require.False(t, ok)
}

func TestCheckpointRoundTrip(t *testing.T) {
	dir := t.TempDir()
	conf := NewConfig(sifmock.GroupOrderReverseFirstSeen, dir, zaptest.NewLogger(t))
	elems := []interface{}{
		1,
		"two",
		sifmock.Pair{Key: "k", Value: 3.5},
		sifmock.Tuple{"a", 1, true},
		[]interface{}{"x", 2},
	}
	r := CreateRDD(conf, elems, sifmock.ParallelizeTaskType).SetName("mixed")
	require.Nil(t, r.Checkpoint())
	require.True(t, r.IsCheckpointed())

	path, ok := r.CheckpointFile()
	require.True(t, ok)
	require.Equal(t, filepath.Join(dir, r.ID()+CheckpointFileExt), path)
	_, err := os.Stat(path)
	require.Nil(t, err)

	restored, err := ReadCheckpoint(conf, path)
	require.Nil(t, err)
	require.True(t, r.Equals(restored))
	require.NotEqual(t, r.ID(), restored.ID())
	require.True(t, restored.IsCheckpointed())
}

func TestReadMissingCheckpointFails(t *testing.T) {
	conf := NewConfig(sifmock.GroupOrderReverseFirstSeen, "", zaptest.NewLogger(t))
	_, err := ReadCheckpoint(conf, filepath.Join(t.TempDir(), "missing.rdd"))
	require.NotNil(t, err)
}
