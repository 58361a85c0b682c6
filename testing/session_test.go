package testing

import (
	stdtesting "testing"

	"github.com/go-sif/sifmock"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *stdtesting.T) {
	s := NewSession(t)
	require.NotEmpty(t, s.CheckpointDir())
	r := s.Parallelize([]interface{}{1, 2})
	require.Nil(t, r.Checkpoint())
	require.True(t, r.IsCheckpointed())
}

func TestNewSessionOptions(t *stdtesting.T) {
	s := NewSession(t, WithGroupOrder(sifmock.GroupOrderFirstSeen), WithoutCheckpointDir())
	require.Equal(t, sifmock.GroupOrderFirstSeen, s.Options().GroupOrder)
	require.Equal(t, "", s.CheckpointDir())
	require.NotNil(t, s.Parallelize(nil).Checkpoint())
}

func TestParallelize(t *stdtesting.T) {
	require.Equal(t, []interface{}{"a", "b"}, Parallelize(t, "a", "b").Collect())
}
