package rdd

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-sif/sifmock"
	errors "github.com/go-sif/sifmock/errors"
	"github.com/pierrec/lz4"
	"go.uber.org/zap"
)

// CheckpointFileExt is the extension of files written by Checkpoint
const CheckpointFileExt = ".rdd"

func init() {
	gob.Register(sifmock.Pair{})
	gob.Register(sifmock.Tuple{})
	gob.Register([]interface{}{})
	gob.Register(map[string]interface{}{})
	gob.Register(time.Time{})
}

type checkpointData struct {
	Name     string
	Elements []interface{}
}

// Checkpoint saves the elements of this RDD to <checkpoint dir>/<id>.rdd. Elements must be
// gob-encodable, and custom element types must be registered with gob.Register.
func (r *rddImpl) Checkpoint() error {
	dir := r.conf.CheckpointDir
	if len(dir) == 0 {
		return errors.CheckpointDirNotSetError{}
	}
	path := filepath.Join(dir, r.id+CheckpointFileExt)
	r.conf.locks.Lock(path)
	defer r.conf.locks.Unlock(path)
	if err := writeCheckpoint(path, &checkpointData{Name: r.name, Elements: r.elems}); err != nil {
		return fmt.Errorf("Unable to checkpoint RDD %s: %w", r.id, err)
	}
	r.checkpointFile = path
	r.conf.Logger.Debug("Checkpointed RDD", zap.String("id", r.id), zap.String("file", path))
	return nil
}

// IsCheckpointed returns true iff Checkpoint has succeeded
func (r *rddImpl) IsCheckpointed() bool {
	return len(r.checkpointFile) > 0
}

// CheckpointFile returns the file written by Checkpoint
func (r *rddImpl) CheckpointFile() (string, bool) {
	return r.checkpointFile, r.IsCheckpointed()
}

func writeCheckpoint(path string, data *checkpointData) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	zw := lz4.NewWriter(f)
	if err = gob.NewEncoder(zw).Encode(data); err != nil {
		return err
	}
	return zw.Close()
}

// ReadCheckpoint restores an RDD from a file written by Checkpoint. The restored RDD
// keeps the name of the checkpointed one, but has a fresh ID and no lineage.
func ReadCheckpoint(conf *Config, path string) (sifmock.RDD, error) {
	conf.locks.Lock(path)
	defer conf.locks.Unlock(path)
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var data checkpointData
	if err := gob.NewDecoder(lz4.NewReader(f)).Decode(&data); err != nil {
		return nil, fmt.Errorf("Unable to read checkpoint %s: %w", path, err)
	}
	r := CreateRDD(conf, data.Elements, sifmock.CheckpointTaskType).(*rddImpl)
	r.name = data.Name
	r.checkpointFile = path
	return r, nil
}
