//go:build rocksdb

package rdbstore

import (
	"encoding/binary"
	"sync"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	rocksdb "github.com/tecbot/gorocksdb"

	"github.com/timpalpant/go-ieds"
)

// Log implements ieds.NodeLog by storing every node in a RocksDB database.
//
// It is functionally equivalent to ieds.Log. In practice, it will be
// much slower but use a constant amount of memory however large the
// exploration tree grows.
type Log struct {
	params Params
	matrix *ieds.Matrix

	mx sync.RWMutex
	n  int

	db *rocksdb.DB
}

// New opens (or creates) a Log backed by a RocksDB database.
// Nodes read back from the log are attached to m.
func New(params Params, m *ieds.Matrix) (*Log, error) {
	db, err := rocksdb.OpenDb(params.Options, params.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "open rocksdb at %s", params.Path)
	}

	l := &Log{params: params, matrix: m, db: db}
	if err := l.count(); err != nil {
		db.Close()
		return nil, err
	}

	return l, nil
}

func (l *Log) count() error {
	iter := l.db.NewIterator(l.params.ScanOptions)
	defer iter.Close()
	iter.SeekToLast()
	if iter.Valid() {
		key := iter.Key()
		l.n = int(binary.BigEndian.Uint64(key.Data())) + 1
		key.Free()
	}

	return iter.Err()
}

// Close implements io.Closer.
func (l *Log) Close() error {
	l.db.Close()
	return nil
}

func nodeKey(id int) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(id))
	return buf[:]
}

// Put implements ieds.NodeLog.
func (l *Log) Put(node *ieds.Node) error {
	l.mx.Lock()
	defer l.mx.Unlock()
	if node.ID < 0 || node.ID > l.n {
		return errors.Wrapf(ieds.ErrNonSequentialID, "got %d, have %d nodes", node.ID, l.n)
	}

	buf, err := node.MarshalBinary()
	if err != nil {
		return err
	}

	if err := l.db.Put(l.params.WriteOptions, nodeKey(node.ID), buf); err != nil {
		return err
	}

	if node.ID == l.n {
		l.n++
	}

	return nil
}

// Get returns the node with the given ID.
func (l *Log) Get(id int) (*ieds.Node, error) {
	result, err := l.db.Get(l.params.ReadOptions, nodeKey(id))
	if err != nil {
		return nil, err
	}
	defer result.Free()

	if result.Size() == 0 {
		return nil, errors.Errorf("rdbstore: node %d not found", id)
	}

	return l.decode(result.Data())
}

func (l *Log) decode(buf []byte) (*ieds.Node, error) {
	node := &ieds.Node{}
	if err := node.UnmarshalBinary(buf); err != nil {
		return nil, err
	}

	node.Attach(l.matrix)
	return node, nil
}

// Len implements ieds.NodeLog.
func (l *Log) Len() int {
	l.mx.RLock()
	defer l.mx.RUnlock()
	return l.n
}

// Walk implements ieds.NodeLog. It may run concurrently with Put, in
// which case nodes written during the walk may or may not be visited.
func (l *Log) Walk(fn func(node *ieds.Node) error) error {
	iter := l.db.NewIterator(l.params.ScanOptions)
	defer iter.Close()
	for iter.SeekToFirst(); iter.Valid(); iter.Next() {
		value := iter.Value()
		node, err := l.decode(value.Data())
		value.Free()
		if err != nil {
			return err
		}

		if err := fn(node); err != nil {
			return err
		}
	}

	return iter.Err()
}

// Reset implements ieds.NodeLog.
func (l *Log) Reset() error {
	l.mx.Lock()
	defer l.mx.Unlock()
	if l.n == 0 {
		return nil
	}

	wb := rocksdb.NewWriteBatch()
	defer wb.Destroy()
	iter := l.db.NewIterator(l.params.ScanOptions)
	for iter.SeekToFirst(); iter.Valid(); iter.Next() {
		key := iter.Key()
		wb.Delete(key.Data())
		key.Free()
	}

	err := iter.Err()
	iter.Close()
	if err != nil {
		return err
	}

	glog.V(1).Infof("Deleting %d nodes from %s", wb.Count(), l.params.Path)
	if err := l.db.Write(l.params.WriteOptions, wb); err != nil {
		return err
	}

	l.n = 0
	return nil
}
