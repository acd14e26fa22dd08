package ldbstore

import (
	"encoding/binary"
	"sync"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/timpalpant/go-ieds"
)

// Log implements ieds.NodeLog by storing every node in a LevelDB database.
//
// It is functionally equivalent to ieds.Log. In practice, it will be
// much slower but use a constant amount of memory however large the
// exploration tree grows. Nodes are keyed by their big-endian ID, so
// iteration follows creation order.
type Log struct {
	path   string
	matrix *ieds.Matrix

	mx sync.RWMutex
	n  int

	db    *leveldb.DB
	rOpts *opt.ReadOptions
	wOpts *opt.WriteOptions
}

// New opens (or creates) a Log backed by a LevelDB database at the given path.
// Nodes read back from the log are attached to m.
func New(path string, opts *opt.Options, m *ieds.Matrix) (*Log, error) {
	db, err := leveldb.OpenFile(path, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "open leveldb at %s", path)
	}

	l := &Log{path: path, matrix: m, db: db}
	if err := l.count(); err != nil {
		db.Close()
		return nil, err
	}

	return l, nil
}

// count recovers the number of nodes of an existing database.
func (l *Log) count() error {
	iter := l.db.NewIterator(nil, l.rOpts)
	defer iter.Release()
	if iter.Last() {
		l.n = int(binary.BigEndian.Uint64(iter.Key())) + 1
	}

	return iter.Error()
}

// Close implements io.Closer.
func (l *Log) Close() error {
	return l.db.Close()
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

	if err := l.db.Put(nodeKey(node.ID), buf, l.wOpts); err != nil {
		return err
	}

	if node.ID == l.n {
		l.n++
	}

	return nil
}

// Get returns the node with the given ID.
func (l *Log) Get(id int) (*ieds.Node, error) {
	buf, err := l.db.Get(nodeKey(id), l.rOpts)
	if err != nil {
		return nil, err
	}

	return l.decode(buf)
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
	iter := l.db.NewIterator(nil, l.rOpts)
	defer iter.Release()
	for iter.Next() {
		node, err := l.decode(iter.Value())
		if err != nil {
			return errors.Wrapf(err, "decode node %d", binary.BigEndian.Uint64(iter.Key()))
		}

		if err := fn(node); err != nil {
			return err
		}
	}

	return iter.Error()
}

// Reset implements ieds.NodeLog.
func (l *Log) Reset() error {
	l.mx.Lock()
	defer l.mx.Unlock()
	if l.n == 0 {
		return nil
	}

	batch := new(leveldb.Batch)
	iter := l.db.NewIterator(&util.Range{}, l.rOpts)
	for iter.Next() {
		batch.Delete(append([]byte(nil), iter.Key()...))
	}

	iter.Release()
	if err := iter.Error(); err != nil {
		return err
	}

	glog.V(1).Infof("Deleting %d nodes from %s", batch.Len(), l.path)
	if err := l.db.Write(batch, l.wOpts); err != nil {
		return err
	}

	l.n = 0
	return nil
}
