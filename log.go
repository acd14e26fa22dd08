package ieds

import (
	"sync"

	"github.com/pkg/errors"
)

// ErrNonSequentialID is returned when a node is recorded out of order.
var ErrNonSequentialID = errors.New("ieds: node ID is not sequential")

// Log implements NodeLog by keeping every node in memory.
//
// It stores copies, so a consumer may call Nodes or Walk from another
// goroutine while an Explorer is still appending to it.
type Log struct {
	mx    sync.RWMutex
	nodes []*Node
}

// NewLog returns an empty Log.
func NewLog() *Log {
	return &Log{}
}

// Put implements NodeLog.
func (l *Log) Put(node *Node) error {
	l.mx.Lock()
	defer l.mx.Unlock()

	switch {
	case node.ID >= 0 && node.ID < len(l.nodes):
		l.nodes[node.ID] = copyNode(node)
	case node.ID == len(l.nodes):
		l.nodes = append(l.nodes, copyNode(node))
	default:
		return errors.Wrapf(ErrNonSequentialID, "got %d, have %d nodes", node.ID, len(l.nodes))
	}

	return nil
}

// Len implements NodeLog.
func (l *Log) Len() int {
	l.mx.RLock()
	defer l.mx.RUnlock()
	return len(l.nodes)
}

// Get returns the node with the given ID.
func (l *Log) Get(id int) (*Node, bool) {
	l.mx.RLock()
	defer l.mx.RUnlock()
	if id < 0 || id >= len(l.nodes) {
		return nil, false
	}

	return l.nodes[id], true
}

// Nodes returns a snapshot of all nodes recorded so far, in creation order.
func (l *Log) Nodes() []*Node {
	l.mx.RLock()
	defer l.mx.RUnlock()
	return append([]*Node(nil), l.nodes...)
}

// Walk implements NodeLog.
func (l *Log) Walk(fn func(node *Node) error) error {
	for _, node := range l.Nodes() {
		if err := fn(node); err != nil {
			return err
		}
	}

	return nil
}

// Reset implements NodeLog.
func (l *Log) Reset() error {
	l.mx.Lock()
	defer l.mx.Unlock()
	l.nodes = nil
	return nil
}
