package ieds

import (
	"encoding/gob"
	"io"

	"github.com/pkg/errors"
)

// SaveSnapshot writes the matrix and every node of log to w so that the
// outcome of a search can be ranked again later with LoadSnapshot.
// The log must not be written to while the snapshot is taken.
func SaveSnapshot(w io.Writer, m *Matrix, log NodeLog) error {
	enc := gob.NewEncoder(w)
	if err := enc.Encode(m); err != nil {
		return errors.Wrap(err, "encode matrix")
	}

	if err := enc.Encode(log.Len()); err != nil {
		return err
	}

	return log.Walk(func(node *Node) error {
		return errors.Wrapf(enc.Encode(node), "encode node %d", node.ID)
	})
}

// LoadSnapshot reads a snapshot written by SaveSnapshot into a new Log.
func LoadSnapshot(r io.Reader) (*Matrix, *Log, error) {
	dec := gob.NewDecoder(r)
	m := &Matrix{}
	if err := dec.Decode(m); err != nil {
		return nil, nil, errors.Wrap(err, "decode matrix")
	}

	var nNodes int
	if err := dec.Decode(&nNodes); err != nil {
		return nil, nil, err
	}

	log := NewLog()
	for i := 0; i < nNodes; i++ {
		node := &Node{}
		if err := dec.Decode(node); err != nil {
			return nil, nil, errors.Wrapf(err, "decode node %d", i)
		}

		node.Attach(m)
		if err := log.Put(node); err != nil {
			return nil, nil, err
		}
	}

	return m, log, nil
}
