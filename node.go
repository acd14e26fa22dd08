package ieds

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrNoStrategies       = errors.New("ieds: a player has no active strategies")
	ErrStrategyOutOfRange = errors.New("ieds: strategy index out of range")
	ErrDuplicateStrategy  = errors.New("ieds: strategy listed more than once")
)

const rootLabel = "Start"

// Node is one reduced game reached by a specific sequence of eliminations.
//
// Everything except the result is fixed when the node is created.
// The result is set at most once, by the Reducer, when no further
// elimination applies.
type Node struct {
	// ID is the creation index of this node within a run. The root is 0.
	ID int
	// ParentID is the ID of the node this one was expanded from, or -1.
	ParentID int
	// Path is the sequence of eliminations from the root.
	Path []Move
	// Rows and Cols are the active strategies, in elimination order.
	Rows []int
	Cols []int

	matrix *Matrix
	result Result
}

// NewRoot returns the root node of a search over the given active strategies.
// It fails if either side is empty, or lists an index more than once or
// outside of the matrix.
func NewRoot(m *Matrix, rows, cols []int) (*Node, error) {
	if m == nil {
		return nil, ErrEmptyMatrix
	}

	if err := validateStrategies(rows, m.NumRows()); err != nil {
		return nil, errors.Wrap(err, "rows")
	}

	if err := validateStrategies(cols, m.NumCols()); err != nil {
		return nil, errors.Wrap(err, "cols")
	}

	return &Node{
		ParentID: -1,
		Rows:     append([]int(nil), rows...),
		Cols:     append([]int(nil), cols...),
		matrix:   m,
	}, nil
}

func validateStrategies(indices []int, n int) error {
	if len(indices) == 0 {
		return ErrNoStrategies
	}

	seen := make(map[int]struct{}, len(indices))
	for _, i := range indices {
		if i < 0 || i >= n {
			return errors.Wrapf(ErrStrategyOutOfRange, "%d not in [0, %d)", i, n)
		}

		if _, ok := seen[i]; ok {
			return errors.Wrapf(ErrDuplicateStrategy, "%d", i)
		}

		seen[i] = struct{}{}
	}

	return nil
}

// child returns a new pending node with one strategy eliminated by mv.
func (n *Node) child(mv Move) *Node {
	rows, cols := n.Rows, n.Cols
	if mv.Role == RowPlayer {
		rows = without(rows, mv.Eliminated)
	} else {
		cols = without(cols, mv.Eliminated)
	}

	path := make([]Move, len(n.Path)+1)
	copy(path, n.Path)
	path[len(n.Path)] = mv

	return &Node{
		ID:       -1,
		ParentID: n.ID,
		Path:     path,
		Rows:     rows,
		Cols:     cols,
		matrix:   n.matrix,
	}
}

// without returns a copy of s with x removed, preserving order.
func without(s []int, x int) []int {
	result := make([]int, 0, len(s))
	for _, v := range s {
		if v != x {
			result = append(result, v)
		}
	}

	return result
}

// Matrix returns the payoff matrix shared by all nodes of the search.
func (n *Node) Matrix() *Matrix {
	return n.matrix
}

// Result returns the classification of this node.
func (n *Node) Result() Result {
	return n.result
}

// IsTerminal returns true if this node has been classified.
func (n *Node) IsTerminal() bool {
	return n.result.IsTerminal()
}

// IsRoot returns true if this node has no parent.
func (n *Node) IsRoot() bool {
	return n.ParentID < 0
}

// Depth returns the number of eliminations from the root.
func (n *Node) Depth() int {
	return len(n.Path)
}

// Size returns the number of cells in the reduced game.
func (n *Node) Size() int {
	return len(n.Rows) * len(n.Cols)
}

// Label renders the elimination path, e.g.
// "Start -> R0 Strict Dom by R1 -> C1 Weakly Dom by C0".
func (n *Node) Label() string {
	var sb strings.Builder
	sb.WriteString(rootLabel)
	for _, mv := range n.Path {
		sb.WriteString(" -> ")
		sb.WriteString(mv.String())
	}

	return sb.String()
}

// Key identifies the reduced game independently of elimination order.
func (n *Node) Key() string {
	return fmt.Sprintf("R:%v|C:%v", sorted(n.Rows), sorted(n.Cols))
}

func sorted(s []int) []int {
	result := append([]int(nil), s...)
	sort.Ints(result)
	return result
}

// String implements fmt.Stringer.
func (n *Node) String() string {
	return fmt.Sprintf("Node %d (parent %d). Path: %s [Rows: %v, Cols: %v] %v",
		n.ID, n.ParentID, n.Label(), n.Rows, n.Cols, n.result)
}

// classify sets the terminal result for this node.
func (n *Node) classify() {
	if len(n.Rows) == 1 && len(n.Cols) == 1 {
		n.result = Result{
			Type:    Equilibrium,
			Row:     n.Rows[0],
			Col:     n.Cols[0],
			NumRows: 1,
			NumCols: 1,
		}
		return
	}

	n.result = Result{
		Type:    DeadEnd,
		Row:     -1,
		Col:     -1,
		NumRows: len(n.Rows),
		NumCols: len(n.Cols),
	}
}

// copyNode returns a shallow copy of n. The slices it shares are never
// modified after creation.
func copyNode(n *Node) *Node {
	c := *n
	return &c
}

// Attach sets the matrix of a node decoded from storage.
func (n *Node) Attach(m *Matrix) {
	n.matrix = m
}

// nodeRecord is the stored form of a Node. Zero-length slices are not
// transmitted by gob, so a decoded root has a nil Path.
type nodeRecord struct {
	ID       int
	ParentID int
	Path     []Move
	Rows     []int
	Cols     []int
	Result   Result
}

// GobEncode implements gob.GobEncoder.
// The matrix is not included; decoded nodes must be re-attached with Attach.
func (n *Node) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	rec := nodeRecord{
		ID:       n.ID,
		ParentID: n.ParentID,
		Path:     n.Path,
		Rows:     n.Rows,
		Cols:     n.Cols,
		Result:   n.result,
	}

	if err := enc.Encode(&rec); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// GobDecode implements gob.GobDecoder.
func (n *Node) GobDecode(buf []byte) error {
	r := bytes.NewReader(buf)
	dec := gob.NewDecoder(r)

	var rec nodeRecord
	if err := dec.Decode(&rec); err != nil {
		return err
	}

	n.ID = rec.ID
	n.ParentID = rec.ParentID
	n.Path = rec.Path
	n.Rows = rec.Rows
	n.Cols = rec.Cols
	n.result = rec.Result
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (n *Node) MarshalBinary() ([]byte, error) {
	return n.GobEncode()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (n *Node) UnmarshalBinary(buf []byte) error {
	return n.GobDecode(buf)
}
