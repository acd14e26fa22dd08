package ieds

import (
	"fmt"
)

// Role identifies which player's strategies are being compared.
type Role int

const (
	RowPlayer Role = iota
	ColPlayer
)

func (r Role) String() string {
	if r == RowPlayer {
		return "R"
	}

	return "C"
}

// Opponent returns the other player.
func (r Role) Opponent() Role {
	return 1 - r
}

// Kind is the domination relation used to eliminate a strategy.
type Kind int

const (
	Strict Kind = iota
	Weak
	VeryWeak
)

var kindStr = [...]string{
	"Strict",
	"Weakly",
	"Very Weakly",
}

func (k Kind) String() string {
	return kindStr[k]
}

// Pair is one dominated strategy together with the first strategy
// found to dominate it.
type Pair struct {
	Dominated int
	Dominator int
}

// Move is a single elimination step on the path from the root.
type Move struct {
	Eliminated int
	Role       Role
	Dominator  int
	Kind       Kind
}

// String implements fmt.Stringer.
func (m Move) String() string {
	return fmt.Sprintf("%s%d %s Dom by %s%d", m.Role, m.Eliminated, m.Kind, m.Role, m.Dominator)
}

// ResultType is the classification of an exploration node.
type ResultType int

const (
	Pending ResultType = iota
	Equilibrium
	DeadEnd
)

// Result is set on a node once no further elimination applies to it.
// Row and Col are only meaningful for an Equilibrium; NumRows and NumCols
// record the size of the reduced game in either case.
type Result struct {
	Type    ResultType
	Row     int
	Col     int
	NumRows int
	NumCols int
}

// IsTerminal returns true if the node this result belongs to is fully explored.
func (r Result) IsTerminal() bool {
	return r.Type != Pending
}

// String implements fmt.Stringer.
func (r Result) String() string {
	switch r.Type {
	case Equilibrium:
		return fmt.Sprintf("EQUILIBRIUM: R%d, C%d", r.Row, r.Col)
	case DeadEnd:
		return fmt.Sprintf("DEAD END: Matrix size %dx%d", r.NumRows, r.NumCols)
	}

	return "PENDING"
}

// NodeLog records every node created during a search.
//
// The explorer calls Put once when a node is created and again when it is
// classified as terminal, so implementations must replace any existing
// record with the same ID.
type NodeLog interface {
	// Put records node, replacing any previous record with the same ID.
	// Node IDs are handed out sequentially starting from zero.
	Put(node *Node) error
	// Len returns the number of distinct nodes recorded.
	Len() int
	// Walk calls fn for each recorded node in creation order.
	// Iteration stops at the first non-nil error, which is returned.
	Walk(fn func(node *Node) error) error
	// Reset discards all recorded nodes.
	Reset() error
}

// ProgressFunc is called once per batch with the number of
// nodes expanded so far.
type ProgressFunc func(expanded int)
