// Package tree provides helpers for walking the exploration tree
// recorded in an ieds.NodeLog.
package tree

import (
	"github.com/timpalpant/go-ieds"
)

// Visit calls visitor for every node in the log, parents before children.
func Visit(log ieds.NodeLog, visitor func(node *ieds.Node)) error {
	return log.Walk(func(node *ieds.Node) error {
		visitor(node)
		return nil
	})
}

// Children returns the IDs of the children of each expanded node.
func Children(log ieds.NodeLog) (map[int][]int, error) {
	children := make(map[int][]int)
	err := Visit(log, func(node *ieds.Node) {
		if !node.IsRoot() {
			children[node.ParentID] = append(children[node.ParentID], node.ID)
		}
	})

	return children, err
}

// Ancestors returns the chain of nodes from the root to id, inclusive.
// It returns nil if id is not in the log.
func Ancestors(log ieds.NodeLog, id int) ([]*ieds.Node, error) {
	byID := make(map[int]*ieds.Node)
	if err := Visit(log, func(node *ieds.Node) { byID[node.ID] = node }); err != nil {
		return nil, err
	}

	var chain []*ieds.Node
	for node, ok := byID[id]; ok; node, ok = byID[node.ParentID] {
		chain = append(chain, node)
		if node.IsRoot() {
			break
		}
	}

	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}

	return chain, nil
}

func CountNodes(log ieds.NodeLog) (int, error) {
	total := 0
	err := Visit(log, func(node *ieds.Node) { total++ })
	return total, err
}

func CountTerminalNodes(log ieds.NodeLog) (int, error) {
	total := 0
	err := Visit(log, func(node *ieds.Node) {
		if node.IsTerminal() {
			total++
		}
	})

	return total, err
}

// MaxDepth returns the length of the longest elimination path in the log.
func MaxDepth(log ieds.NodeLog) (int, error) {
	depth := 0
	err := Visit(log, func(node *ieds.Node) {
		if node.Depth() > depth {
			depth = node.Depth()
		}
	})

	return depth, err
}
