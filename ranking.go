package ieds

import (
	"sort"
)

// Solution is a distinct reduced game together with the number of
// elimination paths that reached it.
type Solution struct {
	// Node is the terminal node with the shortest path to this reduced game.
	Node  *Node
	Count int
}

// Terminals returns the terminal nodes of log in creation order.
func Terminals(log NodeLog) ([]*Node, error) {
	var result []*Node
	err := log.Walk(func(node *Node) error {
		if node.IsTerminal() {
			result = append(result, node)
		}

		return nil
	})

	return result, err
}

// RankedSolutions returns the terminal nodes of log ordered best first.
// See RankSolutions.
func RankedSolutions(log NodeLog) ([]*Node, error) {
	terminals, err := Terminals(log)
	if err != nil {
		return nil, err
	}

	return RankSolutions(terminals), nil
}

// RankSolutions returns the terminal nodes among nodes ordered by:
// equilibria before dead ends, then smaller reduced games first, then
// longer elimination paths first. Remaining ties keep their input order.
func RankSolutions(nodes []*Node) []*Node {
	result := make([]*Node, 0, len(nodes))
	for _, node := range nodes {
		if node.IsTerminal() {
			result = append(result, node)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i], result[j]
		aEq := a.Result().Type == Equilibrium
		bEq := b.Result().Type == Equilibrium
		if aEq != bEq {
			return aEq
		}

		if a.Size() != b.Size() {
			return a.Size() < b.Size()
		}

		return a.Depth() > b.Depth()
	})

	return result
}

// UniqueSolutions groups the ranked terminal nodes of log by reduced game.
// See DeduplicateSolutions.
func UniqueSolutions(log NodeLog) ([]Solution, error) {
	ranked, err := RankedSolutions(log)
	if err != nil {
		return nil, err
	}

	return DeduplicateSolutions(ranked), nil
}

// DeduplicateSolutions groups terminal nodes by the set of surviving rows
// and columns, regardless of the order they were eliminated in. Groups are
// returned in order of first appearance. The representative of each group
// is its member with the fewest moves, the earliest one on ties.
func DeduplicateSolutions(nodes []*Node) []Solution {
	var result []Solution
	index := make(map[string]int)
	for _, node := range nodes {
		if !node.IsTerminal() {
			continue
		}

		key := node.Key()
		i, ok := index[key]
		if !ok {
			index[key] = len(result)
			result = append(result, Solution{Node: node, Count: 1})
			continue
		}

		result[i].Count++
		if node.Depth() < result[i].Node.Depth() {
			result[i].Node = node
		}
	}

	return result
}
