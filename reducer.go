package ieds

// Reducer expands exploration nodes by applying the domination
// relations in priority order: strict rows, strict columns, weak,
// very weak. A Reducer is not safe for concurrent use.
type Reducer struct {
	pairs *pairSlicePool
}

// NewReducer returns a Reducer with its own buffer pool.
func NewReducer() *Reducer {
	return &Reducer{pairs: &pairSlicePool{}}
}

// Expand returns the children of node. If there are none, node is
// terminal and its result is set before returning.
//
// Strict domination eliminates only the first dominated strategy found,
// rows before columns, producing a single child. Weak and very weak
// domination are order dependent, so one child is produced for every
// dominated row and then every dominated column.
func (r *Reducer) Expand(node *Node) []*Node {
	m := node.matrix
	for _, role := range [...]Role{RowPlayer, ColPlayer} {
		pairs := appendDominatedPairs(r.pairs.alloc(), m, node.Rows, node.Cols, role, Strict)
		if len(pairs) > 0 {
			p := pairs[0]
			r.pairs.free(pairs)
			return []*Node{node.child(Move{
				Eliminated: p.Dominated,
				Role:       role,
				Dominator:  p.Dominator,
				Kind:       Strict,
			})}
		}

		r.pairs.free(pairs)
	}

	for _, kind := range [...]Kind{Weak, VeryWeak} {
		if children := r.branch(node, kind); len(children) > 0 {
			return children
		}
	}

	node.classify()
	return nil
}

// branch returns one child per strategy dominated under kind, for both players.
func (r *Reducer) branch(node *Node, kind Kind) []*Node {
	m := node.matrix
	rowPairs := appendDominatedPairs(r.pairs.alloc(), m, node.Rows, node.Cols, RowPlayer, kind)
	colPairs := appendDominatedPairs(r.pairs.alloc(), m, node.Rows, node.Cols, ColPlayer, kind)
	defer r.pairs.free(rowPairs)
	defer r.pairs.free(colPairs)

	n := len(rowPairs) + len(colPairs)
	if n == 0 {
		return nil
	}

	children := make([]*Node, 0, n)
	for _, p := range rowPairs {
		children = append(children, node.child(Move{
			Eliminated: p.Dominated,
			Role:       RowPlayer,
			Dominator:  p.Dominator,
			Kind:       kind,
		}))
	}

	for _, p := range colPairs {
		children = append(children, node.child(Move{
			Eliminated: p.Dominated,
			Role:       ColPlayer,
			Dominator:  p.Dominator,
			Kind:       kind,
		}))
	}

	return children
}
