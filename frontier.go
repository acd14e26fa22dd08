package ieds

// frontier holds the nodes that are waiting to be expanded.
type frontier struct {
	order Order
	nodes []*Node
	head  int // first pending index when breadth-first
}

func newFrontier(order Order) *frontier {
	return &frontier{order: order}
}

func (f *frontier) len() int {
	return len(f.nodes) - f.head
}

func (f *frontier) push(n *Node) {
	f.nodes = append(f.nodes, n)
}

func (f *frontier) pop() *Node {
	if f.order == BreadthFirst {
		n := f.nodes[f.head]
		f.nodes[f.head] = nil
		f.head++
		if f.head == len(f.nodes) {
			f.nodes = f.nodes[:0]
			f.head = 0
		}

		return n
	}

	m := len(f.nodes)
	n := f.nodes[m-1]
	f.nodes[m-1] = nil
	f.nodes = f.nodes[:m-1]
	return n
}

// discard drops all pending nodes.
func (f *frontier) discard() {
	for i := range f.nodes {
		f.nodes[i] = nil
	}

	f.nodes = f.nodes[:0]
	f.head = 0
}
