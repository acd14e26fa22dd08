package ieds

import (
	"testing"
)

func terminalNode(id int, rows, cols []int, depth int) *Node {
	n := &Node{
		ID:       id,
		ParentID: 0,
		Path:     make([]Move, depth),
		Rows:     rows,
		Cols:     cols,
	}

	n.classify()
	return n
}

func TestRankSolutions(t *testing.T) {
	pending := &Node{ID: 0, ParentID: -1, Rows: []int{0, 1}, Cols: []int{0, 1}}
	deadSmall := terminalNode(1, []int{0, 1}, []int{0}, 1)
	deadLarge := terminalNode(2, []int{0, 1}, []int{0, 1}, 0)
	eqShort := terminalNode(3, []int{0}, []int{1}, 2)
	eqLong := terminalNode(4, []int{1}, []int{1}, 3)
	eqLongTie := terminalNode(5, []int{0}, []int{0}, 3)

	ranked := RankSolutions([]*Node{pending, deadLarge, deadSmall, eqShort, eqLong, eqLongTie})
	expected := []int{4, 5, 3, 1, 2}
	if len(ranked) != len(expected) {
		t.Fatalf("expected %d nodes, got %d", len(expected), len(ranked))
	}

	for i, id := range expected {
		if ranked[i].ID != id {
			t.Errorf("position %d: expected node %d, got %d", i, id, ranked[i].ID)
		}
	}
}

func TestDeduplicateSolutions(t *testing.T) {
	a := terminalNode(1, []int{2, 0}, []int{1}, 3)
	b := terminalNode(2, []int{0, 2}, []int{1}, 2)
	c := terminalNode(3, []int{0, 2}, []int{1}, 2)
	d := terminalNode(4, []int{1}, []int{1}, 3)

	unique := DeduplicateSolutions([]*Node{a, d, b, c})
	if len(unique) != 2 {
		t.Fatalf("expected %d groups, got %d", 2, len(unique))
	}

	if unique[0].Count != 3 || unique[0].Node != b {
		t.Errorf("expected node %d x3, got node %d x%d", b.ID, unique[0].Node.ID, unique[0].Count)
	}

	if unique[1].Count != 1 || unique[1].Node != d {
		t.Errorf("expected node %d x1, got node %d x%d", d.ID, unique[1].Node.ID, unique[1].Count)
	}
}

func TestRankedSolutions_EmptyLog(t *testing.T) {
	ranked, err := RankedSolutions(NewLog())
	if err != nil {
		t.Fatal(err)
	}

	if len(ranked) != 0 {
		t.Errorf("expected no solutions, got %d", len(ranked))
	}
}
