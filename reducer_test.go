package ieds

import (
	"testing"
)

func mustRoot(t testing.TB, m *Matrix) *Node {
	root, err := NewRoot(m, m.AllRows(), m.AllCols())
	if err != nil {
		t.Fatal(err)
	}

	return root
}

func TestExpand_StrictTakesFirstPairOnly(t *testing.T) {
	// Rows 0 and 2 are both strictly dominated by row 1.
	m := MustMatrix([][]Payoff{
		{{0, 0}, {0, 0}},
		{{2, 0}, {2, 0}},
		{{1, 0}, {1, 0}},
	})

	children := NewReducer().Expand(mustRoot(t, m))
	if len(children) != 1 {
		t.Fatalf("expected 1 child, got %d", len(children))
	}

	expected := Move{Eliminated: 0, Role: RowPlayer, Dominator: 1, Kind: Strict}
	child := children[0]
	if child.Path[0] != expected {
		t.Errorf("expected move %v, got %v", expected, child.Path[0])
	}

	if len(child.Rows) != 2 || child.Rows[0] != 1 || child.Rows[1] != 2 {
		t.Errorf("expected rows [1 2], got %v", child.Rows)
	}

	if len(child.Cols) != 2 {
		t.Errorf("expected columns unchanged, got %v", child.Cols)
	}
}

func TestExpand_StrictRowsBeforeColumns(t *testing.T) {
	// Row 0 is strictly dominated and so is column 0.
	m := MustMatrix([][]Payoff{
		{{0, 0}, {0, 1}},
		{{1, 0}, {1, 1}},
	})

	children := NewReducer().Expand(mustRoot(t, m))
	if len(children) != 1 {
		t.Fatalf("expected 1 child, got %d", len(children))
	}

	if mv := children[0].Path[0]; mv.Role != RowPlayer || mv.Kind != Strict {
		t.Errorf("expected a strict row elimination, got %v", mv)
	}
}

func TestExpand_StrictColumn(t *testing.T) {
	m := MustMatrix([][]Payoff{
		{{1, 0}, {0, 1}},
		{{0, 0}, {1, 1}},
	})

	children := NewReducer().Expand(mustRoot(t, m))
	if len(children) != 1 {
		t.Fatalf("expected 1 child, got %d", len(children))
	}

	expected := Move{Eliminated: 0, Role: ColPlayer, Dominator: 1, Kind: Strict}
	if children[0].Path[0] != expected {
		t.Errorf("expected move %v, got %v", expected, children[0].Path[0])
	}
}

func TestExpand_WeakBranchesPerPair(t *testing.T) {
	root := mustRoot(t, orderDependentGame)
	children := NewReducer().Expand(root)
	if len(children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(children))
	}

	for i, eliminated := range []int{0, 2} {
		mv := children[i].Path[0]
		if mv.Kind != Weak || mv.Role != RowPlayer || mv.Eliminated != eliminated {
			t.Errorf("child %d: unexpected move %v", i, mv)
		}

		if children[i].ParentID != root.ID {
			t.Errorf("child %d: expected parent %d, got %d", i, root.ID, children[i].ParentID)
		}
	}

	if root.IsTerminal() {
		t.Error("expected root with children to remain pending")
	}
}

func TestExpand_VeryWeakOnlyWhenNothingElse(t *testing.T) {
	root, err := NewRoot(tiedGame, []int{0, 1}, []int{0})
	if err != nil {
		t.Fatal(err)
	}

	children := NewReducer().Expand(root)
	if len(children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(children))
	}

	for _, child := range children {
		if mv := child.Path[0]; mv.Kind != VeryWeak {
			t.Errorf("expected very weak elimination, got %v", mv)
		}
	}
}

func TestExpand_Terminal(t *testing.T) {
	r := NewReducer()
	root, err := NewRoot(strictGame, []int{1}, []int{1})
	if err != nil {
		t.Fatal(err)
	}

	if children := r.Expand(root); len(children) != 0 {
		t.Fatalf("expected no children, got %d", len(children))
	}

	expected := Result{Type: Equilibrium, Row: 1, Col: 1, NumRows: 1, NumCols: 1}
	if root.Result() != expected {
		t.Errorf("expected %v, got %v", expected, root.Result())
	}

	coordination := MustMatrix([][]Payoff{
		{{2, 2}, {0, 0}},
		{{0, 0}, {1, 1}},
	})

	root = mustRoot(t, coordination)
	if children := r.Expand(root); len(children) != 0 {
		t.Fatalf("expected no children, got %d", len(children))
	}

	if res := root.Result(); res.Type != DeadEnd || res.NumRows != 2 || res.NumCols != 2 {
		t.Errorf("expected 2x2 dead end, got %v", res)
	}
}
