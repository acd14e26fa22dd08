package ieds

import (
	"bytes"
	"reflect"
	"testing"
)

func TestSaveLoadSnapshot(t *testing.T) {
	log, _ := explore(t, Params{}, orderDependentGame)

	var buf bytes.Buffer
	if err := SaveSnapshot(&buf, orderDependentGame, log); err != nil {
		t.Fatal(err)
	}

	m, loaded, err := LoadSnapshot(&buf)
	if err != nil {
		t.Fatal(err)
	}

	if m.NumRows() != 3 || m.NumCols() != 2 || m.At(1, 1) != orderDependentGame.At(1, 1) {
		t.Errorf("matrix not restored: %dx%d", m.NumRows(), m.NumCols())
	}

	before, after := log.Nodes(), loaded.Nodes()
	if len(before) != len(after) {
		t.Fatalf("expected %d nodes, got %d", len(before), len(after))
	}

	for i := range before {
		if before[i].Label() != after[i].Label() || before[i].Result() != after[i].Result() {
			t.Errorf("node %d: expected %v, got %v", i, before[i], after[i])
		}

		if !reflect.DeepEqual(before[i].Rows, after[i].Rows) || !reflect.DeepEqual(before[i].Cols, after[i].Cols) {
			t.Errorf("node %d: strategies not restored", i)
		}

		if after[i].Matrix() != m {
			t.Errorf("node %d: matrix not attached", i)
		}
	}

	if !reflect.DeepEqual(outcomes(before), outcomes(after)) {
		t.Error("ranked outcomes differ after reload")
	}
}

func TestLoadSnapshot_Corrupt(t *testing.T) {
	if _, _, err := LoadSnapshot(bytes.NewBufferString("not a snapshot")); err == nil {
		t.Error("expected error")
	}
}
