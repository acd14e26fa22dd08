package games

import (
	"context"
	"testing"

	"github.com/pkg/errors"

	"github.com/timpalpant/go-ieds"
)

func solve(t *testing.T, name string) []ieds.Solution {
	m, err := Get(name)
	if err != nil {
		t.Fatal(err)
	}

	root, err := ieds.NewRoot(m, m.AllRows(), m.AllCols())
	if err != nil {
		t.Fatal(err)
	}

	log := ieds.NewLog()
	if _, err := ieds.NewExplorer(ieds.Params{}, log).Run(context.Background(), root, nil); err != nil {
		t.Fatal(err)
	}

	unique, err := ieds.UniqueSolutions(log)
	if err != nil {
		t.Fatal(err)
	}

	return unique
}

func TestGames_Solutions(t *testing.T) {
	testCases := []struct {
		name     string
		expected []string
	}{
		{"prisoners-dilemma", []string{"EQUILIBRIUM: R1, C1"}},
		{"matching-pennies", []string{"DEAD END: Matrix size 2x2"}},
		{"coordination", []string{"DEAD END: Matrix size 2x2"}},
		{"battle-of-sexes", []string{"DEAD END: Matrix size 2x2"}},
		{"stag-hunt", []string{"DEAD END: Matrix size 2x2"}},
		{"chicken", []string{"DEAD END: Matrix size 2x2"}},
		{"iterated", []string{"EQUILIBRIUM: R0, C1"}},
	}

	for _, tc := range testCases {
		unique := solve(t, tc.name)
		if len(unique) != len(tc.expected) {
			t.Errorf("%s: expected %d solutions, got %d", tc.name, len(tc.expected), len(unique))
			continue
		}

		for i, s := range unique {
			if got := s.Node.Result().String(); got != tc.expected[i] {
				t.Errorf("%s: expected %s, got %s", tc.name, tc.expected[i], got)
			}
		}
	}
}

func TestGames_OrderDependent(t *testing.T) {
	unique := solve(t, "order-dependent")
	if len(unique) < 2 {
		t.Errorf("expected at least 2 distinct equilibria, got %d", len(unique))
	}
}

func TestGames_All(t *testing.T) {
	for _, name := range Names() {
		if _, err := Get(name); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}

	if _, err := Get("poker"); errors.Cause(err) != ErrUnknownGame {
		t.Errorf("expected ErrUnknownGame, got %v", err)
	}
}
