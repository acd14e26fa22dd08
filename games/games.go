// Package games is a catalogue of classic two-player matrix games.
//
// Payoffs follow the usual textbook presentation; row strategies are
// listed top to bottom and column strategies left to right.
package games

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/timpalpant/go-ieds"
)

// ErrUnknownGame is returned by Get for a name not in the catalogue.
var ErrUnknownGame = errors.New("games: unknown game")

var catalogue = map[string][][]ieds.Payoff{
	// Cooperate, Defect. Defecting strictly dominates for both players.
	"prisoners-dilemma": {
		{{3, 3}, {0, 5}},
		{{5, 0}, {1, 1}},
	},
	// Heads, Tails. Nothing is dominated.
	"matching-pennies": {
		{{1, -1}, {-1, 1}},
		{{-1, 1}, {1, -1}},
	},
	"coordination": {
		{{2, 2}, {0, 0}},
		{{0, 0}, {1, 1}},
	},
	// Opera, Football.
	"battle-of-sexes": {
		{{2, 1}, {0, 0}},
		{{0, 0}, {1, 2}},
	},
	// Stag, Hare.
	"stag-hunt": {
		{{4, 4}, {0, 3}},
		{{3, 0}, {3, 3}},
	},
	// Swerve, Straight.
	"chicken": {
		{{0, 0}, {-1, 1}},
		{{1, -1}, {-10, -10}},
	},
	// Top and Bottom are both weakly dominated by Middle; which one goes
	// first decides which equilibria survive.
	"order-dependent": {
		{{1, 1}, {0, 0}},
		{{1, 1}, {2, 1}},
		{{0, 0}, {2, 1}},
	},
	// Solved by three rounds of strict domination: Right, then Down,
	// then Left.
	"iterated": {
		{{1, 0}, {1, 2}, {0, 1}},
		{{0, 3}, {0, 1}, {2, 0}},
	},
}

// Names returns the names of all games in the catalogue, sorted.
func Names() []string {
	result := make([]string, 0, len(catalogue))
	for name := range catalogue {
		result = append(result, name)
	}

	sort.Strings(result)
	return result
}

// Get returns the payoff matrix of the named game.
func Get(name string) (*ieds.Matrix, error) {
	payoffs, ok := catalogue[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownGame, "%q", name)
	}

	return ieds.NewMatrix(payoffs)
}
