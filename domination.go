package ieds

// StrictlyDominatedPairs returns each active strategy of role that is
// strictly dominated: some other active strategy pays strictly more
// against every active opponent strategy.
//
// Only the first dominator found, in active-set order, is recorded for
// each dominated strategy. Pairs are returned in active-set order of
// the dominated strategy.
func StrictlyDominatedPairs(m *Matrix, rows, cols []int, role Role) []Pair {
	return appendDominatedPairs(nil, m, rows, cols, role, Strict)
}

// WeaklyDominatedPairs is like StrictlyDominatedPairs, but a dominator need
// only pay at least as much against every opponent strategy and strictly
// more against at least one.
func WeaklyDominatedPairs(m *Matrix, rows, cols []int, role Role) []Pair {
	return appendDominatedPairs(nil, m, rows, cols, role, Weak)
}

// VeryWeaklyDominatedPairs is like StrictlyDominatedPairs, but a dominator
// need only pay at least as much against every opponent strategy.
// Payoff-identical strategies dominate each other under this relation.
func VeryWeaklyDominatedPairs(m *Matrix, rows, cols []int, role Role) []Pair {
	return appendDominatedPairs(nil, m, rows, cols, role, VeryWeak)
}

// DominatedPairs dispatches to the predicate for the given kind.
func DominatedPairs(m *Matrix, rows, cols []int, role Role, kind Kind) []Pair {
	return appendDominatedPairs(nil, m, rows, cols, role, kind)
}

func appendDominatedPairs(dst []Pair, m *Matrix, rows, cols []int, role Role, kind Kind) []Pair {
	own, opp := rows, cols
	if role == ColPlayer {
		own, opp = cols, rows
	}

	for _, a := range own {
		for _, b := range own {
			if a == b {
				continue
			}

			if dominates(m, role, b, a, opp, kind) {
				dst = append(dst, Pair{Dominated: a, Dominator: b})
				break
			}
		}
	}

	return dst
}

// dominates returns true if strategy b dominates strategy a for role
// under the given relation, against the active opponent strategies.
func dominates(m *Matrix, role Role, b, a int, opp []int, kind Kind) bool {
	anyBetter := false
	for _, c := range opp {
		pa := m.payoff(role, a, c)
		pb := m.payoff(role, b, c)
		switch {
		case pb > pa:
			anyBetter = true
		case kind == Strict:
			return false
		case pb < pa:
			return false
		}
	}

	if kind == Weak {
		return anyBetter
	}

	return true
}
