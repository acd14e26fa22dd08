package ieds

import (
	"strings"

	"github.com/pkg/errors"
)

// DefaultBatchSize is the number of expansions performed between
// yields when Params.BatchSize is not set.
const DefaultBatchSize = 25

// Order is the order in which pending nodes are expanded.
type Order int

const (
	// DepthFirst expands the most recently created node first (LIFO).
	DepthFirst Order = iota
	// BreadthFirst expands the oldest pending node first (FIFO).
	BreadthFirst
)

var orderStr = [...]string{
	"dfs",
	"bfs",
}

func (o Order) String() string {
	return orderStr[o]
}

// ParseOrder parses "dfs" or "bfs".
func ParseOrder(s string) (Order, error) {
	for i, name := range orderStr {
		if strings.EqualFold(s, name) {
			return Order(i), nil
		}
	}

	return DepthFirst, errors.Errorf("ieds: unknown exploration order %q", s)
}

// Params are the configuration options for an Explorer.
// An empty Params struct is valid and corresponds to a depth-first
// search yielding every DefaultBatchSize expansions.
type Params struct {
	// BatchSize is the number of nodes expanded between yields.
	BatchSize int
	// Order selects the frontier discipline.
	Order Order
}

func (p Params) batchSize() int {
	if p.BatchSize <= 0 {
		return DefaultBatchSize
	}

	return p.BatchSize
}
