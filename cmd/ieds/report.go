package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/timpalpant/go-ieds"
	"github.com/timpalpant/go-ieds/matrixio"
	"github.com/timpalpant/go-ieds/tree"
)

type solution struct {
	ID     int    `json:"id"`
	Path   string `json:"path"`
	Moves  int    `json:"moves"`
	Rows   []int  `json:"rows"`
	Cols   []int  `json:"cols"`
	Result string `json:"result"`
	Count  int    `json:"count,omitempty"`

	node *ieds.Node
}

type report struct {
	Status     string     `json:"status,omitempty"`
	Nodes      int        `json:"nodes"`
	Expanded   int        `json:"expanded,omitempty"`
	Terminal   int        `json:"terminal"`
	Equilibria int        `json:"equilibria"`
	DeadEnds   int        `json:"dead_ends"`
	Unique     int        `json:"unique"`
	Pending    int        `json:"pending"`
	MaxDepth   int        `json:"max_depth"`
	BestPath   []string   `json:"best_path,omitempty"` // Reduced game sizes leading to the first solution.
	Solutions  []solution `json:"solutions"`
}

// buildReport ranks the terminal nodes of log. stats may be nil when
// reporting on a saved snapshot.
func buildReport(log ieds.NodeLog, stats *ieds.Stats, top int, unique bool) (*report, error) {
	ranked, err := ieds.RankedSolutions(log)
	if err != nil {
		return nil, err
	}

	dedup := ieds.DeduplicateSolutions(ranked)
	r := &report{
		Nodes:    log.Len(),
		Terminal: len(ranked),
		Unique:   len(dedup),
	}

	for _, node := range ranked {
		if node.Result().Type == ieds.Equilibrium {
			r.Equilibria++
		} else {
			r.DeadEnds++
		}
	}

	if stats != nil {
		r.Status = stats.Status.String()
		r.Expanded = stats.Expanded
	}

	if unique {
		for _, s := range dedup {
			r.Solutions = append(r.Solutions, newSolution(s.Node, s.Count))
		}
	} else {
		for _, node := range ranked {
			r.Solutions = append(r.Solutions, newSolution(node, 0))
		}
	}

	if top > 0 && len(r.Solutions) > top {
		r.Solutions = r.Solutions[:top]
	}

	if err := r.addTreeShape(log); err != nil {
		return nil, err
	}

	return r, nil
}

// addTreeShape counts the nodes left unexpanded by a cancelled search and
// traces the path to the best solution.
func (r *report) addTreeShape(log ieds.NodeLog) error {
	depth, err := tree.MaxDepth(log)
	if err != nil {
		return err
	}

	r.MaxDepth = depth
	children, err := tree.Children(log)
	if err != nil {
		return err
	}

	err = tree.Visit(log, func(node *ieds.Node) {
		if !node.IsTerminal() && len(children[node.ID]) == 0 {
			r.Pending++
		}
	})
	if err != nil || len(r.Solutions) == 0 {
		return err
	}

	chain, err := tree.Ancestors(log, r.Solutions[0].ID)
	if err != nil {
		return err
	}

	for _, node := range chain {
		r.BestPath = append(r.BestPath, fmt.Sprintf("%dx%d", len(node.Rows), len(node.Cols)))
	}

	return nil
}

func newSolution(node *ieds.Node, count int) solution {
	return solution{
		ID:     node.ID,
		Path:   node.Label(),
		Moves:  node.Depth(),
		Rows:   node.Rows,
		Cols:   node.Cols,
		Result: node.Result().String(),
		Count:  count,
		node:   node,
	}
}

func (r *report) writeJSON(w io.Writer) error {
	enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func (r *report) writeText(w io.Writer) error {
	var buf bytes.Buffer
	if r.Status != "" {
		fmt.Fprintf(&buf, "Search %s: %d nodes, %d expanded\n", r.Status, r.Nodes, r.Expanded)
	} else {
		fmt.Fprintf(&buf, "Snapshot: %d nodes\n", r.Nodes)
	}

	fmt.Fprintf(&buf, "%d terminal paths (%d equilibria, %d dead ends), %d unique reduced games\n",
		r.Terminal, r.Equilibria, r.DeadEnds, r.Unique)
	if r.Pending > 0 {
		fmt.Fprintf(&buf, "%d nodes left unexpanded\n", r.Pending)
	}

	if len(r.BestPath) > 0 {
		fmt.Fprintf(&buf, "Best path: %s\n", strings.Join(r.BestPath, " -> "))
	}
	for i, s := range r.Solutions {
		fmt.Fprintf(&buf, "\n#%d %s", i+1, s.Result)
		if s.Count > 0 {
			fmt.Fprintf(&buf, " (reached by %d paths)", s.Count)
		}

		fmt.Fprintf(&buf, "\n  %s\n", s.Path)
		if err := matrixio.Format(&buf, s.node.Matrix(), s.Rows, s.Cols); err != nil {
			return err
		}
	}

	_, err := w.Write(buf.Bytes())
	return err
}
