// Package matrixio reads and writes payoff matrices in the plain text
// format used for game files: one row per line, cells separated by ';',
// each cell a parenthesized pair of payoffs, e.g.
//
//	(3,3);(0,5)
//	(5,0);(1,1)
package matrixio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/timpalpant/go-ieds"
)

// Parse reads a payoff matrix. Blank lines are ignored and parentheses
// around cells are optional.
func Parse(r io.Reader) (*ieds.Matrix, error) {
	var payoffs [][]ieds.Payoff
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		row, err := parseLine(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo)
		}

		payoffs = append(payoffs, row)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return ieds.NewMatrix(payoffs)
}

func parseLine(line string) ([]ieds.Payoff, error) {
	cells := strings.Split(line, ";")
	row := make([]ieds.Payoff, 0, len(cells))
	for i, cell := range cells {
		p, err := parseCell(cell)
		if err != nil {
			return nil, errors.Wrapf(err, "cell %d", i)
		}

		row = append(row, p)
	}

	return row, nil
}

func parseCell(cell string) (ieds.Payoff, error) {
	var p ieds.Payoff
	cell = strings.NewReplacer("(", "", ")", "").Replace(cell)
	parts := strings.Split(cell, ",")
	if len(parts) != 2 {
		return p, errors.Errorf("expected 2 payoffs, got %d in %q", len(parts), cell)
	}

	for i, part := range parts {
		x, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return p, errors.Wrapf(err, "payoff %d", i)
		}

		p[i] = x
	}

	return p, nil
}

// Format writes the reduced game with the given active strategies in the
// format read by Parse.
func Format(w io.Writer, m *ieds.Matrix, rows, cols []int) error {
	bw := bufio.NewWriter(w)
	for _, r := range rows {
		for j, c := range cols {
			if j > 0 {
				bw.WriteByte(';')
			}

			p := m.At(r, c)
			fmt.Fprintf(bw, "(%s,%s)", formatFloat(p[0]), formatFloat(p[1]))
		}

		bw.WriteByte('\n')
	}

	return bw.Flush()
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
