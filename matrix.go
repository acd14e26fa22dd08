package ieds

import (
	"bytes"
	"encoding/gob"
	"math"

	"github.com/pkg/errors"
)

var (
	ErrEmptyMatrix  = errors.New("ieds: matrix has no rows or no columns")
	ErrRaggedMatrix = errors.New("ieds: matrix rows have different lengths")
	ErrNonFinite    = errors.New("ieds: payoff is NaN or infinite")
)

// Payoff is the pair of payoffs (row player, column player) for one cell.
type Payoff [2]float64

func (p Payoff) finite() bool {
	for _, x := range p {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}

	return true
}

// Matrix is an immutable payoff matrix for a two-player game.
// It is shared by every node of a search and must not be modified.
type Matrix struct {
	nRows, nCols int
	cells        []Payoff
}

// NewMatrix returns a Matrix with a copy of the given payoffs.
// All rows must have the same, non-zero, number of columns, and every
// payoff must be finite.
func NewMatrix(payoffs [][]Payoff) (*Matrix, error) {
	if len(payoffs) == 0 || len(payoffs[0]) == 0 {
		return nil, ErrEmptyMatrix
	}

	nCols := len(payoffs[0])
	cells := make([]Payoff, 0, len(payoffs)*nCols)
	for i, row := range payoffs {
		if len(row) != nCols {
			return nil, errors.Wrapf(ErrRaggedMatrix,
				"row %d has %d columns, expected %d", i, len(row), nCols)
		}

		for j, p := range row {
			if !p.finite() {
				return nil, errors.Wrapf(ErrNonFinite, "row %d, column %d: %v", i, j, p)
			}
		}

		cells = append(cells, row...)
	}

	return &Matrix{
		nRows: len(payoffs),
		nCols: nCols,
		cells: cells,
	}, nil
}

// MustMatrix is like NewMatrix but panics if the payoffs are malformed.
func MustMatrix(payoffs [][]Payoff) *Matrix {
	m, err := NewMatrix(payoffs)
	if err != nil {
		panic(err)
	}

	return m
}

// NumRows returns the number of row strategies in the unreduced game.
func (m *Matrix) NumRows() int {
	return m.nRows
}

// NumCols returns the number of column strategies in the unreduced game.
func (m *Matrix) NumCols() int {
	return m.nCols
}

// At returns the payoff pair at the given row and column of the full matrix.
func (m *Matrix) At(row, col int) Payoff {
	return m.cells[row*m.nCols+col]
}

// payoff returns the payoff to role when it plays own against opp.
func (m *Matrix) payoff(role Role, own, opp int) float64 {
	if role == RowPlayer {
		return m.cells[own*m.nCols+opp][RowPlayer]
	}

	return m.cells[opp*m.nCols+own][ColPlayer]
}

// AllRows returns the full row index range 0..NumRows()-1.
func (m *Matrix) AllRows() []int {
	return indexRange(m.nRows)
}

// AllCols returns the full column index range 0..NumCols()-1.
func (m *Matrix) AllCols() []int {
	return indexRange(m.nCols)
}

func indexRange(n int) []int {
	result := make([]int, n)
	for i := range result {
		result[i] = i
	}

	return result
}

type matrixRecord struct {
	NumRows, NumCols int
	Cells            []Payoff
}

// GobEncode implements gob.GobEncoder.
func (m *Matrix) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	rec := matrixRecord{NumRows: m.nRows, NumCols: m.nCols, Cells: m.cells}
	if err := enc.Encode(&rec); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// GobDecode implements gob.GobDecoder.
func (m *Matrix) GobDecode(buf []byte) error {
	r := bytes.NewReader(buf)
	dec := gob.NewDecoder(r)

	var rec matrixRecord
	if err := dec.Decode(&rec); err != nil {
		return err
	}

	if rec.NumRows <= 0 || rec.NumCols <= 0 {
		return ErrEmptyMatrix
	}

	if len(rec.Cells) != rec.NumRows*rec.NumCols {
		return errors.Wrapf(ErrRaggedMatrix, "decoded %d cells for a %dx%d matrix",
			len(rec.Cells), rec.NumRows, rec.NumCols)
	}

	for i, p := range rec.Cells {
		if !p.finite() {
			return errors.Wrapf(ErrNonFinite, "decoded cell %d: %v", i, p)
		}
	}

	m.nRows, m.nCols, m.cells = rec.NumRows, rec.NumCols, rec.Cells
	return nil
}
