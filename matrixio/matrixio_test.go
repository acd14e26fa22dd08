package matrixio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timpalpant/go-ieds"
)

func TestParse(t *testing.T) {
	input := `
(3, 3); (0,5)

(5,0);(1.5,-1)
`
	m, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 2, m.NumRows())
	assert.Equal(t, 2, m.NumCols())
	assert.Equal(t, ieds.Payoff{0, 5}, m.At(0, 1))
	assert.Equal(t, ieds.Payoff{1.5, -1}, m.At(1, 1))
}

func TestParse_WithoutParentheses(t *testing.T) {
	m, err := Parse(strings.NewReader("1,2;3,4\n"))
	require.NoError(t, err)
	assert.Equal(t, ieds.Payoff{3, 4}, m.At(0, 1))
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		input    string
		contains string
		cause    error
	}{
		{"", "", ieds.ErrEmptyMatrix},
		{"\n  \n", "", ieds.ErrEmptyMatrix},
		{"(1,2);(3,4)\n(5,6)", "", ieds.ErrRaggedMatrix},
		{"(1,2);(3)", "line 1: cell 1", nil},
		{"(1,2)\n(x,2)", "line 2: cell 0: payoff 0", nil},
		{"(NaN,1);(0,0)\n(1,1);(1,1)", "row 0, column 0", ieds.ErrNonFinite},
		{"(1,1);(0,+Inf)", "row 0, column 1", ieds.ErrNonFinite},
		{"(1,1)\n(-inf,0)", "row 1, column 0", ieds.ErrNonFinite},
	}

	for _, tc := range testCases {
		_, err := Parse(strings.NewReader(tc.input))
		require.Error(t, err, tc.input)
		if tc.cause != nil {
			assert.Equal(t, tc.cause, errors.Cause(err), tc.input)
		}
		assert.Contains(t, err.Error(), tc.contains)
	}
}

func TestFormat_RoundTrip(t *testing.T) {
	m := ieds.MustMatrix([][]ieds.Payoff{
		{{1, 0}, {1, 2}, {0, 1}},
		{{0, 3}, {0.25, 1}, {2, 0}},
	})

	var buf bytes.Buffer
	require.NoError(t, Format(&buf, m, []int{1}, []int{2, 1}))
	assert.Equal(t, "(2,0);(0.25,1)\n", buf.String())

	buf.Reset()
	require.NoError(t, Format(&buf, m, m.AllRows(), m.AllCols()))
	parsed, err := Parse(&buf)
	require.NoError(t, err)
	for r := 0; r < m.NumRows(); r++ {
		for c := 0; c < m.NumCols(); c++ {
			assert.Equal(t, m.At(r, c), parsed.At(r, c))
		}
	}
}
