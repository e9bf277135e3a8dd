package sudoku

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSolveEmpty9x9 is seed scenario S4: an empty 9x9 board has a valid
// completion.
func TestSolveEmpty9x9(t *testing.T) {
	m, err := NewEmptySolver(9)
	require.NoError(t, err)

	require.True(t, m.Solve())
	require.True(t, m.Board().IsSolved())
	assert.NoError(t, m.Board().Validate())
}

// TestSolveWorldsHardestSudoku is seed scenario S5.
func TestSolveWorldsHardestSudoku(t *testing.T) {
	puzzle := "8........" +
		"..36....." +
		".7..9.2.." +
		".5...7..." +
		"....457.." +
		"...1....3" +
		"..1....68" +
		"..8.5...1" +
		".9.....4."

	m, err := NewSolverFromString(puzzle)
	require.NoError(t, err)

	require.True(t, m.Solve())
	assert.NoError(t, m.Board().Validate())

	// Every given must retain its original digit.
	b, err := BoardFromString(puzzle)
	require.NoError(t, err)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.IsGiven(r, c) {
				assert.Equal(t, b.Get(r, c), m.Board().Get(r, c))
			}
		}
	}
}

// TestSolve16x16MultiDigit is seed scenario S6: a pipe-delimited 16x16
// puzzle (https://gist.github.com/vaskoz/8212615, as carried by
// sudoku_main.cpp) must solve to a valid, given-consistent completion.
func TestSolve16x16MultiDigit(t *testing.T) {
	puzzle := `
|  . 15  .  1 |  .  2 10 14 | 12  .  .  . |  .  .  .  . |
|  .  6  3 16 | 12  .  8  4 | 14 15  1  . |  2  .  .  . |
| 14  .  9  7 | 11  3 15  . |  .  .  .  . |  .  .  .  . |
|  4 13  2 12 |  .  .  .  . |  6  .  .  . |  . 15  .  . |
---------------------------------------------------------
|  .  .  .  . | 14  1 11  7 |  3  5 10  . |  .  8  . 12 |
|  3 16  .  . |  2  4  .  . |  . 14  7 13 |  .  .  5 15 |
| 11  .  5  . |  .  .  .  . |  .  9  4  . |  .  6  .  . |
|  .  .  .  . | 13  . 16  5 | 15  .  . 12 |  .  .  .  . |
---------------------------------------------------------
|  .  .  .  . |  9  .  1 12 |  .  8  3 10 | 11  . 15  . |
|  2 12  . 11 |  .  . 14  3 |  5  4  .  . |  .  .  9  . |
|  6  3  .  4 |  .  . 13  . |  . 11  9  1 |  . 12 16  2 |
|  .  . 10  9 |  .  .  .  . |  .  . 12  . |  8  .  6  7 |
---------------------------------------------------------
| 12  8  .  . | 16  .  . 10 |  . 13  .  . |  .  5  .  . |
|  5  .  .  . |  3  .  4  6 |  .  1 15  . |  .  .  .  . |
|  .  9  1  6 |  . 14  . 11 |  .  .  2  . |  .  . 10  8 |
|  . 14  .  . |  . 13  9  . |  4 12 11  8 |  .  .  2  . |
`

	m, err := NewSolverFromString(puzzle)
	require.NoError(t, err)
	require.True(t, m.Solve())
	assert.NoError(t, m.Board().Validate())

	given, err := BoardFromString(puzzle)
	require.NoError(t, err)
	require.Equal(t, 16, given.Side)
	for r := 0; r < 16; r++ {
		for c := 0; c < 16; c++ {
			if given.IsGiven(r, c) {
				assert.Equal(t, given.Get(r, c), m.Board().Get(r, c))
			}
		}
	}
}

func TestBoardFromStringRejectsNonSquareCellCount(t *testing.T) {
	_, err := BoardFromString("123") // 3 cells, not a perfect square
	assert.Error(t, err)
}

func TestEmptySolverRejectsNonSquareSide(t *testing.T) {
	_, err := NewEmptySolver(10)
	assert.Error(t, err)
}

func TestMatrixInfoReportsShape(t *testing.T) {
	m, err := NewEmptySolver(9)
	require.NoError(t, err)

	info := m.MatrixInfo()
	assert.Equal(t, 324, info.Columns)
}
