// Package sudoku expresses a generalized N x N Sudoku puzzle (N a perfect
// square) as an exact-cover instance for internal/dlx, and provides the
// parsing and printing needed to exercise it from the command line.
package sudoku

import "math"

// Board holds the state of an N x N Sudoku grid. Values are stored
// zero-based (-1 for unknown) and rendered one-based by the printer.
type Board struct {
	Side int
	box  int // side of one N/box x N/box box; Side == box*box

	values []int8
	given  []bool
}

// NewEmptyBoard allocates a Board of the given side, which must be a perfect
// square (9, 16, 25, 36, 49, ...).
func NewEmptyBoard(side int) (*Board, error) {
	box, ok := integerSqrt(side)
	if !ok {
		return nil, puzzleError("side %d is not a perfect square", side)
	}

	total := side * side
	b := &Board{
		Side:   side,
		box:    box,
		values: make([]int8, total),
		given:  make([]bool, total),
	}
	for i := range b.values {
		b.values[i] = -1
	}
	return b, nil
}

func integerSqrt(n int) (int, bool) {
	if n <= 0 {
		return 0, false
	}
	r := int(math.Sqrt(float64(n)))
	for _, candidate := range []int{r - 1, r, r + 1} {
		if candidate > 0 && candidate*candidate == n {
			return candidate, true
		}
	}
	return 0, false
}

func (b *Board) index(r, c int) int {
	return r*b.Side + c
}

// Get returns the zero-based value at (r, c), or -1 if unknown.
func (b *Board) Get(r, c int) int8 {
	return b.values[b.index(r, c)]
}

// IsGiven reports whether (r, c) was part of the original puzzle text.
func (b *Board) IsGiven(r, c int) bool {
	return b.given[b.index(r, c)]
}

// SetGiven places an initial, zero-based value read from puzzle text.
func (b *Board) SetGiven(r, c int, val int8) {
	i := b.index(r, c)
	b.values[i] = val
	b.given[i] = true
}

// Apply places a value found by the solver. It is a contract violation
// (programmer error, since the caller only ever applies decoded solver
// output) to apply a value that conflicts with one already present.
func (b *Board) Apply(r, c int, val int8) {
	i := b.index(r, c)
	if b.values[i] != -1 {
		if b.values[i] != val {
			panic("sudoku: conflicting values applied to the same cell")
		}
		return
	}
	b.values[i] = val
}

// IsSolved reports whether every cell has a value.
func (b *Board) IsSolved() bool {
	for _, v := range b.values {
		if v == -1 {
			return false
		}
	}
	return true
}

// BoxSide returns the side length of one box (b such that Side == b*b).
func (b *Board) BoxSide() int {
	return b.box
}
