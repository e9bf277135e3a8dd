package sudoku

import "github.com/haldorn/dlxsudoku/internal/dlx"

// Candidate identifies a single (row, col, value) placement that a Dancing
// Links matrix row represents.
type Candidate struct {
	Row, Col, Value int
}

// Mapper builds and owns the exact-cover matrix for one Board: N^3 candidate
// rows, one per (row, col, value) triple, and 4*N^2 constraint columns (one
// family each for cell, row, column, and box occupancy).
type Mapper struct {
	board  *Board
	solver *dlx.Solver

	// rowToCandidate is the row-decode table required alongside the
	// solver: rowToCandidate[rowID] recovers the (r, c, n) triple a
	// returned row id stands for. The mapping is invertible by arithmetic
	// (see candidateRow), but the table is still kept explicitly so a
	// caller never needs to recompute it.
	rowToCandidate []Candidate
}

// NewMapper builds a populated Mapper for b, with rows already deleted for
// every cell that has a given value.
func NewMapper(b *Board) *Mapper {
	side := b.Side
	m := &Mapper{
		board:          b,
		solver:         dlx.New(side*side*side, 4*side*side),
		rowToCandidate: make([]Candidate, side*side*side),
	}
	m.populate()

	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			if v := b.Get(r, c); v >= 0 {
				m.solver.DeleteRow(candidateRow(side, r, c, int(v)))
			}
		}
	}

	return m
}

func (m *Mapper) populate() {
	side := m.board.Side
	box := m.board.box

	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			for n := 0; n < side; n++ {
				row := candidateRow(side, r, c, n)
				m.rowToCandidate[row] = Candidate{Row: r, Col: c, Value: n}

				m.solver.Add(row, cellColumn(side, c, n))
				m.solver.Add(row, rowColumn(side, r, n))
				m.solver.Add(row, boxColumn(side, box, r, c, n))
				m.solver.Add(row, placeColumn(side, r, c))
			}
		}
	}
}

// candidateRow is the row id for candidate (r, c, n), matching spec.md
// section 4.10: row = r*N^2 + c*N + n.
func candidateRow(side, r, c, n int) int {
	return r*side*side + c*side + n
}

func cellColumn(side, c, n int) int {
	return c*side + n
}

func rowColumn(side, r, n int) int {
	return side*side + r*side + n
}

func boxColumn(side, box, r, c, n int) int {
	return 2*side*side + ((r/box)*box+c/box)*side + n
}

func placeColumn(side, r, c int) int {
	return 3*side*side + r*side + c
}

// Solve runs the exact-cover search and, on success, applies the selected
// rows back onto the board, returning true. On failure the board is left
// unchanged and false is returned.
func (m *Mapper) Solve() bool {
	solution := m.solver.Solve()
	if len(solution) == 0 {
		return false
	}

	for _, rowID := range solution {
		cand := m.rowToCandidate[rowID]
		m.board.Apply(cand.Row, cand.Col, int8(cand.Value))
	}
	return true
}

// SolveWithStats behaves like Solve but also returns diagnostic counters
// from the underlying search.
func (m *Mapper) SolveWithStats() (bool, dlx.Stats) {
	solution, stats := m.solver.SolveWithStats()
	if len(solution) == 0 {
		return false, stats
	}

	for _, rowID := range solution {
		cand := m.rowToCandidate[rowID]
		m.board.Apply(cand.Row, cand.Col, int8(cand.Value))
	}
	return true, stats
}

// MatrixInfo reports the shape of the underlying exact-cover matrix.
func (m *Mapper) MatrixInfo() dlx.MatrixInfo {
	return m.solver.MatrixInfo()
}

// NewSolverFromString parses puzzle and returns a Mapper ready to Solve.
func NewSolverFromString(puzzle string) (*Mapper, error) {
	b, err := BoardFromString(puzzle)
	if err != nil {
		return nil, err
	}
	return NewMapper(b), nil
}

// NewEmptySolver builds a Mapper for a fully blank board of the given side.
func NewEmptySolver(side int) (*Mapper, error) {
	b, err := NewEmptyBoard(side)
	if err != nil {
		return nil, err
	}
	return NewMapper(b), nil
}

// Board returns the board this Mapper was built from, so callers can print
// or inspect it after Solve.
func (m *Mapper) Board() *Board {
	return m.board
}
