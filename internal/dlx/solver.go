package dlx

import "math"

// Solver holds one exact-cover matrix and its arena of nodes. It is built by
// New, populated with Add and optionally DeleteRow, then solved exactly once
// with Solve. A Solver is not safe for concurrent use; independent Solvers
// share nothing and may run on separate goroutines.
type Solver struct {
	nodes []node

	// rowHandle[r] is the arena index of one node in row r's horizontal
	// ring, or -1 if row r has never had a cell added to it. nRows is an
	// upper bound on row ids, not a count of populated rows.
	rowHandle []int32

	nRows, nCols int

	solution []int32
}

// New allocates a Solver for a matrix with nRows rows (an upper bound; rows
// that are never populated contribute nothing) and nCols columns.
func New(nRows, nCols int) *Solver {
	s := &Solver{
		nodes:     make([]node, 0, nCols+1),
		rowHandle: make([]int32, nRows),
		nRows:     nRows,
		nCols:     nCols,
	}
	for i := range s.rowHandle {
		s.rowHandle[i] = -1
	}

	// index 0 is the root; it starts as a self-looped ring with no columns.
	s.nodes = append(s.nodes, node{row: sentinelRoot, col: sentinelRoot})

	for i := 0; i < nCols; i++ {
		idx := int32(len(s.nodes))
		s.nodes = append(s.nodes, node{
			row: sentinelHeader, col: int32(i),
			up: idx, down: idx, left: idx, right: idx,
		})
		insertDir(s, horizontal, s.nodes[0].left, idx)
	}

	return s
}

// headerOf returns the arena index of the column header for column id col.
func headerOf(col int32) int32 { return col + 1 }

// Add records a 1-cell at (rowID, colID). Preconditions: rowID < nRows and
// colID < nCols; duplicate (row, col) pairs are undefined behavior, as is
// any call after Solve has run.
func (s *Solver) Add(rowID, colID int) {
	if rowID < 0 || rowID >= s.nRows || colID < 0 || colID >= s.nCols {
		panic("dlx: row or column id out of range")
	}

	h := headerOf(int32(colID))
	idx := int32(len(s.nodes))
	s.nodes = append(s.nodes, node{
		row: int32(rowID), col: int32(colID),
		up: idx, down: idx, left: idx, right: idx,
	})

	insertDir(s, vertical, s.nodes[h].up, idx)
	s.nodes[h].count++

	if s.rowHandle[rowID] == -1 {
		s.rowHandle[rowID] = idx
	} else {
		insertDir(s, horizontal, s.rowHandle[rowID], idx)
	}
}

// DeleteRow permanently covers every column touched by rowID, making the row
// a fixed part of the eventual solution. It may be called any number of
// times, in any order, between population and Solve. Deleting a row with no
// entries is a no-op.
func (s *Solver) DeleteRow(rowID int) {
	handle := s.rowHandle[rowID]
	if handle == -1 {
		return
	}

	// A row's entries may target a column that an earlier entry in the same
	// row already covered; the in-root-ring check keeps that second cover
	// from double-covering and corrupting the ring.
	cur := handle
	for {
		h := headerOf(s.nodes[cur].col)
		if s.columnInRootRing(h) {
			s.cover(h)
		}
		cur = s.nodes[cur].right
		if cur == handle {
			break
		}
	}
}

func (s *Solver) columnInRootRing(h int32) bool {
	return s.nodes[s.nodes[h].right].left == h && s.nodes[s.nodes[h].left].right == h
}

// cover removes header h from the root ring, then removes from their columns
// every entry of every row that intersects h, keeping column counts in sync.
func (s *Solver) cover(h int32) {
	removeDir(s, horizontal, h)
	forEach(s, vertical, h, func(row int32) bool {
		forEach(s, horizontal, row, func(n int32) bool {
			removeDir(s, vertical, n)
			s.nodes[headerOf(s.nodes[n].col)].count--
			return true
		})
		return true
	})
}

// uncover is the exact inverse of cover, run in reverse order.
func (s *Solver) uncover(h int32) {
	forEach(s, invert(vertical), h, func(row int32) bool {
		forEach(s, invert(horizontal), row, func(n int32) bool {
			s.nodes[headerOf(s.nodes[n].col)].count++
			reinsertDir(s, vertical, n)
			return true
		})
		return true
	})
	reinsertDir(s, horizontal, h)
}

// coverRow covers every column touched by row except row's own column,
// which is assumed already covered as the pivot column of this search frame.
func (s *Solver) coverRow(row int32) {
	forEach(s, horizontal, row, func(n int32) bool {
		s.cover(headerOf(s.nodes[n].col))
		return true
	})
}

func (s *Solver) uncoverRow(row int32) {
	forEach(s, invert(horizontal), row, func(n int32) bool {
		s.uncover(headerOf(s.nodes[n].col))
		return true
	})
}

// chooseColumn returns the header currently in the root ring with the fewest
// live entries (the S heuristic), breaking ties by first encountered.
func (s *Solver) chooseColumn() int32 {
	chosen := int32(-1)
	min := int32(math.MaxInt32)
	forEach(s, horizontal, 0, func(h int32) bool {
		if s.nodes[h].count < min {
			chosen, min = h, s.nodes[h].count
		}
		return true
	})
	return chosen
}

// search is Algorithm X: recursive DFS over the column with the fewest live
// rows, in depth-first, chronologically-backtracked order. It returns 0 for
// "no solution in this subtree", or the depth of a found solution.
func (s *Solver) search(depth int) int {
	if s.nodes[0].right == 0 {
		return depth
	}

	h := s.chooseColumn()
	if s.nodes[h].count == 0 {
		return 0
	}

	s.cover(h)
	for row := s.nodes[h].down; row != h; row = s.nodes[row].down {
		s.solution[depth] = s.nodes[row].row
		s.coverRow(row)

		if k := s.search(depth + 1); k != 0 {
			return k
		}

		s.uncoverRow(row)
		s.solution[depth] = -1
	}
	s.uncover(h)

	return 0
}

// Solve runs Algorithm X to completion and returns the row ids of the
// selected cover, in the order the search chose them, or an empty slice if
// no exact cover exists. Calling Solve more than once on the same Solver is
// undefined behavior.
func (s *Solver) Solve() []int {
	s.solution = make([]int32, s.nRows)
	k := s.search(0)
	if k == 0 {
		return []int{}
	}

	result := make([]int, k)
	for i := 0; i < k; i++ {
		result[i] = int(s.solution[i])
	}
	return result
}
