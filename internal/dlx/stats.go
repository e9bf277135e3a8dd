package dlx

// Stats accumulates non-core instrumentation about a single Solve call. It
// never changes search behavior — in particular it introduces no timeout or
// cancellation path, since the core has neither.
type Stats struct {
	NodesVisited   int
	BacktrackCount int
}

// MatrixInfo summarizes the shape of the matrix a Solver was built with.
type MatrixInfo struct {
	Columns    int
	Rows       int
	TotalNodes int
	Density    float64 // percentage of populated (row, col) cells
}

// MatrixInfo reports the static shape of the matrix: column and row counts,
// total data nodes added, and their density. Safe to call before or after
// Solve.
func (s *Solver) MatrixInfo() MatrixInfo {
	populatedRows := 0
	for _, h := range s.rowHandle {
		if h != -1 {
			populatedRows++
		}
	}

	info := MatrixInfo{
		Columns:    s.nCols,
		Rows:       populatedRows,
		TotalNodes: len(s.nodes) - s.nCols - 1,
	}
	if info.Columns > 0 && info.Rows > 0 {
		info.Density = float64(info.TotalNodes) / float64(info.Columns*info.Rows) * 100.0
	}
	return info
}

// SolveWithStats behaves exactly like Solve but also returns a count of
// recursive search calls made (NodesVisited) and backtracks performed.
func (s *Solver) SolveWithStats() ([]int, Stats) {
	var stats Stats
	s.solution = make([]int32, s.nRows)
	k := s.searchWithStats(0, &stats)
	if k == 0 {
		return []int{}, stats
	}

	result := make([]int, k)
	for i := 0; i < k; i++ {
		result[i] = int(s.solution[i])
	}
	return result, stats
}

func (s *Solver) searchWithStats(depth int, stats *Stats) int {
	stats.NodesVisited++

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

		if k := s.searchWithStats(depth+1, stats); k != 0 {
			return k
		}

		s.uncoverRow(row)
		s.solution[depth] = -1
		stats.BacktrackCount++
	}
	s.uncover(h)

	return 0
}
