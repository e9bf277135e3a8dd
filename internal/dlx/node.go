// Package dlx implements Knuth's Dancing Links technique: a toroidal
// doubly-linked sparse matrix supporting O(1) remove/reinsert, used to drive
// the non-deterministic Algorithm X search for an exact cover of a 0/1
// matrix.
//
// Nodes live in a single arena slice rather than as individually allocated,
// pointer-linked structs — indices replace pointers for the four neighbor
// links, which keeps the whole matrix in one contiguous allocation for the
// life of the Solver and avoids a cyclic pointer graph.
package dlx

import "fmt"

// sentinel row/col ids distinguish the root and column headers from the data
// nodes created by Add. Real row and column ids are always >= 0.
const (
	sentinelRoot   int32 = -2
	sentinelHeader int32 = -1
)

// node is a single element of the sparse matrix. count is only meaningful
// for the root and column headers; data nodes carry a zero there.
type node struct {
	up, down, left, right int32
	row, col              int32
	count                 int32
}

// direction abstracts which pair of neighbor fields a primitive operates on,
// so insert/remove/reinsert/iterate are written once and reused for both the
// horizontal (row) and vertical (column) rings. Horizontal's inverse is used
// during uncover to walk a ring in the opposite order cover used to build it.
type direction struct {
	next func(s *Solver, x int32) *int32
	prev func(s *Solver, x int32) *int32
}

func (s *Solver) horizontalNext(x int32) *int32 { return &s.nodes[x].right }
func (s *Solver) horizontalPrev(x int32) *int32 { return &s.nodes[x].left }
func (s *Solver) verticalNext(x int32) *int32   { return &s.nodes[x].down }
func (s *Solver) verticalPrev(x int32) *int32   { return &s.nodes[x].up }

var (
	horizontal = direction{next: (*Solver).horizontalNext, prev: (*Solver).horizontalPrev}
	vertical   = direction{next: (*Solver).verticalNext, prev: (*Solver).verticalPrev}
)

// invert swaps next and prev, turning a ring walk into its reverse.
func invert(d direction) direction {
	return direction{next: d.prev, prev: d.next}
}

// insertDir splices what between after and after's current next neighbor.
func insertDir(s *Solver, d direction, after, what int32) {
	nextAfter := *d.next(s, after)
	*d.next(s, what) = nextAfter
	*d.prev(s, what) = after
	*d.prev(s, nextAfter) = what
	*d.next(s, after) = what
}

// removeDir unlinks x from its neighbors without touching x's own fields, so
// a later reinsertDir can restore it using the pointers it still carries.
func removeDir(s *Solver, d direction, x int32) {
	p, n := *d.prev(s, x), *d.next(s, x)
	*d.next(s, p) = n
	*d.prev(s, n) = p
}

// reinsertDir is the exact inverse of removeDir, valid only in LIFO order
// relative to other removes touching the same neighborhood.
func reinsertDir(s *Solver, d direction, x int32) {
	p, n := *d.prev(s, x), *d.next(s, x)
	*d.next(s, p) = x
	*d.prev(s, n) = x
}

// forEach walks the ring starting after origin and calls f on every other
// member, stopping when it returns to origin or f returns false. next is
// snapshotted before f runs so that f may unlink the current node (cover
// relies on this).
func forEach(s *Solver, d direction, origin int32, f func(x int32) bool) {
	cur := *d.next(s, origin)
	for cur != origin {
		nxt := *d.next(s, cur)
		if !f(cur) {
			return
		}
		cur = nxt
	}
}

func (n node) String() string {
	return fmt.Sprintf("{row:%d col:%d count:%d}", n.row, n.col, n.count)
}
