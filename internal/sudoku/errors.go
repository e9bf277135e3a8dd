package sudoku

import "fmt"

// puzzleError reports a malformed puzzle string. Board construction and
// parsing return these rather than exiting, so that library callers can
// decide how to surface them; cmd/sudoku prints and exits on them the way
// the original command-line tool does.
func puzzleError(format string, args ...any) error {
	return fmt.Errorf("invalid puzzle: "+format, args...)
}
