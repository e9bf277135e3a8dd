package sudoku

import "fmt"

// Validate checks that b is completely filled and that every row, column,
// and box contains each digit 0..Side-1 exactly once. It generalizes the
// reference implementation's 9x9-only check to any board side.
func (b *Board) Validate() error {
	for r := 0; r < b.Side; r++ {
		for c := 0; c < b.Side; c++ {
			if b.Get(r, c) < 0 {
				return fmt.Errorf("cell (%d,%d) is not filled", r, c)
			}
		}
	}

	for i := 0; i < b.Side; i++ {
		if err := b.validateHouse(func(j int) int8 { return b.Get(i, j) }, "row", i); err != nil {
			return err
		}
		if err := b.validateHouse(func(j int) int8 { return b.Get(j, i) }, "column", i); err != nil {
			return err
		}
	}

	box := b.box
	for boxIdx := 0; boxIdx < b.Side; boxIdx++ {
		baseRow, baseCol := (boxIdx/box)*box, (boxIdx%box)*box
		err := b.validateHouse(func(j int) int8 {
			return b.Get(baseRow+j/box, baseCol+j%box)
		}, "box", boxIdx)
		if err != nil {
			return err
		}
	}

	return nil
}

// validateHouse checks that the Side values yielded by at cover 0..Side-1
// exactly once. seen is sized to the board side rather than a general-purpose
// set, since a house's digits are always drawn from that small, known range.
func (b *Board) validateHouse(at func(int) int8, kind string, index int) error {
	seen := make([]bool, b.Side)
	for j := 0; j < b.Side; j++ {
		v := at(j)
		if v < 0 || v >= int8(b.Side) {
			return fmt.Errorf("invalid value %d in %s %d", v, kind, index)
		}
		if seen[v] {
			return fmt.Errorf("duplicate value %d in %s %d", v, kind, index)
		}
		seen[v] = true
	}
	return nil
}
