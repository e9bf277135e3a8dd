package sudoku

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

var (
	givenColor  = color.New(color.Bold, color.FgHiYellow)
	solvedColor = color.New(color.Bold, color.FgHiWhite)
	emptyColor  = color.New(color.FgHiBlack)
)

// Print renders the board to stdout as an ANSI-colored grid, with given
// cells highlighted differently from cells the solver filled in. The box
// grid scales to the board's actual box side, so it renders correctly for
// 9x9 through 49x49 boards.
func (b *Board) Print() {
	width := len(strconv.Itoa(b.Side))
	top, mid, bot := borders(b.Side, b.box, width)

	color.HiWhite(top)
	for r := 0; r < b.Side; r++ {
		if r != 0 && r%b.box == 0 {
			color.HiWhite(mid)
		}
		printRow(b, r, width)
	}
	color.HiWhite(bot)
}

func printRow(b *Board, r, width int) {
	var sb strings.Builder
	sb.WriteString(color.HiWhiteString("│"))
	for c := 0; c < b.Side; c++ {
		if c != 0 && c%b.box == 0 {
			sb.WriteString(color.HiWhiteString("│"))
		}
		sb.WriteString(" ")
		sb.WriteString(cellString(b, r, c, width))
		sb.WriteString(" ")
	}
	sb.WriteString(color.HiWhiteString("│"))
	fmt.Println(sb.String())
}

func cellString(b *Board, r, c, width int) string {
	v := b.Get(r, c)
	if v < 0 {
		return emptyColor.Sprint(strings.Repeat(".", width))
	}

	text := fmt.Sprintf("%*d", width, v+1)
	if b.IsGiven(r, c) {
		return givenColor.Sprint(text)
	}
	return solvedColor.Sprint(text)
}

// borders builds the top, box-divider, and bottom border strings, sized to
// the board's side and box side.
func borders(side, box, width int) (top, mid, bot string) {
	cell := strings.Repeat("─", width+2)
	group := strings.Repeat(cell, box)

	var t, m, btm strings.Builder
	t.WriteString("┌")
	m.WriteString("├")
	btm.WriteString("└")
	for boxIdx := 0; boxIdx < side/box; boxIdx++ {
		if boxIdx != 0 {
			t.WriteString("┬")
			m.WriteString("┼")
			btm.WriteString("┴")
		}
		t.WriteString(group)
		m.WriteString(group)
		btm.WriteString(group)
	}
	t.WriteString("┐")
	m.WriteString("┤")
	btm.WriteString("┘")
	return t.String(), m.String(), btm.String()
}
