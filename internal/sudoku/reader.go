package sudoku

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// BoardFromString parses a puzzle given as text in one of two formats
// (spec.md section 6):
//
//   - single-digit: any '.' or ASCII digit 1-9 is a cell; everything else is
//     a separator. Used for 9x9 puzzles.
//   - multi-digit, pipe-delimited: whitespace-separated tokens; '|' and '-'
//     tokens are skipped, '.'/'..' means unknown, any other numeric token is
//     a 1-based digit. Used for 16x16 and larger.
//
// The format is chosen by the presence of a '|' character, mirroring the
// reference implementation.
func BoardFromString(puzzle string) (*Board, error) {
	var tokens []int8
	if strings.ContainsRune(puzzle, '|') {
		tokens = multiDigitTokens(puzzle)
	} else {
		tokens = singleDigitTokens(puzzle)
	}

	side, ok := integerSqrt(len(tokens))
	if !ok {
		return nil, puzzleError("puzzle has %d cells, which is not a perfect square", len(tokens))
	}

	b, err := NewEmptyBoard(side)
	if err != nil {
		return nil, err
	}
	for i, v := range tokens {
		if v >= 0 {
			b.SetGiven(i/side, i%side, v)
		}
	}
	return b, nil
}

// BoardFromReader reads all of r and parses it as a puzzle string.
func BoardFromReader(r io.Reader) (*Board, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return BoardFromString(string(data))
}

func singleDigitTokens(s string) []int8 {
	tokens := make([]int8, 0, len(s))
	for _, r := range s {
		switch {
		case r == '.':
			tokens = append(tokens, -1)
		case r >= '1' && r <= '9':
			tokens = append(tokens, int8(r-'1'))
		}
	}
	return tokens
}

func multiDigitTokens(s string) []int8 {
	var tokens []int8
	scanner := bufio.NewScanner(strings.NewReader(s))
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		tok := scanner.Text()
		switch {
		case strings.HasPrefix(tok, "|"), strings.HasPrefix(tok, "-"):
			continue
		case tok == "." || tok == "..":
			tokens = append(tokens, -1)
		default:
			n, err := strconv.Atoi(tok)
			if err != nil {
				continue
			}
			tokens = append(tokens, int8(n-1))
		}
	}
	return tokens
}
