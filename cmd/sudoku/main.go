// Command sudoku solves a Sudoku puzzle using Dancing Links / Algorithm X.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/haldorn/dlxsudoku/internal/sudoku"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("sudoku: %v", err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		file  string
		stats bool
	)

	cmd := &cobra.Command{
		Use:   "sudoku",
		Short: "Solve a Sudoku puzzle with Dancing Links",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, file, stats)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "read the puzzle from this file instead of stdin")
	cmd.Flags().BoolVar(&stats, "stats", false, "print search diagnostics after solving")
	cmd.AddCommand(newBenchCmd())
	return cmd
}

func runSolve(cmd *cobra.Command, file string, wantStats bool) error {
	var b *sudoku.Board
	var err error

	if file != "" {
		f, openErr := os.Open(file)
		if openErr != nil {
			return openErr
		}
		defer f.Close()
		b, err = sudoku.BoardFromReader(f)
	} else {
		if isStdinTTY() {
			fmt.Println("Enter the puzzle (Ctrl+D to finish on Unix/Linux, Ctrl+Z then Enter on Windows):")
		}
		b, err = sudoku.BoardFromReader(os.Stdin)
	}
	if err != nil {
		return err
	}

	m := sudoku.NewMapper(b)
	solved, dlxStats := m.SolveWithStats()

	if solved {
		color.HiWhite("\nSolution:")
	} else {
		color.HiWhite("\nNo solution exists for this puzzle.")
	}
	m.Board().Print()

	if solved {
		if verr := m.Board().Validate(); verr != nil {
			return fmt.Errorf("solver produced an invalid board: %w", verr)
		}
	}

	if wantStats {
		info := m.MatrixInfo()
		fmt.Printf("\nmatrix: %d rows, %d columns, density %.4f\n", info.Rows, info.Columns, info.Density)
		fmt.Printf("search: %d nodes visited, %d backtracks\n", dlxStats.NodesVisited, dlxStats.BacktrackCount)
	}

	if !solved {
		os.Exit(1)
	}
	return nil
}

func isStdinTTY() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
