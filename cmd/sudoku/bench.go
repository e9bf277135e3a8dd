package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/haldorn/dlxsudoku/internal/sudoku"
)

func newBenchCmd() *cobra.Command {
	var sides []int

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark solving empty boards of several sizes",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, side := range sides {
				if err := benchOne(cmd, side); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntSliceVar(&sides, "sides", []int{9, 16, 25, 36, 49}, "board sides to benchmark (each must be a perfect square)")
	return cmd
}

func benchOne(cmd *cobra.Command, side int) error {
	m, err := sudoku.NewEmptySolver(side)
	if err != nil {
		return err
	}

	start := time.Now()
	solved, stats := m.SolveWithStats()
	elapsed := time.Since(start)

	info := m.MatrixInfo()
	fmt.Fprintf(cmd.OutOrStdout(), "side=%-3d solved=%-5v elapsed=%-12s nodes=%-8d backtracks=%-6d rows=%-6d cols=%d\n",
		side, solved, elapsed, stats.NodesVisited, stats.BacktrackCount, info.Rows, info.Columns)
	return nil
}
