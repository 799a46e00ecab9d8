package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gridops/recovery-optimizer/recoverymetrics"
	"github.com/gridops/recovery-optimizer/result"
	"github.com/gridops/recovery-optimizer/solverdriver"
)

func newSolveCommand() *cobra.Command {
	var (
		output    string
		nodeLimit int
		timeLimit float64
	)

	cmd := &cobra.Command{
		Use:   "solve <input.json|input.yaml>",
		Short: "Solve a post-fault recovery input and print the Output record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := loadInput(args[0])
			if err != nil {
				return err
			}
			if err := in.Validate(); err != nil {
				return err
			}

			outcome, err := solverdriver.Solve(context.Background(), in, solverdriver.Options{
				NodeLimit: nodeLimit,
				TimeLimit: timeLimit,
			})
			if errors.Is(err, solverdriver.ErrNoSolution) {
				return writeOutput(output, map[string]string{"status": "no solution"})
			}
			if err != nil {
				return fmt.Errorf("solve: %w", err)
			}

			record, err := result.Assemble(outcome, time.Now())
			if err != nil {
				return err
			}
			result.ReportMetrics(recoverymetrics.Default(), record)
			return writeOutput(output, record)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the Output record here instead of stdout")
	cmd.Flags().IntVar(&nodeLimit, "node-limit", 0, "branch-and-bound node limit (0 = unbounded)")
	cmd.Flags().Float64Var(&timeLimit, "time-limit", 0, "solve time limit in seconds (0 = unbounded)")

	return cmd
}
