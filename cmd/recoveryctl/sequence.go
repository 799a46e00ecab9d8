package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gridops/recovery-optimizer/sequence"
	"github.com/gridops/recovery-optimizer/topology/fixture"
)

func newSequenceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sequence <input.json|input.yaml> <target-states.json>",
		Short: "Synthesize a switching order from an input and a target switch-state map",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := loadInput(args[0])
			if err != nil {
				return err
			}
			if err := in.Validate(); err != nil {
				return err
			}

			targetData, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[1], err)
			}
			var target map[string]bool
			if err := json.Unmarshal(targetData, &target); err != nil {
				return fmt.Errorf("parse %s: %w", args[1], err)
			}

			tg, err := fixture.BuildTopology(in)
			if err != nil {
				return err
			}

			steps, err := sequence.Synthesize(tg, in.Switches, target, in.SwitchNames())
			if err != nil {
				return err
			}

			operations := make([]string, len(steps))
			for i, s := range steps {
				operations[i] = s.Label()
			}
			return writeOutput("", map[string][]string{"operations": operations})
		},
	}

	return cmd
}
