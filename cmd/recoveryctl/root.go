// Command recoveryctl runs the post-fault load-transfer optimizer
// against a JSON or YAML input record: solve, validate and sequence
// subcommands, one file per command in the style of a conventional
// cobra CLI tree.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "recoveryctl",
		Short:         "Post-fault load-transfer and dispatch optimizer",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newSolveCommand())
	cmd.AddCommand(newValidateCommand())
	cmd.AddCommand(newSequenceCommand())

	return cmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "recoveryctl:", err)
		os.Exit(1)
	}
}
