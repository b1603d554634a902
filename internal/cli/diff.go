package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/strux/deep"
)

// NewDiffCommand creates `strux diff <a> <b>`.
func NewDiffCommand(root *RootOptions) *cobra.Command {
	var partial bool

	cmd := &cobra.Command{
		Use:   "diff <a> <b>",
		Short: "Compare two documents structurally",
		Long:  "Compares two documents with the deep equality engine. Exits 0 when they\nare structurally equal and 1 when they differ. With --partial, extra\nkeys in the first document are tolerated.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := LoadDocument(args[0])
			if err != nil {
				return err
			}
			b, err := LoadDocument(args[1])
			if err != nil {
				return err
			}

			root.logf(cmd, "comparing %s with %s", args[0], args[1])
			if !deep.EqualWith(a, b, deep.Flags{Partial: partial}) {
				return NewExitError(ExitFailure, "documents differ")
			}
			fmt.Fprintln(cmd.OutOrStdout(), "documents are equal")
			return nil
		},
	}

	cmd.Flags().BoolVar(&partial, "partial", false, "tolerate extra keys in the first document")

	return cmd
}
