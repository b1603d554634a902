package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/strux/contain"
)

// NewContainCommand creates `strux contain <doc>`.
func NewContainCommand(root *RootOptions) *cobra.Command {
	var keys []string
	var once, only, part bool

	cmd := &cobra.Command{
		Use:   "contain <doc>",
		Short: "Check that a document contains the requested top-level keys",
		Long:  "Tests the top-level keys of a document against --keys under the\nexact/partial/once/only containment policies. Exits 0 when containment\nholds and 1 when it does not.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := LoadRecord(args[0])
			if err != nil {
				return err
			}

			root.logf(cmd, "checking %s for keys %v", args[0], keys)
			ok, err := contain.Contains(doc, keys, contain.Options{Once: once, Only: only, Part: part})
			if err != nil {
				return WrapExitError(ExitCommandError, "containment check failed", err)
			}
			if !ok {
				return NewExitError(ExitFailure, "containment does not hold")
			}
			fmt.Fprintln(cmd.OutOrStdout(), "containment holds")
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&keys, "keys", nil, "top-level keys to check for")
	cmd.Flags().BoolVar(&once, "once", false, "each key may appear at most once")
	cmd.Flags().BoolVar(&only, "only", false, "no keys beyond the requested ones")
	cmd.Flags().BoolVar(&part, "part", false, "tolerate requested keys that are absent")

	return cmd
}
