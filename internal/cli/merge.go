package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/strux/deep"
)

// NewMergeCommand creates `strux merge <base> <overlay>`.
func NewMergeCommand(root *RootOptions) *cobra.Command {
	var replaceArrays bool
	var keepNulls bool

	cmd := &cobra.Command{
		Use:   "merge <base> <overlay>",
		Short: "Merge an overlay document into a base document",
		Long:  "Merges overlay into base recursively; overlay values win. Arrays append\nunless --replace-arrays is set, and explicit nulls overwrite unless\n--keep-nulls is set.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := LoadRecord(args[0])
			if err != nil {
				return err
			}
			overlay, err := LoadRecord(args[1])
			if err != nil {
				return err
			}

			root.logf(cmd, "merging %s into %s", args[1], args[0])
			opts := deep.MergeOptions{ReplaceArrays: replaceArrays, KeepNulls: keepNulls}
			if err := deep.Merge(base, overlay, opts); err != nil {
				return WrapExitError(ExitCommandError, "merge failed", err)
			}

			out, err := EncodeCanonical(base)
			if err != nil {
				return WrapExitError(ExitCommandError, "cannot encode result", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().BoolVar(&replaceArrays, "replace-arrays", false, "overlay arrays replace base arrays instead of appending")
	cmd.Flags().BoolVar(&keepNulls, "keep-nulls", false, "explicit nulls in the overlay leave base values untouched")

	return cmd
}
