package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/strux/deep"
)

// NewDefaultsCommand creates `strux defaults <defaults> <source>`.
func NewDefaultsCommand(root *RootOptions) *cobra.Command {
	var overrideNulls bool

	cmd := &cobra.Command{
		Use:   "defaults <defaults> <source>",
		Short: "Apply a source document over a defaults document",
		Long:  "Clones the defaults document and overlays the source onto the clone.\nSource arrays replace default arrays, and explicit nulls in the source\nleave defaults in place unless --override-nulls is set.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			defaults, err := LoadRecord(args[0])
			if err != nil {
				return err
			}
			source, err := LoadRecord(args[1])
			if err != nil {
				return err
			}

			root.logf(cmd, "applying %s over defaults %s", args[1], args[0])
			result, err := deep.ApplyToDefaults(defaults, source, deep.DefaultsOptions{OverrideNulls: overrideNulls})
			if err != nil {
				return WrapExitError(ExitCommandError, "defaults application failed", err)
			}

			out, err := EncodeCanonical(result)
			if err != nil {
				return WrapExitError(ExitCommandError, "cannot encode result", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().BoolVar(&overrideNulls, "override-nulls", false, "explicit nulls in the source overwrite defaults")

	return cmd
}
