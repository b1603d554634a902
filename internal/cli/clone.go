package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/strux/deep"
)

// NewCloneCommand creates `strux clone <doc>`.
func NewCloneCommand(root *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clone <doc>",
		Short: "Round-trip a document through the clone engine",
		Long:  "Loads a document, deep-clones it, and prints the clone as canonical\nJSON. Useful for normalizing documents and for sanity-checking inputs.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := LoadDocument(args[0])
			if err != nil {
				return err
			}

			root.logf(cmd, "cloning %s", args[0])
			out, err := EncodeCanonical(deep.Clone(doc))
			if err != nil {
				return WrapExitError(ExitCommandError, "cannot encode result", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	return cmd
}
