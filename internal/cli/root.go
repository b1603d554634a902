// Package cli implements the strux command line interface: structural
// merge, defaults application, diffing, cloning, and containment checks
// over YAML/JSON documents.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
}

// NewRootCommand creates the root command for the strux CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "strux",
		Short:         "Structural operations on YAML/JSON documents",
		Long:          "strux merges, diffs, clones, and containment-checks structured documents\nusing the strux traversal engines. Output is deterministic canonical JSON.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose diagnostics on stderr")

	cmd.AddCommand(NewMergeCommand(opts))
	cmd.AddCommand(NewDefaultsCommand(opts))
	cmd.AddCommand(NewDiffCommand(opts))
	cmd.AddCommand(NewCloneCommand(opts))
	cmd.AddCommand(NewContainCommand(opts))

	return cmd
}

func (o *RootOptions) logf(cmd *cobra.Command, format string, args ...any) {
	if o.Verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", args...)
	}
}
