// Command strux runs structural operations (merge, defaults, diff, clone,
// contain) on YAML/JSON documents.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/strux/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "strux:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
