// Command dequebench runs deque workloads and prints what they observed.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	os.Exit(execute(newCommandLine().root()))
}

// execute runs cmd and returns the process exit code. Errors are reported
// here since the root command silences cobra's own reporting.
func execute(cmd *cobra.Command) int {
	if err := cmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), err)
		return 1
	}
	return 0
}
