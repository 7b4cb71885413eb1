// Command ttwmctl is a thin socket client against a running ttwm: every
// subcommand sends one IPC request and prints the response (spec.md §6).
package main

import (
	"fmt"
	"os"

	"github.com/adereth/ttwm/cmd/ttwmctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
