// Command ttwm is the window manager process: one instance per X display,
// holding the display connection, the layout arena, the registry and the
// IPC listener for its entire lifetime (spec.md §5).
package main

import (
	"fmt"
	"os"

	"github.com/adereth/ttwm/cmd/ttwm/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
