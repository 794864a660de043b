// Command molscreen is the MolScreen CLI: it serves the screening API and web
// form, or screens single molecules from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/turtacn/MolScreen/internal/config"
	"github.com/turtacn/MolScreen/internal/interfaces/cli"
)

// Build-time variables injected via ldflags.
var version = ""

func init() {
	if version != "" {
		config.Version = version
	}
}

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
