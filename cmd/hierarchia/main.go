// main is the entry point of the hierarchia command.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/hierarchia/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Fatal: %v\n", err)
		os.Exit(1)
	}
}
