// Command explorer browses a file tree in the terminal and forwards
// copy, delete and rename requests to a file service.
package main

import (
	"os"

	"github.com/rubber_duck/explorer/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
