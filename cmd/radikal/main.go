// Command radikal is the deck authoring and serving CLI.
package main

import (
	"os"

	"github.com/radikals/radikal/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
