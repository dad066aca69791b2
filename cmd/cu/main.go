// Command cu manages a mailing-list patch review workflow on top of
// git and a patchwork instance.
package main

import (
	"os"

	"github.com/kilupskalvis/cu/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
