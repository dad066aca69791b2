package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/kilupskalvis/cu/internal/core"
)

func runSend(c *cmdContext) {
	res, err := core.Send(c.Repo, c.State)
	if err != nil {
		exitError("%v", err)
	}

	green := color.New(color.FgGreen)
	green.Printf("Sent revision v%d\n", res.Revision)
	for _, p := range res.Patches {
		fmt.Printf("  %s\n", filepath.Base(p))
	}

	fmt.Printf("increment it? (y/n) ")
	if scanYes() {
		n, err := c.State.IncrementRevision(res.Branch)
		if err != nil {
			exitError("%v", err)
		}
		fmt.Printf("revision is now v%d\n", n)
	}
}

// scanYes reads one token from stdin and reports whether it starts
// with y.
func scanYes() bool {
	var s string
	fmt.Scan(&s)
	return strings.HasPrefix(strings.ToLower(s), "y")
}
