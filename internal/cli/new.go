package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/kilupskalvis/cu/internal/core"
)

func runNew(c *cmdContext, suffix string) {
	name, s, err := core.CreateBranch(c.Repo, c.State, suffix)
	if err != nil {
		exitError("%v", err)
	}

	green := color.New(color.FgGreen)
	green.Printf("Switched to a new branch '%s'\n", name)
	fmt.Printf("revision: v%d\n", s.Revision)
	fmt.Printf("base commit: %s\n", shortID(s.BaseCommit))
	fmt.Printf("patches dir: %s\n", s.PatchesDir)
}
