package cli

import (
	"fmt"

	"github.com/kilupskalvis/cu/internal/core"
)

func runArchive(c *cmdContext, branch string) {
	path, err := core.ArchiveBranch(c.Repo, c.State, branch)
	if err != nil {
		exitError("%v", err)
	}

	fmt.Printf("Archived state to %s\n", path)
	fmt.Printf("Deleted branch '%s'\n", branch)
}
