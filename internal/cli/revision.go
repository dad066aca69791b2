package cli

import (
	"fmt"

	"github.com/kilupskalvis/cu/internal/core"
)

func runRevision(c *cmdContext, value string) {
	if err := core.SetRevision(c.Repo, c.State, value); err != nil {
		exitError("%v", err)
	}

	fmt.Printf("Revision set to v%s\n", value)
}
