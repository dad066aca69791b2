package cli

import (
	"github.com/kilupskalvis/cu/internal/core"
)

func runEditCover(c *cmdContext) {
	if err := core.EditCover(c.Repo); err != nil {
		exitError("%v", err)
	}
}
