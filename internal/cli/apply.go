package cli

import (
	"context"

	"github.com/fatih/color"
	"github.com/kilupskalvis/cu/internal/core"
)

func runApply(c *cmdContext, kind, id string) {
	pw := patchworkClient(c)

	if err := core.Apply(context.Background(), c.Repo, pw, kind, id); err != nil {
		exitError("%v", err)
	}

	green := color.New(color.FgGreen)
	green.Printf("Applied %s %s\n", kind, id)
}
