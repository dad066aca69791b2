package git

import (
	"fmt"
	"os"
	"os/exec"
)

// Editor returns the user's preferred editor command as resolved by
// git, honoring GIT_EDITOR, core.editor, VISUAL and EDITOR in git's
// usual order.
func (g *Git) Editor() (string, error) {
	ed, err := g.output("var", "GIT_EDITOR")
	if err != nil {
		return "", err
	}
	if ed == "" {
		return "", fmt.Errorf("no editor configured")
	}
	return ed, nil
}

// EditFile opens path in the user's editor and blocks until it exits.
// The editor value may carry its own arguments, so it runs through the
// shell the same way git itself launches editors.
func (g *Git) EditFile(path string) error {
	ed, err := g.Editor()
	if err != nil {
		return err
	}

	g.trace([]string{"(editor)", ed, path})

	cmd := exec.Command("sh", "-c", ed+` "$1"`, "sh", path)
	cmd.Dir = g.dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor %s: %w", ed, err)
	}
	return nil
}
