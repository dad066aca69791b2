// Package git shells out to the git binary for every version-control
// operation the tool performs. Queries capture output; mutations that
// are interactive (am, send-email, editors) stay connected to the
// caller's terminal so git's own diagnostics reach the user unchanged.
package git

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// Git runs git commands for a single repository.
type Git struct {
	dir string // working directory for commands; empty means process cwd
}

// New returns a Git handle whose commands run in dir.
func New(dir string) *Git {
	return &Git{dir: dir}
}

// output runs git with the given arguments and returns its trimmed
// stdout. Captured stderr is folded into the returned error so the
// subprocess diagnostic survives; the exit error stays in the chain
// for callers that inspect exit codes.
func (g *Git) output(args ...string) (string, error) {
	g.trace(args)

	cmd := exec.Command("git", args...)
	cmd.Dir = g.dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("git %s: %w: %s", args[0], err, msg)
		}
		return "", fmt.Errorf("git %s: %w", args[0], err)
	}

	return strings.TrimSpace(stdout.String()), nil
}

// run executes git connected to the caller's terminal. Used for
// commands that are interactive or whose output belongs to the user.
func (g *Git) run(args ...string) error {
	g.trace(args)

	cmd := exec.Command("git", args...)
	cmd.Dir = g.dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("git %s: %w", args[0], err)
	}
	return nil
}

func (g *Git) trace(args []string) {
	log.Debug().Msgf("git %s", strings.Join(args, " "))
}

// exitCode extracts the subprocess exit code from err, or -1 when err
// carries none.
func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// GitDir returns the absolute path of the repository's .git directory.
func (g *Git) GitDir() (string, error) {
	return g.output("rev-parse", "--absolute-git-dir")
}

// Head returns the commit ID that HEAD points at.
func (g *Git) Head() (string, error) {
	return g.output("rev-parse", "HEAD")
}

// CurrentBranch returns the name of the checked-out branch.
func (g *Git) CurrentBranch() (string, error) {
	return g.output("rev-parse", "--abbrev-ref", "HEAD")
}

// BranchExists reports whether a local branch with the given name exists.
func (g *Git) BranchExists(name string) (bool, error) {
	_, err := g.output("rev-parse", "--verify", "--quiet", "refs/heads/"+name)
	if err == nil {
		return true, nil
	}
	if exitCode(err) == 1 {
		return false, nil
	}
	return false, err
}

// CreateBranch creates name at HEAD and checks it out. Creation fails
// if the branch already exists; git's own diagnostic is returned.
func (g *Git) CreateBranch(name string) error {
	_, err := g.output("checkout", "-b", name)
	return err
}

// DeleteBranch force-deletes a local branch.
func (g *Git) DeleteBranch(name string) error {
	_, err := g.output("branch", "-D", name)
	return err
}

// Config returns the value of a configuration key, or the empty string
// when the key is unset.
func (g *Git) Config(key string) (string, error) {
	out, err := g.output("config", "--get", key)
	if err != nil {
		// config --get exits 1 for unset keys
		if exitCode(err) == 1 {
			return "", nil
		}
		return "", err
	}
	return out, nil
}

// Description returns the free-text description of a branch, or the
// empty string when none is set.
func (g *Git) Description(branch string) (string, error) {
	return g.Config("branch." + branch + ".description")
}

// EditDescription opens the current branch's description in the
// configured editor and blocks until the editor exits.
func (g *Git) EditDescription() error {
	return g.run("branch", "--edit-description")
}

// ApplyMbox pipes a raw mailbox stream into git am, replaying its
// commits onto the current branch. Conflicts fail the command and git's
// diagnostics go straight to the terminal.
func (g *Git) ApplyMbox(r io.Reader) error {
	g.trace([]string{"am"})

	cmd := exec.Command("git", "am")
	cmd.Dir = g.dir
	cmd.Stdin = r
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("git am: %w", err)
	}
	return nil
}

// FormatPatch generates one numbered patch file per commit between base
// and HEAD plus a cover letter, all signed off and labeled with the
// given revision, written into outDir. It returns the generated file
// paths with the cover letter first, or nothing when the range is empty.
func (g *Git) FormatPatch(revision int, base, outDir string) ([]string, error) {
	out, err := g.output("format-patch",
		"-v"+strconv.Itoa(revision),
		"--signoff",
		"--cover-letter",
		"--cover-from-description=subject",
		"-o", outDir,
		base+"..HEAD")
	if err != nil {
		return nil, err
	}
	if out == "" {
		return nil, nil
	}
	return strings.Split(out, "\n"), nil
}

// SendEmail mails the given patch files. Recipients are taken from the
// cover letter's To/Cc headers and applied to the whole series.
func (g *Git) SendEmail(patches []string) error {
	args := append([]string{"send-email", "--to-cover", "--cc-cover"}, patches...)
	return g.run(args...)
}
