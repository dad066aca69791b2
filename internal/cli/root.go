// Package cli implements the command-line interface for cu.
package cli

import (
	"fmt"
	"os"

	"github.com/kilupskalvis/cu/internal/git"
	"github.com/kilupskalvis/cu/internal/patchwork"
	"github.com/kilupskalvis/cu/internal/repo"
	"github.com/kilupskalvis/cu/internal/state"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// cmdContext holds common resources for the operations
type cmdContext struct {
	Repo  *repo.Repo
	State *state.Store
}

// initContext locates the repository and prepares the metadata layout.
// Every invocation goes through here, so the layout always exists
// before an operation runs.
func initContext() *cmdContext {
	rt, err := repo.Find(git.New(""))
	if err != nil {
		exitError("%v", err)
	}

	return &cmdContext{Repo: rt, State: state.NewStore(rt.Root())}
}

// patchworkClient builds a client for the configured tracking instance
func patchworkClient(c *cmdContext) *patchwork.Client {
	url, err := c.Repo.Git.Config(patchwork.ConfigKey)
	if err != nil {
		exitError("%v", err)
	}
	if url == "" {
		url = patchwork.DefaultBaseURL
	}
	return patchwork.NewClient(url)
}

var rootCmd = &cobra.Command{
	Use:   "cu",
	Short: "Mailing-list patch review workflow",
	Long: `cu manages a mailing-list patch review workflow on top of git and a
patchwork instance. It tracks review branches, pulls patches and series
in by numeric ID, and mails numbered revisions of a patch series.

Examples:
  cu -n uring-fix        # create and check out branch 'cu-uring-fix'
  cu -p 12345678         # fetch patch 12345678 and apply it
  cu -s 864123           # fetch series 864123 and apply it
  cu -e                  # write the cover letter
  cu -x                  # send the series at its current revision
  cu -v 3                # force the next send to be v3
  cu -a cu-uring-fix     # archive the branch once accepted`,
	Args: cobra.NoArgs,
	Run:  runRoot,
}

var (
	newName       string
	archiveName   string
	applyPatchID  string
	applySeriesID string
	editCover     bool
	revisionValue string
	sendSeries    bool
	verbose       bool
)

func init() {
	rootCmd.Flags().StringVarP(&newName, "new", "n", "", "Create and check out a tracked branch")
	rootCmd.Flags().StringVarP(&archiveName, "archive", "a", "", "Archive and delete a tracked branch")
	rootCmd.Flags().StringVarP(&applyPatchID, "apply-patch", "p", "", "Fetch and apply a patch by ID")
	rootCmd.Flags().StringVarP(&applySeriesID, "apply-series", "s", "", "Fetch and apply a series by ID")
	rootCmd.Flags().BoolVarP(&editCover, "edit-cover", "e", false, "Edit the cover letter")
	rootCmd.Flags().StringVarP(&revisionValue, "revision", "v", "", "Force the revision number")
	rootCmd.Flags().BoolVarP(&sendSeries, "send", "x", false, "Generate and send the patch series")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "Trace subprocess and HTTP calls")

	rootCmd.MarkFlagsMutuallyExclusive(
		"new", "archive", "apply-patch", "apply-series", "edit-cover", "revision", "send")
}

func runRoot(cmd *cobra.Command, args []string) {
	setupLogging()

	c := initContext()

	// Changed distinguishes a flag given with an empty value from an
	// absent flag; the operations own the empty-value diagnostics.
	switch {
	case cmd.Flags().Changed("new"):
		runNew(c, newName)
	case cmd.Flags().Changed("archive"):
		runArchive(c, archiveName)
	case cmd.Flags().Changed("apply-patch"):
		runApply(c, patchwork.KindPatch, applyPatchID)
	case cmd.Flags().Changed("apply-series"):
		runApply(c, patchwork.KindSeries, applySeriesID)
	case editCover:
		runEditCover(c)
	case cmd.Flags().Changed("revision"):
		runRevision(c, revisionValue)
	case sendSeries:
		runSend(c)
	default:
		cmd.Help()
		os.Exit(1)
	}
}

// setupLogging routes zerolog through a console writer on stderr;
// --verbose lowers the level so subprocess and HTTP tracing shows up.
func setupLogging() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// exitError prints an error and exits
func exitError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}

// shortID returns first 12 characters of a commit ID
func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}
