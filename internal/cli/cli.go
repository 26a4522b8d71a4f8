// Package cli implements the layoutctl command-line interface.
//
// layoutctl inspects strided layouts and runs transformation plans:
//   - inspect: report element count, span, contiguity and mergeable axes
//   - run: apply a TOML plan (see package plan) and print the result
//   - ops: list the operations a plan may use
//
// All commands support --verbose (-v) for debug logging via
// charmbracelet/log; the logger travels in the command context.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "v0.0.1-dev"
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version, usually
// from values injected with ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs layoutctl with the process arguments.
func Execute(ctx context.Context) error {
	return newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
}

// newRootCmd builds the command tree. Results go to out, logs to errOut.
func newRootCmd(out, errOut io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "layoutctl",
		Short:         "Inspect and transform strided array layouts",
		Long:          `layoutctl computes how N-dimensional array views map onto linear storage: it reports layout properties and applies permute, merge, split, broadcast, slice and tile transformations without touching any data.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(errOut, level)))
		},
	}

	root.SetOut(out)
	root.SetErr(errOut)
	root.SetVersionTemplate(fmt.Sprintf("layoutctl %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newInspectCmd())
	root.AddCommand(newRunCmd())
	root.AddCommand(newOpsCmd())

	return root
}
