package main

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

// https://goreleaser.com/cookbooks/using-main.version/
var (
	name    = "osshortcuts"
	version = "dev"
	date    string
	commit  string
)

// app carries what every subcommand shares.
type app struct {
	stdout  io.Writer
	stderr  io.Writer
	logOpts logOptions
	logger  hclog.Logger
	logFile *os.File
}

// newRootCmd wires the command tree. Output goes to stdout/stderr so tests
// can capture it.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr, logger: hclog.NewNullLogger()}

	root := &cobra.Command{
		Use:   name,
		Short: "Platform-aware keyboard shortcut table and dispatcher",
		Long: `Inspects and exercises the platform-dependent shortcut table of the keyboard
firmware: each logical shortcut (copy, word-left, next-window, ...) sends Cmd-based
combinations on macOS and Ctrl/Win-based combinations on Windows.

The compiled-in default platform is macOS; build with -tags winshortcuts for Windows.`,
		Version:       fmt.Sprintf("%s, built on %s (commit: %s)", version, date, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, f, err := setupLogging(a.logOpts, a.stderr)
			if err != nil {
				return err
			}
			a.logger, a.logFile = logger, f
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.logFile != nil {
				return a.logFile.Close()
			}
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetVersionTemplate(name + " {{.Version}}\n")

	root.PersistentFlags().StringVar(&a.logOpts.path, "log", "", "append logs to this file instead of stderr")
	root.PersistentFlags().StringVar(&a.logOpts.level, "log-level", "info", "log level (trace, debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&a.logOpts.json, "log-json", false, "log in JSON format")

	root.AddCommand(
		newTableCmd(a),
		newWhichCmd(a),
		newGenCmd(a),
		newReplayCmd(a),
	)
	return root
}

// main runs the command line; errors are printed and exit with status 1.
func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
