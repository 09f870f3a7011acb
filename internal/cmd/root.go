// Package cmd implements the stripmd command line interface.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

const fileMode = 0o644

type statusFunc func(format string, args ...interface{})

type options struct {
	quiet  bool
	status statusFunc
}

func (o *options) createStatus(w io.Writer) {
	if o.quiet {
		o.status = func(string, ...interface{}) {}

		return
	}

	o.status = func(format string, args ...interface{}) {
		fmt.Fprintf(w, format, args...)
	}
}

func quietFlag(cmd *cobra.Command, opts *options) {
	cmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress status output")
}

// Execute runs the stripmd CLI and exits non-zero on failure.
func Execute(args []string, stdout, stderr io.Writer) {
	if err := execute(args, os.Stdin, stdout, stderr); err != nil {
		os.Exit(1)
	}
}

func execute(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts := &options{}

	root := &cobra.Command{ //nolint:exhaustruct
		Use:   "stripmd",
		Short: "Strip fenced code block delimiters from markdown",
		Long: "stripmd removes triple-backtick fences (and their language tags) from\n" +
			"markdown while keeping the code inside. Inline code spans are untouched.",
		SilenceUsage: true,

		DisableAutoGenTag: true,
	}

	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	quietFlag(root, opts)

	root.AddCommand(stripCmd(opts), listCmd(opts))

	return root.Execute()
}
