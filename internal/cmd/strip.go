package cmd

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"

	"github.com/mdtools/stripmd/stripmd"
)

//go:embed help/strip.md
var stripHelp string

func stripCmd(opts *options) *cobra.Command {
	var (
		write  bool
		filter string
	)

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "strip [flags] [patterns...]",
		Aliases: []string{"s"},
		Short:   "Remove code fences, keeping block contents",
		Long:    stripHelp,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.createStatus(cmd.ErrOrStderr())

			if len(args) == 0 {
				if write {
					return errWriteNeedsFiles
				}

				return stripStream(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), filter)
			}

			files, err := resolveFiles(args)
			if err != nil {
				return err
			}

			for _, name := range files {
				if err := stripFile(name, cmd.OutOrStdout(), cmd.ErrOrStderr(), opts, filter, write); err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
			}

			return nil
		},

		DisableAutoGenTag: true,
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "rewrite files in place instead of printing to stdout")
	cmd.Flags().StringVar(&filter, "filter", "", "shell command to pipe each stripped document through")

	return cmd
}

func stripStream(stdin io.Reader, stdout, stderr io.Writer, filter string) error {
	src, err := io.ReadAll(stdin)
	if err != nil {
		return err
	}

	result, err := stripSource(src, filter, stderr)
	if err != nil {
		return err
	}

	_, err = stdout.Write(result)

	return err
}

func stripFile(name string, stdout, stderr io.Writer, opts *options, filter string, write bool) error {
	src, err := os.ReadFile(name)
	if err != nil {
		return err
	}

	result, err := stripSource(src, filter, stderr)
	if err != nil {
		return err
	}

	if !write {
		_, err = stdout.Write(result)

		return err
	}

	if bytes.Equal(result, src) {
		opts.status("%s: unchanged\n", name)

		return nil
	}

	if err := os.WriteFile(name, result, fileMode); err != nil {
		return err
	}

	opts.status("%s: stripped\n", name)

	return nil
}

func stripSource(src []byte, filter string, stderr io.Writer) ([]byte, error) {
	result := []byte(stripmd.StripCodeblocks(string(src)))

	if len(filter) == 0 {
		return result, nil
	}

	return runFilter(result, filter, stderr)
}

// runFilter pipes input through a shell command and returns its stdout.
func runFilter(input []byte, command string, stderr io.Writer) ([]byte, error) {
	file, err := syntax.NewParser().Parse(strings.NewReader(command), "")
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer

	runner, err := interp.New(interp.StdIO(bytes.NewReader(input), &out, stderr))
	if err != nil {
		return nil, err
	}

	err = runner.Run(context.TODO(), file)
	if err != nil {
		if status, ok := interp.IsExitStatus(err); ok {
			return nil, fmt.Errorf("filter exited with %d", status)
		}

		return nil, err
	}

	return out.Bytes(), nil
}

var errWriteNeedsFiles = fmt.Errorf("--write requires file arguments")
