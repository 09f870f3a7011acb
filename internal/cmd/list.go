package cmd

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/gobwas/glob"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"github.com/mdtools/stripmd/internal/codeblock"
)

//go:embed help/list.md
var listHelp string

func listCmd(opts *options) *cobra.Command {
	var langs []string

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "list [flags] [patterns...]",
		Aliases: []string{"ls"},
		Short:   "List fenced code blocks without modifying anything",
		Long:    listHelp,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.createStatus(cmd.ErrOrStderr())

			filter, err := langFilter(langs)
			if err != nil {
				return err
			}

			tbl := table.New("FILE", "BLOCK", "LANG", "FILE META", "LINES", "BYTES").
				WithWriter(cmd.OutOrStdout())

			if len(args) == 0 {
				src, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}

				if err := listBlocks(tbl, "<stdin>", src, filter); err != nil {
					return err
				}

				tbl.Print()

				return nil
			}

			files, err := resolveFiles(args)
			if err != nil {
				return err
			}

			for _, name := range files {
				src, err := os.ReadFile(name)
				if err != nil {
					return err
				}

				if err := listBlocks(tbl, name, src, filter); err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
			}

			tbl.Print()

			return nil
		},

		DisableAutoGenTag: true,
	}

	cmd.Flags().StringSliceVarP(&langs, "lang", "l", nil, "only list blocks whose language matches these glob patterns")

	return cmd
}

func listBlocks(tbl table.Table, name string, src []byte, filter func(string) bool) error {
	index := 0

	return codeblock.Scan(src, func(block *codeblock.Block) error {
		defer func() { index++ }()

		if !filter(block.Lang) {
			return nil
		}

		tbl.AddRow(name, index, block.Lang, block.Meta.Get("file"),
			fmt.Sprintf("%d-%d", block.StartLine, block.EndLine), len(block.Code))

		return nil
	})
}

// langFilter compiles glob patterns into a language predicate. With no
// patterns every language passes.
func langFilter(patterns []string) (func(string) bool, error) {
	if len(patterns) == 0 {
		return func(string) bool { return true }, nil
	}

	globs := make([]glob.Glob, len(patterns))

	for i, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad lang pattern %q: %w", pattern, err)
		}

		globs[i] = g
	}

	return func(lang string) bool {
		for _, g := range globs {
			if g.Match(lang) {
				return true
			}
		}

		return false
	}, nil
}
