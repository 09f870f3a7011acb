package cmd

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/gobwas/glob"
)

// resolveFiles turns command line arguments into file paths. An argument
// naming an existing file is used as-is; anything else is treated as a
// glob pattern matched against the current directory tree.
func resolveFiles(args []string) ([]string, error) {
	var files []string

	var patterns []string

	for _, arg := range args {
		if info, err := os.Stat(arg); err == nil && !info.IsDir() {
			files = append(files, arg)

			continue
		}

		patterns = append(patterns, arg)
	}

	if len(patterns) > 0 {
		matched, err := matchFiles(os.DirFS("."), patterns)
		if err != nil {
			return nil, err
		}

		files = append(files, matched...)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no files match %v", args)
	}

	return files, nil
}

// matchFiles walks fsys and returns every file whose slash-separated path
// matches at least one of the glob patterns.
func matchFiles(fsys fs.FS, patterns []string) ([]string, error) {
	globs := make([]glob.Glob, len(patterns))

	for i, pattern := range patterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}

		globs[i] = g
	}

	var files []string

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, err error) error {
		if err != nil || entry.IsDir() {
			return err
		}

		for _, g := range globs {
			if g.Match(path) {
				files = append(files, path)

				break
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}
