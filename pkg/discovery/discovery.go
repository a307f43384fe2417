// Package discovery finds the files a scan will cover. It is a collaborator
// of the engine, not part of it: the scanner consumes a plain file list and
// owes nothing to traversal policy.
package discovery

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultInclude covers the UI source extensions scanned out of the box.
var DefaultInclude = []string{
	"**/*.tsx",
	"**/*.jsx",
	"**/*.ts",
	"**/*.js",
	"**/*.html",
}

// DefaultExclude skips build output and vendored trees.
var DefaultExclude = []string{
	"**/node_modules/**",
	"**/dist/**",
	"**/build/**",
	"**/.next/**",
	"**/coverage/**",
}

// Options configures a discovery walk. Empty slices take the defaults.
type Options struct {
	Include []string
	Exclude []string
}

// Discover walks root and returns every file matching the include patterns
// and none of the exclude patterns. Patterns are doublestar globs matched
// against the slash-separated path relative to root. Unreadable directory
// entries are skipped, not fatal.
func Discover(root string, opts Options) ([]string, error) {
	include := opts.Include
	if len(include) == 0 {
		include = DefaultInclude
	}
	exclude := opts.Exclude
	if len(exclude) == 0 {
		exclude = DefaultExclude
	}

	for _, pattern := range append(append([]string{}, include...), exclude...) {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid pattern: %s", pattern)
		}
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}

		relPath, rerr := filepath.Rel(root, path)
		if rerr != nil {
			relPath = path
		}
		relPath = filepath.ToSlash(relPath)

		for _, pattern := range exclude {
			if matched, _ := doublestar.PathMatch(pattern, relPath); matched {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
		}

		if d.IsDir() {
			return nil
		}

		for _, pattern := range include {
			if matched, _ := doublestar.PathMatch(pattern, relPath); matched {
				files = append(files, path)
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
