// Package fsutil provides file system utility functions.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// FindConfigFiles walks all given paths and returns a flat, deduplicated list
// of files whose extension matches one of the given extensions. A path that
// does not exist is silently skipped; a configured-but-absent directory is
// not an error. Extensions must include the leading dot.
func FindConfigFiles(paths []string, extensions ...string) ([]string, error) {
	if len(extensions) == 0 {
		panic("at least one extension is required")
	}

	wanted := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		wanted[ext] = struct{}{}
	}

	var allFiles []string
	seen := make(map[string]struct{})

	collect := func(p string) {
		if _, ok := wanted[filepath.Ext(p)]; !ok {
			return
		}
		if _, wasSeen := seen[p]; wasSeen {
			return
		}
		allFiles = append(allFiles, p)
		seen[p] = struct{}{}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if !info.IsDir() {
			collect(path)
			continue
		}

		err = filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !info.IsDir() {
				collect(p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return allFiles, nil
}
