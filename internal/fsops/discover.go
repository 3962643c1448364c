package fsops

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// JunkFiles are OS droppings that should not count as content when comparing
// directory trees.
var JunkFiles = []string{".DS_Store", "Thumbs.db"}

// IsJunk reports whether base is a junk file name.
func IsJunk(base string) bool {
	for _, j := range JunkFiles {
		if base == j {
			return true
		}
	}
	return false
}

// Discover walks root without following symlinks and returns every directory
// and file below it, deepest and longest paths first. Renaming in that order
// means a directory is always renamed after everything inside it, so no
// pending rename ever loses its prefix. The root itself is not listed.
func Discover(root string) (dirs, files []string, err error) {
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if path == root {
			return nil
		}
		if d.IsDir() {
			dirs = append(dirs, path)
		} else {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	sortDeepestFirst(dirs)
	sortDeepestFirst(files)
	return dirs, files, nil
}

// sortDeepestFirst orders paths by descending separator count, then by
// descending rune length. Ties keep walk order, which is already lexical.
func sortDeepestFirst(paths []string) {
	sep := string(os.PathSeparator)
	sort.SliceStable(paths, func(i, j int) bool {
		di, dj := strings.Count(paths[i], sep), strings.Count(paths[j], sep)
		if di != dj {
			return di > dj
		}
		return len([]rune(paths[i])) > len([]rune(paths[j]))
	})
}

// FindLongPaths returns every path under root longer than maxPathLen runes,
// sorted alphabetically. The root itself is not counted.
func FindLongPaths(root string, maxPathLen int) ([]string, error) {
	var long []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if path == root {
			return nil
		}
		if len([]rune(path)) > maxPathLen {
			long = append(long, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(long)
	return long, nil
}
