// File: pkg/combine/discover.go
package combine

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
)

// Discover lists the entries directly inside dir whose name carries the
// fragment extension, sorted by name. It does not descend into
// sub-directories; a directory that matches is still listed and fails
// later when read. An existing directory without fragments yields an
// empty slice and a nil error.
func Discover(dir string) ([]Fragment, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if isMissing(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, dir)
		}
		return nil, fmt.Errorf("%w: cannot access input directory %s: %w", ErrUnexpected, dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot list input directory %s: %w", ErrUnexpected, dir, err)
	}

	fragments := []Fragment{}
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, FragmentExtension) {
			continue
		}
		fragments = append(fragments, Fragment{
			Path: filepath.Join(dir, name),
			Name: name,
			Stem: stem(name),
		})
	}

	// os.ReadDir already sorts, but the order is part of the output format.
	sort.Slice(fragments, func(i, j int) bool {
		return fragments[i].Name < fragments[j].Name
	})
	return fragments, nil
}

// isMissing reports whether a stat error means the path cannot exist:
// absent, below a non-directory, or behind a symlink loop.
func isMissing(err error) bool {
	return errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, syscall.ENOTDIR) ||
		errors.Is(err, syscall.ELOOP)
}

// stem strips the last extension from name. A dot-file with no other
// extension keeps its full name.
func stem(name string) string {
	ext := filepath.Ext(name)
	if ext == name {
		return name
	}
	return strings.TrimSuffix(name, ext)
}
