// Package scan discovers the source files a document is built from.
//
// Discovery is a recursive walk of a root directory in lexical order, so the
// resulting page order is stable across runs. Selection is by filename suffix:
// a file is included when it matches any accepted suffix and no excluded
// suffix. Both checks are case-sensitive, and exclusion wins when a file
// matches both sets.
package scan

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/sourcebook/sourcebook/pkg/errors"
)

// Filter selects files by filename suffix.
type Filter struct {
	// Extensions is the set of accepted suffixes (e.g., ".py", ".go").
	// At least one must match for a file to be selected.
	Extensions []string

	// Excludes is an optional set of rejected suffixes (e.g., "_test.py").
	// A match here rejects the file regardless of Extensions.
	Excludes []string
}

// Match reports whether a filename passes the filter.
func (f Filter) Match(name string) bool {
	for _, suffix := range f.Excludes {
		if strings.HasSuffix(name, suffix) {
			return false
		}
	}
	for _, suffix := range f.Extensions {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

// Find walks root recursively and returns the paths of all regular files that
// pass the filter, in lexical walk order. An unreadable directory aborts the
// walk with an error; unreadable files are reported later, when the document
// builder tries to read them.
func Find(root string, filter Filter) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if filter.Match(d.Name()) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "scanning %s", root)
	}

	return files, nil
}
