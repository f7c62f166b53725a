// Package fonts resolves a user-supplied font spec to TTF data.
//
// A spec is either a path to a TTF file or the name of an installed system
// font, looked up through the platform font directories. Resolution failure
// is not fatal to a document build: callers log a warning and fall back to
// the built-in monospace font.
package fonts

import (
	"os"

	"github.com/flopp/go-findfont"

	"github.com/sourcebook/sourcebook/pkg/errors"
)

// Resolve returns the TTF bytes for spec.
// A readable file path wins; otherwise the spec is treated as a font name and
// searched for in the system font directories.
func Resolve(spec string) ([]byte, error) {
	if spec == "" {
		return nil, errors.New(errors.ErrCodeFontNotFound, "font spec cannot be empty")
	}

	if info, err := os.Stat(spec); err == nil && info.Mode().IsRegular() {
		data, err := os.ReadFile(spec)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeFontLoad, err, "reading font file %s", spec)
		}
		return data, nil
	}

	path, err := findfont.Find(spec)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFontNotFound, err, "no font file or installed font named %q", spec)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFontLoad, err, "reading font file %s", path)
	}
	return data, nil
}
