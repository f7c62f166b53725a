// Package pipeline provides the scan → highlight → assemble pipeline for
// Sourcebook.
//
// The pipeline discovers source files under a root directory, renders each
// one into the document with syntax coloring and line numbers, and writes the
// finished PDF. Centralizing this here keeps the CLI thin and gives tests a
// single entry point.
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/sourcebook/sourcebook/pkg/errors"
	"github.com/sourcebook/sourcebook/pkg/highlight"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultOutput is the output filename when none is configured.
	DefaultOutput = "output.pdf"

	// DefaultFontSize is the body font size in points.
	DefaultFontSize = 10.0
)

// DefaultTheme is the default highlight theme name.
const DefaultTheme = highlight.DefaultTheme

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a document build.
// The TOML tags let the same struct back the optional config file.
type Options struct {
	// Root is the directory to scan for source files.
	Root string `toml:"root"`

	// Output is the path the finished PDF is written to.
	Output string `toml:"output"`

	// Extensions is the set of filename suffixes to include. Required.
	// Entries are normalized to carry a leading dot.
	Extensions []string `toml:"extensions"`

	// Excludes is an optional set of filename suffixes to skip.
	Excludes []string `toml:"excludes"`

	// Font is an optional custom body font: a TTF file path or an installed
	// font name. Empty means the built-in monospace font.
	Font string `toml:"font"`

	// FontSize is the body font size in points.
	FontSize float64 `toml:"font_size"`

	// Theme is the highlight theme name.
	Theme string `toml:"theme"`

	// Runtime options (not read from config files)
	Logger *log.Logger `toml:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `toml:"-"`
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if o.Root == "" {
		return errors.New(errors.ErrCodeInvalidInput, "root directory is required")
	}
	if len(o.Extensions) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "at least one extension is required")
	}

	for i, ext := range o.Extensions {
		if err := errors.ValidateExtension(ext); err != nil {
			return err
		}
		o.Extensions[i] = errors.NormalizeExtension(ext)
	}
	for _, suffix := range o.Excludes {
		if err := errors.ValidateExtension(suffix); err != nil {
			return err
		}
	}

	if o.Output == "" {
		o.Output = DefaultOutput
	}
	if err := errors.ValidateOutputPath(o.Output); err != nil {
		return err
	}

	if o.FontSize == 0 {
		o.FontSize = DefaultFontSize
	}
	if err := errors.ValidateFontSize(o.FontSize); err != nil {
		return err
	}

	if o.Theme == "" {
		o.Theme = DefaultTheme
	}
	if err := errors.ValidateThemeName(o.Theme); err != nil {
		return err
	}

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

// =============================================================================
// Result
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// Files is the discovered file list, in page order.
	Files []string

	// Rendered is the number of files whose body rendered cleanly.
	Rendered int

	// Failed is the number of files replaced by an in-document error page.
	Failed int

	// Pages is the page count of the finished document.
	Pages int

	// Output is the path the document was written to.
	Output string

	// Stats contains timing information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ScanTime   time.Duration
	RenderTime time.Duration
	WriteTime  time.Duration
}
