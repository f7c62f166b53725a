package pipeline

import (
	"context"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/sourcebook/sourcebook/pkg/book"
	"github.com/sourcebook/sourcebook/pkg/errors"
	"github.com/sourcebook/sourcebook/pkg/fonts"
	"github.com/sourcebook/sourcebook/pkg/observability"
	"github.com/sourcebook/sourcebook/pkg/scan"
)

// Runner executes the document build pipeline.
//
// The Runner is stateless except for its logger - it doesn't store build
// results, so the same Runner can serve multiple builds with different
// options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner with the given logger.
// If logger is nil, the default logger is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete scan → highlight → assemble pipeline and writes
// the finished document to opts.Output.
//
// Zero matching files is reported as ErrCodeNoFilesMatched and no output file
// is written; the caller decides how loudly to report that. Per-file failures
// never fail the build - they become error pages and are counted in
// Result.Failed. Only an invalid configuration or a failure to write the
// output is returned as an error.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if opts.Logger != nil {
		r.Logger = opts.Logger
	}
	hooks := observability.Render()

	result := &Result{}

	// Stage 1: Discover
	scanStart := time.Now()
	files, err := scan.Find(opts.Root, scan.Filter{
		Extensions: opts.Extensions,
		Excludes:   opts.Excludes,
	})
	if err != nil {
		return nil, err
	}
	result.Files = files
	result.Stats.ScanTime = time.Since(scanStart)

	if len(files) == 0 {
		return nil, errors.New(errors.ErrCodeNoFilesMatched,
			"no files under %s match %v", opts.Root, opts.Extensions)
	}

	r.Logger.Info("discovered files",
		"count", len(files),
		"duration", result.Stats.ScanTime)
	hooks.OnDocumentStart(ctx, len(files))

	// Stage 2: Assemble
	builder, err := r.newBuilder(opts)
	if err != nil {
		return nil, err
	}

	renderStart := time.Now()
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		hooks.OnFileStart(ctx, path)
		fileStart := time.Now()
		res := builder.AddFile(path)
		hooks.OnFileComplete(ctx, path, res.Language, res.Lines, time.Since(fileStart), res.Err)

		if res.Err != nil {
			result.Failed++
			r.Logger.Warn("file failed, error page substituted",
				"path", path,
				"reason", errors.UserMessage(res.Err))
			continue
		}
		result.Rendered++
		r.Logger.Debug("rendered file",
			"path", path,
			"language", res.Language,
			"lines", res.Lines)
	}
	result.Stats.RenderTime = time.Since(renderStart)

	// Stage 3: Write
	writeStart := time.Now()
	err = builder.Save(opts.Output)
	result.Stats.WriteTime = time.Since(writeStart)
	result.Pages = builder.PageCount()
	hooks.OnDocumentComplete(ctx, opts.Output, result.Pages, result.Stats.WriteTime, err)
	if err != nil {
		return nil, err
	}
	result.Output = opts.Output

	r.Logger.Info("wrote document",
		"output", opts.Output,
		"pages", result.Pages,
		"rendered", result.Rendered,
		"failed", result.Failed,
		"duration", result.Stats.RenderTime+result.Stats.WriteTime)

	return result, nil
}

// newBuilder constructs the document builder, resolving the custom font if
// one is configured. Font resolution failure downgrades to the built-in
// monospace font with a warning.
func (r *Runner) newBuilder(opts Options) (*book.Builder, error) {
	var fontData []byte
	if opts.Font != "" {
		data, err := fonts.Resolve(opts.Font)
		if err != nil {
			r.Logger.Warnf("Font %q unavailable, falling back to %s: %s",
				opts.Font, book.BuiltinFont, errors.UserMessage(err))
		} else {
			fontData = data
		}
	}

	return book.NewBuilder(book.Options{
		Theme:    opts.Theme,
		FontTTF:  fontData,
		FontSize: opts.FontSize,
		Title:    filepath.Base(opts.Root),
	}, r.Logger)
}
