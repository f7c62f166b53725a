package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sourcebook/sourcebook/pkg/errors"
	"github.com/sourcebook/sourcebook/pkg/pipeline"
)

// renderOpts holds the command-line flags for the root render command.
type renderOpts struct {
	output     string   // output PDF path
	extensions []string // filename suffixes to include (required)
	excludes   []string // filename suffixes to skip
	font       string   // custom body font: TTF path or installed font name
	fontSize   float64  // body font size in points
	theme      string   // highlight theme name
	configPath string   // explicit config file path
}

// renderCommand creates the root command: render a directory into a PDF.
//
// Default settings:
//   - output: output.pdf
//   - font: built-in monospace (Courier)
//   - font size: 10pt
//   - theme: colorful
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   appName + " [directory]",
		Short: "Sourcebook renders source trees as syntax-highlighted PDFs",
		Long: `Sourcebook renders a directory of source-code files into a single paginated
PDF document: each file on its own page(s) with per-token syntax coloring and
running line numbers. A file that cannot be read or tokenized gets an error
page instead of aborting the document.`,
		Args: cobra.ExactArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output PDF file (default "+pipeline.DefaultOutput+")")
	cmd.Flags().StringSliceVarP(&opts.extensions, "extensions", "e", nil, "file extensions to include, e.g. .py,.js (required unless configured)")
	cmd.Flags().StringSliceVarP(&opts.excludes, "exclude", "x", nil, "filename suffixes to skip, e.g. _test.py")
	cmd.Flags().StringVar(&opts.font, "font", "", "custom body font: TTF file path or installed font name")
	cmd.Flags().Float64Var(&opts.fontSize, "font-size", 0, fmt.Sprintf("body font size in points (default %g)", pipeline.DefaultFontSize))
	cmd.Flags().StringVar(&opts.theme, "theme", "", "highlight theme (default "+pipeline.DefaultTheme+", see 'sourcebook themes')")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default "+pipeline.ConfigFilename+" in the directory, if present)")

	return cmd
}

// runRender executes the pipeline for the root command and reports the outcome.
func (c *CLI) runRender(ctx context.Context, root string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	pipeOpts := pipeline.Options{
		Root:       root,
		Output:     opts.output,
		Extensions: opts.extensions,
		Excludes:   opts.excludes,
		Font:       opts.font,
		FontSize:   opts.fontSize,
		Theme:      opts.theme,
		Logger:     logger,
	}

	cfg, found, err := loadConfig(root, opts.configPath)
	if err != nil {
		return err
	}
	if found {
		pipeOpts.Merge(cfg)
	}

	prog := newProgress(logger)
	spin := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s", root))
	spin.Start()
	result, err := pipeline.NewRunner(logger).Execute(ctx, pipeOpts)
	spin.Stop()

	if errors.Is(err, errors.ErrCodeNoFilesMatched) {
		printInfo("No files found with the specified extensions.")
		return nil
	}
	if err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Rendered %d files onto %d pages", result.Rendered, result.Pages))
	if result.Failed > 0 {
		printWarning("%d file(s) failed and got error pages instead", result.Failed)
	}
	printSuccess("Successfully generated %s", result.Output)
	printFile(result.Output)

	return nil
}

// loadConfig resolves the effective config file: an explicit --config path
// must exist; otherwise the conventional file in the scan root is picked up
// when present.
func loadConfig(root, explicit string) (pipeline.Options, bool, error) {
	if explicit != "" {
		cfg, err := pipeline.LoadConfig(explicit)
		return cfg, err == nil, err
	}

	implied := filepath.Join(root, pipeline.ConfigFilename)
	if _, err := os.Stat(implied); err != nil {
		return pipeline.Options{}, false, nil
	}
	cfg, err := pipeline.LoadConfig(implied)
	return cfg, err == nil, err
}
