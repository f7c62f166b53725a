package book

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/jung-kurt/gofpdf"

	"github.com/sourcebook/sourcebook/pkg/errors"
	"github.com/sourcebook/sourcebook/pkg/highlight"
)

const (
	// DefaultFontSize is the body font size in points.
	DefaultFontSize = 10.0

	// BuiltinFont is the monospace core font used when no custom font is
	// configured or the custom font fails to load. Core fonts are always
	// available and need no embedding.
	BuiltinFont = "Courier"

	// customFontFamily is the registration name for a user-supplied font.
	customFontFamily = "SourcebookBody"

	// pageBreakMargin is the bottom margin (mm) that triggers an automatic
	// page break when body text overflows.
	pageBreakMargin = 15

	// headerLineHeight and headerGap size the two-line file header (mm).
	headerLineHeight = 10
	headerGap        = 10

	// lineHeightFactor scales the font's unit size into the body line height.
	lineHeightFactor = 1.25
)

// Options configures a document build.
type Options struct {
	// Theme is the highlight theme name. Empty means highlight.DefaultTheme.
	Theme string

	// FontTTF is an optional custom body font. When nil, or when the data is
	// not a loadable TTF, the built-in monospace font is used.
	FontTTF []byte

	// FontSize is the body font size in points. Zero means DefaultFontSize.
	FontSize float64

	// Title is the document title recorded in the PDF metadata.
	Title string
}

// FileResult describes the outcome of rendering one file into the document.
type FileResult struct {
	Path     string
	Language string // lexer name; empty when rendering failed before selection
	Lines    int    // last line number painted; zero when the body was not rendered
	Err      error  // per-file failure; the document contains an error page instead
}

// Builder assembles source files into a single paginated PDF.
//
// Files are added strictly sequentially. Every file starts a new page with a
// two-line header; overflow pages carry no header. A file that cannot be
// read, decoded, or tokenized gets an error paragraph in place of its body,
// and the build continues, so one bad file never costs the whole document.
type Builder struct {
	pdf      *gofpdf.Fpdf
	theme    *highlight.Theme
	renderer *Renderer
	logger   *log.Logger

	fontSize   float64
	bodyFamily string

	// translate maps text into the encoding of the active font: the cp1252
	// fallback translator for core fonts (unencodable runes become
	// placeholders), identity for a custom UTF-8 font.
	translate     func(string) string
	bodyTranslate func(string) string
}

// NewBuilder creates an empty document.
// A custom font that fails to load is a warning, not an error: the builder
// falls back to the built-in monospace font and keeps going.
func NewBuilder(opts Options, logger *log.Logger) (*Builder, error) {
	if logger == nil {
		logger = log.Default()
	}

	themeName := opts.Theme
	if themeName == "" {
		themeName = highlight.DefaultTheme
	}
	theme, err := highlight.NewTheme(themeName)
	if err != nil {
		return nil, err
	}

	fontSize := opts.FontSize
	if fontSize == 0 {
		fontSize = DefaultFontSize
	}
	if err := errors.ValidateFontSize(fontSize); err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, pageBreakMargin)
	pdf.SetCreator("sourcebook", true)
	if opts.Title != "" {
		pdf.SetTitle(opts.Title, true)
	}

	translate := pdf.UnicodeTranslatorFromDescriptor("")

	b := &Builder{
		pdf:           pdf,
		theme:         theme,
		renderer:      NewRenderer(theme),
		logger:        logger,
		fontSize:      fontSize,
		bodyFamily:    BuiltinFont,
		translate:     translate,
		bodyTranslate: translate,
	}

	if len(opts.FontTTF) > 0 {
		if err := b.registerBodyFont(opts.FontTTF); err != nil {
			logger.Warnf("Custom font unusable, falling back to %s: %v", BuiltinFont, errors.UserMessage(err))
		}
	}

	return b, nil
}

// registerBodyFont installs a custom TTF as the body font under all four
// style variants. The data is probed on a scratch document first because
// gofpdf errors are sticky and would otherwise poison the real document.
func (b *Builder) registerBodyFont(data []byte) error {
	probe := gofpdf.New("P", "mm", "A4", "")
	probe.AddUTF8FontFromBytes(customFontFamily, "", data)
	if probe.Err() {
		return errors.Wrap(errors.ErrCodeFontLoad, probe.Error(), "loading custom font")
	}

	// A single TTF has no bold/italic variants; register the same face for
	// every style so style switches cannot hit an unknown font.
	for _, style := range []string{"", "B", "I", "BI"} {
		b.pdf.AddUTF8FontFromBytes(customFontFamily, style, data)
	}
	b.bodyFamily = customFontFamily
	b.bodyTranslate = func(s string) string { return s }
	return nil
}

// AddFile renders one file onto a fresh page. The returned FileResult carries
// the per-file error, if any; the document itself always gains a page.
func (b *Builder) AddFile(path string) FileResult {
	b.pdf.AddPage()
	b.writeHeader(path)

	content, err := readText(path)
	if err != nil {
		b.writeErrorParagraph(path, err)
		return FileResult{Path: path, Err: err}
	}

	lexer, err := highlight.ForFile(path, content)
	if err != nil {
		b.writeErrorParagraph(path, err)
		return FileResult{Path: path, Err: err}
	}

	tokens, err := highlight.Tokenize(lexer, content)
	if err != nil {
		b.writeErrorParagraph(path, err)
		return FileResult{Path: path, Language: lexer.Config().Name, Err: err}
	}

	b.pdf.SetFont(b.bodyFamily, "", b.fontSize)
	_, unitSize := b.pdf.GetFontSize()
	canvas := &pdfCanvas{
		pdf:       b.pdf,
		family:    b.bodyFamily,
		size:      b.fontSize,
		lineHt:    unitSize * lineHeightFactor,
		translate: b.bodyTranslate,
	}
	lines := b.renderer.Render(canvas, tokens)

	return FileResult{Path: path, Language: lexer.Config().Name, Lines: lines}
}

// writeHeader paints the centered two-line file header and the gap below it.
func (b *Builder) writeHeader(path string) {
	b.pdf.SetTextColor(0, 0, 0)
	b.pdf.SetFont("Helvetica", "B", 16)
	b.pdf.CellFormat(0, headerLineHeight, b.translate("File: "+filepath.Base(path)), "", 1, "C", false, 0, "")
	b.pdf.SetFont("Helvetica", "I", 10)
	b.pdf.CellFormat(0, headerLineHeight, b.translate("Path: "+path), "", 1, "C", false, 0, "")
	b.pdf.Ln(headerGap)
}

// writeErrorParagraph substitutes a plain error paragraph for a file body.
func (b *Builder) writeErrorParagraph(path string, cause error) {
	b.pdf.SetTextColor(0, 0, 0)
	b.pdf.SetFont("Helvetica", "", 12)
	msg := fmt.Sprintf("Error processing file %s: %s", path, errors.UserMessage(cause))
	b.pdf.MultiCell(0, headerLineHeight, b.translate(msg), "", "L", false)
}

// PageCount returns the number of pages assembled so far.
func (b *Builder) PageCount() int {
	return b.pdf.PageCount()
}

// Output finalizes the document and writes it to w.
// Serialization failure is fatal and propagates to the caller.
func (b *Builder) Output(w io.Writer) error {
	if err := b.pdf.Output(w); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "writing document")
	}
	return nil
}

// Save finalizes the document and writes it to path.
func (b *Builder) Save(path string) error {
	if err := b.pdf.OutputFileAndClose(path); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "writing %s", path)
	}
	return nil
}

// readText reads a file and verifies it decodes as UTF-8 text.
// Invalid byte sequences are a per-file decode error rather than something to
// paint mangled.
func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeFileUnreadable, err, "reading %s", path)
	}
	if !utf8.Valid(data) {
		return "", errors.New(errors.ErrCodeFileUndecodable, "%s is not valid UTF-8 text", path)
	}
	return string(data), nil
}
