package book

import (
	"github.com/jung-kurt/gofpdf"

	"github.com/sourcebook/sourcebook/pkg/highlight"
)

// labelWidth is the width of the line-number gutter cell in document units.
const labelWidth = 12

// Canvas is the set of layout-engine primitives the token renderer paints
// through. The concrete implementation positions text on pages and handles
// vertical overflow; the renderer only decides what to paint and in which
// order.
type Canvas interface {
	// SetTextColor changes the color of subsequently painted text.
	SetTextColor(c highlight.RGB)

	// SetFontStyle switches the body font's bold/italic variant.
	SetFontStyle(bold, italic bool)

	// WriteRun paints text at the cursor and advances it inline.
	// The text never contains a line break.
	WriteRun(text string)

	// LineBreak moves the cursor to the start of the next line.
	LineBreak()

	// WriteLabel paints a line-number label in a fixed-width gutter cell and
	// leaves the cursor after the cell, on the same line.
	WriteLabel(text string)
}

// pdfCanvas adapts a gofpdf document to the Canvas interface.
// Page overflow is handled by the document's auto page break, so a long file
// flows onto continuation pages without renderer involvement.
type pdfCanvas struct {
	pdf       *gofpdf.Fpdf
	family    string
	size      float64
	lineHt    float64
	translate func(string) string
}

func (c *pdfCanvas) SetTextColor(rgb highlight.RGB) {
	c.pdf.SetTextColor(int(rgb.R), int(rgb.G), int(rgb.B))
}

func (c *pdfCanvas) SetFontStyle(bold, italic bool) {
	style := ""
	if bold {
		style += "B"
	}
	if italic {
		style += "I"
	}
	c.pdf.SetFont(c.family, style, c.size)
}

func (c *pdfCanvas) WriteRun(text string) {
	c.pdf.Write(c.lineHt, c.translate(text))
}

func (c *pdfCanvas) LineBreak() {
	c.pdf.Ln(c.lineHt)
}

func (c *pdfCanvas) WriteLabel(text string) {
	c.pdf.CellFormat(labelWidth, c.lineHt, c.translate(text), "", 0, "", false, 0, "")
}
