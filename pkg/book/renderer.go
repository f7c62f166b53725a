// Package book renders tokenized source files into a paginated document.
//
// The package splits into three layers: LineCounter tracks running line
// numbers, Renderer turns a flat token sequence into ordered paint
// instructions on a Canvas, and Builder assembles whole files (header, body,
// error substitution) into a single PDF.
package book

import (
	"strings"

	"github.com/alecthomas/chroma/v2"

	"github.com/sourcebook/sourcebook/pkg/highlight"
)

// Renderer transforms one file's token sequence into paint instructions.
//
// Tokens arrive in order and may contain embedded line breaks (block comments,
// multi-line strings); the renderer splits them so that every painted run is
// break-free, interleaving line-number labels at each break. A token's color
// survives its own line breaks: the continuation line of a multi-line string
// keeps the string color, not the default.
type Renderer struct {
	theme *highlight.Theme
}

// NewRenderer returns a renderer that resolves token styles via theme.
func NewRenderer(theme *highlight.Theme) *Renderer {
	return &Renderer{theme: theme}
}

// Render paints the token sequence of a single file onto c.
//
// The first instruction is always the gray label for line 1, followed by a
// reset to the theme's default text color. After the last token the default
// color is restored, so whatever is painted next is unaffected by the final
// token's style. Render returns the number of the last line painted.
func (r *Renderer) Render(c Canvas, tokens []chroma.Token) int {
	counter := NewLineCounter()
	def := r.theme.Default()

	c.SetTextColor(highlight.LineNumberColor)
	c.WriteLabel(counter.Label())
	c.SetTextColor(def.Color)

	for _, tok := range tokens {
		style := r.theme.Resolve(tok.Type)
		c.SetFontStyle(style.Bold, style.Italic)
		c.SetTextColor(style.Color)

		segments := strings.Split(tok.Value, "\n")
		for i, segment := range segments {
			if segment != "" {
				c.WriteRun(segment)
			}
			if i < len(segments)-1 {
				c.LineBreak()
				counter.Advance()
				c.SetTextColor(highlight.LineNumberColor)
				c.WriteLabel(counter.Label())
				c.SetTextColor(style.Color)
			}
		}
	}

	c.SetTextColor(def.Color)
	return counter.Current()
}
