package highlight

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/sourcebook/sourcebook/pkg/errors"
)

// DefaultTheme is the theme used when none is configured.
const DefaultTheme = "colorful"

// RGB is a color triple with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// Style is the resolved visual style for a run of characters.
type Style struct {
	Color  RGB
	Bold   bool
	Italic bool
}

// LineNumberColor is the fixed gray used for line-number labels,
// independent of the active theme.
var LineNumberColor = RGB{R: 128, G: 128, B: 128}

// Theme resolves token kinds to styles. A Theme never misses: unknown kinds
// inherit from the theme's plain-text entry.
type Theme struct {
	name  string
	style *chroma.Style
}

// NewTheme looks up a chroma style by name.
// Unknown names are an error rather than a silent fallback, so a typo in
// --theme surfaces immediately.
func NewTheme(name string) (*Theme, error) {
	if err := errors.ValidateThemeName(name); err != nil {
		return nil, err
	}
	style, ok := styles.Registry[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidTheme, "unknown theme %q", name)
	}
	return &Theme{name: name, style: style}, nil
}

// Name returns the theme's registry name.
func (t *Theme) Name() string {
	return t.name
}

// Resolve returns the style for a token kind. Entries without an explicit
// color resolve to black.
func (t *Theme) Resolve(kind chroma.TokenType) Style {
	entry := t.style.Get(kind)

	var c RGB
	if entry.Colour.IsSet() {
		c = RGB{R: entry.Colour.Red(), G: entry.Colour.Green(), B: entry.Colour.Blue()}
	}

	return Style{
		Color:  c,
		Bold:   entry.Bold == chroma.Yes,
		Italic: entry.Italic == chroma.Yes,
	}
}

// Default returns the style for plain text, used as the document's resting
// color before the first token and after the last.
func (t *Theme) Default() Style {
	return t.Resolve(chroma.Text)
}

// ThemeNames returns the names of all registered themes, sorted.
func ThemeNames() []string {
	return styles.Names()
}
