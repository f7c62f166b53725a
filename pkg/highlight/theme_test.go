package highlight

import (
	"testing"

	"github.com/alecthomas/chroma/v2"

	"github.com/sourcebook/sourcebook/pkg/errors"
)

func TestNewTheme(t *testing.T) {
	tests := []struct {
		name    string
		theme   string
		wantErr bool
	}{
		{"default theme exists", DefaultTheme, false},
		{"another known theme", "monokai", false},
		{"unknown theme", "no-such-theme", true},
		{"empty name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTheme(tt.theme)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewTheme(%q) error = %v, wantErr %v", tt.theme, err, tt.wantErr)
			}
		})
	}
}

func TestNewThemeUnknownCode(t *testing.T) {
	_, err := NewTheme("no-such-theme")
	if !errors.Is(err, errors.ErrCodeInvalidTheme) {
		t.Errorf("NewTheme() code = %q, want %q", errors.GetCode(err), errors.ErrCodeInvalidTheme)
	}
}

func TestResolveNeverMisses(t *testing.T) {
	theme, err := NewTheme(DefaultTheme)
	if err != nil {
		t.Fatalf("NewTheme() error = %v", err)
	}

	// Every kind resolves to some style, including kinds the theme does not
	// mention explicitly.
	kinds := []chroma.TokenType{
		chroma.Keyword,
		chroma.LiteralString,
		chroma.Comment,
		chroma.Text,
		chroma.None,
		chroma.TokenType(99999),
	}
	for _, kind := range kinds {
		// Must not panic; resulting style is always usable.
		_ = theme.Resolve(kind)
	}
}

func TestResolveConsistentWithDefault(t *testing.T) {
	theme, err := NewTheme(DefaultTheme)
	if err != nil {
		t.Fatalf("NewTheme() error = %v", err)
	}

	if got, want := theme.Resolve(chroma.Text), theme.Default(); got != want {
		t.Errorf("Resolve(Text) = %+v, want Default() %+v", got, want)
	}
}

func TestLineNumberColorIsFixedGray(t *testing.T) {
	want := RGB{R: 128, G: 128, B: 128}
	if LineNumberColor != want {
		t.Errorf("LineNumberColor = %+v, want %+v", LineNumberColor, want)
	}
}

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) == 0 {
		t.Fatal("ThemeNames() returned no names")
	}

	found := false
	for _, n := range names {
		if n == DefaultTheme {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("ThemeNames() missing %q", DefaultTheme)
	}
}
