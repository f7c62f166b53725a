package book

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sourcebook/sourcebook/pkg/errors"
)

func TestBuilderRendersFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hello.py")
	if err := os.WriteFile(path, []byte("def greet():\n    print('hi')\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	b, err := NewBuilder(Options{}, nil)
	if err != nil {
		t.Fatalf("NewBuilder() error = %v", err)
	}

	res := b.AddFile(path)
	if res.Err != nil {
		t.Fatalf("AddFile() error = %v", res.Err)
	}
	if res.Language != "Python" {
		t.Errorf("Language = %q, want %q", res.Language, "Python")
	}
	if res.Lines < 2 {
		t.Errorf("Lines = %d, want >= 2", res.Lines)
	}
	if b.PageCount() != 1 {
		t.Errorf("PageCount() = %d, want 1", b.PageCount())
	}

	var buf bytes.Buffer
	if err := b.Output(&buf); err != nil {
		t.Fatalf("Output() error = %v", err)
	}
	if !strings.HasPrefix(buf.String(), "%PDF-") {
		t.Error("output does not start with a PDF header")
	}
}

func TestBuilderMissingFileGetsErrorPage(t *testing.T) {
	b, err := NewBuilder(Options{}, nil)
	if err != nil {
		t.Fatalf("NewBuilder() error = %v", err)
	}

	res := b.AddFile(filepath.Join(t.TempDir(), "missing.py"))
	if !errors.Is(res.Err, errors.ErrCodeFileUnreadable) {
		t.Errorf("AddFile() code = %q, want %q", errors.GetCode(res.Err), errors.ErrCodeFileUnreadable)
	}
	// The failed file still occupies a page.
	if b.PageCount() != 1 {
		t.Errorf("PageCount() = %d, want 1", b.PageCount())
	}
}

func TestBuilderUndecodableFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "binary.py")
	if err := os.WriteFile(path, []byte{0xff, 0xfe, 0x00, 0x80}, 0o644); err != nil {
		t.Fatal(err)
	}

	b, err := NewBuilder(Options{}, nil)
	if err != nil {
		t.Fatalf("NewBuilder() error = %v", err)
	}

	res := b.AddFile(path)
	if !errors.Is(res.Err, errors.ErrCodeFileUndecodable) {
		t.Errorf("AddFile() code = %q, want %q", errors.GetCode(res.Err), errors.ErrCodeFileUndecodable)
	}
}

func TestBuilderContinuesAfterFailure(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.py")
	if err := os.WriteFile(good, []byte("x = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	b, err := NewBuilder(Options{}, nil)
	if err != nil {
		t.Fatalf("NewBuilder() error = %v", err)
	}

	bad := b.AddFile(filepath.Join(dir, "missing.py"))
	if bad.Err == nil {
		t.Fatal("AddFile(missing) error = nil, want error")
	}

	res := b.AddFile(good)
	if res.Err != nil {
		t.Fatalf("AddFile(good) after failure error = %v", res.Err)
	}
	if b.PageCount() != 2 {
		t.Errorf("PageCount() = %d, want 2", b.PageCount())
	}

	var buf bytes.Buffer
	if err := b.Output(&buf); err != nil {
		t.Fatalf("Output() error = %v", err)
	}
}

func TestBuilderInvalidThemeRejected(t *testing.T) {
	_, err := NewBuilder(Options{Theme: "no-such-theme"}, nil)
	if !errors.Is(err, errors.ErrCodeInvalidTheme) {
		t.Errorf("NewBuilder() code = %q, want %q", errors.GetCode(err), errors.ErrCodeInvalidTheme)
	}
}

func TestBuilderInvalidFontSizeRejected(t *testing.T) {
	_, err := NewBuilder(Options{FontSize: 200}, nil)
	if !errors.Is(err, errors.ErrCodeInvalidFontSize) {
		t.Errorf("NewBuilder() code = %q, want %q", errors.GetCode(err), errors.ErrCodeInvalidFontSize)
	}
}

func TestBuilderBadFontFallsBack(t *testing.T) {
	// Not a TTF; the builder must warn and keep the built-in font.
	b, err := NewBuilder(Options{FontTTF: []byte("not a font")}, nil)
	if err != nil {
		t.Fatalf("NewBuilder() error = %v", err)
	}
	if b.bodyFamily != BuiltinFont {
		t.Errorf("bodyFamily = %q, want %q", b.bodyFamily, BuiltinFont)
	}

	// The document still renders.
	dir := t.TempDir()
	path := filepath.Join(dir, "a.py")
	if err := os.WriteFile(path, []byte("x = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if res := b.AddFile(path); res.Err != nil {
		t.Fatalf("AddFile() error = %v", res.Err)
	}
}

func TestBuilderSave(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.py")
	if err := os.WriteFile(src, []byte("x = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	b, err := NewBuilder(Options{Title: "test"}, nil)
	if err != nil {
		t.Fatalf("NewBuilder() error = %v", err)
	}
	b.AddFile(src)

	out := filepath.Join(dir, "out.pdf")
	if err := b.Save(out); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("saved file does not start with a PDF header")
	}
}
