package fonts

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sourcebook/sourcebook/pkg/errors"
)

func TestResolveFilePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mono.ttf")
	content := []byte("fake ttf data")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	data, err := Resolve(path)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if !bytes.Equal(data, content) {
		t.Error("Resolve() returned different bytes than the file")
	}
}

func TestResolveEmpty(t *testing.T) {
	_, err := Resolve("")
	if !errors.Is(err, errors.ErrCodeFontNotFound) {
		t.Errorf("Resolve(\"\") code = %q, want %q", errors.GetCode(err), errors.ErrCodeFontNotFound)
	}
}

func TestResolveMissing(t *testing.T) {
	_, err := Resolve("definitely-not-an-installed-font-name")
	if !errors.Is(err, errors.ErrCodeFontNotFound) {
		t.Errorf("Resolve() code = %q, want %q", errors.GetCode(err), errors.ErrCodeFontNotFound)
	}
}
