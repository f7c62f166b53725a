package cli

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/sourcebook/sourcebook/pkg/highlight"
)

func TestLanguagesCommand(t *testing.T) {
	c := New(os.Stderr, LogInfo)
	cmd := c.languagesCommand()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(nil)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("languages command failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) < 100 {
		t.Errorf("expected a long language list, got %d entries", len(lines))
	}

	found := false
	for _, l := range lines {
		if l == "Python" {
			found = true
			break
		}
	}
	if !found {
		t.Error("Python missing from language list")
	}
}

func TestThemesCommand(t *testing.T) {
	c := New(os.Stderr, LogInfo)
	cmd := c.themesCommand()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(nil)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("themes command failed: %v", err)
	}

	if !strings.Contains(out.String(), highlight.DefaultTheme+" (default)") {
		t.Errorf("default theme not marked in output:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "monokai") {
		t.Error("monokai missing from theme list")
	}
}
