package color_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"numem/pkg/color"
)

func TestEnableColor(t *testing.T) {
	defer color.EnableColor(false)

	color.EnableColor(true)
	if !color.IsColorEnabled() {
		t.Fatalf("expected color enabled")
	}
	if got := color.RedText("x"); !strings.Contains(got, "\x1b[") || !strings.Contains(got, "x") {
		t.Errorf("expected ANSI sequence around text, got %q", got)
	}

	color.EnableColor(false)
	if color.IsColorEnabled() {
		t.Fatalf("expected color disabled")
	}
	if got := color.RedText("x"); got != "x" {
		t.Errorf("expected plain text, got %q", got)
	}
	if got := color.Error("boom"); got != "Error: boom" {
		t.Errorf("unexpected error text %q", got)
	}
	if got := color.Position(3, 7); got != "Line: 3, Column 7" {
		t.Errorf("unexpected position %q", got)
	}
}

func TestPaletteFollowsWriter(t *testing.T) {
	defer color.EnableColor(false)
	t.Setenv("CLICOLOR_FORCE", "")

	var buf bytes.Buffer
	color.EnableColor(true)

	if color.For(&buf).Enabled() {
		t.Errorf("expected no colour for a buffer")
	}
	if got := color.For(&buf).Green("x"); got != "x" {
		t.Errorf("expected plain text for a buffer, got %q", got)
	}
	if !color.For(os.Stdout).Enabled() {
		t.Errorf("expected colour for stdout when enabled")
	}

	color.EnableColor(false)
	if color.For(os.Stdout).Enabled() {
		t.Errorf("expected no colour for stdout when disabled")
	}
}
