package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestWrapInBox_TitleInTopBorder(t *testing.T) {
	out := WrapInBox("Logs · web", "line one\nline two", 30, false)
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected top border, 2 body lines and bottom border, got %d lines", len(lines))
	}

	top := ansi.Strip(lines[0])
	if !strings.HasPrefix(top, "╭─ Logs · web ") || !strings.HasSuffix(top, "╮") {
		t.Fatalf("unexpected top border %q", top)
	}
	if !strings.Contains(ansi.Strip(lines[1]), "line one") {
		t.Fatalf("expected content in first body line, got %q", lines[1])
	}

	want := lipgloss.Width(lines[1])
	for i, l := range lines {
		if w := lipgloss.Width(l); w != want {
			t.Errorf("line %d width %d, want %d", i, w, want)
		}
	}
}

func TestWrapInBox_LongTitleTruncated(t *testing.T) {
	title := strings.Repeat("x", 80)
	out := WrapInBox(title, "body", 20, true)
	lines := strings.Split(out, "\n")

	top := ansi.Strip(lines[0])
	if !strings.Contains(top, "…") {
		t.Fatalf("expected truncated title, got %q", top)
	}
	if lipgloss.Width(lines[0]) != lipgloss.Width(lines[1]) {
		t.Fatalf("top border width %d != body width %d", lipgloss.Width(lines[0]), lipgloss.Width(lines[1]))
	}
}
