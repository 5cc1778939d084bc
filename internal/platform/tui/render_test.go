package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(4, 0, '#', core.ColorGreen)
	s.DrawText(1, 1, "cd")

	got := ansi.Strip(RenderScreen(s))
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, expected 2", len(lines))
	}
	if lines[0] != "ab  # " {
		t.Errorf("line 0 = %q, expected %q", lines[0], "ab  # ")
	}
	if lines[1] != " cd   " {
		t.Errorf("line 1 = %q, expected %q", lines[1], " cd   ")
	}
}
