package datepick

import (
	"strings"
	"testing"
)

func TestComposeOverlayPaintsDropdown(t *testing.T) {
	base := strings.Join([]string{
		"aaaaaaaaaa",
		"aaaaaaaaaa",
		"aaaaaaaaaa",
	}, "\n")
	got := ComposeOverlay(base, "XX\nYY", 2, 1, 10, 3)
	want := strings.Join([]string{
		"aaaaaaaaaa",
		"aaXXaaaaaa",
		"aaYYaaaaaa",
	}, "\n")
	if got != want {
		t.Errorf("composite =\n%q\nwant\n%q", got, want)
	}
}

func TestComposeOverlayPadsShortBaseLines(t *testing.T) {
	got := ComposeOverlay("ab", "XX", 2, 0, 10, 1)
	want := "abXX      "
	if got != want {
		t.Errorf("composite = %q, want %q", got, want)
	}
}

func TestComposeOverlayRowsOutsideCanvasAreSkipped(t *testing.T) {
	base := "aaaa\nbbbb"
	got := ComposeOverlay(base, "XX\nYY\nZZ", 0, 1, 4, 2)
	want := "aaaa\nXXbb"
	if got != want {
		t.Errorf("composite = %q, want %q", got, want)
	}
}

func TestComposeOverlayDegenerateCanvas(t *testing.T) {
	if got := ComposeOverlay("abc", "X", 0, 0, 0, 5); got != "" {
		t.Errorf("zero width = %q, want empty", got)
	}
	if got := ComposeOverlay("abc", "X", 0, 0, 5, 0); got != "" {
		t.Errorf("zero height = %q, want empty", got)
	}
}

func TestSplitLines(t *testing.T) {
	if got := splitLines(""); len(got) != 1 || got[0] != "" {
		t.Errorf("splitLines empty = %v", got)
	}
	if got := splitLines("a\nb"); len(got) != 2 {
		t.Errorf("splitLines two = %v", got)
	}
}

func TestMaxLineWidth(t *testing.T) {
	if got := maxLineWidth([]string{"ab", "abcd", "a"}); got != 4 {
		t.Errorf("maxLineWidth = %d, want 4", got)
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 5); got != "ab   " {
		t.Errorf("padRight = %q", got)
	}
	if got := padRight("abcdef", 3); got != "abcdef" {
		t.Errorf("padRight should not truncate, got %q", got)
	}
}
