package datepick

import (
	"regexp"
	"testing"
)

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func TestAllPaletteColorsAreValidHex(t *testing.T) {
	colors := AllPaletteColors()
	if len(colors) != 26 {
		t.Errorf("expected 26 palette colors, got %d", len(colors))
	}
	for _, c := range colors {
		hex := string(c)
		if !hexColorRegex.MatchString(hex) {
			t.Errorf("invalid hex color: %q", hex)
		}
	}
}

func TestSemanticAliasesMatchPalette(t *testing.T) {
	tests := []struct {
		name  string
		alias string
		want  string
	}{
		{"accent", string(colorAccent), string(colorPink)},
		{"focus", string(colorFocus), string(colorLavender)},
		{"success", string(colorSuccess), string(colorGreen)},
		{"error", string(colorError), string(colorRed)},
		{"muted", string(colorMuted), string(colorOverlay0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.alias != tt.want {
				t.Errorf("%s = %q, want %q", tt.name, tt.alias, tt.want)
			}
		})
	}
}
