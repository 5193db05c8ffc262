package theme

import "testing"

func TestTokenVar(t *testing.T) {
	if got, want := TertiaryColor.Var(), "var(--map-card-internal-tertiary-color)"; got != want {
		t.Errorf("Var() = %q, want %q", got, want)
	}
}

func TestPaletteResolve(t *testing.T) {
	p := DefaultDarkPalette()
	tests := []struct {
		in   string
		want string
	}{
		{TertiaryColor.Var(), "#2B2D35"},
		{"1px solid " + TertiaryTextColor.Var(), "1px solid #E4E1E6"},
		{"var(--unknown, 4px)", "4px"},
		{"var(--unknown)", "var(--unknown)"},
		{"fit-content", "fit-content"},
	}
	for _, tt := range tests {
		if got := p.Resolve(tt.in); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPaletteCopyWith(t *testing.T) {
	base := DefaultLightPalette()
	custom := base.CopyWith(map[Token]string{TertiaryColor: "teal"})
	if custom[TertiaryColor] != "teal" {
		t.Errorf("override not applied: %q", custom[TertiaryColor])
	}
	if base[TertiaryColor] == "teal" {
		t.Error("CopyWith mutated the original palette")
	}
}

func TestParseBrightness(t *testing.T) {
	if ParseBrightness(" Dark ") != BrightnessDark {
		t.Error("expected dark")
	}
	if ParseBrightness("sepia") != BrightnessLight {
		t.Error("unknown names should fall back to light")
	}
}

func TestLookupBrightness(t *testing.T) {
	tests := []struct {
		in     string
		want   Brightness
		wantOK bool
	}{
		{"", BrightnessLight, true},
		{"light", BrightnessLight, true},
		{" DARK", BrightnessDark, true},
		{"purple", BrightnessLight, false},
	}
	for _, tt := range tests {
		got, ok := LookupBrightness(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("LookupBrightness(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
