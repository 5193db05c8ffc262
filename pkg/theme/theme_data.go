// Package theme names the style tokens a tile consumes and supplies
// concrete palettes for renderers that cannot evaluate CSS custom
// properties themselves, such as the terminal preview.
package theme

import (
	"regexp"
	"strings"
)

// Token is a CSS custom property defined by the surrounding card.
type Token string

const (
	// SmallRadius is the corner radius of small card surfaces.
	SmallRadius Token = "--map-card-internal-small-radius"
	// TertiaryColor is the tile background.
	TertiaryColor Token = "--map-card-internal-tertiary-color"
	// TertiaryTextColor is the tile foreground.
	TertiaryTextColor Token = "--map-card-internal-tertiary-text-color"
)

// Var returns the CSS reference to t, e.g. "var(--map-card-internal-small-radius)".
func (t Token) Var() string {
	return "var(" + string(t) + ")"
}

// Brightness selects a default palette.
type Brightness int

const (
	BrightnessLight Brightness = iota
	BrightnessDark
)

func (b Brightness) String() string {
	if b == BrightnessDark {
		return "dark"
	}
	return "light"
}

// ParseBrightness accepts "light" and "dark"; anything else is light.
func ParseBrightness(s string) Brightness {
	b, _ := LookupBrightness(s)
	return b
}

// LookupBrightness parses "light" or "dark", ignoring case and surrounding
// space. An empty name is light. ok is false for any other name.
func LookupBrightness(s string) (b Brightness, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "light":
		return BrightnessLight, true
	case "dark":
		return BrightnessDark, true
	}
	return BrightnessLight, false
}

// Palette maps tokens to concrete CSS values.
type Palette map[Token]string

// DefaultLightPalette returns the palette used for light cards.
func DefaultLightPalette() Palette {
	return Palette{
		SmallRadius:       "8px",
		TertiaryColor:     "#E8EAF0",
		TertiaryTextColor: "#1B1B1F",
	}
}

// DefaultDarkPalette returns the palette used for dark cards.
func DefaultDarkPalette() Palette {
	return Palette{
		SmallRadius:       "8px",
		TertiaryColor:     "#2B2D35",
		TertiaryTextColor: "#E4E1E6",
	}
}

// PaletteFor returns the default palette for b.
func PaletteFor(b Brightness) Palette {
	if b == BrightnessDark {
		return DefaultDarkPalette()
	}
	return DefaultLightPalette()
}

// CopyWith returns a copy of p with overrides applied.
func (p Palette) CopyWith(overrides map[Token]string) Palette {
	out := make(Palette, len(p)+len(overrides))
	for k, v := range p {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}

var varRef = regexp.MustCompile(`var\(\s*(--[A-Za-z0-9_-]+)\s*(?:,\s*([^)]*))?\)`)

// Resolve replaces every var(--token[, fallback]) reference in value with
// the palette entry, or the fallback when the token is unknown. References
// with neither are left untouched.
func (p Palette) Resolve(value string) string {
	return varRef.ReplaceAllStringFunc(value, func(ref string) string {
		m := varRef.FindStringSubmatch(ref)
		if v, ok := p[Token(m[1])]; ok {
			return v
		}
		if m[2] != "" {
			return strings.TrimSpace(m[2])
		}
		return ref
	})
}
