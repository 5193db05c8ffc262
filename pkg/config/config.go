// Package config loads card files: a schema version, a theme and the list
// of tiles to render. Cards may be written in YAML or HCL.
package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/tilecard/pkg/errors"
	"github.com/go-drift/tilecard/pkg/theme"
	"github.com/go-drift/tilecard/pkg/tile"
)

// DefaultFile is the card file LoadOptional looks for.
const DefaultFile = "tilecard.yaml"

// SchemaVersion is the card schema this package reads. Cards declaring
// another major version are rejected.
const SchemaVersion = "v1.0.0"

// Card is one card file.
type Card struct {
	// Version is the card schema version. Empty means SchemaVersion.
	Version string `yaml:"version,omitempty"`
	// Theme is "light" or "dark". Empty means light.
	Theme string `yaml:"theme,omitempty"`
	// Palette overrides theme tokens, keyed by custom property name.
	Palette map[string]string `yaml:"palette,omitempty"`
	Tiles   []tile.Config     `yaml:"tiles"`
}

// Brightness returns the card's theme brightness.
func (c *Card) Brightness() theme.Brightness {
	return theme.ParseBrightness(c.Theme)
}

// ResolvedPalette returns the default palette for the card's theme with
// the card's overrides applied.
func (c *Card) ResolvedPalette() theme.Palette {
	overrides := make(map[theme.Token]string, len(c.Palette))
	for k, v := range c.Palette {
		overrides[theme.Token(k)] = v
	}
	return theme.PaletteFor(c.Brightness()).CopyWith(overrides)
}

// Load reads and validates a card. The format follows the file extension:
// .hcl for HCL, anything else is decoded as YAML (which also covers JSON).
func Load(path string) (*Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read card: %w", err)
	}
	return Decode(path, data)
}

// Decode parses and validates card data. filename selects the format and
// is used in error messages.
func Decode(filename string, data []byte) (*Card, error) {
	var (
		card *Card
		err  error
	)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".hcl":
		card, err = decodeHCL(filename, data)
	default:
		card, err = decodeYAML(filename, data)
	}
	if err != nil {
		return nil, err
	}
	if err := card.Validate(filename); err != nil {
		return nil, err
	}
	return card, nil
}

// LoadOptional reads tilecard.yaml from dir if present. A missing file
// yields an empty card.
func LoadOptional(dir string) (*Card, error) {
	path := filepath.Join(dir, DefaultFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return &Card{Version: SchemaVersion}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", DefaultFile, err)
	}
	return Decode(path, data)
}

func decodeYAML(filename string, data []byte) (*Card, error) {
	var card Card
	if err := yaml.Unmarshal(data, &card); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	return &card, nil
}

// Validate checks the schema version, the theme and every tile. source
// names the card in errors.
func (c *Card) Validate(source string) error {
	if c.Version == "" {
		c.Version = SchemaVersion
	}
	v := c.Version
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return &errors.ParseError{Source: source, Field: "version", Got: c.Version, Err: fmt.Errorf("not a semantic version")}
	}
	if semver.Major(v) != semver.Major(SchemaVersion) {
		return &errors.ParseError{Source: source, Field: "version", Got: c.Version,
			Err: fmt.Errorf("unsupported schema %s, want %s", semver.Major(v), semver.Major(SchemaVersion))}
	}
	c.Version = semver.Canonical(v)

	if _, ok := theme.LookupBrightness(c.Theme); !ok {
		return &errors.ParseError{Source: source, Field: "theme", Got: c.Theme, Err: fmt.Errorf("want light or dark")}
	}
	for k := range c.Palette {
		if !strings.HasPrefix(k, "--") {
			return &errors.ParseError{Source: source, Field: "palette", Got: k, Err: fmt.Errorf("keys are custom property names")}
		}
	}

	seen := make(map[string]int, len(c.Tiles))
	for i := range c.Tiles {
		t := &c.Tiles[i]
		if err := t.Validate(); err != nil {
			return &errors.ParseError{Source: source, Field: fmt.Sprintf("tiles[%d]", i), Got: t.TileID, Err: err}
		}
		if t.TileID == "" {
			continue
		}
		if j, dup := seen[t.TileID]; dup {
			return &errors.ParseError{Source: source, Field: fmt.Sprintf("tiles[%d].tile_id", i), Got: t.TileID,
				Err: fmt.Errorf("already used by tiles[%d]", j)}
		}
		seen[t.TileID] = i
	}
	return nil
}
