package tile

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/tilecard/pkg/action"
	"github.com/go-drift/tilecard/pkg/value"
)

// Config is the declarative configuration of one tile. Every field is
// optional; the zero Config renders an empty, unlabeled tile.
type Config struct {
	// Entity is the live state source. It takes priority over InternalVariable.
	Entity string `yaml:"entity,omitempty" json:"entity,omitempty"`
	// Attribute selects an attribute of Entity instead of its primary state.
	Attribute string `yaml:"attribute,omitempty" json:"attribute,omitempty"`
	// InternalVariable names a card variable, used only when Entity is empty.
	InternalVariable string `yaml:"internal_variable,omitempty" json:"internal_variable,omitempty"`

	// Multiplier scales numeric values. Defaults to 1.
	Multiplier *float64 `yaml:"multiplier,omitempty" json:"multiplier,omitempty"`
	// Precision rounds numeric values to a fixed number of fraction digits.
	Precision *int `yaml:"precision,omitempty" json:"precision,omitempty"`
	// Translations replaces matching values after rounding.
	Translations Translations `yaml:"translations,omitempty" json:"translations,omitempty"`

	// TileID adds a tile-<id>-wrapper class for per-tile styling.
	TileID  string `yaml:"tile_id,omitempty" json:"tile_id,omitempty"`
	Label   string `yaml:"label,omitempty" json:"label,omitempty"`
	Icon    string `yaml:"icon,omitempty" json:"icon,omitempty"`
	Unit    string `yaml:"unit,omitempty" json:"unit,omitempty"`
	Tooltip string `yaml:"tooltip,omitempty" json:"tooltip,omitempty"`

	TapAction       *action.Config `yaml:"tap_action,omitempty" json:"tap_action,omitempty"`
	HoldAction      *action.Config `yaml:"hold_action,omitempty" json:"hold_action,omitempty"`
	DoubleTapAction *action.Config `yaml:"double_tap_action,omitempty" json:"double_tap_action,omitempty"`
}

// Translations maps lowercase value strings to display strings.
type Translations map[string]string

// UnmarshalYAML keys each entry by its source text, so unquoted keys such
// as null, ~, true or 1 match the lookup key of the value they name.
func (t *Translations) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: translations must be a mapping", node.Line)
	}
	out := make(Translations, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		if k.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: translation keys must be scalars", k.Line)
		}
		key := k.Value
		if k.ShortTag() == "!!null" {
			key = "null"
		}
		var s string
		if err := v.Decode(&s); err != nil {
			return fmt.Errorf("translation %q: %w", key, err)
		}
		out[key] = s
	}
	*t = out
	return nil
}

// Ptr returns a pointer to v, for filling optional Config fields.
func Ptr[T any](v T) *T {
	return &v
}

// Validate reports configuration that can never render correctly.
func (c *Config) Validate() error {
	if c.Precision != nil && (*c.Precision < 0 || *c.Precision > value.MaxFractionDigits) {
		return fmt.Errorf("%w: precision %d not in [0, %d]", ErrInvalidConfig, *c.Precision, value.MaxFractionDigits)
	}
	if c.Multiplier != nil && (math.IsNaN(*c.Multiplier) || math.IsInf(*c.Multiplier, 0)) {
		return fmt.Errorf("%w: multiplier must be finite", ErrInvalidConfig)
	}
	return nil
}

// Bindings returns the tile's gesture bindings.
func (c *Config) Bindings() action.Bindings {
	return action.Bindings{
		Tap:       c.TapAction,
		Hold:      c.HoldAction,
		DoubleTap: c.DoubleTapAction,
	}
}

// options are the Config fields with defaults applied.
type options struct {
	multiplier   float64
	precision    *int
	translations map[string]string
	unit         string
	tooltip      string
}

func (c *Config) options() options {
	opts := options{
		multiplier:   1,
		precision:    c.Precision,
		translations: c.Translations,
		unit:         c.Unit,
		tooltip:      c.Tooltip,
	}
	if c.Multiplier != nil {
		opts.multiplier = *c.Multiplier
	}
	if opts.translations == nil {
		opts.translations = map[string]string{}
	}
	return opts
}
