package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/go-drift/tilecard/pkg/action"
	"github.com/go-drift/tilecard/pkg/tile"
)

// hclCard is the HCL layout of a card:
//
//	version = "1.0.0"
//	theme   = "dark"
//
//	tile "battery" {
//	  entity    = "sensor.battery"
//	  precision = 0
//	  unit      = "%"
//
//	  hold_action {
//	    action = "more-info"
//	  }
//	}
type hclCard struct {
	Version string            `hcl:"version,optional"`
	Theme   string            `hcl:"theme,optional"`
	Palette map[string]string `hcl:"palette,optional"`
	Tiles   []*hclTile        `hcl:"tile,block"`
}

type hclTile struct {
	ID string `hcl:"id,label"`

	Entity           string            `hcl:"entity,optional"`
	Attribute        string            `hcl:"attribute,optional"`
	InternalVariable string            `hcl:"internal_variable,optional"`
	Multiplier       *float64          `hcl:"multiplier,optional"`
	Precision        *int              `hcl:"precision,optional"`
	Translations     map[string]string `hcl:"translations,optional"`

	Label   string `hcl:"label,optional"`
	Icon    string `hcl:"icon,optional"`
	Unit    string `hcl:"unit,optional"`
	Tooltip string `hcl:"tooltip,optional"`

	TapAction       *hclAction `hcl:"tap_action,block"`
	HoldAction      *hclAction `hcl:"hold_action,block"`
	DoubleTapAction *hclAction `hcl:"double_tap_action,block"`
}

type hclAction struct {
	Action         string    `hcl:"action"`
	Service        string    `hcl:"service,optional"`
	Entity         string    `hcl:"entity,optional"`
	NavigationPath string    `hcl:"navigation_path,optional"`
	URL            string    `hcl:"url_path,optional"`
	Data           cty.Value `hcl:"service_data,optional"`
}

func decodeHCL(filename string, data []byte) (*Card, error) {
	var raw hclCard
	if err := hclsimple.Decode(filename, data, nil, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	card := &Card{
		Version: raw.Version,
		Theme:   raw.Theme,
		Palette: raw.Palette,
		Tiles:   make([]tile.Config, 0, len(raw.Tiles)),
	}
	for _, t := range raw.Tiles {
		cfg := tile.Config{
			TileID:           t.ID,
			Entity:           t.Entity,
			Attribute:        t.Attribute,
			InternalVariable: t.InternalVariable,
			Multiplier:       t.Multiplier,
			Precision:        t.Precision,
			Translations:     t.Translations,
			Label:            t.Label,
			Icon:             t.Icon,
			Unit:             t.Unit,
			Tooltip:          t.Tooltip,
		}
		var err error
		if cfg.TapAction, err = t.TapAction.config(); err != nil {
			return nil, fmt.Errorf("%s: tile %q tap_action: %w", filename, t.ID, err)
		}
		if cfg.HoldAction, err = t.HoldAction.config(); err != nil {
			return nil, fmt.Errorf("%s: tile %q hold_action: %w", filename, t.ID, err)
		}
		if cfg.DoubleTapAction, err = t.DoubleTapAction.config(); err != nil {
			return nil, fmt.Errorf("%s: tile %q double_tap_action: %w", filename, t.ID, err)
		}
		card.Tiles = append(card.Tiles, cfg)
	}
	return card, nil
}

func (a *hclAction) config() (*action.Config, error) {
	if a == nil {
		return nil, nil
	}
	cfg := &action.Config{
		Action:         a.Action,
		Service:        a.Service,
		EntityID:       a.Entity,
		NavigationPath: a.NavigationPath,
		URL:            a.URL,
	}
	data, err := ctyToNative(a.Data)
	if err != nil {
		return nil, fmt.Errorf("service_data: %w", err)
	}
	if data == nil {
		return cfg, nil
	}
	m, ok := data.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("service_data must be an object, got %s", a.Data.Type().FriendlyName())
	}
	cfg.Data = m
	return cfg, nil
}

// ctyToNative converts a cty.Value to plain Go values: string, float64,
// bool, []any and map[string]any. Null and unknown values become nil.
func ctyToNative(v cty.Value) (any, error) {
	if v.IsNull() || !v.IsKnown() {
		return nil, nil
	}

	ty := v.Type()
	switch {
	case ty == cty.String:
		return v.AsString(), nil

	case ty == cty.Number:
		var f float64
		if err := gocty.FromCtyValue(v, &f); err != nil {
			return nil, fmt.Errorf("could not convert number: %w", err)
		}
		return f, nil

	case ty == cty.Bool:
		return v.True(), nil

	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		out := make([]any, 0, v.LengthInt())
		it := v.ElementIterator()
		for it.Next() {
			_, elem := it.Element()
			native, err := ctyToNative(elem)
			if err != nil {
				return nil, err
			}
			out = append(out, native)
		}
		return out, nil

	case ty.IsObjectType() || ty.IsMapType():
		out := make(map[string]any)
		it := v.ElementIterator()
		for it.Next() {
			key, elem := it.Element()
			native, err := ctyToNative(elem)
			if err != nil {
				return nil, fmt.Errorf("in attribute %q: %w", key.AsString(), err)
			}
			out[key.AsString()] = native
		}
		return out, nil

	default:
		return nil, fmt.Errorf("unsupported type %s", ty.FriendlyName())
	}
}
