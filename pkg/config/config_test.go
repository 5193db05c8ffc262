package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/tilecard/pkg/action"
	"github.com/go-drift/tilecard/pkg/errors"
	"github.com/go-drift/tilecard/pkg/theme"
	"github.com/go-drift/tilecard/pkg/tile"
	"github.com/go-drift/tilecard/pkg/value"
)

func wantCard() *Card {
	return &Card{
		Version: "v1.2.0",
		Theme:   "dark",
		Palette: map[string]string{"--map-card-internal-tertiary-color": "#101010"},
		Tiles: []tile.Config{
			{
				Entity:     "sensor.battery",
				Precision:  tile.Ptr(0),
				Label:      "Battery",
				Icon:       "mdi:battery",
				Unit:       "%",
				TileID:     "battery",
				Tooltip:    "Battery level",
				HoldAction: &action.Config{Action: action.MoreInfo},
			},
			{
				InternalVariable: "mode",
				Label:            "Mode",
				Translations:     map[string]string{"idle": "Resting"},
				TapAction: &action.Config{
					Action:  action.CallService,
					Service: "vacuum.start",
					Data:    map[string]any{"entity_id": "vacuum.robot", "fan_speed": float64(3)},
				},
			},
		},
	}
}

func TestLoadYAML(t *testing.T) {
	card, err := Load(filepath.Join("testdata", "card.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	want := wantCard()
	// YAML keeps integers as int.
	want.Tiles[1].TapAction.Data["fan_speed"] = 3
	if diff := cmp.Diff(want, card); diff != "" {
		t.Errorf("card mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadHCL(t *testing.T) {
	card, err := Load(filepath.Join("testdata", "card.hcl"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(wantCard(), card); diff != "" {
		t.Errorf("card mismatch (-want +got):\n%s", diff)
	}
}

func TestResolvedPalette(t *testing.T) {
	card, err := Load(filepath.Join("testdata", "card.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if card.Brightness() != theme.BrightnessDark {
		t.Errorf("Brightness() = %v, want dark", card.Brightness())
	}
	p := card.ResolvedPalette()
	if got := p[theme.TertiaryColor]; got != "#101010" {
		t.Errorf("tertiary color = %q, want override", got)
	}
	if got, want := p[theme.TertiaryTextColor], theme.DefaultDarkPalette()[theme.TertiaryTextColor]; got != want {
		t.Errorf("tertiary text color = %q, want %q", got, want)
	}
}

func TestDecodeVersion(t *testing.T) {
	tests := []struct {
		version string
		want    string
		wantErr bool
	}{
		{"", SchemaVersion, false},
		{"1", "v1.0.0", false},
		{"v1.4", "v1.4.0", false},
		{"1.0.0-beta.1", "v1.0.0-beta.1", false},
		{"2.0.0", "", true},
		{"v0.9.0", "", true},
		{"latest", "", true},
	}
	for _, tt := range tests {
		data := "tiles: []\n"
		if tt.version != "" {
			data = "version: \"" + tt.version + "\"\n" + data
		}
		card, err := Decode("card.yaml", []byte(data))
		if (err != nil) != tt.wantErr {
			t.Errorf("version %q: error = %v, wantErr %v", tt.version, err, tt.wantErr)
			continue
		}
		if err != nil {
			var perr *errors.ParseError
			if !stderrors.As(err, &perr) || perr.Field != "version" {
				t.Errorf("version %q: want ParseError on version, got %v", tt.version, err)
			}
			continue
		}
		if card.Version != tt.want {
			t.Errorf("version %q: got %q, want %q", tt.version, card.Version, tt.want)
		}
	}
}

func TestDecodeRejects(t *testing.T) {
	tests := []struct {
		name  string
		data  string
		field string
	}{
		{"bad precision", "tiles:\n  - precision: 101\n", "tiles[0]"},
		{"duplicate id", "tiles:\n  - tile_id: a\n  - tile_id: b\n  - tile_id: a\n", "tiles[2].tile_id"},
		{"bad theme", "theme: sepia\ntiles: []\n", "theme"},
		{"bad palette key", "palette:\n  color: red\ntiles: []\n", "palette"},
	}
	for _, tt := range tests {
		_, err := Decode("card.yaml", []byte(tt.data))
		var perr *errors.ParseError
		if !stderrors.As(err, &perr) {
			t.Errorf("%s: want ParseError, got %v", tt.name, err)
			continue
		}
		if perr.Field != tt.field || perr.Source != "card.yaml" {
			t.Errorf("%s: field = %q source = %q", tt.name, perr.Field, perr.Source)
		}
	}
}

func TestDecodeInvalidTileWrapsTileError(t *testing.T) {
	_, err := Decode("card.yaml", []byte("tiles:\n  - precision: -1\n"))
	if !stderrors.Is(err, tile.ErrInvalidConfig) {
		t.Errorf("error = %v, want it to wrap tile.ErrInvalidConfig", err)
	}
}

func TestDecodeTranslationKeysKeepSourceText(t *testing.T) {
	src := `
tiles:
  - internal_variable: fault
    translations: {null: "N/A", 1: One, true: "Yes", Idle: Resting}
  - internal_variable: fault
    translations:
      ~: none
`
	card, err := Decode("card.yaml", []byte(src))
	if err != nil {
		t.Fatal(err)
	}
	want := tile.Translations{"null": "N/A", "1": "One", "true": "Yes", "Idle": "Resting"}
	if diff := cmp.Diff(want, card.Tiles[0].Translations); diff != "" {
		t.Errorf("translations mismatch (-want +got):\n%s", diff)
	}

	vars := tile.Variables{"fault": value.Null()}
	for i, want := range []string{"N/A", "none"} {
		got, err := tile.Evaluate(&card.Tiles[i], nil, vars)
		if err != nil {
			t.Fatal(err)
		}
		if got.Display() != want {
			t.Errorf("tiles[%d] display = %q, want %q", i, got.Display(), want)
		}
	}
}

func TestDecodeRejectsNonScalarTranslationKey(t *testing.T) {
	_, err := Decode("card.yaml", []byte("tiles:\n  - translations: {[a, b]: x}\n"))
	if err == nil || !strings.Contains(err.Error(), "translation keys must be scalars") {
		t.Errorf("error = %v, want a non-scalar key error", err)
	}
}

func TestDecodeHCLSyntaxError(t *testing.T) {
	_, err := Decode("card.hcl", []byte(`tile "x" { entity = }`))
	if err == nil || !strings.Contains(err.Error(), "card.hcl") {
		t.Errorf("error = %v, want a parse error naming the file", err)
	}
}

func TestDecodeHCLBadServiceData(t *testing.T) {
	src := `
tile "x" {
  tap_action {
    action       = "call-service"
    service_data = ["not", "an", "object"]
  }
}
`
	if _, err := Decode("card.hcl", []byte(src)); err == nil {
		t.Error("expected error for list service_data")
	}
}

func TestLoadOptional(t *testing.T) {
	dir := t.TempDir()
	card, err := LoadOptional(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(card.Tiles) != 0 || card.Version != SchemaVersion {
		t.Errorf("empty card = %+v", card)
	}

	data := "tiles:\n  - entity: sensor.battery\n    unit: \"%\"\n"
	if err := os.WriteFile(filepath.Join(dir, DefaultFile), []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	card, err = LoadOptional(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(card.Tiles) != 1 || card.Tiles[0].Entity != "sensor.battery" {
		t.Errorf("card = %+v", card)
	}
}
