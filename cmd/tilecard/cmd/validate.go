package cmd

import (
	"context"
	stderrors "errors"
	"fmt"
	"sort"
	"strings"

	"github.com/gookit/color"

	"github.com/go-drift/tilecard/pkg/action"
	"github.com/go-drift/tilecard/pkg/tile"
)

func init() {
	RegisterCommand(&Command{
		Name:  "validate",
		Short: "Check a card file",
		Long: `Load a card and check its schema version, theme and tiles.

With --states, every tile is also evaluated against the snapshot and
tiles whose entity is unknown are flagged.`,
		Usage: "tilecard validate <card> [--states FILE] [--vars FILE]",
		Run:   runValidate,
	})
}

var (
	colorOK   = color.Style{color.FgGreen, color.OpBold}
	colorWarn = color.Style{color.FgYellow}
	colorFail = color.Style{color.FgRed, color.OpBold}
	colorDim  = color.Style{color.FgGray}
)

func runValidate(ctx context.Context, args []string) error {
	opts, err := parseCardArgs(args)
	if err != nil {
		return err
	}
	if opts.card == "" {
		return fmt.Errorf("card is required\n\nUsage: %s", commands["validate"].Usage)
	}

	s, err := load(ctx, opts)
	if err != nil {
		fmt.Fprintf(stdout, "%s %s\n", colorFail.Sprint("FAIL"), opts.card)
		fmt.Fprintf(stdout, "  %v\n", err)
		return fmt.Errorf("invalid card")
	}

	fmt.Fprintf(stdout, "%s %s %s\n", colorOK.Sprint("OK"), opts.card,
		colorDim.Sprintf("(schema %s, %s theme, %d tiles)", s.card.Version, s.card.Brightness(), len(s.card.Tiles)))

	warnings := 0
	for i := range s.card.Tiles {
		cfg := &s.card.Tiles[i]
		name := tileName(i, cfg)
		for _, w := range tileWarnings(cfg) {
			fmt.Fprintf(stdout, "  %s %s: %s\n", colorWarn.Sprint("warn"), name, w)
			warnings++
		}
		if opts.states == "" {
			continue
		}
		v, err := tile.Evaluate(cfg, s.store, s.vars)
		switch {
		case stderrors.Is(err, tile.ErrEntityNotFound):
			fmt.Fprintf(stdout, "  %s %s: entity %s not in snapshot\n", colorWarn.Sprint("warn"), name, cfg.Entity)
			warnings++
		case err != nil:
			fmt.Fprintf(stdout, "  %s %s: %v\n", colorWarn.Sprint("warn"), name, err)
			warnings++
		default:
			fmt.Fprintf(stdout, "  %s %s = %q\n", colorDim.Sprint("ok"), name, v.Display()+cfg.Unit)
		}
	}
	if warnings > 0 {
		fmt.Fprintf(stdout, "%s\n", colorWarn.Sprintf("%d warning(s)", warnings))
	}
	return nil
}

func tileName(i int, cfg *tile.Config) string {
	if cfg.TileID != "" {
		return fmt.Sprintf("tiles[%d] (%s)", i, cfg.TileID)
	}
	return fmt.Sprintf("tiles[%d]", i)
}

// tileWarnings flags configuration that loads but is probably a mistake.
func tileWarnings(cfg *tile.Config) []string {
	var out []string
	if cfg.Attribute != "" && cfg.Entity == "" {
		out = append(out, "attribute is ignored without an entity")
	}
	if cfg.Entity != "" && cfg.InternalVariable != "" {
		out = append(out, "internal_variable is ignored when entity is set")
	}
	keys := make([]string, 0, len(cfg.Translations))
	for k := range cfg.Translations {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if k != strings.ToLower(k) {
			out = append(out, fmt.Sprintf("translation key %q never matches, keys are compared lowercase", k))
		}
	}
	for _, g := range []action.Gesture{action.Tap, action.Hold, action.DoubleTap} {
		a := cfg.Bindings().For(g)
		if !knownAction(a.Action) {
			out = append(out, fmt.Sprintf("%s action %q is not a standard action", g, a.Action))
		}
	}
	return out
}

func knownAction(name string) bool {
	switch name {
	case action.None, action.MoreInfo, action.Toggle, action.CallService,
		action.Navigate, action.URL, action.FireDOMEvent:
		return true
	}
	return false
}
