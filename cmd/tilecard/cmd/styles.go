package cmd

import (
	"context"
	"fmt"

	"github.com/go-drift/tilecard/pkg/style"
	"github.com/go-drift/tilecard/pkg/theme"
	"github.com/go-drift/tilecard/pkg/tile"
)

func init() {
	RegisterCommand(&Command{
		Name:  "styles",
		Short: "Print the tile style sheet",
		Long: `Print the CSS shared by all tiles.

The sheet references the card's theme tokens as CSS custom properties.
With --theme, tokens are replaced by the default palette's values.`,
		Usage: "tilecard styles [--theme light|dark]",
		Run:   runStyles,
	})
}

func runStyles(_ context.Context, args []string) error {
	opts, err := parseCardArgs(args)
	if err != nil {
		return err
	}
	if len(opts.positional) > 0 {
		return fmt.Errorf("styles takes no arguments")
	}

	sheet := tile.Styles()
	if opts.theme != "" {
		sheet = resolveSheet(sheet, theme.PaletteFor(theme.ParseBrightness(opts.theme)))
	}
	fmt.Fprint(stdout, sheet.CSS())
	return nil
}

func resolveSheet(sheet style.Sheet, p theme.Palette) style.Sheet {
	out := make(style.Sheet, len(sheet))
	for i, r := range sheet {
		decls := make([]style.Decl, len(r.Decls))
		for j, d := range r.Decls {
			decls[j] = style.D(d.Property, p.Resolve(d.Value))
		}
		out[i] = style.Rule{Selector: r.Selector, Decls: decls}
	}
	return out
}
