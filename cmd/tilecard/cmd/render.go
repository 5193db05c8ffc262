package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/go-drift/tilecard/pkg/preview"
	"github.com/go-drift/tilecard/pkg/render"
	"github.com/go-drift/tilecard/pkg/tile"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render a card's tiles",
		Long: `Render every tile of a card against a state snapshot.

Formats:
  html   one element per line (default)
  json   the render description of each tile
  text   a terminal drawing of the card

States are read from a Home Assistant /api/states dump (JSON) or a YAML
mapping of entity id to {state, attributes}. Variables are a YAML
mapping of name to value. Without a card argument, tilecard.yaml in the
current directory is used.`,
		Usage: "tilecard render [card] [--states FILE] [--vars FILE] [--format html|json|text] [--theme light|dark]",
		Run:   runRender,
	})
}

// renderedTile is the JSON output of one tile.
type renderedTile struct {
	ID     string       `json:"tile_id,omitempty"`
	Value  string       `json:"value"`
	Markup string       `json:"markup"`
	Tree   *render.Node `json:"tree"`
}

func runRender(ctx context.Context, args []string) error {
	opts, err := parseCardArgs(args)
	if err != nil {
		return fmt.Errorf("%w\n\nUsage: %s", err, commands["render"].Usage)
	}
	s, err := load(ctx, opts)
	if err != nil {
		return err
	}
	tiles := tile.RenderAll(s.card.Tiles, s.env())

	switch opts.format {
	case "", "html":
		for _, t := range tiles {
			if err := t.Root.WriteMarkup(stdout); err != nil {
				return err
			}
			fmt.Fprintln(stdout)
		}
		return nil
	case "json":
		out := make([]renderedTile, len(tiles))
		for i, t := range tiles {
			out[i] = renderedTile{ID: t.ID, Value: t.Value.Display(), Markup: t.Markup(), Tree: t.Root}
		}
		enc := json.NewEncoder(stdout)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "text":
		fmt.Fprintln(stdout, preview.New(s.palette).Board(tiles, terminalWidth(), -1))
		return nil
	default:
		return fmt.Errorf("unknown format %q (use html, json, or text)", opts.format)
	}
}

// terminalWidth returns the width of stdout, or 0 when it is not a terminal.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if f, ok := stdout.(*os.File); !ok || f != os.Stdout || !term.IsTerminal(fd) {
		return 0
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return w
}
