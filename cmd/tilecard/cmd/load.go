package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-drift/tilecard/internal/ctxlog"
	"github.com/go-drift/tilecard/pkg/config"
	"github.com/go-drift/tilecard/pkg/hass"
	"github.com/go-drift/tilecard/pkg/theme"
	"github.com/go-drift/tilecard/pkg/tile"
)

// cardOptions are the flags shared by commands that render a card.
type cardOptions struct {
	card       string
	states     string
	vars       string
	format     string
	theme      string
	positional []string
}

// parseCardArgs reads the shared flags. Unknown flags are rejected; the
// first positional argument is the card path.
func parseCardArgs(args []string) (cardOptions, error) {
	var opts cardOptions
	for i := 0; i < len(args); i++ {
		arg := args[i]
		name, val, hasVal := strings.Cut(arg, "=")
		switch name {
		case "--states", "--vars", "--format", "--theme":
			if !hasVal {
				if i+1 >= len(args) {
					return opts, fmt.Errorf("%s requires a value", name)
				}
				val = args[i+1]
				i++
			}
			switch name {
			case "--states":
				opts.states = val
			case "--vars":
				opts.vars = val
			case "--format":
				opts.format = val
			case "--theme":
				if _, ok := theme.LookupBrightness(val); !ok || val == "" {
					return opts, fmt.Errorf("--theme must be light or dark, got %q", val)
				}
				opts.theme = val
			}
		default:
			if strings.HasPrefix(arg, "-") {
				return opts, fmt.Errorf("unknown flag %q", arg)
			}
			opts.positional = append(opts.positional, arg)
		}
	}
	if len(opts.positional) > 0 {
		opts.card = opts.positional[0]
	}
	return opts, nil
}

// session is a loaded card with its state sources.
type session struct {
	card    *config.Card
	store   *hass.Store
	vars    tile.Variables
	palette theme.Palette
}

func (s *session) env() tile.Env {
	return tile.Env{States: s.store, Variables: s.vars}
}

// load reads the card (or tilecard.yaml in the working directory) and the
// optional state and variable snapshots.
func load(ctx context.Context, opts cardOptions) (*session, error) {
	logger := ctxlog.FromContext(ctx)

	var (
		card *config.Card
		err  error
	)
	if opts.card != "" {
		card, err = config.Load(opts.card)
	} else {
		card, err = config.LoadOptional(".")
	}
	if err != nil {
		return nil, err
	}
	if opts.theme != "" {
		card.Theme = opts.theme
	}
	logger.Debug("card loaded", "path", opts.card, "version", card.Version, "tiles", len(card.Tiles))

	s := &session{card: card, store: hass.NewStore(), vars: tile.Variables{}}
	if opts.states != "" {
		if s.store, err = hass.LoadStates(opts.states); err != nil {
			return nil, err
		}
		logger.Debug("states loaded", "path", opts.states, "entities", s.store.Len())
	}
	if opts.vars != "" {
		if s.vars, err = hass.LoadVariables(opts.vars); err != nil {
			return nil, err
		}
		logger.Debug("variables loaded", "path", opts.vars, "count", len(s.vars))
	}
	s.palette = card.ResolvedPalette()
	return s, nil
}
