package tile

import (
	"context"
	stderrors "errors"

	"github.com/go-drift/tilecard/pkg/action"
	"github.com/go-drift/tilecard/pkg/errors"
	"github.com/go-drift/tilecard/pkg/render"
	"github.com/go-drift/tilecard/pkg/value"
)

// Class names used in the render description and the style sheet.
const (
	WrapperClass      = "tile-wrapper"
	ClickableClass    = "clickable"
	RippleClass       = "ripple"
	TitleClass        = "tile-title"
	ValueWrapperClass = "tile-value-wrapper"
	IconClass         = "tile-icon"
	ValueClass        = "tile-value"
)

// IDClass returns the per-tile class derived from a tile_id.
func IDClass(tileID string) string {
	return "tile-" + tileID + "-wrapper"
}

// IconRenderer draws an icon fragment. Provided by the host.
type IconRenderer func(icon string) *render.Node

// HAIcon renders icon as an <ha-icon> element.
func HAIcon(icon string) *render.Node {
	return render.El("ha-icon", nil).WithAttr("icon", icon)
}

// Env carries the external collaborators a render reads from. All fields
// are optional.
type Env struct {
	States     StateSource
	Variables  VariableStore
	Dispatcher action.Dispatcher
	// Icon renders the icon block. Defaults to HAIcon.
	Icon IconRenderer
}

// Tile is the result of rendering one tile.
type Tile struct {
	// ID is the tile_id the tile was configured with.
	ID string
	// Value is the final display value, before the unit suffix.
	Value value.Value
	// Root is the wrapper element of the render description.
	Root *render.Node
}

// Markup renders the description as HTML.
func (t *Tile) Markup() string {
	return t.Root.Markup()
}

// Handle delivers a gesture to the tile. Dispatch failures are reported to
// the error handler and returned.
func (t *Tile) Handle(ctx context.Context, g action.Gesture) error {
	if t.Root == nil || t.Root.Gestures == nil || t.Root.Gestures.Handler == nil {
		return nil
	}
	err := t.Root.Gestures.Handler(ctx, g)
	if err != nil {
		errors.Report(&errors.TileError{
			Op:     "tile.Handle",
			Kind:   errors.KindDispatch,
			TileID: t.ID,
			Err:    err,
		})
	}
	return err
}

// Render evaluates cfg against env and assembles its render description.
//
// Render never fails. Lookup and configuration errors are reported to the
// error handler and the value renders blank; a panic in a collaborator is
// recovered the same way, with the icon left out.
func Render(cfg *Config, env Env) (t *Tile) {
	if cfg == nil {
		cfg = &Config{}
	}
	defer errors.Guard("tile.Render", func(any) {
		t = &Tile{ID: cfg.TileID, Value: value.Missing(), Root: assemble(cfg, value.Missing(), nil, env.Dispatcher)}
	})

	v, err := Evaluate(cfg, env.States, env.Variables)
	if err != nil {
		errors.Report(&errors.TileError{
			Op:     "tile.Render",
			Kind:   kindOf(err),
			TileID: cfg.TileID,
			Entity: cfg.Entity,
			Err:    err,
		})
	}

	icon := env.Icon
	if icon == nil {
		icon = HAIcon
	}
	return &Tile{ID: cfg.TileID, Value: v, Root: assemble(cfg, v, icon, env.Dispatcher)}
}

// RenderAll renders each config in order.
func RenderAll(cfgs []Config, env Env) []*Tile {
	tiles := make([]*Tile, len(cfgs))
	for i := range cfgs {
		tiles[i] = Render(&cfgs[i], env)
	}
	return tiles
}

// assemble builds the element tree. A nil icon renderer omits the icon.
func assemble(cfg *Config, v value.Value, icon IconRenderer, d action.Dispatcher) *render.Node {
	opts := cfg.options()
	bindings := cfg.Bindings()

	class := []string{WrapperClass, ClickableClass, RippleClass}
	if cfg.TileID != "" {
		class = append(class, IDClass(cfg.TileID))
	}

	wrapper := render.El("div", class,
		render.TextEl("div", []string{TitleClass}, cfg.Label),
		render.El("div", []string{ValueWrapperClass},
			render.When(cfg.Icon != "" && icon != nil, func() *render.Node {
				return render.El("div", []string{IconClass}, icon(cfg.Icon))
			}),
			render.TextEl("div", []string{ValueClass}, v.Display()+opts.unit),
		),
	).WithAttr("title", opts.tooltip)

	wrapper.Gestures = &render.Gestures{
		Capabilities: action.CapabilitiesOf(bindings),
		Handler:      action.HandlerFor(d, cfg.Entity, bindings),
	}
	return wrapper
}

func kindOf(err error) errors.ErrorKind {
	switch {
	case stderrors.Is(err, ErrEntityNotFound):
		return errors.KindLookup
	case stderrors.Is(err, ErrInvalidConfig):
		return errors.KindConfig
	case stderrors.Is(err, ErrNormalize):
		return errors.KindNormalize
	default:
		return errors.KindRender
	}
}
