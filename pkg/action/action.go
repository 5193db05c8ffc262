// Package action describes the gestures a tile reacts to and the actions
// they trigger.
//
// A tile does not perform actions itself. It reports which gestures it
// listens to (see [Capabilities]) and hands configured actions to a host
// [Dispatcher].
package action

import (
	"context"
	"fmt"
)

// Action names understood by most hosts.
const (
	None         = "none"
	MoreInfo     = "more-info"
	Toggle       = "toggle"
	CallService  = "call-service"
	Navigate     = "navigate"
	URL          = "url"
	FireDOMEvent = "fire-dom-event"
)

// Config is one gesture's action configuration. It is opaque to the tile
// beyond the "none" check; fields are passed through to the dispatcher.
type Config struct {
	Action         string         `yaml:"action" json:"action"`
	Service        string         `yaml:"service,omitempty" json:"service,omitempty"`
	EntityID       string         `yaml:"entity,omitempty" json:"entity,omitempty"`
	NavigationPath string         `yaml:"navigation_path,omitempty" json:"navigation_path,omitempty"`
	URL            string         `yaml:"url_path,omitempty" json:"url_path,omitempty"`
	Data           map[string]any `yaml:"service_data,omitempty" json:"service_data,omitempty"`
}

// HasAction reports whether cfg configures something to do.
// A nil config and the "none" action both count as empty.
func HasAction(cfg *Config) bool {
	return cfg != nil && cfg.Action != None
}

// Gesture is a user interaction with a tile.
type Gesture int

const (
	Tap Gesture = iota
	Hold
	DoubleTap
)

func (g Gesture) String() string {
	switch g {
	case Tap:
		return "tap"
	case Hold:
		return "hold"
	case DoubleTap:
		return "double_tap"
	default:
		return fmt.Sprintf("Gesture(%d)", int(g))
	}
}

// ParseGesture converts a gesture name back to a Gesture.
func ParseGesture(s string) (Gesture, error) {
	switch s {
	case "tap":
		return Tap, nil
	case "hold":
		return Hold, nil
	case "double_tap":
		return DoubleTap, nil
	}
	return 0, fmt.Errorf("unknown gesture %q", s)
}

// Bindings maps gestures to their configured actions.
type Bindings struct {
	Tap       *Config
	Hold      *Config
	DoubleTap *Config
}

// For returns the action bound to g. Gestures without a binding fall back
// to more-info, which hosts treat as "show the entity's details".
func (b Bindings) For(g Gesture) Config {
	var cfg *Config
	switch g {
	case Tap:
		cfg = b.Tap
	case Hold:
		cfg = b.Hold
	case DoubleTap:
		cfg = b.DoubleTap
	}
	if cfg == nil {
		return Config{Action: MoreInfo}
	}
	return *cfg
}

// Capabilities tells the host which gestures to listen for. Tap is always
// enabled; hold and double-tap only when an action is configured, so a
// plain tap is not delayed waiting for a possible second click.
type Capabilities struct {
	HasHold        bool `json:"hasHold"`
	HasDoubleClick bool `json:"hasDoubleClick"`
}

// CapabilitiesOf derives the listening flags from b.
func CapabilitiesOf(b Bindings) Capabilities {
	return Capabilities{
		HasHold:        HasAction(b.Hold),
		HasDoubleClick: HasAction(b.DoubleTap),
	}
}

// Request is one action to perform, as handed to a Dispatcher.
type Request struct {
	Gesture Gesture
	// Entity is the tile's entity, used by entity-scoped actions like more-info.
	Entity string
	Action Config
}

// Dispatcher performs actions on behalf of tiles. It is implemented by the
// host (service calls, navigation, dialogs).
type Dispatcher interface {
	Dispatch(ctx context.Context, req Request) error
}

// DispatcherFunc adapts a function to Dispatcher.
type DispatcherFunc func(ctx context.Context, req Request) error

func (f DispatcherFunc) Dispatch(ctx context.Context, req Request) error {
	return f(ctx, req)
}

// Handler reacts to a gesture on one tile.
type Handler func(ctx context.Context, g Gesture) error

// HandlerFor builds the gesture handler of a tile reading entity with the
// given bindings. Gestures whose action is "none" are swallowed.
func HandlerFor(d Dispatcher, entity string, b Bindings) Handler {
	return func(ctx context.Context, g Gesture) error {
		cfg := b.For(g)
		if cfg.Action == None {
			return nil
		}
		if d == nil {
			return fmt.Errorf("no dispatcher for %s action %q", g, cfg.Action)
		}
		return d.Dispatch(ctx, Request{Gesture: g, Entity: entity, Action: cfg})
	}
}
