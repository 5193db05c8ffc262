package tile

import (
	"errors"
	"fmt"

	"github.com/go-drift/tilecard/pkg/value"
)

var (
	// ErrEntityNotFound is returned when a tile references an entity the
	// state source does not know.
	ErrEntityNotFound = errors.New("entity not found")
	// ErrInvalidConfig is returned for configuration that cannot render.
	ErrInvalidConfig = errors.New("invalid tile config")
	// ErrNormalize is returned when a numeric value cannot be rounded.
	ErrNormalize = errors.New("cannot normalize value")
)

// EntityState is the live state of one entity.
type EntityState struct {
	// State is the primary state value.
	State any
	// Attributes holds the entity's named attributes.
	Attributes map[string]any
}

// StateSource looks up live entity states. Implemented by the host.
type StateSource interface {
	EntityState(entityID string) (EntityState, bool)
}

// StateMap is an in-memory StateSource.
type StateMap map[string]EntityState

func (m StateMap) EntityState(entityID string) (EntityState, bool) {
	st, ok := m[entityID]
	return st, ok
}

// VariableStore reads card-local variables. Implemented by the host.
type VariableStore interface {
	Variable(name string) (value.Value, bool)
}

// Variables is an in-memory VariableStore.
type Variables map[string]value.Value

func (v Variables) Variable(name string) (value.Value, bool) {
	val, ok := v[name]
	return val, ok
}

// ResolveRaw selects the tile's raw value.
//
// The entity wins over the internal variable. With an attribute set, the
// attribute is read instead of the primary state; a missing attribute
// yields value.Missing without error. An unknown entity yields
// value.Missing and ErrEntityNotFound. A variable is used only when its
// key is present in the store. With no usable source the value is the
// empty string.
func ResolveRaw(cfg *Config, states StateSource, vars VariableStore) (value.Value, error) {
	if cfg.Entity != "" {
		if states == nil {
			return value.Missing(), fmt.Errorf("%w: %s (no state source)", ErrEntityNotFound, cfg.Entity)
		}
		st, ok := states.EntityState(cfg.Entity)
		if !ok {
			return value.Missing(), fmt.Errorf("%w: %s", ErrEntityNotFound, cfg.Entity)
		}
		if cfg.Attribute == "" {
			return value.FromAny(st.State), nil
		}
		raw, ok := st.Attributes[cfg.Attribute]
		if !ok {
			return value.Missing(), nil
		}
		return value.FromAny(raw), nil
	}

	if cfg.InternalVariable != "" && vars != nil {
		if v, ok := vars.Variable(cfg.InternalVariable); ok {
			return v, nil
		}
	}
	return value.Empty, nil
}
