// Package hass reads Home Assistant entity states and card variables from
// snapshot files, for use as tile state sources outside a live dashboard.
package hass

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/tilecard/pkg/tile"
)

// State is one entity as reported by the Home Assistant REST API
// (GET /api/states).
type State struct {
	EntityID    string         `yaml:"entity_id"`
	State       any            `yaml:"state"`
	Attributes  map[string]any `yaml:"attributes,omitempty"`
	LastChanged string         `yaml:"last_changed,omitempty"`
}

// Store is a concurrency-safe tile.StateSource.
type Store struct {
	mu     sync.RWMutex
	states map[string]State
}

// NewStore returns a store holding states.
func NewStore(states ...State) *Store {
	s := &Store{states: make(map[string]State, len(states))}
	for _, st := range states {
		s.states[st.EntityID] = st
	}
	return s
}

// EntityState implements tile.StateSource.
func (s *Store) EntityState(entityID string) (tile.EntityState, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.states[entityID]
	if !ok {
		return tile.EntityState{}, false
	}
	return tile.EntityState{State: st.State, Attributes: st.Attributes}, true
}

// Set adds or replaces one entity.
func (s *Store) Set(st State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[st.EntityID] = st
}

// Replace swaps the whole contents of the store for other's.
func (s *Store) Replace(other *Store) {
	other.mu.RLock()
	next := make(map[string]State, len(other.states))
	for id, st := range other.states {
		next[id] = st
	}
	other.mu.RUnlock()

	s.mu.Lock()
	s.states = next
	s.mu.Unlock()
}

// Len returns the number of entities.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.states)
}

// IDs returns the entity ids in sorted order.
func (s *Store) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.states))
	for id := range s.states {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// LoadStates reads a state snapshot from path. See DecodeStates.
func LoadStates(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read states: %w", err)
	}
	store, err := DecodeStates(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return store, nil
}

// DecodeStates parses a state snapshot. Two layouts are accepted: the JSON
// array returned by /api/states, and a YAML mapping of entity id to
// {state, attributes}.
func DecodeStates(data []byte) (*Store, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return NewStore(), nil
	}

	root := doc.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		var list []State
		if err := root.Decode(&list); err != nil {
			return nil, err
		}
		for i, st := range list {
			if st.EntityID == "" {
				return nil, fmt.Errorf("state %d: missing entity_id", i)
			}
		}
		return NewStore(list...), nil
	case yaml.MappingNode:
		var byID map[string]State
		if err := root.Decode(&byID); err != nil {
			return nil, err
		}
		store := NewStore()
		for id, st := range byID {
			st.EntityID = id
			store.states[id] = st
		}
		return store, nil
	default:
		return nil, fmt.Errorf("line %d: expected a list or mapping of states", root.Line)
	}
}
