package hass

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/tilecard/pkg/tile"
	"github.com/go-drift/tilecard/pkg/value"
)

// LoadVariables reads card variables from a YAML (or JSON) mapping of
// name to scalar. A null entry is kept as an explicit null value.
func LoadVariables(path string) (tile.Variables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read variables: %w", err)
	}
	vars, err := DecodeVariables(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return vars, nil
}

// DecodeVariables parses a variable mapping.
func DecodeVariables(data []byte) (tile.Variables, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	vars := make(tile.Variables, len(raw))
	for name, v := range raw {
		vars[name] = value.FromAny(v)
	}
	return vars, nil
}
