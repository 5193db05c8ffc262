package tile

import (
	"fmt"

	"github.com/go-drift/tilecard/pkg/value"
)

// Normalize scales numeric values by multiplier and, when precision is
// set, rounds them to a fixed-decimal string with exactly that many
// fraction digits. Null and non-numeric values pass through unchanged.
// Without precision a numeric result stays a number.
func Normalize(v value.Value, multiplier float64, precision *int) (value.Value, error) {
	f, ok := v.Float()
	if !ok {
		return v, nil
	}
	f *= multiplier
	if precision == nil {
		return value.Number(f), nil
	}
	s, err := value.ToFixed(f, *precision)
	if err != nil {
		return v, fmt.Errorf("%w: %v", ErrNormalize, err)
	}
	return value.Text(s), nil
}

// Translate replaces v with table[key] where key is v's lowercased string
// form. Null looks up "null" and an absent attribute looks up "undefined".
func Translate(v value.Value, table map[string]string) value.Value {
	if out, ok := table[v.Key()]; ok {
		return value.Text(out)
	}
	return v
}

// Evaluate runs resolution, normalization and translation, in that order,
// and returns the value the tile displays. Translation keys therefore see
// the rounded form: with precision 0, 41.6 is looked up as "42".
//
// On error the returned value is value.Missing, which displays blank.
func Evaluate(cfg *Config, states StateSource, vars VariableStore) (value.Value, error) {
	opts := cfg.options()

	raw, err := ResolveRaw(cfg, states, vars)
	if err != nil {
		return value.Missing(), err
	}
	normalized, err := Normalize(raw, opts.multiplier, opts.precision)
	if err != nil {
		return value.Missing(), err
	}
	return Translate(normalized, opts.translations), nil
}
