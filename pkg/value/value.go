// Package value defines the tagged value that flows through the tile pipeline.
//
// A tile's displayed value can come from a live entity state, an entity
// attribute, or an internal variable. Those sources hand out strings,
// numbers, null, or nothing at all. Value makes the kind explicit so every
// stage converts deliberately instead of relying on loose coercion.
package value

import (
	"fmt"
	"reflect"
	"strings"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	// KindMissing marks a reference that could not be resolved, such as an
	// attribute the entity does not carry.
	KindMissing Kind = iota
	// KindNull is an explicit null coming from a source.
	KindNull
	// KindText is a string value.
	KindText
	// KindNumber is a floating-point value.
	KindNumber
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	default:
		return "missing"
	}
}

// Value is a Missing, Null, Text or Number value.
// The zero Value is Missing.
type Value struct {
	kind Kind
	text string
	num  float64
}

// Missing returns the unresolved value.
func Missing() Value { return Value{} }

// Null returns the null value.
func Null() Value { return Value{kind: KindNull} }

// Text returns a text value.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Number returns a numeric value.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// Empty is the value used when a tile has no source configured.
var Empty = Text("")

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// IsMissing reports whether v is unresolved.
func (v Value) IsMissing() bool { return v.kind == KindMissing }

// Float reports the numeric interpretation of v.
//
// Numbers are always numeric. Text is numeric only when, after trimming
// surrounding whitespace, it is a non-empty decimal literal (optionally
// signed, with optional fraction and exponent) or a signed "Infinity".
// Empty and blank strings are never numeric.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case KindNumber:
		return v.num, true
	case KindText:
		return parseDecimal(v.text)
	default:
		return 0, false
	}
}

// Display returns the text shown for v. Null and Missing display as "".
func (v Value) Display() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindNumber:
		return FormatNumber(v.num)
	default:
		return ""
	}
}

// Key returns the lowercased lookup key for v. Null yields "null" and
// Missing yields "undefined".
func (v Value) Key() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindMissing:
		return "undefined"
	default:
		return strings.ToLower(v.Display())
	}
}

// GoString makes test failures readable.
func (v Value) GoString() string {
	switch v.kind {
	case KindText:
		return fmt.Sprintf("value.Text(%q)", v.text)
	case KindNumber:
		return fmt.Sprintf("value.Number(%s)", FormatNumber(v.num))
	case KindNull:
		return "value.Null()"
	default:
		return "value.Missing()"
	}
}

// Equal reports whether two values hold the same variant and payload.
// Numbers compare by value, so NaN is never equal to itself.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindText:
		return v.text == o.text
	case KindNumber:
		return v.num == o.num
	default:
		return true
	}
}

// FromAny converts a decoded source value (from JSON, YAML, HCL or a Go
// caller) into a Value.
func FromAny(x any) Value {
	switch t := x.(type) {
	case nil:
		return Null()
	case Value:
		return t
	case string:
		return Text(t)
	case bool:
		if t {
			return Text("true")
		}
		return Text("false")
	case float64:
		return Number(t)
	case float32:
		return Number(float64(t))
	case int:
		return Number(float64(t))
	case int64:
		return Number(float64(t))
	case int32:
		return Number(float64(t))
	case uint:
		return Number(float64(t))
	case uint64:
		return Number(float64(t))
	case uint32:
		return Number(float64(t))
	case fmt.Stringer:
		return Text(t.String())
	}

	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Int8, reflect.Int16:
		return Number(float64(rv.Int()))
	case reflect.Uint8, reflect.Uint16, reflect.Uintptr:
		return Number(float64(rv.Uint()))
	case reflect.Slice, reflect.Array:
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = FromAny(rv.Index(i).Interface()).Display()
		}
		return Text(strings.Join(parts, ","))
	}
	return Text(fmt.Sprint(x))
}
