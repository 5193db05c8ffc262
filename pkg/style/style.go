// Package style models a static CSS style sheet as data, so it can be
// printed for browsers and inspected by other renderers.
package style

import "strings"

// Decl is a single property declaration.
type Decl struct {
	Property string `json:"property"`
	Value    string `json:"value"`
}

// Rule is a selector with its declarations. A rule may be empty.
type Rule struct {
	Selector string `json:"selector"`
	Decls    []Decl `json:"decls,omitempty"`
}

// Sheet is an ordered list of rules.
type Sheet []Rule

// D is shorthand for a declaration.
func D(property, value string) Decl {
	return Decl{Property: property, Value: value}
}

// Lookup returns the value of property in the rule for selector.
func (s Sheet) Lookup(selector, property string) (string, bool) {
	for _, r := range s {
		if r.Selector != selector {
			continue
		}
		for _, d := range r.Decls {
			if d.Property == property {
				return d.Value, true
			}
		}
	}
	return "", false
}

// CSS renders the sheet with four-space indentation and a blank line
// between rules.
func (s Sheet) CSS() string {
	var sb strings.Builder
	for i, r := range s {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(r.Selector)
		sb.WriteString(" {\n")
		for _, d := range r.Decls {
			sb.WriteString("    ")
			sb.WriteString(d.Property)
			sb.WriteString(": ")
			sb.WriteString(d.Value)
			sb.WriteString(";\n")
		}
		sb.WriteString("}\n")
	}
	return sb.String()
}
