// Package render holds the render description produced for a tile: a small
// immutable element tree plus gesture bindings, serializable to HTML markup
// and JSON for the host that draws it.
package render

import (
	"strings"

	"github.com/go-drift/tilecard/pkg/action"
)

// Attr is a single element attribute. Attributes keep their insertion order
// so serialized output is stable.
type Attr struct {
	Key string `json:"key"`
	Val string `json:"val"`
}

// Gestures describes how the host should wire user interaction for a node.
type Gestures struct {
	action.Capabilities
	// Handler receives the gestures. It is not serialized.
	Handler action.Handler `json:"-"`
}

// Node is one element of a render description.
//
// Text, when non-empty, is rendered before Children. A node with an empty
// Tag is a bare text node.
type Node struct {
	Tag      string    `json:"tag,omitempty"`
	Class    []string  `json:"class,omitempty"`
	Attrs    []Attr    `json:"attrs,omitempty"`
	Text     string    `json:"text,omitempty"`
	Children []*Node   `json:"children,omitempty"`
	Gestures *Gestures `json:"gestures,omitempty"`
}

// El builds an element with the given tag, classes and children. Nil
// children are dropped, which is what makes [When] compose.
func El(tag string, class []string, children ...*Node) *Node {
	n := &Node{Tag: tag, Class: class}
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// TextEl builds an element whose only content is text.
func TextEl(tag string, class []string, text string) *Node {
	return &Node{Tag: tag, Class: class, Text: text}
}

// When returns build() if cond holds, nil otherwise.
func When(cond bool, build func() *Node) *Node {
	if !cond {
		return nil
	}
	return build()
}

// WithAttr appends an attribute and returns n for chaining.
func (n *Node) WithAttr(key, val string) *Node {
	n.Attrs = append(n.Attrs, Attr{Key: key, Val: val})
	return n
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(key string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// HasClass reports whether n carries class c.
func (n *Node) HasClass(c string) bool {
	for _, have := range n.Class {
		if have == c {
			return true
		}
	}
	return false
}

// ClassString joins the classes the way they appear in markup.
func (n *Node) ClassString() string {
	return strings.Join(n.Class, " ")
}

// TextContent concatenates n's text with that of all descendants.
func (n *Node) TextContent() string {
	var sb strings.Builder
	Walk(n, func(m *Node) bool {
		sb.WriteString(m.Text)
		return true
	})
	return sb.String()
}

// Walk visits n and its descendants depth-first in pre-order. Returning
// false from visit skips the node's children.
func Walk(n *Node, visit func(*Node) bool) {
	if n == nil {
		return
	}
	if !visit(n) {
		return
	}
	for _, c := range n.Children {
		Walk(c, visit)
	}
}
