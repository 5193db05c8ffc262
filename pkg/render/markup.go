package render

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Gesture capability attributes written to markup.
const (
	AttrHasHold        = "data-has-hold"
	AttrHasDoubleClick = "data-has-double-click"
)

// Markup renders n as HTML.
func (n *Node) Markup() string {
	var buf bytes.Buffer
	// Writes to a bytes.Buffer cannot fail.
	_ = n.WriteMarkup(&buf)
	return buf.String()
}

// WriteMarkup renders n as HTML to w.
func (n *Node) WriteMarkup(w io.Writer) error {
	if n == nil {
		return nil
	}
	return html.Render(w, n.htmlNode())
}

func (n *Node) htmlNode() *html.Node {
	if n.Tag == "" {
		return &html.Node{Type: html.TextNode, Data: n.Text}
	}

	h := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
	}
	if len(n.Class) > 0 {
		h.Attr = append(h.Attr, html.Attribute{Key: "class", Val: n.ClassString()})
	}
	for _, a := range n.Attrs {
		h.Attr = append(h.Attr, html.Attribute{Key: a.Key, Val: a.Val})
	}
	if n.Gestures != nil {
		h.Attr = append(h.Attr,
			html.Attribute{Key: AttrHasHold, Val: strconv.FormatBool(n.Gestures.HasHold)},
			html.Attribute{Key: AttrHasDoubleClick, Val: strconv.FormatBool(n.Gestures.HasDoubleClick)},
		)
	}
	if n.Text != "" {
		h.AppendChild(&html.Node{Type: html.TextNode, Data: n.Text})
	}
	for _, c := range n.Children {
		h.AppendChild(c.htmlNode())
	}
	return h
}

// JSON returns the indented JSON form of n.
func (n *Node) JSON() ([]byte, error) {
	return json.MarshalIndent(n, "", "  ")
}
