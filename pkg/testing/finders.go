package testing

import (
	"fmt"
	"strings"

	"github.com/go-drift/tilecard/pkg/render"
)

// Finder locates nodes in a render description.
type Finder interface {
	// Evaluate returns all matching nodes under root (depth-first pre-order).
	Evaluate(root *render.Node) []*render.Node
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	nodes  []*render.Node
	finder Finder
}

// Find evaluates finder against root.
func Find(root *render.Node, finder Finder) FinderResult {
	return FinderResult{nodes: finder.Evaluate(root), finder: finder}
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() *render.Node {
	if len(r.nodes) == 0 {
		panic(fmt.Sprintf("Finder found no nodes: %s", r.describe()))
	}
	return r.nodes[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() *render.Node {
	if len(r.nodes) == 0 {
		return nil
	}
	return r.nodes[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) *render.Node {
	if index < 0 || index >= len(r.nodes) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.nodes), r.describe()))
	}
	return r.nodes[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []*render.Node {
	return r.nodes
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.nodes)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.nodes) > 0
}

// Text returns the text content of the first match. Panics if no matches.
func (r FinderResult) Text() string {
	return r.First().TextContent()
}

func (r FinderResult) describe() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// --- Concrete finders ---

type predicateFinder struct {
	fn   func(*render.Node) bool
	desc string
}

func (f *predicateFinder) Evaluate(root *render.Node) []*render.Node {
	return collectMatches(root, f.fn)
}

func (f *predicateFinder) Description() string {
	return f.desc
}

// ByPredicate returns a finder that matches nodes satisfying fn.
func ByPredicate(fn func(*render.Node) bool) Finder {
	return &predicateFinder{fn: fn, desc: "ByPredicate(...)"}
}

// ByTag returns a finder that matches element nodes with the given tag.
func ByTag(tag string) Finder {
	return &predicateFinder{
		fn:   func(n *render.Node) bool { return n.Tag == tag },
		desc: fmt.Sprintf("ByTag(%q)", tag),
	}
}

// ByClass returns a finder that matches nodes carrying the given class.
func ByClass(class string) Finder {
	return &predicateFinder{
		fn:   func(n *render.Node) bool { return n.HasClass(class) },
		desc: fmt.Sprintf("ByClass(%q)", class),
	}
}

// ByText returns a finder that matches nodes whose own text equals text.
func ByText(text string) Finder {
	return &predicateFinder{
		fn:   func(n *render.Node) bool { return n.Text == text },
		desc: fmt.Sprintf("ByText(%q)", text),
	}
}

// ByTextContaining returns a finder that matches nodes whose own text
// contains substring.
func ByTextContaining(substring string) Finder {
	return &predicateFinder{
		fn:   func(n *render.Node) bool { return n.Text != "" && strings.Contains(n.Text, substring) },
		desc: fmt.Sprintf("ByTextContaining(%q)", substring),
	}
}

// ByAttr returns a finder that matches nodes with attribute key set to val.
func ByAttr(key, val string) Finder {
	return &predicateFinder{
		fn: func(n *render.Node) bool {
			got, ok := n.Attr(key)
			return ok && got == val
		},
		desc: fmt.Sprintf("ByAttr(%s=%q)", key, val),
	}
}

// descendantFinder finds nodes matching 'matching' below nodes matching 'of'.
type descendantFinder struct {
	of       Finder
	matching Finder
}

func (f *descendantFinder) Evaluate(root *render.Node) []*render.Node {
	var results []*render.Node
	seen := make(map[*render.Node]bool)
	for _, ancestor := range f.of.Evaluate(root) {
		// Search within each ancestor's subtree, skipping the ancestor itself.
		for _, child := range ancestor.Children {
			for _, match := range f.matching.Evaluate(child) {
				if !seen[match] {
					seen[match] = true
					results = append(results, match)
				}
			}
		}
	}
	return results
}

func (f *descendantFinder) Description() string {
	return fmt.Sprintf("Descendant(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Descendant returns a finder that matches nodes satisfying 'matching'
// that are descendants of nodes matching 'of'.
func Descendant(of, matching Finder) Finder {
	return &descendantFinder{of: of, matching: matching}
}

func collectMatches(root *render.Node, match func(*render.Node) bool) []*render.Node {
	var out []*render.Node
	render.Walk(root, func(n *render.Node) bool {
		if match(n) {
			out = append(out, n)
		}
		return true
	})
	return out
}
