package testing

import (
	"context"

	"github.com/go-drift/tilecard/pkg/action"
	"github.com/go-drift/tilecard/pkg/render"
)

// Fire delivers g to the handler bound on n.
func Fire(t TestingT, n *render.Node, g action.Gesture) {
	t.Helper()
	if n == nil || n.Gestures == nil || n.Gestures.Handler == nil {
		t.Fatalf("%s: node has no gesture handler", g)
		return
	}
	if err := n.Gestures.Handler(context.Background(), g); err != nil {
		t.Errorf("%s: handler error: %v", g, err)
	}
}

// Tap fires a tap on n.
func Tap(t TestingT, n *render.Node) {
	t.Helper()
	Fire(t, n, action.Tap)
}

// Hold fires a hold on n. Fails if n does not listen for holds.
func Hold(t TestingT, n *render.Node) {
	t.Helper()
	if n != nil && n.Gestures != nil && !n.Gestures.HasHold {
		t.Errorf("hold: node does not listen for hold")
	}
	Fire(t, n, action.Hold)
}

// DoubleTap fires a double tap on n. Fails if n does not listen for double
// taps.
func DoubleTap(t TestingT, n *render.Node) {
	t.Helper()
	if n != nil && n.Gestures != nil && !n.Gestures.HasDoubleClick {
		t.Errorf("double_tap: node does not listen for double tap")
	}
	Fire(t, n, action.DoubleTap)
}
