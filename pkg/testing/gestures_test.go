package testing

import (
	"testing"

	"github.com/go-drift/tilecard/pkg/action"
	"github.com/go-drift/tilecard/pkg/render"
)

func TestFireReachesHandler(t *testing.T) {
	rec := &action.Recorder{}
	n := render.El("div", nil)
	n.Gestures = &render.Gestures{
		Capabilities: action.Capabilities{HasHold: true},
		Handler:      action.HandlerFor(rec, "light.kitchen", action.Bindings{Hold: &action.Config{Action: action.Toggle}}),
	}

	Hold(t, n)
	Tap(t, n)

	reqs := rec.Requests()
	if len(reqs) != 2 {
		t.Fatalf("recorded %d requests, want 2", len(reqs))
	}
	if reqs[0].Action.Action != action.Toggle || reqs[1].Action.Action != action.MoreInfo {
		t.Errorf("requests = %+v", reqs)
	}
}

func TestDoubleTapRequiresCapability(t *testing.T) {
	n := render.El("div", nil)
	n.Gestures = &render.Gestures{Handler: action.HandlerFor(&action.Recorder{}, "", action.Bindings{})}

	ft := &fakeT{}
	DoubleTap(ft, n)
	if len(ft.errors) != 1 {
		t.Errorf("errors = %v, want capability failure", ft.errors)
	}
}
