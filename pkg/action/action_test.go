package action

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHasAction(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
		want bool
	}{
		{"nil", nil, false},
		{"none", &Config{Action: None}, false},
		{"toggle", &Config{Action: Toggle}, true},
		{"empty action", &Config{}, true},
	}
	for _, tt := range tests {
		if got := HasAction(tt.cfg); got != tt.want {
			t.Errorf("%s: HasAction() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestCapabilitiesOf(t *testing.T) {
	b := Bindings{
		Tap:       &Config{Action: Toggle},
		Hold:      &Config{Action: MoreInfo},
		DoubleTap: &Config{Action: None},
	}
	want := Capabilities{HasHold: true, HasDoubleClick: false}
	if got := CapabilitiesOf(b); got != want {
		t.Errorf("CapabilitiesOf() = %+v, want %+v", got, want)
	}
	if got := CapabilitiesOf(Bindings{}); got != (Capabilities{}) {
		t.Errorf("CapabilitiesOf(empty) = %+v, want zero", got)
	}
}

func TestHandlerDispatchesBoundAction(t *testing.T) {
	rec := &Recorder{}
	b := Bindings{
		Tap:  &Config{Action: CallService, Service: "vacuum.start"},
		Hold: &Config{Action: None},
	}
	h := HandlerFor(rec, "vacuum.robot", b)
	ctx := context.Background()

	for _, g := range []Gesture{Tap, Hold, DoubleTap} {
		if err := h(ctx, g); err != nil {
			t.Fatalf("handler(%s) error: %v", g, err)
		}
	}

	want := []Request{
		{Gesture: Tap, Entity: "vacuum.robot", Action: Config{Action: CallService, Service: "vacuum.start"}},
		{Gesture: DoubleTap, Entity: "vacuum.robot", Action: Config{Action: MoreInfo}},
	}
	if diff := cmp.Diff(want, rec.Requests()); diff != "" {
		t.Errorf("requests mismatch (-want +got):\n%s", diff)
	}
}

func TestHandlerWithoutDispatcher(t *testing.T) {
	h := HandlerFor(nil, "", Bindings{})
	if err := h(context.Background(), Tap); err == nil {
		t.Error("expected error without dispatcher")
	}
}

func TestParseGesture(t *testing.T) {
	for _, g := range []Gesture{Tap, Hold, DoubleTap} {
		got, err := ParseGesture(g.String())
		if err != nil || got != g {
			t.Errorf("ParseGesture(%q) = %v, %v", g.String(), got, err)
		}
	}
	if _, err := ParseGesture("swipe"); err == nil {
		t.Error("expected error for unknown gesture")
	}
}

func TestLogDispatcher(t *testing.T) {
	var buf bytes.Buffer
	d := LogDispatcher{Logger: slog.New(slog.NewTextHandler(&buf, nil))}
	err := d.Dispatch(context.Background(), Request{
		Gesture: Hold,
		Entity:  "vacuum.robot",
		Action:  Config{Action: Navigate, NavigationPath: "/map"},
	})
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"gesture=hold", "action=navigate", "entity=vacuum.robot", "path=/map"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q should contain %q", out, want)
		}
	}
}
