package errors

import (
	"bytes"
	stderrors "errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestTileErrorString(t *testing.T) {
	err := &TileError{
		Op:   "tile.Evaluate",
		Kind: KindNormalize,
		Err:  stderrors.New("bad precision"),
	}
	want := "tile.Evaluate [normalize]: bad precision"
	if got := err.Error(); got != want {
		t.Errorf("TileError.Error() = %q, want %q", got, want)
	}
}

func TestTileErrorWithEntity(t *testing.T) {
	err := &TileError{
		Op:     "tile.ResolveRaw",
		Kind:   KindLookup,
		Entity: "sensor.battery",
		Err:    stderrors.New("entity not found"),
	}
	want := "entity=sensor.battery"
	if got := err.Error(); !strings.Contains(got, want) {
		t.Errorf("error string %q should contain %q", got, want)
	}
}

func TestTileErrorUnwrap(t *testing.T) {
	base := stderrors.New("base")
	err := &TileError{Op: "op", Err: base}
	if !stderrors.Is(err, base) {
		t.Error("errors.Is should see the wrapped error")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindLookup, "lookup"},
		{KindConfig, "config"},
		{KindNormalize, "normalize"},
		{KindRender, "render"},
		{KindPanic, "panic"},
		{KindDispatch, "dispatch"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "boom", Timestamp: time.Now()}
	if got, want := err.Error(), "panic: boom"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}

	err.Op = "tile.Render"
	if got, want := err.Error(), "panic in tile.Render: boom"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestParseErrorString(t *testing.T) {
	err := &ParseError{Source: "card.yaml", Field: "tiles[0].precision", Got: -1}
	want := "invalid tiles[0].precision in card.yaml: got -1"
	if got := err.Error(); got != want {
		t.Errorf("ParseError.Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	var captured *TileError
	SetHandler(&testHandler{onError: func(err *TileError) { captured = err }})
	defer SetHandler(nil)

	Report(&TileError{Op: "test.op", Kind: KindLookup, Err: stderrors.New("x")})

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "test.op" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.op")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
	if first, _, _ := strings.Cut(captured.StackTrace, "\n"); !strings.HasSuffix(first, ".TestReport") {
		t.Errorf("stack should start at the reporting function, got:\n%s", captured.StackTrace)
	}
}

func TestReportKeepsStackTrace(t *testing.T) {
	var captured *TileError
	SetHandler(&testHandler{onError: func(err *TileError) { captured = err }})
	defer SetHandler(nil)

	Report(&TileError{Op: "test.op", StackTrace: "given"})
	if captured.StackTrace != "given" {
		t.Errorf("StackTrace = %q, want %q", captured.StackTrace, "given")
	}
}

func TestGuard(t *testing.T) {
	var captured *PanicError
	SetHandler(&testHandler{onPanic: func(err *PanicError) { captured = err }})
	defer SetHandler(nil)

	var got any
	func() {
		defer Guard("test.guard", func(r any) { got = r })
		panic(42)
	}()

	if got != 42 {
		t.Errorf("fallback got %v, want 42", got)
	}
	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Op != "test.guard" || captured.Value != 42 {
		t.Errorf("captured %+v", captured)
	}
	if !strings.Contains(captured.StackTrace, "TestGuard") {
		t.Errorf("stack should include the panicking test, got:\n%s", captured.StackTrace)
	}
}

func TestGuardWithoutPanic(t *testing.T) {
	called := false
	SetHandler(&testHandler{onPanic: func(*PanicError) { called = true }})
	defer SetHandler(nil)

	func() {
		defer Guard("test.guard", func(any) { called = true })
	}()
	if called {
		t.Error("Guard should do nothing without a panic")
	}
}

func TestSetHandlerNil(t *testing.T) {
	SetHandler(&testHandler{})
	SetHandler(nil)
	if _, ok := Handler().(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should install a LogHandler, got %T", Handler())
	}
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Logger: slog.New(slog.NewTextHandler(&buf, nil))}

	h.HandleError(&TileError{
		Op:         "tile.Render",
		Kind:       KindLookup,
		TileID:     "battery",
		Entity:     "sensor.battery",
		Err:        stderrors.New("entity not found"),
		StackTrace: "main.render\n\tmain.go:1\n",
	})
	out := buf.String()
	for _, want := range []string{"level=WARN", "op=tile.Render", "kind=lookup", "tile=battery", "entity=sensor.battery"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q should contain %q", out, want)
		}
	}
	if strings.Contains(out, "stack=") {
		t.Errorf("stack should only be logged when verbose, got %q", out)
	}

	buf.Reset()
	h.HandlePanic(&PanicError{Op: "tile.Render", Value: "boom"})
	if out := buf.String(); !strings.Contains(out, "level=ERROR") || !strings.Contains(out, "value=boom") {
		t.Errorf("unexpected panic log output %q", out)
	}
}

func TestLogHandlerVerboseStack(t *testing.T) {
	var buf bytes.Buffer
	SetHandler(&LogHandler{Logger: slog.New(slog.NewTextHandler(&buf, nil)), Verbose: true})
	defer SetHandler(nil)

	Report(&TileError{Op: "tile.Render", Kind: KindLookup, Err: stderrors.New("entity not found")})
	if out := buf.String(); !strings.Contains(out, "stack=") || !strings.Contains(out, "TestLogHandlerVerboseStack") {
		t.Errorf("verbose log should carry the report stack, got %q", out)
	}
}

type testHandler struct {
	onError func(*TileError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *TileError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
