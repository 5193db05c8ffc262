package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"
)

var (
	handlerMu sync.RWMutex
	handler   ErrorHandler = &LogHandler{}
)

// SetHandler installs h as the process-wide error handler. Passing nil
// restores a LogHandler on slog.Default().
func SetHandler(h ErrorHandler) {
	if h == nil {
		h = &LogHandler{}
	}
	handlerMu.Lock()
	handler = h
	handlerMu.Unlock()
}

// Handler returns the installed error handler.
func Handler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return handler
}

// Report passes err to the installed handler. A zero Timestamp is set to
// now and an empty StackTrace is taken from the caller of Report.
func Report(err *TileError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if err.StackTrace == "" {
		err.StackTrace = stackFrom(3)
	}
	Handler().HandleError(err)
}

// Guard recovers a panic in the function that defers it, reports it for
// op and then calls fallback, when non-nil, with the panic value.
//
//	defer errors.Guard("tile.Render", func(any) { t = blank() })
func Guard(op string, fallback func(r any)) {
	r := recover()
	if r == nil {
		return
	}
	Handler().HandlePanic(&PanicError{
		Op:         op,
		Value:      r,
		StackTrace: stackFrom(3),
		Timestamp:  time.Now(),
	})
	if fallback != nil {
		fallback(r)
	}
}

// stackFrom formats the call stack starting skip frames above
// runtime.Callers, one "function\n\tfile:line" entry per frame.
func stackFrom(skip int) string {
	var pcs [32]uintptr
	n := runtime.Callers(skip, pcs[:])
	if n == 0 {
		return ""
	}
	var sb strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for {
		f, more := frames.Next()
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", f.Function, f.File, f.Line)
		if !more {
			return sb.String()
		}
	}
}
