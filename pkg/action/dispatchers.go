package action

import (
	"context"
	"log/slog"
	"sync"
)

// LogDispatcher logs every request and performs nothing. Used by the CLI
// preview and as a stand-in while wiring a host.
type LogDispatcher struct {
	Logger *slog.Logger
}

func (d LogDispatcher) Dispatch(ctx context.Context, req Request) error {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}
	attrs := []slog.Attr{
		slog.String("gesture", req.Gesture.String()),
		slog.String("action", req.Action.Action),
	}
	if req.Entity != "" {
		attrs = append(attrs, slog.String("entity", req.Entity))
	}
	if req.Action.Service != "" {
		attrs = append(attrs, slog.String("service", req.Action.Service))
	}
	if req.Action.NavigationPath != "" {
		attrs = append(attrs, slog.String("path", req.Action.NavigationPath))
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "dispatch", attrs...)
	return nil
}

// Recorder is a Dispatcher that keeps every request it receives.
type Recorder struct {
	mu       sync.Mutex
	requests []Request
}

func (r *Recorder) Dispatch(_ context.Context, req Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, req)
	return nil
}

// Requests returns a copy of the recorded requests.
func (r *Recorder) Requests() []Request {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Request, len(r.requests))
	copy(out, r.requests)
	return out
}

// Last returns the most recent request.
func (r *Recorder) Last() (Request, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.requests) == 0 {
		return Request{}, false
	}
	return r.requests[len(r.requests)-1], true
}
