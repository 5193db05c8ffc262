// Package errors provides structured error reporting for tile rendering.
//
// Rendering never fails loudly: a tile that cannot resolve its value still
// renders, blank. The failure is reported here instead, to a pluggable
// ErrorHandler, so hosts can log or surface it.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindLookup indicates an entity or variable reference that could not be resolved.
	KindLookup
	// KindConfig indicates an invalid tile or card configuration.
	KindConfig
	// KindNormalize indicates a numeric normalization failure.
	KindNormalize
	// KindRender indicates a failure while assembling the render description.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindDispatch indicates a gesture action that could not be dispatched.
	KindDispatch
)

func (k ErrorKind) String() string {
	switch k {
	case KindLookup:
		return "lookup"
	case KindConfig:
		return "config"
	case KindNormalize:
		return "normalize"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	case KindDispatch:
		return "dispatch"
	default:
		return "unknown"
	}
}

// TileError represents a structured error raised while handling a tile.
type TileError struct {
	// Op is the operation that failed (e.g., "tile.Render").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// TileID identifies the tile, if it has one.
	TileID string
	// Entity is the entity the tile reads, if any.
	Entity string
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *TileError) Error() string {
	if e.Entity != "" {
		return fmt.Sprintf("%s [%s] entity=%s: %v", e.Op, e.Kind, e.Entity, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *TileError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "tile.Render").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ParseError represents a configuration field that could not be decoded.
type ParseError struct {
	// Source is the file or stream being decoded.
	Source string
	// Field is the offending field path (e.g., "tiles[2].precision").
	Field string
	// Got is the value received.
	Got any
	// Err is the underlying decode error, if any.
	Err error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s in %s (got %v): %v", e.Field, e.Source, e.Got, e.Err)
	}
	return fmt.Sprintf("invalid %s in %s: got %v", e.Field, e.Source, e.Got)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ErrorHandler receives errors reported during tile rendering.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *TileError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
