// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package trash

import (
	"errors"
	"fmt"
)

// InputError is returned when no input text can be obtained.
type InputError struct {
	Path string // empty when reading from stdin
	Err  error
}

func (e *InputError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("input: stdin: %v", e.Err)
	}
	return fmt.Sprintf("input: %s: %v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// DeserializationError is returned when the JSON input is malformed,
// violates the node schema, or nests deeper than MaxDepth.
type DeserializationError struct {
	Offset int64 // byte offset in the input, when known
	Msg    string
	Err    error
}

func (e *DeserializationError) Error() string {
	msg := e.Msg
	if e.Err != nil {
		if msg == "" {
			msg = e.Err.Error()
		} else {
			msg = msg + ": " + e.Err.Error()
		}
	}
	if e.Offset > 0 {
		return fmt.Sprintf("deserialize: offset %d: %s", e.Offset, msg)
	}
	return fmt.Sprintf("deserialize: %s", msg)
}

func (e *DeserializationError) Unwrap() error {
	return e.Err
}

// SourceFileMissingError is returned when the file named by a result set
// cannot be read for reconstruction or annotation.
type SourceFileMissingError struct {
	Path string
	Err  error
}

func (e *SourceFileMissingError) Error() string {
	return fmt.Sprintf("source file %s: %v", e.Path, e.Err)
}

func (e *SourceFileMissingError) Unwrap() error {
	return e.Err
}

// RenderError is returned when a tree cannot be rendered.
type RenderError struct {
	FileName string
	Err      error
}

func (e *RenderError) Error() string {
	if e.FileName == "" {
		return fmt.Sprintf("render: %v", e.Err)
	}
	return fmt.Sprintf("render %s: %v", e.FileName, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// ErrPositionUnresolved reports that a node carries no position metadata.
// It is never fatal; the position is treated as (0, 0).
var ErrPositionUnresolved = errors.New("position unresolved")

// ErrMaxDepth is wrapped in the DeserializationError returned for input
// nested deeper than MaxDepth.
var ErrMaxDepth = errors.New("nesting depth exceeds MaxDepth")

// Error codes reported by the command line tools.
const (
	ErrCodeInput             = "INPUT"
	ErrCodeDeserialize       = "DESERIALIZE"
	ErrCodeSourceFileMissing = "SOURCE_FILE_MISSING"
	ErrCodeRender            = "RENDER"
	ErrCodePosition          = "POSITION_UNRESOLVED"
	ErrCodeUnknown           = "UNKNOWN"
)

// ErrorCode returns the error code string for a given error.
func ErrorCode(err error) string {
	var inputErr *InputError
	var deserErr *DeserializationError
	var missingErr *SourceFileMissingError
	var renderErr *RenderError
	switch {
	case errors.As(err, &inputErr):
		return ErrCodeInput
	case errors.As(err, &deserErr):
		return ErrCodeDeserialize
	case errors.As(err, &missingErr):
		return ErrCodeSourceFileMissing
	case errors.As(err, &renderErr):
		return ErrCodeRender
	case errors.Is(err, ErrPositionUnresolved):
		return ErrCodePosition
	default:
		return ErrCodeUnknown
	}
}
