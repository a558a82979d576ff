package cheatsheet

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidDirectory is returned when the search root is missing or not a directory.
	ErrInvalidDirectory = errors.New("invalid directory")

	// ErrNoMatch is returned by Resolve when no candidate stem contains the pattern.
	// It is a normal outcome rather than a failure.
	ErrNoMatch = errors.New("no matching files found")
)

// ScanError reports a search root that exists but could not be listed.
type ScanError struct {
	Dir string
	Err error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("failed to list directory %s: %v", e.Dir, e.Err)
}

func (e *ScanError) Unwrap() error { return e.Err }

// AmbiguousError is returned when several candidates survive disambiguation.
// Names holds every matching file name in listing order.
type AmbiguousError struct {
	Pattern string
	Names   []string
}

func (e *AmbiguousError) Error() string {
	var b strings.Builder
	b.WriteString("Multiple matching files found, please refine your search or rename them:")
	for _, name := range e.Names {
		b.WriteString("\n\t")
		b.WriteString(name)
	}
	return b.String()
}

// RenderError reports a markup source that could not be read, converted or written out.
type RenderError struct {
	Path string
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("failed to render %s: %v", e.Path, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// OpenError reports a failure of the opener.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("failed to open %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }
