// Package cheatsheet finds a single cheatsheet file in a directory by fuzzy name,
// renders it when it is Markdown, and hands it off to an opener.
// The flow is linear: Scan lists the directory, Resolve picks the file the user
// meant, and a Dispatcher renders and opens it.
package cheatsheet

import (
	"path/filepath"
	"strings"
)

const (
	// MarkupExt is the extension of sources that are rendered before opening.
	MarkupExt = "md"
	// RenderExt is the extension written next to a rendered markup source.
	RenderExt = "html"
)

// CandidateFile is a regular file found in the search root.
type CandidateFile struct {
	Path string // Location of the file, directory joined with Name
	Name string // Base name including extension
	Stem string // Name without its extension, used for matching
	Ext  string // Lowercased extension without the dot, empty when absent
}

// Target is the single file picked by Resolve.
type Target struct {
	CandidateFile
	NeedsRender bool // The file is a markup source and must be rendered before opening
}

// NewCandidate builds a CandidateFile for the file at path.
func NewCandidate(path string) CandidateFile {
	name := filepath.Base(path)
	stem, ext := splitName(name)
	return CandidateFile{
		Path: path,
		Name: name,
		Stem: stem,
		Ext:  strings.ToLower(ext),
	}
}

// IsMarkup reports whether the candidate is a markup source.
func (c CandidateFile) IsMarkup() bool {
	return c.Ext == MarkupExt
}

// IsRendered reports whether the candidate is already in the render format.
func (c CandidateFile) IsRendered() bool {
	return c.Ext == RenderExt
}

// NewTarget wraps a candidate, flagging markup sources for rendering.
func NewTarget(c CandidateFile) Target {
	return Target{CandidateFile: c, NeedsRender: c.IsMarkup()}
}

// splitName separates name into stem and extension at the last dot.
// A leading dot on its own does not start an extension, so ".bashrc" has no extension.
func splitName(name string) (string, string) {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return name, ""
	}
	return name[:i], name[i+1:]
}

// renderedPath returns path with its extension replaced by RenderExt.
func renderedPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + "." + RenderExt
}
