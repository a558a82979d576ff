package cheatsheet

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Converter turns markup source into another format.
type Converter interface {
	Convert(src []byte) ([]byte, error)
}

// Opener shows a file with the system's default application.
type Opener interface {
	Open(path string) error
}

// Dispatcher renders a resolved target when needed and opens it.
type Dispatcher struct {
	Fs       afero.Fs
	HTML     Converter // Used before opening markup sources
	Terminal Converter // Used by Print for markup sources
	Opener   Opener
}

// Dispatch opens target, rendering it to a sibling HTML file first if it is a
// markup source. It returns the name of the file that was opened.
func (d *Dispatcher) Dispatch(target Target) (string, error) {
	file := target.CandidateFile
	if target.NeedsRender {
		rendered, err := d.renderHTML(file)
		if err != nil {
			return "", err
		}
		file = rendered
	}

	log.Debugf("Opening %s", file.Path)
	if err := d.Opener.Open(file.Path); err != nil {
		return "", &OpenError{Path: file.Path, Err: err}
	}
	return file.Name, nil
}

// renderHTML converts a markup file and writes the result next to it,
// overwriting any earlier rendering.
func (d *Dispatcher) renderHTML(src CandidateFile) (CandidateFile, error) {
	content, err := afero.ReadFile(d.Fs, src.Path)
	if err != nil {
		return CandidateFile{}, &RenderError{Path: src.Path, Err: err}
	}

	out, err := d.HTML.Convert(content)
	if err != nil {
		return CandidateFile{}, &RenderError{Path: src.Path, Err: err}
	}

	dest := renderedPath(src.Path)
	if err := afero.WriteFile(d.Fs, dest, out, 0644); err != nil {
		return CandidateFile{}, &RenderError{Path: dest, Err: fmt.Errorf("failed to write output: %w", err)}
	}

	log.Debugf("Rendered %s to %s (%d bytes)", src.Path, dest, len(out))
	return NewCandidate(dest), nil
}

// Print writes target to w instead of opening it. Markup sources go through
// the terminal renderer; other files are copied as they are.
func (d *Dispatcher) Print(target Target, w io.Writer) error {
	content, err := afero.ReadFile(d.Fs, target.Path)
	if err != nil {
		return &RenderError{Path: target.Path, Err: err}
	}

	if target.NeedsRender {
		content, err = d.Terminal.Convert(content)
		if err != nil {
			return &RenderError{Path: target.Path, Err: err}
		}
	}

	if _, err := w.Write(content); err != nil {
		return &RenderError{Path: target.Path, Err: err}
	}
	return nil
}
