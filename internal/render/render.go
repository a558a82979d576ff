// Package render converts Markdown cheatsheets into viewable forms:
// HTML for the desktop opener and styled ANSI text for the terminal.
package render

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// HTML renders Markdown to an HTML fragment with footnotes, strikethrough,
// tables and task lists enabled.
type HTML struct {
	md goldmark.Markdown
}

// NewHTML returns an HTML renderer.
func NewHTML() *HTML {
	return &HTML{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.Footnote,
				extension.Strikethrough,
				extension.Table,
				extension.TaskList,
			),
		),
	}
}

// Convert renders src. The output depends only on src.
func (h *HTML) Convert(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := h.md.Convert(src, &buf); err != nil {
		return nil, fmt.Errorf("failed to convert markdown: %w", err)
	}
	return buf.Bytes(), nil
}

// Terminal renders Markdown for display in a terminal using glamour.
type Terminal struct {
	Width int // Word wrap column, 0 keeps glamour's default
	Style string
}

// Convert renders src with the configured style, or the auto-detected one when Style is empty.
func (t Terminal) Convert(src []byte) ([]byte, error) {
	var opts []glamour.TermRendererOption
	if t.Style != "" {
		opts = append(opts, glamour.WithStandardStyle(t.Style))
	} else {
		opts = append(opts, glamour.WithAutoStyle())
	}
	if t.Width > 0 {
		opts = append(opts, glamour.WithWordWrap(t.Width))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create terminal renderer: %w", err)
	}

	out, err := r.RenderBytes(src)
	if err != nil {
		return nil, fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}
