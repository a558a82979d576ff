package render

import (
	"bytes"
	"strings"
	"testing"
)

const testCheatsheet = `# Git

Undo the last commit[^1].

~~git checkout~~ git switch

| Command | Action |
|---------|--------|
| git st  | status |

- [x] learn rebase
- [ ] learn bisect

[^1]: Keeps the changes staged.
`

func TestHTML_Convert(t *testing.T) {
	out, err := NewHTML().Convert([]byte(testCheatsheet))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	html := string(out)

	tests := []struct {
		name     string
		contains string
	}{
		{"heading", "<h1>Git</h1>"},
		{"strikethrough", "<del>git checkout</del>"},
		{"table", "<table>"},
		{"table cell", "<td>git st</td>"},
		{"task list", `type="checkbox"`},
		{"checked task", `checked=""`},
		{"footnote reference", `class="footnote-ref"`},
		{"footnote body", "Keeps the changes staged."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(html, tt.contains) {
				t.Errorf("expected output to contain %q, got:\n%s", tt.contains, html)
			}
		})
	}
}

func TestHTML_ConvertIsDeterministic(t *testing.T) {
	h := NewHTML()
	first, err := h.Convert([]byte(testCheatsheet))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := h.Convert([]byte(testCheatsheet))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("expected identical output for identical input")
	}
}

func TestHTML_ConvertEmpty(t *testing.T) {
	out, err := NewHTML().Convert(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("expected empty output, got %q", out)
	}
}

func TestTerminal_Convert(t *testing.T) {
	out, err := Terminal{Style: "notty", Width: 60}.Convert([]byte(testCheatsheet))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := string(out)

	for _, want := range []string{"Git", "git switch", "learn rebase"} {
		if !strings.Contains(text, want) {
			t.Errorf("expected terminal output to contain %q, got:\n%s", want, text)
		}
	}
	if strings.Contains(text, "<h1>") {
		t.Error("terminal output should not contain html")
	}
}
