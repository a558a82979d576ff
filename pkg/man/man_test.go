package man

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestRender(t *testing.T) {
	cmd := &cobra.Command{
		Use:   "cheatsheet <name>",
		Short: "Open a cheatsheet",
		Long:  "Open the cheatsheet whose name matches",
		Run:   func(*cobra.Command, []string) {},
	}
	cmd.Flags().BoolP("print", "p", false, "Print the cheatsheet to the terminal")

	page, err := Render(cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{".TH", "cheatsheet", "print"} {
		if !strings.Contains(page, want) {
			t.Errorf("expected man page to contain %q", want)
		}
	}
}
