// Package man renders a roff man page for a cobra command tree.
package man

import (
	"fmt"

	mcobra "github.com/muesli/mango-cobra"
	"github.com/muesli/roff"
	"github.com/spf13/cobra"
)

// Render builds a section 1 man page for root and its subcommands.
func Render(root *cobra.Command) (string, error) {
	page, err := mcobra.NewManPage(1, root)
	if err != nil {
		return "", fmt.Errorf("failed to build man page: %w", err)
	}
	return page.Build(roff.NewDocument()), nil
}
