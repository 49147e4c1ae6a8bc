package cli

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"
)

func Execute() error {
	root := &cobra.Command{
		Use:   "catcol",
		Short: "Combine two texts into one as columns or by lines",
		Long: "Catcol: combine two texts line by line, as padded columns, joined\n" +
			"by a single space, or paired by non-empty lines. Terminal escape\n" +
			"sequences count zero width, so colorized text stays aligned.",
	}

	// Add subcommands
	root.AddCommand(newColCmd())
	root.AddCommand(newCatCmd())
	root.AddCommand(newPairsCmd())
	root.AddCommand(newViewCmd())

	if err := root.Execute(); err != nil {
		return fmt.Errorf("execute: %w", err)
	}
	return nil
}

// fillRune validates that a --fill value is exactly one character.
func fillRune(s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if s == "" || r == utf8.RuneError || size != len(s) {
		return 0, fmt.Errorf("fill must be a single character, got %q", s)
	}
	return r, nil
}
