package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sourcebook/sourcebook/pkg/highlight"
)

// languagesCommand lists every language the tokenizer recognizes.
func (c *CLI) languagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List supported languages",
		Long:  "List every language sourcebook can tokenize and color.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range highlight.LexerNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}

// themesCommand lists the available highlight themes, marking the default.
func (c *CLI) themesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List available highlight themes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range highlight.ThemeNames() {
				if name == highlight.DefaultTheme {
					fmt.Fprintf(cmd.OutOrStdout(), "%s (default)\n", name)
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}
